package dectable

import (
	"strings"
)

// Operator is a comparison operator usable in a Condition. The constant value
// of an Operator is its symbol, the form used in readable renderings and in
// the flat-record encoding.
type Operator string

const (
	Equals           Operator = "=="
	NotEquals        Operator = "!="
	GreaterThan      Operator = ">"
	GreaterOrEqual   Operator = ">="
	LessThan         Operator = "<"
	LessOrEqual      Operator = "<="
	Between          Operator = "between"
	Contains         Operator = "contains"
	NotContains      Operator = "not contains"
	StartsWith       Operator = "startsWith"
	EndsWith         Operator = "endsWith"
	Matches          Operator = "matches"
	EqualsIgnoreCase Operator = "equalsIgnoreCase"
	IsNull           Operator = "isNull"
	IsNotNull        Operator = "isNotNull"
	IsEmpty          Operator = "isEmpty"
	IsNotEmpty       Operator = "isNotEmpty"
	In               Operator = "in"
	NotIn            Operator = "notIn"
)

// Category groups operators by the value category they belong to.
type Category string

const (
	CategoryComparison Category = "Comparison"
	CategoryNumeric    Category = "Numeric"
	CategoryString     Category = "String"
	CategoryNullCheck  Category = "Null/Empty"
	CategoryCollection Category = "Collection"
)

// Notation selects a textual output syntax for an operator fragment.
type Notation int

const (
	// NotationUnary is the decision-table constraint cell syntax
	// (unary tests): "> 100", a quoted literal, a comma-separated list.
	NotationUnary Notation = iota
	// NotationFEEL is the inline FEEL boolean-expression syntax.
	NotationFEEL
	// NotationJava is the inline Java boolean-expression syntax.
	NotationJava
	// NotationCEL is the inline CEL boolean-expression syntax.
	NotationCEL
)

// fragment builds the notation-specific text for one condition. Unary
// fragments ignore param; inline fragments receive the (possibly prefixed)
// parameter name.
type fragment func(param, value string, t DataType) string

type behavior struct {
	display    string
	category   Category
	numeric    bool // supports integer/long/double (and date kinds)
	text       bool // supports string
	needsValue bool

	unary fragment
	feel  fragment
	java  fragment
	cel   fragment
}

// quote wraps the value in double quotes when the declared kind is String;
// numeric and boolean values pass through raw.
func quote(value string, t DataType) string {
	if t == String {
		return `"` + value + `"`
	}
	return value
}

// splitList parses a comma-separated raw value into trimmed items. No arity
// checking happens here; a malformed list degrades to malformed output text.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func joinQuoted(value string, t DataType, sep string) string {
	parts := splitList(value)
	for i := range parts {
		parts[i] = quote(parts[i], t)
	}
	return strings.Join(parts, sep)
}

var catalog = map[Operator]behavior{
	Equals: {
		display: "equals", category: CategoryComparison, numeric: true, text: true, needsValue: true,
		unary: func(_, v string, t DataType) string { return quote(v, t) },
		feel:  func(p, v string, t DataType) string { return p + " = " + quote(v, t) },
		java: func(p, v string, t DataType) string {
			if t == String {
				return p + `.equals("` + v + `")`
			}
			return p + " == " + v
		},
		cel: func(p, v string, t DataType) string { return p + " == " + quote(v, t) },
	},
	NotEquals: {
		display: "not equals", category: CategoryComparison, numeric: true, text: true, needsValue: true,
		unary: func(_, v string, t DataType) string { return "not(" + quote(v, t) + ")" },
		feel:  func(p, v string, t DataType) string { return p + " != " + quote(v, t) },
		java: func(p, v string, t DataType) string {
			if t == String {
				return "!" + p + `.equals("` + v + `")`
			}
			return p + " != " + v
		},
		cel: func(p, v string, t DataType) string { return p + " != " + quote(v, t) },
	},
	GreaterThan: {
		display: "greater than", category: CategoryNumeric, numeric: true, needsValue: true,
		unary: func(_, v string, _ DataType) string { return "> " + v },
		feel:  func(p, v string, _ DataType) string { return p + " > " + v },
		java:  func(p, v string, _ DataType) string { return p + " > " + v },
		cel:   func(p, v string, _ DataType) string { return p + " > " + v },
	},
	GreaterOrEqual: {
		display: "greater than or equal", category: CategoryNumeric, numeric: true, needsValue: true,
		unary: func(_, v string, _ DataType) string { return ">= " + v },
		feel:  func(p, v string, _ DataType) string { return p + " >= " + v },
		java:  func(p, v string, _ DataType) string { return p + " >= " + v },
		cel:   func(p, v string, _ DataType) string { return p + " >= " + v },
	},
	LessThan: {
		display: "less than", category: CategoryNumeric, numeric: true, needsValue: true,
		unary: func(_, v string, _ DataType) string { return "< " + v },
		feel:  func(p, v string, _ DataType) string { return p + " < " + v },
		java:  func(p, v string, _ DataType) string { return p + " < " + v },
		cel:   func(p, v string, _ DataType) string { return p + " < " + v },
	},
	LessOrEqual: {
		display: "less than or equal", category: CategoryNumeric, numeric: true, needsValue: true,
		unary: func(_, v string, _ DataType) string { return "<= " + v },
		feel:  func(p, v string, _ DataType) string { return p + " <= " + v },
		java:  func(p, v string, _ DataType) string { return p + " <= " + v },
		cel:   func(p, v string, _ DataType) string { return p + " <= " + v },
	},
	Between: {
		display: "between", category: CategoryNumeric, numeric: true, needsValue: true,
		// The raw value carries "min,max". Wrong arity is not validated here;
		// it degrades to the raw value (unary) or an empty fragment (inline).
		unary: func(_, v string, _ DataType) string {
			parts := splitList(v)
			if len(parts) == 2 {
				return "[" + parts[0] + ".." + parts[1] + "]"
			}
			return v
		},
		feel: func(p, v string, _ DataType) string {
			parts := splitList(v)
			if len(parts) == 2 {
				return p + " in [" + parts[0] + ".." + parts[1] + "]"
			}
			return p + " "
		},
		java: func(p, v string, _ DataType) string {
			parts := splitList(v)
			if len(parts) == 2 {
				return "(" + p + " >= " + parts[0] + " && " + p + " <= " + parts[1] + ")"
			}
			return ""
		},
		cel: func(p, v string, _ DataType) string {
			parts := splitList(v)
			if len(parts) == 2 {
				return p + " >= " + parts[0] + " && " + p + " <= " + parts[1]
			}
			return ""
		},
	},
	Contains: {
		display: "contains", category: CategoryString, text: true, needsValue: true,
		unary: func(_, v string, _ DataType) string { return `contains(?, "` + v + `")` },
		feel:  func(p, v string, _ DataType) string { return `contains(` + p + `, "` + v + `")` },
		java:  func(p, v string, _ DataType) string { return p + `.contains("` + v + `")` },
		cel:   func(p, v string, _ DataType) string { return p + `.contains("` + v + `")` },
	},
	NotContains: {
		display: "does not contain", category: CategoryString, text: true, needsValue: true,
		unary: func(_, v string, _ DataType) string { return `not(contains(?, "` + v + `"))` },
		feel:  func(p, v string, _ DataType) string { return `not(contains(` + p + `, "` + v + `"))` },
		java:  func(p, v string, _ DataType) string { return "!" + p + `.contains("` + v + `")` },
		cel:   func(p, v string, _ DataType) string { return "!" + p + `.contains("` + v + `")` },
	},
	StartsWith: {
		display: "starts with", category: CategoryString, text: true, needsValue: true,
		unary: func(_, v string, _ DataType) string { return `starts with "` + v + `"` },
		feel:  func(p, v string, _ DataType) string { return `starts with(` + p + `, "` + v + `")` },
		java:  func(p, v string, _ DataType) string { return p + `.startsWith("` + v + `")` },
		cel:   func(p, v string, _ DataType) string { return p + `.startsWith("` + v + `")` },
	},
	EndsWith: {
		display: "ends with", category: CategoryString, text: true, needsValue: true,
		unary: func(_, v string, _ DataType) string { return `ends with "` + v + `"` },
		feel:  func(p, v string, _ DataType) string { return `ends with(` + p + `, "` + v + `")` },
		java:  func(p, v string, _ DataType) string { return p + `.endsWith("` + v + `")` },
		cel:   func(p, v string, _ DataType) string { return p + `.endsWith("` + v + `")` },
	},
	Matches: {
		display: "matches regex", category: CategoryString, text: true, needsValue: true,
		unary: func(_, v string, _ DataType) string { return `matches(?, "` + v + `")` },
		feel:  func(p, v string, _ DataType) string { return `matches(` + p + `, "` + v + `")` },
		java:  func(p, v string, _ DataType) string { return p + `.matches("` + v + `")` },
		cel:   func(p, v string, _ DataType) string { return p + `.matches("` + v + `")` },
	},
	EqualsIgnoreCase: {
		display: "equals (ignore case)", category: CategoryString, text: true, needsValue: true,
		unary: func(_, v string, _ DataType) string { return `lower case(?) = "` + strings.ToLower(v) + `"` },
		feel:  func(p, v string, _ DataType) string { return `lower case(` + p + `) = "` + strings.ToLower(v) + `"` },
		java:  func(p, v string, _ DataType) string { return p + `.equalsIgnoreCase("` + v + `")` },
		cel:   func(p, v string, _ DataType) string { return p + `.lowerAscii() == "` + strings.ToLower(v) + `"` },
	},
	IsNull: {
		display: "is null", category: CategoryNullCheck, numeric: true, text: true,
		unary: func(_, _ string, _ DataType) string { return "null" },
		feel:  func(p, _ string, _ DataType) string { return p + " = null" },
		java:  func(p, _ string, _ DataType) string { return p + " == null" },
		cel:   func(p, _ string, _ DataType) string { return p + " == null" },
	},
	IsNotNull: {
		display: "is not null", category: CategoryNullCheck, numeric: true, text: true,
		unary: func(_, _ string, _ DataType) string { return "not(null)" },
		feel:  func(p, _ string, _ DataType) string { return p + " != null" },
		java:  func(p, _ string, _ DataType) string { return p + " != null" },
		cel:   func(p, _ string, _ DataType) string { return p + " != null" },
	},
	IsEmpty: {
		display: "is empty", category: CategoryNullCheck, text: true,
		unary: func(_, _ string, _ DataType) string { return "null" },
		feel:  func(p, _ string, _ DataType) string { return p + " = null or " + p + ` = ""` },
		java:  func(p, _ string, _ DataType) string { return p + ".isEmpty()" },
		cel:   func(p, _ string, _ DataType) string { return "size(" + p + ") == 0" },
	},
	IsNotEmpty: {
		display: "is not empty", category: CategoryNullCheck, text: true,
		unary: func(_, _ string, _ DataType) string { return "not(null)" },
		feel:  func(p, _ string, _ DataType) string { return p + " != null and " + p + ` != ""` },
		java:  func(p, _ string, _ DataType) string { return "!" + p + ".isEmpty()" },
		cel:   func(p, _ string, _ DataType) string { return "size(" + p + ") != 0" },
	},
	In: {
		display: "in list", category: CategoryCollection, numeric: true, text: true, needsValue: true,
		unary: func(_, v string, t DataType) string { return joinQuoted(v, t, ", ") },
		feel:  func(p, v string, t DataType) string { return p + " in (" + joinQuoted(v, t, ", ") + ")" },
		java: func(p, v string, t DataType) string {
			return "java.util.Arrays.asList(" + joinQuoted(v, t, ", ") + ").contains(" + p + ")"
		},
		cel: func(p, v string, t DataType) string { return p + " in [" + joinQuoted(v, t, ", ") + "]" },
	},
	NotIn: {
		display: "not in list", category: CategoryCollection, numeric: true, text: true, needsValue: true,
		unary: func(_, v string, t DataType) string { return "not(" + joinQuoted(v, t, ", ") + ")" },
		feel:  func(p, v string, t DataType) string { return p + " not in (" + joinQuoted(v, t, ", ") + ")" },
		java: func(p, v string, t DataType) string {
			return "!java.util.Arrays.asList(" + joinQuoted(v, t, ", ") + ").contains(" + p + ")"
		},
		cel: func(p, v string, t DataType) string { return "!(" + p + " in [" + joinQuoted(v, t, ", ") + "])" },
	},
}

// operatorOrder fixes a stable listing order for OperatorsForType.
var operatorOrder = []Operator{
	Equals, NotEquals,
	GreaterThan, GreaterOrEqual, LessThan, LessOrEqual, Between,
	Contains, NotContains, StartsWith, EndsWith, Matches, EqualsIgnoreCase,
	IsNull, IsNotNull, IsEmpty, IsNotEmpty,
	In, NotIn,
}

// Known reports whether the operator exists in the catalog.
func (o Operator) Known() bool {
	_, ok := catalog[o]
	return ok
}

// Symbol returns the operator's symbol.
func (o Operator) Symbol() string { return string(o) }

// DisplayName returns a human-readable name for the operator.
func (o Operator) DisplayName() string {
	if b, ok := catalog[o]; ok {
		return b.display
	}
	return string(o)
}

// Category returns the operator's value category.
func (o Operator) Category() Category {
	if b, ok := catalog[o]; ok {
		return b.category
	}
	return CategoryComparison
}

// RequiresValue reports whether the operator needs a comparison value. The
// null/empty checks are the only operators that do not.
func (o Operator) RequiresValue() bool {
	b, ok := catalog[o]
	return !ok || b.needsValue
}

// SupportsType reports whether the operator can be applied to a parameter of
// the given kind. The zero DataType is compatible with everything. Date kinds
// compare like numbers; booleans only support equality and null checks.
func (o Operator) SupportsType(t DataType) bool {
	b, ok := catalog[o]
	if !ok {
		return false
	}
	switch t {
	case "":
		return true
	case Integer, Long, Double, Date, DateTime:
		return b.numeric
	case String:
		return b.text
	case Boolean:
		return o == Equals || o == NotEquals || o == IsNull || o == IsNotNull
	default:
		return true
	}
}

// Render produces the notation-specific fragment for this operator applied to
// param and value of kind t. Unknown operators fall back to an equality-style
// rendering so that malformed expressions still yield best-effort text.
func (o Operator) Render(n Notation, param, value string, t DataType) string {
	b, ok := catalog[o]
	if !ok {
		switch n {
		case NotationFEEL:
			return param + " = " + value
		case NotationJava, NotationCEL:
			return param + " == " + value
		default:
			return value
		}
	}
	switch n {
	case NotationFEEL:
		return b.feel(param, value, t)
	case NotationJava:
		return b.java(param, value, t)
	case NotationCEL:
		return b.cel(param, value, t)
	default:
		return b.unary(param, value, t)
	}
}

// OperatorFromSymbol finds an operator by its symbol. The boolean result is
// false for unknown symbols.
func OperatorFromSymbol(symbol string) (Operator, bool) {
	o := Operator(symbol)
	_, ok := catalog[o]
	return o, ok
}

// OperatorsForType returns all operators compatible with the given kind, in a
// stable catalog order.
func OperatorsForType(t DataType) []Operator {
	var out []Operator
	for _, o := range operatorOrder {
		if o.SupportsType(t) {
			out = append(out, o)
		}
	}
	return out
}
