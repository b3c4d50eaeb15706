package dectable

import (
	"strings"
)

// LogicalOperator joins a composite node to the node before it.
type LogicalOperator string

const (
	// NoOp marks the first node of a composite, which has no connective.
	NoOp LogicalOperator = ""
	And  LogicalOperator = "and"
	Or   LogicalOperator = "or"
)

// DisplayName returns the readable form of the connective (AND / OR).
func (l LogicalOperator) DisplayName() string {
	switch l {
	case And:
		return "AND"
	case Or:
		return "OR"
	}
	return ""
}

// JavaSymbol returns the Java connective token (&& / ||).
func (l LogicalOperator) JavaSymbol() string {
	switch l {
	case And:
		return "&&"
	case Or:
		return "||"
	}
	return ""
}

// LogicalOperatorFromSymbol parses a connective symbol case-insensitively.
// Blank input is NoOp; anything unrecognized reports ok=false.
func LogicalOperatorFromSymbol(symbol string) (LogicalOperator, bool) {
	switch strings.ToLower(strings.TrimSpace(symbol)) {
	case "":
		return NoOp, true
	case "and":
		return And, true
	case "or":
		return Or, true
	}
	return NoOp, false
}

// Kind identifies the variant of an Expression.
type Kind int

const (
	KindCondition Kind = iota
	KindComposite
	KindGroup
	KindConstant
)

// Expression is the boolean rule tree: a single condition, a composite of
// conditions and sub-expressions joined by connectives, a parenthesized
// group, or a constant. Backends dispatch on the concrete type; the variant
// set is closed.
type Expression interface {
	// Kind returns the variant tag.
	Kind() Kind
	// String returns the human-readable form, e.g.
	// "(amount > 100) AND (status == active)".
	String() string
	// Copy returns a structurally equal, independent tree.
	Copy() Expression
	// Equal reports structural equality with another expression.
	Equal(Expression) bool

	isExpression()
}

// ---------------------------------------------------------------------------
// Condition

// Condition compares a single parameter to a value. It is the leaf of every
// expression tree.
type Condition struct {
	// Parameter is the variable name the condition tests. It is the join key
	// for decision-table columns.
	Parameter string
	Operator  Operator
	// Value is the raw comparison value in string form. Operators that take
	// a list or a range (in, notIn, between) carry it comma-separated.
	Value string
	// Type is the declared kind of the parameter. The zero value means
	// "inferred from Value" when built through NewCondition or the Builder.
	Type DataType
	// Grouped wraps inline renderings of this condition in parentheses.
	Grouped bool
}

// NewCondition builds a grouped condition, inferring the data type from the
// value.
func NewCondition(parameter string, op Operator, value string) *Condition {
	return &Condition{
		Parameter: parameter,
		Operator:  op,
		Value:     value,
		Type:      InferDataType(value),
		Grouped:   true,
	}
}

// NewTypedCondition builds a grouped condition with an explicit data type.
func NewTypedCondition(parameter string, op Operator, value string, t DataType) *Condition {
	return &Condition{
		Parameter: parameter,
		Operator:  op,
		Value:     value,
		Type:      t,
		Grouped:   true,
	}
}

func (c *Condition) Kind() Kind    { return KindCondition }
func (c *Condition) isExpression() {}

func (c *Condition) String() string {
	var sb strings.Builder
	if c.Grouped {
		sb.WriteString("(")
	}
	sb.WriteString(c.Parameter)
	sb.WriteString(" ")
	sb.WriteString(string(c.Operator))
	if c.Operator.RequiresValue() {
		sb.WriteString(" ")
		sb.WriteString(c.Value)
	}
	if c.Grouped {
		sb.WriteString(")")
	}
	return sb.String()
}

func (c *Condition) Copy() Expression {
	cp := *c
	return &cp
}

// Equal compares parameter, operator and value. The declared type and the
// grouping flag are presentation details and do not take part in identity.
func (c *Condition) Equal(other Expression) bool {
	o, ok := other.(*Condition)
	if !ok {
		return false
	}
	return c.Parameter == o.Parameter && c.Operator == o.Operator && c.Value == o.Value
}

// Shorthand leaf constructors.

func Eq(parameter, value string) *Condition  { return NewCondition(parameter, Equals, value) }
func Neq(parameter, value string) *Condition { return NewCondition(parameter, NotEquals, value) }
func Gt(parameter, value string) *Condition  { return NewCondition(parameter, GreaterThan, value) }
func Gte(parameter, value string) *Condition {
	return NewCondition(parameter, GreaterOrEqual, value)
}
func Lt(parameter, value string) *Condition { return NewCondition(parameter, LessThan, value) }
func Lte(parameter, value string) *Condition {
	return NewCondition(parameter, LessOrEqual, value)
}
func ContainsText(parameter, value string) *Condition {
	return NewTypedCondition(parameter, Contains, value, String)
}
func StartsWithText(parameter, value string) *Condition {
	return NewTypedCondition(parameter, StartsWith, value, String)
}
func Null(parameter string) *Condition { return NewCondition(parameter, IsNull, "") }
func Empty(parameter string) *Condition {
	return NewTypedCondition(parameter, IsEmpty, "", String)
}

// ---------------------------------------------------------------------------
// Composite

// Node pairs a child expression with the connective joining it to the
// previous node. The first node of a composite carries NoOp.
type Node struct {
	Op    LogicalOperator
	Child Expression
}

// Composite is an ordered, flat sequence of nodes. Connectives are
// left-associative with no implied precedence; the only way to change
// grouping is to wrap a sub-expression in a Group.
type Composite struct {
	nodes []Node
}

// NewComposite builds a composite from the given nodes as-is. The node-list
// invariants (first node connective-less, later nodes connected) are checked
// by Validate, not enforced here; use AndAll/OrAll or the Builder for
// well-formed construction.
func NewComposite(nodes ...Node) *Composite {
	c := &Composite{nodes: make([]Node, len(nodes))}
	copy(c.nodes, nodes)
	return c
}

// AndAll joins the expressions with AND connectives.
func AndAll(exprs ...Expression) *Composite {
	return joinAll(And, exprs)
}

// OrAll joins the expressions with OR connectives.
func OrAll(exprs ...Expression) *Composite {
	return joinAll(Or, exprs)
}

func joinAll(op LogicalOperator, exprs []Expression) *Composite {
	nodes := make([]Node, 0, len(exprs))
	for i, e := range exprs {
		connective := op
		if i == 0 {
			connective = NoOp
		}
		nodes = append(nodes, Node{Op: connective, Child: e})
	}
	return &Composite{nodes: nodes}
}

// Nodes returns the node list. The returned slice must not be modified.
func (c *Composite) Nodes() []Node { return c.nodes }

// Len returns the number of nodes.
func (c *Composite) Len() int { return len(c.nodes) }

func (c *Composite) Kind() Kind    { return KindComposite }
func (c *Composite) isExpression() {}

func (c *Composite) String() string {
	var sb strings.Builder
	for i, n := range c.nodes {
		if i > 0 && n.Op != NoOp {
			sb.WriteString(" ")
			sb.WriteString(n.Op.DisplayName())
			sb.WriteString(" ")
		}
		sb.WriteString(n.Child.String())
	}
	return sb.String()
}

func (c *Composite) Copy() Expression {
	nodes := make([]Node, len(c.nodes))
	for i, n := range c.nodes {
		nodes[i] = Node{Op: n.Op, Child: n.Child.Copy()}
	}
	return &Composite{nodes: nodes}
}

func (c *Composite) Equal(other Expression) bool {
	o, ok := other.(*Composite)
	if !ok || len(c.nodes) != len(o.nodes) {
		return false
	}
	for i, n := range c.nodes {
		if n.Op != o.nodes[i].Op || !n.Child.Equal(o.nodes[i].Child) {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Group

// Group wraps one child expression in explicit parentheses. It is
// structurally transparent: parameter discovery and compilation see through
// it to the child.
type Group struct {
	Child Expression
}

// NewGroup wraps the expression in a group.
func NewGroup(child Expression) *Group { return &Group{Child: child} }

func (g *Group) Kind() Kind     { return KindGroup }
func (g *Group) isExpression()  {}
func (g *Group) String() string { return "(" + g.Child.String() + ")" }

func (g *Group) Copy() Expression { return &Group{Child: g.Child.Copy()} }

func (g *Group) Equal(other Expression) bool {
	o, ok := other.(*Group)
	return ok && g.Child.Equal(o.Child)
}

// ---------------------------------------------------------------------------
// Constant

// Constant always evaluates to the same boolean. True matches everything,
// False matches nothing. Useful for "Always" conditions and catch-all rules.
type Constant struct {
	value bool
	label string
}

// True and False are the shared constant instances.
var (
	True  = &Constant{value: true, label: "Always"}
	False = &Constant{value: false, label: "Never"}
)

// AlwaysTrue returns a true constant with a custom display label.
func AlwaysTrue(label string) *Constant { return &Constant{value: true, label: label} }

// AlwaysFalse returns a false constant with a custom display label.
func AlwaysFalse(label string) *Constant { return &Constant{value: false, label: label} }

// Value returns the constant boolean.
func (k *Constant) Value() bool { return k.value }

// Label returns the display label.
func (k *Constant) Label() string { return k.label }

func (k *Constant) Kind() Kind     { return KindConstant }
func (k *Constant) isExpression()  {}
func (k *Constant) String() string { return k.label }

// Copy returns the same instance; constants are immutable.
func (k *Constant) Copy() Expression { return k }

func (k *Constant) Equal(other Expression) bool {
	o, ok := other.(*Constant)
	return ok && k.value == o.value
}

// ---------------------------------------------------------------------------
// Parameter discovery

// Parameters collects the parameter names referenced by the expression in
// depth-first, left-to-right, first-seen order, deduplicated. This order
// fixes decision-table column order; it is stable across repeated calls on
// the same tree.
func Parameters(e Expression) []string {
	var out []string
	seen := map[string]bool{}
	collectParameters(e, seen, &out)
	return out
}

func collectParameters(e Expression, seen map[string]bool, out *[]string) {
	switch v := e.(type) {
	case *Condition:
		if !seen[v.Parameter] {
			seen[v.Parameter] = true
			*out = append(*out, v.Parameter)
		}
	case *Composite:
		for _, n := range v.Nodes() {
			collectParameters(n.Child, seen, out)
		}
	case *Group:
		collectParameters(v.Child, seen, out)
	case *Constant:
		// no parameters
	}
}

// Parameter describes a named variable usable in expressions, with its
// declared kind and optional display metadata. Identity is the name alone.
type Parameter struct {
	Name        string
	Type        DataType
	Label       string
	Description string
}

// NewParameter builds a parameter, defaulting the kind to String and the
// label to the name.
func NewParameter(name string, t DataType) Parameter {
	if t == "" {
		t = String
	}
	return Parameter{Name: name, Type: t, Label: name}
}
