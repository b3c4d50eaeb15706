package dectable

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// The flat-record encoding stores one record per leaf condition:
//
//	connective , open-paren , parameter , operator , value , close-paren
//
// Records are joined with the row separator. The encoding flattens composite
// and group structure the same way parameter discovery does, keeping the
// connective and parenthesis markers so the shape of the tree stays
// recoverable.
//
// Decoding is the left inverse for trees built from conditions, composites
// and constants. Group nesting does not survive a round trip: encoding marks
// a group's boundary with extra parentheses on its first and last record,
// but decoding rebuilds a flat composite and never reintroduces a Group
// node. This asymmetry is deliberate; consumers of the transport form depend
// on the flat decode.
const (
	recordSeparator = "<>"
	fieldSeparator  = ","
	recordFields    = 6
)

type record struct {
	connective string
	open       string
	parameter  string
	operator   string
	value      string
	close      string
}

func (r record) encode() string {
	return strings.Join([]string{r.connective, r.open, r.parameter, r.operator, r.value, r.close}, fieldSeparator)
}

// EncodeRecords serializes the expression to the flat-record form. A
// constant or empty expression becomes a single empty sentinel record.
func EncodeRecords(e Expression) string {
	records := expressionRecords(e)
	parts := make([]string, len(records))
	for i, r := range records {
		parts[i] = r.encode()
	}
	return strings.Join(parts, recordSeparator)
}

// EncodeBase64 serializes the expression to the base64 transport form of
// the flat-record encoding.
func EncodeBase64(e Expression) string {
	return base64.StdEncoding.EncodeToString([]byte(EncodeRecords(e)))
}

// DecodeRecords rebuilds an expression from the flat-record form. Records
// with fewer than six fields or without a parameter are dropped; an unknown
// operator symbol falls back to equality; a missing or unparseable
// connective defaults to AND. Blank input and input with no usable records
// decode to the always-true constant. DecodeRecords never fails.
func DecodeRecords(s string) Expression {
	if strings.TrimSpace(s) == "" {
		return True
	}
	var records []record
	for _, row := range strings.Split(s, recordSeparator) {
		r, ok := parseRecord(row)
		if !ok || r.parameter == "" {
			continue
		}
		records = append(records, r)
	}
	if len(records) == 0 {
		return True
	}
	if len(records) == 1 {
		return recordCondition(records[0])
	}
	nodes := make([]Node, 0, len(records))
	for i, r := range records {
		op := NoOp
		if i > 0 {
			parsed, ok := LogicalOperatorFromSymbol(r.connective)
			if !ok || parsed == NoOp {
				parsed = And
			}
			op = parsed
		}
		nodes = append(nodes, Node{Op: op, Child: recordCondition(r)})
	}
	return NewComposite(nodes...)
}

// DecodeBase64 rebuilds an expression from the base64 transport form.
func DecodeBase64(s string) (Expression, error) {
	if s == "" {
		return True, nil
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return DecodeRecords(string(raw)), nil
}

func parseRecord(row string) (record, bool) {
	parts := strings.SplitN(row, fieldSeparator, recordFields)
	if len(parts) < recordFields {
		return record{}, false
	}
	return record{
		connective: parts[0],
		open:       parts[1],
		parameter:  parts[2],
		operator:   parts[3],
		value:      parts[4],
		close:      parts[5],
	}, true
}

func recordCondition(r record) *Condition {
	op, ok := OperatorFromSymbol(r.operator)
	if !ok {
		op = Equals
	}
	return &Condition{
		Parameter: r.parameter,
		Operator:  op,
		Value:     r.value,
		Type:      InferDataType(r.value),
		Grouped:   strings.Contains(r.open, "("),
	}
}

// ---------------------------------------------------------------------------
// Flattening

func expressionRecords(e Expression) []record {
	switch v := e.(type) {
	case *Condition:
		return []record{conditionRecord(NoOp, v)}
	case *Composite:
		var out []record
		for _, n := range v.Nodes() {
			out = append(out, nodeRecords(n)...)
		}
		return out
	case *Group:
		return expressionRecords(v.Child)
	case *Constant:
		return []record{{open: "(", close: ")"}}
	}
	return nil
}

func nodeRecords(n Node) []record {
	switch v := n.Child.(type) {
	case *Condition:
		return []record{conditionRecord(n.Op, v)}
	case *Group:
		inner := expressionRecords(v.Child)
		if len(inner) == 0 {
			return nil
		}
		// Mark the group boundary with an extra parenthesis on the first and
		// last record. Decode does not undo this; see the package comment.
		inner[0].open = "(" + inner[0].open
		if n.Op != NoOp {
			inner[0].connective = string(n.Op)
		}
		inner[len(inner)-1].close += ")"
		return inner
	case *Composite:
		var out []record
		for i, nested := range v.Nodes() {
			rows := nodeRecords(nested)
			if i == 0 && n.Op != NoOp && len(rows) > 0 {
				rows[0].connective = string(n.Op)
			}
			out = append(out, rows...)
		}
		return out
	}
	return nil
}

func conditionRecord(op LogicalOperator, c *Condition) record {
	open, closing := " ", " "
	if c.Grouped {
		open, closing = "(", ")"
	}
	return record{
		connective: string(op),
		open:       open,
		parameter:  c.Parameter,
		operator:   string(c.Operator),
		value:      c.Value,
		close:      closing,
	}
}

// ---------------------------------------------------------------------------
// JSON export

type jsonExpr struct {
	LogicalOperator string     `json:"logicalOperator,omitempty"`
	Type            string     `json:"type,omitempty"`
	Parameter       string     `json:"parameter,omitempty"`
	Operator        string     `json:"operator,omitempty"`
	Value           string     `json:"value,omitempty"`
	DataType        DataType   `json:"dataType,omitempty"`
	Constant        *bool      `json:"constant,omitempty"`
	Label           string     `json:"label,omitempty"`
	Child           *jsonExpr  `json:"expression,omitempty"`
	Nodes           []jsonExpr `json:"expressions,omitempty"`
}

// ExportJSON renders the expression tree as indented JSON, one object per
// node. This is a one-way export for inspection and interchange; the
// flat-record encoding is the reversible form.
func ExportJSON(e Expression) (string, error) {
	out, err := json.MarshalIndent(toJSONExpr(NoOp, e), "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func toJSONExpr(op LogicalOperator, e Expression) jsonExpr {
	j := jsonExpr{LogicalOperator: string(op)}
	switch v := e.(type) {
	case *Condition:
		j.Type = "condition"
		j.Parameter = v.Parameter
		j.Operator = string(v.Operator)
		j.Value = v.Value
		j.DataType = v.Type
	case *Composite:
		j.Type = "composite"
		for _, n := range v.Nodes() {
			j.Nodes = append(j.Nodes, toJSONExpr(n.Op, n.Child))
		}
	case *Group:
		j.Type = "group"
		child := toJSONExpr(NoOp, v.Child)
		j.Child = &child
	case *Constant:
		j.Type = "constant"
		val := v.Value()
		j.Constant = &val
		j.Label = v.Label()
	}
	return j
}
