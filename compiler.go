package dectable

import "strings"

// Row is one compiled decision-table row: one constraint entry per
// discovered parameter (empty = no restriction) and one output entry per
// output column. Rows are produced fresh on every compile.
type Row struct {
	InputEntries  []string
	OutputEntries []string
}

// listSeparator joins multiple constraints on the same parameter within one
// row. In unary-test syntax a comma-separated cell means "matches any of
// these".
const listSeparator = ", "

// CompileRows normalizes the expression into decision-table rows: one row
// per disjunctive branch of the top-level node list, one constraint entry
// per parameter in params, and outputs stamped verbatim onto every row.
//
// The split happens on top-level OR connectives only. Conditions inside a
// group all land in the enclosing row's columns, even ones joined by a
// nested OR; the compiler does not split on connectives found below the top
// level. Multiple constraints collected for the same parameter are joined
// with the unary-test list separator, which reads as "any of these" in the
// output notation even when the source joined them with AND. Both behaviors
// are part of the compiler's contract; see the package tests.
//
// CompileRows never fails. Unknown operators and malformed list values pass
// through into the constraint text.
func CompileRows(e Expression, params []string, outputs []string) []Row {
	switch v := e.(type) {
	case *Constant:
		if !v.Value() {
			return nil // matches nothing: no rows
		}
		return []Row{wildcardRow(params, outputs)}
	case *Condition:
		return []Row{conditionRow(v, params, outputs)}
	case *Group:
		return CompileRows(v.Child, params, outputs)
	case *Composite:
		return compositeRows(v, params, outputs)
	}
	return nil
}

func wildcardRow(params, outputs []string) Row {
	return Row{
		InputEntries:  make([]string, len(params)),
		OutputEntries: copyStrings(outputs),
	}
}

func conditionRow(c *Condition, params, outputs []string) Row {
	row := wildcardRow(params, outputs)
	for i, p := range params {
		if p == c.Parameter {
			row.InputEntries[i] = constraintText(c)
		}
	}
	return row
}

func compositeRows(c *Composite, params, outputs []string) []Row {
	var rows []Row
	for _, group := range splitOnOr(c.Nodes()) {
		if groupMatchesNothing(group) {
			continue
		}
		row := wildcardRow(params, outputs)
		for i, p := range params {
			var texts []string
			for _, n := range group {
				collectConstraints(n.Child, p, &texts)
			}
			row.InputEntries[i] = strings.Join(texts, listSeparator)
		}
		rows = append(rows, row)
	}
	return rows
}

// splitOnOr partitions the top-level node list into row groups: a new group
// starts at every OR connective. Nodes between OR boundaries form an
// implicit conjunction.
func splitOnOr(nodes []Node) [][]Node {
	var groups [][]Node
	var current []Node
	for _, n := range nodes {
		if n.Op == Or && len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, n)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// groupMatchesNothing reports whether a row group contains an always-false
// constant. Such a group is a conjunction with false and emits no row.
func groupMatchesNothing(group []Node) bool {
	for _, n := range group {
		if alwaysFalse(n.Child) {
			return true
		}
	}
	return false
}

func alwaysFalse(e Expression) bool {
	switch v := e.(type) {
	case *Constant:
		return !v.Value()
	case *Group:
		return alwaysFalse(v.Child)
	}
	return false
}

// collectConstraints gathers the constraint text of every leaf condition on
// param reachable from e, unwrapping groups and nested composites along the
// way.
func collectConstraints(e Expression, param string, out *[]string) {
	switch v := e.(type) {
	case *Condition:
		if v.Parameter == param {
			*out = append(*out, constraintText(v))
		}
	case *Group:
		collectConstraints(v.Child, param, out)
	case *Composite:
		for _, n := range v.Nodes() {
			collectConstraints(n.Child, param, out)
		}
	case *Constant:
		// constants place no column constraint
	}
}

// constraintText renders a condition as unary-test cell text.
func constraintText(c *Condition) string {
	return c.Operator.Render(NotationUnary, "", c.Value, c.Type)
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
