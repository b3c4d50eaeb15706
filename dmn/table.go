package dmn

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rulecraft/dectable"
)

// Column is one input column of a generated table. Expression is the text
// the engine evaluates for the column: the parameter name for discovered
// columns, the declared expression for computed ones.
type Column struct {
	Name       string
	Label      string
	Expression string
	Type       dectable.DataType
}

// Table is a fully assembled decision table: document metadata, input and
// output columns, and one compiled row per rule alternative. Build one with
// Generate or GenerateRules, then serialize it with XML.
type Table struct {
	DefinitionsID   string
	DefinitionsName string
	DecisionID      string
	DecisionName    string
	TableID         string
	HitPolicy       HitPolicy

	Inputs  []Column
	Outputs []OutputColumn
	Rows    []dectable.Row
}

// Generate compiles a single expression into a decision table. Input columns
// are the expression's parameters in discovery order, followed by the
// configured computed inputs. Every row carries the configured output
// defaults, formatted by output kind (string outputs are quoted).
func Generate(e dectable.Expression, cfg Config) *Table {
	cfg = cfg.normalized()

	params := dectable.Parameters(e)
	outputs := make([]string, len(cfg.Outputs))
	for i, o := range cfg.Outputs {
		outputs[i] = formatOutputValue(o.Default, o.Type)
	}

	t := newTable(params, cfg)
	t.Rows = padComputed(dectable.CompileRows(e, params, outputs), len(cfg.ComputedInputs))
	return t
}

// GenerateRules compiles several independent rules into one table. The
// input column set is the union of all rule parameters, discovered in rule
// order; each rule compiles against the shared columns and its rows keep the
// rule's output values verbatim. Rows concatenate in rule order, so with the
// FIRST hit policy earlier rules win.
func GenerateRules(defs []RuleDefinition, cfg Config) *Table {
	cfg = cfg.normalized()

	var params []string
	seen := map[string]bool{}
	for _, def := range defs {
		for _, p := range dectable.Parameters(def.Expr) {
			if !seen[p] {
				seen[p] = true
				params = append(params, p)
			}
		}
	}

	t := newTable(params, cfg)
	for _, def := range defs {
		rows := dectable.CompileRows(def.Expr, params, ruleOutputs(def.Outputs, cfg.Outputs))
		t.Rows = append(t.Rows, padComputed(rows, len(cfg.ComputedInputs))...)
	}
	return t
}

func newTable(params []string, cfg Config) *Table {
	t := &Table{
		DefinitionsID:   cfg.DefinitionsID,
		DefinitionsName: cfg.DefinitionsName,
		DecisionID:      cfg.DecisionID,
		DecisionName:    cfg.DecisionName,
		TableID:         cfg.TableID,
		HitPolicy:       cfg.HitPolicy,
		Outputs:         cfg.Outputs,
	}
	for _, p := range params {
		t.Inputs = append(t.Inputs, Column{
			Name:       p,
			Label:      cfg.ParameterLabel(p),
			Expression: p,
			Type:       cfg.ParameterType(p),
		})
	}
	for _, ci := range cfg.ComputedInputs {
		typ := ci.Type
		if typ == "" {
			typ = dectable.String
		}
		label := ci.Label
		if label == "" {
			label = ci.Name
		}
		t.Inputs = append(t.Inputs, Column{
			Name:       ci.Name,
			Label:      label,
			Expression: ci.Expression,
			Type:       typ,
		})
	}
	return t
}

// padComputed appends one unconstrained entry per computed column to every
// row, so that row width matches the input column count.
func padComputed(rows []dectable.Row, n int) []dectable.Row {
	if n == 0 {
		return rows
	}
	for i := range rows {
		rows[i].InputEntries = append(rows[i].InputEntries, make([]string, n)...)
	}
	return rows
}

// ruleOutputs aligns a rule's verbatim output values to the configured
// output columns, filling missing trailing values with formatted defaults.
func ruleOutputs(values []string, cols []OutputColumn) []string {
	out := make([]string, len(cols))
	for i, col := range cols {
		if i < len(values) {
			out[i] = values[i]
			continue
		}
		out[i] = formatOutputValue(col.Default, col.Type)
	}
	return out
}

// formatOutputValue renders an output literal for its declared kind. String
// outputs are quoted; everything else passes through raw.
func formatOutputValue(value string, t dectable.DataType) string {
	if t == dectable.String {
		return `"` + value + `"`
	}
	return value
}

// String renders the table for debugging. Unconstrained cells show as "-",
// the conventional irrelevant-input marker.
func (t *Table) String() string {
	tw := table.NewWriter()
	tw.SetTitle(t.DecisionName + " (" + string(t.HitPolicy) + ")")

	header := table.Row{"#"}
	for _, in := range t.Inputs {
		header = append(header, in.Label)
	}
	for _, out := range t.Outputs {
		header = append(header, out.Label)
	}
	tw.AppendHeader(header)

	for i, row := range t.Rows {
		r := table.Row{i + 1}
		for _, cell := range row.InputEntries {
			if cell == "" {
				cell = "-"
			}
			r = append(r, cell)
		}
		for _, cell := range row.OutputEntries {
			r = append(r, cell)
		}
		tw.AppendRow(r)
	}

	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)
	return tw.Render()
}
