package dmn_test

import (
	"strings"
	"testing"

	"github.com/rulecraft/dectable"
	"github.com/rulecraft/dectable/dmn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSingleExpression(t *testing.T) {

	expr := dectable.AndAll(
		dectable.Gt("amount", "100"),
		dectable.Eq("status", "active"),
	)

	cfg := dmn.DefaultConfig()
	cfg.ParameterTypes = map[string]dectable.DataType{
		"amount": dectable.Integer,
		"status": dectable.String,
	}

	tbl := dmn.Generate(expr, cfg)

	require.Len(t, tbl.Inputs, 2)
	assert.Equal(t, "amount", tbl.Inputs[0].Name)
	assert.Equal(t, dectable.Integer, tbl.Inputs[0].Type)
	assert.Equal(t, "status", tbl.Inputs[1].Name)

	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"> 100", `"active"`}, tbl.Rows[0].InputEntries)
	assert.Equal(t, []string{`"approved"`}, tbl.Rows[0].OutputEntries)

	assert.Equal(t, "definitions_1", tbl.DefinitionsID)
	assert.Equal(t, "decision_1", tbl.DecisionID)
	assert.Equal(t, dmn.First, tbl.HitPolicy)
}

func TestGenerateOrSplit(t *testing.T) {

	expr := dectable.OrAll(
		dectable.NewGroup(dectable.Gt("amount", "500")),
		dectable.NewGroup(dectable.Eq("customerType", "vip")),
	)

	tbl := dmn.Generate(expr, dmn.Config{})

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"> 500", ""}, tbl.Rows[0].InputEntries)
	assert.Equal(t, []string{"", `"vip"`}, tbl.Rows[1].InputEntries)
	// both rows carry the default output
	assert.Equal(t, []string{`"approved"`}, tbl.Rows[0].OutputEntries)
	assert.Equal(t, []string{`"approved"`}, tbl.Rows[1].OutputEntries)
}

func TestGenerateNumericOutputNotQuoted(t *testing.T) {

	cfg := dmn.Config{
		Outputs: []dmn.OutputColumn{
			{Name: "score", Type: dectable.Integer, Default: "10"},
		},
	}

	tbl := dmn.Generate(dectable.Gt("amount", "100"), cfg)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"10"}, tbl.Rows[0].OutputEntries)
}

func TestGenerateComputedInputs(t *testing.T) {

	cfg := dmn.DefaultConfig()
	cfg.ComputedInputs = []dmn.ComputedInput{
		{Name: "riskScore", Label: "Risk", Expression: "amount * factor", Type: dectable.Double},
	}

	tbl := dmn.Generate(dectable.Gt("amount", "100"), cfg)

	require.Len(t, tbl.Inputs, 2)
	assert.Equal(t, "amount * factor", tbl.Inputs[1].Expression)
	assert.Equal(t, "Risk", tbl.Inputs[1].Label)

	// computed columns are unconstrained on every row
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"> 100", ""}, tbl.Rows[0].InputEntries)
}

func TestGenerateRules(t *testing.T) {

	defs := []dmn.RuleDefinition{
		{
			Expr: dectable.AndAll(
				dectable.Gt("amount", "1000"),
				dectable.Eq("region", "EU"),
			),
			Outputs: []string{`"review"`},
		},
		{
			Expr:    dectable.Eq("customerType", "vip"),
			Outputs: []string{`"approve"`},
		},
		{
			Expr:    dectable.True,
			Outputs: []string{`"reject"`},
		},
	}

	tbl := dmn.GenerateRules(defs, dmn.DefaultConfig())

	// union of parameters in rule order
	require.Len(t, tbl.Inputs, 3)
	assert.Equal(t, "amount", tbl.Inputs[0].Name)
	assert.Equal(t, "region", tbl.Inputs[1].Name)
	assert.Equal(t, "customerType", tbl.Inputs[2].Name)

	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, []string{"> 1000", `"EU"`, ""}, tbl.Rows[0].InputEntries)
	assert.Equal(t, []string{"", "", `"vip"`}, tbl.Rows[1].InputEntries)
	// catch-all rule matches everything
	assert.Equal(t, []string{"", "", ""}, tbl.Rows[2].InputEntries)

	// outputs pass through verbatim
	assert.Equal(t, []string{`"review"`}, tbl.Rows[0].OutputEntries)
	assert.Equal(t, []string{`"approve"`}, tbl.Rows[1].OutputEntries)
	assert.Equal(t, []string{`"reject"`}, tbl.Rows[2].OutputEntries)
}

func TestGenerateRulesOrInsideRule(t *testing.T) {

	defs := []dmn.RuleDefinition{
		{
			Expr: dectable.OrAll(
				dectable.Gt("amount", "500"),
				dectable.Eq("tier", "gold"),
			),
			Outputs: []string{`"fast"`},
		},
		{
			Expr:    dectable.True,
			Outputs: []string{`"slow"`},
		},
	}

	tbl := dmn.GenerateRules(defs, dmn.DefaultConfig())

	// the OR inside the first rule contributes two rows before the catch-all
	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, []string{`"fast"`}, tbl.Rows[0].OutputEntries)
	assert.Equal(t, []string{`"fast"`}, tbl.Rows[1].OutputEntries)
	assert.Equal(t, []string{`"slow"`}, tbl.Rows[2].OutputEntries)
}

func TestGenerateRulesMissingOutputsFilled(t *testing.T) {

	cfg := dmn.DefaultConfig()
	cfg.Outputs = []dmn.OutputColumn{
		{Name: "result", Type: dectable.String, Default: "approved"},
		{Name: "score", Type: dectable.Integer, Default: "0"},
	}

	defs := []dmn.RuleDefinition{
		{Expr: dectable.Gt("amount", "10"), Outputs: []string{`"manual"`}},
	}

	tbl := dmn.GenerateRules(defs, cfg)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{`"manual"`, "0"}, tbl.Rows[0].OutputEntries)
}

func TestXMLRoundTrip(t *testing.T) {

	expr := dectable.AndAll(
		dectable.Gt("amount", "100"),
		dectable.Eq("status", "active"),
	)
	cfg := dmn.DefaultConfig()
	cfg.ParameterTypes = map[string]dectable.DataType{"amount": dectable.Integer}

	tbl := dmn.Generate(expr, cfg)

	doc, err := tbl.XML()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.Contains(t, doc, `id="definitions_1"`)
	assert.Contains(t, doc, `hitPolicy="FIRST"`)
	assert.Contains(t, doc, `id="input_1"`)
	assert.Contains(t, doc, `id="inputEntry_1_2"`)
	assert.Contains(t, doc, `typeRef="integer"`)
	assert.Contains(t, doc, "https://www.omg.org/spec/DMN/20191111/MODEL/")

	parsed, err := dmn.Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, tbl.DecisionID, parsed.DecisionID)
	assert.Equal(t, tbl.HitPolicy, parsed.HitPolicy)
	require.Len(t, parsed.Inputs, len(tbl.Inputs))
	for i := range tbl.Inputs {
		assert.Equal(t, tbl.Inputs[i].Expression, parsed.Inputs[i].Expression)
		assert.Equal(t, tbl.Inputs[i].Type, parsed.Inputs[i].Type)
	}
	require.Len(t, parsed.Rows, len(tbl.Rows))
	assert.Equal(t, tbl.Rows[0].InputEntries, parsed.Rows[0].InputEntries)
	assert.Equal(t, tbl.Rows[0].OutputEntries, parsed.Rows[0].OutputEntries)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := dmn.Parse("not xml at all <")
	require.Error(t, err)
}

func TestTableString(t *testing.T) {

	tbl := dmn.Generate(dectable.OrAll(
		dectable.Gt("amount", "500"),
		dectable.Eq("tier", "gold"),
	), dmn.DefaultConfig())

	s := tbl.String()
	assert.Contains(t, s, "Business Rule Decision")
	assert.Contains(t, s, "amount")
	assert.Contains(t, s, "Result")
	// unconstrained cells render as the irrelevant marker
	assert.Contains(t, s, "-")
}
