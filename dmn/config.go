// Package dmn assembles compiled expression rows into DMN decision-table
// documents. The package is the document layer on top of the expression
// compiler: dectable turns a boolean tree into rows, dmn turns rows into a
// complete decision with inputs, outputs, metadata and XML serialization.
package dmn

import "github.com/rulecraft/dectable"

// HitPolicy selects how a DMN engine resolves multiple matching rules.
type HitPolicy string

const (
	Unique    HitPolicy = "UNIQUE"
	First     HitPolicy = "FIRST"
	Priority  HitPolicy = "PRIORITY"
	Any       HitPolicy = "ANY"
	Collect   HitPolicy = "COLLECT"
	RuleOrder HitPolicy = "RULE ORDER"
	Output    HitPolicy = "OUTPUT ORDER"
)

// Default document identifiers. Every blank Config field falls back to one
// of these.
const (
	DefaultDefinitionsID   = "definitions_1"
	DefaultDefinitionsName = "DRD"
	DefaultDecisionID      = "decision_1"
	DefaultDecisionName    = "Business Rule Decision"
	DefaultTableID         = "decisionTable_1"
)

// OutputColumn declares one output column of the generated table. Default is
// the raw output value stamped on rows generated from a single expression.
type OutputColumn struct {
	Name    string
	Label   string
	Type    dectable.DataType
	Default string
}

// ComputedInput declares an extra input column whose expression is not a
// plain parameter reference, e.g. a FEEL computation over other values.
// Generated rows leave computed columns unconstrained.
type ComputedInput struct {
	Name       string
	Label      string
	Expression string
	Type       dectable.DataType
}

// Config carries the document metadata and column declarations for table
// generation. The zero value is usable: Generate fills every blank field
// from the defaults.
type Config struct {
	DefinitionsID   string
	DefinitionsName string
	DecisionID      string
	DecisionName    string
	TableID         string
	HitPolicy       HitPolicy

	Outputs []OutputColumn

	// ParameterTypes and ParameterLabels override the inferred kind and the
	// default label (the parameter name) of discovered input columns.
	ParameterTypes  map[string]dectable.DataType
	ParameterLabels map[string]string

	ComputedInputs []ComputedInput
}

// DefaultConfig returns a config populated with the standard document
// defaults and a single string output named result.
func DefaultConfig() Config {
	return Config{
		DefinitionsID:   DefaultDefinitionsID,
		DefinitionsName: DefaultDefinitionsName,
		DecisionID:      DefaultDecisionID,
		DecisionName:    DefaultDecisionName,
		TableID:         DefaultTableID,
		HitPolicy:       First,
		Outputs: []OutputColumn{
			{Name: "result", Label: "Result", Type: dectable.String, Default: "approved"},
		},
	}
}

// ParameterType returns the declared kind for a parameter, defaulting to
// String.
func (c Config) ParameterType(name string) dectable.DataType {
	if t, ok := c.ParameterTypes[name]; ok && t != "" {
		return t
	}
	return dectable.String
}

// ParameterLabel returns the display label for a parameter, defaulting to
// the name itself.
func (c Config) ParameterLabel(name string) string {
	if l, ok := c.ParameterLabels[name]; ok && l != "" {
		return l
	}
	return name
}

// normalized returns a copy with every blank field replaced by its default.
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.DefinitionsID == "" {
		c.DefinitionsID = d.DefinitionsID
	}
	if c.DefinitionsName == "" {
		c.DefinitionsName = d.DefinitionsName
	}
	if c.DecisionID == "" {
		c.DecisionID = d.DecisionID
	}
	if c.DecisionName == "" {
		c.DecisionName = d.DecisionName
	}
	if c.TableID == "" {
		c.TableID = d.TableID
	}
	if c.HitPolicy == "" {
		c.HitPolicy = d.HitPolicy
	}
	if len(c.Outputs) == 0 {
		c.Outputs = d.Outputs
	}
	outputs := make([]OutputColumn, len(c.Outputs))
	copy(outputs, c.Outputs)
	for i, o := range outputs {
		if o.Type == "" {
			outputs[i].Type = dectable.String
		}
		if o.Label == "" {
			outputs[i].Label = o.Name
		}
	}
	c.Outputs = outputs
	return c
}

// RuleDefinition pairs one expression with the output values its rows carry.
// Used by GenerateRules to assemble a table from several independent rules.
type RuleDefinition struct {
	Expr    dectable.Expression
	Outputs []string
}
