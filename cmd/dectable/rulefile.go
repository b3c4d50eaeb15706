package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rulecraft/dectable"
	"github.com/rulecraft/dectable/dmn"
)

// RuleFile is the YAML schema of a dectable rule file.
type RuleFile struct {
	DefinitionsMeta struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"definitions"`
	Decision struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"decision"`
	TableID   string `yaml:"tableId"`
	HitPolicy string `yaml:"hitPolicy"`

	Parameters []struct {
		Name  string `yaml:"name"`
		Type  string `yaml:"type"`
		Label string `yaml:"label"`
	} `yaml:"parameters"`

	ComputedInputs []struct {
		Name       string `yaml:"name"`
		Label      string `yaml:"label"`
		Expression string `yaml:"expression"`
		Type       string `yaml:"type"`
	} `yaml:"computedInputs"`

	Outputs []struct {
		Name    string `yaml:"name"`
		Label   string `yaml:"label"`
		Type    string `yaml:"type"`
		Default string `yaml:"default"`
	} `yaml:"outputs"`

	Rules []FileRule `yaml:"rules"`
}

// FileRule is one rule entry: criteria in the flat-record encoding (plain or
// base64) plus the output values its rows carry.
type FileRule struct {
	Criteria string   `yaml:"criteria"`
	Outputs  []string `yaml:"outputs"`
}

// LoadRuleFile reads and parses a YAML rule file.
func LoadRuleFile(path string) (*RuleFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading rule file %s", path)
	}
	var f RuleFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrapf(err, "parsing rule file %s", path)
	}
	if len(f.Rules) == 0 {
		return nil, errors.Errorf("rule file %s declares no rules", path)
	}
	return &f, nil
}

// Config maps the file's metadata and column declarations to a generation
// config. Blank fields stay blank; the dmn package fills in defaults.
func (f *RuleFile) Config() dmn.Config {
	cfg := dmn.Config{
		DefinitionsID:   f.DefinitionsMeta.ID,
		DefinitionsName: f.DefinitionsMeta.Name,
		DecisionID:      f.Decision.ID,
		DecisionName:    f.Decision.Name,
		TableID:         f.TableID,
		HitPolicy:       dmn.HitPolicy(f.HitPolicy),
	}

	if len(f.Parameters) > 0 {
		cfg.ParameterTypes = map[string]dectable.DataType{}
		cfg.ParameterLabels = map[string]string{}
		for _, p := range f.Parameters {
			cfg.ParameterTypes[p.Name] = dectable.DataTypeFromRef(p.Type)
			if p.Label != "" {
				cfg.ParameterLabels[p.Name] = p.Label
			}
		}
	}
	for _, ci := range f.ComputedInputs {
		cfg.ComputedInputs = append(cfg.ComputedInputs, dmn.ComputedInput{
			Name:       ci.Name,
			Label:      ci.Label,
			Expression: ci.Expression,
			Type:       dectable.DataTypeFromRef(ci.Type),
		})
	}
	for _, o := range f.Outputs {
		cfg.Outputs = append(cfg.Outputs, dmn.OutputColumn{
			Name:    o.Name,
			Label:   o.Label,
			Type:    dectable.DataTypeFromRef(o.Type),
			Default: o.Default,
		})
	}
	return cfg
}

// Expressions decodes every rule's criteria.
func (f *RuleFile) Expressions() ([]dectable.Expression, error) {
	out := make([]dectable.Expression, len(f.Rules))
	for i, r := range f.Rules {
		e, err := decodeCriteria(r.Criteria)
		if err != nil {
			return nil, errors.Wrapf(err, "rule %d", i+1)
		}
		out[i] = e
	}
	return out, nil
}

// Definitions decodes the rules into generation inputs.
func (f *RuleFile) Definitions() ([]dmn.RuleDefinition, error) {
	exprs, err := f.Expressions()
	if err != nil {
		return nil, err
	}
	defs := make([]dmn.RuleDefinition, len(exprs))
	for i, e := range exprs {
		defs[i] = dmn.RuleDefinition{Expr: e, Outputs: f.Rules[i].Outputs}
	}
	return defs, nil
}

// decodeCriteria accepts either the plain flat-record form or its base64
// transport form. Record syntax characters cannot occur in base64, so their
// presence picks the plain decoder.
func decodeCriteria(s string) (dectable.Expression, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, ",<>() ") {
		return dectable.DecodeRecords(s), nil
	}
	return dectable.DecodeBase64(s)
}
