package dmn

import (
	"encoding/xml"
	"fmt"

	"github.com/rulecraft/dectable"
)

const (
	dmnNamespace   = "https://www.omg.org/spec/DMN/20191111/MODEL/"
	modelNamespace = "http://rulecraft.io/schema/1.0/dmn"
)

type xmlDefinitions struct {
	XMLName   xml.Name    `xml:"definitions"`
	Xmlns     string      `xml:"xmlns,attr"`
	ID        string      `xml:"id,attr"`
	Name      string      `xml:"name,attr"`
	Namespace string      `xml:"namespace,attr"`
	Decision  xmlDecision `xml:"decision"`
}

type xmlDecision struct {
	ID    string           `xml:"id,attr"`
	Name  string           `xml:"name,attr"`
	Table xmlDecisionTable `xml:"decisionTable"`
}

type xmlDecisionTable struct {
	ID        string      `xml:"id,attr"`
	HitPolicy string      `xml:"hitPolicy,attr"`
	Inputs    []xmlInput  `xml:"input"`
	Outputs   []xmlOutput `xml:"output"`
	Rules     []xmlRule   `xml:"rule"`
}

type xmlInput struct {
	ID         string             `xml:"id,attr"`
	Label      string             `xml:"label,attr"`
	Expression xmlInputExpression `xml:"inputExpression"`
}

type xmlInputExpression struct {
	ID      string `xml:"id,attr"`
	TypeRef string `xml:"typeRef,attr"`
	Text    string `xml:"text"`
}

type xmlOutput struct {
	ID      string `xml:"id,attr"`
	Label   string `xml:"label,attr"`
	Name    string `xml:"name,attr"`
	TypeRef string `xml:"typeRef,attr"`
}

type xmlRule struct {
	ID            string     `xml:"id,attr"`
	InputEntries  []xmlEntry `xml:"inputEntry"`
	OutputEntries []xmlEntry `xml:"outputEntry"`
}

type xmlEntry struct {
	ID   string `xml:"id,attr"`
	Text string `xml:"text"`
}

// XML serializes the table as a DMN definitions document. Element ids are
// deterministic and 1-based: input_1, inputExpr_1, output_1, rule_1,
// inputEntry_1_1 (rule, column), outputEntry_1_1.
func (t *Table) XML() (string, error) {
	doc := xmlDefinitions{
		Xmlns:     dmnNamespace,
		ID:        t.DefinitionsID,
		Name:      t.DefinitionsName,
		Namespace: modelNamespace,
		Decision: xmlDecision{
			ID:   t.DecisionID,
			Name: t.DecisionName,
			Table: xmlDecisionTable{
				ID:        t.TableID,
				HitPolicy: string(t.HitPolicy),
			},
		},
	}

	for i, in := range t.Inputs {
		doc.Decision.Table.Inputs = append(doc.Decision.Table.Inputs, xmlInput{
			ID:    fmt.Sprintf("input_%d", i+1),
			Label: in.Label,
			Expression: xmlInputExpression{
				ID:      fmt.Sprintf("inputExpr_%d", i+1),
				TypeRef: in.Type.Ref(),
				Text:    in.Expression,
			},
		})
	}
	for i, out := range t.Outputs {
		doc.Decision.Table.Outputs = append(doc.Decision.Table.Outputs, xmlOutput{
			ID:      fmt.Sprintf("output_%d", i+1),
			Label:   out.Label,
			Name:    out.Name,
			TypeRef: out.Type.Ref(),
		})
	}
	for i, row := range t.Rows {
		rule := xmlRule{ID: fmt.Sprintf("rule_%d", i+1)}
		for j, cell := range row.InputEntries {
			rule.InputEntries = append(rule.InputEntries, xmlEntry{
				ID:   fmt.Sprintf("inputEntry_%d_%d", i+1, j+1),
				Text: cell,
			})
		}
		for j, cell := range row.OutputEntries {
			rule.OutputEntries = append(rule.OutputEntries, xmlEntry{
				ID:   fmt.Sprintf("outputEntry_%d_%d", i+1, j+1),
				Text: cell,
			})
		}
		doc.Decision.Table.Rules = append(doc.Decision.Table.Rules, rule)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling decision table %s: %w", t.DecisionID, err)
	}
	return xml.Header + string(out), nil
}

// Parse reads a DMN definitions document back into a Table. It is the left
// inverse of XML over documents this package emits; foreign documents parse
// on a best-effort basis.
func Parse(doc string) (*Table, error) {
	var d xmlDefinitions
	if err := xml.Unmarshal([]byte(doc), &d); err != nil {
		return nil, fmt.Errorf("parsing decision table document: %w", err)
	}

	t := &Table{
		DefinitionsID:   d.ID,
		DefinitionsName: d.Name,
		DecisionID:      d.Decision.ID,
		DecisionName:    d.Decision.Name,
		TableID:         d.Decision.Table.ID,
		HitPolicy:       HitPolicy(d.Decision.Table.HitPolicy),
	}
	for _, in := range d.Decision.Table.Inputs {
		t.Inputs = append(t.Inputs, Column{
			Name:       in.Expression.Text,
			Label:      in.Label,
			Expression: in.Expression.Text,
			Type:       dectable.DataTypeFromRef(in.Expression.TypeRef),
		})
	}
	for _, out := range d.Decision.Table.Outputs {
		t.Outputs = append(t.Outputs, OutputColumn{
			Name:  out.Name,
			Label: out.Label,
			Type:  dectable.DataTypeFromRef(out.TypeRef),
		})
	}
	for _, rule := range d.Decision.Table.Rules {
		var row dectable.Row
		for _, cell := range rule.InputEntries {
			row.InputEntries = append(row.InputEntries, cell.Text)
		}
		for _, cell := range rule.OutputEntries {
			row.OutputEntries = append(row.OutputEntries, cell.Text)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
