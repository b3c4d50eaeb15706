// Package feel renders expression trees as FEEL boolean expressions, the
// expression language of DMN decision models.
package feel

import (
	"strings"

	"github.com/rulecraft/dectable"
)

// Renderer turns an expression tree into a single FEEL boolean expression.
// It implements dectable.Renderer.
type Renderer struct{}

func (Renderer) Name() string { return "feel" }

func (Renderer) Description() string {
	return "FEEL boolean expression (DMN expression language)"
}

// Render walks the tree and emits FEEL text. Conditions marked as grouped
// are parenthesized; connectives are the FEEL keywords and / or.
func (Renderer) Render(e dectable.Expression) string {
	return render(e)
}

func render(e dectable.Expression) string {
	switch v := e.(type) {
	case *dectable.Condition:
		text := v.Operator.Render(dectable.NotationFEEL, v.Parameter, v.Value, v.Type)
		if v.Grouped {
			return "(" + text + ")"
		}
		return text
	case *dectable.Composite:
		var sb strings.Builder
		for i, n := range v.Nodes() {
			if i > 0 && n.Op != dectable.NoOp {
				sb.WriteString(" ")
				sb.WriteString(string(n.Op))
				sb.WriteString(" ")
			}
			sb.WriteString(render(n.Child))
		}
		return sb.String()
	case *dectable.Group:
		return "(" + render(v.Child) + ")"
	case *dectable.Constant:
		if v.Value() {
			return "true"
		}
		return "false"
	}
	return ""
}
