// Package java renders expression trees as Java boolean expressions, for
// embedding generated rule logic in Java source or script tasks.
package java

import (
	"strings"

	"github.com/rulecraft/dectable"
)

// Renderer turns an expression tree into a Java boolean expression. Prefix,
// when set, is prepended to every parameter reference, e.g. "input." turns
// amount into input.amount. It implements dectable.Renderer.
type Renderer struct {
	Prefix string
}

func (Renderer) Name() string { return "java" }

func (Renderer) Description() string {
	return "Java boolean expression"
}

func (r Renderer) Render(e dectable.Expression) string {
	return r.render(e)
}

func (r Renderer) render(e dectable.Expression) string {
	switch v := e.(type) {
	case *dectable.Condition:
		text := v.Operator.Render(dectable.NotationJava, r.Prefix+v.Parameter, v.Value, v.Type)
		if v.Grouped {
			return "(" + text + ")"
		}
		return text
	case *dectable.Composite:
		var sb strings.Builder
		for i, n := range v.Nodes() {
			if i > 0 && n.Op != dectable.NoOp {
				sb.WriteString(" ")
				sb.WriteString(n.Op.JavaSymbol())
				sb.WriteString(" ")
			}
			sb.WriteString(r.render(n.Child))
		}
		return sb.String()
	case *dectable.Group:
		return "(" + r.render(v.Child) + ")"
	case *dectable.Constant:
		if v.Value() {
			return "true"
		}
		return "false"
	}
	return ""
}
