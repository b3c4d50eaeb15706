// Package cel renders expression trees as CEL expressions and evaluates
// them against input data with Google's cel-go engine. See
// https://github.com/google/cel-go for more information about CEL.
package cel

import (
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/checker/decls"
	"github.com/google/cel-go/ext"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"

	"github.com/rulecraft/dectable"
)

// Renderer turns an expression tree into a CEL boolean expression. It
// implements dectable.Renderer.
type Renderer struct{}

func (Renderer) Name() string { return "cel" }

func (Renderer) Description() string {
	return "CEL boolean expression (Common Expression Language)"
}

func (Renderer) Render(e dectable.Expression) string {
	return render(e)
}

func render(e dectable.Expression) string {
	switch v := e.(type) {
	case *dectable.Condition:
		text := v.Operator.Render(dectable.NotationCEL, v.Parameter, v.Value, v.Type)
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

// Engine compiles rendered expressions to runnable CEL programs and
// evaluates them against input data.
type Engine struct {
	renderer Renderer
}

// NewEngine returns a ready-to-use engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Compile renders the expression to CEL, builds an environment declaring
// every referenced parameter with its kind from types (dyn when missing),
// then parses, checks and assembles a runnable program.
func (e *Engine) Compile(expr dectable.Expression, types map[string]dectable.DataType) (cel.Program, error) {
	src := e.renderer.Render(expr)

	var items []*exprpb.Decl
	for _, p := range dectable.Parameters(expr) {
		items = append(items, decls.NewVar(p, celType(types[p])))
	}

	env, err := cel.NewEnv(ext.Strings(), cel.Declarations(items...))
	if err != nil {
		return nil, fmt.Errorf("building environment: %w", err)
	}

	// Parse the expression to an AST
	p, iss := env.Parse(src)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("parsing expression %q: %w", src, iss.Err())
	}

	// Type-check the parsed AST against the declarations
	c, iss := env.Check(p)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("checking expression %q: %w", src, iss.Err())
	}

	prg, err := env.Program(c)
	if err != nil {
		return nil, fmt.Errorf("generating program for %q: %w", src, err)
	}
	return prg, nil
}

// Evaluate compiles the expression and runs it against data, coercing the
// result to bool. Non-boolean results evaluate to false.
func (e *Engine) Evaluate(expr dectable.Expression, data map[string]interface{}, types map[string]dectable.DataType) (bool, error) {
	prg, err := e.Compile(expr, types)
	if err != nil {
		return false, err
	}

	rawValue, _, err := prg.Eval(data)
	if err != nil {
		return false, fmt.Errorf("evaluating expression: %w", err)
	}

	v, ok := rawValue.Value().(bool)
	return ok && v, nil
}

// celType maps a declared parameter kind to its CEL declaration type.
func celType(t dectable.DataType) *exprpb.Type {
	switch t {
	case dectable.String:
		return decls.String
	case dectable.Integer, dectable.Long:
		return decls.Int
	case dectable.Double:
		return decls.Double
	case dectable.Boolean:
		return decls.Bool
	case dectable.Date, dectable.DateTime:
		return decls.Timestamp
	default:
		return decls.Dyn
	}
}
