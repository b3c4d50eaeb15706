package dectable

import (
	"fmt"
	"strings"
)

// Builder assembles an expression fluently:
//
//	expr := dectable.NewBuilder().
//		Gt("amount", "100").
//		And().
//		Eq("status", "active").
//		Build()
//
// The builder stages nodes in a mutable list; Build seals them into an
// immutable expression. A connective left unset between two entries defaults
// to AND.
type Builder struct {
	nodes   []Node
	pending LogicalOperator
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) add(e Expression) *Builder {
	op := NoOp
	if len(b.nodes) > 0 {
		op = b.pending
		if op == NoOp {
			op = And
		}
	}
	b.nodes = append(b.nodes, Node{Op: op, Child: e})
	b.pending = NoOp
	return b
}

// Condition adds a condition, inferring the data type from the value.
func (b *Builder) Condition(parameter string, op Operator, value string) *Builder {
	return b.add(NewCondition(parameter, op, value))
}

// TypedCondition adds a condition with an explicit data type.
func (b *Builder) TypedCondition(parameter string, op Operator, value string, t DataType) *Builder {
	return b.add(NewTypedCondition(parameter, op, value, t))
}

// Shorthand condition methods.

func (b *Builder) Eq(parameter, value string) *Builder {
	return b.Condition(parameter, Equals, value)
}
func (b *Builder) Neq(parameter, value string) *Builder {
	return b.Condition(parameter, NotEquals, value)
}
func (b *Builder) Gt(parameter, value string) *Builder {
	return b.Condition(parameter, GreaterThan, value)
}
func (b *Builder) Gte(parameter, value string) *Builder {
	return b.Condition(parameter, GreaterOrEqual, value)
}
func (b *Builder) Lt(parameter, value string) *Builder {
	return b.Condition(parameter, LessThan, value)
}
func (b *Builder) Lte(parameter, value string) *Builder {
	return b.Condition(parameter, LessOrEqual, value)
}
func (b *Builder) Contains(parameter, value string) *Builder {
	return b.TypedCondition(parameter, Contains, value, String)
}
func (b *Builder) StartsWith(parameter, value string) *Builder {
	return b.TypedCondition(parameter, StartsWith, value, String)
}
func (b *Builder) EndsWith(parameter, value string) *Builder {
	return b.TypedCondition(parameter, EndsWith, value, String)
}
func (b *Builder) IsNull(parameter string) *Builder {
	return b.Condition(parameter, IsNull, "")
}
func (b *Builder) IsNotNull(parameter string) *Builder {
	return b.Condition(parameter, IsNotNull, "")
}
func (b *Builder) IsEmpty(parameter string) *Builder {
	return b.TypedCondition(parameter, IsEmpty, "", String)
}

// In adds: parameter in (values...).
func (b *Builder) In(parameter string, values ...string) *Builder {
	return b.Condition(parameter, In, strings.Join(values, ","))
}

// Between adds: parameter between min and max.
func (b *Builder) Between(parameter, min, max string) *Builder {
	return b.Condition(parameter, Between, min+","+max)
}

// And sets AND as the connective for the next entry.
func (b *Builder) And() *Builder {
	b.pending = And
	return b
}

// Or sets OR as the connective for the next entry.
func (b *Builder) Or() *Builder {
	b.pending = Or
	return b
}

// Group adds a parenthesized sub-expression built with a nested builder.
func (b *Builder) Group(fn func(*Builder)) *Builder {
	inner := NewBuilder()
	fn(inner)
	return b.add(NewGroup(inner.Build()))
}

// GroupExpr adds a pre-built expression wrapped in a group.
func (b *Builder) GroupExpr(e Expression) *Builder {
	return b.add(NewGroup(e))
}

// Expr adds a pre-built expression.
func (b *Builder) Expr(e Expression) *Builder {
	return b.add(e)
}

// Build seals the staged nodes into an expression. An empty builder yields
// the always-true constant; a single entry yields the bare child.
func (b *Builder) Build() Expression {
	switch len(b.nodes) {
	case 0:
		return True
	case 1:
		return b.nodes[0].Child
	default:
		return NewComposite(b.nodes...)
	}
}

// BuildValidated builds the expression and rejects it if validation reports
// errors.
func (b *Builder) BuildValidated() (Expression, error) {
	e := b.Build()
	result := Validate(e)
	if !result.IsValid() {
		return nil, fmt.Errorf("invalid expression: %s", strings.Join(result.Errors, "; "))
	}
	return e, nil
}
