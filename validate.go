package dectable

import (
	"fmt"
	"strings"
)

// ValidationResult aggregates the findings of Validate. Errors make the
// expression invalid; warnings are advisory. Validation never blocks
// compilation or rendering; callers decide what to do with the findings.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// IsValid reports whether validation found no errors.
func (r ValidationResult) IsValid() bool { return len(r.Errors) == 0 }

// HasWarnings reports whether validation produced warnings.
func (r ValidationResult) HasWarnings() bool { return len(r.Warnings) > 0 }

func (r ValidationResult) String() string {
	if r.IsValid() && !r.HasWarnings() {
		return "Valid"
	}
	var parts []string
	if len(r.Errors) > 0 {
		parts = append(parts, "Errors: "+strings.Join(r.Errors, "; "))
	}
	if len(r.Warnings) > 0 {
		parts = append(parts, "Warnings: "+strings.Join(r.Warnings, "; "))
	}
	return strings.Join(parts, "; ")
}

func (r *ValidationResult) errorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) warnf(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Validate walks the expression tree and reports structural problems:
// missing parameter names, unknown or incompatible operators, missing
// required values, and malformed composite node lists. It never mutates the
// tree.
func Validate(e Expression) ValidationResult {
	var r ValidationResult
	validateInto(e, &r)
	return r
}

func validateInto(e Expression, r *ValidationResult) {
	switch v := e.(type) {
	case *Condition:
		validateCondition(v, r)
	case *Composite:
		validateComposite(v, r)
	case *Group:
		validateInto(v.Child, r)
	case *Constant:
		// always valid
	}
}

func validateCondition(c *Condition, r *ValidationResult) {
	if strings.TrimSpace(c.Parameter) == "" {
		r.errorf("parameter name is required")
	}
	if !c.Operator.Known() {
		r.errorf("unknown operator %q", string(c.Operator))
		return
	}
	if !c.Operator.SupportsType(c.Type) {
		r.errorf("operator %q does not support data type %s", c.Operator.DisplayName(), c.Type)
	}
	if c.Operator.RequiresValue() && strings.TrimSpace(c.Value) == "" {
		r.errorf("value is required for operator %q", c.Operator.DisplayName())
	}
}

func validateComposite(c *Composite, r *ValidationResult) {
	nodes := c.Nodes()
	if len(nodes) == 0 {
		r.warnf("composite expression is empty")
		return
	}
	if nodes[0].Op != NoOp {
		r.warnf("first expression should not have a logical operator")
	}
	for i := 1; i < len(nodes); i++ {
		if nodes[i].Op == NoOp {
			r.errorf("expression at position %d is missing a logical operator", i)
		}
	}
	for _, n := range nodes {
		validateInto(n.Child, r)
	}
}
