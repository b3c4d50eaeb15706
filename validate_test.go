package dectable_test

import (
	"strings"
	"testing"

	"github.com/rulecraft/dectable"
)

func TestValidateConditions(t *testing.T) {

	cases := map[string]struct {
		expr      dectable.Expression
		valid     bool
		errSubstr string
	}{
		"ok": {
			expr:  dectable.Gt("amount", "100"),
			valid: true,
		},
		"missing parameter": {
			expr:      &dectable.Condition{Operator: dectable.Equals, Value: "1"},
			valid:     false,
			errSubstr: "parameter name is required",
		},
		"unknown operator": {
			expr:      &dectable.Condition{Parameter: "x", Operator: "~=", Value: "1"},
			valid:     false,
			errSubstr: `unknown operator "~="`,
		},
		"missing required value": {
			expr:      dectable.NewTypedCondition("status", dectable.Equals, "", dectable.String),
			valid:     false,
			errSubstr: `value is required for operator "equals"`,
		},
		"no value needed": {
			expr:  dectable.Null("email"),
			valid: true,
		},
		"type mismatch": {
			expr:      dectable.NewTypedCondition("name", dectable.GreaterThan, "abc", dectable.String),
			valid:     false,
			errSubstr: "does not support data type string",
		},
		"boolean comparison": {
			expr:      dectable.NewTypedCondition("active", dectable.Contains, "tr", dectable.Boolean),
			valid:     false,
			errSubstr: "does not support data type boolean",
		},
		"constant": {
			expr:  dectable.True,
			valid: true,
		},
	}

	for key, c := range cases {
		r := dectable.Validate(c.expr)
		if r.IsValid() != c.valid {
			t.Errorf("%s: IsValid = %v, want %v (errors: %v)", key, r.IsValid(), c.valid, r.Errors)
			continue
		}
		if c.errSubstr != "" && !strings.Contains(strings.Join(r.Errors, "; "), c.errSubstr) {
			t.Errorf("%s: errors %v do not mention %q", key, r.Errors, c.errSubstr)
		}
	}
}

func TestValidateComposite(t *testing.T) {

	// well formed
	good := dectable.AndAll(dectable.Gt("a", "1"), dectable.Lt("a", "9"))
	if r := dectable.Validate(good); !r.IsValid() || r.HasWarnings() {
		t.Errorf("well-formed composite: %v", r)
	}

	// first node carrying a connective is a warning, not an error
	withOp := dectable.NewComposite(
		dectable.Node{Op: dectable.And, Child: dectable.Gt("a", "1")},
		dectable.Node{Op: dectable.And, Child: dectable.Lt("a", "9")},
	)
	r := dectable.Validate(withOp)
	if !r.IsValid() {
		t.Errorf("leading connective should be a warning, got errors: %v", r.Errors)
	}
	if !r.HasWarnings() {
		t.Error("expected a warning for the leading connective")
	}

	// a later node without a connective is an error
	missingOp := dectable.NewComposite(
		dectable.Node{Child: dectable.Gt("a", "1")},
		dectable.Node{Child: dectable.Lt("a", "9")},
	)
	r = dectable.Validate(missingOp)
	if r.IsValid() {
		t.Error("expected error for missing connective")
	}
	if !strings.Contains(strings.Join(r.Errors, "; "), "position 1") {
		t.Errorf("error should name the position: %v", r.Errors)
	}

	// empty composite warns
	r = dectable.Validate(dectable.NewComposite())
	if !r.IsValid() || !r.HasWarnings() {
		t.Errorf("empty composite should warn only: %v", r)
	}
}

func TestValidateRecursesIntoGroups(t *testing.T) {

	expr := dectable.AndAll(
		dectable.Gt("amount", "100"),
		dectable.NewGroup(&dectable.Condition{Parameter: "", Operator: dectable.Equals, Value: "x"}),
	)

	r := dectable.Validate(expr)
	if r.IsValid() {
		t.Fatal("expected the nested condition error to surface")
	}
}

func TestValidationResultString(t *testing.T) {

	if got := (dectable.ValidationResult{}).String(); got != "Valid" {
		t.Errorf("empty result String = %q, want %q", got, "Valid")
	}

	r := dectable.Validate(&dectable.Condition{Operator: dectable.Equals, Value: "1"})
	if !strings.Contains(r.String(), "Errors:") {
		t.Errorf("result with errors should mention them: %q", r.String())
	}
}
