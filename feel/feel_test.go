package feel_test

import (
	"testing"

	"github.com/rulecraft/dectable"
	"github.com/rulecraft/dectable/feel"
)

func TestRender(t *testing.T) {

	r := feel.Renderer{}

	cases := map[string]struct {
		expr dectable.Expression
		want string
	}{
		"condition": {
			expr: dectable.Gt("amount", "100"),
			want: "(amount > 100)",
		},
		"string equality": {
			expr: dectable.Eq("status", "active"),
			want: `(status = "active")`,
		},
		"and": {
			expr: dectable.AndAll(
				dectable.Gt("amount", "100"),
				dectable.Eq("status", "active"),
			),
			want: `(amount > 100) and (status = "active")`,
		},
		"or with group": {
			expr: dectable.AndAll(
				dectable.Eq("region", "EU"),
				dectable.NewGroup(dectable.OrAll(
					dectable.Gt("amount", "500"),
					dectable.Eq("customerType", "vip"),
				)),
			),
			want: `(region = "EU") and ((amount > 500) or (customerType = "vip"))`,
		},
		"ungrouped condition": {
			expr: &dectable.Condition{Parameter: "amount", Operator: dectable.GreaterThan, Value: "100", Type: dectable.Integer},
			want: "amount > 100",
		},
		"between": {
			expr: dectable.NewCondition("age", dectable.Between, "18,65"),
			want: "(age in [18..65])",
		},
		"constant true": {
			expr: dectable.True,
			want: "true",
		},
		"constant false": {
			expr: dectable.False,
			want: "false",
		},
	}

	for key, c := range cases {
		if got := r.Render(c.expr); got != c.want {
			t.Errorf("%s: Render = %q, want %q", key, got, c.want)
		}
	}
}

func TestRendererMetadata(t *testing.T) {
	var r dectable.Renderer = feel.Renderer{}
	if r.Name() != "feel" {
		t.Error("unexpected renderer name")
	}
}
