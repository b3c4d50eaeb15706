package dectable_test

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/matryer/is"
	"github.com/rulecraft/dectable"
)

func TestEncodeRecords(t *testing.T) {

	cases := map[string]struct {
		expr dectable.Expression
		want string
	}{
		"single grouped": {
			expr: dectable.Gt("amount", "100"),
			want: ",(,amount,>,100,)",
		},
		"single ungrouped": {
			expr: &dectable.Condition{Parameter: "amount", Operator: dectable.GreaterThan, Value: "100"},
			want: ", ,amount,>,100, ",
		},
		"and": {
			expr: dectable.AndAll(dectable.Gt("amount", "100"), dectable.Eq("status", "active")),
			want: ",(,amount,>,100,)<>and,(,status,==,active,)",
		},
		"or": {
			expr: dectable.OrAll(dectable.Gt("amount", "500"), dectable.Eq("customerType", "vip")),
			want: ",(,amount,>,500,)<>or,(,customerType,==,vip,)",
		},
		"constant": {
			expr: dectable.True,
			want: ",(,,,,)",
		},
		"no value operator": {
			expr: dectable.Null("email"),
			want: ",(,email,isNull,,)",
		},
	}

	for key, c := range cases {
		if got := dectable.EncodeRecords(c.expr); got != c.want {
			t.Errorf("%s: EncodeRecords = %q, want %q", key, got, c.want)
		}
	}
}

func TestEncodeGroupBoundary(t *testing.T) {
	is := is.New(t)

	// region == EU AND (amount > 500 OR customerType == vip)
	expr := dectable.NewBuilder().
		Eq("region", "EU").
		And().
		Group(func(g *dectable.Builder) {
			g.Gt("amount", "500").Or().Eq("customerType", "vip")
		}).
		Build()

	encoded := dectable.EncodeRecords(expr)
	records := strings.Split(encoded, "<>")
	is.Equal(len(records), 3)

	// the group boundary stacks an extra parenthesis on its first and last
	// record and carries the connective on the first
	is.Equal(records[1], "and,((,amount,>,500,)")
	is.Equal(records[2], "or,(,customerType,==,vip,))")
}

func TestDecodeRecords(t *testing.T) {
	is := is.New(t)

	expr := dectable.DecodeRecords(",(,amount,>,100,)<>and,(,status,==,active,)")
	want := dectable.AndAll(dectable.Gt("amount", "100"), dectable.Eq("status", "active"))
	is.True(expr.Equal(want))

	// a single usable record decodes to the bare condition
	single := dectable.DecodeRecords(",(,amount,>,100,)")
	c, ok := single.(*dectable.Condition)
	is.True(ok)
	is.Equal(c.Parameter, "amount")
	is.Equal(c.Type, dectable.Integer) // inferred on decode
	is.True(c.Grouped)
}

func TestDecodeRecordsLenient(t *testing.T) {

	cases := map[string]struct {
		in   string
		want dectable.Expression
	}{
		"blank input": {
			in:   "   ",
			want: dectable.True,
		},
		"short records dropped": {
			in:   "garbage<>,(,amount,>,100,)",
			want: dectable.Gt("amount", "100"),
		},
		"empty parameter dropped": {
			in:   ",(,,==,x,)<>,(,amount,>,100,)",
			want: dectable.Gt("amount", "100"),
		},
		"all records dropped": {
			in:   "a,b<>c",
			want: dectable.True,
		},
		"unknown operator falls back to equals": {
			in:   ",(,status,~~,active,)",
			want: dectable.Eq("status", "active"),
		},
		"missing connective defaults to and": {
			in:   ",(,a,>,1,)<>,(,b,<,2,)",
			want: dectable.AndAll(dectable.Gt("a", "1"), dectable.Lt("b", "2")),
		},
		"unparseable connective defaults to and": {
			in:   ",(,a,>,1,)<>xor,(,b,<,2,)",
			want: dectable.AndAll(dectable.Gt("a", "1"), dectable.Lt("b", "2")),
		},
	}

	for key, c := range cases {
		got := dectable.DecodeRecords(c.in)
		if !got.Equal(c.want) {
			t.Errorf("%s: decoded %q, want %q", key, got, c.want)
		}
	}
}

func TestGroupDoesNotSurviveRoundTrip(t *testing.T) {
	is := is.New(t)

	expr := dectable.NewBuilder().
		Eq("region", "EU").
		And().
		Group(func(g *dectable.Builder) {
			g.Gt("amount", "500").Or().Eq("customerType", "vip")
		}).
		Build()

	decoded := dectable.DecodeRecords(dectable.EncodeRecords(expr))

	// decode rebuilds a flat composite; the group node is gone
	is.True(!decoded.Equal(expr))
	flat, ok := decoded.(*dectable.Composite)
	is.True(ok)
	is.Equal(flat.Len(), 3)
	is.Equal(flat.Nodes()[1].Op, dectable.And)
	is.Equal(flat.Nodes()[2].Op, dectable.Or)
}

func TestBase64RoundTrip(t *testing.T) {
	is := is.New(t)

	expr := dectable.AndAll(dectable.Gt("amount", "100"), dectable.Eq("status", "active"))

	encoded := dectable.EncodeBase64(expr)
	decoded, err := dectable.DecodeBase64(encoded)
	is.NoErr(err)
	is.True(decoded.Equal(expr))

	empty, err := dectable.DecodeBase64("")
	is.NoErr(err)
	is.True(empty.Equal(dectable.True))

	_, err = dectable.DecodeBase64("not base64 !!!")
	if err == nil {
		t.Fatal("expected error for invalid base64")
	}
}

// genFlatExpression generates group-free trees: flat composites of
// conditions joined by random connectives. These are the trees the codec
// round-trips losslessly.
func genFlatExpression() gopter.Gen {
	genCondition := gopter.CombineGens(
		gen.OneConstOf("amount", "status", "age", "tier", "region"),
		gen.OneConstOf(dectable.Equals, dectable.NotEquals, dectable.GreaterThan,
			dectable.LessOrEqual, dectable.Contains, dectable.IsNull),
		gen.RegexMatch("[a-z0-9]{1,8}"),
	).Map(func(vals []interface{}) *dectable.Condition {
		return dectable.NewCondition(vals[0].(string), vals[1].(dectable.Operator), vals[2].(string))
	})

	genNode := gopter.CombineGens(
		gen.OneConstOf(dectable.And, dectable.Or),
		genCondition,
	).Map(func(vals []interface{}) dectable.Node {
		return dectable.Node{Op: vals[0].(dectable.LogicalOperator), Child: vals[1].(*dectable.Condition)}
	})

	return gen.SliceOfN(4, genNode).Map(func(nodes []dectable.Node) dectable.Expression {
		if len(nodes) == 1 {
			return nodes[0].Child
		}
		nodes[0].Op = dectable.NoOp
		return dectable.NewComposite(nodes...)
	})
}

func TestRecordRoundTripProperty(t *testing.T) {

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("decode inverts encode for group-free trees", prop.ForAll(
		func(e dectable.Expression) bool {
			return dectable.DecodeRecords(dectable.EncodeRecords(e)).Equal(e)
		},
		genFlatExpression(),
	))

	properties.TestingRun(t)
}

func TestExportJSON(t *testing.T) {
	is := is.New(t)

	expr := dectable.AndAll(
		dectable.Gt("amount", "100"),
		dectable.Eq("status", "active"),
	)

	out, err := dectable.ExportJSON(expr)
	is.NoErr(err)
	is.True(strings.Contains(out, `"type": "composite"`))
	is.True(strings.Contains(out, `"logicalOperator": "and"`))
	is.True(strings.Contains(out, `"parameter": "amount"`))
	is.True(strings.Contains(out, `"dataType": "integer"`))

	out, err = dectable.ExportJSON(dectable.True)
	is.NoErr(err)
	is.True(strings.Contains(out, `"constant": true`))
}
