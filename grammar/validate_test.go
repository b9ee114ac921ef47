package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/shunt"
)

func TestValidateAccepts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shunt.grammar")
	defer teardown()
	//
	for i, expr := range []string{
		"2+3*4",
		"2^3^2",
		"-3+5",
		"3*-2",
		"2*-3",
		"-(2+3)",
		"sin(pi/2)",
		"sqrt(x) + fact(5)",
		"(a+b)*(a-b)",
		"2 ** 3 // 4 % 5",
		"1,5 + x # with a comment",
		"+(4)",
		"2^-3",
	} {
		if err := Validate(expr); err != nil {
			t.Errorf("test %d: %q should validate, got: %v", i, expr, err)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shunt.grammar")
	defer teardown()
	//
	for i, pair := range []struct {
		expr string
		kind shunt.ErrorKind
	}{
		{expr: "", kind: shunt.EmptyExpression},
		{expr: "   # nothing", kind: shunt.EmptyExpression},
		{expr: "2 € 3", kind: shunt.InvalidCharacter},
		{expr: "(1+2", kind: shunt.UnmatchedOpen},
		{expr: "1+2)", kind: shunt.UnmatchedClose},
		{expr: "()", kind: shunt.EmptyBrackets},
		{expr: "2()", kind: shunt.EmptyBrackets},
		{expr: "2 3", kind: shunt.TwoOperandsInRow},
		{expr: "2 x", kind: shunt.TwoOperandsInRow},
		{expr: "3 sin(1)", kind: shunt.TwoOperandsInRow},
		{expr: "1++2", kind: shunt.TwoOperatorsInRow},
		{expr: "1--2", kind: shunt.TwoOperatorsInRow},
		{expr: "2*/3", kind: shunt.TwoOperatorsInRow},
		{expr: "*5", kind: shunt.StartsWithOperator},
		{expr: "/2+1", kind: shunt.StartsWithOperator},
		{expr: "5*", kind: shunt.EndsWithOperator},
		{expr: "5+", kind: shunt.EndsWithOperator},
		{expr: "-", kind: shunt.EndsWithOperator},
		{expr: "(*2)", kind: shunt.OperatorAfterOpen},
		{expr: "(2+)", kind: shunt.CloseAfterOperator},
		{expr: "(2+3)4", kind: shunt.OperandAfterClose},
		{expr: "(2+3)x", kind: shunt.OperandAfterClose},
		{expr: "2(3)", kind: shunt.OpenAfterOperand},
		{expr: "(2+3)(4)", kind: shunt.OpenAfterOperand},
		{expr: "foo(2)", kind: shunt.UnknownFunction},
		{expr: "sin 3", kind: shunt.FunctionWithoutParen},
		{expr: "sin", kind: shunt.FunctionWithoutParen},
		{expr: "2+sinus(1)", kind: shunt.UnknownFunction},
	} {
		err := Validate(pair.expr)
		if got := shunt.KindOf(err); got != pair.kind {
			t.Errorf("test %d: %q reported %v, want kind %v", i, pair.expr, err, pair.kind)
		}
	}
}

func TestValidateUnarySigns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shunt.grammar")
	defer teardown()
	//
	// a sign is unary after any binary operator except another sign
	for i, pair := range []struct {
		expr  string
		valid bool
	}{
		{expr: "-3", valid: true},
		{expr: "+3", valid: true},
		{expr: "2*-3", valid: true},
		{expr: "2/-3", valid: true},
		{expr: "2^-3", valid: true},
		{expr: "(-3)", valid: true},
		{expr: "2+-3", valid: false},
		{expr: "2-+3", valid: false},
		{expr: "--3", valid: false},
	} {
		err := Validate(pair.expr)
		if pair.valid && err != nil {
			t.Errorf("test %d: %q should validate, got: %v", i, pair.expr, err)
		}
		if !pair.valid && shunt.KindOf(err) != shunt.TwoOperatorsInRow {
			t.Errorf("test %d: %q should be TwoOperatorsInRow, got: %v", i, pair.expr, err)
		}
	}
}

func TestValidateIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shunt.grammar")
	defer teardown()
	//
	const expr = "1++2"
	first := shunt.KindOf(Validate(expr))
	second := shunt.KindOf(Validate(expr))
	if first != second {
		t.Errorf("validating twice drifted: %v vs %v", first, second)
	}
}
