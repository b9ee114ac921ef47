package postfix

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/shunt"
	"github.com/npillmayer/shunt/grammar"
)

func scan(t *testing.T, expr string) shunt.TokenSequence {
	t.Helper()
	toks, err := grammar.Tokenize(expr)
	if err != nil {
		t.Fatalf("cannot tokenize %q: %v", expr, err)
	}
	if err := grammar.ValidateTokens(toks); err != nil {
		t.Fatalf("%q does not validate: %v", expr, err)
	}
	return toks
}

func TestConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shunt.postfix")
	defer teardown()
	//
	for i, pair := range []struct {
		expr string
		rpn  string
	}{
		{expr: "2+3*4", rpn: "2 3 4 * +"},
		{expr: "(2+3)*4", rpn: "2 3 + 4 *"},
		{expr: "2^3^2", rpn: "2 3 2 ^ ^"},
		{expr: "2**3**2", rpn: "2 3 2 ** **"},
		{expr: "10-3-2", rpn: "10 3 - 2 -"},
		{expr: "a/b/c", rpn: "a b / c /"},
		{expr: "-3+5", rpn: "3 u- 5 +"},
		{expr: "3*-2", rpn: "3 2 u- *"},
		{expr: "-(2+3)", rpn: "2 3 + u-"},
		{expr: "-2^2", rpn: "2 u- 2 ^"},
		{expr: "2^-3", rpn: "2 3 u- ^"},
		{expr: "sin(x/2)", rpn: "x 2 / sin"},
		{expr: "sqrt(abs(x))", rpn: "x abs sqrt"},
		{expr: "1+2*3-4", rpn: "1 2 3 * + 4 -"},
		{expr: "a*(b+c)/d", rpn: "a b c + * d /"},
	} {
		if got := Convert(scan(t, pair.expr)).String(); got != pair.rpn {
			t.Errorf("test %d: %q converted to %q, want %q", i, pair.expr, got, pair.rpn)
		}
	}
}

func TestConvertStableOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shunt.postfix")
	defer teardown()
	//
	// equal precedence, left-associative: pop order is left to right
	toks := scan(t, "a-b+c-d")
	if got := Convert(toks).String(); got != "a b - c + d -" {
		t.Errorf("unstable pop order: %q", got)
	}
}

func TestPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shunt.postfix")
	defer teardown()
	//
	for i, pair := range []struct {
		expr   string
		prefix string
	}{
		{expr: "2+3*4", prefix: "+ 2 * 3 4"},
		{expr: "10-3-2", prefix: "- - 10 3 2"},
		{expr: "a^b^c", prefix: "^ a ^ b c"},
		{expr: "-3+5", prefix: "+ - 3 5"},
		{expr: "sin(x/2)", prefix: "sin(/ x 2)"},
		{expr: "sqrt(4)*2", prefix: "* sqrt(4) 2"},
		{expr: "x", prefix: "x"},
	} {
		if got := Prefix(scan(t, pair.expr)); got != pair.prefix {
			t.Errorf("test %d: %q rendered as %q, want %q", i, pair.expr, got, pair.prefix)
		}
	}
}

func TestConvertReusable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shunt.postfix")
	defer teardown()
	//
	toks := scan(t, "x^2+1")
	first := Convert(toks).String()
	second := Convert(toks).String()
	if first != second {
		t.Errorf("conversion is not repeatable: %q vs %q", first, second)
	}
}
