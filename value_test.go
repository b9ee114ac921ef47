package shunt

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumericFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shunt")
	defer teardown()
	//
	for i, pair := range []struct {
		n Numeric
		s string
	}{
		{n: FromFloat(3.5), s: "3.5"},
		{n: FromFloat(-0.5), s: "-0.5"},
		{n: FromFloat(120), s: "120"},
		{n: FromComplex(complex(0, 1)), s: "1j"},
		{n: FromComplex(complex(0, -2.5)), s: "-2.5j"},
		{n: FromComplex(complex(2, 3)), s: "2 + 3j"},
		{n: FromComplex(complex(2, -3)), s: "2 - 3j"},
		{n: FromComplex(complex(5, 0)), s: "5"},
	} {
		if got := pair.n.String(); got != pair.s {
			t.Errorf("test %d: formatted as %q, want %q", i, got, pair.s)
		}
	}
}

func TestNumericDemotion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shunt")
	defer teardown()
	//
	n := FromComplex(complex(4, 0))
	if n.IsComplex() {
		t.Errorf("complex with zero imaginary part should collapse to a real")
	}
	if n.Float() != 4 {
		t.Errorf("expected real part 4, got %g", n.Float())
	}
}

func TestConstants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shunt")
	defer teardown()
	//
	env := Constants()
	if env["pi"].Float() != math.Pi || env["PI"].Float() != math.Pi {
		t.Errorf("pi constant not bound correctly")
	}
	if env["e"].Float() != math.E || env["E"].Float() != math.E {
		t.Errorf("e constant not bound correctly")
	}
}

func TestOperatorTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shunt")
	defer teardown()
	//
	if BinaryOps["^"].Assoc != Right || BinaryOps["**"].Assoc != Right {
		t.Errorf("exponentiation must be right-associative")
	}
	for _, op := range []string{"+", "-", "*", "/", "%", "//"} {
		if BinaryOps[op].Assoc != Left {
			t.Errorf("operator %q must be left-associative", op)
		}
	}
	if UnaryPrec <= BinaryOps["^"].Prec {
		t.Errorf("unary precedence must dominate every binary operator")
	}
}
