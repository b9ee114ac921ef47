package evaluator

import (
	"math"
	"math/cmplx"

	"github.com/npillmayer/shunt"
)

// functionRule applies one named function to its single operand, domain
// checks included.
type functionRule func(a shunt.Numeric) (shunt.Numeric, error)

// functions maps every name in the shunt function table to its rule. The
// table is fixed at process start; shunt.IsFunction and this map must
// agree.
var functions = map[string]functionRule{
	"sqrt":  analytic(math.Sqrt, cmplx.Sqrt, nonNegative),
	"abs":   absolute,
	"ln":    logarithm(analytic(math.Log, cmplx.Log, positive)),
	"log":   logarithm(analytic(math.Log10, cmplx.Log10, positive)),
	"log2":  logarithm(log2),
	"exp":   analytic(math.Exp, cmplx.Exp, anyReal),
	"floor": realOnly(math.Floor),
	"ceil":  realOnly(math.Ceil),
	"round": realOnly(math.Round),
	"fact":  factorial,
	"sin":   analytic(math.Sin, cmplx.Sin, anyReal),
	"cos":   analytic(math.Cos, cmplx.Cos, anyReal),
	"tan":   analytic(math.Tan, cmplx.Tan, anyReal),
	"cot":   reciprocalOf(analytic(math.Tan, cmplx.Tan, anyReal)),
	"sec":   reciprocalOf(analytic(math.Cos, cmplx.Cos, anyReal)),
	"csc":   reciprocalOf(analytic(math.Sin, cmplx.Sin, anyReal)),
	"asin":  analytic(math.Asin, cmplx.Asin, unitInterval),
	"acos":  analytic(math.Acos, cmplx.Acos, unitInterval),
	"atan":  analytic(math.Atan, cmplx.Atan, anyReal),
	"acot":  arcCotangent,
	"asec":  inverseAt(analytic(math.Acos, cmplx.Acos, unitInterval), shunt.UndefinedAtZero),
	"acsc":  inverseAt(analytic(math.Asin, cmplx.Asin, unitInterval), shunt.UndefinedAtZero),
	"sinh":  analytic(math.Sinh, cmplx.Sinh, anyReal),
	"cosh":  analytic(math.Cosh, cmplx.Cosh, anyReal),
	"tanh":  analytic(math.Tanh, cmplx.Tanh, anyReal),
	"coth":  reciprocalOf(analytic(math.Tanh, cmplx.Tanh, anyReal)),
	"sech":  reciprocalOf(analytic(math.Cosh, cmplx.Cosh, anyReal)),
	"csch":  reciprocalOf(analytic(math.Sinh, cmplx.Sinh, anyReal)),
	"asinh": analytic(math.Asinh, cmplx.Asinh, anyReal),
	"acosh": analytic(math.Acosh, cmplx.Acosh, atLeastOne),
	"atanh": analytic(math.Atanh, cmplx.Atanh, openUnitInterval),
	"acoth": inverseAt(analytic(math.Atanh, cmplx.Atanh, openUnitInterval), shunt.UndefinedAtSingularity),
	"asech": inverseAt(analytic(math.Acosh, cmplx.Acosh, atLeastOne), shunt.UndefinedAtSingularity),
	"acsch": inverseAt(analytic(math.Asinh, cmplx.Asinh, anyReal), shunt.UndefinedAtSingularity),
	"rad":   realOnly(func(x float64) float64 { return x * math.Pi / 180 }),
	"deg":   realOnly(func(x float64) float64 { return x * 180 / math.Pi }),
}

// Real-domain predicates for the analytic fast path.
func anyReal(float64) bool            { return true }
func nonNegative(x float64) bool      { return x >= 0 }
func positive(x float64) bool         { return x > 0 }
func unitInterval(x float64) bool     { return x >= -1 && x <= 1 }
func openUnitInterval(x float64) bool { return x > -1 && x < 1 }
func atLeastOne(x float64) bool       { return x >= 1 }

// analytic builds a rule for a function defined on the complex plane: a
// real operand inside realOK stays real, everything else goes through the
// complex branch. This is where real-to-complex promotion happens.
func analytic(rfn func(float64) float64, cfn func(complex128) complex128, realOK func(float64) bool) functionRule {
	return func(a shunt.Numeric) (shunt.Numeric, error) {
		if !a.IsComplex() && realOK(a.Float()) {
			return shunt.FromFloat(rfn(a.Float())), nil
		}
		return shunt.FromComplex(cfn(a.Complex())), nil
	}
}

// realOnly builds a rule for a function restricted to real operands.
func realOnly(rfn func(float64) float64) functionRule {
	return func(a shunt.Numeric) (shunt.Numeric, error) {
		if a.IsComplex() {
			return shunt.Numeric{}, &shunt.Error{Kind: shunt.ComplexNotSupported}
		}
		return shunt.FromFloat(rfn(a.Float())), nil
	}
}

// logarithm guards a log-family rule against a zero operand.
func logarithm(rule functionRule) functionRule {
	return func(a shunt.Numeric) (shunt.Numeric, error) {
		if a.IsZero() {
			return shunt.Numeric{}, &shunt.Error{Kind: shunt.LogarithmOfZero}
		}
		return rule(a)
	}
}

// reciprocalOf builds a rule evaluating 1/base(a), reporting a singularity
// where the base function vanishes (cot, sec, csc and the hyperbolic
// counterparts).
func reciprocalOf(base functionRule) functionRule {
	return func(a shunt.Numeric) (shunt.Numeric, error) {
		d, err := base(a)
		if err != nil {
			return shunt.Numeric{}, err
		}
		if d.IsZero() {
			return shunt.Numeric{}, &shunt.Error{Kind: shunt.UndefinedAtSingularity}
		}
		return invert(d), nil
	}
}

// inverseAt builds a rule evaluating base(1/a) for the inverse-reciprocal
// functions (asec, acsc, acoth, asech, acsch), reporting kind at a == 0.
func inverseAt(base functionRule, kind shunt.ErrorKind) functionRule {
	return func(a shunt.Numeric) (shunt.Numeric, error) {
		if a.IsZero() {
			return shunt.Numeric{}, &shunt.Error{Kind: kind}
		}
		return base(invert(a))
	}
}

// invert computes 1/n for non-zero n.
func invert(n shunt.Numeric) shunt.Numeric {
	if !n.IsComplex() {
		return shunt.FromFloat(1 / n.Float())
	}
	return shunt.FromComplex(1 / n.Complex())
}

func absolute(a shunt.Numeric) (shunt.Numeric, error) {
	if a.IsComplex() {
		return shunt.FromFloat(cmplx.Abs(a.Complex())), nil
	}
	return shunt.FromFloat(math.Abs(a.Float())), nil
}

func log2(a shunt.Numeric) (shunt.Numeric, error) {
	if !a.IsComplex() && a.Float() > 0 {
		return shunt.FromFloat(math.Log2(a.Float())), nil
	}
	return shunt.FromComplex(cmplx.Log(a.Complex()) / complex(math.Ln2, 0)), nil
}

// arcCotangent follows the atan(1/a) convention with acot(0) = pi/2.
func arcCotangent(a shunt.Numeric) (shunt.Numeric, error) {
	if a.IsZero() {
		return shunt.FromFloat(math.Pi / 2), nil
	}
	inv := invert(a)
	if !inv.IsComplex() {
		return shunt.FromFloat(math.Atan(inv.Float())), nil
	}
	return shunt.FromComplex(cmplx.Atan(inv.Complex())), nil
}

// factorial accepts non-negative integral reals only.
func factorial(a shunt.Numeric) (shunt.Numeric, error) {
	if a.IsComplex() {
		return shunt.Numeric{}, &shunt.Error{Kind: shunt.ComplexNotSupported}
	}
	x := a.Float()
	if x < 0 || x != math.Trunc(x) {
		return shunt.Numeric{}, &shunt.Error{Kind: shunt.InvalidFactorialArgument, Offending: a.String()}
	}
	f := 1.0
	for i := 2.0; i <= x; i++ {
		f *= i
	}
	return shunt.FromFloat(f), nil
}
