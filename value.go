package shunt

import (
	"math"
	"strconv"
)

// Numeric is a scalar value, either real or complex, over float64
// components. The zero value is the real number 0.
//
// A real value is promoted to complex only when an operation demands it
// (sqrt of a negative real, for instance), and a complex result whose
// imaginary part is exactly zero collapses back to a real. Construct
// values with FromFloat and FromComplex to keep this invariant.
type Numeric struct {
	re, im float64
	cmplx  bool
}

// FromFloat wraps a float64 into a real Numeric.
func FromFloat(f float64) Numeric {
	return Numeric{re: f}
}

// FromComplex wraps a complex128 into a Numeric. A zero imaginary part
// yields a real value.
func FromComplex(c complex128) Numeric {
	if imag(c) == 0 {
		return Numeric{re: real(c)}
	}
	return Numeric{re: real(c), im: imag(c), cmplx: true}
}

// IsComplex is a predicate: does the value have a non-zero imaginary part?
func (n Numeric) IsComplex() bool {
	return n.cmplx
}

// IsZero is a predicate: is the value exactly zero?
func (n Numeric) IsZero() bool {
	return n.re == 0 && n.im == 0
}

// Float returns the real part of the value.
func (n Numeric) Float() float64 {
	return n.re
}

// Imag returns the imaginary part of the value, zero for reals.
func (n Numeric) Imag() float64 {
	return n.im
}

// Complex returns the value as a complex128, promoting a real if necessary.
func (n Numeric) Complex() complex128 {
	return complex(n.re, n.im)
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String renders the value: "<real>" for reals, "<imag>j" for pure
// imaginaries, and "<real> + <imag>j" or "<real> - <imag>j" otherwise.
// The imaginary part never carries a duplicated sign.
func (n Numeric) String() string {
	if !n.cmplx {
		return fmtFloat(n.re)
	}
	if n.re == 0 {
		return fmtFloat(n.im) + "j"
	}
	if n.im >= 0 {
		return fmtFloat(n.re) + " + " + fmtFloat(n.im) + "j"
	}
	return fmtFloat(n.re) + " - " + fmtFloat(math.Abs(n.im)) + "j"
}
