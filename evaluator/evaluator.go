package evaluator

/*
BSD License

Copyright (c) 2019–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */

import (
	"math"
	"math/cmplx"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/shunt"
	"github.com/shopspring/decimal"
)

// Evaluate reduces a postfix token sequence to a single value, looking up
// free variables in env. The sequence is expected to come out of
// postfix.Convert for a validated expression; if the value stack does not
// hold exactly one value at the end, the internal-consistency kind
// MalformedExpression is reported.
func Evaluate(post shunt.TokenSequence, env shunt.Bindings) (shunt.Numeric, error) {
	vals := linkedliststack.New()
	for _, tok := range post {
		var err error
		switch tok.Type {
		case shunt.Number:
			err = pushLiteral(vals, tok.Lexeme)
		case shunt.Ident:
			if shunt.IsFunction(tok.Lexeme) {
				err = applyFunction(vals, tok.Lexeme)
			} else {
				err = pushVariable(vals, tok.Lexeme, env)
			}
		case shunt.UnaryOp:
			err = applySign(vals, tok.Lexeme)
		case shunt.Operator:
			err = applyBinary(vals, tok.Lexeme)
		default:
			err = &shunt.Error{Kind: shunt.MalformedExpression, Offending: tok.Lexeme}
		}
		if err != nil {
			tracer().Debugf("evaluation of %q failed: %v", tok.Lexeme, err)
			return shunt.Numeric{}, err
		}
	}
	if vals.Size() != 1 {
		return shunt.Numeric{}, &shunt.Error{Kind: shunt.MalformedExpression}
	}
	top, _ := vals.Pop()
	return top.(shunt.Numeric), nil
}

// pushLiteral parses a decimal number literal and pushes its value.
func pushLiteral(vals *linkedliststack.Stack, lexeme string) error {
	d, err := decimal.NewFromString(lexeme)
	if err != nil {
		return &shunt.Error{Kind: shunt.InvalidCharacter, Offending: lexeme}
	}
	f, _ := d.Float64()
	vals.Push(shunt.FromFloat(f))
	return nil
}

func pushVariable(vals *linkedliststack.Stack, name string, env shunt.Bindings) error {
	v, ok := env[name]
	if !ok {
		return &shunt.Error{Kind: shunt.UndefinedVariable, Offending: name}
	}
	vals.Push(v)
	return nil
}

func pop1(vals *linkedliststack.Stack) (shunt.Numeric, bool) {
	v, ok := vals.Pop()
	if !ok {
		return shunt.Numeric{}, false
	}
	return v.(shunt.Numeric), true
}

func applySign(vals *linkedliststack.Stack, sign string) error {
	a, ok := pop1(vals)
	if !ok {
		return &shunt.Error{Kind: shunt.MalformedExpression, Offending: sign}
	}
	if sign == "-" {
		a = shunt.FromComplex(-a.Complex())
	}
	vals.Push(a)
	return nil
}

func applyFunction(vals *linkedliststack.Stack, name string) error {
	a, ok := pop1(vals)
	if !ok {
		return &shunt.Error{Kind: shunt.MalformedExpression, Offending: name}
	}
	f, ok := functions[name]
	if !ok {
		return &shunt.Error{Kind: shunt.UnknownFunction, Offending: name}
	}
	r, err := f(a)
	if err != nil {
		return err
	}
	vals.Push(r)
	return nil
}

func applyBinary(vals *linkedliststack.Stack, op string) error {
	b, okb := pop1(vals) // right operand pops first
	a, oka := pop1(vals)
	if !oka || !okb {
		return &shunt.Error{Kind: shunt.MalformedExpression, Offending: op}
	}
	f, ok := binaryOps[op]
	if !ok {
		return &shunt.Error{Kind: shunt.MalformedExpression, Offending: op}
	}
	r, err := f(a, b)
	if err != nil {
		return err
	}
	vals.Push(r)
	return nil
}

// --- Binary operator rules -------------------------------------------------

type binaryRule func(a, b shunt.Numeric) (shunt.Numeric, error)

// binaryOps maps each operator symbol to its numeric rule, domain checks
// included. The table is fixed at process start.
var binaryOps = map[string]binaryRule{
	"+":  add,
	"-":  subtract,
	"*":  multiply,
	"/":  divide,
	"%":  modulo,
	"//": floorDivide,
	"^":  power,
	"**": power,
}

func bothReal(a, b shunt.Numeric) bool {
	return !a.IsComplex() && !b.IsComplex()
}

func add(a, b shunt.Numeric) (shunt.Numeric, error) {
	if bothReal(a, b) {
		return shunt.FromFloat(a.Float() + b.Float()), nil
	}
	return shunt.FromComplex(a.Complex() + b.Complex()), nil
}

func subtract(a, b shunt.Numeric) (shunt.Numeric, error) {
	if bothReal(a, b) {
		return shunt.FromFloat(a.Float() - b.Float()), nil
	}
	return shunt.FromComplex(a.Complex() - b.Complex()), nil
}

func multiply(a, b shunt.Numeric) (shunt.Numeric, error) {
	if bothReal(a, b) {
		return shunt.FromFloat(a.Float() * b.Float()), nil
	}
	return shunt.FromComplex(a.Complex() * b.Complex()), nil
}

func divide(a, b shunt.Numeric) (shunt.Numeric, error) {
	if b.IsZero() {
		return shunt.Numeric{}, &shunt.Error{Kind: shunt.DivisionByZero, Offending: "/"}
	}
	if bothReal(a, b) {
		return shunt.FromFloat(a.Float() / b.Float()), nil
	}
	return shunt.FromComplex(a.Complex() / b.Complex()), nil
}

// modulo uses truncating semantics for negative operands: -7 % 3 = -1.
// The complex check precedes the zero check.
func modulo(a, b shunt.Numeric) (shunt.Numeric, error) {
	if !bothReal(a, b) {
		return shunt.Numeric{}, &shunt.Error{Kind: shunt.ComplexNotSupported, Offending: "%"}
	}
	if b.IsZero() {
		return shunt.Numeric{}, &shunt.Error{Kind: shunt.DivisionByZero, Offending: "%"}
	}
	return shunt.FromFloat(math.Mod(a.Float(), b.Float())), nil
}

// floorDivide truncates towards zero, matching the modulo convention:
// -7 // 3 = -2, and a == (a//b)*b + a%b holds.
func floorDivide(a, b shunt.Numeric) (shunt.Numeric, error) {
	if !bothReal(a, b) {
		return shunt.Numeric{}, &shunt.Error{Kind: shunt.ComplexNotSupported, Offending: "//"}
	}
	if b.IsZero() {
		return shunt.Numeric{}, &shunt.Error{Kind: shunt.DivisionByZero, Offending: "//"}
	}
	return shunt.FromFloat(math.Trunc(a.Float() / b.Float())), nil
}

func power(a, b shunt.Numeric) (shunt.Numeric, error) {
	if bothReal(a, b) {
		x, y := a.Float(), b.Float()
		if x == 0 && y < 0 {
			return shunt.Numeric{}, &shunt.Error{Kind: shunt.DivisionByZero, Offending: "^"}
		}
		if x >= 0 || y == math.Trunc(y) {
			return shunt.FromFloat(math.Pow(x, y)), nil
		}
		// negative base, fractional exponent: result leaves the reals
	}
	return shunt.FromComplex(cmplx.Pow(a.Complex(), b.Complex())), nil
}
