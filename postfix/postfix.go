package postfix

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
	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/shunt"
)

// Convert turns an infix token sequence into postfix (RPN) order using the
// Shunting-Yard algorithm, extended for unary signs and function
// application.
//
// A "+" or "-" encountered while an operand is expected (at sequence
// start, after "(", after an operator) is re-tagged as a UnaryOp token.
// Unary signs carry precedence shunt.UnaryPrec and therefore dominate
// every binary operator in the pop comparison. Functions are pushed and
// resolved when their closing parenthesis arrives. Equal-precedence
// left-associative operators pop in stable left-to-right order, so
// "a-b-c" yields "(a-b)-c".
func Convert(toks shunt.TokenSequence) shunt.TokenSequence {
	out := make(shunt.TokenSequence, 0, len(toks))
	ops := linkedliststack.New()
	expectUnary := true
	for _, tok := range toks {
		switch tok.Type {
		case shunt.Number:
			out = append(out, tok)
			expectUnary = false
		case shunt.Ident:
			if shunt.IsFunction(tok.Lexeme) {
				ops.Push(tok)
				expectUnary = true
			} else {
				out = append(out, tok)
				expectUnary = false
			}
		case shunt.OpenParen:
			ops.Push(tok)
			expectUnary = true
		case shunt.CloseParen:
			out = popToOpen(ops, out)
			expectUnary = false
		case shunt.Operator:
			if expectUnary && shunt.IsSign(tok) {
				ops.Push(shunt.Token{Type: shunt.UnaryOp, Lexeme: tok.Lexeme})
				continue
			}
			out = popDominating(ops, out, shunt.BinaryOps[tok.Lexeme])
			ops.Push(tok)
			expectUnary = true
		}
	}
	for {
		top, ok := ops.Pop()
		if !ok {
			break
		}
		out = append(out, top.(shunt.Token))
	}
	tracer().Debugf("postfix: %s", out)
	return out
}

// popToOpen drains the operator stack into out until the matching open
// parenthesis, discards it, and applies a pending function name.
func popToOpen(ops *linkedliststack.Stack, out shunt.TokenSequence) shunt.TokenSequence {
	for {
		top, ok := ops.Pop()
		if !ok { // unbalanced input; validator would have rejected it
			return out
		}
		t := top.(shunt.Token)
		if t.Type != shunt.OpenParen {
			out = append(out, t)
			continue
		}
		if f, ok := ops.Peek(); ok {
			ft := f.(shunt.Token)
			if ft.Type == shunt.Ident && shunt.IsFunction(ft.Lexeme) {
				ops.Pop()
				out = append(out, ft)
			}
		}
		return out
	}
}

// popDominating pops operators whose precedence dominates the incoming
// binary operator: top ≥ incoming for left-associative, top > incoming for
// right-associative. An open parenthesis or a function name stops the loop.
func popDominating(ops *linkedliststack.Stack, out shunt.TokenSequence, incoming shunt.OpSpec) shunt.TokenSequence {
	for {
		top, ok := ops.Peek()
		if !ok {
			return out
		}
		t := top.(shunt.Token)
		if t.Type == shunt.OpenParen || t.Type == shunt.Ident {
			return out
		}
		topPrec := shunt.UnaryPrec
		if t.Type == shunt.Operator {
			topPrec = shunt.BinaryOps[t.Lexeme].Prec
		}
		if (incoming.Assoc == shunt.Left && topPrec >= incoming.Prec) ||
			(incoming.Assoc == shunt.Right && topPrec > incoming.Prec) {
			ops.Pop()
			out = append(out, t)
			continue
		}
		return out
	}
}

// Prefix renders an infix token sequence in prefix (Polish) order: a
// space-separated string with operators before their operands and
// functions as "name(arg)". The rendering is a structural walk over the
// postfix form produced by Convert, not a separate parsing algorithm.
func Prefix(toks shunt.TokenSequence) string {
	post := Convert(toks)
	frags := linkedliststack.New()
	pop := func() string {
		s, ok := frags.Pop()
		if !ok { // malformed input; keep the walk defensive
			return ""
		}
		return s.(string)
	}
	for _, tok := range post {
		switch tok.Type {
		case shunt.Number:
			frags.Push(tok.Lexeme)
		case shunt.Ident:
			if shunt.IsFunction(tok.Lexeme) {
				arg := pop()
				frags.Push(tok.Lexeme + "(" + arg + ")")
			} else {
				frags.Push(tok.Lexeme)
			}
		case shunt.UnaryOp:
			arg := pop()
			frags.Push(tok.Lexeme + " " + arg)
		case shunt.Operator:
			rhs := pop()
			lhs := pop()
			frags.Push(tok.Lexeme + " " + lhs + " " + rhs)
		}
	}
	return pop()
}
