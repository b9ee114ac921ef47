/*
Package shunt provides the building blocks for an infix expression engine:
a token model, operator and function tables, a real-or-complex numeric
value type, and a closed error taxonomy.

The engine itself lives in the subpackages. Package grammar turns an
expression string into a token sequence and checks it against the grammar
rules, package postfix converts a validated sequence into postfix (RPN) or
prefix order, and package evaluator reduces a postfix sequence plus
variable bindings to a single numeric value:

	toks, err := grammar.Tokenize("sin(pi/2) + x")
	// … grammar.ValidateTokens(toks) …
	rpn := postfix.Convert(toks)
	result, err := evaluator.Evaluate(rpn, bindings)

All operations are pure: no state is shared between calls, and a compiled
postfix sequence may be reused concurrently with different bindings.
*/
package shunt

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shunt'.
func tracer() tracing.Trace {
	return tracing.Select("shunt")
}

// Bindings maps free variable names to numeric values for one evaluation.
// The engine never mutates a bindings map handed to it.
type Bindings map[string]Numeric

// Constants returns a fresh bindings map pre-loaded with the mathematical
// constants pi and e, plus their upper-case aliases. Constants are ordinary
// bindings, not special tokens: callers may shadow or extend them.
func Constants() Bindings {
	return Bindings{
		"pi": FromFloat(math.Pi),
		"e":  FromFloat(math.E),
		"PI": FromFloat(math.Pi),
		"E":  FromFloat(math.E),
	}
}
