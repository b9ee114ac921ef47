/*
Package evaluator reduces a postfix token sequence plus variable bindings
to a single numeric value.

Evaluation is pure: neither the sequence nor the bindings are mutated, and
a compiled postfix sequence remains valid after a failed evaluation, so
callers sampling a function over a range perform one conversion and many
evaluations.
*/
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shunt.evaluator'.
func tracer() tracing.Trace {
	return tracing.Select("shunt.evaluator")
}
