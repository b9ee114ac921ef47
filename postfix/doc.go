/*
Package postfix converts validated infix token sequences into postfix
(reverse Polish) order, and renders prefix (Polish) form.

Input sequences are assumed to have passed grammar.ValidateTokens; on
malformed input the converter stays defensive but its output is undefined.
*/
package postfix

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shunt.postfix'.
func tracer() tracing.Trace {
	return tracing.Select("shunt.postfix")
}
