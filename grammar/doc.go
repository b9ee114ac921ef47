/*
Package grammar scans expression strings into token sequences and checks
token sequences against the expression grammar.

Scanning and validation are separate stages: Tokenize only classifies
characters, ValidateTokens only inspects token adjacency. Validate is a
convenience running both. Neither stage interprets numbers or looks up
variables; that is the evaluator's business.
*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shunt.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("shunt.grammar")
}
