package evaluator

import (
	"math/rand"

	"github.com/npillmayer/shunt"
)

// FreeVariables lists the variable names of a compiled postfix sequence
// that have no binding in env, in order of first appearance. A nil env
// lists every variable.
func FreeVariables(post shunt.TokenSequence, env shunt.Bindings) []string {
	var free []string
	seen := make(map[string]bool)
	for _, tok := range post {
		if tok.Type != shunt.Ident || shunt.IsFunction(tok.Lexeme) {
			continue
		}
		if _, bound := env[tok.Lexeme]; bound || seen[tok.Lexeme] {
			continue
		}
		seen[tok.Lexeme] = true
		free = append(free, tok.Lexeme)
	}
	return free
}

// RandomBindings draws a uniform random value from [lo, hi) for each name.
// Useful for probing an expression at arbitrary points when the caller has
// no values for its free variables.
func RandomBindings(names []string, lo, hi float64) shunt.Bindings {
	env := make(shunt.Bindings, len(names))
	for _, name := range names {
		env[name] = shunt.FromFloat(lo + rand.Float64()*(hi-lo))
	}
	return env
}

// Point is one sample of an expression over a variable range.
type Point struct {
	X, Y float64
}

// Sample evaluates a compiled postfix sequence at n evenly spaced values
// of the named variable over [lo, hi], with base supplying all other
// bindings. Points where evaluation fails or leaves the reals are skipped,
// so the result may hold fewer than n entries. base is not mutated.
func Sample(post shunt.TokenSequence, name string, lo, hi float64, n int, base shunt.Bindings) []Point {
	if n < 1 {
		return nil
	}
	env := make(shunt.Bindings, len(base)+1)
	for k, v := range base {
		env[k] = v
	}
	step := 0.0
	if n > 1 {
		step = (hi - lo) / float64(n-1)
	}
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		x := lo + float64(i)*step
		env[name] = shunt.FromFloat(x)
		y, err := Evaluate(post, env)
		if err != nil || y.IsComplex() {
			tracer().Debugf("skipping sample at %s = %g", name, x)
			continue
		}
		points = append(points, Point{X: x, Y: y.Float()})
	}
	return points
}
