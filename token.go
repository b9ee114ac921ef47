package shunt

import "strings"

// TokenType discriminates the variants of a Token.
type TokenType int8

// Token types as produced by the lexer. UnaryOp never leaves the lexer;
// the postfix converter re-tags a sign that sits in prefix position.
const (
	Undefined TokenType = iota
	Number              // decimal literal, e.g. "3.14"
	Ident               // variable or function name, e.g. "x", "sin"
	Operator            // binary operator, e.g. "+", "**"
	UnaryOp             // prefix sign "+" or "-"
	OpenParen
	CloseParen
)

func (tt TokenType) String() string {
	switch tt {
	case Number:
		return "Number"
	case Ident:
		return "Ident"
	case Operator:
		return "Operator"
	case UnaryOp:
		return "UnaryOp"
	case OpenParen:
		return "OpenParen"
	case CloseParen:
		return "CloseParen"
	}
	return "Undefined"
}

// Token is one lexical unit of an expression. Tokens are immutable once
// produced; their order within a sequence is significant.
type Token struct {
	Type   TokenType
	Lexeme string
}

func (t Token) String() string {
	if t.Type == UnaryOp {
		return "u" + t.Lexeme
	}
	return t.Lexeme
}

// TokenSequence is an ordered sequence of tokens, in infix, postfix or
// prefix order depending on which stage produced it.
type TokenSequence []Token

func (ts TokenSequence) String() string {
	var b strings.Builder
	for i, t := range ts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// --- Operator and function tables ------------------------------------------

// Assoc is the associativity of a binary operator.
type Assoc int8

// Associativity directions.
const (
	Left Assoc = iota
	Right
)

// OpSpec describes a binary operator: its precedence and associativity.
type OpSpec struct {
	Prec  int
	Assoc Assoc
}

// UnaryPrec is the precedence of the prefix signs "+" and "-". It dominates
// every binary operator, so "-2^2" parses as "(-2)^2".
const UnaryPrec = 4

// BinaryOps is the fixed table of binary operators. It is constructed once
// and never mutated at runtime.
var BinaryOps = map[string]OpSpec{
	"+":  {1, Left},
	"-":  {1, Left},
	"*":  {2, Left},
	"/":  {2, Left},
	"%":  {2, Left},
	"//": {2, Left},
	"^":  {3, Right},
	"**": {3, Right},
}

// functionNames is the fixed set of recognized unary functions. An
// identifier outside this set is a free variable.
var functionNames = []string{
	"sqrt", "abs", "ln", "log", "log2", "exp",
	"floor", "ceil", "round", "fact",
	"sin", "cos", "tan", "cot", "sec", "csc",
	"asin", "acos", "atan", "acot", "asec", "acsc",
	"sinh", "cosh", "tanh", "coth", "sech", "csch",
	"asinh", "acosh", "atanh", "acoth", "asech", "acsch",
	"rad", "deg",
}

var functions = make(map[string]struct{}, len(functionNames))

func init() {
	for _, name := range functionNames {
		functions[name] = struct{}{}
	}
}

// IsFunction tells whether name is in the function table.
func IsFunction(name string) bool {
	_, ok := functions[name]
	return ok
}

// IsSign tells whether a token is a "+" or "-" operator, i.e. a candidate
// for unary-prefix interpretation.
func IsSign(t Token) bool {
	return t.Type == Operator && (t.Lexeme == "+" || t.Lexeme == "-")
}
