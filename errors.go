package shunt

import "errors"

// ErrorKind is a closed enumeration of everything that can go wrong while
// tokenizing, validating or evaluating an expression. Human-readable text
// is produced only at the error-rendering boundary; engine code and
// callers discriminate on the kind.
type ErrorKind int8

// The error taxonomy. NoError is the zero value and never carried by an
// actual error.
const (
	NoError ErrorKind = iota

	// Lexical
	InvalidCharacter

	// Structural, reported by the grammar validator
	EmptyExpression
	UnmatchedOpen
	UnmatchedClose
	EmptyBrackets
	TwoOperandsInRow
	TwoOperatorsInRow
	StartsWithOperator
	EndsWithOperator
	OperatorAfterOpen
	CloseAfterOperator
	CloseAfterOpen
	StartsWithClose
	OperandAfterClose
	OpenAfterOperand
	UnknownFunction
	FunctionWithoutParen

	// Evaluation-time
	UndefinedVariable
	DivisionByZero
	ComplexNotSupported
	LogarithmOfZero
	InvalidFactorialArgument
	UndefinedAtSingularity
	UndefinedAtZero
	MalformedExpression
)

var errorText = map[ErrorKind]string{
	InvalidCharacter:         "invalid character",
	EmptyExpression:          "expression is empty",
	UnmatchedOpen:            "unclosed parenthesis (",
	UnmatchedClose:           "extra closing parenthesis )",
	EmptyBrackets:            "empty parentheses ()",
	TwoOperandsInRow:         "two numbers/variables in a row",
	TwoOperatorsInRow:        "two operators in a row",
	StartsWithOperator:       "expression starts with a binary operator",
	EndsWithOperator:         "expression ends with an operator",
	OperatorAfterOpen:        "binary operator immediately after (",
	CloseAfterOperator:       "closing parenthesis ) after operator",
	CloseAfterOpen:           "closing parenthesis ) immediately after (",
	StartsWithClose:          "expression starts with )",
	OperandAfterClose:        "number/variable immediately after )",
	OpenAfterOperand:         "opening parenthesis ( after number/variable without operator",
	UnknownFunction:          "unknown function",
	FunctionWithoutParen:     "function must be followed by (",
	UndefinedVariable:        "variable is not defined",
	DivisionByZero:           "division by zero",
	ComplexNotSupported:      "operation not defined for complex numbers",
	LogarithmOfZero:          "logarithm of zero",
	InvalidFactorialArgument: "factorial requires a non-negative integer",
	UndefinedAtSingularity:   "function undefined at this point",
	UndefinedAtZero:          "function undefined at 0",
	MalformedExpression:      "malformed expression",
}

func (k ErrorKind) String() string {
	if s, ok := errorText[k]; ok {
		return s
	}
	return "no error"
}

// Error carries an ErrorKind plus the offending character, token or name,
// if one exists.
type Error struct {
	Kind      ErrorKind
	Offending string
}

func (e *Error) Error() string {
	if e.Offending == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Offending
}

// KindOf extracts the ErrorKind from an error returned by this engine.
// It returns NoError for nil and for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return NoError
}
