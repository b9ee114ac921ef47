package grammar

import (
	"github.com/npillmayer/shunt"
)

// token classes for adjacency checking
type tclass int8

const (
	operandCl tclass = iota // number or variable
	functionCl
	operatorCl
	openCl
	closeCl
)

func classOf(t shunt.Token) tclass {
	switch t.Type {
	case shunt.Number:
		return operandCl
	case shunt.Ident:
		if shunt.IsFunction(t.Lexeme) {
			return functionCl
		}
		return operandCl
	case shunt.Operator:
		return operatorCl
	case shunt.OpenParen:
		return openCl
	}
	return closeCl
}

// Validate is a convenience wrapper running the lexer and the token
// validator in sequence. Lexer failures surface as InvalidCharacter or
// EmptyExpression.
func Validate(expression string) error {
	toks, err := Tokenize(expression)
	if err != nil {
		return err
	}
	return ValidateTokens(toks)
}

// ValidateTokens checks a token sequence against the expression grammar.
// It returns nil for a valid sequence, or an *shunt.Error whose kind names
// the first failing check. Checks run as an ordered pipeline: parenthesis
// balance, empty bracket pairs, then a left-to-right adjacency scan.
//
// A "+" or "-" counts as a unary prefix at sequence start, after "(", and
// after any binary operator other than another sign; a sign directly
// following a sign is TwoOperatorsInRow. A trailing operator of any arity
// is EndsWithOperator.
func ValidateTokens(toks shunt.TokenSequence) error {
	if len(toks) == 0 {
		return &shunt.Error{Kind: shunt.EmptyExpression}
	}
	depth := 0
	for _, t := range toks {
		switch t.Type {
		case shunt.OpenParen:
			depth++
		case shunt.CloseParen:
			depth--
			if depth < 0 {
				return &shunt.Error{Kind: shunt.UnmatchedClose}
			}
		}
	}
	if depth > 0 {
		return &shunt.Error{Kind: shunt.UnmatchedOpen}
	}
	for i := 0; i+1 < len(toks); i++ {
		if toks[i].Type == shunt.OpenParen && toks[i+1].Type == shunt.CloseParen {
			return &shunt.Error{Kind: shunt.EmptyBrackets}
		}
	}
	var prev shunt.Token
	prevClass := tclass(-1) // no previous token yet
	for i, tok := range toks {
		cl := classOf(tok)
		switch cl {
		case operandCl:
			if tok.Type == shunt.Ident && i+1 < len(toks) && toks[i+1].Type == shunt.OpenParen {
				return &shunt.Error{Kind: shunt.UnknownFunction, Offending: tok.Lexeme}
			}
			if prevClass == operandCl || prevClass == functionCl {
				return &shunt.Error{Kind: shunt.TwoOperandsInRow, Offending: tok.Lexeme}
			}
			if prevClass == closeCl {
				return &shunt.Error{Kind: shunt.OperandAfterClose, Offending: tok.Lexeme}
			}
		case functionCl:
			if i+1 >= len(toks) || toks[i+1].Type != shunt.OpenParen {
				return &shunt.Error{Kind: shunt.FunctionWithoutParen, Offending: tok.Lexeme}
			}
			// a function application starts an operand
			if prevClass == operandCl || prevClass == functionCl {
				return &shunt.Error{Kind: shunt.TwoOperandsInRow, Offending: tok.Lexeme}
			}
			if prevClass == closeCl {
				return &shunt.Error{Kind: shunt.OperandAfterClose, Offending: tok.Lexeme}
			}
		case operatorCl:
			unary := shunt.IsSign(tok) &&
				(i == 0 || prevClass == openCl ||
					(prevClass == operatorCl && !shunt.IsSign(prev)))
			if !unary {
				if i == 0 {
					return &shunt.Error{Kind: shunt.StartsWithOperator, Offending: tok.Lexeme}
				}
				if prevClass == operatorCl {
					return &shunt.Error{Kind: shunt.TwoOperatorsInRow, Offending: tok.Lexeme}
				}
				if prevClass == openCl {
					return &shunt.Error{Kind: shunt.OperatorAfterOpen, Offending: tok.Lexeme}
				}
			}
			if i == len(toks)-1 {
				return &shunt.Error{Kind: shunt.EndsWithOperator, Offending: tok.Lexeme}
			}
		case openCl:
			if prevClass == operandCl || prevClass == closeCl {
				return &shunt.Error{Kind: shunt.OpenAfterOperand}
			}
		case closeCl:
			if i == 0 {
				return &shunt.Error{Kind: shunt.StartsWithClose}
			}
			if prevClass == operatorCl {
				return &shunt.Error{Kind: shunt.CloseAfterOperator}
			}
			if prevClass == openCl {
				return &shunt.Error{Kind: shunt.CloseAfterOpen}
			}
		}
		prev = tok
		prevClass = cl
	}
	return nil
}
