package grammar

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
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/shunt"
	lex "github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

var initOnce sync.Once // monitors one-time construction of the lexer
var lexer *lex.Lexer

// initLexer builds the lexmachine lexer for expression input. The pattern
// set is fixed, so a compile failure is a programming error.
func initLexer() {
	initOnce.Do(func() {
		lexer = lex.NewLexer()
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip) // whitespace is insignificant
		lexer.Add([]byte(`[0-9]+\.[0-9]+`), makeToken(shunt.Number))
		lexer.Add([]byte(`[0-9]+`), makeToken(shunt.Number))
		lexer.Add([]byte(`\.[0-9]+`), makeToken(shunt.Number))
		lexer.Add([]byte(`([a-z]|[A-Z])+`), makeToken(shunt.Ident))
		lexer.Add([]byte(`\*\*`), makeToken(shunt.Operator)) // before '*'
		lexer.Add([]byte(`//`), makeToken(shunt.Operator))   // before '/'
		lexer.Add([]byte(`[\+\-\*/%\^]`), makeToken(shunt.Operator))
		lexer.Add([]byte(`\(`), makeToken(shunt.OpenParen))
		lexer.Add([]byte(`\)`), makeToken(shunt.CloseParen))
		if err := lexer.Compile(); err != nil {
			panic(err)
		}
	})
}

func makeToken(tt shunt.TokenType) lex.Action {
	return func(s *lex.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(tt), string(m.Bytes), m), nil
	}
}

func skip(s *lex.Scanner, m *machines.Match) (interface{}, error) {
	return nil, nil
}

// clean strips a trailing '#' comment, collapses whitespace, and treats a
// ',' decimal separator as '.'.
func clean(expression string) string {
	if i := strings.IndexByte(expression, '#'); i >= 0 {
		expression = expression[:i]
	}
	expression = strings.Join(strings.Fields(expression), " ")
	return strings.ReplaceAll(expression, ",", ".")
}

// Tokenize scans an expression string into a flat token sequence. The first
// character matching no token class aborts the scan with InvalidCharacter;
// an input that is empty after comment/whitespace cleaning yields
// EmptyExpression.
//
// Identifiers are not classified as function vs. variable here; the
// validator and converter consult the function table for that.
func Tokenize(expression string) (shunt.TokenSequence, error) {
	input := clean(expression)
	if input == "" {
		return nil, &shunt.Error{Kind: shunt.EmptyExpression}
	}
	initLexer()
	scanner, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, scanError(err)
	}
	var toks shunt.TokenSequence
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			return nil, scanError(err)
		}
		t := tok.(*lex.Token)
		tracer().Debugf("scanned %s %q", shunt.TokenType(t.Type), string(t.Lexeme))
		toks = append(toks, shunt.Token{
			Type:   shunt.TokenType(t.Type),
			Lexeme: string(t.Lexeme),
		})
	}
	return toks, nil
}

// scanError maps a lexmachine scan failure to the engine's error taxonomy.
func scanError(err error) error {
	if ui, ok := err.(*machines.UnconsumedInput); ok {
		rest := ui.Text[ui.StartTC:]
		if len(rest) > 0 {
			r, _ := utf8.DecodeRune(rest)
			return &shunt.Error{Kind: shunt.InvalidCharacter, Offending: string(r)}
		}
		return &shunt.Error{Kind: shunt.InvalidCharacter}
	}
	return err
}
