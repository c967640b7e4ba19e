// Copyright 2026 The turmeric Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

/*
Package lex implements the lexer for turmeric, a small language describing
tape state machines.

The lexer converts source bytes into a flat sequence of tokens: punctuation
(tape head moves, print, actions, grouping), identifiers, the keywords let,
accept and reject, and tape symbols. Symbols are written either quoted, as
in 'a', or by their decimal code, as in 97. Quoted symbols must be printable
ASCII other than the quote itself; numeric symbols range from 0 to 255.

Usage

The whole input must be available as a byte slice:

	items, err := lex.Lex(src)
	if err != nil {
		var e *lex.Error
		if errors.As(err, &e) {
			// e.Kind, e.Char and e.Pos describe the problem
		}
		return err
	}
	for _, i := range items {
		fmt.Println(i)
	}

Parsers that prefer pulling one token at a time can use a Lexer instead.

State functions

The implementation is similar to https://golang.org/src/text/template/parse/lex.go.
See also Rob Pike's talk about combining states and actions into state
functions: https://talks.golang.org/2011/lex.slide.

The initial state of the DFA is the state where we expect to read a new token.
From that initial state, the lexer transitions to other states until a token is
successfully matched or an error occurs. The state function that finds a match
emits the corresponding token and returns nil to transition back to the
initial state. Emitted tokens are stored in a FIFO queue.

State functions can push back a single byte. This is all the look-ahead the
language needs: every state either commits a byte to the current token or
returns it to the input.

Error handling

Any error stops the lexer: there is no recovery and only the first error is
reported. Errors are of type *Error and carry a kind, the offending byte when
relevant and the position of the error. The ErrXXX sentinel values can be
used with errors.Is to test for a given kind.

Keywords

Identifiers are emitted as token.Ident and reclassified afterwards by
ResolveKeywords. Only exact matches are keywords: "letter" is an identifier.

*/
package lex
