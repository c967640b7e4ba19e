package lex

import (
	"github.com/sirupsen/logrus"
	"github.com/turmeric-lang/lex/token"
)

// Lex lexes buf and returns the resulting tokens with keywords resolved.
// The returned slice does not include a token.EOF item and is empty for blank
// input. Lexing stops at the first error, in which case no tokens are
// returned and the error is an *Error.
//
func Lex(buf []byte, opts ...Option) ([]Item, error) {
	return LexFile(token.NewFile("", buf), opts...)
}

// LexFile is like Lex but reads its input from f. Error positions use the
// file name of f.
//
func LexFile(f *token.File, opts ...Option) ([]Item, error) {
	o := newOptions(opts)
	s := newState(f, o)
	if o.log != nil {
		o.log.WithFields(logrus.Fields{"file": f.Name(), "size": f.Size()}).Debug("lexing")
	}
	items := make([]Item, 0, o.capacity)
	for {
		i, err := s.lex()
		if err != nil {
			return nil, err
		}
		if i.Token == token.EOF {
			break
		}
		items = append(items, i)
	}
	ResolveKeywords(items)
	if o.log != nil {
		o.log.WithFields(logrus.Fields{"file": f.Name(), "tokens": len(items), "lines": s.line}).Debug("lexing done")
	}
	return items, nil
}

// A Lexer returns tokens one at a time. It is intended for parsers that call
// NewLexer, then Lex until EOF.
//
type Lexer struct {
	s *state
}

// NewLexer creates a new lexer associated with the given source file. A new
// lexer must be created for every source file to be lexed.
//
func NewLexer(f *token.File, opts ...Option) *Lexer {
	return &Lexer{newState(f, newOptions(opts))}
}

// Lex returns the next item with keywords resolved. Once the end of input has
// been reached, Lex keeps returning token.EOF items. Once an error has been
// returned, any subsequent call returns the same error.
//
func (l *Lexer) Lex() (Item, error) {
	i, err := l.s.lex()
	if err != nil {
		return Item{}, err
	}
	return resolve(i), nil
}

// File returns the File used as input for the lexer.
//
func (l *Lexer) File() *token.File {
	return l.s.f
}

// Line returns the current line number.
//
func (l *Lexer) Line() int {
	return l.s.line
}
