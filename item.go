package lex

import (
	"strconv"

	"github.com/turmeric-lang/lex/token"
)

// Item represents a token returned from the lexer.
//
// Text is set for token.Ident items and Sym for token.Sym items. All other
// tokens carry no value.
//
type Item struct {
	Token token.Token
	Pos   token.Pos // Token start position within the file.
	Text  string
	Sym   byte
}

// String returns a string representation of the item. This should be used
// only for debugging purposes as the output format is not guaranteed to be
// stable.
//
func (i Item) String() string {
	switch i.Token {
	case token.Ident:
		return i.Token.String() + " " + strconv.Quote(i.Text)
	case token.Sym:
		return i.Token.String() + " " + strconv.Itoa(int(i.Sym))
	default:
		return i.Token.String()
	}
}

// Same reports whether i and o are the same token, regardless of their
// position.
//
func (i Item) Same(o Item) bool {
	return i.Token == o.Token && i.Text == o.Text && i.Sym == o.Sym
}
