// Package token defines constants and types representing lexical tokens
// in turmeric source text.
//
package token

import "strconv"

// Token represents a token's kind.
//
type Token uint

// Token kinds
//
const (
	EOF         Token = iota // end of file
	Let                      // let
	Accept                   // accept
	Reject                   // reject
	Ident                    // identifier
	Equals                   // =
	Exec                     // @
	ActionOpen               // [
	ActionClose              // ]
	ParensOpen               // (
	ParensClose              // )
	BracesOpen               // {
	BracesClose              // }
	Bar                      // |
	MoveLeft                 // <
	MoveRight                // >
	Print                    // #
	Sym                      // 'c' or 0..255
)

var names = [...]string{
	EOF:         "EOF",
	Let:         "Let",
	Accept:      "Accept",
	Reject:      "Reject",
	Ident:       "Ident",
	Equals:      "Equals",
	Exec:        "Exec",
	ActionOpen:  "ActionOpen",
	ActionClose: "ActionClose",
	ParensOpen:  "ParensOpen",
	ParensClose: "ParensClose",
	BracesOpen:  "BracesOpen",
	BracesClose: "BracesClose",
	Bar:         "Bar",
	MoveLeft:    "MoveLeft",
	MoveRight:   "MoveRight",
	Print:       "Print",
	Sym:         "Sym",
}

func (t Token) String() string {
	if t < Token(len(names)) {
		return names[t]
	}
	return "Token(" + strconv.Itoa(int(t)) + ")"
}

// IsKeyword returns true for tokens produced by keyword resolution.
//
func (t Token) IsKeyword() bool {
	return t == Let || t == Accept || t == Reject
}

var keywords = map[string]Token{
	"let":    Let,
	"accept": Accept,
	"reject": Reject,
}

// Lookup maps an identifier to its keyword token. If ident is not a reserved
// word, it returns Ident. Matching is exact and case sensitive.
//
func Lookup(ident string) Token {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return Ident
}

// Punct returns the token for a single byte punctuation character.
//
func Punct(c byte) (Token, bool) {
	switch c {
	case '<':
		return MoveLeft, true
	case '>':
		return MoveRight, true
	case '#':
		return Print, true
	case '=':
		return Equals, true
	case '[':
		return ActionOpen, true
	case ']':
		return ActionClose, true
	case '(':
		return ParensOpen, true
	case ')':
		return ParensClose, true
	case '{':
		return BracesOpen, true
	case '}':
		return BracesClose, true
	case '|':
		return Bar, true
	case '@':
		return Exec, true
	}
	return EOF, false
}
