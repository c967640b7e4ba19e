package lex

import (
	"fmt"
	"strconv"

	"github.com/turmeric-lang/lex/token"
)

// ErrorKind identifies the kind of a lexing error.
//
type ErrorKind int

// Lexing error kinds.
//
const (
	UnexpectedChar    ErrorKind = iota + 1 // byte outside of any token class
	InvalidSymContent                      // quoted symbol with non printable content or ''
	UnclosedSym                            // quoted symbol not terminated by a quote
	SymNumberTooBig                        // numeric symbol greater than 255
)

var kindNames = [...]string{
	UnexpectedChar:    "UnexpectedChar",
	InvalidSymContent: "InvalidSymContent",
	UnclosedSym:       "UnclosedSym",
	SymNumberTooBig:   "SymNumberTooBig",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Error is the error type returned by the lexer. Char holds the offending
// byte for UnexpectedChar and InvalidSymContent errors.
//
type Error struct {
	Kind ErrorKind
	Char byte
	Pos  token.Position
}

// Sentinel errors for use with errors.Is. They match any *Error of the same
// kind.
//
var (
	ErrUnexpectedChar    = &Error{Kind: UnexpectedChar}
	ErrInvalidSymContent = &Error{Kind: InvalidSymContent}
	ErrUnclosedSym       = &Error{Kind: UnclosedSym}
	ErrSymNumberTooBig   = &Error{Kind: SymNumberTooBig}
)

// Msg returns the error message without position information.
//
func (e *Error) Msg() string {
	switch e.Kind {
	case UnexpectedChar:
		return "unexpected character " + quoteByte(e.Char)
	case InvalidSymContent:
		return "invalid character " + quoteByte(e.Char) + " in symbol literal"
	case UnclosedSym:
		return "unterminated symbol literal"
	case SymNumberTooBig:
		return fmt.Sprintf("symbol number too big (max %d)", maxSym)
	}
	return e.Kind.String()
}

func (e *Error) Error() string {
	if !e.Pos.IsValid() {
		return e.Msg()
	}
	return e.Pos.String() + ": " + e.Msg()
}

// Is reports whether target is an *Error of the same kind.
//
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func quoteByte(c byte) string {
	if c >= ' ' && c <= '~' {
		return strconv.QuoteRune(rune(c))
	}
	return fmt.Sprintf("0x%02x", c)
}
