package lex

import "github.com/turmeric-lang/lex/token"

func isSpace(c int) bool {
	return c == '\n' || c == '\t' || c == ' '
}

func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c int) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdent(c int) bool {
	return isIdentStart(c) || isDigit(c)
}

// isSym returns true for the printable ASCII range, excluding the quote.
func isSym(c int) bool {
	return c >= ' ' && c <= '~' && c != '\''
}

// maxSym is the largest symbol value for numeric symbol literals.
const maxSym = 255

// stateInit is the initial state function where any token is expected.
//
func stateInit(s *state) stateFn {
	for isSpace(s.next()) {
	}
	s.backup()

	c := s.next()
	s.startToken(s.pos())
	switch {
	case c == EOF:
		s.emit(token.EOF, "", 0)
		return stateEOF
	case c == '\'':
		return stateQuotedSym
	case isDigit(c):
		return stateNumSym
	case isIdentStart(c):
		return stateIdent
	}
	if t, ok := token.Punct(byte(c)); ok {
		s.emit(t, "", 0)
		return nil
	}
	return s.fail(UnexpectedChar, s.pos(), byte(c))
}

// stateEOF keeps emitting EOF.
//
func stateEOF(s *state) stateFn {
	s.startToken(token.Pos(len(s.src)))
	s.emit(token.EOF, "", 0)
	return stateEOF
}

// stateIdent lexes an identifier. The first byte has already been read.
//
func stateIdent(s *state) stateFn {
	for isIdent(s.next()) {
	}
	s.backup()
	s.emit(token.Ident, s.text(), 0)
	return nil
}

// stateNumSym lexes a symbol given by its decimal code. Lexing fails as soon
// as the value goes past maxSym, leaving any remaining digits unread.
//
func stateNumSym(s *state) stateFn {
	n := s.current() - '0'
	for {
		c := s.next()
		if !isDigit(c) {
			break
		}
		n = n*10 + c - '0'
		if n > maxSym {
			return s.fail(SymNumberTooBig, s.tokenPos(), 0)
		}
	}
	s.backup()
	s.emit(token.Sym, "", byte(n))
	return nil
}

// stateQuotedSym lexes a quoted symbol literal like 'a'. The opening quote
// has already been read. On error, the offending byte is pushed back.
//
func stateQuotedSym(s *state) stateFn {
	c := s.next()
	p := s.pos()
	switch {
	case c == EOF:
		s.backup()
		return s.fail(UnclosedSym, p, 0)
	case !isSym(c):
		s.backup()
		return s.fail(InvalidSymContent, p, byte(c))
	}
	if q := s.next(); q != '\'' {
		p = s.pos()
		s.backup()
		return s.fail(UnclosedSym, p, 0)
	}
	s.emit(token.Sym, "", byte(c))
	return nil
}
