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

package lex

import (
	"github.com/sirupsen/logrus"
	"github.com/turmeric-lang/lex/token"
)

// EOF is the return value from next() when EOF is reached.
//
const EOF = -1

// queue is a FIFO queue.
//
type queue struct {
	items []Item
	head  int
	tail  int
	count int
}

func (q *queue) push(i Item) {
	if q.head == q.tail && q.count > 0 {
		items := make([]Item, len(q.items)*2)
		copy(items, q.items[q.head:])
		copy(items[len(q.items)-q.head:], q.items[:q.head])
		q.head = 0
		q.tail = len(q.items)
		q.items = items
	}
	q.items[q.tail] = i
	q.tail = (q.tail + 1) % len(q.items)
	q.count++
}

// pop pops the first item from the queue. Callers must check that q.count > 0 beforehand.
//
func (q *queue) pop() Item {
	i := q.head
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return q.items[i]
}

// A stateFn is a state function.
//
// If a stateFn returns nil, the lexer transitions back to its initial state
// function.
//
type stateFn func(s *state) stateFn

// state holds the internal state of the lexer while processing a given input.
//
type state struct {
	queue
	f      *token.File
	src    []byte
	r      int       // offset of the next byte to read
	line   int       // line count
	undone bool      // true if the last read has been reverted
	ts     token.Pos // token start position
	fn     stateFn
	err    *Error
	log    logrus.Ext1FieldLogger
}

func newState(f *token.File, o *options) *state {
	return &state{
		// initial q size must be an exponent of 2
		queue: queue{items: make([]Item, 2)},
		f:     f,
		src:   f.Bytes(),
		line:  1,
		log:   o.log,
	}
}

// next returns the next byte in the input or EOF. Reading past the end of
// input moves the cursor one position beyond the last byte so that backup
// can revert an EOF read like any other.
//
func (s *state) next() int {
	s.undone = false
	if s.r >= len(s.src) {
		s.r = len(s.src) + 1
		return EOF
	}
	c := s.src[s.r]
	s.r++
	if c == '\n' {
		s.line++
		s.f.AddLine(token.Pos(s.r), s.line)
	}
	return int(c)
}

// backup reverts the last call to next. Only a single byte of pushback is
// supported: calling backup twice in a row, or before any call to next,
// panics.
//
func (s *state) backup() {
	if s.undone || s.r == 0 {
		panic("invalid use of backup")
	}
	s.undone = true
	s.r--
	if s.r < len(s.src) && s.src[s.r] == '\n' {
		s.line--
	}
}

// current returns the last byte returned by next that has not been reverted.
// Returns EOF at the end of input or if nothing has been read yet.
//
func (s *state) current() int {
	if s.r == 0 || s.r > len(s.src) {
		return EOF
	}
	return int(s.src[s.r-1])
}

// peek returns the next byte in the input without consuming it.
//
func (s *state) peek() int {
	if s.r >= len(s.src) {
		return EOF
	}
	return int(s.src[s.r])
}

// pos returns the byte offset of the last byte returned by next. At EOF, this
// is the size of the input. Returns token.NoPos if no input has been read yet.
//
func (s *state) pos() token.Pos {
	if s.r == 0 {
		return token.NoPos
	}
	return token.Pos(s.r - 1)
}

// startToken sets p as the current token start position.
//
func (s *state) startToken(p token.Pos) {
	s.ts = p
}

// tokenPos returns the position set by startToken.
//
func (s *state) tokenPos() token.Pos {
	return s.ts
}

// text returns the input from the token start position up to, but not
// including, the next byte to read.
//
func (s *state) text() string {
	end := s.r
	if end > len(s.src) {
		end = len(s.src)
	}
	return string(s.src[s.ts:end])
}

// emit queues a token positioned at the current token start.
//
func (s *state) emit(t token.Token, text string, sym byte) {
	i := Item{Token: t, Pos: s.ts, Text: text, Sym: sym}
	if s.log != nil {
		s.log.WithFields(logrus.Fields{
			"pos":   s.f.Position(i.Pos).String(),
			"token": i.String(),
		}).Trace("emit")
	}
	s.push(i)
}

// fail records a lexing error at position p and stops the lexer. Its
// return value is meant to be returned by the calling stateFn.
//
func (s *state) fail(k ErrorKind, p token.Pos, c byte) stateFn {
	s.err = &Error{Kind: k, Char: c, Pos: s.f.Position(p)}
	if s.log != nil {
		s.log.WithField("error", s.err.Error()).Debug("lexing failed")
	}
	return nil
}

// lex runs the state machine until an item is available or an error occurs.
// Once an error has been reported, it is returned by every subsequent call.
//
func (s *state) lex() (Item, error) {
	for s.count == 0 && s.err == nil {
		if s.fn == nil {
			s.fn = stateInit(s)
		} else {
			s.fn = s.fn(s)
		}
	}
	if s.count > 0 {
		return s.pop(), nil
	}
	return Item{}, s.err
}
