// Package diag formats source diagnostics.
//
// A diagnostic has the form:
//
//	file:line:col: error description
//	|source line where the error occurred
//	|       ^
//
// where the caret points at the column of the error.
//
package diag

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/turmeric-lang/lex"
	"github.com/turmeric-lang/lex/token"
	"golang.org/x/text/width"
)

// A Reporter writes diagnostics for a single source file.
//
type Reporter struct {
	w     io.Writer
	f     *token.File
	Color bool // print the caret in red
}

// NewReporter returns a new Reporter writing to w.
//
func NewReporter(w io.Writer, f *token.File) *Reporter {
	return &Reporter{w: w, f: f}
}

// Report writes a diagnostic with message msg at position p.
//
func (r *Reporter) Report(p token.Pos, msg string) error {
	pos := r.f.Position(p)
	if _, err := fmt.Fprintf(r.w, "%s: error %s\n", pos, msg); err != nil {
		return err
	}
	l, err := r.f.LineBytes(p)
	if err != nil {
		// no source line to show
		return nil
	}
	b := pos.Column - 1
	if b > len(l) {
		b = len(l)
	}
	caret := "^"
	if r.Color {
		caret = "\x1b[31m^\x1b[0m"
	}
	_, err = fmt.Fprintf(r.w, "|%s\n|%s%s\n", l, Indent(l[:b]), caret)
	return err
}

// ReportError writes a diagnostic for err. Lexer errors are reported at the
// position they carry, any other error is written as is. err may have been
// wrapped with github.com/pkg/errors.
//
func (r *Reporter) ReportError(err error) error {
	var e *lex.Error
	if !errors.As(err, &e) || !e.Pos.IsValid() {
		_, werr := fmt.Fprintf(r.w, "error %v\n", err)
		return werr
	}
	return r.Report(token.Pos(e.Pos.Offset), e.Msg())
}

// Indent returns the blank prefix that aligns a caret under the byte
// following l on a terminal: tabs are kept as is and other characters are
// replaced by as many spaces as their width in text cells.
// (supposing rendering with a UTF-8 locale and monospaced font)
//
func Indent(l []byte) string {
	buf := make([]byte, 0, len(l))
	for i := 0; i < len(l); {
		r, s := utf8.DecodeRune(l[i:])
		i += s
		if r == '\t' {
			buf = append(buf, '\t')
			continue
		}
		for n := Width(r); n > 0; n-- {
			buf = append(buf, ' ')
		}
	}
	return string(buf)
}

// Width computes the width in text cells of a given rune.
//
func Width(r rune) int {
	if !unicode.IsGraphic(r) {
		return 0
	}
	p := width.LookupRune(r)
	switch p.Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	case width.EastAsianAmbiguous:
		return 1 // depends on user locale. 2 if locale is CJK, 1 otherwise.
	default:
		return 1
	}
}
