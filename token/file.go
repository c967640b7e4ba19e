package token

import (
	"errors"
	"fmt"
)

// Pos represents a byte offset within a File.
//
type Pos int

// NoPos is the zero-value for an unknown position.
//
const NoPos Pos = -1

// IsValid returns true if p is a valid position (i.e. p >= 0).
//
func (p Pos) IsValid() bool {
	return p >= 0
}

// ErrLine is returned when a line number is out of range.
var ErrLine = errors.New("invalid line number")

// Position describes an arbitrary source position including the file, line, and column location.
//
type Position struct {
	Filename string
	Offset   int // byte offset in the file
	Line     int // 1-based line number
	Column   int // 1-based column number (byte index)
}

// IsValid returns true if the position has a valid line number.
//
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	s := p.Filename
	if p.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	if s == "" {
		s = "-"
	}
	return s
}

// A File represents an input file. It holds the whole source text and
// handles file offset to line/column conversion.
//
type File struct {
	name  string
	src   []byte
	lines []Pos // 0-based line/Pos information
}

// NewFile returns a new File for the given source. Line 1 is added at
// offset 0, other lines are added by the lexer as it reads newlines.
//
func NewFile(name string, src []byte) *File {
	return &File{
		name:  name,
		src:   src,
		lines: []Pos{0},
	}
}

// Name returns the file name.
//
func (f *File) Name() string {
	return f.name
}

// Bytes returns the source text. The returned slice must not be modified.
//
func (f *File) Bytes() []byte {
	return f.src
}

// Size returns the size of the source text in bytes.
//
func (f *File) Size() int {
	return len(f.src)
}

// LineCount returns the number of lines known so far.
//
func (f *File) LineCount() int {
	return len(f.lines)
}

// AddLine adds a new line at the given offset.
//
// line is the 1-based line index.
//
// A line that is already known is silently ignored, which happens when the
// lexer backs up over a newline and reads it again. Otherwise, AddLine will
// only accept a new line if line == last line + 1.
//
func (f *File) AddLine(pos Pos, line int) {
	l := len(f.lines)
	if l > 0 && f.lines[l-1] >= pos {
		// line already known
		return
	}
	if l+1 != line {
		panic(ErrLine)
	}
	f.lines = append(f.lines, pos)
}

// Position returns the 1-based line and column for a given pos.
//
func (f *File) Position(pos Pos) Position {
	if !pos.IsValid() {
		return Position{Filename: f.name}
	}
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	return Position{f.name, int(pos), i, int(pos - f.lines[i-1] + 1)}
}

// LinePos return the file offset of the given line.
//
func (f *File) LinePos(line int) Pos {
	if line < 1 || line > len(f.lines) {
		return NoPos
	}
	return f.lines[line-1]
}

// LineBytes returns the contents of the line for position pos, without the
// trailing newline.
//
func (f *File) LineBytes(pos Pos) ([]byte, error) {
	lp := f.LinePos(f.Position(pos).Line)
	if !lp.IsValid() {
		return nil, ErrLine
	}
	end := int(lp)
	for end < len(f.src) && f.src[end] != '\n' {
		end++
	}
	return f.src[lp:end], nil
}
