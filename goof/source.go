package goof

import (
	"bytes"
	"unicode/utf8"
)

// endOfInput is returned by Peek and Advance once the buffer is exhausted.
const endOfInput = -1

// Source owns the raw program bytes and remembers where every line starts so
// diagnostics can quote the original text long after scanning finished.
type Source struct {
	data       []byte
	offset     int
	line       int
	column     int
	lineStarts []int
}

// NewSource buffers data for scanning.
func NewSource(data []byte) *Source {
	return &Source{data: data, line: 1, column: 1, lineStarts: []int{0}}
}

// Peek returns the next byte without consuming it, or endOfInput.
func (s *Source) Peek() int {
	if s.offset >= len(s.data) {
		return endOfInput
	}
	return int(s.data[s.offset])
}

// PeekRune decodes the rune at the scan position for error messages.
func (s *Source) PeekRune() rune {
	if s.offset >= len(s.data) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRune(s.data[s.offset:])
	return r
}

// Advance consumes one byte and returns it.
func (s *Source) Advance() int {
	c := s.Peek()
	if c != endOfInput {
		s.offset++
		s.column++
	}
	return c
}

// Skip consumes up to n bytes.
func (s *Source) Skip(n int) {
	end := min(len(s.data), s.offset+n)
	s.column += end - s.offset
	s.offset = end
}

// NewLine marks the scan position as the start of the next line. The caller
// must already have consumed the terminator.
func (s *Source) NewLine() {
	s.lineStarts = append(s.lineStarts, s.offset)
	s.line++
	s.column = 1
}

// Pos reports the current scan position.
func (s *Source) Pos() Position {
	return Position{Line: s.line, Column: s.column}
}

// LineCount reports how many lines have been indexed so far.
func (s *Source) LineCount() int {
	return len(s.lineStarts)
}

// LineText returns line n (1-based) without its terminator.
func (s *Source) LineText(n int) string {
	if n < 1 || n > len(s.lineStarts) {
		return ""
	}
	rest := s.data[s.lineStarts[n-1]:]
	if idx := bytes.IndexByte(rest, '\n'); idx >= 0 {
		rest = rest[:idx]
	}
	rest = bytes.TrimSuffix(rest, []byte{'\r'})
	return string(rest)
}
