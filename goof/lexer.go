package goof

import (
	"fmt"
	"slices"
	"strconv"
)

type lexer struct {
	src  *Source
	done bool
}

func newLexer(src *Source) *lexer {
	return &lexer{src: src}
}

// Tokenize scans src into a complete token slice ending with a single EOF
// token. The first lexical error stops the scan; the tokens read before it
// are returned alongside the error.
func Tokenize(src *Source) ([]Token, error) {
	l := newLexer(src)
	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == tokenEOF {
			return tokens, nil
		}
	}
}

// AssignedNames lists, in first-seen order, every identifier that appears
// directly before `be` in source. Scanning stops at the first lexical error
// and keeps the names found before it.
func AssignedNames(source string) []string {
	tokens, _ := Tokenize(NewSource([]byte(source)))
	var names []string
	for i := 1; i < len(tokens); i++ {
		name := tokens[i-1]
		if tokens[i].Type == tokenBe && name.Type == tokenIdent && !slices.Contains(names, name.Literal) {
			names = append(names, name.Literal)
		}
	}
	return names
}

func (l *lexer) next() (Token, error) {
	if l.done {
		return Token{Type: tokenEOF, Pos: l.src.Pos()}, nil
	}

	l.skipSpaces()

	c := l.src.Peek()
	switch {
	case c == endOfInput:
		l.done = true
		return Token{Type: tokenEOF, Pos: l.src.Pos()}, nil
	case c == '"':
		return l.readString()
	case c == '\n' || c == '\r':
		return l.readNewline()
	case isDigit(c):
		return l.readNumber()
	case isLetter(c):
		return l.readWord(), nil
	default:
		return Token{}, l.errorf(l.src.Pos(), "unexpected character %q", l.src.PeekRune())
	}
}

func (l *lexer) skipSpaces() {
	for {
		switch l.src.Peek() {
		case ' ', '\t':
			l.src.Skip(1)
		default:
			return
		}
	}
}

func (l *lexer) readWord() Token {
	pos := l.src.Pos()
	var word []byte
	for isLetter(l.src.Peek()) {
		word = append(word, byte(l.src.Advance()))
	}
	literal := string(word)
	tok := Token{Type: lookupIdent(literal), Literal: literal, Pos: pos}
	if tok.Type == tokenComment {
		l.skipComment()
	}
	return tok
}

func (l *lexer) skipComment() {
	for !isLineEnd(l.src.Peek()) {
		l.src.Advance()
	}
}

func (l *lexer) readNumber() (Token, error) {
	pos := l.src.Pos()
	var digits []byte
	for isDigit(l.src.Peek()) {
		digits = append(digits, byte(l.src.Advance()))
	}
	literal := string(digits)
	if _, err := strconv.ParseInt(literal, 10, 64); err != nil {
		return Token{}, l.errorf(pos, "number too large")
	}
	return Token{Type: tokenInt, Literal: literal, Pos: pos}, nil
}

func (l *lexer) readString() (Token, error) {
	pos := l.src.Pos()
	l.src.Skip(1)
	var text []byte
	for l.src.Peek() != '"' {
		if isLineEnd(l.src.Peek()) {
			return Token{}, l.errorf(l.src.Pos(), "unterminated string")
		}
		text = append(text, byte(l.src.Advance()))
	}
	l.src.Skip(1)
	return Token{Type: tokenString, Literal: string(text), Pos: pos}, nil
}

func (l *lexer) readNewline() (Token, error) {
	pos := l.src.Pos()
	if l.src.Peek() == '\r' {
		l.src.Advance()
	}
	if l.src.Peek() != '\n' {
		return Token{}, l.errorf(pos, "carriage return without line feed")
	}
	l.src.Advance()
	l.src.NewLine()
	return Token{Type: tokenNewline, Literal: "\n", Pos: pos}, nil
}

func (l *lexer) errorf(pos Position, format string, args ...any) error {
	return &SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
		Line:    l.src.LineText(pos.Line),
	}
}

func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c int) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isLineEnd(c int) bool {
	return c == '\n' || c == '\r' || c == endOfInput
}
