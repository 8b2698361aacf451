package goof

import (
	"fmt"
	"strings"
)

func (p *parser) errorExpected(tok Token, expected string) error {
	return p.errorAt(tok.Pos, "expected %s, got %s", expected, tokenLabel(tok))
}

func (p *parser) errorUnexpected(tok Token) error {
	return p.errorAt(tok.Pos, "unexpected token %s", tokenLabel(tok))
}

func (p *parser) errorAt(pos Position, format string, args ...any) error {
	return &SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
		Line:    p.src.LineText(pos.Line),
	}
}

func tokenLabel(tok Token) string {
	switch tok.Type {
	case tokenEOF:
		return "end of input"
	case tokenNewline:
		return "end of line"
	case tokenIdent:
		return fmt.Sprintf("identifier %q", tok.Literal)
	case tokenInt:
		return "integer " + tok.Literal
	case tokenString:
		return "text"
	default:
		return fmt.Sprintf("'%s'", strings.ToLower(string(tok.Type)))
	}
}
