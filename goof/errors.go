package goof

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// errEnd unwinds the statement stack when an end statement runs.
	errEnd = errors.New("end of program")

	errRecursionLimit = errors.New("recursion limit exceeded")
	errStepQuota      = errors.New("step quota exceeded")
)

// SyntaxError reports a lexing or parsing failure.
type SyntaxError struct {
	Message string
	Pos     Position
	Line    string
}

func (e *SyntaxError) Error() string {
	return renderDiagnostic("syntax error", e.Message, e.Pos, e.Line)
}

// RuntimeError reports a failure while evaluating a statement.
type RuntimeError struct {
	Message string
	Pos     Position
	Line    string
}

func (e *RuntimeError) Error() string {
	return renderDiagnostic("runtime error", e.Message, e.Pos, e.Line)
}

// IOError reports a console or file failure. The message is fixed; the cause
// is only reachable through Unwrap.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return "i/o error"
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Diagnostic extracts the position and bare message from syntax and runtime
// errors. It reports false for any other error.
func Diagnostic(err error) (Position, string, bool) {
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Pos, syntaxErr.Message, true
	}
	var runtimeErr *RuntimeError
	if errors.As(err, &runtimeErr) {
		return runtimeErr.Pos, runtimeErr.Message, true
	}
	return Position{}, "", false
}

func renderDiagnostic(kind, message string, pos Position, line string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s", kind, pos.Line, pos.Column, message)
	if frame := formatCodeFrame(line, pos); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	return b.String()
}
