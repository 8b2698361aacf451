package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/mgomes/goofscript/goof"
)

var errReadUnavailable = errors.New("read is not available in the repl")

// replSession is the program being typed in. Each accepted entry becomes the
// next line, so run statements can address earlier entries by number.
type replSession struct {
	engine *goof.Engine
	env    *goof.Env
	lines  []string
}

// evalResult is what one entry produced.
type evalResult struct {
	line   int // 0 when the entry was rejected
	output string
	failed bool
}

func newREPLSession() *replSession {
	s := &replSession{engine: goof.NewEngine(goof.Config{})}
	s.reset()
	return s
}

func (s *replSession) reset() {
	s.env = goof.NewEnv()
	s.lines = nil
}

// eval appends input as the next line and runs only that line. Entries that
// do not compile are rejected and leave the program unchanged.
func (s *replSession) eval(input string) evalResult {
	next := append(slices.Clone(s.lines), input)
	program, err := s.engine.Compile(strings.Join(next, "\n"))
	if err != nil {
		return evalResult{output: describeError(err), failed: true}
	}
	s.lines = next
	at := len(next)

	var sink collectingConsole
	value, runErr := program.RunLines(context.Background(), at, at, goof.RunOptions{
		Env:     s.env,
		Console: &sink,
	})

	parts := slices.Clone(sink.lines)
	switch {
	case runErr != nil:
		parts = append(parts, describeError(runErr))
	case len(parts) == 0:
		parts = append(parts, value.String())
	}
	return evalResult{line: at, output: strings.Join(parts, "\n"), failed: runErr != nil}
}

func (s *replSession) listing() string {
	if len(s.lines) == 0 {
		return "No lines entered"
	}
	width := len(strconv.Itoa(len(s.lines)))
	numbered := make([]string, 0, len(s.lines))
	for n, text := range s.lines {
		numbered = append(numbered, fmt.Sprintf("%*d | %s", width, n+1, text))
	}
	return strings.Join(numbered, "\n")
}

// collectingConsole buffers writes; reading has no input source.
type collectingConsole struct {
	lines []string
}

func (c *collectingConsole) WriteLine(text string) error {
	c.lines = append(c.lines, text)
	return nil
}

func (c *collectingConsole) ReadLine() (string, error) { return "", errReadUnavailable }

// runPlainREPL serves piped input one entry per line.
func runPlainREPL(in io.Reader, out io.Writer) error {
	session := newREPLSession()
	lines := bufio.NewScanner(in)
	for lines.Scan() {
		entry := strings.TrimSpace(lines.Text())
		var res evalResult
		switch entry {
		case "":
			continue
		case ":quit", ":q":
			return nil
		case ":reset", ":r":
			session.reset()
			continue
		case ":list", ":l":
			if _, err := fmt.Fprintln(out, session.listing()); err != nil {
				return err
			}
			continue
		default:
			res = session.eval(entry)
		}

		marker := "→ "
		if res.failed {
			marker = "✗ "
		}
		var b strings.Builder
		for _, text := range strings.Split(res.output, "\n") {
			b.WriteString(marker + text + "\n")
		}
		if _, err := io.WriteString(out, b.String()); err != nil {
			return err
		}
	}
	return lines.Err()
}
