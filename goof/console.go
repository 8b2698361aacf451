package goof

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Console is the only channel a program has to the outside world.
type Console interface {
	// WriteLine writes text followed by one newline and flushes.
	WriteLine(text string) error
	// ReadLine returns the next input line without its terminator.
	ReadLine() (string, error)
}

type streamConsole struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// NewConsole wraps a reader and writer. Each WriteLine is flushed before it
// returns so prompts are visible before a following read.
func NewConsole(in io.Reader, out io.Writer) Console {
	return &streamConsole{in: bufio.NewReader(in), out: bufio.NewWriter(out)}
}

func (c *streamConsole) WriteLine(text string) error {
	if _, err := c.out.WriteString(text); err != nil {
		return err
	}
	if err := c.out.WriteByte('\n'); err != nil {
		return err
	}
	return c.out.Flush()
}

// ReadLine treats end of input as an empty line.
func (c *streamConsole) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
