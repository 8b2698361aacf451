package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mgomes/goofscript/goof"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

var errSourcePathRequired = errors.New("goof: source path required")

func main() {
	if err := runCLI(os.Args); err != nil {
		reportError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// runCLI takes exactly one positional argument, the program to run.
func runCLI(args []string) error {
	if len(args) != 2 || args[1] == "" {
		return errSourcePathRequired
	}
	input, err := os.ReadFile(args[1])
	if err != nil {
		return &goof.IOError{Err: fmt.Errorf("read %s: %w", args[1], err)}
	}

	engine := goof.NewEngine(goof.Config{Stdin: os.Stdin, Stdout: os.Stdout})
	program, err := engine.Compile(string(input))
	if err != nil {
		return err
	}
	_, err = program.Run(context.Background(), goof.RunOptions{})
	return err
}

func exitCode(err error) int {
	if errors.Is(err, errSourcePathRequired) {
		return exitUsage
	}
	return exitFailure
}

// reportError writes err to w with its headline styled. Styling is dropped
// automatically when w is not a terminal.
func reportError(w io.Writer, err error) {
	renderer := lipgloss.NewRenderer(w)
	headlineStyle := renderer.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)

	headline, frame, hasFrame := strings.Cut(formatError(err), "\n")
	fmt.Fprintln(w, headlineStyle.Render(headline))
	if hasFrame {
		fmt.Fprintln(w, frame)
	}
}

// formatError keeps the cause of an i/o failure visible on the command line.
func formatError(err error) string {
	var ioErr *goof.IOError
	if errors.As(err, &ioErr) && ioErr.Err != nil {
		return fmt.Sprintf("%s: %v", ioErr.Error(), ioErr.Err)
	}
	return err.Error()
}
