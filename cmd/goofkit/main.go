package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mgomes/goofscript/goof"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "check":
		return checkCommand(args[2:])
	case "tokens":
		return tokensCommand(args[2:])
	case "ast":
		return astCommand(args[2:])
	case "fmt":
		return fmtCommand(args[2:])
	case "analyze":
		return analyzeCommand(args[2:])
	case "repl":
		return runREPL()
	case "lsp":
		return runLSP()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [args...]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  check <file>            compile a program without running it")
	fmt.Fprintln(os.Stderr, "  tokens <file>           print the token stream")
	fmt.Fprintln(os.Stderr, "  ast <file>              print each line fully parenthesized")
	fmt.Fprintln(os.Stderr, "  fmt [-w] [-l] [-check] <paths...>")
	fmt.Fprintln(os.Stderr, "                          normalize whitespace in .goof files")
	fmt.Fprintln(os.Stderr, "  analyze <file>          report suspicious jumps and unreachable lines")
	fmt.Fprintln(os.Stderr, "  repl                    start an interactive session")
	fmt.Fprintln(os.Stderr, "  lsp                     serve the language server protocol on stdio")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}

// readProgramArg parses a command that takes a single program path and
// returns the absolute path with the file contents.
func readProgramArg(command string, args []string) (string, string, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return "", "", fmt.Errorf("goofkit %s: source path required", command)
	}
	path, err := filepath.Abs(remaining[0])
	if err != nil {
		return "", "", fmt.Errorf("resolve source path: %w", err)
	}
	input, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read source: %w", err)
	}
	return path, string(input), nil
}

func compileProgramArg(command string, args []string) (string, *goof.Program, error) {
	path, input, err := readProgramArg(command, args)
	if err != nil {
		return "", nil, err
	}
	program, err := goof.NewEngine(goof.Config{}).Compile(input)
	if err != nil {
		return "", nil, fmt.Errorf("compile failed: %w", err)
	}
	return path, program, nil
}

// describeError spells out the cause of an i/o error, which the error
// message alone leaves out.
func describeError(err error) string {
	var ioErr *goof.IOError
	if errors.As(err, &ioErr) && ioErr.Err != nil {
		return fmt.Sprintf("%s: %v", ioErr.Error(), ioErr.Err)
	}
	return err.Error()
}
