package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mgomes/goofscript/goof"
)

func TestRunCLIRequiresExactlyOnePath(t *testing.T) {
	for _, args := range [][]string{{"goof"}, {"goof", "a.goof", "b.goof"}, {"goof", ""}} {
		err := runCLI(args)
		if !errors.Is(err, errSourcePathRequired) {
			t.Fatalf("%v: expected path required error, got %v", args, err)
		}
		if code := exitCode(err); code != exitUsage {
			t.Fatalf("%v: expected exit code %d, got %d", args, exitUsage, code)
		}
	}
}

func TestRunCLIExecutesProgram(t *testing.T) {
	path := writeScript(t, "x be 5 plus 3\nwrite x\nwrite \"done\"\n")

	out, err := captureStdout(t, func() error {
		return runCLI([]string{"goof", path})
	})
	if err != nil {
		t.Fatalf("runCLI failed: %v", err)
	}
	if out != "8\ndone\n" {
		t.Fatalf("unexpected stdout: %q", out)
	}
}

func TestRunCLIMissingFileIsIOError(t *testing.T) {
	err := runCLI([]string{"goof", filepath.Join(t.TempDir(), "missing.goof")})
	var ioErr *goof.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected i/o error, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}
	if code := exitCode(err); code != exitFailure {
		t.Fatalf("expected exit code %d, got %d", exitFailure, code)
	}
}

func TestRunCLIReportsRuntimeErrors(t *testing.T) {
	path := writeScript(t, "write 1\nwrite 1 plus \"b\"\n")

	out, err := captureStdout(t, func() error {
		return runCLI([]string{"goof", path})
	})
	if out != "1\n" {
		t.Fatalf("unexpected stdout before failure: %q", out)
	}
	var runtimeErr *goof.RuntimeError
	if !errors.As(err, &runtimeErr) {
		t.Fatalf("expected runtime error, got %v", err)
	}
	if code := exitCode(err); code != exitFailure {
		t.Fatalf("expected exit code %d, got %d", exitFailure, code)
	}

	var stderr bytes.Buffer
	reportError(&stderr, err)
	report := stderr.String()
	for _, want := range []string{
		"runtime error at 2:9: cannot apply 'plus' to int and text",
		" 2 | write 1 plus \"b\"",
		"   |         ^",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestRunCLIReportsSyntaxErrorsBeforeRunning(t *testing.T) {
	path := writeScript(t, "write 1\nwrite (2)\n")

	out, err := captureStdout(t, func() error {
		return runCLI([]string{"goof", path})
	})
	if out != "" {
		t.Fatalf("program ran despite syntax error: %q", out)
	}
	var syntaxErr *goof.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	if syntaxErr.Pos.Line != 2 || syntaxErr.Pos.Column != 7 {
		t.Fatalf("unexpected position: %+v", syntaxErr.Pos)
	}
}

func TestRunCLIEndIsSuccess(t *testing.T) {
	path := writeScript(t, "write 1\nend\nwrite 2\n")

	out, err := captureStdout(t, func() error {
		return runCLI([]string{"goof", path})
	})
	if err != nil {
		t.Fatalf("end should exit cleanly: %v", err)
	}
	if out != "1\n" {
		t.Fatalf("unexpected stdout: %q", out)
	}
}

func TestFormatErrorKeepsIOCause(t *testing.T) {
	err := &goof.IOError{Err: errors.New("read prog.goof: permission denied")}
	if got := formatError(err); got != "i/o error: read prog.goof: permission denied" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.goof")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()
	_ = w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	if _, copyErr := io.Copy(&buf, r); copyErr != nil {
		t.Fatalf("read stdout: %v", copyErr)
	}
	_ = r.Close()
	return buf.String(), runErr
}
