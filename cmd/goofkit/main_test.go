package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mgomes/goofscript/goof"
)

func TestRunCLIHelp(t *testing.T) {
	if err := runCLI([]string{"goofkit", "help"}); err != nil {
		t.Fatalf("runCLI help failed: %v", err)
	}
}

func TestRunCLIInvalidCommand(t *testing.T) {
	for _, args := range [][]string{{"goofkit"}, {"goofkit", "unknown"}} {
		err := runCLI(args)
		if err == nil || !strings.Contains(err.Error(), "invalid command") {
			t.Fatalf("%v: unexpected error: %v", args, err)
		}
	}
}

func TestCheckCommand(t *testing.T) {
	if err := checkCommand([]string{writeScript(t, "x be 1\nwrite x\n")}); err != nil {
		t.Fatalf("check failed: %v", err)
	}

	err := checkCommand([]string{writeScript(t, "x be\n")})
	var syntaxErr *goof.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected wrapped syntax error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "compile failed: syntax error at 1:5") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCommandsRequireSourcePath(t *testing.T) {
	commands := map[string]func([]string) error{
		"check":   checkCommand,
		"tokens":  tokensCommand,
		"ast":     astCommand,
		"analyze": analyzeCommand,
	}
	for name, command := range commands {
		err := command(nil)
		if err == nil || !strings.Contains(err.Error(), "source path required") {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
	}
}

func TestTokensCommandPrintsStream(t *testing.T) {
	path := writeScript(t, "x be \"hi\"\n")
	out, err := captureStdout(t, func() error {
		return tokensCommand([]string{path})
	})
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}
	want := strings.Join([]string{
		"1:1\tIDENT\t\"x\"",
		"1:3\tBE\t\"be\"",
		"1:6\tSTRING\t\"hi\"",
		"1:10\tNEWLINE\t\"\\n\"",
		"2:1\tEOF\t\"\"",
	}, "\n") + "\n"
	if out != want {
		t.Fatalf("unexpected token dump:\n%s\nwant:\n%s", out, want)
	}
}

func TestASTCommandPrintsParenthesizedLines(t *testing.T) {
	path := writeScript(t, "x be 1 plus 2 times 3\n\nwrite x if x above 5\n")
	out, err := captureStdout(t, func() error {
		return astCommand([]string{path})
	})
	if err != nil {
		t.Fatalf("ast failed: %v", err)
	}
	want := "1\tx be open 1 plus open 2 times 3 close close\n2\n3\twrite x if open x above 5 close\n"
	if out != want {
		t.Fatalf("unexpected ast dump:\n%q\nwant:\n%q", out, want)
	}
}

func TestAnalyzeCommandNoIssues(t *testing.T) {
	path := writeScript(t, "n be 0\nn be n plus 1\nrun at 2 if n below 3\nwrite n\n")

	out, err := captureStdout(t, func() error {
		return analyzeCommand([]string{path})
	})
	if err != nil {
		t.Fatalf("analyzeCommand failed: %v", err)
	}
	if !strings.Contains(out, "No issues found") {
		t.Fatalf("unexpected analyze output: %q", out)
	}
}

func TestAnalyzeCommandReportsIssues(t *testing.T) {
	path := writeScript(t, "run at 9\nend\nwrite 2\n")

	out, err := captureStdout(t, func() error {
		return analyzeCommand([]string{path})
	})
	if err == nil || !strings.Contains(err.Error(), "analysis found 2 issue(s)") {
		t.Fatalf("unexpected analyze error: %v", err)
	}
	if !strings.Contains(out, ":1:1: jump target 9 is out of range (1-3)") {
		t.Fatalf("expected range warning, got %q", out)
	}
	if !strings.Contains(out, ":3:1: unreachable statement") {
		t.Fatalf("expected unreachable warning, got %q", out)
	}
}

func TestAnalyzeProgramWarnings(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"clean loop", "n be 1\nrun from 1 to 1 if n is 0", nil},
		{"blank target", "run at 2\n\nwrite 1", []string{"1:1 jump target 2 is a blank line"}},
		{"guarded jump checked", "write 1 if no\nrun at 0 if no", []string{"2:1 jump target 0 is out of range (1-2)"}},
		{"reversed range", "run from 2 to 1\nwrite 1", []string{"1:1 jump range 2 to 1 is reversed"}},
		{"range endpoints", "run from 0 to 7", []string{
			"1:1 jump target 0 is out of range (1-1)",
			"1:1 jump target 7 is out of range (1-1)",
		}},
		{"targeted after end", "run at 4\nend\nwrite 1\nwrite 2\n\ncom note", []string{"3:1 unreachable statement"}},
		{"range reaches past end", "run from 3 to 4\nend\nwrite 1\nwrite 2", nil},
		{"conditional end", "end if yes\nwrite 1", nil},
		{"computed jumps disable reachability", "t be 3\nrun at t\nend\nwrite 1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := goof.NewEngine(goof.Config{}).Compile(tt.source)
			if err != nil {
				t.Fatalf("compile failed: %v", err)
			}
			warnings := analyzeProgramWarnings(program.Statements())
			got := make([]string, len(warnings))
			for i, w := range warnings {
				got[i] = fmt.Sprintf("%d:%d %s", w.Pos.Line, w.Pos.Column, w.Message)
			}
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Fatalf("warnings mismatch:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(tt.want, "\n"))
			}
		})
	}
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.goof")
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
