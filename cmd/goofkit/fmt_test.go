package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFmtCommandRequiresPath(t *testing.T) {
	err := fmtCommand(nil)
	if err == nil {
		t.Fatalf("expected path required error")
	}
	if !strings.Contains(err.Error(), "path required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFmtCommandCheckDetectsUnformattedFiles(t *testing.T) {
	path := writeSourceFile(t, "x be 1  \r\nwrite x\t ")
	err := fmtCommand([]string{"-check", path})
	if err == nil {
		t.Fatalf("expected formatting check failure")
	}
	if !strings.Contains(err.Error(), "need formatting") {
		t.Fatalf("unexpected check error: %v", err)
	}
}

func TestFmtCommandWriteFormatsFileInPlace(t *testing.T) {
	path := writeSourceFile(t, "x be 1  \r\nwrite x\t ")
	if err := fmtCommand([]string{"-w", path}); err != nil {
		t.Fatalf("fmt -w failed: %v", err)
	}

	updated, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read formatted file: %v", err)
	}
	if got := string(updated); got != "x be 1\nwrite x\n" {
		t.Fatalf("unexpected formatted output: %q", got)
	}
}

func TestFmtCommandPrintsFormattedOutput(t *testing.T) {
	path := writeSourceFile(t, "write 1 \nwrite 2")
	out, err := captureStdout(t, func() error {
		return fmtCommand([]string{path})
	})
	if err != nil {
		t.Fatalf("fmt command failed: %v", err)
	}
	if out != "write 1\nwrite 2\n" {
		t.Fatalf("unexpected stdout output: %q", out)
	}
}

func TestFmtCommandListsChangedFiles(t *testing.T) {
	dir := t.TempDir()
	clean := filepath.Join(dir, "clean.goof")
	dirty := filepath.Join(dir, "dirty.goof")
	if err := os.WriteFile(clean, []byte("write 1\n"), 0o644); err != nil {
		t.Fatalf("write clean file: %v", err)
	}
	if err := os.WriteFile(dirty, []byte("write 2 \n"), 0o644); err != nil {
		t.Fatalf("write dirty file: %v", err)
	}

	out, err := captureStdout(t, func() error {
		return fmtCommand([]string{"-l", dir})
	})
	if err != nil {
		t.Fatalf("fmt -l failed: %v", err)
	}
	want, _ := filepath.Abs(dirty)
	if out != want+"\n" {
		t.Fatalf("unexpected listing %q", out)
	}
}

func TestFormatSourceKeepsBlankLines(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"write 1", "write 1\n"},
		{"write 1\n\n\n", "write 1\n\n\n"},
		{"run at 3\n  \nwrite 2\n", "run at 3\n\nwrite 2\n"},
		{"write \"a \"  ", "write \"a \"\n"},
	}
	for _, tt := range tests {
		if got := formatSource(tt.input); got != tt.want {
			t.Fatalf("formatSource(%q): got %q want %q", tt.input, got, tt.want)
		}
	}
}

func TestFmtCommandFormatsDirectories(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "a.goof")
	second := filepath.Join(root, "nested", "b.goof")
	ignored := filepath.Join(root, "notes.txt")
	if err := os.MkdirAll(filepath.Dir(second), 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}
	if err := os.WriteFile(first, []byte("write 1  \nend"), 0o644); err != nil {
		t.Fatalf("write first file: %v", err)
	}
	if err := os.WriteFile(second, []byte("write 2\t\r\n"), 0o644); err != nil {
		t.Fatalf("write second file: %v", err)
	}
	if err := os.WriteFile(ignored, []byte("left  alone  "), 0o644); err != nil {
		t.Fatalf("write ignored file: %v", err)
	}

	if err := fmtCommand([]string{"-w", root}); err != nil {
		t.Fatalf("fmt directory failed: %v", err)
	}
	if err := fmtCommand([]string{"-check", root}); err != nil {
		t.Fatalf("expected no formatting diffs after write, got %v", err)
	}
	untouched, err := os.ReadFile(ignored)
	if err != nil {
		t.Fatalf("read ignored file: %v", err)
	}
	if string(untouched) != "left  alone  " {
		t.Fatalf("non-source file was modified: %q", untouched)
	}
}

func writeSourceFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.goof")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source file: %v", err)
	}
	return path
}
