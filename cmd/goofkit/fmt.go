package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const sourceExt = ".goof"

// fmtMode says what to do with a file whose formatting changed.
type fmtMode int

const (
	fmtPrint fmtMode = iota
	fmtWrite
	fmtList
	fmtCheck
)

func fmtCommand(args []string) error {
	flags := flag.NewFlagSet("fmt", flag.ContinueOnError)
	flags.SetOutput(new(flagErrorSink))
	write := flags.Bool("w", false, "write result to source files instead of stdout")
	list := flags.Bool("l", false, "list files whose formatting differs")
	check := flags.Bool("check", false, "fail if any source file needs formatting")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		return errors.New("goofkit fmt: path required")
	}

	mode := fmtPrint
	switch {
	case *check:
		mode = fmtCheck
	case *write:
		mode = fmtWrite
	case *list:
		mode = fmtList
	}

	files, err := collectSourceFiles(flags.Args())
	if err != nil {
		return err
	}
	dirty := 0
	for _, path := range files {
		changed, err := formatFile(path, mode, os.Stdout)
		if err != nil {
			return err
		}
		if changed {
			dirty++
		}
	}
	if mode == fmtCheck && dirty > 0 {
		return fmt.Errorf("goofkit fmt: %d file(s) need formatting", dirty)
	}
	return nil
}

func formatFile(path string, mode fmtMode, out io.Writer) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	formatted := formatSource(string(src))
	changed := formatted != string(src)

	switch {
	case mode == fmtPrint:
		_, err = io.WriteString(out, formatted)
	case mode == fmtList && changed:
		_, err = fmt.Fprintln(out, path)
	case mode == fmtWrite && changed:
		var info fs.FileInfo
		if info, err = os.Stat(path); err == nil {
			err = os.WriteFile(path, []byte(formatted), info.Mode().Perm())
		}
		if err != nil {
			err = fmt.Errorf("write %s: %w", path, err)
		}
	}
	return changed, err
}

// collectSourceFiles expands directories and returns the absolute, sorted,
// de-duplicated set of source files among targets.
func collectSourceFiles(targets []string) ([]string, error) {
	var files []string
	keep := func(path string) error {
		if filepath.Ext(path) != sourceExt {
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		files = append(files, abs)
		return nil
	}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", target, err)
		}
		if !info.IsDir() {
			if err := keep(target); err != nil {
				return nil, err
			}
			continue
		}
		walkErr := filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			return keep(path)
		})
		if walkErr != nil {
			return nil, fmt.Errorf("walk %s: %w", target, walkErr)
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

// formatSource normalizes line endings and trailing blanks. It never adds
// or removes a line, so line numbers stay valid.
func formatSource(source string) string {
	if source == "" {
		return ""
	}
	body := strings.TrimSuffix(strings.ReplaceAll(source, "\r\n", "\n"), "\n")

	var b strings.Builder
	b.Grow(len(body) + 1)
	for line := range strings.SplitSeq(body, "\n") {
		b.WriteString(strings.TrimRight(line, " \t"))
		b.WriteByte('\n')
	}
	return b.String()
}
