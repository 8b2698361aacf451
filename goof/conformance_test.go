package goof

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type conformanceCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Stdin  string `yaml:"stdin"`
	Stdout string `yaml:"stdout"`
	Error  string `yaml:"error"`
}

func loadConformanceCases(t *testing.T) []conformanceCase {
	t.Helper()
	data, err := os.ReadFile("testdata/conformance.yaml")
	if err != nil {
		t.Fatalf("read fixtures: %v", err)
	}
	var cases []conformanceCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("decode fixtures: %v", err)
	}
	if len(cases) == 0 {
		t.Fatalf("no conformance cases found")
	}
	return cases
}

func TestConformance(t *testing.T) {
	for _, tc := range loadConformanceCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			var out bytes.Buffer
			engine := NewEngine(Config{Stdin: strings.NewReader(tc.Stdin), Stdout: &out})
			prog, err := engine.Compile(tc.Source)
			if err == nil {
				_, err = prog.Run(context.Background(), RunOptions{})
			}

			if tc.Error == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Fatalf("expected error %q", tc.Error)
				}
				headline, _, _ := strings.Cut(err.Error(), "\n")
				if headline != tc.Error {
					t.Fatalf("error mismatch: got %q want %q", headline, tc.Error)
				}
			}
			if out.String() != tc.Stdout {
				t.Fatalf("stdout mismatch: got %q want %q", out.String(), tc.Stdout)
			}
		})
	}
}
