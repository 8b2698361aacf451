package main

import (
	"fmt"
	"sort"

	"github.com/mgomes/goofscript/goof"
)

type lintWarning struct {
	Pos     goof.Position
	Message string
}

func analyzeCommand(args []string) error {
	path, program, err := compileProgramArg("analyze", args)
	if err != nil {
		return fmt.Errorf("analysis %w", err)
	}

	warnings := analyzeProgramWarnings(program.Statements())
	if len(warnings) == 0 {
		fmt.Println("No issues found")
		return nil
	}

	for _, warning := range warnings {
		line := max(warning.Pos.Line, 1)
		column := max(warning.Pos.Column, 1)
		fmt.Printf("%s:%d:%d: %s\n", path, line, column, warning.Message)
	}
	return fmt.Errorf("analysis found %d issue(s)", len(warnings))
}

// analyzeProgramWarnings checks jumps whose targets are integer literals
// and, when every jump is literal, lines that nothing can reach.
func analyzeProgramWarnings(statements []goof.Statement) []lintWarning {
	warnings := make([]lintWarning, 0)
	targeted := make(map[int]bool)
	computed := false

	for _, stmt := range statements {
		switch jump := unguarded(stmt).(type) {
		case *goof.RunLineStmt:
			n, ok := literalLine(jump.Line)
			if !ok {
				computed = true
				continue
			}
			if !lintTarget(statements, jump.Pos(), n, &warnings) {
				continue
			}
			if _, blank := statements[n-1].(*goof.BlankStmt); blank {
				warnings = append(warnings, lintWarning{
					Pos:     jump.Pos(),
					Message: fmt.Sprintf("jump target %d is a blank line", n),
				})
			}
			targeted[n] = true
		case *goof.RunRangeStmt:
			from, okFrom := literalLine(jump.From)
			to, okTo := literalLine(jump.To)
			if !okFrom || !okTo {
				computed = true
				continue
			}
			inRange := lintTarget(statements, jump.Pos(), from, &warnings)
			inRange = lintTarget(statements, jump.Pos(), to, &warnings) && inRange
			if !inRange {
				continue
			}
			if from > to {
				warnings = append(warnings, lintWarning{
					Pos:     jump.Pos(),
					Message: fmt.Sprintf("jump range %d to %d is reversed", from, to),
				})
				continue
			}
			for n := from; n <= to; n++ {
				targeted[n] = true
			}
		}
	}

	if !computed {
		lintUnreachable(statements, targeted, &warnings)
	}

	sort.SliceStable(warnings, func(i, j int) bool {
		if warnings[i].Pos.Line != warnings[j].Pos.Line {
			return warnings[i].Pos.Line < warnings[j].Pos.Line
		}
		return warnings[i].Pos.Column < warnings[j].Pos.Column
	})
	return warnings
}

// lintUnreachable flags statements after an unconditional end that no
// literal jump lands on.
func lintUnreachable(statements []goof.Statement, targeted map[int]bool, warnings *[]lintWarning) {
	terminated := false
	for i, stmt := range statements {
		line := i + 1
		if terminated && !targeted[line] {
			if _, blank := stmt.(*goof.BlankStmt); !blank {
				*warnings = append(*warnings, lintWarning{
					Pos:     stmt.Pos(),
					Message: "unreachable statement",
				})
			}
			continue
		}
		if _, ok := stmt.(*goof.EndStmt); ok {
			terminated = true
		}
	}
}

func lintTarget(statements []goof.Statement, pos goof.Position, n int, warnings *[]lintWarning) bool {
	if n >= 1 && n <= len(statements) {
		return true
	}
	*warnings = append(*warnings, lintWarning{
		Pos:     pos,
		Message: fmt.Sprintf("jump target %d is out of range (1-%d)", n, len(statements)),
	})
	return false
}

func unguarded(stmt goof.Statement) goof.Statement {
	if guard, ok := stmt.(*goof.GuardStmt); ok {
		return guard.Body
	}
	return stmt
}

func literalLine(expr goof.Expression) (int, bool) {
	lit, ok := expr.(*goof.IntegerLiteral)
	if !ok {
		return 0, false
	}
	return int(lit.Value), true
}
