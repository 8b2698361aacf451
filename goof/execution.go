package goof

import (
	"context"
	"errors"
	"fmt"
)

// Execution is the state of one run: the environment, the console and the
// nesting depth of run statements. The program itself is shared read-only.
type Execution struct {
	program        *Program
	ctx            context.Context
	console        Console
	env            *Env
	depth          int
	recursionLimit int
	steps          int
	quota          int
}

func (exec *Execution) finish(last Value, err error) (Value, error) {
	if errors.Is(err, errEnd) {
		return last, nil
	}
	if err != nil {
		return NewNothing(), err
	}
	return last, nil
}

// runStatements executes stmts in order and returns the value of the last
// one. An end statement surfaces as errEnd together with the last value seen.
func (exec *Execution) runStatements(stmts []Statement) (Value, error) {
	last := NewNothing()
	for _, stmt := range stmts {
		val, err := exec.execStatement(stmt)
		if err != nil {
			return last, err
		}
		last = val
	}
	return last, nil
}

func (exec *Execution) execStatement(stmt Statement) (Value, error) {
	if err := exec.step(stmt.Pos()); err != nil {
		return NewNothing(), err
	}

	switch s := stmt.(type) {
	case *ExprStmt:
		return exec.evalExpression(s.Expr)
	case *AssignStmt:
		val, err := exec.evalExpression(s.Value)
		if err != nil {
			return NewNothing(), err
		}
		exec.env.Set(s.Name.Name, val)
		return val, nil
	case *WriteStmt:
		val, err := exec.evalExpression(s.Value)
		if err != nil {
			return NewNothing(), err
		}
		if err := exec.console.WriteLine(val.String()); err != nil {
			return NewNothing(), &IOError{Err: err}
		}
		return NewNothing(), nil
	case *RunLineStmt:
		return exec.runLine(s)
	case *RunRangeStmt:
		return exec.runRange(s)
	case *GuardStmt:
		cond, err := exec.evalExpression(s.Condition)
		if err != nil {
			return NewNothing(), err
		}
		if !cond.ToChoice().Choice() {
			return NewNothing(), nil
		}
		return exec.execStatement(s.Body)
	case *BlankStmt:
		return NewNothing(), nil
	case *EndStmt:
		return NewNothing(), errEnd
	default:
		return NewNothing(), exec.errorAt(stmt.Pos(), "unsupported statement %T", stmt)
	}
}

// runLine executes exactly one line and then returns to the caller, which
// continues after the run statement.
func (exec *Execution) runLine(s *RunLineStmt) (Value, error) {
	target, err := exec.evalExpression(s.Line)
	if err != nil {
		return NewNothing(), err
	}
	n, ok := exec.lineIndex(target)
	if !ok {
		return NewNothing(), exec.errorAt(s.Pos(), "invalid line number")
	}
	if err := exec.enter(s.Pos()); err != nil {
		return NewNothing(), err
	}
	defer exec.leave()
	return exec.execStatement(exec.program.statements[n-1])
}

func (exec *Execution) runRange(s *RunRangeStmt) (Value, error) {
	fromVal, err := exec.evalExpression(s.From)
	if err != nil {
		return NewNothing(), err
	}
	toVal, err := exec.evalExpression(s.To)
	if err != nil {
		return NewNothing(), err
	}
	from, okFrom := exec.lineIndex(fromVal)
	to, okTo := exec.lineIndex(toVal)
	if !okFrom || !okTo || from > to {
		return NewNothing(), exec.errorAt(s.Pos(), "invalid line range")
	}
	if err := exec.enter(s.Pos()); err != nil {
		return NewNothing(), err
	}
	defer exec.leave()
	return exec.runStatements(exec.program.statements[from-1 : to])
}

// lineIndex accepts only ints naming an existing line.
func (exec *Execution) lineIndex(v Value) (int, bool) {
	if v.Kind() != KindInt {
		return 0, false
	}
	n := v.Int()
	if n < 1 || n > int64(len(exec.program.statements)) {
		return 0, false
	}
	return int(n), true
}

func (exec *Execution) enter(pos Position) error {
	if exec.depth >= exec.recursionLimit {
		return exec.errorAt(pos, "%s (%d)", errRecursionLimit, exec.recursionLimit)
	}
	exec.depth++
	return nil
}

func (exec *Execution) leave() {
	exec.depth--
}

func (exec *Execution) step(pos Position) error {
	exec.steps++
	if exec.quota > 0 && exec.steps > exec.quota {
		return exec.errorAt(pos, "%s (%d)", errStepQuota, exec.quota)
	}
	select {
	case <-exec.ctx.Done():
		return exec.ctx.Err()
	default:
	}
	return nil
}

func (exec *Execution) errorAt(pos Position, format string, args ...any) error {
	return &RuntimeError{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
		Line:    exec.program.source.LineText(pos.Line),
	}
}
