package goof

import (
	"context"
	"io"
	"os"
)

const defaultRecursionLimit = 100000

// Config controls execution bounds and the default console.
type Config struct {
	// Stdin and Stdout back the default console. They default to the
	// process streams.
	Stdin  io.Reader
	Stdout io.Writer
	// RecursionLimit caps how deeply run statements may nest.
	RecursionLimit int
	// StepQuota caps executed statements per run. Zero means unlimited.
	StepQuota int
}

// Engine compiles and runs goofscript programs.
type Engine struct {
	config  Config
	console Console
}

// NewEngine constructs an Engine, filling in defaults for unset fields.
func NewEngine(cfg Config) *Engine {
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.RecursionLimit <= 0 {
		cfg.RecursionLimit = defaultRecursionLimit
	}
	if cfg.StepQuota < 0 {
		cfg.StepQuota = 0
	}
	return &Engine{config: cfg, console: NewConsole(cfg.Stdin, cfg.Stdout)}
}

// Program is a compiled source file. Its statement slice is indexed by line
// number minus one and is never modified after Compile.
type Program struct {
	engine     *Engine
	source     *Source
	statements []Statement
}

// RunOptions customise a single run.
type RunOptions struct {
	// Env, when set, is used instead of a fresh environment so bindings
	// survive across runs.
	Env *Env
	// Console overrides the engine console.
	Console Console
}

// Compile lexes and parses source. Lexing finishes before parsing starts.
func (e *Engine) Compile(source string) (*Program, error) {
	src := NewSource([]byte(source))
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	statements, err := newParser(tokens, src).parseProgram()
	if err != nil {
		return nil, err
	}
	return &Program{engine: e, source: src, statements: statements}, nil
}

// Statements exposes the parsed program, one entry per line.
func (p *Program) Statements() []Statement {
	return p.statements
}

// Len reports the number of addressable lines.
func (p *Program) Len() int {
	return len(p.statements)
}

// LineText returns the original text of line n.
func (p *Program) LineText(n int) string {
	return p.source.LineText(n)
}

// Run executes every line in order. An end statement stops the run without
// error. The result is the value of the last statement executed at the top
// level.
func (p *Program) Run(ctx context.Context, opts RunOptions) (Value, error) {
	exec := p.newExecution(ctx, opts)
	return exec.finish(exec.runStatements(p.statements))
}

// RunLines executes lines from through to inclusive, with the same bounds
// rules as a run from statement.
func (p *Program) RunLines(ctx context.Context, from, to int, opts RunOptions) (Value, error) {
	exec := p.newExecution(ctx, opts)
	if from < 1 || from > to || to > len(p.statements) {
		return NewNothing(), exec.errorAt(Position{}, "invalid line range")
	}
	return exec.finish(exec.runStatements(p.statements[from-1 : to]))
}

func (p *Program) newExecution(ctx context.Context, opts RunOptions) *Execution {
	if ctx == nil {
		ctx = context.Background()
	}
	env := opts.Env
	if env == nil {
		env = NewEnv()
	}
	console := opts.Console
	if console == nil {
		console = p.engine.console
	}
	return &Execution{
		program:        p,
		ctx:            ctx,
		console:        console,
		env:            env,
		recursionLimit: p.engine.config.RecursionLimit,
		quota:          p.engine.config.StepQuota,
	}
}
