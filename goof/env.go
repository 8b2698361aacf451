package goof

import (
	"maps"
	"slices"
)

// Env is the single flat namespace of a run.
type Env struct {
	values map[string]Value
}

func NewEnv() *Env {
	return &Env{values: make(map[string]Value)}
}

func (e *Env) Get(name string) (Value, bool) {
	val, ok := e.values[name]
	return val, ok
}

// Set overwrites unconditionally; there is no declaration step.
func (e *Env) Set(name string, val Value) {
	e.values[name] = val
}

func (e *Env) Len() int {
	return len(e.values)
}

// Names returns the bound names in sorted order.
func (e *Env) Names() []string {
	return slices.Sorted(maps.Keys(e.values))
}
