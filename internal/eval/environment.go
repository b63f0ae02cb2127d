package eval

import (
	"sort"

	"github.com/velalang/vela/internal/values"
)

// Environment is the process-wide, single flat mapping from identifier to
// Value described in spec §3. There are no nested frames: a user lambda
// call never pushes a new scope onto this environment, it only ever reads
// and writes the global one (spec §4.5/§9 — no closures over enclosing
// scope).
type Environment struct {
	vars map[string]values.Value
}

// NewEnvironment returns an empty Environment. Callers almost always want
// Context.Init instead, which also installs the builtin registry.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]values.Value)}
}

// Get looks up name, reporting whether it is bound.
func (e *Environment) Get(name string) (values.Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set binds name to v. v must never be values.Void (spec §3). Set does not
// check this itself; the evaluator's Assign case never passes Void because
// only the top-level assignment forms evaluate to Void, and an assignment
// cannot appear as an assignment's RHS (see evaluator.go).
func (e *Environment) Set(name string, v values.Value) {
	e.vars[name] = v
}

// Clear empties every binding, including builtins. Callers must
// reinstall the builtin registry afterward (Context.Init does this).
func (e *Environment) Clear() {
	e.vars = make(map[string]values.Value)
}

// Names returns every bound identifier, sorted, for deterministic
// enumeration (the `!list` host command relies on this through
// vela.Session.Names).
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a shallow copy of the current bindings.
func (e *Environment) Snapshot() map[string]values.Value {
	out := make(map[string]values.Value, len(e.vars))
	for k, v := range e.vars {
		out[k] = v
	}
	return out
}
