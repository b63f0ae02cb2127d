// Package vela is the public facade over the expression-evaluator core:
// a single long-lived Context that tokenizes, parses and evaluates one
// line of input at a time, exposing the ans-rebinding REPL contract spec
// §6 describes. cmd/vela wraps this in an interactive host; callers
// embedding the language elsewhere only need this file.
package vela

import (
	"log"

	"github.com/velalang/vela/internal/builtins"
	"github.com/velalang/vela/internal/eval"
	"github.com/velalang/vela/internal/values"
)

// Session wraps one evaluator Context.
type Session struct {
	ctx *eval.Context
}

// New creates a Session with its own Environment, logging debug trace
// lines to logger (nil uses the standard logger writing to stderr).
func New(logger *log.Logger) *Session {
	return &Session{ctx: eval.New(logger)}
}

// Init (re)installs ans/e/pi and the full builtin registry, discarding
// any other bindings. Call once before the first Exec, and again to
// implement a `!init` / "reset environment" host command.
func (s *Session) Init() {
	s.ctx.Init(func(env *eval.Environment) {
		builtins.Install(env)
	})
}

// Exec evaluates one line of input against the session's environment.
func (s *Session) Exec(input string) (values.Value, error) {
	return s.ctx.Exec(input)
}

// Environment returns a snapshot copy of every currently bound identifier
// as a map, so it has no order; use Names for the sorted identifiers. The
// `!list` host command uses both.
func (s *Session) Environment() map[string]values.Value {
	return s.ctx.Env.Snapshot()
}

// Names returns every currently bound identifier, sorted.
func (s *Session) Names() []string {
	return s.ctx.Env.Names()
}
