// Package command builds the voice-control command grammar from the
// grammar and vocab packages and drives a read-dispatch loop over it.
package command

import (
	"github.com/corvidae/voxctl/internal/grammar"
	"github.com/corvidae/voxctl/internal/vocab"
)

// Command is a single recognized voice command: its canonical name (used in
// logs and the HELP listing) and the Action it produces.
type Command struct {
	Name   string
	Action vocab.Action
}

// Registry is an immutable, compiled voice-control grammar: a Parser built
// from Choose over every registered command family, plus the Description
// and DFA views derived from the same tree.
type Registry struct {
	parser grammar.Parser[Command]
	dfa    *grammar.DFA
}

// NewRegistry builds the default Registry: dictation, control keys,
// navigation, modifiers held via "hold", and a few zero-argument verbs.
// It is the single source of truth from which Parse, Describe, and Check
// are all derived.
func NewRegistry() *Registry {
	p := grammarTop()
	return &Registry{
		parser: p,
		dfa:    p.Compile(),
	}
}

// Parse runs the registry's grammar to completion against input, a single
// already-tokenized (space-separated, lowercase) line of recognized speech
// or typed text.
func (r *Registry) Parse(input string) (Command, error) {
	return r.parser.ParseComplete(input)
}

// Describe renders the grammar as a named-production listing suitable for a
// HELP command.
func (r *Registry) Describe() grammar.Description {
	return r.parser.Describe()
}

// Check scores a candidate transcription prefix against the compiled DFA;
// see grammar.DFA.Check for the exact three-valued contract this fulfills
// for an external speech decoder.
func (r *Registry) Check(s string) (grammar.Result, error) {
	return r.dfa.Check(s)
}
