// Package grammar implements a combinator library for describing small,
// regular command languages and deriving three views from a single
// specification: a runnable parser, a human-readable production listing, and
// a deterministic finite automaton usable as a validity oracle over partial
// input.
//
// A caller builds a Parser[T] out of the combinators in this package (Lit,
// Map, Gives, Join, Then, Many0, Many1, Optional, Choose). The same tree is
// then usable three ways: Parse/ParseComplete run it against concrete input,
// Describe renders it as a grammar listing, and Compile lowers it to a DFA.
package grammar

import "fmt"

// Result is the three-valued verdict every parse produces.
type Result int

const (
	// Ok means a prefix of the input was consumed and a value was produced.
	Ok Result = iota
	// Incomplete means the input is a strict prefix of some string the
	// parser would accept; more input could still lead to a match.
	Incomplete
	// Wrong means no extension of the input can be accepted by the parser.
	Wrong
)

func (r Result) String() string {
	switch r {
	case Ok:
		return "Ok"
	case Incomplete:
		return "Incomplete"
	case Wrong:
		return "Wrong"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// ParseError is returned by Parse/ParseComplete when the verdict is not Ok. It
// is always either Incomplete or Wrong; a ParseError is never returned for a
// successful parse.
type ParseError struct {
	Verdict Result
}

func (e *ParseError) Error() string {
	switch e.Verdict {
	case Incomplete:
		return "incomplete: input could still be extended to a valid command"
	case Wrong:
		return "wrong: no extension of this input can be a valid command"
	default:
		return "invalid parse verdict"
	}
}

var errIncomplete = &ParseError{Verdict: Incomplete}
var errWrong = &ParseError{Verdict: Wrong}

// verdictOf converts a non-Ok ParseError into its Result, panicking if err is
// nil or not a *ParseError; internal helper for combinators that only ever
// see errors produced by this package.
func verdictOf(err error) Result {
	pe, ok := err.(*ParseError)
	if !ok {
		panic(fmt.Sprintf("grammar: internal error, non-ParseError escaped: %v", err))
	}
	return pe.Verdict
}

// Unit is the value produced by a parser that matches only the empty phrase.
type Unit struct{}

// Maybe is the value produced by Optional; it distinguishes "matched and
// produced a zero value" from "did not match".
type Maybe[T any] struct {
	Present bool
	Value   T
}
