package parseq

import "fmt"

// Outcome is the result of applying a parser once. It is a closed union with
// exactly three states:
//
//   ▪ matched:  a T has been parsed, together with the unconsumed remainder
//   ▪ no-match: the parser is not applicable here; recoverable, carries nothing
//   ▪ fatal:    parsing cannot continue at all; carries a caller-defined E
//
// Exactly one state is active at a time. The zero value is no-match.
//
// Fatality is absorbing: no combinator in this package turns a fatal outcome
// into anything else. That distinction is the whole point of having both
// no-match and fatal — alternation (Or) recovers from the former and
// deliberately not from the latter.
//
// An outcome is meant to be consumed exactly once, by the combinator or
// accessor inspecting it; combinators return fresh outcomes.
type Outcome[T, S, E any] struct {
	state    state
	output   T
	rest     S
	fatality E
}

type state int8

const (
	noMatch state = iota
	matched
	fatal
)

// Match creates a matched outcome carrying a parsed output and the unconsumed
// remainder of the input. The error-payload type E cannot be inferred from
// the arguments and is given explicitly:
//
//    parseq.Match[myError]('a', rest)
//
func Match[E, T, S any](output T, rest S) Outcome[T, S, E] {
	return Outcome[T, S, E]{state: matched, output: output, rest: rest}
}

// NoMatch creates a recoverable "parser does not apply" outcome.
func NoMatch[T, S, E any]() Outcome[T, S, E] {
	return Outcome[T, S, E]{}
}

// FatalError creates an unrecoverable outcome carrying err.
func FatalError[T, S any, E any](err E) Outcome[T, S, E] {
	return Outcome[T, S, E]{state: fatal, fatality: err}
}

// Matched deconstructs a matched outcome. For no-match and fatal outcomes it
// reports false and output/rest are zero values.
func (o Outcome[T, S, E]) Matched() (output T, rest S, ok bool) {
	return o.output, o.rest, o.state == matched
}

// IsNoMatch reports whether the outcome is the recoverable no-match state.
func (o Outcome[T, S, E]) IsNoMatch() bool {
	return o.state == noMatch
}

// Fatal deconstructs a fatal outcome. For matched and no-match outcomes it
// reports false.
func (o Outcome[T, S, E]) Fatal() (err E, ok bool) {
	return o.fatality, o.state == fatal
}

func (o Outcome[T, S, E]) String() string {
	switch o.state {
	case matched:
		return fmt.Sprintf("Matched(%v)", o.output)
	case fatal:
		return fmt.Sprintf("Fatal(%v)", o.fatality)
	}
	return "NoMatch"
}

// Or is alternation: for a no-match outcome it returns alt(), otherwise it
// returns the outcome unchanged and alt is never evaluated. alt is a thunk
// so that the alternative parse only runs when it is actually needed.
//
// A fatal outcome passes through Or untouched; there is no way to fall back
// from a fatal error.
func (o Outcome[T, S, E]) Or(alt func() Outcome[T, S, E]) Outcome[T, S, E] {
	if o.state == noMatch {
		return alt()
	}
	return o
}

// Then is sequential composition: for a matched outcome it returns
// f(output, rest), letting f continue parsing on the remainder, possibly with
// a different output type. For no-match and fatal outcomes f is never invoked
// and the state passes through unchanged.
func Then[U, T, S, E any](o Outcome[T, S, E], f func(T, S) Outcome[U, S, E]) Outcome[U, S, E] {
	switch o.state {
	case matched:
		return f(o.output, o.rest)
	case fatal:
		return FatalError[U, S](o.fatality)
	}
	return NoMatch[U, S, E]()
}

// Map transforms the output of a matched outcome with f, keeping the
// remainder. f is invoked exactly zero or one times — never for no-match or
// fatal outcomes, which pass through unchanged.
func Map[U, T, S, E any](o Outcome[T, S, E], f func(T) U) Outcome[U, S, E] {
	switch o.state {
	case matched:
		return Match[E](f(o.output), o.rest)
	case fatal:
		return FatalError[U, S](o.fatality)
	}
	return NoMatch[U, S, E]()
}

// FromError bridges conventional Go call results into the algebra: a nil err
// becomes a matched outcome, anything else becomes fatal with payload type
// error. Useful when a parsing step delegates to code that reports failure
// the usual way.
func FromError[T, S any](output T, rest S, err error) Outcome[T, S, error] {
	if err != nil {
		return FatalError[T, S](err)
	}
	return Match[error](output, rest)
}
