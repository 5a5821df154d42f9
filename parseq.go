package parseq

// --- Sequences -------------------------------------------------------------

// Sequence is the capability every parsable input type has to provide:
// splitting off its first part. It is a constraint interface, implemented
// once per concrete sequence type (see package seq for ready-made ones), so
// supporting a new kind of input never requires touching existing code.
//
// SplitFirst reports ok == false if and only if the sequence is empty; part
// and rest are then meaningless. Otherwise part and rest together are an
// exhaustive, non-overlapping decomposition of the receiver: rest is
// everything except part, not a lookahead. Implementations must never mutate
// the receiver; the same sequence value may be split any number of times and
// always yields the same decomposition. Structural sharing between a sequence
// and its remainders is fine, observable mutation is not.
type Sequence[S, P any] interface {
	SplitFirst() (part P, rest S, ok bool)
}

// --- Parsers ---------------------------------------------------------------

// Parser is the shape of every parser over this algebra: a pure function
// from a sequence value to an outcome. T is the parsed output type, S the
// sequence type, E the caller-defined fatal-error payload.
//
// Parsers do not share state. Independent parse attempts over independent
// sequence values are safe to run concurrently.
type Parser[T, S, E any] func(S) Outcome[T, S, E]
