package parseq

// The two primitive parsers. Everything else in this algebra is composition.

// ReadOne parses exactly one part off the front of input. An empty sequence
// yields no-match, anything else yields the first part and the remainder.
//
// The error-payload and part types cannot be inferred from the argument, so
// call sites instantiate them explicitly, e.g.
//
//    parseq.ReadOne[myError, rune](input)
//
func ReadOne[E, P any, S Sequence[S, P]](input S) Outcome[P, S, E] {
	part, rest, ok := input.SplitFirst()
	if !ok {
		return NoMatch[P, S, E]()
	}
	return Match[E](part, rest)
}

// ReadMatching parses one part off the front of input, but only if pred
// accepts it. A rejected part is discarded together with the split: from the
// caller's point of view nothing has been consumed, the original sequence
// value is still intact for the next attempt.
func ReadMatching[E, P any, S Sequence[S, P]](input S, pred func(P) bool) Outcome[P, S, E] {
	return Then(ReadOne[E, P, S](input), func(part P, rest S) Outcome[P, S, E] {
		if pred(part) {
			return Match[E](part, rest)
		}
		return NoMatch[P, S, E]()
	})
}

// --- Part iteration --------------------------------------------------------

// PartsIter walks the parts of a sequence front to back, outside of any
// parser. It is a plain pull iterator.
type PartsIter[S Sequence[S, P], P any] struct {
	rest S
}

// Parts returns an iterator over all parts of input.
func Parts[P any, S Sequence[S, P]](input S) *PartsIter[S, P] {
	return &PartsIter[S, P]{rest: input}
}

// Next returns the next part, or ok == false when the sequence is exhausted.
func (it *PartsIter[S, P]) Next() (part P, ok bool) {
	part, rest, ok := it.rest.SplitFirst()
	if !ok {
		return part, false
	}
	it.rest = rest
	return part, true
}

// Rest returns the not yet iterated remainder.
func (it *PartsIter[S, P]) Rest() S {
	return it.rest
}
