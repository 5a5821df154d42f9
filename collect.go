package parseq

import "fmt"

// Collected is the result of repeated parser application. Unlike Outcome it
// has only two states — matched and fatal — because zero repetitions is
// itself a valid, successful parse; there is nothing to recover from.
type Collected[C, S, E any] struct {
	collection C
	rest       S
	fatality   E
	fatal      bool
}

// Matched deconstructs a successful repetition: the accumulated collection
// and the remainder behind the last successful match.
func (c Collected[C, S, E]) Matched() (collection C, rest S, ok bool) {
	return c.collection, c.rest, !c.fatal
}

// Fatal deconstructs an aborted repetition.
func (c Collected[C, S, E]) Fatal() (err E, ok bool) {
	return c.fatality, c.fatal
}

func (c Collected[C, S, E]) String() string {
	if c.fatal {
		return fmt.Sprintf("Fatal(%v)", c.fatality)
	}
	return fmt.Sprintf("Matched(%v)", c.collection)
}

// FoldRepeating applies parser to input over and over, folding every matched
// output into collection with extend, and moving on to the match's remainder.
// The loop ends in one of two ways:
//
//   ▪ parser yields no-match: the repetition succeeds with the collection
//     folded so far and the sequence as it was *before* the failing attempt —
//     the attempt consumed nothing observable. In particular, a no-match on
//     the very first attempt succeeds with collection and input unchanged.
//
//   ▪ parser yields a fatal error: the repetition aborts with that error and
//     the collection is discarded. Fatality always wins over partial progress.
//
// Contract (not checked at runtime): parser must consume at least one part of
// the sequence whenever it matches, or return no-match. A parser that matches
// without shrinking its input loops forever.
func FoldRepeating[C, T, S, E any](collection C, input S, parser Parser[T, S, E], extend func(C, T) C) Collected[C, S, E] {
	rest := input
	count := 0
	for {
		o := parser(rest)
		if err, isFatal := o.Fatal(); isFatal {
			tracer().Debugf("repetition aborted by fatal error, dropping %d item(s)", count)
			return Collected[C, S, E]{fatality: err, fatal: true}
		}
		item, r, ok := o.Matched()
		if !ok {
			return Collected[C, S, E]{collection: collection, rest: rest}
		}
		collection = extend(collection, item)
		rest = r
		count++
	}
}

// CollectRepeating is FoldRepeating for the common case of collecting matched
// outputs into a slice.
func CollectRepeating[T, S, E any](collection []T, input S, parser Parser[T, S, E]) Collected[[]T, S, E] {
	return FoldRepeating(collection, input, parser, func(c []T, item T) []T {
		return append(c, item)
	})
}

// Normalize converts a repetition result into an ordinary outcome, so that it
// can be chained with Then, Map and Or like any other parse result.
func Normalize[C, S, E any](c Collected[C, S, E]) Outcome[C, S, E] {
	if c.fatal {
		return FatalError[C, S](c.fatality)
	}
	return Match[E](c.collection, c.rest)
}
