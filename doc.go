/*
Package parseq is a small algebra for recursive-descent parsing.

A parser in this algebra is any function from a sequence to an outcome:

    func(S) parseq.Outcome[T, S, E]

Sequences are immutable values which split off their first part; outcomes
are a closed three-state union (matched, no-match, fatal). Larger parsers
are built by chaining, mapping and falling back between smaller ones, and
by folding a parser repeatedly over a shrinking sequence. Package structure
is as follows:

■ the base package: the Sequence capability interface, the Outcome type with
its combinators, the two primitive parsers, and the repetition engine.

■ seq: concrete sequence implementations — character sequences, slice
sequences, a line/column tracking wrapper, and a view over gods containers.

■ seq/lexmach: an adapter turning lexmachine lexers into token sequences.

■ demo/prepl: an interactive sandbox for playing with combinator-built
parsers.

The algebra knows nothing about grammars; grammar authors supply their own
output and error-payload types and compose the primitives into whatever
parsing functions they need.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parseq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'parseq'.
func tracer() tracing.Trace {
	return tracing.Select("parseq")
}
