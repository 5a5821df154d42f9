/*
Package prepl/main provides a small interactive command line tool (P.REPL)
for playing with parseq combinators. Every input line is run through a
combinator-built lexeme splitter and the recognized lexemes are printed with
their line/column positions. P.REPL is a usage demo, not a tokenizer: the
splitter is client code sitting on top of the algebra, deliberately kept
tiny.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'parseq.prepl'.
func tracer() tracing.Trace {
	return tracing.Select("parseq.prepl")
}
