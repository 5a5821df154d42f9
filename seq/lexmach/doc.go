/*
Package lexmach adapts lexmachine lexers to the parseq algebra.

lexmachine scanners are stateful: every call to Next advances an internal
cursor. Sequences in parseq are immutable values, so the adapter runs a
scanner over the complete input up front and hands out the result as a
splittable, freely re-parsable token sequence. The package defines no token
classes of its own — callers bring their own lexer rules and token ids.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'parseq.lexmach'.
func tracer() tracing.Trace {
	return tracing.Select("parseq.lexmach")
}
