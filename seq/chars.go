package seq

import (
	"unicode/utf8"

	"github.com/npillmayer/parseq"
)

// Chars is a plain Go string viewed as a sequence of runes. It is the
// canonical character sequence for parsing text input.
type Chars string

var _ parseq.Sequence[Chars, rune] = Chars("")

// SplitFirst decodes the first rune and returns it together with the
// remaining characters. Invalid UTF-8 yields utf8.RuneError for one byte,
// like ranging over a string does.
func (s Chars) SplitFirst() (rune, Chars, bool) {
	if len(s) == 0 {
		return 0, s, false
	}
	r, size := utf8.DecodeRuneInString(string(s))
	return r, s[size:], true
}
