package seq

import (
	"fmt"

	"github.com/npillmayer/parseq"
)

// Position is a 1-based line/column location in character input.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Line, p.Col)
}

// Positioned wraps any rune sequence and tracks the position of the next
// unconsumed character, for grammars that want to report source locations in
// their diagnostics. Apart from the bookkeeping it behaves exactly like the
// wrapped sequence.
//
// The part returned by a split is located at the wrapper's pre-split
// position; the remainder carries the advanced one.
type Positioned[S parseq.Sequence[S, rune]] struct {
	Src S
	Pos Position
}

var _ parseq.Sequence[Positioned[Chars], rune] = Positioned[Chars]{}

// Track wraps src into a position-tracking sequence starting at line 1,
// column 1.
func Track[S parseq.Sequence[S, rune]](src S) Positioned[S] {
	return Positioned[S]{Src: src, Pos: Position{Line: 1, Col: 1}}
}

// TrackString is Track for plain strings.
func TrackString(s string) Positioned[Chars] {
	return Track(Chars(s))
}

// SplitFirst delegates to the wrapped sequence and advances the position:
// consuming a line break moves to the start of the next line, consuming
// anything else moves one column to the right.
func (p Positioned[S]) SplitFirst() (rune, Positioned[S], bool) {
	c, rest, ok := p.Src.SplitFirst()
	if !ok {
		return 0, p, false
	}
	pos := p.Pos
	if c == '\n' {
		pos.Line++
		pos.Col = 1
	} else {
		pos.Col++
	}
	return c, Positioned[S]{Src: rest, Pos: pos}, true
}
