package lexmach

import "fmt"

// Span locates a token's lexeme in the scanned input: a start position and
// the position just behind the end.
type Span [2]uint64

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// Token is one scanned input token: a token class (application-defined, the
// id handed to MakeToken), the lexeme as it appeared in the input, and its
// span.
type Token struct {
	kind   int
	lexeme string
	span   Span
}

// TokType returns the token class id.
func (t Token) TokType() int {
	return t.kind
}

// Lexeme returns the matched input text.
func (t Token) Lexeme() string {
	return t.lexeme
}

// Span returns the location of the lexeme in the input.
func (t Token) Span() Span {
	return t.span
}

func (t Token) String() string {
	return fmt.Sprintf("[%d|%q]%v", t.kind, t.lexeme, t.span)
}
