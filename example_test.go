package parseq_test

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/parseq"
	"github.com/npillmayer/parseq/seq"
)

// A tiny grammar-less error payload for the examples.
type failure string

func digit(input seq.Chars) parseq.Outcome[rune, seq.Chars, failure] {
	return parseq.ReadMatching[failure](input, unicode.IsDigit)
}

func ExampleCollectRepeating() {
	out := parseq.CollectRepeating([]rune{}, seq.Chars("123abc"), digit)
	digits, rest, _ := out.Matched()
	fmt.Printf("%s|%s\n", string(digits), rest)
	// Output: 123|abc
}

func ExampleThen() {
	// parse '1', then '2' on the remainder, and glue both together
	input := seq.Chars("12345")
	one := parseq.ReadMatching[failure](input, func(c rune) bool { return c == '1' })
	out := parseq.Then(one, func(c1 rune, rest seq.Chars) parseq.Outcome[string, seq.Chars, failure] {
		two := parseq.ReadMatching[failure](rest, func(c rune) bool { return c == '2' })
		return parseq.Map(two, func(c2 rune) string {
			return string([]rune{c1, c2})
		})
	})
	glued, rest, _ := out.Matched()
	fmt.Printf("%s|%s\n", glued, rest)
	// Output: 12|345
}

func ExampleOutcome_Or() {
	input := seq.Chars("12345")
	letter := parseq.ReadMatching[failure](input, unicode.IsLetter)
	out := letter.Or(func() parseq.Outcome[rune, seq.Chars, failure] {
		// the first attempt consumed nothing, input is still intact
		return parseq.ReadMatching[failure](input, unicode.IsDigit)
	})
	c, rest, _ := out.Matched()
	fmt.Printf("%c|%s\n", c, rest)
	// Output: 1|2345
}

func Example_positionTracking() {
	pos := seq.TrackString("a\nb")
	for {
		c, rest, ok := pos.SplitFirst()
		if !ok {
			break
		}
		fmt.Printf("%q read at %v\n", c, pos.Pos)
		pos = rest
	}
	// Output:
	// 'a' read at (1,1)
	// '\n' read at (1,2)
	// 'b' read at (2,1)
}
