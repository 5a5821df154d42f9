package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/parseq"
	"github.com/npillmayer/parseq/seq"
)

// main() starts an interactive CLI ("P.REPL"), where users may enter lines
// of text. P.REPL will split each line into lexemes — numbers, words,
// double-quoted text and punctuation — using parsers composed from the
// parseq algebra, and print the lexemes together with their positions.
// An unterminated quote demonstrates a fatal parse error with a positioned
// payload.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to P.REPL")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up REPL
	repl, err := readline.New("prepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	tracer().Infof("Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		lexemes, err := splitLine(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		for _, lx := range lexemes {
			pterm.Info.Println(fmt.Sprintf("%-8s %v  %q", lx.kind, lx.at, lx.text))
		}
	}
	println("Good bye!")
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

// --- The lexeme splitter ---------------------------------------------------
//
// Client code: a handful of parsers composed from the parseq primitives.

// input is a character sequence with line/column tracking.
type input = seq.Positioned[seq.Chars]

// lexeme is one recognized piece of an input line.
type lexeme struct {
	kind string
	text string
	at   seq.Position
}

// badInput is the fatal-error payload of the splitter.
type badInput struct {
	reason string
	at     seq.Position
}

func (e badInput) Error() string {
	return fmt.Sprintf("%s at %v", e.reason, e.at)
}

// read parses one character accepted by pred.
func read(pred func(rune) bool) parseq.Parser[rune, input, badInput] {
	return func(in input) parseq.Outcome[rune, input, badInput] {
		return parseq.ReadMatching[badInput](in, pred)
	}
}

// number parses a run of digits.
func number(in input) parseq.Outcome[lexeme, input, badInput] {
	return parseq.Then(read(unicode.IsDigit)(in),
		func(c rune, rest input) parseq.Outcome[lexeme, input, badInput] {
			more := parseq.Normalize(parseq.CollectRepeating([]rune{c}, rest, read(unicode.IsDigit)))
			return parseq.Map(more, func(digits []rune) lexeme {
				return lexeme{kind: "number", text: string(digits), at: in.Pos}
			})
		})
}

// word parses a letter followed by letters or digits.
func word(in input) parseq.Outcome[lexeme, input, badInput] {
	alnum := func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }
	return parseq.Then(read(unicode.IsLetter)(in),
		func(c rune, rest input) parseq.Outcome[lexeme, input, badInput] {
			more := parseq.Normalize(parseq.CollectRepeating([]rune{c}, rest, read(alnum)))
			return parseq.Map(more, func(letters []rune) lexeme {
				return lexeme{kind: "word", text: string(letters), at: in.Pos}
			})
		})
}

// quoted parses "…". A missing closing quote cannot be recovered by trying
// another lexeme class, so it escalates to a fatal error.
func quoted(in input) parseq.Outcome[lexeme, input, badInput] {
	quote := func(r rune) bool { return r == '"' }
	return parseq.Then(read(quote)(in),
		func(_ rune, rest input) parseq.Outcome[lexeme, input, badInput] {
			body := parseq.Normalize(parseq.CollectRepeating([]rune{}, rest,
				read(func(r rune) bool { return r != '"' })))
			return parseq.Then(body, func(text []rune, rest input) parseq.Outcome[lexeme, input, badInput] {
				closing := read(quote)(rest).Or(func() parseq.Outcome[rune, input, badInput] {
					return parseq.FatalError[rune, input](badInput{reason: "unterminated quote", at: in.Pos})
				})
				return parseq.Map(closing, func(rune) lexeme {
					return lexeme{kind: "text", text: string(text), at: in.Pos}
				})
			})
		})
}

// punct parses any single character the other classes rejected.
func punct(in input) parseq.Outcome[lexeme, input, badInput] {
	return parseq.Map(parseq.ReadOne[badInput, rune](in), func(c rune) lexeme {
		return lexeme{kind: "punct", text: string(c), at: in.Pos}
	})
}

// one parses the next lexeme: number, word, quoted text or punctuation.
func one(in input) parseq.Outcome[lexeme, input, badInput] {
	return number(in).
		Or(func() parseq.Outcome[lexeme, input, badInput] { return word(in) }).
		Or(func() parseq.Outcome[lexeme, input, badInput] { return quoted(in) }).
		Or(func() parseq.Outcome[lexeme, input, badInput] { return punct(in) })
}

// skipSpace drops leading whitespace.
func skipSpace(in input) input {
	out := parseq.CollectRepeating([]rune{}, in, read(unicode.IsSpace))
	_, rest, _ := out.Matched()
	return rest
}

// splitLine splits a whole line into lexemes. punct accepts any single
// character, so a no-match from one() means the line is exhausted.
func splitLine(line string) ([]lexeme, error) {
	in := seq.TrackString(line)
	var lexemes []lexeme
	for {
		in = skipSpace(in)
		o := one(in)
		if err, fatal := o.Fatal(); fatal {
			return nil, err
		}
		lx, rest, ok := o.Matched()
		if !ok {
			break
		}
		lexemes = append(lexemes, lx)
		in = rest
	}
	tracer().Debugf("split line into %d lexeme(s)", len(lexemes))
	return lexemes, nil
}
