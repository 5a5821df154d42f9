package lexmach

import (
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/npillmayer/parseq"
)

// lexmachine adapter

// Adapter wraps a compiled lexmachine lexer so that inputs can be scanned
// into token sequences.
type Adapter struct {
	Lexer *lexmachine.Lexer
	Error func(error)
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NewAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values. Other rules are added
// by the init function.
//
// NewAdapter will return an error if compiling the DFA failed.
func NewAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*Adapter, error) {
	adapter := &Adapter{Error: logError}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// SetErrorHandler sets an error handler for scanning. Passing nil resets to
// the default handler, which traces the error and moves on.
func (lm *Adapter) SetErrorHandler(h func(error)) {
	if h == nil {
		lm.Error = logError
		return
	}
	lm.Error = h
}

// Sequence scans input to its end and returns the tokens as an immutable
// sequence. Scanner errors are reported to the adapter's error handler;
// unconsumed-input errors are skipped over, as far as the DFA allows.
func (lm *Adapter) Sequence(input string) (TokenSeq, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return TokenSeq{}, err
	}
	var toks []Token
	for {
		tok, err, eof := s.Next()
		for err != nil {
			lm.Error(err)
			if ui, is := err.(*machines.UnconsumedInput); is {
				s.TC = ui.FailTC
			}
			tok, err, eof = s.Next()
		}
		if eof {
			break
		}
		token := tok.(*lexmachine.Token)
		toks = append(toks, Token{
			kind:   token.Type,
			lexeme: string(token.Lexeme),
			span:   Span{uint64(token.StartColumn), uint64(token.EndColumn)},
		})
	}
	tracer().Debugf("scanned %d token(s)", len(toks))
	return TokenSeq{toks: toks}, nil
}

// --- Token sequences -------------------------------------------------------

// TokenSeq is a scanned input as a sequence of tokens. It can be split and
// re-split like any other parseq sequence; all remainders share the scanned
// token run.
type TokenSeq struct {
	toks []Token
	at   int
}

var _ parseq.Sequence[TokenSeq, Token] = TokenSeq{}

// SplitFirst returns the front token and the remainder of the sequence.
func (ts TokenSeq) SplitFirst() (Token, TokenSeq, bool) {
	if ts.at >= len(ts.toks) {
		return Token{}, ts, false
	}
	return ts.toks[ts.at], TokenSeq{toks: ts.toks, at: ts.at + 1}, true
}

// Len returns the number of unconsumed tokens.
func (ts TokenSeq) Len() int {
	return len(ts.toks) - ts.at
}

// --- Canned scanner actions ------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
