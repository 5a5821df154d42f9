package lexmach

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"

	"github.com/npillmayer/parseq"
)

var literals []string       // The tokens representing literal strings
var keywords []string       // The keyword tokens
var tokens []string         // All of the tokens (including literals and keywords)
var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	literals = []string{
		"(",
		")",
		"=",
		"+",
	}
	keywords = []string{
		"let",
	}
	tokens = []string{
		"ID",
		"NUM",
	}
	tokens = append(tokens, keywords...)
	tokens = append(tokens, literals...)
	tokenIds = make(map[string]int)
	for i, tok := range tokens {
		tokenIds[tok] = i
	}
}

func makeAdapter(t *testing.T) *Adapter {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`[1-9][0-9]*`), MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`( |\,|\t|\n|\r)+`), Skip)
	}
	LM, err := NewAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	return LM
}

func TestScanToSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parseq.lexmach")
	defer teardown()
	//
	LM := makeAdapter(t)
	toks, err := LM.Sequence("1, 22, 333")
	if err != nil {
		t.Fatal(err)
	}
	if toks.Len() != 3 {
		t.Fatalf("Expected 3 tokens, got %d", toks.Len())
	}
	tok, rest, ok := toks.SplitFirst()
	if !ok || tok.Lexeme() != "1" || tok.TokType() != tokenIds["NUM"] {
		t.Errorf("Expected first token to be NUM \"1\", got %v", tok)
	}
	t.Logf(" %4d | %15s | @%5d", tok.TokType(), tok.Lexeme(), tok.Span().From())
	if rest.Len() != 2 {
		t.Errorf("Expected 2 unconsumed tokens, got %d", rest.Len())
	}
	if again, _, _ := toks.SplitFirst(); again != tok { // sequence values are reusable
		t.Errorf("Expected re-split to yield the same token, got %v", again)
	}
}

func TestParseTokenSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parseq.lexmach")
	defer teardown()
	//
	LM := makeAdapter(t)
	toks, err := LM.Sequence("(x) = 1 + 22")
	if err != nil {
		t.Fatal(err)
	}
	// an opening paren, then an ID, parsed with the combinator algebra
	kind := func(name string) func(Token) bool {
		return func(tok Token) bool { return tok.TokType() == tokenIds[name] }
	}
	out := parseq.Then(
		parseq.ReadMatching[string](toks, kind("(")),
		func(_ Token, rest TokenSeq) parseq.Outcome[Token, TokenSeq, string] {
			return parseq.ReadMatching[string](rest, kind("ID"))
		})
	id, rest, ok := out.Matched()
	if !ok || id.Lexeme() != "x" {
		t.Fatalf("Expected to parse the identifier x, got %s", out)
	}
	if rest.Len() != 5 {
		t.Errorf("Expected 5 unconsumed tokens, got %d", rest.Len())
	}
}

func TestScanEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parseq.lexmach")
	defer teardown()
	//
	LM := makeAdapter(t)
	toks, err := LM.Sequence("")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, ok := toks.SplitFirst(); ok {
		t.Errorf("Expected an empty token sequence not to split")
	}
}
