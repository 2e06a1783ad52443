package lexmach

import (
	"errors"
	"testing"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func lmRules() []scanner.Rule {
	return []scanner.Rule{
		{Kind: "if", Pattern: `if`},
		{Kind: "id", Pattern: `[a-z]+`},
		{Kind: "num", Pattern: `[0-9]+`, Transform: scanner.Int},
		{Kind: "*", Pattern: `\*`},
		{Kind: "**", Pattern: `\*\*`},
		{Kind: "ws", Pattern: `( |\t|\n)+`, Transform: scanner.Skip},
	}
}

var inputStrings = []string{
	"a",
	"a*b*c",
	"x ** 12",
	"if iffy",
	"",
	"a # b",
}

var tokenKinds = [][]string{
	{"id"},
	{"id", "*", "id", "*", "id"},
	{"id", "**", "num"},
	{"if", "id"},
	{},
	{"id", predict.Unknown, "id"},
}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(lmRules()...)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		tokens := scanner.Collect(LM.Tokenize("lm", input))
		for _, tok := range tokens {
			t.Logf(" %7s | %15q | @%s", tok.Kind, tok.Lexeme, tok.Pos)
		}
		if len(tokens) != len(tokenKinds[i])+1 {
			t.Errorf("expected token count for #%d to be %d, is %d", i, len(tokenKinds[i])+1, len(tokens))
			continue
		}
		for j, kind := range tokenKinds[i] {
			if tokens[j].Kind != kind {
				t.Errorf("expected token %d of #%d to be of kind %q, is %q", j, i, kind, tokens[j].Kind)
			}
		}
		if !tokens[len(tokens)-1].IsEOI() {
			t.Errorf("expected #%d to end with EOI", i)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMValuesAndPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(lmRules()...)
	if err != nil {
		t.Fatal(err)
	}
	tokens := scanner.Collect(LM.Tokenize("lm", "ab\n  42 ?"))
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, have %v", tokens)
	}
	if v, ok := tokens[1].Value().(int); !ok || v != 42 {
		t.Errorf("expected 42 to carry an int value, is %#v", tokens[1].Value())
	}
	if p := tokens[1].Pos; p.Line != 2 || p.Col != 3 || p.Source != "lm" {
		t.Errorf("expected num at lm:2:3, is at %s", p)
	}
	if tokens[2].Kind != predict.Unknown || tokens[2].Pos.Col != 6 {
		t.Errorf("expected unknown token at 2:6, have %v", tokens[2])
	}
	if _, ok := LM.Tokenize("lm", "").NextToken(); !ok {
		t.Errorf("expected EOI for empty input")
	}
}

func TestLMDuplicateKind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.scanner")
	defer teardown()
	//
	_, err := NewLMAdapter(
		scanner.Rule{Kind: "x", Pattern: `a`},
		scanner.Rule{Kind: "x", Pattern: `b`},
	)
	var perr *scanner.PatternError
	if !errors.As(err, &perr) {
		t.Errorf("expected duplicate kind to be rejected, have %v", err)
	}
}
