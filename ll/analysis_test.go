package ll

import (
	"testing"

	"github.com/npillmayer/predict/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const exprGrammar = `
E  -> T E'
E' -> * T E' | ε
T  -> id
`

const demoGrammar = `
E  -> T E'
E' -> t_mult T E' | ε
T  -> F T'
T' -> t_plus F T' |
F  -> t_lparen E t_rparen | t_id
`

var testGrammars = []string{
	exprGrammar,
	demoGrammar,
	"S -> A B c\nA -> a | ε\nB -> b | ε",
	"S -> a S b | ε",
	"A -> B | a\nB -> A | b",   // cyclic, not LL(1)
	"A -> B A | ε\nB -> A | b", // cyclic through epsilon
}

func mustParse(t *testing.T, text string) *grammar.Grammar {
	t.Helper()
	g, err := grammar.Parse("test", text)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func checkSet(t *testing.T, what string, S *grammar.SymbolSet, expected ...grammar.Symbol) {
	t.Helper()
	if !S.Equals(grammar.NewSymbolSet(expected...)) {
		t.Errorf("expected %s = %v, is %v", what, grammar.NewSymbolSet(expected...), S)
	}
}

func TestFirstAndFollow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g := mustParse(t, demoGrammar)
	ga := Analysis(g)
	ga.Dump()
	E, E1, T, T1, F := grammar.NonTerm("E"), grammar.NonTerm("E'"), grammar.NonTerm("T"),
		grammar.NonTerm("T'"), grammar.NonTerm("F")
	mult, plus := grammar.Term("t_mult"), grammar.Term("t_plus")
	lparen, rparen, id := grammar.Term("t_lparen"), grammar.Term("t_rparen"), grammar.Term("t_id")
	eps, eoi := grammar.Epsilon, grammar.EOI
	//
	checkSet(t, "FIRST(E)", ga.First(E), lparen, id)
	checkSet(t, "FIRST(T)", ga.First(T), lparen, id)
	checkSet(t, "FIRST(F)", ga.First(F), lparen, id)
	checkSet(t, "FIRST(E')", ga.First(E1), mult, eps)
	checkSet(t, "FIRST(T')", ga.First(T1), plus, eps)
	checkSet(t, "FIRST(T' E')", ga.First(T1, E1), plus, mult, eps)
	checkSet(t, "FIRST(T' t_id)", ga.First(T1, id), plus, id)
	checkSet(t, "FIRST()", ga.First(), eps)
	checkSet(t, "FIRST(ε)", ga.First(eps), eps)
	checkSet(t, "FIRST(t_id)", ga.First(id), id)
	//
	checkSet(t, "FOLLOW(E)", ga.Follow(E), rparen, eoi)
	checkSet(t, "FOLLOW(E')", ga.Follow(E1), rparen, eoi)
	checkSet(t, "FOLLOW(T)", ga.Follow(T), mult, rparen, eoi)
	checkSet(t, "FOLLOW(T')", ga.Follow(T1), mult, rparen, eoi)
	checkSet(t, "FOLLOW(F)", ga.Follow(F), plus, mult, rparen, eoi)
	//
	if !ga.Nullable(E1) || !ga.Nullable(T1) || ga.Nullable(E) {
		t.Errorf("expected exactly E' and T' to be nullable")
	}
	checkSet(t, "SELECT(E' -> ε)", ga.Select(g.Production(2)), rparen, eoi)
	checkSet(t, "SELECT(T' -> t_plus F T')", ga.Select(g.Production(4)), plus)
}

func TestCyclicGrammars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	ga := Analysis(mustParse(t, testGrammars[4]))
	a, b := grammar.Term("a"), grammar.Term("b")
	checkSet(t, "FIRST(A)", ga.First(grammar.NonTerm("A")), a, b)
	checkSet(t, "FIRST(B)", ga.First(grammar.NonTerm("B")), a, b)
	//
	ga = Analysis(mustParse(t, testGrammars[5]))
	checkSet(t, "FIRST(A)", ga.First(grammar.NonTerm("A")), b, grammar.Epsilon)
	checkSet(t, "FIRST(B)", ga.First(grammar.NonTerm("B")), b, grammar.Epsilon)
	checkSet(t, "FOLLOW(A)", ga.Follow(grammar.NonTerm("A")), b, grammar.EOI)
}

func TestFollowHasNoEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	for i, text := range testGrammars {
		g := mustParse(t, text)
		ga := Analysis(g)
		for _, A := range g.Rules() {
			if ga.Follow(A).Contains(grammar.Epsilon) {
				t.Errorf("grammar #%d: FOLLOW(%s) contains epsilon", i, A)
			}
		}
		if !ga.Follow(g.Start()).Contains(grammar.EOI) {
			t.Errorf("grammar #%d: expected EOI in FOLLOW of start symbol", i)
		}
	}
}

func TestAnalysisIsImmutable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	ga := Analysis(mustParse(t, exprGrammar))
	E1 := grammar.NonTerm("E'")
	ga.First(E1).Add(grammar.Term("x"))
	ga.Follow(E1).Add(grammar.Term("x"))
	if ga.First(E1).Contains(grammar.Term("x")) || ga.Follow(E1).Contains(grammar.Term("x")) {
		t.Errorf("expected returned sets to be copies")
	}
}
