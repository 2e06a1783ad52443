package ll

import (
	"github.com/npillmayer/predict/grammar"
)

// LLAnalysis holds FIRST and FOLLOW sets for the rules of a grammar.
// Create one with Analysis. An LLAnalysis is immutable and may be shared.
type LLAnalysis struct {
	g      *grammar.Grammar
	first  map[string]*grammar.SymbolSet // per rule, may contain epsilon
	follow map[string]*grammar.SymbolSet // per rule, may contain EOI
}

// Analysis computes FIRST and FOLLOW sets for all rules of g.
func Analysis(g *grammar.Grammar) *LLAnalysis {
	ga := &LLAnalysis{
		g:      g,
		first:  make(map[string]*grammar.SymbolSet),
		follow: make(map[string]*grammar.SymbolSet),
	}
	for _, A := range g.Rules() {
		ga.first[A.Name] = grammar.NewSymbolSet()
		ga.follow[A.Name] = grammar.NewSymbolSet()
	}
	ga.computeFirstSets()
	ga.computeFollowSets()
	return ga
}

// Grammar returns the grammar this analysis is for.
func (ga *LLAnalysis) Grammar() *grammar.Grammar {
	return ga.g
}

// FIRST(A) is the union of FIRST(rhs) over all productions of A. Iterate
// until no set changes.
func (ga *LLAnalysis) computeFirstSets() {
	rounds := 0
	for changed := true; changed; rounds++ {
		changed = false
		ga.g.EachProduction(func(p *grammar.Production) {
			if ga.first[p.LHS.Name].Union(ga.firstOfSeq(p.RHS())) {
				changed = true
			}
		})
	}
	tracer().Debugf("FIRST sets stable after %d rounds", rounds)
}

// For B -> α A β: FIRST(β)\ε ⊆ FOLLOW(A), and FOLLOW(B) ⊆ FOLLOW(A) if β
// is nullable and A ≠ B. EOI ∈ FOLLOW(start).
func (ga *LLAnalysis) computeFollowSets() {
	ga.follow[ga.g.Start().Name].Add(grammar.EOI)
	rounds := 0
	for changed := true; changed; rounds++ {
		changed = false
		ga.g.EachProduction(func(p *grammar.Production) {
			rhs := p.RHS()
			for i, A := range rhs {
				if !A.IsNonTerminal() {
					continue
				}
				fbeta := ga.firstOfSeq(rhs[i+1:])
				if ga.follow[A.Name].Union(fbeta.Without(grammar.Epsilon)) {
					changed = true
				}
				if fbeta.Contains(grammar.Epsilon) && A != p.LHS {
					if ga.follow[A.Name].Union(ga.follow[p.LHS.Name]) {
						changed = true
					}
				}
			}
		})
	}
	tracer().Debugf("FOLLOW sets stable after %d rounds", rounds)
}

// firstOfSeq computes FIRST of a symbol sequence from the current FIRST sets of rules.
// The empty sequence derives epsilon.
func (ga *LLAnalysis) firstOfSeq(seq []grammar.Symbol) *grammar.SymbolSet {
	F := grammar.NewSymbolSet()
	for _, sym := range seq {
		switch {
		case sym.IsEpsilon():
			continue
		case sym.IsTerminal():
			F.Add(sym)
			return F
		}
		fA := ga.first[sym.Name]
		if fA == nil { // not a rule of this grammar
			return F
		}
		F.Union(fA.Without(grammar.Epsilon))
		if !fA.Contains(grammar.Epsilon) {
			return F
		}
	}
	F.Add(grammar.Epsilon)
	return F
}

// First returns FIRST of a sequence of symbols. FIRST of a terminal is the
// terminal itself, FIRST of epsilon and of the empty sequence is {ε}.
func (ga *LLAnalysis) First(seq ...grammar.Symbol) *grammar.SymbolSet {
	return ga.firstOfSeq(seq)
}

// Follow returns FOLLOW(A) for a rule A. FOLLOW sets never contain epsilon,
// but may contain EOI.
func (ga *LLAnalysis) Follow(A grammar.Symbol) *grammar.SymbolSet {
	if F, ok := ga.follow[A.Name]; ok && A.IsNonTerminal() {
		return F.Copy()
	}
	return grammar.NewSymbolSet()
}

// Nullable is true if rule A derives the empty word.
func (ga *LLAnalysis) Nullable(A grammar.Symbol) bool {
	if F, ok := ga.first[A.Name]; ok && A.IsNonTerminal() {
		return F.Contains(grammar.Epsilon)
	}
	return false
}

// Select returns the lookahead set for production p: FIRST of the RHS, with
// epsilon replaced by FOLLOW of the LHS.
func (ga *LLAnalysis) Select(p *grammar.Production) *grammar.SymbolSet {
	S := ga.firstOfSeq(p.RHS())
	if S.Contains(grammar.Epsilon) {
		S.Remove(grammar.Epsilon)
		S.Union(ga.follow[p.LHS.Name])
	}
	return S
}

// Dump is a debugging helper, tracing FIRST and FOLLOW sets of all rules.
func (ga *LLAnalysis) Dump() {
	for _, A := range ga.g.Rules() {
		tracer().Debugf("FIRST(%s) = %v   FOLLOW(%s) = %v", A, ga.first[A.Name], A, ga.follow[A.Name])
	}
}
