package grammar

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
)

// GrammarError is returned for malformed grammars.
type GrammarError struct {
	Grammar string // name of the grammar
	Line    int    // line of grammar text, 0 if not parsed from text
	Msg     string
}

func (e *GrammarError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("grammar %s, line %d: %s", e.Grammar, e.Line, e.Msg)
	}
	return fmt.Sprintf("grammar %s: %s", e.Grammar, e.Msg)
}

func grammarErr(g string, line int, format string, args ...interface{}) *GrammarError {
	return &GrammarError{Grammar: g, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// --- Productions -----------------------------------------------------------

// Production is a grammar production
//
//    LHS -> X1 X2 … Xn
//
// with an empty RHS denoting an epsilon production. Serial is the position of
// the production within its grammar.
type Production struct {
	LHS    Symbol
	rhs    []Symbol
	Serial int
}

// NewProduction creates a production for rule lhs. Epsilon symbols in rhs are
// dropped, so a production with only epsilon symbols is an epsilon production.
// The serial number is assigned when the production becomes part of a grammar.
func NewProduction(lhs string, rhs ...Symbol) *Production {
	p := &Production{LHS: NonTerm(lhs), Serial: -1}
	p.rhs = make([]Symbol, 0, len(rhs))
	for _, sym := range rhs {
		if !sym.IsEpsilon() {
			p.rhs = append(p.rhs, sym)
		}
	}
	return p
}

// RHS returns a copy of the right-hand side of p.
func (p *Production) RHS() []Symbol {
	return append([]Symbol(nil), p.rhs...)
}

// Symbol returns the i-th symbol of the RHS.
func (p *Production) Symbol(i int) Symbol {
	return p.rhs[i]
}

// Len is the effective length of the RHS, 0 for epsilon productions.
func (p *Production) Len() int {
	return len(p.rhs)
}

func (p *Production) IsEpsilon() bool {
	return len(p.rhs) == 0
}

// Equal compares LHS and RHS of two productions, not their serials.
func (p *Production) Equal(other *Production) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.LHS != other.LHS || len(p.rhs) != len(other.rhs) {
		return false
	}
	for i, sym := range p.rhs {
		if sym != other.rhs[i] {
			return false
		}
	}
	return true
}

// RHSString renders the RHS of p, 'ε' for epsilon productions.
func (p *Production) RHSString() string {
	if p.IsEpsilon() {
		return Epsilon.Name
	}
	names := make([]string, len(p.rhs))
	for i, sym := range p.rhs {
		names[i] = sym.Name
	}
	return strings.Join(names, " ")
}

func (p *Production) String() string {
	return p.LHS.Name + " -> " + p.RHSString()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a context-free grammar. Grammars are immutable once constructed.
// Every non-terminal referenced in a RHS is the LHS of at least one production
// and the start symbol is a rule of the grammar.
type Grammar struct {
	Name      string
	prods     []*Production
	start     Symbol
	rules     []Symbol                 // in order of declaration
	terminals []Symbol                 // in order of first appearance
	byRule    map[string][]*Production // productions per rule
}

// New creates a grammar from a list of productions. Productions are numbered
// in the order given. If start is empty, the LHS of the first production will be
// the start symbol.
//
// New returns a GrammarError if a non-terminal is referenced but never defined,
// if a terminal has the name of a rule, or if the start symbol is not a rule.
func New(name string, prods []*Production, start string) (*Grammar, error) {
	if len(prods) == 0 {
		return nil, grammarErr(name, 0, "grammar has no productions")
	}
	g := &Grammar{
		Name:   name,
		prods:  make([]*Production, len(prods)),
		byRule: make(map[string][]*Production),
	}
	for i, p := range prods {
		if p == nil || p.LHS.Name == "" {
			return nil, grammarErr(name, 0, "production #%d has no left-hand side", i)
		}
		q := &Production{LHS: NonTerm(p.LHS.Name), rhs: p.RHS(), Serial: i}
		g.prods[i] = q
		if _, ok := g.byRule[q.LHS.Name]; !ok {
			g.rules = append(g.rules, q.LHS)
		}
		g.byRule[q.LHS.Name] = append(g.byRule[q.LHS.Name], q)
	}
	seen := make(map[string]bool)
	for _, p := range g.prods {
		for _, sym := range p.rhs {
			switch {
			case sym.IsNonTerminal():
				if !g.IsRule(sym.Name) {
					return nil, grammarErr(name, 0, "dangling non-terminal %s in %v", sym.Name, p)
				}
			case sym.IsTerminal():
				if g.IsRule(sym.Name) {
					return nil, grammarErr(name, 0, "terminal %s has the name of a rule", sym.Name)
				}
				if !seen[sym.Name] {
					seen[sym.Name] = true
					g.terminals = append(g.terminals, sym)
				}
			}
		}
	}
	if start == "" {
		start = g.prods[0].LHS.Name
	}
	if !g.IsRule(start) {
		return nil, grammarErr(name, 0, "invalid start symbol %s", start)
	}
	g.start = NonTerm(start)
	tracer().Debugf("grammar %s has %d productions, %d rules, %d terminals",
		name, len(g.prods), len(g.rules), len(g.terminals))
	return g, nil
}

// Start returns the start symbol of g.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return len(g.prods)
}

// Production returns production number serial, or nil.
func (g *Grammar) Production(serial int) *Production {
	if serial < 0 || serial >= len(g.prods) {
		return nil
	}
	return g.prods[serial]
}

// Productions returns all productions in order of their serial numbers.
func (g *Grammar) Productions() []*Production {
	return append([]*Production(nil), g.prods...)
}

// ProductionsFor returns the productions for rule A, in order.
func (g *Grammar) ProductionsFor(A Symbol) []*Production {
	return g.byRule[A.Name]
}

// Rules returns the non-terminals of g in order of declaration.
func (g *Grammar) Rules() []Symbol {
	return append([]Symbol(nil), g.rules...)
}

// Terminals returns the terminals of g in order of first appearance.
func (g *Grammar) Terminals() []Symbol {
	return append([]Symbol(nil), g.terminals...)
}

// IsRule is true if name is the LHS of a production.
func (g *Grammar) IsRule(name string) bool {
	_, ok := g.byRule[name]
	return ok
}

// IsTerminal is true if name is a terminal of g.
func (g *Grammar) IsTerminal(name string) bool {
	for _, t := range g.terminals {
		if t.Name == name {
			return true
		}
	}
	return false
}

// EachProduction calls f for every production, in order.
func (g *Grammar) EachProduction(f func(p *Production)) {
	for _, p := range g.prods {
		f(p)
	}
}

// Fingerprint returns a hash over start symbol and productions. Grammars with
// identical productions in identical order have identical fingerprints.
func (g *Grammar) Fingerprint() string {
	fp := struct {
		Start       string
		Productions []string
	}{Start: g.start.Name}
	for _, p := range g.prods {
		fp.Productions = append(fp.Productions, p.String())
	}
	h, err := structhash.Hash(fp, 1)
	if err != nil {
		tracer().Errorf("cannot hash grammar %s: %v", g.Name, err)
		return ""
	}
	return h
}

// String renders g in the notation understood by Parse, one rule per line.
func (g *Grammar) String() string {
	var b strings.Builder
	for _, A := range g.rules {
		b.WriteString(A.Name)
		b.WriteString(" -> ")
		for i, p := range g.byRule[A.Name] {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(p.RHSString())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Dump is a debugging helper, tracing all productions.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s, start = %s ---", g.Name, g.start)
	for _, p := range g.prods {
		tracer().Debugf("%3d: %v", p.Serial, p)
	}
	tracer().Debugf("-------------------------------")
}
