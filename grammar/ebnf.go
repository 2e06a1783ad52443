package grammar

import (
	"fmt"
	"io"
	"sort"

	"golang.org/x/exp/ebnf"
)

// FromEBNF reads a grammar in EBNF notation, as defined by package
// golang.org/x/exp/ebnf:
//
//    Expr   = Term { "+" Term } .
//    Term   = Factor [ "*" Term ] .
//    Factor = id | "(" Expr ")" .
//
// Names defined by a production become non-terminals. Quoted tokens and
// names without a production become terminals. Options, repetitions and groups
// are replaced by generated helper rules, named after the rule they occur in:
//
//    Expr       -> Term Expr_rep1
//    Expr_rep1  -> + Term Expr_rep1 | ε
//
// Repetitions are translated right-recursively. Productions keep the order of
// the EBNF source; helper rules follow the rule they were generated for.
// Character ranges ("a" … "z") are not supported.
// If start is empty, the first production in the source is the start symbol.
func FromEBNF(name string, r io.Reader, start string) (*Grammar, error) {
	src, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, grammarErr(name, 0, "cannot parse EBNF: %v", err)
	}
	eprods := make([]*ebnf.Production, 0, len(src))
	for _, p := range src {
		eprods = append(eprods, p)
	}
	sort.Slice(eprods, func(i, j int) bool {
		return eprods[i].Pos().Offset < eprods[j].Pos().Offset
	})
	x := &ebnfTranslator{name: name, src: src, counter: make(map[string]int)}
	for _, p := range eprods {
		if err := x.translate(p.Name.String, p.Expr); err != nil {
			return nil, err
		}
	}
	if start == "" && len(eprods) > 0 {
		start = eprods[0].Name.String
	}
	g, err := New(name, x.prods, start)
	if err != nil {
		tracer().Errorf(err.Error())
		return nil, err
	}
	return g, nil
}

type ebnfTranslator struct {
	name    string
	src     ebnf.Grammar
	prods   []*Production
	counter map[string]int // helper rules per rule
}

// translate emits the productions for rule lhs with body expr, followed by all
// helper rules the body needs.
func (x *ebnfTranslator) translate(lhs string, expr ebnf.Expression) error {
	var pending []helper
	alts, err := x.alternatives(lhs, expr, &pending)
	if err != nil {
		return err
	}
	for _, rhs := range alts {
		x.prods = append(x.prods, NewProduction(lhs, rhs...))
	}
	for len(pending) > 0 {
		h := pending[0]
		pending = pending[1:]
		alts, err := x.alternatives(h.owner, h.body, &pending)
		if err != nil {
			return err
		}
		for _, rhs := range alts {
			if h.recursive {
				rhs = append(rhs, NonTerm(h.name))
			}
			x.prods = append(x.prods, NewProduction(h.name, rhs...))
		}
		if h.nullable {
			x.prods = append(x.prods, NewProduction(h.name))
		}
	}
	return nil
}

// helper is a generated rule for an option, repetition or group.
type helper struct {
	name      string
	owner     string // rule the helper was created for
	body      ebnf.Expression
	nullable  bool // has an additional epsilon production
	recursive bool // every alternative ends with a self reference
}

func (x *ebnfTranslator) newHelper(owner, kind string, body ebnf.Expression) helper {
	x.counter[owner]++
	return helper{
		name:  fmt.Sprintf("%s_%s%d", owner, kind, x.counter[owner]),
		owner: owner,
		body:  body,
	}
}

func (x *ebnfTranslator) alternatives(owner string, expr ebnf.Expression, pending *[]helper) ([][]Symbol, error) {
	if alt, ok := expr.(ebnf.Alternative); ok {
		alts := make([][]Symbol, 0, len(alt))
		for _, e := range alt {
			seq, err := x.sequence(owner, e, pending)
			if err != nil {
				return nil, err
			}
			alts = append(alts, seq)
		}
		return alts, nil
	}
	seq, err := x.sequence(owner, expr, pending)
	if err != nil {
		return nil, err
	}
	return [][]Symbol{seq}, nil
}

func (x *ebnfTranslator) sequence(owner string, expr ebnf.Expression, pending *[]helper) ([]Symbol, error) {
	if expr == nil {
		return nil, nil
	}
	if seq, ok := expr.(ebnf.Sequence); ok {
		var syms []Symbol
		for _, e := range seq {
			s, err := x.sequence(owner, e, pending)
			if err != nil {
				return nil, err
			}
			syms = append(syms, s...)
		}
		return syms, nil
	}
	switch e := expr.(type) {
	case *ebnf.Name:
		if _, defined := x.src[e.String]; defined {
			return []Symbol{NonTerm(e.String)}, nil
		}
		return []Symbol{Term(e.String)}, nil
	case *ebnf.Token:
		return []Symbol{Term(e.String)}, nil
	case *ebnf.Option:
		h := x.newHelper(owner, "opt", e.Body)
		h.nullable = true
		*pending = append(*pending, h)
		return []Symbol{NonTerm(h.name)}, nil
	case *ebnf.Repetition:
		h := x.newHelper(owner, "rep", e.Body)
		h.nullable, h.recursive = true, true
		*pending = append(*pending, h)
		return []Symbol{NonTerm(h.name)}, nil
	case *ebnf.Group:
		if _, isAlt := e.Body.(ebnf.Alternative); !isAlt {
			return x.sequence(owner, e.Body, pending)
		}
		h := x.newHelper(owner, "grp", e.Body)
		*pending = append(*pending, h)
		return []Symbol{NonTerm(h.name)}, nil
	case ebnf.Alternative:
		h := x.newHelper(owner, "grp", e)
		*pending = append(*pending, h)
		return []Symbol{NonTerm(h.name)}, nil
	case *ebnf.Range:
		return nil, grammarErr(x.name, e.Pos().Line, "character ranges are not supported")
	}
	return nil, grammarErr(x.name, expr.Pos().Line, "unsupported EBNF expression %T", expr)
}
