package grammar

import (
	"bufio"
	"strings"
)

// EpsilonGlyph denotes an epsilon production in grammar text.
const EpsilonGlyph = "ε"

// Parse parses a grammar in line-oriented notation
//
//    LHS -> ALT1 | ALT2 | …
//
// Alternatives are whitespace-separated symbol lists. An empty alternative or
// an alternative consisting of 'ε' denotes an epsilon production. A rule may be
// continued on further lines starting with the same LHS. Blank lines are
// skipped. The first rule is the start symbol.
func Parse(name string, text string) (*Grammar, error) {
	return ParseStart(name, text, "")
}

// ParseStart is like Parse but sets an explicit start symbol.
func ParseStart(name string, text string, start string) (*Grammar, error) {
	type rawAlt struct {
		lhs  string
		syms []string
		line int
	}
	var alts []rawAlt
	lhsNames := make(map[string]bool)
	lines := bufio.NewScanner(strings.NewReader(text))
	lineno := 0
	for lines.Scan() {
		lineno++
		line := strings.TrimSpace(lines.Text())
		if line == "" {
			continue
		}
		arrow := strings.Index(line, "->")
		if arrow < 0 {
			return nil, grammarErr(name, lineno, "missing '->' in %q", line)
		}
		lhs := strings.TrimSpace(line[:arrow])
		if lhs == "" || strings.ContainsAny(lhs, " \t|") {
			return nil, grammarErr(name, lineno, "invalid left-hand side %q", lhs)
		}
		lhsNames[lhs] = true
		for _, alt := range strings.Split(line[arrow+2:], "|") {
			syms := strings.Fields(alt)
			alts = append(alts, rawAlt{lhs: lhs, syms: syms, line: lineno})
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}
	prods := make([]*Production, 0, len(alts))
	for _, alt := range alts {
		rhs := make([]Symbol, 0, len(alt.syms))
		for _, s := range alt.syms {
			switch {
			case s == EpsilonGlyph:
				rhs = append(rhs, Epsilon)
			case lhsNames[s]:
				rhs = append(rhs, NonTerm(s))
			default:
				rhs = append(rhs, Term(s))
			}
		}
		prods = append(prods, NewProduction(alt.lhs, rhs...))
	}
	g, err := New(name, prods, start)
	if err != nil {
		tracer().Errorf(err.Error())
		return nil, err
	}
	return g, nil
}
