package ll

import (
	"fmt"
	"html"
	"io"

	"github.com/npillmayer/predict/grammar"
	"github.com/npillmayer/predict/ll/sparse"
	"github.com/npillmayer/schuko/gconf"
)

// Table is a predictive parser table. Rows are the rules of a grammar in order of
// declaration, columns are the terminals in order of first appearance, followed
// by EOI. Entries are production serials. Tables are immutable.
type Table struct {
	g      *grammar.Grammar
	rows   []grammar.Symbol
	cols   []grammar.Symbol
	rowinx map[string]int
	colinx map[string]int
	matrix *sparse.IntMatrix
}

// BuildTable constructs the predictive table from the SELECT sets of all
// productions of a grammar. If two productions of a rule share a lookahead,
// BuildTable fails with an *AmbiguityError.
func BuildTable(ga *LLAnalysis) (*Table, error) {
	g := ga.Grammar()
	t := &Table{
		g:      g,
		rows:   g.Rules(),
		cols:   g.Terminals(),
		rowinx: make(map[string]int),
		colinx: make(map[string]int),
	}
	if !g.IsTerminal(grammar.EOI.Name) {
		t.cols = append(t.cols, grammar.EOI)
	}
	for i, A := range t.rows {
		t.rowinx[A.Name] = i
	}
	for j, a := range t.cols {
		t.colinx[a.Name] = j
	}
	tracer().Infof("LL(1) table of size %d x %d", len(t.rows), len(t.cols))
	t.matrix = sparse.NewIntMatrix(len(t.rows), len(t.cols), sparse.DefaultNullValue)
	for _, p := range g.Productions() {
		i := t.rowinx[p.LHS.Name]
		for _, a := range ga.Select(p).Values() {
			j, ok := t.colinx[a.Name]
			if !ok {
				continue
			}
			if t.matrix.IsSet(i, j) {
				other := g.Production(int(t.matrix.Value(i, j)))
				err := &AmbiguityError{Rule: p.LHS.Name, Lookahead: a.Name, First: other, Second: p}
				tracer().Errorf(err.Error())
				return nil, err
			}
			t.matrix.Set(i, j, int32(p.Serial))
		}
	}
	if gconf.GetBool("ll-dump-tables") {
		t.Dump()
	}
	return t, nil
}

// Grammar returns the grammar of the table.
func (t *Table) Grammar() *grammar.Grammar {
	return t.g
}

// Lookup returns the production predicted for rule A with a lookahead terminal.
func (t *Table) Lookup(A grammar.Symbol, lookahead string) (*grammar.Production, bool) {
	i, ok := t.rowinx[A.Name]
	if !ok || !A.IsNonTerminal() {
		return nil, false
	}
	j, ok := t.colinx[lookahead]
	if !ok || !t.matrix.IsSet(i, j) {
		return nil, false
	}
	return t.g.Production(int(t.matrix.Value(i, j))), true
}

// Expected returns the lookahead terminals for which rule A has an entry,
// in column order.
func (t *Table) Expected(A grammar.Symbol) []string {
	i, ok := t.rowinx[A.Name]
	if !ok {
		return nil
	}
	var expected []string
	t.matrix.EachInRow(i, func(j int, _ int32) {
		expected = append(expected, t.cols[j].Name)
	})
	return expected
}

// Each calls f for every entry of the table, rows in order of declaration,
// lookaheads in column order.
func (t *Table) Each(f func(A grammar.Symbol, lookahead grammar.Symbol, p *grammar.Production)) {
	t.matrix.Each(func(i, j int, v int32) {
		f(t.rows[i], t.cols[j], t.g.Production(int(v)))
	})
}

// Size returns the number of entries.
func (t *Table) Size() int {
	return t.matrix.ValueCount()
}

// Lookaheads returns the column symbols of the table.
func (t *Table) Lookaheads() []grammar.Symbol {
	return append([]grammar.Symbol(nil), t.cols...)
}

// Dump is a debugging helper, tracing all entries.
func (t *Table) Dump() {
	tracer().Debugf("--- LL(1) table for %s, %d×%d, %d entries ---", t.g.Name,
		t.matrix.M(), t.matrix.N(), t.Size())
	t.Each(func(A, a grammar.Symbol, p *grammar.Production) {
		tracer().Debugf("[%s, %s] = %d: %v", A, a, p.Serial, p)
	})
	tracer().Debugf("-------------------------------")
}

// TableAsHTML exports a predictive table in HTML-format.
func TableAsHTML(t *Table, w io.Writer) error {
	if t == nil {
		tracer().Errorf("LL(1) table not yet created, cannot export to HTML")
		return fmt.Errorf("no table to export")
	}
	out := &errWriter{w: w}
	out.printf("<html><body>\n")
	out.printf("LL(1) table for %s, %d entries<p>", html.EscapeString(t.g.Name), t.Size())
	out.printf("<table border=1 cellspacing=0 cellpadding=5>\n")
	out.printf("<tr bgcolor=#cccccc><td></td>\n")
	for _, a := range t.cols {
		out.printf("<td>%s</td>", html.EscapeString(a.Name))
	}
	out.printf("</tr>\n")
	for i, A := range t.rows {
		out.printf("<tr><td>%s</td>\n", html.EscapeString(A.Name))
		for j := range t.cols {
			td := "&nbsp;"
			if t.matrix.IsSet(i, j) {
				p := t.g.Production(int(t.matrix.Value(i, j)))
				td = html.EscapeString(fmt.Sprintf("%d: %s", p.Serial, p.RHSString()))
			}
			out.printf("<td>%s</td>\n", td)
		}
		out.printf("</tr>\n")
	}
	out.printf("</table></body></html>\n")
	return out.err
}

// errWriter remembers the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
