/*
Package grammar implements context-free grammars for predictive parsers.

A grammar consists of productions. Every production has a left-hand side
non-terminal (a rule) and a right-hand side sequence of terminals and
non-terminals. An empty right-hand side denotes an epsilon production.
Productions are numbered in the order they are supplied; this serial number
is used to bind semantic actions to productions.

Building a Grammar

Grammars may be parsed from a line-oriented notation

    g, err := grammar.Parse("Expr", `
        E  -> T E'
        E' -> * T E' | ε
        T  -> id
    `)

Symbols appearing as a left-hand side are non-terminals, all other symbols are
terminals. The first rule is the start symbol. An empty alternative or the
glyph 'ε' denotes an epsilon production.

Alternatively clients use a grammar builder:

    b := grammar.NewBuilder("Expr")
    b.LHS("E").N("T").N("E'").End()        // E  ->  T E'
    b.LHS("E'").T("*").N("T").N("E'").End() // E' ->  * T E'
    b.LHS("E'").Epsilon()                   // E' ->
    b.LHS("T").T("id").End()                // T  ->  id
    g, err := b.Grammar()

Grammars in EBNF notation (as understood by golang.org/x/exp/ebnf) may be
imported with FromEBNF. Options, repetitions and groups are translated into
helper rules.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("predict.grammar")
}
