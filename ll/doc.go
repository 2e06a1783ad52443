/*
Package ll implements predictive (LL(1)) parsing.

Static Grammar Analysis

A grammar is subjected to an analysis object, which computes FIRST and FOLLOW
sets for the grammar and determines all epsilon-derivable rules. All sets are
computed once, by iterating until a fixpoint is reached. Cyclic dependencies
between rules are therefore harmless.

    ga := ll.Analysis(g)
    for _, A := range g.Rules() {
        fmt.Printf("FIRST(%s) = %v\n", A, ga.First(A))
        fmt.Printf("FOLLOW(%s) = %v\n", A, ga.Follow(A))
    }

From FIRST and FOLLOW the SELECT set of each production is derived: the set of
lookahead terminals for which the parser predicts the production.

Parser Construction

The predictive table maps (rule, lookahead) pairs to productions. If SELECT
sets of two productions of a rule overlap, the grammar is not LL(1) and
table construction fails with an AmbiguityError.

    table, err := ll.BuildTable(ga)

Clients usually do not build tables themselves, but have a parser do it:

    parser, err := ll.NewParser(lexer, g, actions)
    tree, err := parser.Parse("a*b*c")
    value, err := tree.Eval()

NewParser checks that lexer and grammar fit together: lexer kinds and
rule names must be disjoint, neither may use the reserved name EOI, and every
terminal of the grammar needs a lexer kind.

Parsing

The parser is a recursive table-driven parser. It predicts a production for
each rule from the current token, descends into the right-hand side and builds
a syntax tree on the way (see package parsetree). Parsing stops at the
first error; errors are of type UnknownTokenError or UnexpectedTokenError and
carry the position of the offending token.

Configuration

If configuration flag 'll-dump-tables' is set, finished tables are traced to
'predict.ll' with level Debug.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.ll'.
func tracer() tracing.Trace {
	return tracing.Select("predict.ll")
}
