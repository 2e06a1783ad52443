/*
Package llrepl/main provides an interactive command line tool (LL.REPL) for
experiments with LL(1) language definitions. Input lines are parsed with a
predictive parser and the resulting syntax tree is printed to the terminal.

    llrepl -def expr.yaml -trace Debug

Without a definition file a small expression language is used. Lines starting
with a colon are commands:

    :tokens <text>   print the tokens of <text>
    :first <Rule>    print FIRST(Rule)
    :follow <Rule>   print FOLLOW(Rule)
    :table           print the predictive table
    :html <file>     export the predictive table as HTML
    :grammar         print the grammar
    :quit            leave LL.REPL


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.langdef'
func tracer() tracing.Trace {
	return tracing.Select("predict.langdef")
}
