/*
Package langdef reads language definitions, i.e. token rules together with a
grammar, from YAML documents and sets up predictive parsers for them.

A language definition looks like this:

    name: Expressions
    engine: regexp
    tokens:
      - kind: id
        pattern: "[a-z]+"
      - kind: "*"
        pattern: "\\*"
      - kind: num
        pattern: "[0-9]+"
        value: int
      - kind: ws
        pattern: "[ \t]+"
        skip: true
    grammar: |
      E  -> T E'
      E' -> * T E' | ε
      T  -> id | num

Token rules are tried in the order given. Field 'value' names one of the
pre-defined transforms of package scanner. Field 'engine' selects the
scanner implementation, either "regexp" (default) or "lexmachine"; patterns
have to be written in the regular expression dialect of the selected engine.
Instead of 'grammar', a definition may contain an 'ebnf' section holding a
grammar in the notation of golang.org/x/exp/ebnf.

    def, err := langdef.LoadFile("expr.yaml")
    parser, err := def.Parser(actions)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package langdef

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.langdef'.
func tracer() tracing.Trace {
	return tracing.Select("predict.langdef")
}
