/*
Package predict is a toolbox for table-driven top-down (LL(1)) parsing.

Clients hand over a context-free grammar and a set of token rules at
runtime. Predict computes the grammar's predictive parsing table, drives a
table-directed parse of input text into a syntax tree, and evaluates that
tree using semantic actions bound to productions. There is no code generation
step. Package structure is as follows:

■ grammar: Package grammar holds the grammar model and a parser for a small
textual grammar notation.

■ ll: Package ll computes FIRST/FOLLOW/SELECT sets, predictive tables and
contains the parse driver.

■ ll/scanner: Package scanner contains longest-match tokenizers feeding the parser.

■ parsetree: Package parsetree contains the syntax tree type and its evaluation.

■ langdef: Package langdef loads language definitions (tokens and grammar) from YAML.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predict
