/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the parsers of package ll.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The adapter is set up from the same token rules as scanner.RegexpLexer,
but patterns are written in lexmachine's regular expression dialect.
All rules are compiled into a single DFA. Lexmachine selects the longest match,
on equal lengths the rule added first wins.

	LM, err := lexmach.NewLMAdapter(
		scanner.Rule{Kind: "id", Pattern: `[a-z]+`},
		scanner.Rule{Kind: "*", Pattern: `\*`},
		scanner.Rule{Kind: "ws", Pattern: `( |\t|\n)+`, Transform: scanner.Skip},
	)
	if err != nil {
		// do error handling
	}

NewLMAdapter will return an error if compiling the DFA failed.
A tokenizer is instantiated for each concrete input text.

	tokens := LM.Tokenize("input", "a * b")

Input which the DFA cannot consume is delivered as single-character tokens of
kind predict.Unknown, and scanning resumes right behind it.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
