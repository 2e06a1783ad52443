/*
Package scanner defines an interface for tokenizers to be used with the parsers of
package ll.

Lexers are created from a list of token rules. Each rule names a token kind
(the name of a terminal in the grammar), a regular expression, and an optional
transform for the matched lexeme. At every input position the rule with the
longest match wins; on equal lengths the rule declared first wins.

	lexer, err := scanner.NewRegexpLexer(
		scanner.Rule{Kind: "num", Pattern: `[0-9]+`, Transform: scanner.Int},
		scanner.Rule{Kind: "id", Pattern: `[a-z]+`},
		scanner.Rule{Kind: "ws", Pattern: `[ \t\n]+`, Transform: scanner.Skip},
	)

Lexers are immutable and may be shared. Every call to Tokenize creates an
independent cursor over an input text.

	tokens := lexer.Tokenize("input", "x 42")
	for tok, ok := tokens.NextToken(); ok; tok, ok = tokens.NextToken() {
		…   // last token is of kind predict.EOI
	}

Input no rule matches is reported as single-character tokens of kind
predict.Unknown.

Two implementations are provided: (1) RegexpLexer, backed by the Go std lib
package 'regexp', and (2) an adapter for lexmachine, living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"sort"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("predict.scanner")
}

// Tokenizer is a cursor over a token stream. NextToken returns false after the
// end-of-input token has been delivered.
type Tokenizer interface {
	NextToken() (predict.Token, bool)
}

// Lexer creates tokenizers for input texts.
type Lexer interface {
	Tokenize(source string, text string) Tokenizer
	Kinds() []string // declared token kinds, in order of declaration
}

// Rule is a token rule: lexemes matching Pattern become tokens of kind Kind.
// Transform may be nil.
type Rule struct {
	Kind      string
	Pattern   string
	Transform Transform
}

// RulesFromMaps creates token rules from a map of patterns and a map of transforms.
// Map iteration is unordered, therefore rules are sorted by kind name.
func RulesFromMaps(patterns map[string]string, transforms map[string]Transform) []Rule {
	kinds := make([]string, 0, len(patterns))
	for kind := range patterns {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	rules := make([]Rule, len(kinds))
	for i, kind := range kinds {
		rules[i] = Rule{Kind: kind, Pattern: patterns[kind], Transform: transforms[kind]}
	}
	return rules
}

// CheckRules checks a list of rules for empty or duplicate kinds. It returns
// the kinds in order of declaration.
func CheckRules(rules []Rule) ([]string, error) {
	kinds := make([]string, 0, len(rules))
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r.Kind == "" {
			return nil, &PatternError{Pattern: r.Pattern, Err: fmt.Errorf("token rule without kind")}
		}
		if seen[r.Kind] {
			return nil, &PatternError{Kind: r.Kind, Pattern: r.Pattern, Err: fmt.Errorf("duplicate token kind")}
		}
		seen[r.Kind] = true
		kinds = append(kinds, r.Kind)
	}
	return kinds, nil
}

// PatternError is returned by lexer constructors for unusable token rules.
type PatternError struct {
	Kind    string
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("token %q, pattern %q: %v", e.Kind, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Collect drains a tokenizer and returns all its tokens, including EOI.
func Collect(t Tokenizer) []predict.Token {
	var tokens []predict.Token
	for tok, ok := t.NextToken(); ok; tok, ok = t.NextToken() {
		tokens = append(tokens, tok)
	}
	return tokens
}
