package ll

import (
	"fmt"
	"strings"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/grammar"
)

// AmbiguityError is returned by table construction if two productions of a
// rule are predicted for the same lookahead, i.e. the grammar is not LL(1).
type AmbiguityError struct {
	Rule      string
	Lookahead string
	First     *grammar.Production // production entered first
	Second    *grammar.Production // conflicting production
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("ambiguous grammar in rule %s: lookahead %s selects %q and %q",
		e.Rule, e.Lookahead, e.First, e.Second)
}

// ConfigError is returned by NewParser if lexer, grammar and actions do not fit together.
type ConfigError struct {
	Key    string // offending name
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("parser configuration: %s: %s", e.Reason, e.Key)
}

// UnknownTokenError is returned by a parse if the input contains a token which
// is not a terminal of the grammar.
type UnknownTokenError struct {
	Token predict.Token
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("%s: unknown token %q", e.Token.Pos, e.Token.Lexeme)
}

// Pos returns the position of the offending token.
func (e *UnknownTokenError) Pos() predict.Position {
	return e.Token.Pos
}

// UnexpectedTokenError is returned by a parse if a token does not fit the
// grammar at its position. Expected lists the terminals which would have been
// accepted.
type UnexpectedTokenError struct {
	Token    predict.Token
	Expected []string
}

func (e *UnexpectedTokenError) Error() string {
	found := fmt.Sprintf("%q", e.Token.Lexeme)
	if e.Token.IsEOI() {
		found = "end of input"
	}
	return fmt.Sprintf("%s: unexpected %s, expected one of [%s]",
		e.Token.Pos, found, strings.Join(e.Expected, " "))
}

// Pos returns the position of the offending token.
func (e *UnexpectedTokenError) Pos() predict.Position {
	return e.Token.Pos
}
