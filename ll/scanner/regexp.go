package scanner

import (
	"regexp"
	"unicode/utf8"

	"github.com/npillmayer/predict"
)

// RegexpLexer is a longest-match lexer backed by package regexp. Create one
// with NewRegexpLexer.
type RegexpLexer struct {
	rules []compiledRule
	kinds []string
}

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

var _ Lexer = (*RegexpLexer)(nil)

// NewRegexpLexer compiles a list of token rules. Patterns use RE2 syntax and
// are anchored at the current input position. Rules are tried in order; among
// rules with a match the longest match wins, ties go to the earlier rule.
//
// NewRegexpLexer returns a PatternError for a pattern which does not compile,
// for empty kinds and for kinds declared twice.
func NewRegexpLexer(rules ...Rule) (*RegexpLexer, error) {
	kinds, err := CheckRules(rules)
	if err != nil {
		tracer().Errorf(err.Error())
		return nil, err
	}
	lexer := &RegexpLexer{kinds: kinds}
	for _, r := range rules {
		re, err := compileAnchored(r.Pattern)
		if err != nil {
			perr := &PatternError{Kind: r.Kind, Pattern: r.Pattern, Err: err}
			tracer().Errorf(perr.Error())
			return nil, perr
		}
		lexer.rules = append(lexer.rules, compiledRule{Rule: r, re: re})
	}
	tracer().Debugf("regexp lexer with %d rules", len(lexer.rules))
	return lexer, nil
}

// compileAnchored compiles pattern anchored at the start of input.
// The bare pattern has to compile as well.
func compileAnchored(pattern string) (*regexp.Regexp, error) {
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, err
	}
	return regexp.Compile(`\A(?:` + pattern + `)`)
}

// Kinds is part of the Lexer interface.
func (lexer *RegexpLexer) Kinds() []string {
	return append([]string(nil), lexer.kinds...)
}

// Tokenize is part of the Lexer interface.
func (lexer *RegexpLexer) Tokenize(source string, text string) Tokenizer {
	return &regexpTokenizer{
		lexer: lexer,
		text:  text,
		lines: NewLineIndex(source, text),
	}
}

// longestMatch returns the index of the winning rule and the length of its
// match at the start of input, or (-1, 0).
func (lexer *RegexpLexer) longestMatch(input string) (int, int) {
	winner, length := -1, 0
	for i, r := range lexer.rules {
		loc := r.re.FindStringIndex(input)
		if loc != nil && loc[0] == 0 && loc[1] > length { // empty matches never win
			winner, length = i, loc[1]
		}
	}
	return winner, length
}

type regexpTokenizer struct {
	lexer *RegexpLexer
	text  string
	pos   int // byte offset of next token
	lines *LineIndex
	done  bool // EOI has been delivered
}

func (t *regexpTokenizer) NextToken() (predict.Token, bool) {
	for t.pos < len(t.text) {
		input := t.text[t.pos:]
		start := t.pos
		winner, length := t.lexer.longestMatch(input)
		if winner < 0 {
			_, size := utf8.DecodeRuneInString(input)
			t.pos += size
			tok := t.token(predict.Unknown, start, t.pos)
			tracer().Debugf("no rule matches at %s: %v", tok.Pos, tok)
			return tok, true
		}
		t.pos += length
		rule := t.lexer.rules[winner]
		result := rule.Transform.Apply(input[:length])
		if result.Discarded() {
			continue
		}
		tok := t.token(rule.Kind, start, t.pos)
		if v, ok := result.Value(); ok {
			tok = tok.WithValue(v)
		}
		return tok, true
	}
	if t.done {
		return predict.Token{}, false
	}
	t.done = true
	return t.token(predict.EOI, t.pos, t.pos), true
}

func (t *regexpTokenizer) token(kind string, from, to int) predict.Token {
	return predict.MakeToken(kind, t.text[from:to], t.lines.Position(from),
		predict.Span{uint64(from), uint64(to)})
}
