package lexmach

import (
	"unicode/utf8"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'predict.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("predict.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.Lexer.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
	rules []scanner.Rule
	kinds []string
}

var _ scanner.Lexer = (*LMAdapter)(nil)

// NewLMAdapter creates a new lexmachine adapter from a list of token rules.
//
// NewLMAdapter will return an error if a rule has no kind, repeats a kind, or if
// compiling the DFA failed.
func NewLMAdapter(rules ...scanner.Rule) (*LMAdapter, error) {
	kinds, err := scanner.CheckRules(rules)
	if err != nil {
		tracer().Errorf(err.Error())
		return nil, err
	}
	adapter := &LMAdapter{
		Lexer: lexmachine.NewLexer(),
		rules: append([]scanner.Rule(nil), rules...),
		kinds: kinds,
	}
	for i, r := range adapter.rules {
		adapter.Lexer.Add([]byte(r.Pattern), makeAction(i, r.Transform))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, &scanner.PatternError{Err: err}
	}
	tracer().Debugf("lexmachine DFA for %d rules", len(rules))
	return adapter, nil
}

// match is what the lexmachine actions hand back to the tokenizer.
type match struct {
	rule   int
	from   int
	to     int
	result scanner.Result
}

// makeAction wraps a transform into a lexmachine action. Discarded matches
// return nil, which makes lexmachine continue scanning.
func makeAction(rule int, tf scanner.Transform) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		result := tf.Apply(string(m.Bytes))
		if result.Discarded() {
			return nil, nil
		}
		return &match{rule: rule, from: m.TC, to: m.TC + len(m.Bytes), result: result}, nil
	}
}

// Kinds is part of the scanner.Lexer interface.
func (lm *LMAdapter) Kinds() []string {
	return append([]string(nil), lm.kinds...)
}

// Tokenize is part of the scanner.Lexer interface.
func (lm *LMAdapter) Tokenize(source string, text string) scanner.Tokenizer {
	t := &LMScanner{
		adapter: lm,
		text:    text,
		lines:   scanner.NewLineIndex(source, text),
	}
	s, err := lm.Lexer.Scanner([]byte(text))
	if err != nil {
		tracer().Errorf("cannot create lexmachine scanner: %v", err)
	}
	t.scanner = s
	return t
}

// LMScanner is a tokenizer for lexmachine scanners, implementing the
// scanner.Tokenizer interface.
type LMScanner struct {
	adapter *LMAdapter
	scanner *lexmachine.Scanner
	text    string
	lines   *scanner.LineIndex
	rest    int  // start of unscanned text if scanner is nil
	done    bool // EOI has been delivered
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// NextToken is part of the scanner.Tokenizer interface.
func (lms *LMScanner) NextToken() (predict.Token, bool) {
	if lms.done {
		return predict.Token{}, false
	}
	if lms.scanner == nil { // no DFA scanner, deliver remaining text as unknown
		if from := lms.rest; from < len(lms.text) {
			lms.rest = len(lms.text)
			return lms.token(predict.Unknown, from, len(lms.text)), true
		}
		lms.done = true
		return lms.token(predict.EOI, len(lms.text), len(lms.text)), true
	}
	tok, err, eos := lms.scanner.Next()
	if err != nil {
		start := lms.scanner.TC
		if ui, is := err.(*machines.UnconsumedInput); is {
			start = ui.StartTC
		} else {
			tracer().Errorf("scanner error: %v", err)
		}
		_, size := utf8.DecodeRuneInString(lms.text[start:])
		lms.scanner.TC = start + size
		unknown := lms.token(predict.Unknown, start, start+size)
		tracer().Debugf("no rule matches at %s: %v", unknown.Pos, unknown)
		return unknown, true
	}
	if eos {
		lms.done = true
		return lms.token(predict.EOI, len(lms.text), len(lms.text)), true
	}
	m := tok.(*match)
	token := lms.token(lms.adapter.rules[m.rule].Kind, m.from, m.to)
	if v, ok := m.result.Value(); ok {
		token = token.WithValue(v)
	}
	return token, true
}

func (lms *LMScanner) token(kind string, from, to int) predict.Token {
	return predict.MakeToken(kind, lms.text[from:to], lms.lines.Position(from),
		predict.Span{uint64(from), uint64(to)})
}
