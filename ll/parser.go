package ll

import (
	"fmt"
	"os"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/grammar"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/predict/parsetree"
)

// Parser is a predictive parser for an LL(1) grammar. Create and initialize one
// with ll.NewParser(...). Parsers are immutable and may be used for concurrent
// parses.
type Parser struct {
	lexer     scanner.Lexer
	g         *grammar.Grammar
	ga        *LLAnalysis
	table     *Table
	actions   map[int]parsetree.Action
	terminals map[string]bool
}

// NewParser creates a parser from a lexer, a grammar and semantic actions.
// Actions are bound to productions by serial number; actions may be nil.
//
// NewParser returns a *ConfigError if
//
//   - a token kind of the lexer is also a rule of the grammar
//   - a token kind, terminal or rule uses one of the reserved names
//     predict.EOI or predict.Unknown
//   - a terminal of the grammar is not a token kind of the lexer
//   - an action is bound to a production serial not present in the grammar
//
// These checks are performed in this order. If the grammar is not LL(1),
// NewParser returns an *AmbiguityError.
func NewParser(lexer scanner.Lexer, g *grammar.Grammar, actions map[int]parsetree.Action) (*Parser, error) {
	if lexer == nil || g == nil {
		return nil, fmt.Errorf("parser needs a lexer and a grammar")
	}
	kinds := lexer.Kinds()
	if err := checkConfig(kinds, g, actions); err != nil {
		tracer().Errorf(err.Error())
		return nil, err
	}
	p := &Parser{
		lexer:     lexer,
		g:         g,
		ga:        Analysis(g),
		actions:   make(map[int]parsetree.Action, len(actions)),
		terminals: make(map[string]bool),
	}
	for serial, a := range actions {
		p.actions[serial] = a
	}
	for _, a := range g.Terminals() {
		p.terminals[a.Name] = true
	}
	table, err := BuildTable(p.ga)
	if err != nil {
		return nil, err
	}
	p.table = table
	tracer().Infof("LL(1) parser for grammar %s ready", g.Name)
	return p, nil
}

func checkConfig(kinds []string, g *grammar.Grammar, actions map[int]parsetree.Action) error {
	for _, kind := range kinds {
		if g.IsRule(kind) {
			return &ConfigError{Key: kind, Reason: "token kind is also a rule"}
		}
	}
	reserved := func(name string) bool {
		return name == predict.EOI || name == predict.Unknown
	}
	for _, kind := range kinds {
		if reserved(kind) {
			return &ConfigError{Key: kind, Reason: "token kind uses a reserved name"}
		}
	}
	for _, A := range g.Rules() {
		if reserved(A.Name) {
			return &ConfigError{Key: A.Name, Reason: "rule uses a reserved name"}
		}
	}
	for _, a := range g.Terminals() {
		if reserved(a.Name) {
			return &ConfigError{Key: a.Name, Reason: "terminal uses a reserved name"}
		}
	}
	declared := make(map[string]bool, len(kinds))
	for _, kind := range kinds {
		declared[kind] = true
	}
	for _, a := range g.Terminals() {
		if !declared[a.Name] {
			return &ConfigError{Key: a.Name, Reason: "terminal not defined by lexer"}
		}
	}
	for serial := range actions {
		if g.Production(serial) == nil {
			return &ConfigError{Key: fmt.Sprintf("#%d", serial), Reason: "action for unknown production"}
		}
	}
	return nil
}

// Grammar returns the grammar of the parser.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.g
}

// Analysis returns the FIRST/FOLLOW analysis of the parser's grammar.
func (p *Parser) Analysis() *LLAnalysis {
	return p.ga
}

// Table returns the predictive table of the parser.
func (p *Parser) Table() *Table {
	return p.table
}

// Lexer returns the lexer of the parser.
func (p *Parser) Lexer() scanner.Lexer {
	return p.lexer
}

// --- Parse options ---------------------------------------------------------

// ParseOption configures a single parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	start  string
	source string
}

// WithStart parses input as an instance of rule start instead of the start
// symbol of the grammar. The predictive table is not rebuilt, so lookaheads are
// those computed for the grammar's own start symbol.
func WithStart(start string) ParseOption {
	return func(c *parseConfig) {
		c.start = start
	}
}

// WithSource sets the name of the input source, used for positions.
func WithSource(source string) ParseOption {
	return func(c *parseConfig) {
		c.source = source
	}
}

// --- Parsing ---------------------------------------------------------------

// Parse parses input and returns its syntax tree. Parsing stops at the first
// error, which will be an *UnknownTokenError or an *UnexpectedTokenError.
// Input left over behind a complete start symbol is an *UnexpectedTokenError
// expecting EOI.
func (p *Parser) Parse(input string, opts ...ParseOption) (*parsetree.Tree, error) {
	cfg := parseConfig{start: p.g.Start().Name}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !p.g.IsRule(cfg.start) {
		return nil, &ConfigError{Key: cfg.start, Reason: "invalid start symbol"}
	}
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	d := &driver{
		p:      p,
		tokens: p.lexer.Tokenize(cfg.source, input),
		tree:   parsetree.New(cfg.source, input),
	}
	d.advance()
	if err := d.descend(parsetree.NoNode, grammar.NonTerm(cfg.start)); err != nil {
		tracer().Infof("parse failed: %v", err)
		return nil, err
	}
	if !d.tok.IsEOI() {
		err := &UnexpectedTokenError{Token: d.tok, Expected: []string{predict.EOI}}
		tracer().Infof("parse failed: %v", err)
		return nil, err
	}
	return d.tree, nil
}

// ParseFile reads a file and parses its content. The file path is the
// source name, unless WithSource is given.
func (p *Parser) ParseFile(path string, opts ...ParseOption) (*parsetree.Tree, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot parse file: %w", err)
	}
	opts = append([]ParseOption{WithSource(path)}, opts...)
	return p.Parse(string(content), opts...)
}

// Evaluate parses input and evaluates the resulting syntax tree.
func (p *Parser) Evaluate(input string, opts ...ParseOption) (interface{}, error) {
	tree, err := p.Parse(input, opts...)
	if err != nil {
		return nil, err
	}
	return tree.Eval()
}

// driver holds the state of a single parse.
type driver struct {
	p      *Parser
	tokens scanner.Tokenizer
	tok    predict.Token // lookahead
	tree   *parsetree.Tree
}

// advance reads the next token. After EOI the lookahead stays at EOI.
func (d *driver) advance() {
	if tok, ok := d.tokens.NextToken(); ok {
		d.tok = tok
		tracer().Debugf("got token %v from scanner", tok)
	}
}

// descend parses symbol sym and attaches the resulting node to parent.
func (d *driver) descend(parent parsetree.NodeID, sym grammar.Symbol) error {
	tok := d.tok
	switch {
	case sym.IsTerminal() && sym.Name == tok.Kind:
		d.tree.AddLeaf(parent, tok)
		d.advance()
		return nil
	case tok.Kind == predict.Unknown,
		sym.IsTerminal() && !tok.IsEOI() && !d.p.terminals[tok.Kind]:
		return &UnknownTokenError{Token: tok}
	case sym.IsTerminal():
		return &UnexpectedTokenError{Token: tok, Expected: []string{sym.Name}}
	}
	prod, ok := d.p.table.Lookup(sym, tok.Kind)
	if !ok {
		return &UnexpectedTokenError{Token: tok, Expected: d.p.table.Expected(sym)}
	}
	tracer().Debugf("predict %v for %s", prod, tok.Kind)
	node := d.tree.AddRule(parent, prod, d.p.actions[prod.Serial])
	if prod.IsEpsilon() {
		d.tree.AddEpsilon(node)
	} else {
		for _, X := range prod.RHS() {
			if err := d.descend(node, X); err != nil {
				return err
			}
		}
	}
	d.tree.Close(node)
	return nil
}
