package langdef

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/predict/grammar"
	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/predict/ll/scanner/lexmach"
	"github.com/npillmayer/predict/parsetree"
	"gopkg.in/yaml.v3"
)

// Scanner engines.
const (
	EngineRegexp     = "regexp"
	EngineLexmachine = "lexmachine"
)

// Definition is a language definition as read from YAML.
type Definition struct {
	Name        string      `yaml:"name"`
	Start       string      `yaml:"start,omitempty"`
	Engine      string      `yaml:"engine,omitempty"`
	Tokens      []TokenSpec `yaml:"tokens"`
	Productions string      `yaml:"grammar,omitempty"` // line-oriented grammar text
	EBNF        string      `yaml:"ebnf,omitempty"`
}

// TokenSpec describes a single token rule.
type TokenSpec struct {
	Kind    string `yaml:"kind"`
	Pattern string `yaml:"pattern"`
	Value   string `yaml:"value,omitempty"` // name of a transform
	Skip    bool   `yaml:"skip,omitempty"`
}

// Load reads a language definition from r.
func Load(r io.Reader) (*Definition, error) {
	def := &Definition{}
	if err := yaml.NewDecoder(r).Decode(def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("language definition is empty")
		}
		return nil, fmt.Errorf("cannot decode language definition: %w", err)
	}
	if err := def.check(); err != nil {
		return nil, err
	}
	tracer().Infof("loaded language definition %s with %d token rules", def.Name, len(def.Tokens))
	return def, nil
}

// LoadFile reads a language definition from a YAML file.
func LoadFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open language definition: %w", err)
	}
	defer f.Close()
	def, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if def.Name == "" {
		def.Name = path
	}
	return def, nil
}

func (def *Definition) check() error {
	switch strings.ToLower(def.Engine) {
	case "", EngineRegexp, EngineLexmachine:
	default:
		return fmt.Errorf("unknown scanner engine %q", def.Engine)
	}
	if len(def.Tokens) == 0 {
		return errors.New("language definition has no tokens")
	}
	if (def.Productions == "") == (def.EBNF == "") {
		return errors.New("language definition needs exactly one of 'grammar' or 'ebnf'")
	}
	return nil
}

// Rules returns the token rules of def.
func (def *Definition) Rules() ([]scanner.Rule, error) {
	rules := make([]scanner.Rule, len(def.Tokens))
	for i, spec := range def.Tokens {
		tf, err := scanner.TransformByName(spec.Value)
		if err != nil {
			return nil, fmt.Errorf("token %s: %w", spec.Kind, err)
		}
		if spec.Skip {
			tf = scanner.Skip
		}
		rules[i] = scanner.Rule{Kind: spec.Kind, Pattern: spec.Pattern, Transform: tf}
	}
	return rules, nil
}

// Lexer creates a lexer for the token rules of def, using the selected engine.
func (def *Definition) Lexer() (scanner.Lexer, error) {
	rules, err := def.Rules()
	if err != nil {
		return nil, err
	}
	var lexer scanner.Lexer
	if strings.ToLower(def.Engine) == EngineLexmachine {
		lexer, err = lexmach.NewLMAdapter(rules...)
	} else {
		lexer, err = scanner.NewRegexpLexer(rules...)
	}
	if err != nil {
		return nil, fmt.Errorf("language %s: %w", def.Name, err)
	}
	return lexer, nil
}

// Grammar creates the grammar of def.
func (def *Definition) Grammar() (*grammar.Grammar, error) {
	if def.EBNF != "" {
		return grammar.FromEBNF(def.Name, strings.NewReader(def.EBNF), def.Start)
	}
	return grammar.ParseStart(def.Name, def.Productions, def.Start)
}

// Parser creates an LL(1) parser for def. Actions are bound to productions
// by serial number, as with ll.NewParser.
func (def *Definition) Parser(actions map[int]parsetree.Action) (*ll.Parser, error) {
	lexer, err := def.Lexer()
	if err != nil {
		return nil, err
	}
	g, err := def.Grammar()
	if err != nil {
		return nil, err
	}
	return ll.NewParser(lexer, g, actions)
}
