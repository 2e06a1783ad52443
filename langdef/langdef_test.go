package langdef

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/predict/parsetree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const exprDef = `
name: Expressions
tokens:
  - kind: id
    pattern: '[a-z]+'
  - kind: "*"
    pattern: '\*'
  - kind: num
    pattern: '[0-9]+'
    value: int
  - kind: ws
    pattern: '[ \t]+'
    skip: true
grammar: |
  E  -> T E'
  E' -> * T E' | ε
  T  -> id | num
`

const ebnfDef = `
name: Arithmetic
engine: lexmachine
tokens:
  - kind: id
    pattern: '[a-z]+'
  - kind: "+"
    pattern: '\+'
  - kind: "*"
    pattern: '\*'
  - kind: "("
    pattern: '\('
  - kind: ")"
    pattern: '\)'
  - kind: ws
    pattern: '( |\t)+'
    skip: true
ebnf: |
  Expr   = Term { "+" Term } .
  Term   = Factor [ "*" Term ] .
  Factor = id | "(" Expr ")" .
`

func TestLoadDefinition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.langdef")
	defer teardown()
	//
	assert := assert.New(t)
	def, err := Load(strings.NewReader(exprDef))
	if !assert.NoError(err) {
		return
	}
	assert.Equal("Expressions", def.Name)
	assert.Len(def.Tokens, 4)
	assert.Equal("int", def.Tokens[2].Value)
	assert.True(def.Tokens[3].Skip)
	rules, err := def.Rules()
	assert.NoError(err)
	assert.NotNil(rules[2].Transform)
	assert.Nil(rules[0].Transform)
	g, err := def.Grammar()
	if !assert.NoError(err) {
		return
	}
	assert.Equal(5, g.Size())
	assert.Equal("E", g.Start().Name)
}

func TestDefinitionParser(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.langdef")
	defer teardown()
	//
	assert := assert.New(t)
	def, err := Load(strings.NewReader(exprDef))
	if !assert.NoError(err) {
		return
	}
	parser, err := def.Parser(nil)
	if !assert.NoError(err) {
		return
	}
	tree, err := parser.Parse("a * 3 * b")
	if !assert.NoError(err) {
		return
	}
	var values []interface{}
	for _, leaf := range tree.Leaves() {
		values = append(values, leaf.Token.Value())
	}
	assert.Equal([]interface{}{"a", "*", 3, "*", "b"}, values)
	_, err = parser.Parse("a * * b")
	assert.IsType(&ll.UnexpectedTokenError{}, err)
}

func TestEBNFDefinition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.langdef")
	defer teardown()
	//
	assert := assert.New(t)
	def, err := Load(strings.NewReader(ebnfDef))
	if !assert.NoError(err) {
		return
	}
	sum := func(n *parsetree.Node, ch []interface{}) (interface{}, error) {
		var b strings.Builder
		for _, c := range ch {
			if s, ok := c.(string); ok {
				b.WriteString(s)
			}
		}
		return b.String(), nil
	}
	actions := make(map[int]parsetree.Action)
	g, err := def.Grammar()
	if !assert.NoError(err) {
		return
	}
	for _, p := range g.Productions() {
		actions[p.Serial] = sum
	}
	parser, err := def.Parser(actions)
	if !assert.NoError(err) {
		return
	}
	v, err := parser.Evaluate("(a + b) * c")
	assert.NoError(err)
	assert.Equal("(a+b)*c", v)
	_, err = parser.Parse("(a + b")
	assert.IsType(&ll.UnexpectedTokenError{}, err)
}

func TestBadDefinitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.langdef")
	defer teardown()
	//
	assert := assert.New(t)
	bad := []string{
		"",
		"name: [unbalanced",
		"name: X\ngrammar: \"S -> a\"\n",
		"name: X\ntokens:\n  - kind: a\n    pattern: a\n",
		"name: X\nengine: peg\ntokens:\n  - kind: a\n    pattern: a\ngrammar: \"S -> a\"\n",
		"name: X\ntokens:\n  - kind: a\n    pattern: a\ngrammar: \"S -> a\"\nebnf: \"S = a .\"\n",
	}
	for i, text := range bad {
		_, err := Load(strings.NewReader(text))
		assert.Error(err, "definition #%d", i)
	}
	def, err := Load(strings.NewReader("name: X\ntokens:\n  - kind: a\n    pattern: a\n    value: roman\ngrammar: \"S -> a\"\n"))
	if !assert.NoError(err) {
		return
	}
	_, err = def.Lexer()
	assert.Error(err)
	def.Tokens[0].Value = ""
	def.Tokens[0].Pattern = "("
	_, err = def.Parser(nil)
	var perr *scanner.PatternError
	assert.ErrorAs(err, &perr)
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.langdef")
	defer teardown()
	//
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "expr.yaml")
	text := strings.Replace(exprDef, "name: Expressions\n", "", 1)
	if !assert.NoError(os.WriteFile(path, []byte(text), 0644)) {
		return
	}
	def, err := LoadFile(path)
	if !assert.NoError(err) {
		return
	}
	assert.Equal(path, def.Name)
	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(err)
}
