package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/predict/grammar"
	"github.com/npillmayer/predict/langdef"
	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/predict/parsetree"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// We provide a simple expression language as a default.
//
//  E  ➞ T E'
//  E' ➞ + T E'  |  ε
//  T  ➞ F T'
//  T' ➞ * F T'  |  ε
//  F  ➞ num  |  id  |  ( E )
//
func exprDefinition() *langdef.Definition {
	return &langdef.Definition{
		Name: "Expr",
		Tokens: []langdef.TokenSpec{
			{Kind: "num", Pattern: `[0-9]+`, Value: "int"},
			{Kind: "id", Pattern: `[A-Za-z_][A-Za-z_0-9]*`},
			{Kind: "+", Pattern: `\+`},
			{Kind: "*", Pattern: `\*`},
			{Kind: "(", Pattern: `\(`},
			{Kind: ")", Pattern: `\)`},
			{Kind: "ws", Pattern: `[ \t]+`, Skip: true},
		},
		Productions: `
			E  -> T E'
			E' -> + T E' | ε
			T  -> F T'
			T' -> * F T' | ε
			F  -> num | id | ( E )
		`,
	}
}

// main() starts an interactive CLI ("LL.REPL"), where users may enter input for
// an LL(1) language. LL.REPL parses each line and prints the syntax tree.
// It is intended as a sandbox for the development of language definitions.
//
// Please refer to packages "langdef" and "ll".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	deff := flag.String("def", "", "YAML language definition")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to LL.REPL")  // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up language definition and parser
	def := exprDefinition()
	if *deff != "" {
		var err error
		if def, err = langdef.LoadFile(*deff); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
	}
	parser, err := def.Parser(nil)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	parser.Grammar().Dump()                     // only visible in debug mode
	//
	// set up REPL
	repl, err := readline.New("llrepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{
		parser: parser,
		repl:   repl,
	}
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		intp.Eval(input)
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	parser    *ll.Parser
	repl      *readline.Instance
	lastInput string
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Eval(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or parses a line of input. It returns true if the
// user wants to quit.
func (intp *Intp) Eval(line string) bool {
	if !strings.HasPrefix(line, ":") {
		intp.parse(line)
		return false
	}
	args := strings.Fields(line)
	arg := strings.TrimSpace(strings.TrimPrefix(line, args[0]))
	switch args[0] {
	case ":quit", ":q":
		return true
	case ":tokens":
		intp.tokens(arg)
	case ":first":
		intp.symbolSet("FIRST", arg, intp.parser.Analysis().First)
	case ":follow":
		intp.symbolSet("FOLLOW", arg, func(seq ...grammar.Symbol) *grammar.SymbolSet {
			return intp.parser.Analysis().Follow(seq[0])
		})
	case ":table":
		intp.table()
	case ":html":
		intp.html(arg)
	case ":grammar":
		pterm.Println(intp.parser.Grammar().String())
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command %s", args[0]))
	}
	return false
}

func (intp *Intp) parse(input string) {
	intp.lastInput = input
	tree, err := intp.parser.Parse(input, ll.WithSource("input"))
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	tracer().Infof("Successfully parsed input")
	root := pterm.NewTreeFromLeveledList(leveledTree(tree))
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledTree(tree *parsetree.Tree) pterm.LeveledList {
	list := pterm.LeveledList{}
	parsetree.Walk(tree, func(n *parsetree.Node, depth int) bool {
		text := n.String()
		if n.IsLeaf() && n.Token.Transformed() {
			text = fmt.Sprintf("%s = %v", text, n.Token.Value())
		}
		list = append(list, pterm.LeveledListItem{Level: depth, Text: text})
		return true
	})
	tracer().Debugf("|ll| = %d", len(list))
	return list
}

func (intp *Intp) tokens(text string) {
	if text == "" {
		text = intp.lastInput
	}
	for _, tok := range scanner.Collect(intp.parser.Lexer().Tokenize("input", text)) {
		pterm.Println(fmt.Sprintf("%-8s %-12q %s", tok.Kind, tok.Lexeme, tok.Pos))
	}
}

func (intp *Intp) symbolSet(which string, rule string,
	set func(...grammar.Symbol) *grammar.SymbolSet) {
	//
	if !intp.parser.Grammar().IsRule(rule) {
		pterm.Error.Println(fmt.Sprintf("not a rule: %q", rule))
		return
	}
	A := grammar.NonTerm(rule)
	pterm.Info.Println(fmt.Sprintf("%s(%s) = %s", which, A, set(A)))
}

func (intp *Intp) table() {
	t := intp.parser.Table()
	t.Each(func(A, a grammar.Symbol, p *grammar.Production) {
		pterm.Println(fmt.Sprintf("[%s, %s] = %d: %s", A, a, p.Serial, p))
	})
	pterm.Info.Println(fmt.Sprintf("%d entries", t.Size()))
}

func (intp *Intp) html(path string) {
	if path == "" {
		pterm.Error.Println("usage: :html <file>")
		return
	}
	f, err := os.Create(path)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	defer f.Close()
	if err = ll.TableAsHTML(intp.parser.Table(), f); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println(fmt.Sprintf("table written to %s", path))
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
