package parsetree

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// builds the tree for "a*b" with grammar
//
//    0: S -> id T
//    1: T -> * id T
//    2: T -> ε
//
func buildTree(t *testing.T, actions map[int]Action) *Tree {
	g, err := grammar.Parse("G", "S -> id T\nT -> * id T | ε")
	if err != nil {
		t.Fatal(err)
	}
	tok := func(kind, lexeme string, offset int) predict.Token {
		pos := predict.Position{Source: "test", Line: 1, Col: offset + 1}
		return predict.MakeToken(kind, lexeme, pos, predict.Span{uint64(offset), uint64(offset + len(lexeme))})
	}
	tree := New("test", "a*b")
	root := tree.AddRule(NoNode, g.Production(0), actions[0])
	tree.AddLeaf(root, tok("id", "a", 0))
	t1 := tree.AddRule(root, g.Production(1), actions[1])
	tree.AddLeaf(t1, tok("*", "*", 1))
	tree.AddLeaf(t1, tok("id", "b", 2))
	t2 := tree.AddRule(t1, g.Production(2), actions[2])
	tree.AddEpsilon(t2)
	tree.Close(t2)
	tree.Close(t1)
	tree.Close(root)
	return tree
}

func TestTreeSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.tree")
	defer teardown()
	//
	tree := buildTree(t, nil)
	tree.Dump()
	if tree.Len() != 7 {
		t.Errorf("expected 7 nodes, have %d", tree.Len())
	}
	root := tree.Node(tree.Root())
	if root.Raw != "a*b" || root.Span != (predict.Span{0, 3}) {
		t.Errorf("expected root to cover 'a*b' (0…3), covers %q %v", root.Raw, root.Span)
	}
	if root.Start.Col != 1 || root.End.Col != 4 {
		t.Errorf("expected root to cover columns 1 to 4, covers %s to %s", root.Start, root.End)
	}
	t1 := tree.Node(root.Children()[1])
	if t1.Raw != "*b" || t1.Start.Col != 2 {
		t.Errorf("expected T to cover '*b' from column 2, covers %q from %s", t1.Raw, t1.Start)
	}
	t2 := tree.Node(t1.Children()[2])
	if t2.HasSpan() {
		t.Errorf("expected epsilon rule not to cover input, covers %v", t2.Span)
	}
	eps := tree.Node(t2.Children()[0])
	if !eps.IsEpsilon() || eps.Parent() != t2.ID() {
		t.Errorf("expected epsilon placeholder below T -> ε, have %v", eps)
	}
}

func TestCursor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.tree")
	defer teardown()
	//
	tree := buildTree(t, nil)
	c := tree.Cursor(NoNode)
	if _, ok := c.Up(); ok {
		t.Errorf("expected root to have no parent")
	}
	n, ok := c.Down()
	if !ok || !n.IsLeaf() || n.Token.Lexeme != "a" {
		t.Fatalf("expected cursor to move down to leaf 'a', is at %v", n)
	}
	n, ok = c.Sibling()
	if !ok || n.Symbol() != grammar.NonTerm("T") {
		t.Fatalf("expected sibling of 'a' to be T, is %v", n)
	}
	if _, ok = c.Sibling(); ok {
		t.Errorf("expected T to be the last child")
	}
	c.Down()
	n, _ = c.Sibling()
	if n.Token.Lexeme != "b" {
		t.Errorf("expected cursor at 'b', is at %v", n)
	}
	n, ok = c.Up()
	if !ok || n.Production.Serial != 1 {
		t.Errorf("expected cursor to move up to T -> * id T, is at %v", n)
	}
	leaves := tree.Leaves()
	if len(leaves) != 3 || leaves[2].Token.Lexeme != "b" {
		t.Errorf("expected leaves a * b, have %v", leaves)
	}
}

func concat(n *Node, children []interface{}) (interface{}, error) {
	s := ""
	for _, ch := range children {
		if ch != nil {
			s += ch.(string)
		}
	}
	return s, nil
}

func TestEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.tree")
	defer teardown()
	//
	tree := buildTree(t, map[int]Action{0: concat, 1: concat})
	v1, err := tree.Eval()
	if err != nil {
		t.Fatal(err)
	}
	if v1 != "a*b" {
		t.Errorf("expected value 'a*b', is %v", v1)
	}
	v2, _ := tree.Eval()
	if v1 != v2 {
		t.Errorf("expected evaluation to be idempotent, have %v and %v", v1, v2)
	}
	tree = buildTree(t, map[int]Action{1: concat})
	if v, _ := tree.Eval(); v != nil {
		t.Errorf("expected root without action to evaluate to nil, is %v", v)
	}
}

func TestEvalError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.tree")
	defer teardown()
	//
	failure := errors.New("failure")
	called := false
	tree := buildTree(t, map[int]Action{
		0: func(n *Node, ch []interface{}) (interface{}, error) {
			called = true
			return nil, nil
		},
		1: func(n *Node, ch []interface{}) (interface{}, error) {
			return nil, fmt.Errorf("cannot multiply: %w", failure)
		},
	})
	_, err := tree.Eval()
	var aerr *ActionError
	if !errors.As(err, &aerr) || !errors.Is(err, failure) {
		t.Fatalf("expected action error wrapping the failure, have %v", err)
	}
	if aerr.Node.Production.Serial != 1 {
		t.Errorf("expected failing node to be T -> * id T, is %v", aerr.Node)
	}
	if called {
		t.Errorf("expected evaluation to stop at the first error")
	}
}

func TestEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.tree")
	defer teardown()
	//
	a, b := buildTree(t, nil), buildTree(t, map[int]Action{0: concat})
	if !Equal(a, b) {
		t.Errorf("expected trees to be equal")
	}
	if Equal(a, New("empty", "")) {
		t.Errorf("expected tree not to equal an empty tree")
	}
}
