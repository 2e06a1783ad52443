package parsetree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/grammar"
)

// NodeID addresses a node within its tree.
type NodeID int

// NoNode is the parent of the root node.
const NoNode NodeID = -1

// NodeKind tags tree nodes.
type NodeKind int8

// Kinds of tree nodes
const (
	LeafNode NodeKind = iota
	RuleNode
	EpsilonNode
)

func (k NodeKind) String() string {
	switch k {
	case LeafNode:
		return "leaf"
	case RuleNode:
		return "rule"
	}
	return "epsilon"
}

// Action is a semantic action bound to a production. It receives the rule node
// and the values of the node's children, in order.
type Action func(n *Node, children []interface{}) (interface{}, error)

// Node is a node of a syntax tree.
type Node struct {
	Kind       NodeKind
	Token      predict.Token       // for leaf nodes
	Production *grammar.Production // for rule nodes
	Action     Action              // for rule nodes, may be nil
	Span       predict.Span        // byte offsets of the input covered
	Start, End predict.Position    // input covered, End is just behind the last byte
	Raw        string              // input text covered
	id         NodeID
	parent     NodeID
	children   []NodeID
	covered    bool // node covers input
}

// ID returns the ID of n within its tree.
func (n *Node) ID() NodeID {
	return n.id
}

// Parent returns the ID of the parent of n, or NoNode.
func (n *Node) Parent() NodeID {
	return n.parent
}

// Children returns the IDs of the children of n.
func (n *Node) Children() []NodeID {
	return append([]NodeID(nil), n.children...)
}

// ChildCount returns the number of children of n.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// HasSpan is false for epsilon nodes and for rule nodes covering only epsilon nodes.
func (n *Node) HasSpan() bool {
	return n.covered
}

func (n *Node) IsLeaf() bool {
	return n.Kind == LeafNode
}

func (n *Node) IsEpsilon() bool {
	return n.Kind == EpsilonNode
}

func (n *Node) IsRule() bool {
	return n.Kind == RuleNode
}

// Symbol returns the grammar symbol a node stands for: the terminal for leaves,
// the LHS of the production for rule nodes, and epsilon for epsilon nodes.
func (n *Node) Symbol() grammar.Symbol {
	switch n.Kind {
	case LeafNode:
		return grammar.Term(n.Token.Kind)
	case RuleNode:
		return n.Production.LHS
	}
	return grammar.Epsilon
}

func (n *Node) String() string {
	switch n.Kind {
	case LeafNode:
		return fmt.Sprintf("%s %q", n.Token.Kind, n.Token.Lexeme)
	case RuleNode:
		return n.Production.String()
	}
	return grammar.Epsilon.Name
}

// --- Tree ------------------------------------------------------------------

// Tree is a syntax tree. Trees are built by parsers, clients usually only
// navigate and evaluate them.
type Tree struct {
	Source string // name of the input source
	text   string // input text
	nodes  []Node
	root   NodeID
}

// New creates an empty tree for an input text.
func New(source string, text string) *Tree {
	return &Tree{
		Source: source,
		text:   text,
		nodes:  make([]Node, 0, 64),
		root:   NoNode,
	}
}

// Root returns the ID of the root node, or NoNode for an empty tree.
func (t *Tree) Root() NodeID {
	return t.root
}

// Node returns the node for an ID, or nil.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// Len returns the number of nodes of t.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Text returns the input text the tree has been built for.
func (t *Tree) Text() string {
	return t.text
}

func (t *Tree) add(parent NodeID, n Node) NodeID {
	id := NodeID(len(t.nodes))
	n.id = id
	n.parent = parent
	if parent == NoNode {
		if t.root != NoNode {
			panic("parse tree already has a root node")
		}
		t.root = id
	}
	t.nodes = append(t.nodes, n) // may move nodes, parent is looked up afterwards
	if parent != NoNode {
		p := &t.nodes[parent]
		p.children = append(p.children, id)
	}
	return id
}

// AddLeaf adds a leaf for token tok as the last child of parent.
func (t *Tree) AddLeaf(parent NodeID, tok predict.Token) NodeID {
	n := Node{
		Kind:    LeafNode,
		Token:   tok,
		Span:    tok.Span,
		Start:   tok.Pos,
		Raw:     tok.Lexeme,
		covered: true,
	}
	n.End = t.endPosition(tok.Pos, tok.Lexeme)
	return t.add(parent, n)
}

// AddRule adds a rule node for production p as the last child of parent.
// Use NoNode as parent for the root node.
func (t *Tree) AddRule(parent NodeID, p *grammar.Production, action Action) NodeID {
	return t.add(parent, Node{
		Kind:       RuleNode,
		Production: p,
		Action:     action,
	})
}

// AddEpsilon adds an epsilon placeholder as the last child of parent.
func (t *Tree) AddEpsilon(parent NodeID) NodeID {
	return t.add(parent, Node{Kind: EpsilonNode})
}

// Close computes the input region of a rule node from its first and last child
// covering input. It should be called after all children of id have been added
// and closed.
func (t *Tree) Close(id NodeID) {
	n := t.Node(id)
	if n == nil || n.Kind != RuleNode {
		return
	}
	var first, last *Node
	for _, ch := range n.children {
		if c := &t.nodes[ch]; c.covered {
			if first == nil {
				first = c
			}
			last = c
		}
	}
	if first == nil {
		return
	}
	n.covered = true
	n.Span = predict.Span{first.Span.From(), last.Span.To()}
	n.Start, n.End = first.Start, last.End
	if n.Span.To() <= uint64(len(t.text)) {
		n.Raw = t.text[n.Span.From():n.Span.To()]
	}
}

// endPosition is the position just behind lexeme, starting at pos.
func (t *Tree) endPosition(pos predict.Position, lexeme string) predict.Position {
	end := pos
	if nl := strings.LastIndexByte(lexeme, '\n'); nl >= 0 {
		end.Line += strings.Count(lexeme, "\n")
		end.Col = len([]rune(lexeme[nl+1:])) + 1
		return end
	}
	end.Col += len([]rune(lexeme))
	return end
}

// String renders a tree in an indented form, one node per line.
func (t *Tree) String() string {
	var b strings.Builder
	Walk(t, func(n *Node, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(n.String())
		b.WriteByte('\n')
		return true
	})
	return b.String()
}

// Dump is a debugging helper, tracing the tree.
func (t *Tree) Dump() {
	Walk(t, func(n *Node, depth int) bool {
		tracer().Debugf("%s%v  %s", strings.Repeat(". ", depth), n, n.Span)
		return true
	})
}
