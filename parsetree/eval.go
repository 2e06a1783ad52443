package parsetree

import (
	"fmt"
)

// ActionError wraps an error returned by a semantic action.
type ActionError struct {
	Node *Node
	Err  error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: action for %v failed: %v", e.Node.Start, e.Node.Production, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// Eval evaluates the tree bottom-up and returns the value of the root node.
// The first error returned by an action aborts the evaluation and is returned
// as an *ActionError.
func (t *Tree) Eval() (interface{}, error) {
	if t.root == NoNode {
		return nil, fmt.Errorf("cannot evaluate empty parse tree")
	}
	return t.EvalNode(t.root)
}

// EvalNode evaluates the sub-tree at node id.
func (t *Tree) EvalNode(id NodeID) (interface{}, error) {
	n := t.Node(id)
	if n == nil {
		return nil, fmt.Errorf("no node %d in parse tree", id)
	}
	switch n.Kind {
	case LeafNode:
		return n.Token.Value(), nil
	case EpsilonNode:
		return nil, nil
	}
	values := make([]interface{}, len(n.children))
	for i, ch := range n.children {
		v, err := t.EvalNode(ch)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	if n.Action == nil {
		return nil, nil
	}
	v, err := n.Action(n, values)
	if err != nil {
		tracer().Errorf("action for %v failed: %v", n.Production, err)
		return nil, &ActionError{Node: n, Err: err}
	}
	tracer().Debugf("%v => %v", n.Production, v)
	return v, nil
}
