package parsetree

// A Cursor is a movable mark within a parse tree, intended for navigating over
// nodes. Moving a cursor never modifies the tree.
type Cursor struct {
	tree    *Tree
	current NodeID
}

// Cursor sets up a cursor at node id. If id is NoNode, the cursor will be set
// up at the root node. It returns nil for an empty tree.
func (t *Tree) Cursor(id NodeID) *Cursor {
	if id == NoNode {
		id = t.root
	}
	if t.Node(id) == nil {
		return nil
	}
	return &Cursor{tree: t, current: id}
}

// Node returns the node the cursor is currently at.
func (c *Cursor) Node() *Node {
	return c.tree.Node(c.current)
}

// Up moves the cursor up to the parent node of the current node, if any.
func (c *Cursor) Up() (*Node, bool) {
	parent := c.tree.nodes[c.current].parent
	if parent == NoNode {
		return c.Node(), false
	}
	c.current = parent
	tracer().Debugf("UP Cursor @ %v", c.Node())
	return c.Node(), true
}

// Down moves the cursor down to the leftmost child of the current node, if any.
func (c *Cursor) Down() (*Node, bool) {
	children := c.tree.nodes[c.current].children
	if len(children) == 0 {
		return c.Node(), false
	}
	c.current = children[0]
	tracer().Debugf("DOWN Cursor @ %v", c.Node())
	return c.Node(), true
}

// Sibling moves the cursor to the next sibling of the current node, if any.
func (c *Cursor) Sibling() (*Node, bool) {
	parent := c.tree.nodes[c.current].parent
	if parent == NoNode {
		return c.Node(), false
	}
	siblings := c.tree.nodes[parent].children
	for i, ch := range siblings {
		if ch == c.current && i+1 < len(siblings) {
			c.current = siblings[i+1]
			tracer().Debugf("SIBLING Cursor @ %v", c.Node())
			return c.Node(), true
		}
	}
	return c.Node(), false
}

// Walk traverses a tree top-down and left to right, calling visit for every node
// together with its depth. If visit returns false, the children of the node
// are skipped.
func Walk(t *Tree, visit func(n *Node, depth int) bool) {
	if t.root == NoNode {
		return
	}
	walk(t, t.root, 0, visit)
}

func walk(t *Tree, id NodeID, depth int, visit func(*Node, int) bool) {
	n := &t.nodes[id]
	if !visit(n, depth) {
		return
	}
	for _, ch := range n.children {
		walk(t, ch, depth+1, visit)
	}
}

// Leaves returns the leaf nodes of t, left to right.
func (t *Tree) Leaves() []*Node {
	var leaves []*Node
	Walk(t, func(n *Node, depth int) bool {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
		return true
	})
	return leaves
}

// Equal is true if two trees have the same shape, the same productions
// at their rule nodes and tokens of the same kind and lexeme at their leaves.
func Equal(a, b *Tree) bool {
	if a.root == NoNode || b.root == NoNode {
		return a.root == b.root
	}
	return equalNodes(a, a.root, b, b.root)
}

func equalNodes(a *Tree, x NodeID, b *Tree, y NodeID) bool {
	n, m := &a.nodes[x], &b.nodes[y]
	if n.Kind != m.Kind || len(n.children) != len(m.children) {
		return false
	}
	switch n.Kind {
	case LeafNode:
		if n.Token.Kind != m.Token.Kind || n.Token.Lexeme != m.Token.Lexeme {
			return false
		}
	case RuleNode:
		if n.Production.Serial != m.Production.Serial || !n.Production.Equal(m.Production) {
			return false
		}
	}
	for i := range n.children {
		if !equalNodes(a, n.children[i], b, m.children[i]) {
			return false
		}
	}
	return true
}
