/*
Package parsetree implements syntax trees produced by the parsers of package ll.

Trees are stored in an arena: nodes are addressed by NodeID and refer to their
parent and children by ID. There are three kinds of nodes:

■ Leaf nodes wrap an input token.

■ Rule nodes wrap a grammar production. Their children correspond to the
right-hand side of the production.

■ Epsilon nodes are placeholders for the (empty) right-hand side of an epsilon
production. They cover no input.

Leaf and rule nodes know the input region they cover: a byte span, start
and end positions and the raw source text.

Evaluation

Rule nodes may carry a semantic action. Tree.Eval evaluates a tree
bottom-up: every node evaluates its children left to right first, then the
action of the node receives the node and the list of child values.
Leaves evaluate to the value of their token, epsilon nodes and rule nodes without
action evaluate to nil.

	actions := map[int]parsetree.Action{
		1: func(n *parsetree.Node, children []interface{}) (interface{}, error) {
			return children[0].(int) * children[1].(int), nil
		},
	}

Evaluation does not modify the tree, so a tree may be evaluated more than once.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parsetree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.tree'.
func tracer() tracing.Trace {
	return tracing.Select("predict.tree")
}
