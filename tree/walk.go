package tree

// Walk visits the nodes of a tree depth-first, starting at the roots, every
// mother before its daughters. The visitor receives the depth of a node, with
// roots at depth 0. If the visitor returns an error, the walk stops and
// Walk returns this error.
func (t *Tree) Walk(visit func(n *Node, depth int) error) error {
	type frame struct {
		node  *Node
		depth int
	}
	roots := t.Roots()
	stack := make([]frame, 0, len(roots)+8)
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{roots[i], 0})
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := visit(top.node, top.depth); err != nil {
			return err
		}
		for i := len(top.node.Daughters) - 1; i >= 0; i-- {
			stack = append(stack, frame{top.node.Daughters[i], top.depth + 1})
		}
	}
	return nil
}
