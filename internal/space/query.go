package space

// Walk visits root and its descendants in pre-order. Returning false from fn
// skips the node's subtree.
func Walk(root *Node, fn func(n *Node, depth int) bool) {
	if root == nil {
		return
	}
	walk(root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.children {
		walk(c, depth+1, fn)
	}
}

// Select returns every node in root's subtree, root included, for which pred
// holds, in pre-order.
func Select(root *Node, pred func(*Node) bool) []*Node {
	var out []*Node
	Walk(root, func(n *Node, _ int) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// SelectByKind returns the nodes of the given kind in pre-order.
func SelectByKind(root *Node, kind Kind) []*Node {
	return Select(root, func(n *Node) bool { return n.kind == kind })
}

// SelectAll returns root followed by all its descendants in pre-order.
func SelectAll(root *Node) []*Node {
	return Select(root, func(*Node) bool { return true })
}

// Descendants returns every node below root in pre-order, root excluded.
func Descendants(root *Node) []*Node {
	all := SelectAll(root)
	if len(all) == 0 {
		return nil
	}
	return all[1:]
}

// Count returns the number of nodes in root's subtree, root included.
func Count(root *Node) int {
	total := 0
	Walk(root, func(*Node, int) bool {
		total++
		return true
	})
	return total
}

// Functions returns every function region in the subtree, n included.
func (n *Node) Functions() []*Node { return SelectByKind(n, Function) }

// Classes returns every class region in the subtree, n included.
func (n *Node) Classes() []*Node { return SelectByKind(n, Class) }

// AllSpaces returns n and all its descendants.
func (n *Node) AllSpaces() []*Node { return SelectAll(n) }
