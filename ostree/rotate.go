package ostree

// rotateLeft lifts n.right into n's position. Only n and its right child get
// new children, so only these two are pulled; n first, as it is now below.
func rotateLeft[K any](n *node[K]) *node[K] {
	r := n.right
	invariant(r != nil, "rotateLeft called without right child")
	n.right = r.left
	r.left = n
	n.pull()
	r.pull()
	return r
}

// rotateRight is symmetric to rotateLeft.
func rotateRight[K any](n *node[K]) *node[K] {
	l := n.left
	invariant(l != nil, "rotateRight called without left child")
	n.left = l.right
	l.right = n
	n.pull()
	l.pull()
	return l
}

// rebalance recomputes n's metadata and restores the AVL condition for the
// subtree rooted at n, provided its children differ in height by at most 2.
// It returns the new subtree root.
func rebalance[K any](n *node[K]) *node[K] {
	n.pull()
	switch b := n.balance(); {
	case b > 1:
		if n.right.balance() < 0 { // right-left case
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	case b < -1:
		if n.left.balance() > 0 { // left-right case
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}
	return n
}

// retrace rebalances every link on path, deepest first. A link is the
// address of the child pointer (or tree root pointer) which holds a node;
// rotations replace the node behind a link but never move the link itself.
func retrace[K any](path *stack[**node[K]]) {
	for path.len() > 0 {
		link := path.pop()
		*link = rebalance(*link)
	}
}
