package ostree

import "fmt"

// RemoveByKey removes key from the tree. It returns false if key was not
// present, in which case the tree is unchanged.
func (t *Tree[K]) RemoveByKey(key K) bool {
	var path stack[**node[K]]
	link := t.descend(key, &path)
	if *link == nil {
		return false
	}
	t.unlink(link, &path)
	return true
}

// RemoveByRank removes the key at rank and returns it.
//
// If rank is outside of [0, Len()), ErrIndexOutOfRange is returned and the
// tree is unchanged.
func (t *Tree[K]) RemoveByRank(rank int) (K, error) {
	var zero K
	if rank < 0 || rank >= t.Len() {
		return zero, fmt.Errorf("%w: rank %d, size %d", ErrIndexOutOfRange, rank, t.Len())
	}
	var path stack[**node[K]]
	link := &t.root
	for {
		n := *link
		invariant(n != nil, "RemoveByRank descended below a leaf")
		lc := countOf(n.left)
		switch {
		case rank < lc:
			path.push(link)
			link = &n.left
		case rank == lc:
			key := n.key
			t.unlink(link, &path)
			return key, nil
		default:
			rank -= lc + 1
			path.push(link)
			link = &n.right
		}
	}
}

// unlink removes the node behind link. path holds the links of all of its
// ancestors and is consumed for rebalancing.
//
// A node with two children is not relinked. Instead it takes over key and
// weight of its in-order successor, which has at most one child and is
// spliced out in its place.
func (t *Tree[K]) unlink(link **node[K], path *stack[**node[K]]) {
	n := *link
	switch {
	case n.left == nil:
		*link = n.right
	case n.right == nil:
		*link = n.left
	default:
		path.push(link)
		succ := &n.right
		for (*succ).left != nil {
			path.push(succ)
			succ = &(*succ).left
		}
		n.key, n.weight = (*succ).key, (*succ).weight
		*succ = (*succ).right
	}
	retrace(path)
}
