package ostree

import "iter"

// All returns an iterator over all keys in ascending order.
//
// The sequence may be ranged over repeatedly. The tree must not be modified
// while a range over it is in progress.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range t.Entries() {
			if !yield(key) {
				return
			}
		}
	}
}

// Entries returns an iterator over all keys and their weights in ascending
// key order.
func (t *Tree[K]) Entries() iter.Seq2[K, int64] {
	return func(yield func(K, int64) bool) {
		if t.IsEmpty() {
			return
		}
		var pending stack[*node[K]]
		n := t.root
		for n != nil || pending.len() > 0 {
			for n != nil {
				pending.push(n)
				n = n.left
			}
			n = pending.pop()
			if !yield(n.key, n.weight) {
				return
			}
			n = n.right
		}
	}
}

// ForEach walks keys and weights in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[K]) ForEach(fn func(key K, weight int64) bool) {
	if fn == nil {
		return
	}
	for key, weight := range t.Entries() {
		if !fn(key, weight) {
			return
		}
	}
}

// Iterator is a positional iterator over a tree. It is not safe to continue
// using an Iterator after the tree has been modified.
//
//	it := tree.MakeIter()
//	for it.Nth(10); it.Valid(); it.Next() {
//	    fmt.Println(it.Rank(), it.Key())
//	}
type Iterator[K any] struct {
	tree *Tree[K]
	// pending holds ancestors of cur which are visited after cur.
	pending stack[*node[K]]
	cur     *node[K]
	rank    int
}

// MakeIter returns a new, unpositioned iterator.
func (t *Tree[K]) MakeIter() Iterator[K] {
	return Iterator[K]{tree: t}
}

// First positions the iterator at the smallest key.
func (it *Iterator[K]) First() {
	it.pending.reset()
	it.rank = 0
	if it.tree != nil {
		it.pushLeftSpine(it.tree.root)
	}
	it.advance()
}

// Nth positions the iterator at rank i. The iterator is invalid if i is out
// of range.
func (it *Iterator[K]) Nth(i int) {
	it.pending.reset()
	it.cur = nil
	if it.tree == nil || i < 0 || i >= it.tree.Len() {
		return
	}
	it.rank = i
	n := it.tree.root
	for {
		lc := countOf(n.left)
		switch {
		case i < lc:
			it.pending.push(n)
			n = n.left
		case i == lc:
			it.cur = n
			it.pushLeftSpine(n.right)
			return
		default:
			i -= lc + 1
			n = n.right
		}
	}
}

// Next moves the iterator to the next key in order.
func (it *Iterator[K]) Next() {
	it.rank++
	it.advance()
}

// Valid reports whether the iterator is positioned at a key.
func (it *Iterator[K]) Valid() bool { return it.cur != nil }

// Key returns the key at the current position.
func (it *Iterator[K]) Key() K { return it.cur.key }

// Weight returns the weight of the key at the current position.
func (it *Iterator[K]) Weight() int64 { return it.cur.weight }

// Rank returns the rank of the current position.
func (it *Iterator[K]) Rank() int { return it.rank }

func (it *Iterator[K]) pushLeftSpine(n *node[K]) {
	for ; n != nil; n = n.left {
		it.pending.push(n)
	}
}

func (it *Iterator[K]) advance() {
	if it.pending.len() == 0 {
		it.cur = nil
		return
	}
	it.cur = it.pending.pop()
	it.pushLeftSpine(it.cur.right)
}

// NodeInfo describes a tree node, for diagnostics and rendering.
type NodeInfo[K any] struct {
	Key     K
	Weight  int64
	Count   int   // keys in the subtree
	Sum     int64 // weight of the subtree
	Height  int
	Balance int // height(right) - height(left)
	Depth   int // 0 for the root
	Rank    int
}

// Walk visits all nodes in-order and reports their structural metadata.
//
// Walk stops early if callback returns false.
func (t *Tree[K]) Walk(fn func(info NodeInfo[K]) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	walkNode(t.root, 0, 0, fn)
}

func walkNode[K any](n *node[K], depth, base int, fn func(NodeInfo[K]) bool) bool {
	if n == nil {
		return true
	}
	if !walkNode(n.left, depth+1, base, fn) {
		return false
	}
	info := NodeInfo[K]{
		Key:     n.key,
		Weight:  n.weight,
		Count:   n.count,
		Sum:     n.sum,
		Height:  int(n.height),
		Balance: n.balance(),
		Depth:   depth,
		Rank:    base + countOf(n.left),
	}
	if !fn(info) {
		return false
	}
	return walkNode(n.right, depth+1, info.Rank+1, fn)
}
