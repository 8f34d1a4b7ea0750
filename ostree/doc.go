/*
Package ostree implements an augmented order-statistics tree, the engine behind
the indexed collection types.

The tree is a height-balanced (AVL) binary search tree. Every node carries, in
addition to its key, a positive integer weight and two augmentations which are
maintained across all structural changes:

  - count: the number of keys in the subtree rooted at the node,
  - sum: the sum of the weights of all keys in that subtree.

These augmentations let the tree answer four classes of queries in O(log n):
membership, rank (“how many keys precede this one”), selection (“what is the
k-th smallest key”) and weighted cumulative search (“at which rank does the
running weight sum first reach a threshold”).

Nodes do not store parent links. Mutators record the links they descend
through on an explicit stack and retrace it bottom-up for rebalancing;
iterators keep their own stack of pending ancestors.

Trees are not safe for concurrent mutation. Read-only queries may run
concurrently with each other, but never concurrently with a mutator.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ostree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'indexed'
func tracer() tracing.Trace {
	return tracing.Select("indexed")
}

func invariant(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
