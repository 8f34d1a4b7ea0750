package ostree

import "math"

// node is a tree node. It exclusively owns its children.
type node[K any] struct {
	key    K
	weight int64
	left   *node[K]
	right  *node[K]
	height int32
	// count is the number of keys in this subtree, including this node.
	count int
	// sum is the total weight of this subtree, including this node.
	sum int64
}

func newNode[K any](key K, weight int64) *node[K] {
	return &node[K]{
		key:    key,
		weight: weight,
		height: 1,
		count:  1,
		sum:    weight,
	}
}

func heightOf[K any](n *node[K]) int32 {
	if n == nil {
		return 0
	}
	return n.height
}

func countOf[K any](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.count
}

func sumOf[K any](n *node[K]) int64 {
	if n == nil {
		return 0
	}
	return n.sum
}

// pull recomputes the metadata of n from its children, which must already
// be correct.
func (n *node[K]) pull() {
	n.height = 1 + max(heightOf(n.left), heightOf(n.right))
	n.count = 1 + countOf(n.left) + countOf(n.right)
	n.sum = n.weight + sumOf(n.left) + sumOf(n.right)
}

// balance is height(right) - height(left).
func (n *node[K]) balance() int {
	return int(heightOf(n.right) - heightOf(n.left))
}

// summary returns the augmentation of the subtree rooted at n.
func (n *node[K]) summary() Summary {
	if n == nil {
		return Summary{}
	}
	return Summary{Count: n.count, Sum: n.sum}
}

// itemSummary returns the augmentation of n's own key, without children.
func (n *node[K]) itemSummary() Summary {
	return Summary{Count: 1, Sum: n.weight}
}

func cloneNode[K any](n *node[K]) *node[K] {
	if n == nil {
		return nil
	}
	c := *n
	c.left = cloneNode(n.left)
	c.right = cloneNode(n.right)
	return &c
}

// addWeight adds two non-negative weights. It reports false if the sum
// exceeds math.MaxInt64.
func addWeight(a, b int64) (int64, bool) {
	if b > math.MaxInt64-a {
		return 0, false
	}
	return a + b, true
}
