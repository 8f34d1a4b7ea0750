package ostree

import (
	"cmp"
	"fmt"
	"strings"
)

// Tree is an order-statistics tree over keys of type K.
//
// Every key carries a positive integer weight. Plain sets use weight 1 for
// all keys, weighted sets use arbitrary positive weights.
//
//	Operation                  |  Complexity
//	---------------------------+------------
//	Insert / Remove            |  O(log n)
//	Contains / IndexOf         |  O(log n)
//	ElementAt / RemoveByRank   |  O(log n)
//	Weight updates             |  O(log n)
//	PrefixWeightSum            |  O(log n)
//	RankAtCumulativeWeight     |  O(log n)
//	Set algebra (m items)      |  O((n+m) log n)
type Tree[K any] struct {
	cfg  Config[K]
	root *node[K]
}

// New creates an empty tree with validated configuration.
func New[K any](cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K]{cfg: cfg.normalized()}, nil
}

// NewOrdered creates an empty tree ordering keys by their natural order.
func NewOrdered[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{cfg: OrderedConfig[K]()}
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config[K] {
	return t.cfg
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return countOf(t.root)
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// TotalWeight returns the sum of the weights of all keys.
func (t *Tree[K]) TotalWeight() int64 {
	if t == nil {
		return 0
	}
	return sumOf(t.root)
}

// Height returns the tree height, where 0 means empty and 1 means a single key.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return int(heightOf(t.root))
}

// Summary returns the augmentation of the whole tree.
func (t *Tree[K]) Summary() Summary {
	if t == nil {
		return Summary{}
	}
	return t.root.summary()
}

// Clear removes all keys from the tree.
func (t *Tree[K]) Clear() {
	t.root = nil
}

// Clone returns a deep copy of the tree. Subsequent mutations of either tree
// are not visible in the other.
func (t *Tree[K]) Clone() *Tree[K] {
	if t == nil {
		return nil
	}
	return &Tree[K]{
		cfg:  t.cfg,
		root: cloneNode(t.root),
	}
}

// Min returns the smallest key, if any.
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.key, true
}

// Max returns the largest key, if any.
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, true
}

// String returns a string description of the tree in parenthesized in-order
// notation, e.g. “((1) 3 (4)) 5 (8)”, annotated with weights other than 1.
func (t *Tree[K]) String() string {
	if t.IsEmpty() {
		return "()"
	}
	var b strings.Builder
	writeNode(&b, t.root)
	return b.String()
}

func writeNode[K any](b *strings.Builder, n *node[K]) {
	if n.left != nil {
		b.WriteByte('(')
		writeNode(b, n.left)
		b.WriteString(") ")
	}
	fmt.Fprintf(b, "%v", n.key)
	if n.weight != 1 {
		fmt.Fprintf(b, ":%d", n.weight)
	}
	if n.right != nil {
		b.WriteString(" (")
		writeNode(b, n.right)
		b.WriteByte(')')
	}
}
