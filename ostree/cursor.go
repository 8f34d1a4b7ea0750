package ostree

import "fmt"

// Summary is the augmentation of a subtree: the number of keys and the sum
// of their weights.
type Summary struct {
	Count int
	Sum   int64
}

// Dimension describes a seek dimension over summaries.
//
// D is the dimension's measure type.
type Dimension[D any] interface {
	Zero() D
	Add(acc D, summary Summary) D
	Compare(acc D, target D) int
}

// CountDimension seeks/accumulates by number of keys.
type CountDimension struct{}

// Zero returns 0 keys.
func (CountDimension) Zero() int { return 0 }

// Add adds the key count of summary to the accumulator.
func (CountDimension) Add(acc int, summary Summary) int {
	return acc + summary.Count
}

// Compare compares dimension progress to target.
func (CountDimension) Compare(acc, target int) int {
	switch {
	case acc < target:
		return -1
	case acc > target:
		return 1
	default:
		return 0
	}
}

// WeightDimension seeks/accumulates by weight.
type WeightDimension struct{}

// Zero returns weight 0.
func (WeightDimension) Zero() int64 { return 0 }

// Add adds the weight sum of summary to the accumulator.
func (WeightDimension) Add(acc int64, summary Summary) int64 {
	return acc + summary.Sum
}

// Compare compares dimension progress to target.
func (WeightDimension) Compare(acc, target int64) int {
	switch {
	case acc < target:
		return -1
	case acc > target:
		return 1
	default:
		return 0
	}
}

// Cursor seeks positions in a tree along a given dimension.
type Cursor[K any, D any] struct {
	tree *Tree[K]
	dim  Dimension[D]
}

// NewCursor creates a cursor for a tree and a dimension.
func NewCursor[K any, D any](tree *Tree[K], dim Dimension[D]) (*Cursor[K, D], error) {
	if tree == nil {
		return nil, fmt.Errorf("%w: tree is nil", ErrInvalidConfig)
	}
	if dim == nil {
		return nil, fmt.Errorf("%w: dimension is nil", ErrInvalidDimension)
	}
	return &Cursor[K, D]{
		tree: tree,
		dim:  dim,
	}, nil
}

// Seek finds the lowest rank at which the accumulated dimension, including
// the key at that rank, reaches target. acc is the accumulated value up to
// and including that key.
//
// A target at or below Zero() is reached before the first key and yields
// (0, Zero()); note that Zero() is then not the value including the key at
// rank 0. If the whole tree does not reach target, Seek returns Len() and
// the accumulated value of the whole tree.
//
// A cursor not created by NewCursor fails with ErrInvalidDimension.
func (c *Cursor[K, D]) Seek(target D) (rank int, acc D, err error) {
	if c == nil || c.tree == nil || c.dim == nil {
		var zero D
		return 0, zero, fmt.Errorf("%w: cursor not initialized", ErrInvalidDimension)
	}
	acc = c.dim.Zero()
	if c.dim.Compare(acc, target) >= 0 || c.tree.IsEmpty() {
		return 0, acc, nil
	}
	n := c.tree.root
	for n != nil {
		left := c.dim.Add(acc, n.left.summary())
		if c.dim.Compare(left, target) >= 0 {
			n = n.left
			continue
		}
		self := c.dim.Add(left, n.itemSummary())
		if c.dim.Compare(self, target) >= 0 {
			return rank + countOf(n.left), self, nil
		}
		acc = self
		rank += countOf(n.left) + 1
		n = n.right
	}
	return rank, acc, nil
}
