package ostree

import "fmt"

// Contains reports whether key is present.
func (t *Tree[K]) Contains(key K) bool {
	return t.lookup(key) != nil
}

// Weight returns the weight of key. ok is false if key is absent.
func (t *Tree[K]) Weight(key K) (weight int64, ok bool) {
	if n := t.lookup(key); n != nil {
		return n.weight, true
	}
	return 0, false
}

func (t *Tree[K]) lookup(key K) *node[K] {
	if t == nil {
		return nil
	}
	n := t.root
	for n != nil {
		c := t.cfg.Compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// IndexOf returns the rank of key, i.e. its zero-based position in sorted
// order, or -1 if key is absent.
func (t *Tree[K]) IndexOf(key K) int {
	rank, found := t.rankOf(key)
	if !found {
		return -1
	}
	return rank
}

// Rank returns the number of keys ordering strictly before key. Key need not
// be present. For present keys, Rank equals IndexOf.
func (t *Tree[K]) Rank(key K) int {
	rank, _ := t.rankOf(key)
	return rank
}

func (t *Tree[K]) rankOf(key K) (rank int, found bool) {
	if t == nil {
		return 0, false
	}
	n := t.root
	for n != nil {
		c := t.cfg.Compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			rank += countOf(n.left) + 1
			n = n.right
		default:
			return rank + countOf(n.left), true
		}
	}
	return rank, false
}

// ElementAt returns the key at rank. If rank is outside of [0, Len()),
// ErrIndexOutOfRange is returned.
func (t *Tree[K]) ElementAt(rank int) (K, error) {
	n, err := t.nodeAt(rank)
	if err != nil {
		var zero K
		return zero, err
	}
	return n.key, nil
}

// EntryAt returns key and weight at rank. If rank is outside of [0, Len()),
// ErrIndexOutOfRange is returned.
func (t *Tree[K]) EntryAt(rank int) (K, int64, error) {
	n, err := t.nodeAt(rank)
	if err != nil {
		var zero K
		return zero, 0, err
	}
	return n.key, n.weight, nil
}

func (t *Tree[K]) nodeAt(rank int) (*node[K], error) {
	if rank < 0 || rank >= t.Len() {
		return nil, fmt.Errorf("%w: rank %d, size %d", ErrIndexOutOfRange, rank, t.Len())
	}
	n := t.root
	for {
		lc := countOf(n.left)
		switch {
		case rank < lc:
			n = n.left
		case rank == lc:
			return n, nil
		default:
			rank -= lc + 1
			n = n.right
		}
	}
}

// PrefixWeightSum returns the sum of the weights of all keys ordering
// strictly before key. Key need not be present.
func (t *Tree[K]) PrefixWeightSum(key K) int64 {
	if t == nil {
		return 0
	}
	var sum int64
	n := t.root
	for n != nil {
		c := t.cfg.Compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			sum += sumOf(n.left) + n.weight
			n = n.right
		default:
			return sum + sumOf(n.left)
		}
	}
	return sum
}

// RankAtCumulativeWeight returns the lowest rank r for which the sum of the
// weights of all keys at ranks ≤ r reaches threshold, together with that
// sum.
//
// If threshold exceeds the total weight, the result is (Len(), TotalWeight()),
// i.e. the position past the end. A threshold ≤ 0 is reached before any key
// is consumed and yields (0, 0). In that case sum is not the inclusive sum
// at rank 0, which would be the weight of the first key.
func (t *Tree[K]) RankAtCumulativeWeight(threshold int64) (rank int, sum int64) {
	if t == nil {
		return 0, 0
	}
	c := Cursor[K, int64]{tree: t, dim: WeightDimension{}}
	rank, sum, err := c.Seek(threshold)
	invariant(err == nil, "RankAtCumulativeWeight: weight cursor not initialized")
	return rank, sum
}
