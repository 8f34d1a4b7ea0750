package ostree

import "fmt"

// Check validates the structural tree invariants:
//
//   - keys are in strict binary-search-tree order,
//   - every weight is positive,
//   - stored heights are exact and sibling heights differ by at most 1,
//   - count and sum of every node match its children.
//
// A valid tree always passes. Check is meant for tests and diagnostics.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is nil", ErrInvalidConfig)
	}
	_, err := t.checkNode(t.root, nil, nil)
	return err
}

// checkNode validates the subtree n, whose keys must order strictly after lo
// and strictly before hi, if these are given.
func (t *Tree[K]) checkNode(n *node[K], lo, hi *node[K]) (height int32, err error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && t.cfg.Compare(lo.key, n.key) >= 0 {
		return 0, fmt.Errorf("%w: key %v not after %v", ErrInvalidTree, n.key, lo.key)
	}
	if hi != nil && t.cfg.Compare(n.key, hi.key) >= 0 {
		return 0, fmt.Errorf("%w: key %v not before %v", ErrInvalidTree, n.key, hi.key)
	}
	if n.weight <= 0 {
		return 0, fmt.Errorf("%w: key %v has weight %d", ErrInvalidTree, n.key, n.weight)
	}
	lh, err := t.checkNode(n.left, lo, n)
	if err != nil {
		return 0, err
	}
	rh, err := t.checkNode(n.right, n, hi)
	if err != nil {
		return 0, err
	}
	if d := lh - rh; d < -1 || d > 1 {
		return 0, fmt.Errorf("%w: key %v unbalanced (left height %d, right height %d)",
			ErrInvalidTree, n.key, lh, rh)
	}
	if h := 1 + max(lh, rh); h != n.height {
		return 0, fmt.Errorf("%w: key %v has height %d, should be %d", ErrInvalidTree, n.key, n.height, h)
	}
	if c := 1 + countOf(n.left) + countOf(n.right); c != n.count {
		return 0, fmt.Errorf("%w: key %v has count %d, should be %d", ErrInvalidTree, n.key, n.count, c)
	}
	if s := n.weight + sumOf(n.left) + sumOf(n.right); s != n.sum {
		return 0, fmt.Errorf("%w: key %v has sum %d, should be %d", ErrInvalidTree, n.key, n.sum, s)
	}
	return n.height, nil
}
