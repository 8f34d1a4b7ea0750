package ostree

import "fmt"

// descend walks down from the root towards key, stacking every link it
// passes. It returns the link holding key's node. If key is absent, the
// returned link holds nil and is the position where key would be inserted.
func (t *Tree[K]) descend(key K, path *stack[**node[K]]) **node[K] {
	link := &t.root
	for *link != nil {
		n := *link
		c := t.cfg.Compare(key, n.key)
		if c == 0 {
			return link
		}
		path.push(link)
		if c < 0 {
			link = &n.left
		} else {
			link = &n.right
		}
	}
	return link
}

// Insert adds key with the given weight.
//
// Weight must be positive, otherwise ErrInvalidWeight is returned. If key is
// already present, Insert returns the unwrapped ErrDuplicateKey. A weight
// which would make TotalWeight overflow is rejected with ErrInvalidWeight.
// In all these cases the tree is left unchanged.
func (t *Tree[K]) Insert(key K, weight int64) error {
	if weight <= 0 {
		return fmt.Errorf("%w: cannot insert key with weight %d", ErrInvalidWeight, weight)
	}
	var path stack[**node[K]]
	link := t.descend(key, &path)
	if *link != nil {
		return ErrDuplicateKey
	}
	if _, ok := addWeight(t.TotalWeight(), weight); !ok {
		return fmt.Errorf("%w: weight %d overflows total weight %d", ErrInvalidWeight, weight, t.TotalWeight())
	}
	*link = newNode(key, weight)
	retrace(&path)
	return nil
}

// Upsert adds key with the given weight. If key is already present, weight
// is added to the weight of the existing key instead. added reports whether
// key has been newly inserted. As with Insert, a weight which would make
// TotalWeight overflow is rejected with ErrInvalidWeight.
func (t *Tree[K]) Upsert(key K, weight int64) (added bool, err error) {
	if weight <= 0 {
		return false, fmt.Errorf("%w: cannot add weight %d", ErrInvalidWeight, weight)
	}
	if _, ok := addWeight(t.TotalWeight(), weight); !ok {
		return false, fmt.Errorf("%w: weight %d overflows total weight %d", ErrInvalidWeight, weight, t.TotalWeight())
	}
	var path stack[**node[K]]
	link := t.descend(key, &path)
	if *link != nil {
		shift(link, &path, weight)
		return false, nil
	}
	*link = newNode(key, weight)
	retrace(&path)
	return true, nil
}

// shift adds delta to the weight of the node behind link and to the sums of
// all of its ancestors on path. The shape of the tree does not change, so no
// rebalancing is necessary.
func shift[K any](link **node[K], path *stack[**node[K]], delta int64) {
	n := *link
	invariant(n.weight+delta > 0, "shift would make weight non-positive")
	n.weight += delta
	n.sum += delta
	for path.len() > 0 {
		(*path.pop()).sum += delta
	}
}
