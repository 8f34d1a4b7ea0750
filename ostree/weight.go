package ostree

import "fmt"

// Increase adds 1 to the weight of key. An absent key is inserted with
// weight 1. The only possible error is ErrInvalidWeight for a tree whose
// total weight is already math.MaxInt64.
func (t *Tree[K]) Increase(key K) error {
	_, err := t.Upsert(key, 1)
	return err
}

// IncreaseBy adds delta to the weight of key. An absent key is inserted with
// weight delta. A negative delta, or one which would make TotalWeight
// overflow, is rejected with ErrInvalidWeight. A delta of 0 is a no-op.
func (t *Tree[K]) IncreaseBy(key K, delta int64) error {
	if delta < 0 {
		return fmt.Errorf("%w: negative delta %d", ErrInvalidWeight, delta)
	}
	if delta == 0 {
		return nil
	}
	_, err := t.Upsert(key, delta)
	return err
}

// Decrease subtracts 1 from the weight of key. A key with weight 1 is
// removed. Decreasing an absent key is a no-op.
func (t *Tree[K]) Decrease(key K) {
	err := t.DecreaseBy(key, 1)
	invariant(err == nil, "Decrease: unit decrease failed")
}

// DecreaseBy subtracts delta from the weight of key. If the weight drops to
// 0 or below, the key is removed. Decreasing an absent key is a no-op.
// A negative delta is rejected with ErrInvalidWeight.
func (t *Tree[K]) DecreaseBy(key K, delta int64) error {
	if delta < 0 {
		return fmt.Errorf("%w: negative delta %d", ErrInvalidWeight, delta)
	}
	if delta == 0 {
		return nil
	}
	var path stack[**node[K]]
	link := t.descend(key, &path)
	if *link == nil {
		return nil
	}
	if (*link).weight <= delta {
		t.unlink(link, &path)
		return nil
	}
	shift(link, &path, -delta)
	return nil
}

// Update sets the weight of key to weight, inserting key if it is absent.
// A weight of 0 or less removes key. If the new weight would make
// TotalWeight overflow, Update returns ErrInvalidWeight and leaves the tree
// unchanged.
//
// For a present key only the sums on the path from the root to key change.
func (t *Tree[K]) Update(key K, weight int64) error {
	if weight <= 0 {
		t.RemoveByKey(key)
		return nil
	}
	var path stack[**node[K]]
	link := t.descend(key, &path)
	var old int64
	if *link != nil {
		old = (*link).weight
	}
	if _, ok := addWeight(t.TotalWeight()-old, weight); !ok {
		return fmt.Errorf("%w: weight %d overflows total weight %d", ErrInvalidWeight, weight, t.TotalWeight())
	}
	if *link == nil {
		*link = newNode(key, weight)
		retrace(&path)
		return nil
	}
	if delta := weight - old; delta != 0 {
		shift(link, &path, delta)
	}
	return nil
}
