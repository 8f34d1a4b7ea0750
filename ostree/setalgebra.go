package ostree

import (
	"fmt"
	"iter"
	"slices"
)

// Set algebra consumes an arbitrary sequence of keys (or key/weight pairs),
// possibly unordered and with duplicates. The operand is first materialized
// into a sorted, de-duplicated lookup. A single merge pass over the tree's
// in-order keys then partitions keys into tree-only, common and operand-only
// ones, and the operation applies targeted inserts and removals. For n keys
// in the tree and m operand items this is O((n+m) log n) instead of the
// O(n·m) of naive membership tests. The plain operations treat duplicate
// operand keys as one, the weighted ones sum their weights.

type entry[K any] struct {
	key    K
	weight int64
}

// partition is the result of merging the tree against an operand.
type partition[K any] struct {
	onlyTree    []K
	common      []K
	onlyOperand []entry[K]
	// commonWeight is the tree weight of the common keys.
	commonWeight int64
}

func unitWeights[K any](keys iter.Seq[K]) iter.Seq2[K, int64] {
	return func(yield func(K, int64) bool) {
		if keys == nil {
			return
		}
		for key := range keys {
			if !yield(key, 1) {
				return
			}
		}
	}
}

// materialize collects the operand into a lookup sorted by key. With
// accumulate, the weights of duplicate keys are summed; otherwise duplicates
// collapse into a single entry with the weight of the first occurrence. A
// non-positive weight, or an accumulated weight overflowing int64, fails the
// whole operation before the tree is touched.
func (t *Tree[K]) materialize(items iter.Seq2[K, int64], accumulate bool) ([]entry[K], error) {
	var ops []entry[K]
	if items == nil {
		return ops, nil
	}
	for key, weight := range items {
		if weight <= 0 {
			return nil, fmt.Errorf("%w: operand key %v has weight %d", ErrInvalidWeight, key, weight)
		}
		ops = append(ops, entry[K]{key: key, weight: weight})
	}
	slices.SortStableFunc(ops, func(a, b entry[K]) int {
		return t.cfg.Compare(a.key, b.key)
	})
	out := ops[:0]
	for _, e := range ops {
		if last := len(out) - 1; last >= 0 && t.cfg.Compare(out[last].key, e.key) == 0 {
			if !accumulate {
				continue
			}
			w, ok := addWeight(out[last].weight, e.weight)
			if !ok {
				return nil, fmt.Errorf("%w: accumulated weight of operand key %v overflows", ErrInvalidWeight, e.key)
			}
			out[last].weight = w
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (t *Tree[K]) partition(ops []entry[K]) partition[K] {
	var p partition[K]
	i := 0
	for key, weight := range t.Entries() {
		for i < len(ops) && t.cfg.Compare(ops[i].key, key) < 0 {
			p.onlyOperand = append(p.onlyOperand, ops[i])
			i++
		}
		if i < len(ops) && t.cfg.Compare(ops[i].key, key) == 0 {
			p.common = append(p.common, key)
			p.commonWeight += weight
			i++
		} else {
			p.onlyTree = append(p.onlyTree, key)
		}
	}
	p.onlyOperand = append(p.onlyOperand, ops[i:]...)
	return p
}

// checkGrowth verifies that inserting the operand-only entries into a tree
// of total weight base does not overflow.
func (p partition[K]) checkGrowth(base int64) error {
	total := base
	for _, e := range p.onlyOperand {
		var ok bool
		if total, ok = addWeight(total, e.weight); !ok {
			return fmt.Errorf("%w: inserting operand key %v overflows total weight", ErrInvalidWeight, e.key)
		}
	}
	return nil
}

func (t *Tree[K]) insertAll(entries []entry[K]) {
	for _, e := range entries {
		err := t.Insert(e.key, e.weight)
		invariant(err == nil, "set algebra: insert of operand-only key failed")
	}
}

func (t *Tree[K]) removeAll(keys []K) {
	for _, key := range keys {
		found := t.RemoveByKey(key)
		invariant(found, "set algebra: removal of partitioned key failed")
	}
}

// UnionWith adds every key of items which is not yet present, with weight 1.
// Duplicate keys in items count once. An error (ErrInvalidWeight) is only
// possible if the added weights would make TotalWeight overflow.
func (t *Tree[K]) UnionWith(items iter.Seq[K]) error {
	return t.union(unitWeights(items), false)
}

// UnionWithWeights adds every key of items which is not yet present, with
// the weight given by items. Weights of duplicate keys in items accumulate.
// Keys present in the tree keep their weight.
func (t *Tree[K]) UnionWithWeights(items iter.Seq2[K, int64]) error {
	return t.union(items, true)
}

func (t *Tree[K]) union(items iter.Seq2[K, int64], accumulate bool) error {
	ops, err := t.materialize(items, accumulate)
	if err != nil {
		return err
	}
	p := t.partition(ops)
	if err := p.checkGrowth(t.TotalWeight()); err != nil {
		return err
	}
	t.insertAll(p.onlyOperand)
	tracer().Debugf("ostree: union added %d keys, %d already present", len(p.onlyOperand), len(p.common))
	return nil
}

// IntersectWith removes every key which is not contained in items.
func (t *Tree[K]) IntersectWith(items iter.Seq[K]) {
	err := t.IntersectWithWeights(unitWeights(items))
	invariant(err == nil, "IntersectWith: unit weights rejected")
}

// IntersectWithWeights removes every key which is not contained in items.
// Weights of retained keys are unchanged. The operand's weights are
// validated but otherwise ignored.
func (t *Tree[K]) IntersectWithWeights(items iter.Seq2[K, int64]) error {
	ops, err := t.materialize(items, false)
	if err != nil {
		return err
	}
	if len(ops) == 0 {
		tracer().Debugf("ostree: intersect with empty operand cleared %d keys", t.Len())
		t.Clear()
		return nil
	}
	p := t.partition(ops)
	t.removeAll(p.onlyTree)
	tracer().Debugf("ostree: intersect removed %d keys, retained %d", len(p.onlyTree), len(p.common))
	return nil
}

// ExceptWith removes every key contained in items.
func (t *Tree[K]) ExceptWith(items iter.Seq[K]) {
	err := t.ExceptWithWeights(unitWeights(items))
	invariant(err == nil, "ExceptWith: unit weights rejected")
}

// ExceptWithWeights removes every key contained in items. The operand's
// weights are validated but otherwise ignored.
func (t *Tree[K]) ExceptWithWeights(items iter.Seq2[K, int64]) error {
	ops, err := t.materialize(items, false)
	if err != nil {
		return err
	}
	p := t.partition(ops)
	t.removeAll(p.common)
	tracer().Debugf("ostree: except removed %d keys", len(p.common))
	return nil
}

// SymmetricExceptWith leaves exactly the keys which are contained either in
// the tree or in items, but not in both. Added keys get weight 1, duplicate
// keys in items count once. An error (ErrInvalidWeight) is only possible if
// the added weights would make TotalWeight overflow.
func (t *Tree[K]) SymmetricExceptWith(items iter.Seq[K]) error {
	return t.symmetricExcept(unitWeights(items), false)
}

// SymmetricExceptWithWeights leaves exactly the keys which are contained
// either in the tree or in items, but not in both. Keys added from items get
// the weight given by items, with weights of duplicate keys accumulated.
func (t *Tree[K]) SymmetricExceptWithWeights(items iter.Seq2[K, int64]) error {
	return t.symmetricExcept(items, true)
}

func (t *Tree[K]) symmetricExcept(items iter.Seq2[K, int64], accumulate bool) error {
	ops, err := t.materialize(items, accumulate)
	if err != nil {
		return err
	}
	p := t.partition(ops)
	if err := p.checkGrowth(t.TotalWeight() - p.commonWeight); err != nil {
		return err
	}
	t.removeAll(p.common)
	t.insertAll(p.onlyOperand)
	tracer().Debugf("ostree: symmetric except removed %d keys, added %d",
		len(p.common), len(p.onlyOperand))
	return nil
}
