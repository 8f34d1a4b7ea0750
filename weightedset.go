package indexed

import (
	"cmp"
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/npillmayer/indexed/ostree"
)

// WeightedSet is an ordered set in which every element carries a positive
// integer weight. Besides positional access it answers prefix weight sums and
// weighted cumulative searches in logarithmic time.
//
// Weights are counts in the typical use case: adding a key which is already
// present increases its weight.
type WeightedSet[K any] struct {
	tree *ostree.Tree[K]
}

// Entry is a key together with its weight.
type Entry[K any] struct {
	Key    K
	Weight int64
}

// NewWeightedSet creates an empty weighted set ordered by compare.
func NewWeightedSet[K any](compare func(a, b K) int) (*WeightedSet[K], error) {
	tree, err := ostree.New(ostree.Config[K]{Compare: compare})
	if err != nil {
		return nil, err
	}
	return &WeightedSet[K]{tree: tree}, nil
}

// NewOrderedWeightedSet creates an empty weighted set for a naturally ordered
// key type.
func NewOrderedWeightedSet[K cmp.Ordered]() *WeightedSet[K] {
	return &WeightedSet[K]{tree: ostree.NewOrdered[K]()}
}

// Tree returns the underlying tree. Mutating it mutates the set.
func (s *WeightedSet[K]) Tree() *ostree.Tree[K] {
	return s.tree
}

// Add adds weight to key, inserting key if it is absent. weight must be
// positive, and the total weight must stay within int64. Otherwise Add
// returns ErrInvalidWeight and leaves s unchanged.
func (s *WeightedSet[K]) Add(key K, weight int64) error {
	if weight <= 0 {
		return fmt.Errorf("%w: weight %d", ErrInvalidWeight, weight)
	}
	return s.tree.IncreaseBy(key, weight)
}

// Increase adds 1 to the weight of key, inserting key if it is absent. It
// fails with ErrInvalidWeight if the total weight would overflow.
func (s *WeightedSet[K]) Increase(key K) error {
	return s.tree.Increase(key)
}

// Decrease subtracts 1 from the weight of key. A key whose weight drops to
// zero is removed.
func (s *WeightedSet[K]) Decrease(key K) {
	s.tree.Decrease(key)
}

// Update sets the weight of key. A weight ≤ 0 removes key. Update fails
// with ErrInvalidWeight if the total weight would overflow.
func (s *WeightedSet[K]) Update(key K, weight int64) error {
	return s.tree.Update(key, weight)
}

// Weight returns the weight of key and whether key is present.
func (s *WeightedSet[K]) Weight(key K) (int64, bool) {
	return s.tree.Weight(key)
}

// Remove deletes key regardless of its weight.
func (s *WeightedSet[K]) Remove(key K) bool {
	return s.tree.RemoveByKey(key)
}

// RemoveAt deletes the key at position rank and returns it.
func (s *WeightedSet[K]) RemoveAt(rank int) (K, error) {
	return s.tree.RemoveByRank(rank)
}

// Contains reports whether key is an element of s.
func (s *WeightedSet[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

// IndexOf returns the position of key, or -1 if key is not an element of s.
func (s *WeightedSet[K]) IndexOf(key K) int {
	return s.tree.IndexOf(key)
}

// ElementAt returns the key at position rank.
func (s *WeightedSet[K]) ElementAt(rank int) (K, error) {
	return s.tree.ElementAt(rank)
}

// EntryAt returns the key and weight at position rank.
func (s *WeightedSet[K]) EntryAt(rank int) (Entry[K], error) {
	k, w, err := s.tree.EntryAt(rank)
	return Entry[K]{Key: k, Weight: w}, err
}

// Len returns the number of distinct keys.
func (s *WeightedSet[K]) Len() int {
	return s.tree.Len()
}

// TotalWeight returns the sum of all weights.
func (s *WeightedSet[K]) TotalWeight() int64 {
	return s.tree.TotalWeight()
}

// PrefixWeightSum returns the sum of the weights of all keys before key.
func (s *WeightedSet[K]) PrefixWeightSum(key K) int64 {
	return s.tree.PrefixWeightSum(key)
}

// RankAtCumulativeWeight returns the lowest rank at which the running weight
// sum reaches threshold, together with that sum. See
// ostree.Tree.RankAtCumulativeWeight for the edge cases.
func (s *WeightedSet[K]) RankAtCumulativeWeight(threshold int64) (int, int64) {
	return s.tree.RankAtCumulativeWeight(threshold)
}

// Pick selects a key at random, with a probability proportional to its
// weight. It returns false for an empty set.
func (s *WeightedSet[K]) Pick(r *rand.Rand) (K, bool) {
	var zero K
	total := s.tree.TotalWeight()
	if total <= 0 {
		return zero, false
	}
	rank, _ := s.tree.RankAtCumulativeWeight(r.Int64N(total) + 1)
	key, err := s.tree.ElementAt(rank)
	invariant(err == nil, "WeightedSet.Pick: cumulative search out of range")
	return key, true
}

// Entries enumerates keys and weights in ascending key order.
func (s *WeightedSet[K]) Entries() iter.Seq2[K, int64] {
	return s.tree.Entries()
}

// All enumerates the keys in ascending order.
func (s *WeightedSet[K]) All() iter.Seq[K] {
	return s.tree.All()
}

// Top returns up to n entries with the highest weights, heaviest first.
// Entries of equal weight keep key order.
func (s *WeightedSet[K]) Top(n int) []Entry[K] {
	if n <= 0 || s.tree.IsEmpty() {
		return nil
	}
	entries := make([]Entry[K], 0, s.tree.Len())
	for k, w := range s.tree.Entries() {
		entries = append(entries, Entry[K]{Key: k, Weight: w})
	}
	slices.SortStableFunc(entries, func(a, b Entry[K]) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
	return entries[:min(n, len(entries))]
}

// Clear removes all keys.
func (s *WeightedSet[K]) Clear() {
	s.tree.Clear()
}

// UnionWith adds the keys of items which are not yet present, using the
// weights of items. Weights of a key repeated in items accumulate. Weights
// of present keys are unchanged.
func (s *WeightedSet[K]) UnionWith(items iter.Seq2[K, int64]) error {
	return s.tree.UnionWithWeights(items)
}

// IntersectWith retains only keys contained in items.
func (s *WeightedSet[K]) IntersectWith(items iter.Seq2[K, int64]) error {
	return s.tree.IntersectWithWeights(items)
}

// ExceptWith removes all keys contained in items.
func (s *WeightedSet[K]) ExceptWith(items iter.Seq2[K, int64]) error {
	return s.tree.ExceptWithWeights(items)
}

// SymmetricExceptWith retains the keys contained in exactly one of s and
// items. Keys taken from items keep their weight, accumulated over repeats.
func (s *WeightedSet[K]) SymmetricExceptWith(items iter.Seq2[K, int64]) error {
	return s.tree.SymmetricExceptWithWeights(items)
}

func (s *WeightedSet[K]) String() string {
	return s.tree.String()
}
