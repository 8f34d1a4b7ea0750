package indexed

import (
	"cmp"
	"errors"
	"iter"

	"github.com/npillmayer/indexed/ostree"
)

// TreeSet is an ordered set with positional access.
//
// The zero value is not usable, create sets with NewTreeSet or NewOrderedSet.
type TreeSet[K any] struct {
	tree *ostree.Tree[K]
}

// NewTreeSet creates an empty set ordered by compare, which has to be a
// strict total order over K, as for slices.SortFunc.
func NewTreeSet[K any](compare func(a, b K) int) (*TreeSet[K], error) {
	tree, err := ostree.New(ostree.Config[K]{Compare: compare})
	if err != nil {
		return nil, err
	}
	return &TreeSet[K]{tree: tree}, nil
}

// NewOrderedSet creates an empty set for a naturally ordered key type.
func NewOrderedSet[K cmp.Ordered]() *TreeSet[K] {
	return &TreeSet[K]{tree: ostree.NewOrdered[K]()}
}

// Tree returns the underlying tree. Mutating it mutates the set.
func (s *TreeSet[K]) Tree() *ostree.Tree[K] {
	return s.tree
}

// Add inserts key. It returns false if key has already been present, in
// which case the set is unchanged.
func (s *TreeSet[K]) Add(key K) bool {
	err := s.tree.Insert(key, 1)
	if errors.Is(err, ErrDuplicateKey) {
		return false
	}
	invariant(err == nil, "TreeSet.Add: unexpected insert error")
	return true
}

// Remove deletes key and reports whether it has been present.
func (s *TreeSet[K]) Remove(key K) bool {
	return s.tree.RemoveByKey(key)
}

// RemoveAt deletes the key at position rank and returns it.
func (s *TreeSet[K]) RemoveAt(rank int) (K, error) {
	return s.tree.RemoveByRank(rank)
}

// Contains reports whether key is an element of s.
func (s *TreeSet[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

// IndexOf returns the position of key, or -1 if key is not an element of s.
func (s *TreeSet[K]) IndexOf(key K) int {
	return s.tree.IndexOf(key)
}

// ElementAt returns the key at position rank, counting from 0.
func (s *TreeSet[K]) ElementAt(rank int) (K, error) {
	return s.tree.ElementAt(rank)
}

// Min returns the smallest key, if any.
func (s *TreeSet[K]) Min() (K, bool) {
	return s.tree.Min()
}

// Max returns the largest key, if any.
func (s *TreeSet[K]) Max() (K, bool) {
	return s.tree.Max()
}

// Len returns the number of elements.
func (s *TreeSet[K]) Len() int {
	return s.tree.Len()
}

// Clear removes all elements.
func (s *TreeSet[K]) Clear() {
	s.tree.Clear()
}

// All enumerates the elements in ascending order.
func (s *TreeSet[K]) All() iter.Seq[K] {
	return s.tree.All()
}

// UnionWith adds all keys of items.
func (s *TreeSet[K]) UnionWith(items iter.Seq[K]) {
	err := s.tree.UnionWith(items)
	invariant(err == nil, "TreeSet.UnionWith: unit weights overflow")
}

// IntersectWith retains only keys contained in items.
func (s *TreeSet[K]) IntersectWith(items iter.Seq[K]) {
	s.tree.IntersectWith(items)
}

// ExceptWith removes all keys contained in items.
func (s *TreeSet[K]) ExceptWith(items iter.Seq[K]) {
	s.tree.ExceptWith(items)
}

// SymmetricExceptWith retains the keys contained in exactly one of s and
// items.
func (s *TreeSet[K]) SymmetricExceptWith(items iter.Seq[K]) {
	err := s.tree.SymmetricExceptWith(items)
	invariant(err == nil, "TreeSet.SymmetricExceptWith: unit weights overflow")
}

func (s *TreeSet[K]) String() string {
	return s.tree.String()
}

func invariant(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
