package indexed

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"io"
	"iter"
	"math"
	"reflect"

	"github.com/npillmayer/indexed/ostree"
	"github.com/spaolacci/murmur3"
)

// TreeHashSet is a set of comparable values without a natural order. Values
// are ordered by their hash and, for colliding hashes, by insertion
// sequence. This gives every element a stable position, which is
// deterministic for a given default hash and sequence of operations.
//
// Equality of elements is Go equality (==).
type TreeHashSet[K comparable] struct {
	tree *ostree.Tree[hashKey[K]]
	hash func(K) uint64
	seq  uint64
}

// hashKey is the ordering key of a TreeHashSet element.
type hashKey[K comparable] struct {
	hash uint64
	seq  uint64 // insertion sequence, starting at 1
	key  K
}

func compareHashKeys[K comparable](a, b hashKey[K]) int {
	if c := cmp.Compare(a.hash, b.hash); c != 0 {
		return c
	}
	return cmp.Compare(a.seq, b.seq)
}

// HashOf is the default hash function of TreeHashSet. It hashes a canonical
// binary encoding of key with 64-bit MurmurHash3, which is stable across
// program runs for values without pointers.
//
// Keys which are equal under == hash equally: floating point zeros are
// encoded without their sign, so 0.0 and -0.0 are the same element. NaN
// never equals itself, so every NaN added to a set is a separate element,
// as with Go maps.
func HashOf[K comparable](key K) uint64 {
	h := murmur3.New64()
	writeCanonical(h, reflect.ValueOf(&key).Elem())
	return h.Sum64()
}

func writeCanonical(w io.Writer, v reflect.Value) {
	var buf [8]byte
	word := func(x uint64) {
		binary.LittleEndian.PutUint64(buf[:], x)
		w.Write(buf[:])
	}
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			word(1)
		} else {
			word(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		word(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		word(v.Uint())
	case reflect.Float32, reflect.Float64:
		word(floatBits(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		word(floatBits(real(c)))
		word(floatBits(imag(c)))
	case reflect.String:
		word(uint64(v.Len()))
		io.WriteString(w, v.String())
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		word(uint64(v.Pointer()))
	case reflect.Array:
		for i := range v.Len() {
			writeCanonical(w, v.Index(i))
		}
	case reflect.Struct:
		for i := range v.NumField() {
			writeCanonical(w, v.Field(i))
		}
	case reflect.Interface:
		if v.IsNil() {
			word(0)
			return
		}
		e := v.Elem()
		io.WriteString(w, e.Type().String())
		writeCanonical(w, e)
	default:
		// dynamic values which == cannot compare; they never reach a set
		io.WriteString(w, v.Type().String())
	}
}

// floatBits maps -0 to +0 and all NaNs to one bit pattern.
func floatBits(f float64) uint64 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return math.Float64bits(math.NaN())
	}
	return math.Float64bits(f)
}

// NewTreeHashSet creates an empty set using HashOf.
func NewTreeHashSet[K comparable]() *TreeHashSet[K] {
	s, err := NewTreeHashSetWith(HashOf[K])
	invariant(err == nil, "NewTreeHashSet: default configuration rejected")
	return s
}

// NewTreeHashSetWith creates an empty set using a client supplied hash
// function. Keys equal under == must have equal hashes, otherwise the set
// may hold both of them.
func NewTreeHashSetWith[K comparable](hash func(K) uint64) (*TreeHashSet[K], error) {
	if hash == nil {
		return nil, fmt.Errorf("%w: hash function is nil", ErrInvalidConfig)
	}
	tree, err := ostree.New(ostree.Config[hashKey[K]]{Compare: compareHashKeys[K]})
	if err != nil {
		return nil, err
	}
	return &TreeHashSet[K]{tree: tree, hash: hash}, nil
}

// find returns the ordering key of key, if present, and the rank of key.
func (s *TreeHashSet[K]) find(key K) (hashKey[K], int, bool) {
	h := s.hash(key)
	rank := s.tree.Rank(hashKey[K]{hash: h})
	it := s.tree.MakeIter()
	for it.Nth(rank); it.Valid() && it.Key().hash == h; it.Next() {
		if it.Key().key == key {
			return it.Key(), it.Rank(), true
		}
	}
	return hashKey[K]{}, -1, false
}

// Add inserts key and returns false if it has already been present.
func (s *TreeHashSet[K]) Add(key K) bool {
	if _, _, found := s.find(key); found {
		return false
	}
	s.seq++
	hk := hashKey[K]{hash: s.hash(key), seq: s.seq, key: key}
	err := s.tree.Insert(hk, 1)
	invariant(err == nil, "TreeHashSet.Add: sequence number collision")
	if r := s.tree.IndexOf(hk); r > 0 {
		if prev, _ := s.tree.ElementAt(r - 1); prev.hash == hk.hash {
			T().Debugf("TreeHashSet: hash collision of %v and %v", prev.key, key)
		}
	}
	return true
}

// Remove deletes key and reports whether it has been present.
func (s *TreeHashSet[K]) Remove(key K) bool {
	hk, _, found := s.find(key)
	if !found {
		return false
	}
	return s.tree.RemoveByKey(hk)
}

// RemoveAt deletes the element at position rank and returns it.
func (s *TreeHashSet[K]) RemoveAt(rank int) (K, error) {
	hk, err := s.tree.RemoveByRank(rank)
	return hk.key, err
}

// Contains reports whether key is an element of s.
func (s *TreeHashSet[K]) Contains(key K) bool {
	_, _, found := s.find(key)
	return found
}

// IndexOf returns the position of key, or -1 if key is not an element of s.
func (s *TreeHashSet[K]) IndexOf(key K) int {
	_, rank, _ := s.find(key)
	return rank
}

// ElementAt returns the element at position rank.
func (s *TreeHashSet[K]) ElementAt(rank int) (K, error) {
	hk, err := s.tree.ElementAt(rank)
	return hk.key, err
}

// Len returns the number of elements.
func (s *TreeHashSet[K]) Len() int {
	return s.tree.Len()
}

// Clear removes all elements. Insertion sequence numbering continues.
func (s *TreeHashSet[K]) Clear() {
	s.tree.Clear()
}

// All enumerates the elements in hash order.
func (s *TreeHashSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for hk := range s.tree.All() {
			if !yield(hk.key) {
				return
			}
		}
	}
}

// UnionWith adds all keys of items.
func (s *TreeHashSet[K]) UnionWith(items iter.Seq[K]) {
	for _, key := range collect(items) {
		s.Add(key)
	}
}

// IntersectWith retains only keys contained in items.
func (s *TreeHashSet[K]) IntersectWith(items iter.Seq[K]) {
	keep := make(map[K]struct{})
	for _, key := range collect(items) {
		keep[key] = struct{}{}
	}
	var drop []K
	for key := range s.All() {
		if _, ok := keep[key]; !ok {
			drop = append(drop, key)
		}
	}
	for _, key := range drop {
		s.Remove(key)
	}
}

// ExceptWith removes all keys contained in items.
func (s *TreeHashSet[K]) ExceptWith(items iter.Seq[K]) {
	for _, key := range collect(items) {
		s.Remove(key)
	}
}

// SymmetricExceptWith retains the keys contained in exactly one of s and
// items.
func (s *TreeHashSet[K]) SymmetricExceptWith(items iter.Seq[K]) {
	seen := make(map[K]struct{})
	for _, key := range collect(items) {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if !s.Remove(key) {
			s.Add(key)
		}
	}
}

// collect materializes items before any mutation, so that a set may be
// combined with an enumeration of itself.
func collect[K any](items iter.Seq[K]) []K {
	if items == nil {
		return nil
	}
	var keys []K
	for key := range items {
		keys = append(keys, key)
	}
	return keys
}
