package ostree

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T, keys ...int) *Tree[int] {
	t.Helper()
	tree := NewOrdered[int]()
	for _, k := range keys {
		require.NoError(t, tree.Insert(k, 1))
	}
	require.NoError(t, tree.Check())
	return tree
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewStoresCompare(t *testing.T) {
	tree, err := New(Config[string]{Compare: strings.Compare})
	require.NoError(t, err)
	assert.NotNil(t, tree.Config().Compare)
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Height())
	assert.NoError(t, tree.Check())
}

func TestInsertEnumerateRank(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "indexed")
	defer teardown()
	//
	tree := buildTree(t, 5, 3, 8, 1, 4)
	assert.Equal(t, []int{1, 3, 4, 5, 8}, slices.Collect(tree.All()))
	assert.Equal(t, 2, tree.IndexOf(4))
	k, err := tree.ElementAt(2)
	require.NoError(t, err)
	assert.Equal(t, 4, k)
	assert.Equal(t, -1, tree.IndexOf(7))
	assert.Equal(t, 4, tree.Rank(7))
	assert.Equal(t, 5, tree.Len())
	assert.Equal(t, int64(5), tree.TotalWeight())
}

func TestInsertDuplicateLeavesTreeUnchanged(t *testing.T) {
	tree := buildTree(t, 2, 1, 3)
	before := tree.String()
	err := tree.Insert(2, 7)
	assert.True(t, err == ErrDuplicateKey, "expected bare ErrDuplicateKey, got %v", err)
	assert.Equal(t, before, tree.String())
	w, ok := tree.Weight(2)
	assert.True(t, ok)
	assert.Equal(t, int64(1), w)
}

func TestInsertRejectsNonPositiveWeight(t *testing.T) {
	tree := NewOrdered[int]()
	assert.ErrorIs(t, tree.Insert(1, 0), ErrInvalidWeight)
	assert.ErrorIs(t, tree.Insert(1, -3), ErrInvalidWeight)
	assert.True(t, tree.IsEmpty())
}

func TestWeightOverflowIsRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "indexed")
	defer teardown()
	//
	tree := NewOrdered[int]()
	require.NoError(t, tree.Insert(1, math.MaxInt64))
	assert.ErrorIs(t, tree.Insert(2, 1), ErrInvalidWeight)
	_, err := tree.Upsert(2, 1)
	assert.ErrorIs(t, err, ErrInvalidWeight)
	_, err = tree.Upsert(1, 1)
	assert.ErrorIs(t, err, ErrInvalidWeight)
	assert.ErrorIs(t, tree.IncreaseBy(1, 1), ErrInvalidWeight)
	assert.ErrorIs(t, tree.Increase(3), ErrInvalidWeight)
	assert.ErrorIs(t, tree.Update(4, 1), ErrInvalidWeight)
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, int64(math.MaxInt64), tree.TotalWeight())
	require.NoError(t, tree.Check())

	// replacing a weight only counts the difference
	require.NoError(t, tree.Update(1, math.MaxInt64-1))
	require.NoError(t, tree.Update(2, 1))
	assert.ErrorIs(t, tree.Update(2, 2), ErrInvalidWeight)
	w, _ := tree.Weight(2)
	assert.Equal(t, int64(1), w)
	assert.Equal(t, int64(math.MaxInt64), tree.TotalWeight())
	require.NoError(t, tree.Check())
}

func TestInsertAscendingStaysBalanced(t *testing.T) {
	tree := NewOrdered[int]()
	for i := range 1024 {
		require.NoError(t, tree.Insert(i, 1))
	}
	require.NoError(t, tree.Check())
	// a perfectly balanced tree of 1024 keys has height 11
	assert.Equal(t, 11, tree.Height())
	for i := 1023; i >= 0; i -= 2 {
		require.True(t, tree.RemoveByKey(i))
	}
	require.NoError(t, tree.Check())
	assert.Equal(t, 512, tree.Len())
}

func TestUpsertAddsWeight(t *testing.T) {
	tree := NewOrdered[string]()
	added, err := tree.Upsert("a", 2)
	require.NoError(t, err)
	assert.True(t, added)
	added, err = tree.Upsert("a", 3)
	require.NoError(t, err)
	assert.False(t, added)
	w, _ := tree.Weight("a")
	assert.Equal(t, int64(5), w)
	_, err = tree.Upsert("b", 0)
	assert.ErrorIs(t, err, ErrInvalidWeight)
	assert.NoError(t, tree.Check())
}

func TestRemoveByKey(t *testing.T) {
	tree := buildTree(t, 1, 2, 3, 4, 5, 6, 7)
	assert.False(t, tree.RemoveByKey(42))
	assert.Equal(t, 7, tree.Len())
	for _, k := range []int{4, 1, 7, 2} { // root, leaves, inner nodes
		require.True(t, tree.RemoveByKey(k))
		require.NoError(t, tree.Check())
		assert.False(t, tree.Contains(k))
	}
	assert.Equal(t, []int{3, 5, 6}, slices.Collect(tree.All()))
}

func TestRemoveByRank(t *testing.T) {
	tree := buildTree(t, 10, 20, 30, 40, 50)
	k, err := tree.RemoveByRank(1)
	require.NoError(t, err)
	assert.Equal(t, 20, k)
	require.NoError(t, tree.Check())
	k, err = tree.RemoveByRank(3)
	require.NoError(t, err)
	assert.Equal(t, 50, k)
	assert.Equal(t, []int{10, 30, 40}, slices.Collect(tree.All()))

	before := tree.String()
	_, err = tree.RemoveByRank(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = tree.RemoveByRank(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, before, tree.String())
}

func TestElementAtOutOfRange(t *testing.T) {
	tree := NewOrdered[int]()
	_, err := tree.ElementAt(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	tree = buildTree(t, 1, 2)
	_, err = tree.ElementAt(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, _, err = tree.EntryAt(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestWeightedPrefixSums(t *testing.T) {
	tree := NewOrdered[int]()
	require.NoError(t, tree.Insert(2, 3))
	require.NoError(t, tree.Insert(5, 2))
	require.NoError(t, tree.Insert(9, 4))

	assert.Equal(t, int64(0), tree.PrefixWeightSum(2))
	assert.Equal(t, int64(3), tree.PrefixWeightSum(5))
	assert.Equal(t, int64(5), tree.PrefixWeightSum(9))
	assert.Equal(t, int64(5), tree.PrefixWeightSum(6)) // key need not be present
	assert.Equal(t, int64(9), tree.PrefixWeightSum(100))

	rank, sum := tree.RankAtCumulativeWeight(4)
	assert.Equal(t, 1, rank)
	assert.Equal(t, int64(5), sum)
	rank, sum = tree.RankAtCumulativeWeight(3)
	assert.Equal(t, 0, rank)
	assert.Equal(t, int64(3), sum)
	rank, sum = tree.RankAtCumulativeWeight(9)
	assert.Equal(t, 2, rank)
	assert.Equal(t, int64(9), sum)
	rank, sum = tree.RankAtCumulativeWeight(10)
	assert.Equal(t, 3, rank)
	assert.Equal(t, int64(9), sum)
	rank, sum = tree.RankAtCumulativeWeight(0)
	assert.Equal(t, 0, rank)
	assert.Equal(t, int64(0), sum) // not the inclusive sum 3 at rank 0
	rank, sum = tree.RankAtCumulativeWeight(-4)
	assert.Equal(t, 0, rank)
	assert.Equal(t, int64(0), sum)
}

func TestEmptyTreeQueries(t *testing.T) {
	tree := NewOrdered[int]()
	rank, sum := tree.RankAtCumulativeWeight(17)
	assert.Equal(t, 0, rank)
	assert.Equal(t, int64(0), sum)
	_, err := tree.ElementAt(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, ok := tree.Min()
	assert.False(t, ok)
	_, ok = tree.Max()
	assert.False(t, ok)
	assert.Equal(t, "()", tree.String())
	assert.Empty(t, slices.Collect(tree.All()))
}

func TestDecreaseRemovesAtWeightOne(t *testing.T) {
	tree := buildTree(t, 1, 3, 5, 7)
	n := tree.Len()
	tree.Decrease(5)
	assert.False(t, tree.Contains(5))
	assert.Equal(t, n-1, tree.Len())
	tree.Decrease(5) // absent: no-op
	assert.Equal(t, n-1, tree.Len())
	require.NoError(t, tree.Check())
}

func TestIncreaseDecrease(t *testing.T) {
	tree := buildTree(t, 1, 2, 3)
	tree.Increase(2)
	tree.Increase(2)
	tree.Increase(4)
	w, _ := tree.Weight(2)
	assert.Equal(t, int64(3), w)
	w, _ = tree.Weight(4)
	assert.Equal(t, int64(1), w)
	assert.Equal(t, int64(6), tree.TotalWeight())
	tree.Decrease(2)
	w, _ = tree.Weight(2)
	assert.Equal(t, int64(2), w)
	require.NoError(t, tree.Check())

	assert.ErrorIs(t, tree.IncreaseBy(1, -1), ErrInvalidWeight)
	assert.ErrorIs(t, tree.DecreaseBy(1, -1), ErrInvalidWeight)
	require.NoError(t, tree.IncreaseBy(1, 0))
	require.NoError(t, tree.IncreaseBy(1, 9))
	w, _ = tree.Weight(1)
	assert.Equal(t, int64(10), w)
	require.NoError(t, tree.DecreaseBy(1, 100))
	assert.False(t, tree.Contains(1))
	require.NoError(t, tree.Check())
}

func TestUpdate(t *testing.T) {
	tree := buildTree(t, 1, 2, 3, 4, 5)
	shape := tree.Height()
	tree.Update(3, 10)
	w, _ := tree.Weight(3)
	assert.Equal(t, int64(10), w)
	assert.Equal(t, int64(14), tree.TotalWeight())
	assert.Equal(t, int64(12), tree.PrefixWeightSum(4))
	assert.Equal(t, shape, tree.Height())
	tree.Update(3, 2)
	assert.Equal(t, int64(6), tree.TotalWeight())
	tree.Update(6, 4) // absent: inserted
	assert.True(t, tree.Contains(6))
	tree.Update(2, 0)
	assert.False(t, tree.Contains(2))
	tree.Update(1, -5)
	assert.False(t, tree.Contains(1))
	assert.Equal(t, []int{3, 4, 5, 6}, slices.Collect(tree.All()))
	require.NoError(t, tree.Check())
}

func TestMinMaxCloneClear(t *testing.T) {
	tree := buildTree(t, 7, 2, 9, 4)
	lo, _ := tree.Min()
	hi, _ := tree.Max()
	assert.Equal(t, 2, lo)
	assert.Equal(t, 9, hi)

	c := tree.Clone()
	require.NoError(t, c.Check())
	c.RemoveByKey(7)
	c.Increase(2)
	assert.True(t, tree.Contains(7))
	w, _ := tree.Weight(2)
	assert.Equal(t, int64(1), w)

	tree.Clear()
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 3, c.Len())
}

func TestString(t *testing.T) {
	tree := buildTree(t, 2, 1, 3)
	tree.Update(3, 4)
	assert.Equal(t, "(1) 2 (3:4)", tree.String())
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := buildTree(t, 1, 2, 3)
	tree.root.left.sum = 17
	assert.ErrorIs(t, tree.Check(), ErrInvalidTree)
	tree = buildTree(t, 1, 2, 3)
	tree.root.left.key = 5
	assert.ErrorIs(t, tree.Check(), ErrInvalidTree)
	tree = buildTree(t, 1, 2, 3)
	tree.root.count = 2
	assert.ErrorIs(t, tree.Check(), ErrInvalidTree)
}
