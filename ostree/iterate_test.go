package ostree

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIteratorNthNext(t *testing.T) {
	tree := buildTree(t, 50, 10, 40, 20, 30, 60, 70)
	it := tree.MakeIter()
	var keys []int
	var ranks []int
	for it.Nth(2); it.Valid(); it.Next() {
		keys = append(keys, it.Key())
		ranks = append(ranks, it.Rank())
	}
	assert.Equal(t, []int{30, 40, 50, 60, 70}, keys)
	assert.Equal(t, []int{2, 3, 4, 5, 6}, ranks)
	//
	it.Nth(7)
	assert.False(t, it.Valid())
	it.Nth(-1)
	assert.False(t, it.Valid())
}

func TestIteratorFirstIsRestartable(t *testing.T) {
	tree := buildTree(t, 3, 1, 2)
	it := tree.MakeIter()
	for range 2 {
		var keys []int
		for it.First(); it.Valid(); it.Next() {
			keys = append(keys, it.Key())
			assert.Equal(t, int64(1), it.Weight())
		}
		assert.Equal(t, []int{1, 2, 3}, keys)
	}
	empty := NewOrdered[int]().MakeIter()
	empty.First()
	assert.False(t, empty.Valid())
}

func TestIteratorEveryStartRank(t *testing.T) {
	keys := make([]int, 100)
	for i := range keys {
		keys[i] = i * 2
	}
	tree := buildTree(t, keys...)
	it := tree.MakeIter()
	for start := range keys {
		it.Nth(start)
		for i := start; i < len(keys); i++ {
			if !it.Valid() || it.Key() != keys[i] {
				t.Fatalf("start=%d: expected key %d at rank %d", start, keys[i], i)
			}
			it.Next()
		}
		assert.False(t, it.Valid())
	}
}

func TestAllStopsEarly(t *testing.T) {
	tree := buildTree(t, 1, 2, 3, 4, 5)
	var seen []int
	for k := range tree.All() {
		seen = append(seen, k)
		if k == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3}, seen)
	//
	n := 0
	tree.ForEach(func(key int, weight int64) bool {
		n++
		return key < 2
	})
	assert.Equal(t, 2, n)
}

func TestEntriesRestartable(t *testing.T) {
	tree := buildTree(t, 2, 1)
	tree.Update(2, 5)
	seq := tree.Entries()
	for range 2 {
		var weights []int64
		for _, w := range seq {
			weights = append(weights, w)
		}
		assert.Equal(t, []int64{1, 5}, weights)
	}
	assert.Empty(t, slices.Collect(NewOrdered[int]().All()))
}

func TestWalkReportsStructure(t *testing.T) {
	tree := buildTree(t, 1, 2, 3)
	var infos []NodeInfo[int]
	tree.Walk(func(info NodeInfo[int]) bool {
		infos = append(infos, info)
		return true
	})
	if assert.Len(t, infos, 3) {
		assert.Equal(t, 2, infos[1].Key)
		assert.Equal(t, 0, infos[1].Depth)
		assert.Equal(t, 3, infos[1].Count)
		assert.Equal(t, 2, infos[1].Height)
		assert.Equal(t, 1, infos[0].Depth)
		assert.Equal(t, 2, infos[2].Rank)
		assert.Equal(t, 0, infos[2].Balance)
	}
}
