package indexed

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeSetAddRemove(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := NewOrderedSet[int]()
	for _, k := range []int{50, 10, 40, 20, 30} {
		assert.True(t, s.Add(k))
	}
	assert.False(t, s.Add(20), "duplicate add must report false")
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, []int{10, 20, 30, 40, 50}, slices.Collect(s.All()))
	assert.Equal(t, 2, s.IndexOf(30))
	assert.Equal(t, -1, s.IndexOf(35))
	k, err := s.ElementAt(4)
	require.NoError(t, err)
	assert.Equal(t, 50, k)
	//
	assert.True(t, s.Remove(10))
	assert.False(t, s.Remove(10))
	k, err = s.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 20, k)
	_, err = s.RemoveAt(3)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	lo, _ := s.Min()
	hi, _ := s.Max()
	assert.Equal(t, 30, lo)
	assert.Equal(t, 50, hi)
	assert.True(t, s.Contains(40))
	require.NoError(t, s.Tree().Check())
}

func TestTreeSetCustomOrder(t *testing.T) {
	_, err := NewTreeSet[string](nil)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	//
	s, err := NewTreeSet(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	require.NoError(t, err)
	s.Add("beta")
	s.Add("Alpha")
	assert.False(t, s.Add("ALPHA"))
	assert.Equal(t, []string{"Alpha", "beta"}, slices.Collect(s.All()))
}

func TestTreeSetAlgebra(t *testing.T) {
	s := NewOrderedSet[int]()
	s.UnionWith(slices.Values([]int{1, 2, 3, 4, 5}))
	s.ExceptWith(slices.Values([]int{2, 4}))
	assert.Equal(t, []int{1, 3, 5}, slices.Collect(s.All()))
	assert.Equal(t, 3, s.Len())
	s.SymmetricExceptWith(slices.Values([]int{3, 7}))
	assert.Equal(t, []int{1, 5, 7}, slices.Collect(s.All()))
	s.IntersectWith(slices.Values([]int{7, 1, 9}))
	assert.Equal(t, []int{1, 7}, slices.Collect(s.All()))
	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestTreeSetAlgebraWithRepeatedKeys(t *testing.T) {
	s := NewOrderedSet[int]()
	s.Add(1)
	s.UnionWith(slices.Values([]int{2, 2, 2}))
	s.SymmetricExceptWith(slices.Values([]int{9, 9}))
	assert.Equal(t, []int{1, 2, 9}, slices.Collect(s.All()))
	assert.Equal(t, int64(3), s.Tree().TotalWeight(), "every element has weight 1")
	require.NoError(t, s.Tree().Check())
}
