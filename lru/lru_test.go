package lru

import (
	"testing"

	"github.com/npillmayer/heist/fmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairs(c Cache[int, string]) []fmap.Pair[int, string] {
	return c.ToList().ToSlice()
}

func p(k int, v string) fmap.Pair[int, string] {
	return fmap.Pair[int, string]{Key: k, Value: v}
}

func TestCacheKeepsRecencyOrder(t *testing.T) {
	c := NewOrderedMax[int, string](10).
		Insert(10, "a").Insert(5, "b").Insert(7, "c").Insert(8, "d")
	require.True(t, c.consistent())
	assert.Equal(t, []fmap.Pair[int, string]{
		p(10, "a"), p(5, "b"), p(7, "c"), p(8, "d"),
	}, pairs(c))
	assert.Equal(t, 4, c.Size())
}

func TestCacheEvictsOldest(t *testing.T) {
	c := NewOrderedMax[int, string](4).
		Insert(10, "a").Insert(5, "b").Insert(7, "c").Insert(8, "d").Insert(12, "e")
	require.True(t, c.consistent())
	assert.Equal(t, []fmap.Pair[int, string]{
		p(5, "b"), p(7, "c"), p(8, "d"), p(12, "e"),
	}, pairs(c))
}

func TestCacheTouchOfEvictedKeyIsNoOp(t *testing.T) {
	c := NewOrderedMax[int, string](4).
		Insert(10, "a").Insert(5, "b").Insert(7, "c").Insert(8, "d").
		Insert(12, "e"). // evicts 10
		Touch(10).       // 10 is gone: no-op
		Insert(1, "f")   // evicts 5
	require.True(t, c.consistent())
	assert.Equal(t, []fmap.Pair[int, string]{
		p(7, "c"), p(8, "d"), p(12, "e"), p(1, "f"),
	}, pairs(c))
}

func TestCacheTouchRefreshes(t *testing.T) {
	c := NewOrderedMax[int, string](4).
		Insert(10, "a").Insert(5, "b").Insert(7, "c").Insert(8, "d").
		Touch(10).       // 10 becomes freshest
		Insert(12, "e"). // evicts 5
		Insert(1, "f")   // evicts 7
	require.True(t, c.consistent())
	assert.Equal(t, []fmap.Pair[int, string]{
		p(8, "d"), p(10, "a"), p(12, "e"), p(1, "f"),
	}, pairs(c))
}

func TestCacheRemove(t *testing.T) {
	c := NewOrderedMax[int, string](4).
		Insert(10, "a").Insert(5, "b").Insert(7, "c").Insert(8, "d").
		Remove(5).
		Insert(12, "e").
		Touch(10).
		Insert(1, "f") // evicts 7
	require.True(t, c.consistent())
	assert.Equal(t, []fmap.Pair[int, string]{
		p(8, "d"), p(12, "e"), p(10, "a"), p(1, "f"),
	}, pairs(c))
	assert.Equal(t, 4, c.Size())
}

func TestCacheInsertOfPresentKeyUpdatesValue(t *testing.T) {
	c := NewOrderedMax[int, string](4).
		Insert(1, "one").Insert(2, "two").Insert(1, "uno")
	v, ok := c.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "uno", v)
	assert.Equal(t, 2, c.Size())
	// 1 was re-stamped, so 2 is now the oldest
	k, _, ok := c.Oldest()
	require.True(t, ok)
	assert.Equal(t, 2, k)
}

func TestCacheOldest(t *testing.T) {
	c := NewOrderedMax[int, string](10)
	_, _, ok := c.Oldest()
	assert.False(t, ok)
	c = c.Insert(3, "x").Insert(1, "y")
	k, v, ok := c.Oldest()
	require.True(t, ok)
	assert.Equal(t, 3, k)
	assert.Equal(t, "x", v)
}

func TestCacheSizeNeverExceedsMax(t *testing.T) {
	const max = 4
	c := NewOrderedMax[int, int](max)
	for i := 0; i < 100; i++ {
		c = c.Insert(i%7, i)
		require.LessOrEqual(t, c.Size(), max, "after insert %d", i)
		require.True(t, c.consistent(), "after insert %d", i)
		k, _, ok := c.Oldest()
		require.True(t, ok)
		// the oldest key owns the smallest recency stamp
		rit, _ := c.recency.Begin()
		require.Equal(t, rit.Value(), k)
	}
}

func TestCacheCustomPurgePredicate(t *testing.T) {
	// purge everything below a moving watermark, supplied via closure
	watermark := 0
	c := NewOrdered[int, string](func(c Cache[int, string]) bool {
		k, _, ok := c.Oldest()
		return ok && k < watermark
	})
	c = c.Insert(1, "a").Insert(2, "b").Insert(3, "c")
	assert.Equal(t, 3, c.Size())
	watermark = 3
	c = c.Purge()
	assert.Equal(t, 1, c.Size())
	_, ok := c.Lookup(3)
	assert.True(t, ok)
}

func TestCacheSnapshotIsolation(t *testing.T) {
	c := NewOrderedMax[int, string](4).Insert(1, "a").Insert(2, "b")
	before := pairs(c)
	c.Insert(3, "c")
	c.Touch(1)
	c.Remove(2)
	assert.Equal(t, before, pairs(c))
}
