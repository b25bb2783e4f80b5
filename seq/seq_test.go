package seq_test

import (
	"testing"

	"github.com/npillmayer/heist/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeqPrependAppend(t *testing.T) {
	s := seq.New[string]().Append("b").Append("c").Prepend("a").Append("d")
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.ToList().ToSlice())
	assert.Equal(t, 4, s.Len())
}

func TestSeqEmpty(t *testing.T) {
	s := seq.New[int]()
	assert.True(t, s.IsEmpty())
	_, ok := s.Begin()
	assert.False(t, ok)
	_, ok = s.End()
	assert.False(t, ok)
}

func TestSeqIterator(t *testing.T) {
	s := seq.Of(1, 2, 3)
	it, ok := s.Begin()
	require.True(t, ok)
	assert.Equal(t, 1, it.Get())
	it, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, 2, it.Get())
	it, ok = it.Prev()
	require.True(t, ok)
	assert.Equal(t, 1, it.Get())

	end, ok := s.End()
	require.True(t, ok)
	assert.Equal(t, 3, end.Get())
	_, ok = end.Next()
	assert.False(t, ok)
}

func TestSeqRemoveThroughIterator(t *testing.T) {
	s := seq.Of(1, 2, 3)
	it, _ := s.Begin()
	mid, ok := it.Next()
	require.True(t, ok)
	s2 := mid.Remove()
	assert.Equal(t, []int{1, 3}, s2.ToList().ToSlice())
	assert.Equal(t, []int{1, 2, 3}, s.ToList().ToSlice())
}

func TestSeqIsPersistent(t *testing.T) {
	s1 := seq.Of(1)
	s2 := s1.Prepend(0)
	assert.Equal(t, []int{1}, s1.ToList().ToSlice())
	assert.Equal(t, []int{0, 1}, s2.ToList().ToSlice())
}
