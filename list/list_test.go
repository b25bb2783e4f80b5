package list_test

import (
	"strconv"
	"testing"

	"github.com/npillmayer/heist/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eqInt(a, b int) bool { return a == b }

func TestListConsAndAccess(t *testing.T) {
	l := list.Cons(1, list.Cons(2, list.Cons(3, list.List[int]{})))
	assert.False(t, l.IsEmpty())
	assert.Equal(t, 1, l.Head())
	assert.Equal(t, 2, l.Tail().Head())
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 3, l.At(2))
}

func TestListOfKeepsOrder(t *testing.T) {
	l := list.Of(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
	assert.True(t, l.Equal(list.FromSlice([]int{1, 2, 3}), eqInt))
}

func TestListSharesTail(t *testing.T) {
	tail := list.Of(2, 3)
	l := list.Cons(1, tail)
	assert.Equal(t, []int{2, 3}, tail.ToSlice())
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
}

func TestListReverse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, list.Of(1, 2, 3).Reverse().ToSlice())
	assert.True(t, list.List[int]{}.Reverse().IsEmpty())
}

func TestListMapFilter(t *testing.T) {
	l := list.Of(1, 2, 3, 4)
	assert.Equal(t, []int{2, 4, 6, 8}, l.Map(func(x int) int { return 2 * x }).ToSlice())
	assert.Equal(t, []int{2, 4}, l.Filter(func(x int) bool { return x%2 == 0 }).ToSlice())
	strs := list.MapTo(l, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3", "4"}, strs.ToSlice())
}

func TestListConcat(t *testing.T) {
	l := list.Of(1, 2).Append(list.Of(3, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, l.ToSlice())
	ll := list.Of(list.Of(1), list.Of(2, 3), list.List[int]{})
	assert.Equal(t, []int{1, 2, 3}, list.Concat(ll).ToSlice())
	cm := list.ConcatMap(list.Of(1, 2), func(x int) list.List[int] {
		return list.Of(x, x)
	})
	assert.Equal(t, []int{1, 1, 2, 2}, cm.ToSlice())
}

func TestListFolds(t *testing.T) {
	l := list.Of(1, 2, 3, 4)
	assert.Equal(t, 10, list.FoldL(l, func(b, a int) int { return b + a }, 0))
	assert.Equal(t, "1234", list.FoldR(l, func(a int, b string) string {
		return strconv.Itoa(a) + b
	}, ""))

	first, err := l.FoldL1(func(a, b int) int { return a })
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	diff, err := l.FoldR1(func(a, b int) int { return a - b })
	require.NoError(t, err)
	assert.Equal(t, 1-(2-(3-4)), diff)

	_, err = list.List[int]{}.FoldL1(func(a, b int) int { return a })
	assert.ErrorIs(t, err, list.ErrEmpty)
	_, err = list.List[int]{}.FoldR1(func(a, b int) int { return a })
	assert.ErrorIs(t, err, list.ErrEmpty)
}

func TestListSplitAtPartition(t *testing.T) {
	l := list.Of(1, 2, 3, 4, 5)
	fst, snd := l.SplitAt(2)
	assert.Equal(t, []int{1, 2}, fst.ToSlice())
	assert.Equal(t, []int{3, 4, 5}, snd.ToSlice())

	ins, outs := l.Partition(func(x int) bool { return x%2 == 1 })
	assert.Equal(t, []int{1, 3, 5}, ins.ToSlice())
	assert.Equal(t, []int{2, 4}, outs.ToSlice())
}

func TestListIntersperse(t *testing.T) {
	assert.Equal(t, []int{1, 0, 2, 0, 3}, list.Of(1, 2, 3).Intersperse(0).ToSlice())
	assert.Equal(t, []int{1}, list.Of(1).Intersperse(0).ToSlice())
}

func TestListSearch(t *testing.T) {
	l := list.Of(1, 2, 3)
	assert.True(t, l.Contains(2, eqInt))
	assert.False(t, l.Contains(9, eqInt))
	assert.True(t, l.Any(func(x int) bool { return x > 2 }))
}

func TestListZipWith(t *testing.T) {
	zipped := list.ZipWith(func(a int, b string) string {
		return b + strconv.Itoa(a)
	}, list.Of(1, 2, 3), list.Of("a", "b"))
	assert.Equal(t, []string{"a1", "b2"}, zipped.ToSlice())
}

func TestListString(t *testing.T) {
	assert.Equal(t, "[1,2,3]", list.Of(1, 2, 3).String())
	assert.Equal(t, "[]", list.List[int]{}.String())
}

func TestListLongChainIsHandled(t *testing.T) {
	// building and dropping a long chain must not blow the stack
	var l list.List[int]
	for i := 0; i < 500000; i++ {
		l = list.Cons(i, l)
	}
	assert.Equal(t, 500000, l.Len())
}
