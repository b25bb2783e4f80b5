package bijection_test

import (
	"testing"

	"github.com/npillmayer/heist/bijection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBijectionAssociate(t *testing.T) {
	b := bijection.NewOrdered[int, string]().
		Associate(1, "one").Associate(2, "two")
	r, ok := b.Forward(1)
	require.True(t, ok)
	assert.Equal(t, "one", r)
	l, ok := b.Back("two")
	require.True(t, ok)
	assert.Equal(t, 2, l)
	assert.Equal(t, 2, b.Size())
}

func TestBijectionUnassociate(t *testing.T) {
	b := bijection.NewOrdered[int, string]().
		Associate(1, "one").Associate(2, "two")

	fwd := b.ForwardUnassociate(1)
	_, ok := fwd.Forward(1)
	assert.False(t, ok)
	_, ok = fwd.Back("one")
	assert.False(t, ok)
	assert.Equal(t, 1, fwd.Size())

	back := b.BackUnassociate("two")
	_, ok = back.Forward(2)
	assert.False(t, ok)
	assert.Equal(t, 1, back.Size())

	// unassociating an unknown value is a no-op
	assert.Equal(t, 2, b.ForwardUnassociate(9).Size())
	// and the original is untouched
	assert.Equal(t, 2, b.Size())
}

func TestBijectionIteration(t *testing.T) {
	b := bijection.NewOrdered[int, string]().
		Associate(2, "two").Associate(1, "one").Associate(3, "three")
	var ls []int
	var rs []string
	for it, ok := b.Begin(); ok; it, ok = it.Next() {
		ls = append(ls, it.Left())
		rs = append(rs, it.Right())
	}
	assert.Equal(t, []int{1, 2, 3}, ls)
	assert.Equal(t, []string{"one", "two", "three"}, rs)
}
