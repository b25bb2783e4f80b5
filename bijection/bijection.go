/*
Package bijection implements an efficiently searched one-to-one
correspondence between values of two types: two ordered maps, one per
direction, always updated together.
*/
package bijection

import (
	"github.com/npillmayer/heist/fmap"
	"github.com/npillmayer/heist/set"
	"golang.org/x/exp/constraints"
)

// Bijection is a persistent two-way association between L and R values.
// Create one with New or NewOrdered; the zero value is unusable.
type Bijection[L, R any] struct {
	forward fmap.Map[L, R]
	back    fmap.Map[R, L]
}

// New returns an empty bijection with sides ordered by lcmp and rcmp.
func New[L, R any](lcmp func(L, L) int, rcmp func(R, R) int) Bijection[L, R] {
	return Bijection[L, R]{
		forward: fmap.New[L, R](lcmp),
		back:    fmap.New[R, L](rcmp),
	}
}

// NewOrdered returns an empty bijection over naturally ordered types.
func NewOrdered[L, R constraints.Ordered]() Bijection[L, R] {
	return New[L, R](set.Natural[L], set.Natural[R])
}

// Associate adds the two-way association between l and r.
func (b Bijection[L, R]) Associate(l L, r R) Bijection[L, R] {
	return Bijection[L, R]{
		forward: b.forward.Insert(l, r),
		back:    b.back.Insert(r, l),
	}
}

// ForwardUnassociate removes the association between l and whatever it
// was associated with; a no-op when l is unassociated.
func (b Bijection[L, R]) ForwardUnassociate(l L) Bijection[L, R] {
	if r, ok := b.Forward(l); ok {
		return b.unassociate(l, r)
	}
	return b
}

// BackUnassociate removes the association between r and whatever it was
// associated with; a no-op when r is unassociated.
func (b Bijection[L, R]) BackUnassociate(r R) Bijection[L, R] {
	if l, ok := b.Back(r); ok {
		return b.unassociate(l, r)
	}
	return b
}

// Forward returns what l is associated with.
func (b Bijection[L, R]) Forward(l L) (R, bool) {
	return b.forward.Lookup(l)
}

// Back returns what r is associated with.
func (b Bijection[L, R]) Back(r R) (L, bool) {
	return b.back.Lookup(r)
}

// Size returns the number of associations.
func (b Bijection[L, R]) Size() int {
	return b.forward.Size()
}

// Begin returns the iterator at the association with the smallest left
// value.
func (b Bijection[L, R]) Begin() (Iterator[L, R], bool) {
	it, ok := b.forward.Begin()
	return Iterator[L, R]{it: it}, ok
}

// End returns the iterator at the association with the largest left
// value.
func (b Bijection[L, R]) End() (Iterator[L, R], bool) {
	it, ok := b.forward.End()
	return Iterator[L, R]{it: it}, ok
}

func (b Bijection[L, R]) unassociate(l L, r R) Bijection[L, R] {
	return Bijection[L, R]{
		forward: b.forward.Remove(l),
		back:    b.back.Remove(r),
	}
}

// Iterator walks the associations in left-value order.
type Iterator[L, R any] struct {
	it fmap.Iterator[L, R]
}

// Left returns the association's left value.
func (it Iterator[L, R]) Left() L {
	return it.it.Key()
}

// Right returns the association's right value.
func (it Iterator[L, R]) Right() R {
	return it.it.Value()
}

// Next moves to the association with the following left value.
func (it Iterator[L, R]) Next() (Iterator[L, R], bool) {
	nx, ok := it.it.Next()
	return Iterator[L, R]{it: nx}, ok
}

// Prev moves to the association with the preceding left value.
func (it Iterator[L, R]) Prev() (Iterator[L, R], bool) {
	pv, ok := it.it.Prev()
	return Iterator[L, R]{it: pv}, ok
}
