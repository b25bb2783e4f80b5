/*
Package seq implements a persistent sequence — the immutable
counterpart of a doubly-linked list, with O(log N) access to both ends.
Elements live in an ordered map under integer positions; Prepend and
Append allocate positions below the smallest and above the largest one
in use.
*/
package seq

import (
	"github.com/npillmayer/heist/fmap"
	"github.com/npillmayer/heist/list"
)

// Seq is a persistent sequence of values. The zero value is NOT usable;
// create sequences with New.
type Seq[A any] struct {
	m fmap.Map[int, A]
}

// New returns an empty sequence.
func New[A any]() Seq[A] {
	return Seq[A]{m: fmap.NewOrdered[int, A]()}
}

// Of returns a sequence of the given elements in order.
func Of[A any](xs ...A) Seq[A] {
	s := New[A]()
	for _, x := range xs {
		s = s.Append(x)
	}
	return s
}

// IsEmpty reports whether the sequence holds no elements.
func (s Seq[A]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Len returns the number of elements.
func (s Seq[A]) Len() int {
	return s.m.Size()
}

// Prepend puts a before the first element.
func (s Seq[A]) Prepend(a A) Seq[A] {
	if it, ok := s.m.Begin(); ok {
		return Seq[A]{m: s.m.Insert(it.Key()-1, a)}
	}
	return Seq[A]{m: s.m.Insert(0, a)}
}

// Append puts a after the last element.
func (s Seq[A]) Append(a A) Seq[A] {
	if it, ok := s.m.End(); ok {
		return Seq[A]{m: s.m.Insert(it.Key()+1, a)}
	}
	return Seq[A]{m: s.m.Insert(0, a)}
}

// Begin returns the iterator at the first element.
func (s Seq[A]) Begin() (Iterator[A], bool) {
	it, ok := s.m.Begin()
	return Iterator[A]{it: it}, ok
}

// End returns the iterator at the last element.
func (s Seq[A]) End() (Iterator[A], bool) {
	it, ok := s.m.End()
	return Iterator[A]{it: it}, ok
}

// ToList returns the elements front to back.
func (s Seq[A]) ToList() list.List[A] {
	return list.MapTo(s.m.ToList(), func(p fmap.Pair[int, A]) A { return p.Value })
}

// Iterator designates an element of a sequence snapshot.
type Iterator[A any] struct {
	it fmap.Iterator[int, A]
}

// Get returns the element at the iterator's position.
func (it Iterator[A]) Get() A {
	return it.it.Value()
}

// Next moves towards the back of the sequence.
func (it Iterator[A]) Next() (Iterator[A], bool) {
	nx, ok := it.it.Next()
	return Iterator[A]{it: nx}, ok
}

// Prev moves towards the front of the sequence.
func (it Iterator[A]) Prev() (Iterator[A], bool) {
	pv, ok := it.it.Prev()
	return Iterator[A]{it: pv}, ok
}

// Remove returns the sequence with the iterator's element deleted.
func (it Iterator[A]) Remove() Seq[A] {
	return Seq[A]{m: it.it.Remove()}
}
