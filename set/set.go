/*
Package set implements a persistent ordered set.

A Set is a value: Insert and Remove return new sets sharing all
untouched structure with the receiver, old snapshots stay valid, and
snapshots may be read from any number of goroutines without
synchronization. Insert, Remove and the lookups are O(log N) on a 2-3
tree; Size and the whole-set operations walk the elements.
*/
package set

import (
	"fmt"
	"strings"

	"github.com/npillmayer/heist/list"
	"github.com/npillmayer/heist/twothree"
	"golang.org/x/exp/constraints"
)

// Set is a persistent ordered set of elements of type A. Create one
// with New, Of or FromList; the zero value has no comparator and is
// unusable.
type Set[A any] struct {
	cmp  twothree.Compare[A]
	root *twothree.Node[A]
}

// New returns an empty set ordered by cmp.
func New[A any](cmp twothree.Compare[A]) Set[A] {
	return Set[A]{cmp: cmp}
}

// Of returns a set of the given elements under their natural order.
func Of[A constraints.Ordered](xs ...A) Set[A] {
	s := New[A](Natural[A])
	for _, x := range xs {
		s = s.Insert(x)
	}
	return s
}

// Singleton returns a one-element set under natural order.
func Singleton[A constraints.Ordered](x A) Set[A] {
	return Of(x)
}

// FromList returns a set of the list's elements ordered by cmp.
func FromList[A any](cmp twothree.Compare[A], xs list.List[A]) Set[A] {
	return list.FoldL(xs, func(s Set[A], x A) Set[A] { return s.Insert(x) }, New(cmp))
}

// Natural compares elements of an ordered type with < and >.
func Natural[A constraints.Ordered](a, b A) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// IsEmpty reports whether the set has no elements.
func (s Set[A]) IsEmpty() bool {
	return s.root == nil
}

// Size counts the elements.
func (s Set[A]) Size() int {
	n := 0
	for it, ok := s.Begin(); ok; it, ok = it.Next() {
		n++
	}
	return n
}

// Insert returns a set that contains x. An element comparing equal to x
// is replaced by x.
func (s Set[A]) Insert(x A) Set[A] {
	return Set[A]{cmp: s.cmp, root: s.root.Insert(s.cmp, x)}
}

// Remove returns a set without the element comparing equal to x; the
// receiver is returned unchanged when there is none.
func (s Set[A]) Remove(x A) Set[A] {
	if it, ok := s.Find(x); ok {
		return it.Remove()
	}
	return s
}

// Contains reports membership of x.
func (s Set[A]) Contains(x A) bool {
	_, ok := s.Find(x)
	return ok
}

// Find returns the iterator at the element comparing equal to x.
func (s Set[A]) Find(x A) (Iterator[A], bool) {
	if s.root == nil {
		return Iterator[A]{}, false
	}
	it, ok := s.root.Find(s.cmp, x)
	return Iterator[A]{cmp: s.cmp, it: it}, ok
}

// LowerBound returns the iterator at the smallest element >= pivot.
func (s Set[A]) LowerBound(pivot A) (Iterator[A], bool) {
	if s.root == nil {
		return Iterator[A]{}, false
	}
	it, ok := s.root.LowerBound(s.cmp, pivot)
	return Iterator[A]{cmp: s.cmp, it: it}, ok
}

// UpperBound returns the iterator at the largest element <= pivot.
// This mirrors LowerBound and deliberately differs from the C++ STL's
// upper_bound convention.
func (s Set[A]) UpperBound(pivot A) (Iterator[A], bool) {
	if s.root == nil {
		return Iterator[A]{}, false
	}
	it, ok := s.root.UpperBound(s.cmp, pivot)
	return Iterator[A]{cmp: s.cmp, it: it}, ok
}

// Begin returns the iterator at the smallest element, reporting false
// for an empty set.
func (s Set[A]) Begin() (Iterator[A], bool) {
	if s.root == nil {
		return Iterator[A]{}, false
	}
	return Iterator[A]{cmp: s.cmp, it: s.root.Begin()}, true
}

// End returns the iterator at the largest element, reporting false for
// an empty set.
func (s Set[A]) End() (Iterator[A], bool) {
	if s.root == nil {
		return Iterator[A]{}, false
	}
	return Iterator[A]{cmp: s.cmp, it: s.root.End()}, true
}

// ToList returns the elements in ascending order.
func (s Set[A]) ToList() list.List[A] {
	var acc list.List[A]
	for it, ok := s.End(); ok; it, ok = it.Prev() {
		acc = list.Cons(it.Get(), acc)
	}
	return acc
}

// ToSlice returns the elements in ascending order.
func (s Set[A]) ToSlice() []A {
	var out []A
	for it, ok := s.Begin(); ok; it, ok = it.Next() {
		out = append(out, it.Get())
	}
	return out
}

// Equal reports whether both sets hold the same elements in the same
// order under the receiver's comparator.
func (s Set[A]) Equal(other Set[A]) bool {
	it1, ok1 := s.Begin()
	it2, ok2 := other.Begin()
	for ok1 && ok2 {
		if s.cmp(it1.Get(), it2.Get()) != 0 {
			return false
		}
		it1, ok1 = it1.Next()
		it2, ok2 = it2.Next()
	}
	return !ok1 && !ok2
}

// Union returns the monoidal append of both sets; elements of other win
// on equal keys.
func (s Set[A]) Union(other Set[A]) Set[A] {
	out := s
	for it, ok := other.Begin(); ok; it, ok = it.Next() {
		out = out.Insert(it.Get())
	}
	return out
}

// Diff removes all of other's elements from s.
func (s Set[A]) Diff(other Set[A]) Set[A] {
	out := s
	for it, ok := other.Begin(); ok; it, ok = it.Next() {
		out = out.Remove(it.Get())
	}
	return out
}

// Intersect keeps the elements present in both sets.
func (s Set[A]) Intersect(other Set[A]) Set[A] {
	out := New(s.cmp)
	for it, ok := s.Begin(); ok; it, ok = it.Next() {
		if other.Contains(it.Get()) {
			out = out.Insert(it.Get())
		}
	}
	return out
}

// Filter keeps the elements matching pred.
func (s Set[A]) Filter(pred func(A) bool) Set[A] {
	out := New(s.cmp)
	for it, ok := s.Begin(); ok; it, ok = it.Next() {
		if pred(it.Get()) {
			out = out.Insert(it.Get())
		}
	}
	return out
}

// Map builds a set of f applied to every element, under the same
// comparator.
func (s Set[A]) Map(f func(A) A) Set[A] {
	out := New(s.cmp)
	for it, ok := s.Begin(); ok; it, ok = it.Next() {
		out = out.Insert(f(it.Get()))
	}
	return out
}

// FoldL folds the elements in ascending order.
func FoldL[A, B any](s Set[A], f func(B, A) B, zero B) B {
	acc := zero
	for it, ok := s.Begin(); ok; it, ok = it.Next() {
		acc = f(acc, it.Get())
	}
	return acc
}

// FoldL1 folds a non-empty set with no initial value, returning
// list.ErrEmpty for the empty set.
func (s Set[A]) FoldL1(f func(A, A) A) (A, error) {
	it, ok := s.Begin()
	if !ok {
		var none A
		return none, list.ErrEmpty
	}
	acc := it.Get()
	for it, ok = it.Next(); ok; it, ok = it.Next() {
		acc = f(acc, it.Get())
	}
	return acc, nil
}

func (s Set[A]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for it, ok := s.Begin(); ok; it, ok = it.Next() {
		if !first {
			sb.WriteByte(',')
		}
		fmt.Fprint(&sb, it.Get())
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}

// Iterator designates an element of a set snapshot. It stays valid
// regardless of what happens to other snapshots.
type Iterator[A any] struct {
	cmp twothree.Compare[A]
	it  twothree.Iterator[A]
}

// Get returns the element at the iterator's position.
func (it Iterator[A]) Get() A {
	return it.it.Get()
}

// Next moves to the following element.
func (it Iterator[A]) Next() (Iterator[A], bool) {
	nx, ok := it.it.Next()
	return Iterator[A]{cmp: it.cmp, it: nx}, ok
}

// Prev moves to the preceding element.
func (it Iterator[A]) Prev() (Iterator[A], bool) {
	pv, ok := it.it.Prev()
	return Iterator[A]{cmp: it.cmp, it: pv}, ok
}

// Remove returns the set with the iterator's element deleted.
func (it Iterator[A]) Remove() Set[A] {
	return Set[A]{cmp: it.cmp, root: it.it.Remove()}
}
