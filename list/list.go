package list

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmpty is returned by folds over an empty list that need at least
// one element.
var ErrEmpty = errors.New("list: empty container")

// List is a persistent singly-linked list. The zero value is the empty
// list. Lists are immutable: Cons and friends return new lists which
// share their tail with the input.
type List[A any] struct {
	cell *cons[A]
}

type cons[A any] struct {
	head A
	tail *cons[A]
}

// Cons prepends x to xs.
func Cons[A any](x A, xs List[A]) List[A] {
	return List[A]{cell: &cons[A]{head: x, tail: xs.cell}}
}

// Of builds a list from its arguments, first argument first.
func Of[A any](xs ...A) List[A] {
	var l List[A]
	for i := len(xs) - 1; i >= 0; i-- {
		l = Cons(xs[i], l)
	}
	return l
}

// FromSlice builds a list holding the elements of xs in order.
func FromSlice[A any](xs []A) List[A] {
	return Of(xs...)
}

// IsEmpty is the gate for Head and Tail.
func (l List[A]) IsEmpty() bool {
	return l.cell == nil
}

// Head returns the first element. Calling Head on an empty list is
// undefined (it panics); callers gate with IsEmpty.
func (l List[A]) Head() A {
	return l.cell.head
}

// Tail returns the list without its first element. Calling Tail on an
// empty list is undefined (it panics); callers gate with IsEmpty.
func (l List[A]) Tail() List[A] {
	return List[A]{cell: l.cell.tail}
}

// Len walks the list and counts.
func (l List[A]) Len() int {
	n := 0
	for xs := l; !xs.IsEmpty(); xs = xs.Tail() {
		n++
	}
	return n
}

// At returns the element at position ix, panicking when ix is past the
// end of the list.
func (l List[A]) At(ix int) A {
	xs := l
	for ix > 0 && !xs.IsEmpty() {
		xs = xs.Tail()
		ix--
	}
	return xs.Head()
}

// Reverse returns the list in opposite order.
func (l List[A]) Reverse() List[A] {
	var acc List[A]
	for xs := l; !xs.IsEmpty(); xs = xs.Tail() {
		acc = Cons(xs.Head(), acc)
	}
	return acc
}

// Map applies f to every element, keeping the element type. For a
// type-changing map use the package-level MapTo.
func (l List[A]) Map(f func(A) A) List[A] {
	return MapTo(l, f)
}

// MapTo applies f to every element of l, producing a list of the
// results in the same order.
func MapTo[A, B any](l List[A], f func(A) B) List[B] {
	var out List[B]
	for xs := l; !xs.IsEmpty(); xs = xs.Tail() {
		out = Cons(f(xs.Head()), out)
	}
	return out.Reverse()
}

// Filter keeps the elements matching pred, in order.
func (l List[A]) Filter(pred func(A) bool) List[A] {
	var out List[A]
	for xs := l; !xs.IsEmpty(); xs = xs.Tail() {
		if pred(xs.Head()) {
			out = Cons(xs.Head(), out)
		}
	}
	return out.Reverse()
}

// Partition returns the elements that do and do not match pred,
// respectively, both in input order.
func (l List[A]) Partition(pred func(A) bool) (List[A], List[A]) {
	var ins, outs List[A]
	for xs := l; !xs.IsEmpty(); xs = xs.Tail() {
		if pred(xs.Head()) {
			ins = Cons(xs.Head(), ins)
		} else {
			outs = Cons(xs.Head(), outs)
		}
	}
	return ins.Reverse(), outs.Reverse()
}

// SplitAt splits the list before position i.
func (l List[A]) SplitAt(i int) (List[A], List[A]) {
	var fst List[A]
	xs := l
	for i > 0 && !xs.IsEmpty() {
		fst = Cons(xs.Head(), fst)
		xs = xs.Tail()
		i--
	}
	return fst.Reverse(), xs
}

// Intersperse places x between every two adjacent elements.
func (l List[A]) Intersperse(x A) List[A] {
	if l.IsEmpty() || l.Tail().IsEmpty() {
		return l
	}
	return Cons(l.Head(), Cons(x, l.Tail().Intersperse(x)))
}

// Append concatenates l and other.
func (l List[A]) Append(other List[A]) List[A] {
	acc := other
	for xs := l.Reverse(); !xs.IsEmpty(); xs = xs.Tail() {
		acc = Cons(xs.Head(), acc)
	}
	return acc
}

// Concat flattens a list of lists.
func Concat[A any](lists List[List[A]]) List[A] {
	var out List[A]
	for ls := lists.Reverse(); !ls.IsEmpty(); ls = ls.Tail() {
		out = ls.Head().Append(out)
	}
	return out
}

// ConcatMap maps f over the list and concatenates the results.
func ConcatMap[A, B any](l List[A], f func(A) List[B]) List[B] {
	return Concat(MapTo(l, f))
}

// FoldL folds the list left-to-right.
func FoldL[A, B any](l List[A], f func(B, A) B, zero B) B {
	acc := zero
	for xs := l; !xs.IsEmpty(); xs = xs.Tail() {
		acc = f(acc, xs.Head())
	}
	return acc
}

// FoldR folds the list right-to-left.
func FoldR[A, B any](l List[A], f func(A, B) B, zero B) B {
	acc := zero
	for xs := l.Reverse(); !xs.IsEmpty(); xs = xs.Tail() {
		acc = f(xs.Head(), acc)
	}
	return acc
}

// FoldL1 folds a non-empty list with no initial value, returning
// ErrEmpty for the empty list.
func (l List[A]) FoldL1(f func(A, A) A) (A, error) {
	if l.IsEmpty() {
		var none A
		return none, ErrEmpty
	}
	return FoldL(l.Tail(), f, l.Head()), nil
}

// FoldR1 folds a non-empty list right-to-left with no initial value,
// returning ErrEmpty for the empty list.
func (l List[A]) FoldR1(f func(A, A) A) (A, error) {
	if l.IsEmpty() {
		var none A
		return none, ErrEmpty
	}
	rev := l.Reverse()
	return FoldL(rev.Tail(), func(b, a A) A { return f(a, b) }, rev.Head()), nil
}

// Any reports whether pred holds for at least one element.
func (l List[A]) Any(pred func(A) bool) bool {
	for xs := l; !xs.IsEmpty(); xs = xs.Tail() {
		if pred(xs.Head()) {
			return true
		}
	}
	return false
}

// Contains reports whether some element equals x under eq.
func (l List[A]) Contains(x A, eq func(A, A) bool) bool {
	return l.Any(func(a A) bool { return eq(a, x) })
}

// Equal compares two lists element-wise under eq.
func (l List[A]) Equal(other List[A], eq func(A, A) bool) bool {
	one, two := l, other
	for !one.IsEmpty() && !two.IsEmpty() {
		if !eq(one.Head(), two.Head()) {
			return false
		}
		one, two = one.Tail(), two.Tail()
	}
	return one.IsEmpty() && two.IsEmpty()
}

// ZipWith combines two lists element-wise, stopping at the shorter one.
func ZipWith[A, B, C any](f func(A, B) C, as List[A], bs List[B]) List[C] {
	var cs List[C]
	for !as.IsEmpty() && !bs.IsEmpty() {
		cs = Cons(f(as.Head(), bs.Head()), cs)
		as, bs = as.Tail(), bs.Tail()
	}
	return cs.Reverse()
}

// ToSlice copies the list into a fresh slice.
func (l List[A]) ToSlice() []A {
	var out []A
	for xs := l; !xs.IsEmpty(); xs = xs.Tail() {
		out = append(out, xs.Head())
	}
	return out
}

func (l List[A]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for xs := l; !xs.IsEmpty(); xs = xs.Tail() {
		fmt.Fprint(&sb, xs.Head())
		if !xs.Tail().IsEmpty() {
			sb.WriteByte(',')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
