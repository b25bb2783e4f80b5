package twothree

import (
	"github.com/npillmayer/heist/list"
)

// LowerBound returns the iterator at the smallest element >= pivot,
// reporting false when every element is smaller. n must not be nil.
func (n *Node[E]) LowerBound(cmp Compare[E], pivot E) (Iterator[E], bool) {
	stack, ok := lowerBound(cmp, list.List[position[E]]{}, n, pivot)
	if !ok {
		return Iterator[E]{}, false
	}
	return Iterator[E]{stack: stack}, true
}

// lowerBound walks down from n, preferring the leftmost subtree which
// may still hold an element >= pivot. When a separator a has a >= pivot,
// the left child of that pair is searched first; if nothing qualifies
// there, the separator itself is the answer.
func lowerBound[E any](cmp Compare[E], stack list.List[position[E]], n *Node[E], pivot E) (list.List[position[E]], bool) {
	push := func(ix int) list.List[position[E]] {
		return list.Cons(position[E]{node: n, ix: ix}, stack)
	}
	switch n.kind {
	case leaf1:
		if cmp(n.a, pivot) >= 0 {
			return push(0), true
		}
		return stack, false
	case leaf2:
		if cmp(n.a, pivot) >= 0 {
			return push(0), true
		}
		if cmp(n.b, pivot) >= 0 {
			return push(1), true
		}
		return stack, false
	case node2:
		if cmp(n.a, pivot) >= 0 {
			if st, ok := lowerBound(cmp, push(0), n.p, pivot); ok {
				return st, true
			}
			return push(1), true
		}
		return lowerBound(cmp, push(2), n.q, pivot)
	default: // node3
		if cmp(n.a, pivot) >= 0 {
			if st, ok := lowerBound(cmp, push(0), n.p, pivot); ok {
				return st, true
			}
			return push(1), true
		}
		if cmp(n.b, pivot) >= 0 {
			if st, ok := lowerBound(cmp, push(2), n.q, pivot); ok {
				return st, true
			}
			return push(3), true
		}
		return lowerBound(cmp, push(4), n.r, pivot)
	}
}

// UpperBound returns the iterator at the largest element <= pivot,
// reporting false when every element is larger. Note that this is the
// mirror of LowerBound, not the C++ STL's upper_bound. n must not be
// nil.
func (n *Node[E]) UpperBound(cmp Compare[E], pivot E) (Iterator[E], bool) {
	it, ok := n.LowerBound(cmp, pivot)
	if !ok {
		// everything is smaller, so the largest element qualifies
		return n.End(), true
	}
	if cmp(it.Get(), pivot) > 0 {
		return it.Prev()
	}
	return it, true
}

// Find returns the iterator at the element comparing equal to pivot,
// reporting false when there is none. n must not be nil.
func (n *Node[E]) Find(cmp Compare[E], pivot E) (Iterator[E], bool) {
	it, ok := n.LowerBound(cmp, pivot)
	if !ok || cmp(it.Get(), pivot) != 0 {
		return Iterator[E]{}, false
	}
	return it, true
}
