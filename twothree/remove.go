package twothree

import (
	"github.com/npillmayer/heist/list"
)

// Remove deletes the element at the iterator's position and returns the
// root of the resulting tree; nil means the tree became empty. The
// receiver's snapshot is untouched.
//
// Deletion at an internal node first swaps the target with its in-order
// successor (or predecessor) and then deletes that from its leaf. A
// deletion that empties a one-element leaf creates a hole which is
// bubbled up the recorded path, borrowing from or merging with siblings
// until leaf-balance is restored.
func (it Iterator[E]) Remove() *Node[E] {
	top := it.stack.Head()
	n := top.node
	switch n.kind {
	case node3:
		if top.ix == 1 {
			succ, ok := it.Next()
			assertThat(ok, "3-node separator without successor")
			swapped := Node3(n.p, succ.Get(), n.q, n.b, n.r)
			inner := Iterator[E]{stack: list.Cons(position[E]{node: swapped, ix: top.ix}, it.stack.Tail())}
			leaf, ok := inner.Next()
			assertThat(ok, "3-node separator without successor")
			return leaf.Remove()
		}
		pred, ok := it.Prev()
		assertThat(ok, "3-node separator without predecessor")
		swapped := Node3(n.p, n.a, n.q, pred.Get(), n.r)
		inner := Iterator[E]{stack: list.Cons(position[E]{node: swapped, ix: top.ix}, it.stack.Tail())}
		leaf, ok := inner.Prev()
		assertThat(ok, "3-node separator without predecessor")
		return leaf.Remove()

	case node2:
		succ, ok := it.Next()
		assertThat(ok, "2-node separator without successor")
		swapped := Node2(n.p, succ.Get(), n.q)
		inner := Iterator[E]{stack: list.Cons(position[E]{node: swapped, ix: top.ix}, it.stack.Tail())}
		leaf, ok := inner.Next()
		assertThat(ok, "2-node separator without successor")
		return leaf.Remove()

	case leaf2:
		survivor := n.a
		if top.ix == 0 {
			survivor = n.b
		}
		return Iterator[E]{
			stack: list.Cons(position[E]{node: Leaf1(survivor), ix: 0}, it.stack.Tail()),
		}.Unwind()

	default: // leaf1: deleting the only element leaves a hole
		tracer().Debugf("remove: hole at leaf, bubbling up")
		return bubble(
			func() *Node[E] { return nil },
			func(l E, r *Node[E]) *Node[E] { return Leaf2(l, r.a) },
			func(l *Node[E], r E) *Node[E] { return Leaf2(l.a, r) },
			func(l E, r *Node[E]) (*Node[E], E, *Node[E]) { return Leaf1(l), r.a, Leaf1(r.b) },
			func(l *Node[E], r E) (*Node[E], E, *Node[E]) { return Leaf1(l.a), l.b, Leaf1(r) },
			it.stack.Tail(),
		)
	}
}

// bubble repairs a hole in one child of the stack's top node. The
// combinators are level-specific node builders:
//
//   - mk0 finishes the walk when the hole reached past the root,
//   - mk3Left / mk3Right merge hole-side material, a separator and a
//     one-element sibling into a single two-element node (a Leaf2 or a
//     3-node),
//   - splitLeft / splitRight redistribute a two-element sibling,
//     yielding two children and a fresh separator.
//
// A merge below a 2-node parent makes the parent the new hole and
// recurses with combinators lifted one level; a merge below a 3-node
// parent, and every borrow, terminates and unwinds the rest of the path.
func bubble[E any](
	mk0 func() *Node[E],
	mk3Left func(E, *Node[E]) *Node[E],
	mk3Right func(*Node[E], E) *Node[E],
	splitLeft func(E, *Node[E]) (*Node[E], E, *Node[E]),
	splitRight func(*Node[E], E) (*Node[E], E, *Node[E]),
	stack list.List[position[E]],
) *Node[E] {
	if stack.IsEmpty() {
		return mk0()
	}
	top := stack.Head()
	n := top.node

	if n.kind == node2 {
		sibling := n.q
		if top.ix != 0 {
			sibling = n.p
		}
		if sibling.isTwoNode() {
			// 2-node parent, 2-node sibling: merge; the parent itself
			// becomes the hole one level up.
			var merged *Node[E]
			if top.ix == 0 {
				merged = mk3Left(n.a, sibling)
			} else {
				merged = mk3Right(sibling, n.a)
			}
			tracer().Debugf("bubble: merged %s, hole moves up", merged)
			return bubble(
				func() *Node[E] { return merged },
				func(l E, r *Node[E]) *Node[E] {
					return Node3(merged, l, r.p, r.a, r.q)
				},
				func(l *Node[E], r E) *Node[E] {
					return Node3(l.p, l.a, l.q, r, merged)
				},
				func(l E, r *Node[E]) (*Node[E], E, *Node[E]) {
					return Node2(merged, l, r.p), r.a, Node2(r.q, r.b, r.r)
				},
				func(l *Node[E], r E) (*Node[E], E, *Node[E]) {
					return Node2(l.p, l.a, l.q), l.b, Node2(l.r, r, merged)
				},
				stack.Tail(),
			)
		}
		// 2-node parent, 3-node sibling: borrow through the separator
		// and terminate.
		var left *Node[E]
		var sep E
		var right *Node[E]
		if top.ix == 0 {
			left, sep, right = splitLeft(n.a, sibling)
		} else {
			left, sep, right = splitRight(sibling, n.a)
		}
		return unwindFrom(Node2(left, sep, right), stack.Tail())
	}

	assertThat(n.kind == node3, "bubble impossible: leaf as parent")
	switch top.ix {
	case 0:
		if n.q.isTwoNode() {
			return unwindFrom(Node2(mk3Left(n.a, n.q), n.b, n.r), stack.Tail())
		}
		left, sep, right := splitLeft(n.a, n.q)
		return unwindFrom(Node3(left, sep, right, n.b, n.r), stack.Tail())
	case 2:
		if n.p.isTwoNode() {
			return unwindFrom(Node2(mk3Right(n.p, n.a), n.b, n.r), stack.Tail())
		}
		left, sep, right := splitRight(n.p, n.a)
		return unwindFrom(Node3(left, sep, right, n.b, n.r), stack.Tail())
	case 4:
		if n.q.isTwoNode() {
			return unwindFrom(Node2(n.p, n.a, mk3Right(n.q, n.b)), stack.Tail())
		}
		left, sep, right := splitRight(n.q, n.b)
		return unwindFrom(Node3(n.p, n.a, left, sep, right), stack.Tail())
	default:
		assertThat(false, "bubble impossible: 3-node parent at slot %d", top.ix)
		return nil
	}
}

// unwindFrom replaces the path's current node by n and rebuilds the
// root along the remaining frames.
func unwindFrom[E any](n *Node[E], rest list.List[position[E]]) *Node[E] {
	return Iterator[E]{stack: list.Cons(position[E]{node: n, ix: 0}, rest)}.Unwind()
}
