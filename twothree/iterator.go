package twothree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/heist/list"
)

// position is one step of an iterator's recorded path: a node together
// with the index slot the path goes through.
type position[E any] struct {
	node *Node[E]
	ix   int
}

func (pos position[E]) String() string {
	return fmt.Sprintf("%d@%s", pos.ix, pos.node)
}

// Iterator designates an element of a tree by the full path from the
// root down to it. The top of the stack is the current position; its
// slot index says where in that node the element lives.
//
// An iterator owns the snapshot it was produced from: dropping the
// container does not invalidate it, and operations on other snapshots
// cannot either.
type Iterator[E any] struct {
	stack list.List[position[E]]
}

// Valid reports whether the iterator designates an element. The zero
// Iterator is invalid.
func (it Iterator[E]) Valid() bool {
	return !it.stack.IsEmpty()
}

// Get returns the element at the iterator's position.
func (it Iterator[E]) Get() E {
	top := it.stack.Head()
	switch top.node.kind {
	case leaf1:
		return top.node.a
	case leaf2:
		if top.ix == 0 {
			return top.node.a
		}
		return top.node.b
	case node2:
		return top.node.a
	default: // node3
		if top.ix == 1 {
			return top.node.a
		}
		return top.node.b
	}
}

// Next moves to the following element in order, reporting false when
// the iterator was at the last one.
func (it Iterator[E]) Next() (Iterator[E], bool) {
	return it.move(+1)
}

// Prev moves to the preceding element in order, reporting false when
// the iterator was at the first one.
func (it Iterator[E]) Prev() (Iterator[E], bool) {
	return it.move(-1)
}

func (it Iterator[E]) move(dir int) (Iterator[E], bool) {
	top := it.stack.Head()
	nextIx := top.ix + dir
	if nextIx >= 0 && nextIx < top.node.slots() {
		return Iterator[E]{stack: descend(it.stack.Tail(), top.node, dir, nextIx)}, true
	}
	if !it.stack.Tail().IsEmpty() {
		return Iterator[E]{stack: it.stack.Tail()}.move(dir)
	}
	return Iterator[E]{}, false
}

// descend pushes a frame for n at slot ix and, when ix addresses a
// child, keeps descending to the outermost terminal position of that
// subtree (leftmost for dir > 0, rightmost for dir < 0). ix < 0 asks
// for the node's own extreme slot in direction dir.
func descend[E any](stack list.List[position[E]], n *Node[E], dir int, ix int) list.List[position[E]] {
	switch n.kind {
	case leaf1:
		return list.Cons(position[E]{node: n, ix: 0}, stack)
	case leaf2:
		if ix < 0 {
			ix = extreme(dir, 1)
		}
		return list.Cons(position[E]{node: n, ix: ix}, stack)
	case node2:
		if ix < 0 {
			ix = extreme(dir, 2)
		}
		push := list.Cons(position[E]{node: n, ix: ix}, stack)
		switch ix {
		case 0:
			return descend(push, n.p, dir, -1)
		case 2:
			return descend(push, n.q, dir, -1)
		default:
			return push
		}
	default: // node3
		if ix < 0 {
			ix = extreme(dir, 4)
		}
		push := list.Cons(position[E]{node: n, ix: ix}, stack)
		switch ix {
		case 0:
			return descend(push, n.p, dir, -1)
		case 2:
			return descend(push, n.q, dir, -1)
		case 4:
			return descend(push, n.r, dir, -1)
		default:
			return push
		}
	}
}

func extreme(dir int, last int) int {
	if dir < 0 {
		return last
	}
	return 0
}

// Begin returns the iterator at n's smallest element. n must not be nil.
func (n *Node[E]) Begin() Iterator[E] {
	return Iterator[E]{stack: descend(list.List[position[E]]{}, n, +1, -1)}
}

// End returns the iterator at n's largest element. n must not be nil.
func (n *Node[E]) End() Iterator[E] {
	return Iterator[E]{stack: descend(list.List[position[E]]{}, n, -1, -1)}
}

// Unwind rebuilds the root of the tree this iterator refers to,
// assuming the top frame's node has been replaced by a fresh node: every
// ancestor is recreated so that it references the new child in the slot
// the path descended through.
func (it Iterator[E]) Unwind() *Node[E] {
	top := it.stack.Head()
	rest := it.stack.Tail()
	if rest.IsEmpty() {
		return top.node
	}
	parent := rest.Head()
	var renewed *Node[E]
	switch parent.node.kind {
	case node2:
		switch parent.ix {
		case 0:
			renewed = Node2(top.node, parent.node.a, parent.node.q)
		case 2:
			renewed = Node2(parent.node.p, parent.node.a, top.node)
		default:
			assertThat(false, "unwind impossible: 2-node parent at slot %d", parent.ix)
		}
	case node3:
		switch parent.ix {
		case 0:
			renewed = Node3(top.node, parent.node.a, parent.node.q, parent.node.b, parent.node.r)
		case 2:
			renewed = Node3(parent.node.p, parent.node.a, top.node, parent.node.b, parent.node.r)
		case 4:
			renewed = Node3(parent.node.p, parent.node.a, parent.node.q, parent.node.b, top.node)
		default:
			assertThat(false, "unwind impossible: 3-node parent at slot %d", parent.ix)
		}
	default:
		assertThat(false, "unwind impossible: leaf as parent")
	}
	return Iterator[E]{stack: list.Cons(position[E]{node: renewed, ix: 0}, rest.Tail())}.Unwind()
}

func (it Iterator[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for st := it.stack; !st.IsEmpty(); st = st.Tail() {
		fmt.Fprintf(&sb, "⟨%s⟩", st.Head())
	}
	sb.WriteByte(']')
	return sb.String()
}
