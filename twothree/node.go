package twothree

import (
	"fmt"
	"strings"
)

// Compare orders elements: negative for a < b, zero for equal, positive
// for a > b.
type Compare[E any] func(a, b E) int

// kind tags the four node shapes.
type kind int8

const (
	leaf1 kind = iota // one element, no children
	leaf2             // two elements, no children
	node2             // two children, one separator
	node3             // three children, two separators
)

// Node is one node of a 2-3 tree: a tagged variant of the four shapes
// Leaf1(a), Leaf2(a,b), Node2(p,a,q) and Node3(p,a,q,b,r). A nil *Node
// is the empty tree. Nodes are immutable once constructed.
//
// Iteration addresses a node through index slots: children sit at even
// slots, elements at odd slots (with the one-element leaf's single
// element at slot 0). Leaf1 has 1 slot, Leaf2 has 2, Node2 has 3 and
// Node3 has 5.
type Node[E any] struct {
	kind    kind
	a, b    E
	p, q, r *Node[E]
}

// Leaf1 constructs a one-element leaf.
func Leaf1[E any](a E) *Node[E] {
	return &Node[E]{kind: leaf1, a: a}
}

// Leaf2 constructs a two-element leaf; a must order before b.
func Leaf2[E any](a, b E) *Node[E] {
	return &Node[E]{kind: leaf2, a: a, b: b}
}

// Node2 constructs an internal 2-node with max(p) < a < min(q).
func Node2[E any](p *Node[E], a E, q *Node[E]) *Node[E] {
	return &Node[E]{kind: node2, a: a, p: p, q: q}
}

// Node3 constructs an internal 3-node with
// max(p) < a < min(q) < b < min(r).
func Node3[E any](p *Node[E], a E, q *Node[E], b E, r *Node[E]) *Node[E] {
	return &Node[E]{kind: node3, a: a, b: b, p: p, q: q, r: r}
}

// slots returns the number of index slots of the node's shape.
func (n *Node[E]) slots() int {
	switch n.kind {
	case leaf1:
		return 1
	case leaf2:
		return 2
	case node2:
		return 3
	default:
		return 5
	}
}

// isLeaf reports whether n is a terminal node.
func (n *Node[E]) isLeaf() bool {
	return n.kind == leaf1 || n.kind == leaf2
}

// isTwoNode reports whether n holds a single element (Leaf1 or Node2).
// The deletion rebalance branches on this.
func (n *Node[E]) isTwoNode() bool {
	return n.kind == leaf1 || n.kind == node2
}

// Insert returns the root of a tree containing x in addition to the
// elements of n. An element comparing equal to x is replaced. Insert on
// a nil root creates a one-element tree. When the recursive insertion
// overflows at the top, the promoted 2-node simply becomes the new root.
func (n *Node[E]) Insert(cmp Compare[E], x E) *Node[E] {
	if n == nil {
		return Leaf1(x)
	}
	res, overflow := n.insert(cmp, x)
	if overflow {
		tracer().Debugf("insert: root overflow, tree grows one level")
	}
	return res
}

// insert inserts x below n and returns either a new node of the same
// tree level (overflow=false), or a promoted 2-node to be absorbed one
// level above (overflow=true).
func (n *Node[E]) insert(cmp Compare[E], x E) (*Node[E], bool) {
	switch n.kind {
	case leaf1:
		c := cmp(x, n.a)
		switch {
		case c == 0:
			return Leaf1(x), false
		case c < 0:
			return Leaf2(x, n.a), false
		default:
			return Leaf2(n.a, x), false
		}

	case leaf2:
		if cmp(x, n.a) == 0 {
			return Leaf2(x, n.b), false
		}
		if cmp(x, n.b) == 0 {
			return Leaf2(n.a, x), false
		}
		s, m, l := sort3(cmp, x, n.a, n.b)
		return Node2(Leaf1(s), m, Leaf1(l)), true

	case node2:
		c := cmp(x, n.a)
		if c == 0 {
			return Node2(n.p, x, n.q), false
		}
		if c < 0 {
			child, overflow := n.p.insert(cmp, x)
			if !overflow {
				return Node2(child, n.a, n.q), false
			}
			// absorb the promoted 2-node: become a 3-node
			return Node3(child.p, child.a, child.q, n.a, n.q), false
		}
		child, overflow := n.q.insert(cmp, x)
		if !overflow {
			return Node2(n.p, n.a, child), false
		}
		return Node3(n.p, n.a, child.p, child.a, child.q), false

	default: // node3
		if cmp(x, n.a) == 0 {
			return Node3(n.p, x, n.q, n.b, n.r), false
		}
		if cmp(x, n.b) == 0 {
			return Node3(n.p, n.a, n.q, x, n.r), false
		}
		if cmp(x, n.a) < 0 {
			child, overflow := n.p.insert(cmp, x)
			if !overflow {
				return Node3(child, n.a, n.q, n.b, n.r), false
			}
			// split: left third ascends, the rest regroups as a 2-node
			return Node2(child, n.a, Node2(n.q, n.b, n.r)), true
		}
		if cmp(x, n.b) < 0 {
			child, overflow := n.q.insert(cmp, x)
			if !overflow {
				return Node3(n.p, n.a, child, n.b, n.r), false
			}
			return Node2(Node2(n.p, n.a, child.p), child.a, Node2(child.q, n.b, n.r)), true
		}
		child, overflow := n.r.insert(cmp, x)
		if !overflow {
			return Node3(n.p, n.a, n.q, n.b, child), false
		}
		return Node2(Node2(n.p, n.a, n.q), n.b, child), true
	}
}

// sort3 orders three mutually unequal elements ascending.
func sort3[E any](cmp Compare[E], x, a, b E) (E, E, E) {
	if cmp(x, a) < 0 {
		return x, a, b
	}
	if cmp(x, b) < 0 {
		return a, x, b
	}
	return a, b, x
}

func (n *Node[E]) String() string {
	if n == nil {
		return "⟨⟩"
	}
	var sb strings.Builder
	sb.WriteRune('⟨')
	switch n.kind {
	case leaf1:
		fmt.Fprintf(&sb, "%v", n.a)
	case leaf2:
		fmt.Fprintf(&sb, "%v,%v", n.a, n.b)
	case node2:
		fmt.Fprintf(&sb, "• %v •", n.a)
	default:
		fmt.Fprintf(&sb, "• %v • %v •", n.a, n.b)
	}
	sb.WriteRune('⟩')
	return sb.String()
}

// assertThat guards internal invariants which no sequence of public
// calls can violate.
func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		panic(fmt.Sprintf("twothree: "+msg, msgargs...))
	}
}
