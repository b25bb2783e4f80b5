/*
Package multimap implements a persistent ordered map that may hold
several values per key.

Every inserted association carries a unique tag drawn from a supply
threaded through the map; entries are ordered by key first and tag
second, so no two live entries ever compare equal and duplicates
coexist. Iterating the values of one key is LowerBound followed by Next
while the key matches.
*/
package multimap

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/heist/list"
	"github.com/npillmayer/heist/set"
	"github.com/npillmayer/heist/supply"
	"golang.org/x/exp/constraints"
)

// Pair is one key/value association.
type Pair[K, A any] struct {
	Key   K
	Value A
}

type entry[K, A any] struct {
	key K
	tag int64
	val A
}

// MultiMap is a persistent ordered multimap from K to A. Create one
// with New, NewOrdered or FromPairs; the zero value is unusable.
type MultiMap[K, A any] struct {
	keycmp  func(K, K) int
	entries set.Set[entry[K, A]]
	// sup's own value counts as used; it is always split before a tag
	// is drawn from it.
	sup supply.Supply[int64]
}

// New returns an empty multimap with keys ordered by cmp.
func New[K, A any](cmp func(K, K) int) MultiMap[K, A] {
	entrycmp := func(a, b entry[K, A]) int {
		if c := cmp(a.key, b.key); c != 0 {
			return c
		}
		switch {
		case a.tag < b.tag:
			return -1
		case a.tag > b.tag:
			return +1
		default:
			return 0
		}
	}
	return MultiMap[K, A]{
		keycmp:  cmp,
		entries: set.New(entrycmp),
		sup:     supply.Ints(0),
	}
}

// NewOrdered returns an empty multimap with naturally ordered keys.
func NewOrdered[K constraints.Ordered, A any]() MultiMap[K, A] {
	return New[K, A](set.Natural[K])
}

// FromPairs returns a multimap holding all the given associations,
// duplicates included.
func FromPairs[K constraints.Ordered, A any](pairs ...Pair[K, A]) MultiMap[K, A] {
	m := NewOrdered[K, A]()
	for _, p := range pairs {
		m = m.Insert(p.Key, p.Value)
	}
	return m
}

// IsEmpty reports whether the multimap has no entries.
func (m MultiMap[K, A]) IsEmpty() bool {
	return m.entries.IsEmpty()
}

// Size counts the entries.
func (m MultiMap[K, A]) Size() int {
	return m.entries.Size()
}

// Insert returns a multimap with one more association of k to a. An
// existing association at k is kept; the new entry gets a fresh tag.
func (m MultiMap[K, A]) Insert(k K, a A) MultiMap[K, A] {
	s1, s2 := m.sup.Split2()
	e := entry[K, A]{key: k, tag: s1.Get(), val: a}
	return MultiMap[K, A]{keycmp: m.keycmp, entries: m.entries.Insert(e), sup: s2}
}

// Remove returns a multimap without the first (oldest-tagged) entry
// whose key equals k, unchanged when the key is absent.
func (m MultiMap[K, A]) Remove(k K) MultiMap[K, A] {
	if it, ok := m.LowerBound(k); ok && m.keycmp(it.Key(), k) == 0 {
		return it.Remove()
	}
	return m
}

// LowerBound returns the iterator at the first entry with key >= k.
func (m MultiMap[K, A]) LowerBound(k K) (Iterator[K, A], bool) {
	it, ok := m.entries.LowerBound(entry[K, A]{key: k, tag: math.MinInt64})
	return Iterator[K, A]{m: m, it: it}, ok
}

// UpperBound returns the iterator at the last entry with key <= k (the
// mirror of LowerBound, not the STL convention).
func (m MultiMap[K, A]) UpperBound(k K) (Iterator[K, A], bool) {
	it, ok := m.entries.UpperBound(entry[K, A]{key: k, tag: math.MaxInt64})
	return Iterator[K, A]{m: m, it: it}, ok
}

// Begin returns the iterator at the first entry.
func (m MultiMap[K, A]) Begin() (Iterator[K, A], bool) {
	it, ok := m.entries.Begin()
	return Iterator[K, A]{m: m, it: it}, ok
}

// End returns the iterator at the last entry.
func (m MultiMap[K, A]) End() (Iterator[K, A], bool) {
	it, ok := m.entries.End()
	return Iterator[K, A]{m: m, it: it}, ok
}

// Keys returns the keys of all entries in order, duplicates included.
func (m MultiMap[K, A]) Keys() list.List[K] {
	return list.MapTo(m.entries.ToList(), func(e entry[K, A]) K { return e.key })
}

// Values returns the values of all entries in key/insertion order.
func (m MultiMap[K, A]) Values() list.List[A] {
	return list.MapTo(m.entries.ToList(), func(e entry[K, A]) A { return e.val })
}

// ToList returns all associations in key/insertion order.
func (m MultiMap[K, A]) ToList() list.List[Pair[K, A]] {
	return list.MapTo(m.entries.ToList(), func(e entry[K, A]) Pair[K, A] {
		return Pair[K, A]{Key: e.key, Value: e.val}
	})
}

// Union returns the monoidal append of both multimaps: every
// association of other is inserted (with a fresh tag) into m.
func (m MultiMap[K, A]) Union(other MultiMap[K, A]) MultiMap[K, A] {
	out := m
	for it, ok := other.Begin(); ok; it, ok = it.Next() {
		out = out.Insert(it.Key(), it.Value())
	}
	return out
}

// Filter keeps the associations whose value matches pred.
func (m MultiMap[K, A]) Filter(pred func(A) bool) MultiMap[K, A] {
	return m.FilterWithKey(func(_ K, a A) bool { return pred(a) })
}

// FilterWithKey keeps the associations matching pred.
func (m MultiMap[K, A]) FilterWithKey(pred func(K, A) bool) MultiMap[K, A] {
	out := New[K, A](m.keycmp)
	for it, ok := m.Begin(); ok; it, ok = it.Next() {
		if pred(it.Key(), it.Value()) {
			out = out.Insert(it.Key(), it.Value())
		}
	}
	return out
}

// Equal reports whether both multimaps hold the same associations in
// the same order; values are compared with eq.
func (m MultiMap[K, A]) Equal(other MultiMap[K, A], eq func(A, A) bool) bool {
	it1, ok1 := m.Begin()
	it2, ok2 := other.Begin()
	for ok1 && ok2 {
		if m.keycmp(it1.Key(), it2.Key()) != 0 || !eq(it1.Value(), it2.Value()) {
			return false
		}
		it1, ok1 = it1.Next()
		it2, ok2 = it2.Next()
	}
	return !ok1 && !ok2
}

func (m MultiMap[K, A]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for it, ok := m.Begin(); ok; it, ok = it.Next() {
		if !first {
			sb.WriteString(",\n")
		}
		fmt.Fprintf(&sb, "%v -> %v", it.Key(), it.Value())
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}

// Iterator designates an entry of a multimap snapshot.
type Iterator[K, A any] struct {
	m  MultiMap[K, A]
	it set.Iterator[entry[K, A]]
}

// Key returns the key at the iterator's position.
func (it Iterator[K, A]) Key() K {
	return it.it.Get().key
}

// Value returns the value at the iterator's position.
func (it Iterator[K, A]) Value() A {
	return it.it.Get().val
}

// Next moves to the following entry.
func (it Iterator[K, A]) Next() (Iterator[K, A], bool) {
	nx, ok := it.it.Next()
	return Iterator[K, A]{m: it.m, it: nx}, ok
}

// Prev moves to the preceding entry.
func (it Iterator[K, A]) Prev() (Iterator[K, A], bool) {
	pv, ok := it.it.Prev()
	return Iterator[K, A]{m: it.m, it: pv}, ok
}

// Remove returns the multimap with the iterator's entry deleted.
func (it Iterator[K, A]) Remove() MultiMap[K, A] {
	return MultiMap[K, A]{keycmp: it.m.keycmp, entries: it.it.Remove(), sup: it.m.sup}
}
