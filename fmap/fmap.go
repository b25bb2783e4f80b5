/*
Package fmap implements a persistent ordered map.

A Map is a set of (key, value) entries ordered by key only; updates
return new maps sharing structure with the old one. The package name
avoids the keyword collision with Go's builtin map — "f" as in
functional.
*/
package fmap

import (
	"fmt"
	"strings"

	"github.com/npillmayer/heist/list"
	"github.com/npillmayer/heist/maybe"
	"github.com/npillmayer/heist/set"
	"golang.org/x/exp/constraints"
)

// Pair is one key/value association, as produced by ToList and accepted
// by FromPairs.
type Pair[K, A any] struct {
	Key   K
	Value A
}

// entry is what the underlying set stores. The value is optional so a
// throwaway search entry can be made from a key alone.
type entry[K, A any] struct {
	key K
	val maybe.Maybe[A]
}

// Map is a persistent ordered map from K to A. Create one with New,
// NewOrdered or FromPairs; the zero value has no comparator and is
// unusable.
type Map[K, A any] struct {
	keycmp  func(K, K) int
	entries set.Set[entry[K, A]]
}

// New returns an empty map with keys ordered by cmp.
func New[K, A any](cmp func(K, K) int) Map[K, A] {
	entrycmp := func(a, b entry[K, A]) int { return cmp(a.key, b.key) }
	return Map[K, A]{keycmp: cmp, entries: set.New(entrycmp)}
}

// NewOrdered returns an empty map with naturally ordered keys.
func NewOrdered[K constraints.Ordered, A any]() Map[K, A] {
	return New[K, A](set.Natural[K])
}

// FromPairs returns a map holding the given associations; later pairs
// replace earlier ones with an equal key.
func FromPairs[K constraints.Ordered, A any](pairs ...Pair[K, A]) Map[K, A] {
	m := NewOrdered[K, A]()
	for _, p := range pairs {
		m = m.Insert(p.Key, p.Value)
	}
	return m
}

// IsEmpty reports whether the map has no entries.
func (m Map[K, A]) IsEmpty() bool {
	return m.entries.IsEmpty()
}

// Size counts the entries.
func (m Map[K, A]) Size() int {
	return m.entries.Size()
}

// Insert returns a map that associates k with a, replacing any existing
// entry at k.
func (m Map[K, A]) Insert(k K, a A) Map[K, A] {
	return m.with(m.entries.Insert(entry[K, A]{key: k, val: maybe.Just(a)}))
}

// Remove returns a map without an entry at k; the receiver is returned
// unchanged when there is none.
func (m Map[K, A]) Remove(k K) Map[K, A] {
	if it, ok := m.Find(k); ok {
		return it.Remove()
	}
	return m
}

// Lookup returns the value at k.
func (m Map[K, A]) Lookup(k K) (A, bool) {
	if it, ok := m.Find(k); ok {
		return it.Value(), true
	}
	var none A
	return none, false
}

// Find returns the iterator at the entry for k.
func (m Map[K, A]) Find(k K) (Iterator[K, A], bool) {
	it, ok := m.entries.Find(entry[K, A]{key: k})
	return Iterator[K, A]{m: m, it: it}, ok
}

// LowerBound returns the iterator at the entry with the smallest key
// >= k.
func (m Map[K, A]) LowerBound(k K) (Iterator[K, A], bool) {
	it, ok := m.entries.LowerBound(entry[K, A]{key: k})
	return Iterator[K, A]{m: m, it: it}, ok
}

// UpperBound returns the iterator at the entry with the largest key
// <= k (the mirror of LowerBound, not the STL convention).
func (m Map[K, A]) UpperBound(k K) (Iterator[K, A], bool) {
	it, ok := m.entries.UpperBound(entry[K, A]{key: k})
	return Iterator[K, A]{m: m, it: it}, ok
}

// Begin returns the iterator at the smallest key.
func (m Map[K, A]) Begin() (Iterator[K, A], bool) {
	it, ok := m.entries.Begin()
	return Iterator[K, A]{m: m, it: it}, ok
}

// End returns the iterator at the largest key.
func (m Map[K, A]) End() (Iterator[K, A], bool) {
	it, ok := m.entries.End()
	return Iterator[K, A]{m: m, it: it}, ok
}

// Alter rewrites the entry at k through f, where a Nothing argument or
// result means "not present": f(Nothing)=Just(v) inserts, f(Just(v))=
// Nothing removes, anything else replaces or keeps the map as is.
func (m Map[K, A]) Alter(k K, f func(maybe.Maybe[A]) maybe.Maybe[A]) Map[K, A] {
	if it, ok := m.Find(k); ok {
		if v, ok := f(maybe.Just(it.Value())).Get(); ok {
			return m.Insert(k, v)
		}
		return it.Remove()
	}
	if v, ok := f(maybe.Nothing[A]()).Get(); ok {
		return m.Insert(k, v)
	}
	return m
}

// Adjust rewrites a present entry at k through f, no-op otherwise.
func (m Map[K, A]) Adjust(k K, f func(A) A) Map[K, A] {
	if it, ok := m.Find(k); ok {
		return m.Insert(k, f(it.Value()))
	}
	return m
}

// Keys returns the keys in ascending order.
func (m Map[K, A]) Keys() list.List[K] {
	return list.MapTo(m.entries.ToList(), func(e entry[K, A]) K { return e.key })
}

// Elems returns the values in ascending key order.
func (m Map[K, A]) Elems() list.List[A] {
	return list.MapTo(m.entries.ToList(), func(e entry[K, A]) A {
		return e.val.WithDefault(*new(A))
	})
}

// ToList returns the associations in ascending key order.
func (m Map[K, A]) ToList() list.List[Pair[K, A]] {
	return list.MapTo(m.entries.ToList(), func(e entry[K, A]) Pair[K, A] {
		return Pair[K, A]{Key: e.key, Value: e.val.WithDefault(*new(A))}
	})
}

// Union returns the monoidal append of both maps; other's values win on
// equal keys.
func (m Map[K, A]) Union(other Map[K, A]) Map[K, A] {
	out := m
	for it, ok := other.Begin(); ok; it, ok = it.Next() {
		out = out.Insert(it.Key(), it.Value())
	}
	return out
}

// MapValues builds a map with f applied to every value.
func (m Map[K, A]) MapValues(f func(A) A) Map[K, A] {
	out := m
	for it, ok := m.Begin(); ok; it, ok = it.Next() {
		out = out.Insert(it.Key(), f(it.Value()))
	}
	return out
}

// FoldL folds the associations in ascending key order.
func FoldL[K, A, B any](m Map[K, A], f func(B, K, A) B, zero B) B {
	acc := zero
	for it, ok := m.Begin(); ok; it, ok = it.Next() {
		acc = f(acc, it.Key(), it.Value())
	}
	return acc
}

// Equal reports whether both maps hold the same associations in the
// same key order; values are compared with eq.
func (m Map[K, A]) Equal(other Map[K, A], eq func(A, A) bool) bool {
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

func (m Map[K, A]) String() string {
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

func (m Map[K, A]) with(entries set.Set[entry[K, A]]) Map[K, A] {
	return Map[K, A]{keycmp: m.keycmp, entries: entries}
}

// Iterator designates an entry of a map snapshot.
type Iterator[K, A any] struct {
	m  Map[K, A]
	it set.Iterator[entry[K, A]]
}

// Key returns the key at the iterator's position.
func (it Iterator[K, A]) Key() K {
	return it.it.Get().key
}

// Value returns the value at the iterator's position.
func (it Iterator[K, A]) Value() A {
	return it.it.Get().val.WithDefault(*new(A))
}

// Next moves to the entry with the following key.
func (it Iterator[K, A]) Next() (Iterator[K, A], bool) {
	nx, ok := it.it.Next()
	return Iterator[K, A]{m: it.m, it: nx}, ok
}

// Prev moves to the entry with the preceding key.
func (it Iterator[K, A]) Prev() (Iterator[K, A], bool) {
	pv, ok := it.it.Prev()
	return Iterator[K, A]{m: it.m, it: pv}, ok
}

// Remove returns the map with the iterator's entry deleted.
func (it Iterator[K, A]) Remove() Map[K, A] {
	return it.m.with(it.it.Remove())
}
