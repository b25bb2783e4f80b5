/*
Package lru implements a persistent least-recently-used cache.

A Cache keeps two maps in step: values indexed by key, and a recency
index from a monotonically increasing sequence number back to the key.
Touching or inserting a key stamps it with a fresh sequence number;
purging removes entries oldest-first while the cache's purge predicate
holds. Like every container in this library the cache is a value — all
operations return a new cache and leave the receiver untouched.
*/
package lru

import (
	"fmt"
	"strings"

	"github.com/npillmayer/heist/fmap"
	"github.com/npillmayer/heist/list"
	"github.com/npillmayer/heist/set"
	"golang.org/x/exp/constraints"
)

type stamped[A any] struct {
	seq int64
	val A
}

// Cache is a persistent LRU cache from K to A. Create one with New or
// NewMax (or their NewOrdered variants); the zero value is unusable.
type Cache[K, A any] struct {
	values  fmap.Map[K, stamped[A]]
	recency fmap.Map[int64, K]
	nextSeq int64
	size    int
	purge   func(Cache[K, A]) bool
}

// New returns an empty cache with keys ordered by cmp. After every
// mutating operation, the oldest entry is removed for as long as
// purgeWhen holds; state the predicate depends on is closed over by the
// caller.
func New[K, A any](cmp func(K, K) int, purgeWhen func(Cache[K, A]) bool) Cache[K, A] {
	return Cache[K, A]{
		values:  fmap.New[K, stamped[A]](cmp),
		recency: fmap.NewOrdered[int64, K](),
		purge:   purgeWhen,
	}
}

// NewMax returns an empty cache that never grows beyond maxSize
// entries.
func NewMax[K, A any](cmp func(K, K) int, maxSize int) Cache[K, A] {
	return New(cmp, func(c Cache[K, A]) bool { return c.Size() > maxSize })
}

// NewOrdered is New for naturally ordered keys.
func NewOrdered[K constraints.Ordered, A any](purgeWhen func(Cache[K, A]) bool) Cache[K, A] {
	return New(set.Natural[K], purgeWhen)
}

// NewOrderedMax is NewMax for naturally ordered keys.
func NewOrderedMax[K constraints.Ordered, A any](maxSize int) Cache[K, A] {
	return NewMax[K, A](set.Natural[K], maxSize)
}

// Size returns the number of cached entries.
func (c Cache[K, A]) Size() int {
	return c.size
}

// Lookup returns the value at k without touching its recency.
func (c Cache[K, A]) Lookup(k K) (A, bool) {
	if sv, ok := c.values.Lookup(k); ok {
		return sv.val, true
	}
	var none A
	return none, false
}

// Touch makes k the most recently used key; a no-op when k is absent.
func (c Cache[K, A]) Touch(k K) Cache[K, A] {
	sv, ok := c.values.Lookup(k)
	if !ok {
		return c
	}
	rit, ok := c.recency.Find(sv.seq)
	assertConsistent(ok)
	return Cache[K, A]{
		values:  c.values.Insert(k, stamped[A]{seq: c.nextSeq, val: sv.val}),
		recency: rit.Remove().Insert(c.nextSeq, k),
		nextSeq: c.nextSeq + 1,
		size:    c.size,
		purge:   c.purge,
	}.Purge()
}

// Insert associates k with a and makes it the most recently used key,
// then purges while the purge predicate holds.
func (c Cache[K, A]) Insert(k K, a A) Cache[K, A] {
	if sv, ok := c.values.Lookup(k); ok {
		rit, ok := c.recency.Find(sv.seq)
		assertConsistent(ok)
		return Cache[K, A]{
			values:  c.values.Insert(k, stamped[A]{seq: c.nextSeq, val: a}),
			recency: rit.Remove().Insert(c.nextSeq, k),
			nextSeq: c.nextSeq + 1,
			size:    c.size,
			purge:   c.purge,
		}.Purge()
	}
	return Cache[K, A]{
		values:  c.values.Insert(k, stamped[A]{seq: c.nextSeq, val: a}),
		recency: c.recency.Insert(c.nextSeq, k),
		nextSeq: c.nextSeq + 1,
		size:    c.size + 1,
		purge:   c.purge,
	}.Purge()
}

// Remove drops k from the cache, then re-checks the purge predicate —
// a predicate may depend on more than the size, so removal can trigger
// further purging.
func (c Cache[K, A]) Remove(k K) Cache[K, A] {
	vit, ok := c.values.Find(k)
	if !ok {
		return c
	}
	rit, ok := c.recency.Find(vit.Value().seq)
	assertConsistent(ok)
	return Cache[K, A]{
		values:  vit.Remove(),
		recency: rit.Remove(),
		nextSeq: c.nextSeq,
		size:    c.size - 1,
		purge:   c.purge,
	}.Purge()
}

// Oldest returns the least recently touched association.
func (c Cache[K, A]) Oldest() (K, A, bool) {
	if rit, ok := c.recency.Begin(); ok {
		k := rit.Value()
		v, ok := c.Lookup(k)
		assertConsistent(ok)
		return k, v, true
	}
	var nk K
	var na A
	return nk, na, false
}

// Purge removes entries oldest-first while the purge predicate holds.
// Mutating operations purge on their own; call this explicitly when the
// predicate depends on external state such as time.
func (c Cache[K, A]) Purge() Cache[K, A] {
	if rit, ok := c.recency.Begin(); ok && c.purge(c) {
		return c.Remove(rit.Value())
	}
	return c
}

// ToList returns the associations in recency order, oldest first.
func (c Cache[K, A]) ToList() list.List[fmap.Pair[K, A]] {
	var acc list.List[fmap.Pair[K, A]]
	for rit, ok := c.recency.End(); ok; rit, ok = rit.Prev() {
		k := rit.Value()
		v, found := c.Lookup(k)
		assertConsistent(found)
		acc = list.Cons(fmap.Pair[K, A]{Key: k, Value: v}, acc)
	}
	return acc
}

func (c Cache[K, A]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for xs := c.ToList(); !xs.IsEmpty(); xs = xs.Tail() {
		if !first {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%v -> %v", xs.Head().Key, xs.Head().Value)
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}

// consistent is a test hook: the sequence stamps in values and the keys
// of recency must be the same set.
func (c Cache[K, A]) consistent() bool {
	vseqs := set.New(set.Natural[int64])
	for it, ok := c.values.Begin(); ok; it, ok = it.Next() {
		vseqs = vseqs.Insert(it.Value().seq)
	}
	rseqs := set.New(set.Natural[int64])
	for it, ok := c.recency.Begin(); ok; it, ok = it.Next() {
		rseqs = rseqs.Insert(it.Key())
	}
	return vseqs.Equal(rseqs)
}

func assertConsistent(ok bool) {
	if !ok {
		panic("lru: values and recency index out of step")
	}
}
