/*
Package cell provides a mutable slot for sharing container snapshots
between goroutines.

The containers of this library are immutable values; the only mutable
thing in a program using them is the variable holding the current
snapshot. Cell is that variable with the locking already done: reads
and writes of the slot are serialized through a locker drawn from the
process-wide pool, so critical sections stay O(1) — the slot only holds
a value, never does container work under the lock (except in Update,
whose function runs while the lock is held).
*/
package cell

import "github.com/npillmayer/heist/lockpool"

// Cell is a shared mutable slot holding a value of type T.
type Cell[T any] struct {
	lk lockpool.Pooled
	v  T
}

// New creates a cell holding v.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{lk: lockpool.NewPooled(), v: v}
}

// Load returns the current snapshot.
func (c *Cell[T]) Load() T {
	c.lk.Lock()
	v := c.v
	c.lk.Unlock()
	return v
}

// Store replaces the current snapshot.
func (c *Cell[T]) Store(v T) {
	c.lk.Lock()
	c.v = v
	c.lk.Unlock()
}

// Update atomically replaces the snapshot with f(snapshot) and returns
// the new value. f must not touch this cell (the lock is held) and
// should be cheap; with persistent containers an insert or remove is.
func (c *Cell[T]) Update(f func(T) T) T {
	c.lk.Lock()
	c.v = f(c.v)
	v := c.v
	c.lk.Unlock()
	return v
}
