/*
Package supply provides a functional supply of unique values.

A Supply hands out one value, always the same one for a given handle no
matter how often the handle is copied or asked; Split2 derives two
child supplies, each distinct from the parent and from each other. All
handles derived from one origin draw from a shared counter, so no two
of them ever observe the same value.
*/
package supply

import (
	"sync"
	"unsafe"

	"github.com/npillmayer/heist/lockpool"
)

// common is the state shared between all supplies derived from one
// origin. It is guarded by a pool lock chosen by its own address.
type common[A any] struct {
	mu   *sync.Mutex
	next A
	succ func(A) A
}

// state is per-handle: the value captured by the first Get and the pair
// memoized by the first Split2.
type state[A any] struct {
	captured    bool
	value       A
	split       bool
	left, right Supply[A]
}

// Supply is a handle on a generator of distinct values. Copies of a
// handle are the same handle. Create one with New or Ints; the zero
// value is unusable.
type Supply[A any] struct {
	common *common[A]
	state  *state[A]
}

// New returns a supply producing init, succ(init), succ(succ(init)), …
// across all handles derived from it.
func New[A any](init A, succ func(A) A) Supply[A] {
	c := &common[A]{next: init, succ: succ}
	c.mu = lockpool.For(unsafe.Pointer(c))
	return Supply[A]{common: c, state: &state[A]{}}
}

// Ints returns an integer supply counting up from init.
func Ints(init int64) Supply[int64] {
	return New(init, func(a int64) int64 { return a + 1 })
}

// Get returns this supply's unique value. The first call captures the
// shared counter's current value and advances the counter; every later
// call on this handle returns the captured value, so the result is
// stable per handle even though sibling handles race on the counter.
func (s Supply[A]) Get() A {
	s.common.mu.Lock()
	if !s.state.captured {
		s.state.value = s.common.next
		s.common.next = s.common.succ(s.common.next)
		s.state.captured = true
	}
	v := s.state.value
	s.common.mu.Unlock()
	return v
}

// Split2 derives two child supplies, each distinct from the receiver
// and from each other. The pair is memoized: every call on this handle
// returns the same two children.
func (s Supply[A]) Split2() (Supply[A], Supply[A]) {
	s.common.mu.Lock()
	if !s.state.split {
		s.state.left = Supply[A]{common: s.common, state: &state[A]{}}
		s.state.right = Supply[A]{common: s.common, state: &state[A]{}}
		s.state.split = true
	}
	l, r := s.state.left, s.state.right
	s.common.mu.Unlock()
	return l, r
}
