/*
Package lockpool provides two process-global pools of mutexes.

Guarding many small objects with their own mutex is wasteful; instead a
lock is picked from a fixed preallocated pool. Two unrelated objects may
end up with the same mutex — that costs a little contention, never
correctness.

For picks by hashing the protected address; NewPooled picks round-robin
at construction time. Both pools are plain global arrays, so they are
safe to use from package initializers. The locks are not reentrant:
never acquire a pool lock while holding another one.
*/
package lockpool

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

const poolBits = 7

// lockPool is indexed by a hash of the protected address.
var lockPool [1 << poolBits]sync.Mutex

// For returns the pool mutex responsible for addr. The slot is chosen
// by Knuth's multiplicative hash ("The Art of Computer Programming",
// section 6.4) of the address.
func For(addr unsafe.Pointer) *sync.Mutex {
	h := uint32(uintptr(addr)) * 2654435761
	return &lockPool[h>>(32-poolBits)]
}

const pooledSize = 61

var (
	pooled     [pooledSize]sync.Mutex
	pooledNext uint32
)

// Pooled is a locker drawn from a small global pool at construction.
// Copying a Pooled by value keeps referring to the same mutex, which
// makes it cheap to embed in values that are themselves copied around.
type Pooled struct {
	mu *sync.Mutex
}

// NewPooled draws the next locker from the pool, round-robin.
func NewPooled() Pooled {
	n := atomic.AddUint32(&pooledNext, 1)
	return Pooled{mu: &pooled[n%pooledSize]}
}

func (p Pooled) Lock()   { p.mu.Lock() }
func (p Pooled) Unlock() { p.mu.Unlock() }
