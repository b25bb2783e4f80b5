/*
Package heist is a library of persistent (immutable, structurally shared)
ordered containers.

Containers are values: every update returns a new container which shares
all unchanged subtrees with the old one. Copies are cheap, old snapshots
stay valid, and snapshots may be passed between goroutines without any
synchronization, because shared state is never mutated in place.

The core is a 2-3 tree engine (package twothree) with O(log N) insert,
delete, lookup, range queries and bidirectional iteration. The container
packages — set, fmap, multimap, lru, queue, seq, bijection — are thin
typed views over the engine. Package list provides the persistent
singly-linked list used by the engine's iterators, and package supply a
functional generator of unique values.
*/
package heist
