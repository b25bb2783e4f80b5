/*
Package queue implements a persistent FIFO queue as a thin layer over
an ordered map: elements live at increasing integer positions between a
head and a tail index.
*/
package queue

import (
	"errors"

	"github.com/npillmayer/heist/fmap"
)

// ErrEmpty is returned by Pop on an empty queue.
var ErrEmpty = errors.New("queue: empty")

// Queue is a persistent FIFO queue. The zero value is NOT usable;
// create queues with New.
type Queue[A any] struct {
	m          fmap.Map[int, A]
	head, tail int
}

// New returns an empty queue.
func New[A any]() Queue[A] {
	return Queue[A]{m: fmap.NewOrdered[int, A]()}
}

// IsEmpty reports whether the queue holds no elements.
func (q Queue[A]) IsEmpty() bool {
	return q.head == q.tail
}

// Len returns the number of queued elements.
func (q Queue[A]) Len() int {
	return q.tail - q.head
}

// Push appends a at the tail of the queue.
func (q Queue[A]) Push(a A) Queue[A] {
	return Queue[A]{m: q.m.Insert(q.tail, a), head: q.head, tail: q.tail + 1}
}

// Pop removes the element at the head of the queue, returning it
// together with the remaining queue. Popping an empty queue returns
// ErrEmpty.
func (q Queue[A]) Pop() (A, Queue[A], error) {
	it, ok := q.m.Find(q.head)
	if !ok {
		var none A
		return none, q, ErrEmpty
	}
	return it.Value(), Queue[A]{m: it.Remove(), head: q.head + 1, tail: q.tail}, nil
}
