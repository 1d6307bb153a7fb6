// Package ringbuf provides a fixed-capacity event queue that favours the
// newest events: when the queue is full, Push evicts the oldest unread value.
//
// A Queue has one producer and one consumer. The producer may run in
// interrupt context; both sides take the queue's guard around every index
// update, so the guard must be something that excludes the other side
// (interrupt masking on the MCU, a mutex on host).
package ringbuf

import "sync"

// DefaultCapacity is the capacity used when New is given a non-positive size.
const DefaultCapacity = 128

// Queue is a circular buffer with overwrite-oldest-on-full semantics.
type Queue[T any] struct {
	_     [0]func() // prevent accidental copying.
	guard sync.Locker
	data  []T
	head  int // next value to read
	count int
}

// New returns an empty queue holding up to capacity values.
//
// A nil guard falls back to a private mutex.
func New[T any](capacity int, guard sync.Locker) *Queue[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if guard == nil {
		guard = &sync.Mutex{}
	}
	return &Queue[T]{
		guard: guard,
		data:  make([]T, capacity),
	}
}

// Push appends v. It never blocks and never fails; on a full queue the
// oldest value is dropped to make room.
func (q *Queue[T]) Push(v T) {
	q.guard.Lock()
	defer q.guard.Unlock()

	size := len(q.data)
	tail := (q.head + q.count) % size
	q.data[tail] = v
	if q.count == size {
		q.head = (q.head + 1) % size
		return
	}
	q.count++
}

// PopFront removes and returns the oldest value. On an empty queue it
// returns the zero value and false without touching the queue.
func (q *Queue[T]) PopFront() (T, bool) {
	q.guard.Lock()
	defer q.guard.Unlock()

	var zero T
	if q.count == 0 {
		return zero, false
	}
	v := q.data[q.head]
	q.data[q.head] = zero
	q.head = (q.head + 1) % len(q.data)
	q.count--
	return v, true
}

// Front returns the oldest value without removing it.
func (q *Queue[T]) Front() (T, bool) {
	q.guard.Lock()
	defer q.guard.Unlock()

	if q.count == 0 {
		var zero T
		return zero, false
	}
	return q.data[q.head], true
}

// Empty reports whether the queue holds no values.
func (q *Queue[T]) Empty() bool {
	q.guard.Lock()
	defer q.guard.Unlock()
	return q.count == 0
}

// Len returns the number of unread values.
func (q *Queue[T]) Len() int {
	q.guard.Lock()
	defer q.guard.Unlock()
	return q.count
}

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int { return len(q.data) }
