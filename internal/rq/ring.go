// Package rq provides the generic fixed-capacity overwrite ring queue core.
package rq

import (
	"errors"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// ErrInvalidCapacity is returned when a queue is created with a capacity
// lower than 1.
var ErrInvalidCapacity = errors.New("ring queue: capacity must be at least 1")

// Elem constrains the element kinds the ring core can carry.
type Elem interface {
	int32 | float32 | byte
}

// Ring is a fixed-capacity single-producer/single-consumer ring queue.
// A put into a full ring overwrites the oldest unread element instead of
// failing, so an interrupt-style producer never blocks and never allocates.
//
// All counters are word-sized atomics. The discipline is best-effort
// lock-free: with one producer and one consumer a racing put/get pair can
// leave the reported fill level transiently off by one, nothing worse.
type Ring[T Elem] struct {
	capacity uint32
	storage  []T

	_ cpu.CacheLinePad

	// writeIdx is owned by the producer side.
	writeIdx atomic.Uint32

	_ cpu.CacheLinePad

	// readIdx is advanced by the consumer on get, and by the producer when
	// it overwrites the oldest slot.
	readIdx atomic.Uint32

	_ cpu.CacheLinePad

	// count and maxFull are touched by both sides.
	count   atomic.Uint32
	maxFull atomic.Uint32
}

// New returns a ring with the given fixed capacity.
// The storage is allocated here, exactly once; no later operation allocates,
// so the producer side can run in an interrupt-style context.
func New[T Elem](capacity int) (*Ring[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &Ring[T]{
		capacity: uint32(capacity),
		storage:  make([]T, capacity),
	}, nil
}

// Put stores an element, overwriting the oldest unread one when the ring
// is full. It never fails and runs in constant time.
func (r *Ring[T]) Put(item T) {
	wr := r.writeIdx.Load()
	r.storage[wr] = item

	wr++
	if wr >= r.capacity {
		wr = 0
	}
	r.writeIdx.Store(wr)

	// If the ring was full before this write, move the read index past the
	// slot that was just clobbered so the consumer keeps seeing the oldest
	// surviving data instead of already-superseded data.
	if r.count.Load() >= r.capacity {
		rd := r.readIdx.Load()
		rd++
		if rd >= r.capacity {
			rd = 0
		}
		r.readIdx.Store(rd)
	}

	// Increase the fillage, cap it at capacity, then record the high-water
	// mark from the capped value.
	n := r.count.Add(1)
	if n >= r.capacity {
		r.count.Store(r.capacity)
		n = r.capacity
	}
	if n > r.maxFull.Load() {
		r.maxFull.Store(n)
	}
}

// Get removes and returns the oldest element.
// It reports false, without touching the ring, when the ring is empty.
func (r *Ring[T]) Get() (T, bool) {
	var zero T

	if r.count.Load() == 0 {
		return zero, false
	}

	rd := r.readIdx.Load()
	item := r.storage[rd]

	rd++
	if rd >= r.capacity {
		rd = 0
	}
	r.readIdx.Store(rd)

	// Floor the count at zero in case a racing put/get interleaving
	// already consumed the decrement.
	if int32(r.count.Add(^uint32(0))) < 0 {
		r.count.Store(0)
	}

	return item, true
}

// Clear logically empties the ring and resets the high-water mark.
// The storage is kept as is.
func (r *Ring[T]) Clear() {
	r.writeIdx.Store(0)
	r.readIdx.Store(0)
	r.count.Store(0)
	r.maxFull.Store(0)
}

// Any reports whether at least one unread element is stored.
func (r *Ring[T]) Any() bool {
	return r.count.Load() > 0
}

// Full reports whether the next Put will overwrite the oldest element.
func (r *Ring[T]) Full() bool {
	return r.count.Load() >= r.capacity
}

// Available returns the number of unread elements.
func (r *Ring[T]) Available() int {
	return int(r.count.Load())
}

// MaxFull returns the highest fill level observed since creation or the
// last Clear.
func (r *Ring[T]) MaxFull() int {
	return int(r.maxFull.Load())
}

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int {
	return int(r.capacity)
}

// Dump copies the raw storage in slot order together with the current
// write and read indices. Slots outside the valid window hold stale data;
// it is only meant for debug rendering.
func (r *Ring[T]) Dump() ([]T, uint32, uint32) {
	slots := make([]T, len(r.storage))
	copy(slots, r.storage)

	return slots, r.writeIdx.Load(), r.readIdx.Load()
}
