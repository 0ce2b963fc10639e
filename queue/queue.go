// Package queue provides fixed-capacity overwrite queues for 32-bit signed
// integers, 32-bit floats and bytes.
//
// All three queues share one preallocated ring core: putting into a full
// queue silently overwrites the oldest unread element, getting from an
// empty queue returns a sentinel instead of blocking, and no operation
// allocates after construction. The intended sharing discipline is a single
// producer context and a single consumer context running concurrently
// without locks, e.g. an interrupt-style callback feeding mainline code.
package queue

import (
	"errors"
	"fmt"

	"github.com/FerroO2000/ringq/internal/rq"
)

// ErrInvalidCapacity is returned when a queue is created with a capacity
// lower than 1.
var ErrInvalidCapacity = rq.ErrInvalidCapacity

// ErrInvalidInput is returned by ByteQueue.PutSeq when the input is neither
// a string nor a byte slice.
var ErrInvalidInput = errors.New("byte queue: bytes or string required")

// ErrValueRange is returned by Int32Queue.PutInt when the value does not
// fit in an int32.
var ErrValueRange = errors.New("int32 queue: value out of int32 range")

func reportQueue(kind string, maxFull, capacity int) string {
	return fmt.Sprintf("Queue<%s> Max Full %d/%d", kind, maxFull, capacity)
}
