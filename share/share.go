// Package share provides word-sized atomic shares and a diagnostics
// registry for the queues and shares a program wires between its producer
// and consumer contexts.
package share

import (
	"math"
	"sync/atomic"
)

// Elem constrains the element kinds a Share can hold.
type Elem interface {
	int32 | float32 | byte
}

// Share holds a single value that one context overwrites and another
// reads. Both operations are a single atomic word access: lock-free, no
// allocation, safe to call from an interrupt-style callback.
type Share[T Elem] struct {
	bits atomic.Uint32
}

// New returns an empty share holding the zero value.
func New[T Elem]() *Share[T] {
	return &Share[T]{}
}

// Put overwrites the shared value.
func (s *Share[T]) Put(item T) {
	s.bits.Store(toBits(item))
}

// Get returns the value most recently put.
func (s *Share[T]) Get() T {
	return fromBits[T](s.bits.Load())
}

// Report returns a one-line diagnostic summary for registries.
func (s *Share[T]) Report() string {
	return "Share<" + kindName[T]() + ">"
}

func toBits[T Elem](item T) uint32 {
	switch val := any(item).(type) {
	case int32:
		return uint32(val)
	case float32:
		return math.Float32bits(val)
	case byte:
		return uint32(val)
	default:
		return 0
	}
}

func fromBits[T Elem](bits uint32) T {
	var zero T

	switch any(zero).(type) {
	case int32:
		return any(int32(bits)).(T)
	case float32:
		return any(math.Float32frombits(bits)).(T)
	case byte:
		return any(byte(bits)).(T)
	default:
		return zero
	}
}

func kindName[T Elem]() string {
	var zero T

	switch any(zero).(type) {
	case int32:
		return "int32"
	case float32:
		return "float32"
	case byte:
		return "byte"
	default:
		return "unknown"
	}
}
