// Package ringq provides fixed-capacity, allocation-free ring queues for
// moving scalar values and byte streams from a producer context to a
// consumer context, in the spirit of the interrupt-to-mainline queues used
// on microcontrollers: a put into a full queue overwrites the oldest
// unread element, a get from an empty queue returns a sentinel, and
// nothing ever blocks or allocates after construction.
//
// It is the entrypoint for the library: the concrete types live in the
// queue, share and monitor subpackages and are re-exported here.
package ringq

import (
	"github.com/FerroO2000/ringq/monitor"
	"github.com/FerroO2000/ringq/queue"
	"github.com/FerroO2000/ringq/share"
)

// Int32Queue is a fixed-capacity overwrite queue of 32-bit signed integers.
type Int32Queue = queue.Int32Queue

// Float32Queue is a fixed-capacity overwrite queue of single-precision floats.
type Float32Queue = queue.Float32Queue

// ByteQueue is a fixed-capacity overwrite queue of bytes with bulk ingestion.
type ByteQueue = queue.ByteQueue

// Share is a word-sized atomic single-value share.
type Share[T share.Elem] = share.Share[T]

// Registry collects named queues and shares for diagnostic printouts.
type Registry = share.Registry

// Monitor periodically reports the fill level and high-water mark of a set
// of queues.
type Monitor = monitor.Monitor

// MonitorConfig is the configuration for a Monitor.
type MonitorConfig = monitor.Config

// Errors returned by the queue constructors and put operations.
var (
	ErrInvalidCapacity = queue.ErrInvalidCapacity
	ErrInvalidInput    = queue.ErrInvalidInput
	ErrValueRange      = queue.ErrValueRange
)

// NewInt32Queue returns a queue holding up to capacity integers.
func NewInt32Queue(capacity int) (*Int32Queue, error) {
	return queue.NewInt32Queue(capacity)
}

// NewFloat32Queue returns a queue holding up to capacity floats.
func NewFloat32Queue(capacity int) (*Float32Queue, error) {
	return queue.NewFloat32Queue(capacity)
}

// NewByteQueue returns a queue holding up to capacity bytes.
func NewByteQueue(capacity int) (*ByteQueue, error) {
	return queue.NewByteQueue(capacity)
}

// NewShare returns an empty share holding the zero value.
func NewShare[T share.Elem]() *Share[T] {
	return share.New[T]()
}

// NewRegistry returns an empty diagnostics registry.
func NewRegistry() *Registry {
	return share.NewRegistry()
}

// NewMonitor returns a monitor with the given configuration.
func NewMonitor(cfg *MonitorConfig) *Monitor {
	return monitor.New(cfg)
}

// NewMonitorConfig returns the default monitor configuration.
func NewMonitorConfig() *MonitorConfig {
	return monitor.NewConfig()
}
