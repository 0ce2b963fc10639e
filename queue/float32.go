package queue

import (
	"strconv"
	"strings"

	"github.com/FerroO2000/ringq/internal/rq"
)

// Float32Queue is a fixed-capacity overwrite queue of single-precision
// floats.
type Float32Queue struct {
	ring *rq.Ring[float32]
}

// NewFloat32Queue returns a queue holding up to capacity floats.
// The storage is allocated eagerly, exactly once.
func NewFloat32Queue(capacity int) (*Float32Queue, error) {
	ring, err := rq.New[float32](capacity)
	if err != nil {
		return nil, err
	}

	return &Float32Queue{ring: ring}, nil
}

// Put stores a value, overwriting the oldest unread one when the queue is
// full. Call Full first if losing data would be a problem.
func (q *Float32Queue) Put(item float32) {
	q.ring.Put(item)
}

// PutFloat64 stores a double-precision value, narrowing it to float32 with
// IEEE-754 round-to-nearest. Values beyond the float32 range become ±Inf;
// narrowing is never an error.
func (q *Float32Queue) PutFloat64(item float64) {
	q.ring.Put(float32(item))
}

// Get removes and returns the oldest value. It reports false when the
// queue is empty.
func (q *Float32Queue) Get() (float32, bool) {
	return q.ring.Get()
}

// Clear logically empties the queue and resets the high-water mark.
func (q *Float32Queue) Clear() {
	q.ring.Clear()
}

// Any reports whether at least one unread value is stored.
func (q *Float32Queue) Any() bool {
	return q.ring.Any()
}

// Full reports whether the next Put will overwrite the oldest value.
func (q *Float32Queue) Full() bool {
	return q.ring.Full()
}

// Available returns the number of unread values.
func (q *Float32Queue) Available() int {
	return q.ring.Available()
}

// MaxFull returns the highest fill level observed since creation or the
// last Clear.
func (q *Float32Queue) MaxFull() int {
	return q.ring.MaxFull()
}

// Cap returns the fixed capacity.
func (q *Float32Queue) Cap() int {
	return q.ring.Cap()
}

// String renders the queue state for debugging: capacity, every storage
// slot in slot order (stale slots included), then the write and read
// indices.
func (q *Float32Queue) String() string {
	slots, wr, rd := q.ring.Dump()

	var sb strings.Builder

	sb.WriteString("Float32Queue[")
	sb.WriteString(strconv.Itoa(len(slots)))
	sb.WriteString("]:")

	for _, slot := range slots {
		sb.WriteString(strconv.FormatFloat(float64(slot), 'g', -1, 32))
		sb.WriteByte(',')
	}

	sb.WriteString("W:")
	sb.WriteString(strconv.FormatUint(uint64(wr), 10))
	sb.WriteString(",R:")
	sb.WriteString(strconv.FormatUint(uint64(rd), 10))

	return sb.String()
}

// Report returns a one-line diagnostic summary for registries.
func (q *Float32Queue) Report() string {
	return reportQueue("float32", q.MaxFull(), q.Cap())
}
