package queue

import (
	"math"
	"strconv"
	"strings"

	"github.com/FerroO2000/ringq/internal/rq"
)

// Int32Queue is a fixed-capacity overwrite queue of 32-bit signed integers.
type Int32Queue struct {
	ring *rq.Ring[int32]
}

// NewInt32Queue returns a queue holding up to capacity integers.
// The storage is allocated eagerly, exactly once.
func NewInt32Queue(capacity int) (*Int32Queue, error) {
	ring, err := rq.New[int32](capacity)
	if err != nil {
		return nil, err
	}

	return &Int32Queue{ring: ring}, nil
}

// Put stores a value, overwriting the oldest unread one when the queue is
// full. Call Full first if losing data would be a problem.
func (q *Int32Queue) Put(item int32) {
	q.ring.Put(item)
}

// PutInt stores a value given as an int64.
// Values outside the int32 range are rejected with ErrValueRange and the
// queue is left untouched.
func (q *Int32Queue) PutInt(item int64) error {
	if item < math.MinInt32 || item > math.MaxInt32 {
		return ErrValueRange
	}

	q.ring.Put(int32(item))

	return nil
}

// Get removes and returns the oldest value. It reports false when the
// queue is empty.
func (q *Int32Queue) Get() (int32, bool) {
	return q.ring.Get()
}

// Clear logically empties the queue and resets the high-water mark.
func (q *Int32Queue) Clear() {
	q.ring.Clear()
}

// Any reports whether at least one unread value is stored.
func (q *Int32Queue) Any() bool {
	return q.ring.Any()
}

// Full reports whether the next Put will overwrite the oldest value.
func (q *Int32Queue) Full() bool {
	return q.ring.Full()
}

// Available returns the number of unread values.
func (q *Int32Queue) Available() int {
	return q.ring.Available()
}

// MaxFull returns the highest fill level observed since creation or the
// last Clear.
func (q *Int32Queue) MaxFull() int {
	return q.ring.MaxFull()
}

// Cap returns the fixed capacity.
func (q *Int32Queue) Cap() int {
	return q.ring.Cap()
}

// String renders the queue state for debugging: capacity, every storage
// slot in slot order (stale slots included), then the write and read
// indices.
func (q *Int32Queue) String() string {
	slots, wr, rd := q.ring.Dump()

	var sb strings.Builder

	sb.WriteString("Int32Queue[")
	sb.WriteString(strconv.Itoa(len(slots)))
	sb.WriteString("]:")

	for _, slot := range slots {
		sb.WriteString(strconv.FormatInt(int64(slot), 10))
		sb.WriteByte(',')
	}

	sb.WriteString("W:")
	sb.WriteString(strconv.FormatUint(uint64(wr), 10))
	sb.WriteString(",R:")
	sb.WriteString(strconv.FormatUint(uint64(rd), 10))

	return sb.String()
}

// Report returns a one-line diagnostic summary for registries.
func (q *Int32Queue) Report() string {
	return reportQueue("int32", q.MaxFull(), q.Cap())
}
