package queue

import (
	"strconv"
	"strings"

	"github.com/FerroO2000/ringq/internal/rq"
)

// ByteQueue is a fixed-capacity overwrite queue of bytes. Besides single
// bytes it ingests whole strings or byte slices, one byte at a time, which
// makes it a convenient buffer between a character-oriented producer and a
// line-oriented consumer.
type ByteQueue struct {
	ring *rq.Ring[byte]
}

// NewByteQueue returns a queue holding up to capacity bytes.
// The storage is allocated eagerly, exactly once.
func NewByteQueue(capacity int) (*ByteQueue, error) {
	ring, err := rq.New[byte](capacity)
	if err != nil {
		return nil, err
	}

	return &ByteQueue{ring: ring}, nil
}

// Put stores one byte, overwriting the oldest unread one when the queue is
// full.
func (q *ByteQueue) Put(item byte) {
	q.ring.Put(item)
}

// PutBytes ingests the slice byte by byte, in order. Overwriting and the
// high-water mark are applied per byte, exactly as for repeated Put calls.
func (q *ByteQueue) PutBytes(data []byte) {
	for _, item := range data {
		q.ring.Put(item)
	}
}

// PutString ingests the string byte by byte, in order, with the same
// per-byte semantics as PutBytes.
func (q *ByteQueue) PutString(data string) {
	for idx := 0; idx < len(data); idx++ {
		q.ring.Put(data[idx])
	}
}

// PutSeq ingests a string or a byte slice given as a dynamic value.
// Any other kind is rejected with ErrInvalidInput and the queue is left
// untouched.
func (q *ByteQueue) PutSeq(data any) error {
	switch seq := data.(type) {
	case string:
		q.PutString(seq)
	case []byte:
		q.PutBytes(seq)
	default:
		return ErrInvalidInput
	}

	return nil
}

// Get removes and returns the oldest byte. It reports false when the queue
// is empty.
func (q *ByteQueue) Get() (byte, bool) {
	return q.ring.Get()
}

// GetBytes removes the oldest byte and returns it as a one-byte slice, so
// callers can concatenate results into longer runs. It returns nil when
// the queue is empty.
func (q *ByteQueue) GetBytes() []byte {
	item, ok := q.ring.Get()
	if !ok {
		return nil
	}

	return []byte{item}
}

// Clear logically empties the queue and resets the high-water mark.
func (q *ByteQueue) Clear() {
	q.ring.Clear()
}

// Any reports whether at least one unread byte is stored.
func (q *ByteQueue) Any() bool {
	return q.ring.Any()
}

// Full reports whether the next Put will overwrite the oldest byte.
func (q *ByteQueue) Full() bool {
	return q.ring.Full()
}

// Available returns the number of unread bytes.
func (q *ByteQueue) Available() int {
	return q.ring.Available()
}

// MaxFull returns the highest fill level observed since creation or the
// last Clear.
func (q *ByteQueue) MaxFull() int {
	return q.ring.MaxFull()
}

// Cap returns the fixed capacity.
func (q *ByteQueue) Cap() int {
	return q.ring.Cap()
}

// String renders the queue state for debugging: capacity, then the whole
// storage as a quoted byte literal (printable ASCII as characters, the
// rest as two-digit hex escapes), then the write and read indices.
func (q *ByteQueue) String() string {
	slots, wr, rd := q.ring.Dump()

	var sb strings.Builder

	sb.WriteString("ByteQueue[")
	sb.WriteString(strconv.Itoa(len(slots)))
	sb.WriteString("]:b'")

	const hexDigits = "0123456789abcdef"

	for _, slot := range slots {
		if slot > 31 && slot < 127 {
			sb.WriteByte(slot)
			continue
		}

		sb.WriteString("\\x")
		sb.WriteByte(hexDigits[slot>>4])
		sb.WriteByte(hexDigits[slot&0xf])
	}

	sb.WriteString("' W:")
	sb.WriteString(strconv.FormatUint(uint64(wr), 10))
	sb.WriteString(", R:")
	sb.WriteString(strconv.FormatUint(uint64(rd), 10))

	return sb.String()
}

// Report returns a one-line diagnostic summary for registries.
func (q *ByteQueue) Report() string {
	return reportQueue("byte", q.MaxFull(), q.Cap())
}
