package queue

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewQueues(t *testing.T) {
	assert := assert.New(t)

	_, err := NewInt32Queue(0)
	assert.ErrorIs(err, ErrInvalidCapacity)

	_, err = NewFloat32Queue(-4)
	assert.ErrorIs(err, ErrInvalidCapacity)

	_, err = NewByteQueue(0)
	assert.ErrorIs(err, ErrInvalidCapacity)
}

func Test_Int32Queue(t *testing.T) {
	assert := assert.New(t)

	queue, err := NewInt32Queue(3)
	assert.NoError(err)

	queue.Put(1)
	queue.Put(2)
	queue.Put(3)
	assert.True(queue.Full())
	assert.Equal(3, queue.Available())

	// The 4th put sacrifices the oldest value.
	queue.Put(4)
	assert.Equal(3, queue.Available())
	assert.Equal(3, queue.MaxFull())

	for _, expected := range []int32{2, 3, 4} {
		item, ok := queue.Get()
		assert.True(ok)
		assert.Equal(expected, item)
	}

	_, ok := queue.Get()
	assert.False(ok)
	assert.Equal(3, queue.MaxFull())

	queue.Clear()
	assert.Zero(queue.MaxFull())
	assert.Zero(queue.Available())
	assert.Equal(3, queue.Cap())
}

func Test_Int32Queue_PutInt(t *testing.T) {
	assert := assert.New(t)

	queue, err := NewInt32Queue(4)
	assert.NoError(err)

	assert.NoError(queue.PutInt(math.MaxInt32))
	assert.NoError(queue.PutInt(math.MinInt32))

	// Out-of-range values are rejected without touching the queue.
	assert.ErrorIs(queue.PutInt(math.MaxInt32+1), ErrValueRange)
	assert.ErrorIs(queue.PutInt(math.MinInt32-1), ErrValueRange)
	assert.Equal(2, queue.Available())

	item, ok := queue.Get()
	assert.True(ok)
	assert.Equal(int32(math.MaxInt32), item)

	item, ok = queue.Get()
	assert.True(ok)
	assert.Equal(int32(math.MinInt32), item)
}

func Test_Int32Queue_String(t *testing.T) {
	assert := assert.New(t)

	queue, err := NewInt32Queue(4)
	assert.NoError(err)

	assert.Equal("Int32Queue[4]:0,0,0,0,W:0,R:0", queue.String())

	queue.Put(1)
	queue.Put(-2)
	assert.Equal("Int32Queue[4]:1,-2,0,0,W:2,R:0", queue.String())

	queue.Get()
	assert.Equal("Int32Queue[4]:1,-2,0,0,W:2,R:1", queue.String())
}

func Test_Float32Queue(t *testing.T) {
	assert := assert.New(t)

	queue, err := NewFloat32Queue(2)
	assert.NoError(err)

	queue.Put(1.5)
	queue.PutFloat64(2.25)

	item, ok := queue.Get()
	assert.True(ok)
	assert.Equal(float32(1.5), item)

	item, ok = queue.Get()
	assert.True(ok)
	assert.Equal(float32(2.25), item)

	assert.False(queue.Any())
	assert.Equal(2, queue.MaxFull())
}

func Test_Float32Queue_Narrowing(t *testing.T) {
	assert := assert.New(t)

	queue, err := NewFloat32Queue(4)
	assert.NoError(err)

	// Standard IEEE-754 narrowing: rounds to the nearest float32.
	queue.PutFloat64(1.0000000001)
	item, ok := queue.Get()
	assert.True(ok)
	assert.Equal(float32(1), item)

	// Values beyond the float32 range become +/-Inf.
	queue.PutFloat64(math.MaxFloat64)
	item, ok = queue.Get()
	assert.True(ok)
	assert.True(math.IsInf(float64(item), 1))

	queue.PutFloat64(-math.MaxFloat64)
	item, ok = queue.Get()
	assert.True(ok)
	assert.True(math.IsInf(float64(item), -1))
}

func Test_Float32Queue_String(t *testing.T) {
	assert := assert.New(t)

	queue, err := NewFloat32Queue(3)
	assert.NoError(err)

	queue.Put(1.5)
	queue.Put(-0.25)
	assert.Equal("Float32Queue[3]:1.5,-0.25,0,W:2,R:0", queue.String())
}
