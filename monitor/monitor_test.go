package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/FerroO2000/ringq/queue"
	"github.com/stretchr/testify/assert"
)

func Test_Config_Validate(t *testing.T) {
	assert := assert.New(t)

	cfg := NewConfig()
	assert.Equal(DefaultConfigInterval, cfg.Interval)

	// A broken interval is repaired to the default during Init.
	cfg = &Config{Interval: 0}
	mon := New(cfg)
	assert.NoError(mon.Init(t.Context()))
	assert.Equal(DefaultConfigInterval, cfg.Interval)
	mon.Close()

	cfg = &Config{Interval: -time.Second}
	mon = New(cfg)
	assert.NoError(mon.Init(t.Context()))
	assert.Equal(DefaultConfigInterval, cfg.Interval)
	mon.Close()
}

func Test_Monitor_Run(t *testing.T) {
	assert := assert.New(t)

	intQueue, err := queue.NewInt32Queue(4)
	assert.NoError(err)

	byteQueue, err := queue.NewByteQueue(8)
	assert.NoError(err)

	cfg := &Config{Interval: time.Millisecond}

	mon := New(cfg)
	mon.Watch("samples", intQueue)
	mon.Watch("chars", byteQueue)

	assert.NoError(mon.Init(t.Context()))

	ctx, cancelCtx := context.WithCancel(t.Context())

	doneCh := make(chan struct{})
	go func() {
		defer close(doneCh)
		mon.Run(ctx)
	}()

	for val := range 6 {
		intQueue.Put(int32(val))
	}
	byteQueue.PutString("hello")

	// Let a few sampling cycles happen.
	time.Sleep(20 * time.Millisecond)

	cancelCtx()

	select {
	case <-doneCh:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop after context cancellation")
	}

	assert.Positive(mon.metrics.sampleCycles.Load())
}

func Test_Monitor_Close(t *testing.T) {
	assert := assert.New(t)

	mon := New(NewConfig())
	assert.NoError(mon.Init(t.Context()))

	doneCh := make(chan struct{})
	go func() {
		defer close(doneCh)
		mon.Run(t.Context())
	}()

	mon.Close()
	// A second Close must be a no-op.
	mon.Close()

	select {
	case <-doneCh:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop after Close")
	}
}
