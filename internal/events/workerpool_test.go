package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPoolRunsTasks(t *testing.T) {
	wp := NewWorkerPool(4)
	defer wp.Close()

	var mu sync.Mutex
	done := make(chan struct{})
	count := 0

	for i := 0; i < 10; i++ {
		err := wp.AddTask(context.Background(), func() error {
			mu.Lock()
			count++
			if count == 10 {
				close(done)
			}
			mu.Unlock()
			return nil
		})
		assert.NoError(t, err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tasks did not complete in time")
	}

	mu.Lock()
	assert.Equal(t, 10, count)
	mu.Unlock()
}

func TestWorkerPoolCanceledContext(t *testing.T) {
	// Zero-sized pool: the send always blocks, so the context wins.
	wp := &WorkerPool{pool: make(chan Task)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
