package writequeue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteSerializesPerNamespace(t *testing.T) {
	m := New(nil, nil)
	t.Cleanup(func() { _ = m.Shutdown(context.Background()) })

	var running, maxRunning atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.Execute(context.Background(), "notes", func() error {
				n := running.Add(1)
				for {
					cur := maxRunning.Load()
					if n <= cur || maxRunning.CompareAndSwap(cur, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				running.Add(-1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxRunning.Load())
	assert.Equal(t, 1, m.QueueCount())
}

func TestExecuteReturnsFnError(t *testing.T) {
	m := New(nil, nil)
	t.Cleanup(func() { _ = m.Shutdown(context.Background()) })

	boom := errors.New("boom")
	assert.ErrorIs(t, m.Execute(context.Background(), "notes", func() error { return boom }), boom)
}

func TestExecuteAfterShutdown(t *testing.T) {
	m := New(nil, nil)
	require.NoError(t, m.Shutdown(context.Background()))
	assert.True(t, m.IsClosed())

	err := m.Execute(context.Background(), "notes", func() error { return nil })
	assert.ErrorIs(t, err, ErrWriteQueueClosed)
}

func TestExecuteTimeout(t *testing.T) {
	m := New(&Config{WriteTimeout: 20 * time.Millisecond}, nil)
	release := make(chan struct{})
	t.Cleanup(func() {
		close(release)
		_ = m.Shutdown(context.Background())
	})

	err := m.Execute(context.Background(), "notes", func() error {
		<-release
		return nil
	})
	assert.ErrorIs(t, err, ErrWriteTimeout)
}

func TestCancelledContextSkipsFn(t *testing.T) {
	m := New(nil, nil)
	t.Cleanup(func() { _ = m.Shutdown(context.Background()) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := m.Execute(ctx, "notes", func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
