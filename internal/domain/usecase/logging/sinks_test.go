package logging

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	errs "github.com/Aeastr/LogOutLoud/internal/domain/error"
)

func TestSinkRegistry_FanOut(t *testing.T) {
	entry := entity.NewLogEntry(entity.SeverityInfo, "hello", nil, nil, fixedTime)

	t.Run("should deliver in registration order", func(t *testing.T) {
		registry := NewSinkRegistry("default", 0)
		var order []int
		for i := 1; i <= 3; i++ {
			i := i
			registry.Add(func(entity.LogEntry) error {
				order = append(order, i)
				return nil
			})
		}

		faults := registry.FanOut(entry)

		assert.Empty(t, faults)
		assert.Equal(t, []int{1, 2, 3}, order)
	})

	t.Run("should keep delivering after a failing sink", func(t *testing.T) {
		// Arrange
		registry := NewSinkRegistry("default", 0)
		failing := registry.Add(func(entity.LogEntry) error { return errors.New("disk full") })
		second := &recordingSink{}
		registry.Add(second.sink)

		// Act
		faults := registry.FanOut(entry)

		// Assert
		require.Len(t, faults, 1)
		assert.ErrorIs(t, faults[0], errs.ErrSinkFault)
		var sinkErr *errs.SinkError
		require.ErrorAs(t, faults[0], &sinkErr)
		assert.Equal(t, uint64(failing), sinkErr.Token)
		assert.Equal(t, "default", sinkErr.Category)
		require.Len(t, second.entries, 1)
		assert.Equal(t, entry.ID, second.entries[0].ID)
	})

	t.Run("should contain panicking sinks", func(t *testing.T) {
		registry := NewSinkRegistry("default", 0)
		registry.Add(func(entity.LogEntry) error { panic("boom") })
		second := &recordingSink{}
		registry.Add(second.sink)

		faults := registry.FanOut(entry)

		require.Len(t, faults, 1)
		assert.Contains(t, faults[0].Error(), "panic: boom")
		assert.Len(t, second.entries, 1)
	})

	t.Run("should drop a failing sink after reporting once", func(t *testing.T) {
		registry := NewSinkRegistry("default", 0)
		var calls int
		registry.Add(func(entity.LogEntry) error {
			calls++
			return errors.New("nope")
		})

		first := registry.FanOut(entry)
		second := registry.FanOut(entry)

		assert.Len(t, first, 1)
		assert.Empty(t, second)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 0, registry.Len())
	})

	t.Run("should report a fault exactly once under concurrent fan-out", func(t *testing.T) {
		// Arrange
		registry := NewSinkRegistry("default", 0)
		release := make(chan struct{})
		registry.Add(func(entity.LogEntry) error {
			<-release
			return errors.New("nope")
		})

		// Act
		var reported atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				reported.Add(int32(len(registry.FanOut(entry))))
			}()
		}
		close(release)
		wg.Wait()

		// Assert
		assert.Equal(t, int32(1), reported.Load())
	})

	t.Run("should move past a slow sink without removing it", func(t *testing.T) {
		// Arrange
		registry := NewSinkRegistry("default", 20*time.Millisecond)
		var calls atomic.Int32
		slowOnce := make(chan struct{})
		registry.Add(func(entity.LogEntry) error {
			if calls.Add(1) == 1 {
				<-slowOnce
			}
			return nil
		})
		second := make(chan entity.LogEntry, 2)
		registry.Add(func(e entity.LogEntry) error {
			second <- e
			return nil
		})

		// Act
		faults := registry.FanOut(entry)
		close(slowOnce)
		next := entity.NewLogEntry(entity.SeverityInfo, "again", nil, nil, fixedTime)
		nextFaults := registry.FanOut(next)

		// Assert
		assert.Empty(t, faults)
		assert.Empty(t, nextFaults)
		assert.Equal(t, 2, registry.Len())
		assert.Equal(t, int32(2), calls.Load())
		require.Len(t, second, 2)
		assert.Equal(t, entry.ID, (<-second).ID)
		assert.Equal(t, next.ID, (<-second).ID)
	})

	t.Run("should remove a slow sink once its late call fails", func(t *testing.T) {
		// Arrange
		registry := NewSinkRegistry("default", 20*time.Millisecond)
		late := make(chan error, 1)
		registry.OnLateFault(func(fault error) { late <- fault })
		release := make(chan struct{})
		registry.Add(func(entity.LogEntry) error {
			<-release
			return errors.New("disk full")
		})

		// Act
		faults := registry.FanOut(entry)
		close(release)

		// Assert
		assert.Empty(t, faults)
		select {
		case fault := <-late:
			assert.ErrorIs(t, fault, errs.ErrSinkFault)
			assert.ErrorContains(t, fault, "disk full")
		case <-time.After(time.Second):
			t.Fatal("late fault was not reported")
		}
		assert.Equal(t, 0, registry.Len())
	})

	t.Run("should remove a slow sink once its late call panics", func(t *testing.T) {
		// Arrange
		registry := NewSinkRegistry("default", 20*time.Millisecond)
		late := make(chan error, 1)
		registry.OnLateFault(func(fault error) { late <- fault })
		release := make(chan struct{})
		registry.Add(func(entity.LogEntry) error {
			<-release
			panic("boom")
		})

		// Act
		registry.FanOut(entry)
		close(release)

		// Assert
		select {
		case fault := <-late:
			assert.ErrorContains(t, fault, "panic: boom")
		case <-time.After(time.Second):
			t.Fatal("late fault was not reported")
		}
		assert.Equal(t, 0, registry.Len())
	})
}

func TestSinkRegistry_AddRemove(t *testing.T) {
	t.Run("should issue distinct tokens and remove each once", func(t *testing.T) {
		registry := NewSinkRegistry("default", 0)
		a := registry.Add(func(entity.LogEntry) error { return nil })
		b := registry.Add(func(entity.LogEntry) error { return nil })

		assert.NotEqual(t, a, b)
		assert.True(t, registry.Remove(a))
		assert.False(t, registry.Remove(a))
		assert.False(t, registry.Remove(SinkToken(99)))
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("should not deliver to a sink removed during fan-out of a later entry", func(t *testing.T) {
		registry := NewSinkRegistry("default", 0)
		var calls int
		token := registry.Add(func(entity.LogEntry) error {
			calls++
			return nil
		})

		registry.FanOut(entity.LogEntry{})
		registry.Remove(token)
		registry.FanOut(entity.LogEntry{})

		assert.Equal(t, 1, calls)
	})
}
