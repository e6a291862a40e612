package logging

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	errs "github.com/Aeastr/LogOutLoud/internal/domain/error"
)

func TestLogger_Log(t *testing.T) {
	t.Run("should render, forward and fan out an enabled entry", func(t *testing.T) {
		// Arrange
		deps := newTestDeps(t)
		deps.transport.EXPECT().
			Emit("com.example.app", "network", entity.SeverityInfo, `[Network] connected | {"host":"api","port":443}`).
			Return(nil).Once()
		l := deps.logger("network")
		rec := &recordingSink{}
		l.AddSink(rec.sink)

		// Act
		md := entity.Object(entity.F("host", "api"), entity.F("port", 443))
		l.Log(entity.SeverityInfo, "connected", entity.Tags{entity.TagNetwork}, &md)

		// Assert
		require.Len(t, rec.entries, 1)
		got := rec.entries[0]
		assert.Equal(t, `[Network] connected | {"host":"api","port":443}`, got.Rendered)
		assert.Equal(t, "network", got.Category)
		assert.Equal(t, "com.example.app", got.Subsystem)
		assert.Equal(t, fixedTime, got.Timestamp)
		assert.Equal(t, "logger_test.go", got.Location.File)
		assert.NotEqual(t, [16]byte{}, [16]byte(got.ID))
	})

	t.Run("should do nothing for disabled severities", func(t *testing.T) {
		// Arrange
		deps := newTestDeps(t)
		l := deps.logger("default")
		l.SetSeverities(entity.SeverityError, entity.SeverityFault)
		var sinkCalls int
		l.AddSink(func(entity.LogEntry) error {
			sinkCalls++
			return nil
		})

		// Act
		for _, s := range []entity.Severity{entity.SeverityDebug, entity.SeverityInfo, entity.SeverityNotice, entity.SeverityWarning} {
			l.Log(s, "ignored", nil, nil)
		}
		l.Debug("ignored", nil)
		l.Warning("ignored", nil)

		// Assert
		assert.Equal(t, 0, sinkCalls)
		deps.transport.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should route severity helpers to their level", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.transport.EXPECT().Emit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(6)
		l := deps.logger("default")
		rec := &recordingSink{}
		l.AddSink(rec.sink)

		l.Debug("d", nil)
		l.Info("i", nil)
		l.Notice("n", nil)
		l.Warning("w", nil)
		l.Error("e", nil)
		l.Fault("f", nil)

		require.Len(t, rec.entries, 6)
		for i, s := range entity.AllSeverities() {
			assert.Equal(t, s, rec.entries[i].Severity)
			assert.Equal(t, "logger_test.go", rec.entries[i].Location.File)
		}
	})

	t.Run("should swallow transport faults and report them on diagnostics", func(t *testing.T) {
		// Arrange
		deps := newTestDeps(t)
		deps.transport.EXPECT().Emit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("socket closed")).Once()
		deps.diagnostics.EXPECT().
			Warn("Native transport rejected log line", mock.MatchedBy(func(fields map[string]any) bool {
				return fields["error_type"] == "transport_fault" && fields["category"] == "default"
			})).Once()
		l := deps.logger("default")
		rec := &recordingSink{}
		l.AddSink(rec.sink)

		// Act
		assert.NotPanics(t, func() { l.Error("still delivered", nil) })

		// Assert
		assert.Len(t, rec.entries, 1)
	})

	t.Run("should contain a panicking transport", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.transport.EXPECT().Emit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(func(string, string, entity.Severity, string) error { panic("driver bug") }).Once()
		deps.diagnostics.EXPECT().Error("Native transport panicked", mock.Anything).Once()
		l := deps.logger("default")
		rec := &recordingSink{}
		l.AddSink(rec.sink)

		assert.NotPanics(t, func() { l.Info("x", nil) })
		assert.Len(t, rec.entries, 1)
	})

	t.Run("should report a removed sink on diagnostics", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.transport.EXPECT().Emit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()
		deps.diagnostics.EXPECT().Error("Event sink removed after fault", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["error_type"] == "sink_fault"
		})).Once()
		l := deps.logger("default")
		l.AddSink(func(entity.LogEntry) error { return errors.New("full") })

		l.Info("first", nil)
		l.Info("second", nil)

		assert.Equal(t, 0, l.SinkCount())
	})

	t.Run("should keep a slow sink and report its late fault on diagnostics", func(t *testing.T) {
		// Arrange
		deps := newTestDeps(t)
		deps.transport.EXPECT().Emit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		reported := make(chan struct{})
		deps.diagnostics.EXPECT().Error("Event sink removed after fault", mock.Anything).
			Run(func(string, map[string]any) { close(reported) }).Once()
		opts := deps.options()
		opts.SinkTimeout = 20 * time.Millisecond
		l := NewRegistry(opts).Default()
		release := make(chan struct{})
		l.AddSink(func(entity.LogEntry) error {
			<-release
			return errors.New("disk full")
		})

		// Act
		l.Info("slow", nil)
		count := l.SinkCount()
		close(release)

		// Assert
		assert.Equal(t, 1, count)
		select {
		case <-reported:
		case <-time.After(time.Second):
			t.Fatal("late sink fault was not reported")
		}
		assert.Equal(t, 0, l.SinkCount())
	})
}

func TestLogger_Policy(t *testing.T) {
	t.Run("should render with the replaced policy", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.transport.EXPECT().Emit(mock.Anything, mock.Anything, mock.Anything, "connected").Return(nil).Once()
		l := deps.logger("default")

		l.UpdatePolicy(func(p *entity.FormatPolicy) {
			p.IncludeTags = false
			p.IncludeMetadata = false
		})
		l.Info("connected", ptr(entity.Object(entity.F("a", 1))), entity.TagNetwork)

		assert.False(t, l.Policy().IncludeTags)
	})

	t.Run("should render every line with one whole policy under concurrent swaps", func(t *testing.T) {
		// Arrange
		deps := newTestDeps(t)
		deps.transport.EXPECT().Emit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
		l := deps.logger("default")
		plain := entity.FormatPolicy{}
		full := entity.DefaultFormatPolicy()
		md := entity.Object(entity.F("k", 1))

		var mu sync.Mutex
		var lines []string
		l.AddSink(func(e entity.LogEntry) error {
			mu.Lock()
			lines = append(lines, e.Rendered)
			mu.Unlock()
			return nil
		})

		// Act
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if i%2 == 0 {
					l.SetPolicy(plain)
				} else {
					l.SetPolicy(full)
				}
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				l.Info("msg", &md, entity.TagGeneral)
			}
		}()
		wg.Wait()

		// Assert
		require.Len(t, lines, 200)
		for _, line := range lines {
			assert.Contains(t, []string{"msg", `[General] msg | {"k":1}`}, line)
		}
	})
}

func TestLogger_LogAsync(t *testing.T) {
	t.Run("should not evaluate the producer when the severity is disabled", func(t *testing.T) {
		deps := newTestDeps(t)
		l := deps.logger("default")
		l.SetMinimumSeverity(entity.SeverityError)
		var evaluated atomic.Bool

		done := l.LogAsync(context.Background(), entity.SeverityDebug, func(context.Context) (string, error) {
			evaluated.Store(true)
			return "expensive", nil
		}, nil, nil)

		<-done
		assert.False(t, evaluated.Load())
	})

	t.Run("should emit the produced message without blocking the caller", func(t *testing.T) {
		// Arrange
		deps := newTestDeps(t)
		deps.transport.EXPECT().Emit("com.example.app", "default", entity.SeverityNotice, "[General] computed").Return(nil).Once()
		l := deps.logger("default")
		release := make(chan struct{})

		// Act
		done := l.LogAsync(context.Background(), entity.SeverityNotice, func(context.Context) (string, error) {
			<-release
			return "computed", nil
		}, entity.Tags{entity.TagGeneral}, nil)

		// Assert
		select {
		case <-done:
			t.Fatal("LogAsync waited for the producer")
		default:
		}
		close(release)
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("deferred emit did not finish")
		}
	})

	t.Run("should drop the entry when the producer fails", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.diagnostics.EXPECT().Warn("Deferred log message dropped", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["severity"] == "error"
		})).Twice()
		l := deps.logger("default")

		<-l.LogAsync(context.Background(), entity.SeverityError, func(context.Context) (string, error) {
			return "", errors.New("lookup failed")
		}, nil, nil)
		<-l.LogAsync(context.Background(), entity.SeverityError, func(context.Context) (string, error) {
			panic("producer bug")
		}, nil, nil)

		deps.transport.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should wrap producer failures", func(t *testing.T) {
		_, err := runProducer(context.Background(), func(context.Context) (string, error) {
			return "", errors.New("lookup failed")
		})

		assert.ErrorIs(t, err, errs.ErrProducerFailed)
		assert.Equal(t, errs.CodeProducerFailed, errs.ErrorCode(err))
	})
}
