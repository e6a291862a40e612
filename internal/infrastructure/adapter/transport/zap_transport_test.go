package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	errs "github.com/Aeastr/LogOutLoud/internal/domain/error"
)

func newObservedTransport(level zapcore.Level) (*ZapTransport, *observer.ObservedLogs) {
	observedCore, logs := observer.New(level)
	return NewZapTransportWithLogger(zap.New(observedCore)), logs
}

func TestZapTransport_Emit(t *testing.T) {
	tests := []struct {
		name      string
		severity  entity.Severity
		wantLevel zapcore.Level
	}{
		{"debug maps to debug", entity.SeverityDebug, zap.DebugLevel},
		{"info maps to info", entity.SeverityInfo, zap.InfoLevel},
		{"notice maps to info", entity.SeverityNotice, zap.InfoLevel},
		{"warning maps to warn", entity.SeverityWarning, zap.WarnLevel},
		{"error maps to error", entity.SeverityError, zap.ErrorLevel},
		{"fault maps to error", entity.SeverityFault, zap.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run("should write line when "+tt.name, func(t *testing.T) {
			// Arrange
			transport, logs := newObservedTransport(zap.DebugLevel)

			// Act
			err := transport.Emit("app", "network", tt.severity, "[Network] connected")

			// Assert
			require.NoError(t, err)
			require.Equal(t, 1, logs.Len())
			got := logs.All()[0]
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, "[Network] connected", got.Message)
			assert.Equal(t, "app.network", got.LoggerName)
			assert.Equal(t, tt.severity.String(), got.ContextMap()["severity"])
		})
	}

	t.Run("should skip lines below the core level", func(t *testing.T) {
		transport, logs := newObservedTransport(zap.WarnLevel)

		require.NoError(t, transport.Emit("app", "default", entity.SeverityInfo, "quiet"))

		assert.Equal(t, 0, logs.Len())
	})

	t.Run("should reject invalid severities", func(t *testing.T) {
		transport, logs := newObservedTransport(zap.DebugLevel)

		err := transport.Emit("app", "default", entity.Severity(42), "line")

		assert.ErrorIs(t, err, errs.ErrInvalidSeverity)
		assert.Equal(t, 0, logs.Len())
	})

	t.Run("should reuse the child logger per category", func(t *testing.T) {
		transport, _ := newObservedTransport(zap.DebugLevel)

		first := transport.loggerFor("app", "db")
		second := transport.loggerFor("app", "db")
		other := transport.loggerFor("app", "http")

		assert.Same(t, first, second)
		assert.NotSame(t, first, other)
	})
}

func TestZapTransport_Intervals(t *testing.T) {
	t.Run("should record begin and end with the signpost id", func(t *testing.T) {
		// Arrange
		transport, logs := newObservedTransport(zap.DebugLevel)

		// Act
		require.NoError(t, transport.BeginInterval("app", "db", "query", 7))
		require.NoError(t, transport.EndInterval("app", "db", "query", 7))

		// Assert
		entries := logs.FilterMessage("interval").All()
		require.Len(t, entries, 2)
		assert.Equal(t, "begin", entries[0].ContextMap()["phase"])
		assert.Equal(t, "end", entries[1].ContextMap()["phase"])
		assert.Equal(t, uint64(7), entries[1].ContextMap()["signpost_id"])
		assert.Equal(t, "query", entries[1].ContextMap()["signpost"])
	})
}

func TestZapTransport_Close(t *testing.T) {
	t.Run("should reject lines after close", func(t *testing.T) {
		transport, logs := newObservedTransport(zap.DebugLevel)

		require.NoError(t, transport.Close())
		require.NoError(t, transport.Close())
		err := transport.Emit("app", "default", entity.SeverityError, "late")

		assert.ErrorIs(t, err, ErrClosed)
		assert.ErrorIs(t, transport.BeginInterval("app", "default", "x", 1), ErrClosed)
		assert.Equal(t, 0, logs.Len())
	})
}

func TestNoopTransport(t *testing.T) {
	transport := NewNoopTransport()

	assert.NoError(t, transport.Emit("app", "default", entity.SeverityFault, "gone"))
	assert.NoError(t, transport.Flush())
}
