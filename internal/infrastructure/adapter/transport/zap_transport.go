package transport

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	errs "github.com/Aeastr/LogOutLoud/internal/domain/error"
	"github.com/Aeastr/LogOutLoud/internal/domain/port/core"
	"github.com/Aeastr/LogOutLoud/internal/infrastructure/adapter/logger"
)

// ErrClosed is returned when a line is emitted after Close
var ErrClosed = errors.New("transport closed")

// ZapTransport writes rendered lines through zap. Each subsystem/category
// pair gets its own named child logger, created once and cached.
type ZapTransport struct {
	base    *zap.Logger
	loggers sync.Map // map[string]*zap.Logger
	closed  atomic.Bool
}

var (
	_ core.NativeTransport = (*ZapTransport)(nil)
	_ core.IntervalTracer  = (*ZapTransport)(nil)
)

// NewZapTransport builds the transport the same way the diagnostics logger
// is built: JSON with ISO8601 time in production, colored console output
// otherwise. Every level is enabled; gating happens before the transport.
func NewZapTransport(isProduction bool) (*ZapTransport, error) {
	var cfg zap.Config
	if isProduction {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true

	base, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap transport: %w", err)
	}
	return NewZapTransportWithLogger(base), nil
}

// NewZapTransportWithLogger wraps an existing zap logger
func NewZapTransportWithLogger(base *zap.Logger) *ZapTransport {
	return &ZapTransport{base: base}
}

func (t *ZapTransport) loggerFor(subsystem, category string) *zap.Logger {
	key := subsystem + "\x00" + category
	if l, ok := t.loggers.Load(key); ok {
		return l.(*zap.Logger)
	}
	l, _ := t.loggers.LoadOrStore(key, t.base.Named(subsystem).Named(category))
	return l.(*zap.Logger)
}

// Emit implements core.NativeTransport
func (t *ZapTransport) Emit(subsystem, category string, severity entity.Severity, line string) error {
	if t.closed.Load() {
		return ErrClosed
	}
	if !severity.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidSeverity, uint8(severity))
	}

	ce := t.loggerFor(subsystem, category).Check(logger.ZapLevel(severity), line)
	if ce == nil {
		return nil
	}
	ce.Write(zap.String("severity", severity.String()))
	return nil
}

// BeginInterval implements core.IntervalTracer
func (t *ZapTransport) BeginInterval(subsystem, category, name string, id uint64) error {
	return t.interval("begin", subsystem, category, name, id)
}

// EndInterval implements core.IntervalTracer
func (t *ZapTransport) EndInterval(subsystem, category, name string, id uint64) error {
	return t.interval("end", subsystem, category, name, id)
}

func (t *ZapTransport) interval(phase, subsystem, category, name string, id uint64) error {
	if t.closed.Load() {
		return ErrClosed
	}
	t.loggerFor(subsystem, category).Debug("interval",
		zap.String("phase", phase),
		zap.String("signpost", name),
		zap.Uint64("signpost_id", id),
	)
	return nil
}

// Flush syncs the underlying zap core
func (t *ZapTransport) Flush() error {
	return logger.SyncIgnoringTTY(t.base)
}

// Close flushes and rejects further lines
func (t *ZapTransport) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	return t.Flush()
}
