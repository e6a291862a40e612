package logger

import (
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	"github.com/Aeastr/LogOutLoud/internal/domain/port/core"
)

// ZapLogger implements the DiagnosticLogger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// NewZapLogger creates a new zap-based diagnostics logger
func NewZapLogger(isProduction bool) core.DiagnosticLogger {
	var cfg zap.Config

	if isProduction {
		// JSON encoder for log shippers
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	zapLogger, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	return &ZapLogger{
		logger: zapLogger.Named("logoutloud"),
		level:  cfg.Level,
	}
}

// NewZapLoggerWithCore wraps an existing zap core. The core should be
// built with a level enabler that accepts debug; SetLevel filters on top.
func NewZapLoggerWithCore(c zapcore.Core) *ZapLogger {
	level := zap.NewAtomicLevelAt(zap.DebugLevel)
	return &ZapLogger{
		logger: zap.New(c),
		level:  level,
	}
}

// SetLevel sets the minimum severity
func (l *ZapLogger) SetLevel(level entity.Severity) {
	l.level.SetLevel(ZapLevel(level))
}

// GetLevel gets the current minimum severity
func (l *ZapLogger) GetLevel() entity.Severity {
	switch l.level.Level() {
	case zap.DebugLevel:
		return entity.SeverityDebug
	case zap.InfoLevel:
		return entity.SeverityInfo
	case zap.WarnLevel:
		return entity.SeverityWarning
	case zap.ErrorLevel:
		return entity.SeverityError
	default:
		return entity.SeverityFault
	}
}

// ZapLevel maps a severity onto the closest zap level. Notice shares
// InfoLevel and fault shares ErrorLevel.
func ZapLevel(severity entity.Severity) zapcore.Level {
	switch severity {
	case entity.SeverityDebug:
		return zap.DebugLevel
	case entity.SeverityInfo, entity.SeverityNotice:
		return zap.InfoLevel
	case entity.SeverityWarning:
		return zap.WarnLevel
	case entity.SeverityError, entity.SeverityFault:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// mapToZapFields converts a map of fields to zap fields, sorted by key
func mapToZapFields(fields map[string]any) []zap.Field {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	zapFields := make([]zap.Field, 0, len(fields))
	for _, k := range keys {
		zapFields = append(zapFields, zap.Any(k, fields[k]))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	if !l.level.Enabled(zap.DebugLevel) {
		return
	}
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	if !l.level.Enabled(zap.InfoLevel) {
		return
	}
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	if !l.level.Enabled(zap.WarnLevel) {
		return
	}
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	if !l.level.Enabled(zap.ErrorLevel) {
		return
	}
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	return SyncIgnoringTTY(l.logger)
}
