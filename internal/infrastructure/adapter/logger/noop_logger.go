package logger

import (
	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	"github.com/Aeastr/LogOutLoud/internal/domain/port/core"
)

// NoopLogger implements the DiagnosticLogger interface but doesn't do anything.
// Useful for tests and for embedding the facade in a host that has its own
// error reporting.
type NoopLogger struct {
	level entity.Severity
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.DiagnosticLogger {
	return &NoopLogger{
		level: entity.SeverityInfo,
	}
}

// SetLevel sets the minimum severity
func (l *NoopLogger) SetLevel(level entity.Severity) {
	l.level = level
}

// GetLevel gets the current minimum severity
func (l *NoopLogger) GetLevel() entity.Severity {
	return l.level
}

// Debug does nothing
func (l *NoopLogger) Debug(message string, fields map[string]any) {}

// Info does nothing
func (l *NoopLogger) Info(message string, fields map[string]any) {}

// Warn does nothing
func (l *NoopLogger) Warn(message string, fields map[string]any) {}

// Error does nothing
func (l *NoopLogger) Error(message string, fields map[string]any) {}

// Flush ensures all buffered logs are written to their destination
func (l *NoopLogger) Flush() error {
	return nil
}
