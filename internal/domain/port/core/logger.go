package core

import "github.com/Aeastr/LogOutLoud/internal/domain/entity"

// DiagnosticLogger is the secondary channel the facade reports its own
// faults on: failing sinks, rejected transport writes, signpost ordering
// mistakes. It never carries application log entries.
type DiagnosticLogger interface {
	// SetLevel sets the minimum severity to output
	SetLevel(level entity.Severity)
	// GetLevel gets the current minimum severity
	GetLevel() entity.Severity
	// Debug logs debug messages
	Debug(message string, fields map[string]any)
	// Info logs informational messages
	Info(message string, fields map[string]any)
	// Warn logs warning messages
	Warn(message string, fields map[string]any)
	// Error logs errors messages
	Error(message string, fields map[string]any)
	// Flush ensures all buffered logs are written to their destination
	Flush() error
}
