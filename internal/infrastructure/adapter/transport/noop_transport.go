package transport

import (
	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	"github.com/Aeastr/LogOutLoud/internal/domain/port/core"
)

// NoopTransport discards every line. Useful for tests or when only event
// sinks should observe entries.
type NoopTransport struct{}

var _ core.NativeTransport = NoopTransport{}

// NewNoopTransport creates a new no-op transport
func NewNoopTransport() core.NativeTransport {
	return NoopTransport{}
}

// Emit discards line
func (NoopTransport) Emit(subsystem, category string, severity entity.Severity, line string) error {
	return nil
}

// Flush has nothing to write
func (NoopTransport) Flush() error {
	return nil
}
