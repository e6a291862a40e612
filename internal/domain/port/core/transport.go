package core

import "github.com/Aeastr/LogOutLoud/internal/domain/entity"

// NativeTransport persists or displays rendered log lines. Failures are
// reported back but never retried by the caller.
type NativeTransport interface {
	// Emit writes one rendered line for the given subsystem and category
	Emit(subsystem, category string, severity entity.Severity, line string) error
	// Flush ensures all buffered lines are written to their destination
	Flush() error
}

// IntervalTracer is implemented by transports that can record begin/end
// intervals natively. Transports without interval support simply do not
// implement it.
type IntervalTracer interface {
	BeginInterval(subsystem, category, name string, id uint64) error
	EndInterval(subsystem, category, name string, id uint64) error
}
