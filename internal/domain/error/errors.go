package error

import (
	"errors"
	"fmt"
)

// Error codes reported by the console viewer
const (
	// 4xxx - Caller errors
	CodeInvalidSeverity   = 4001
	CodeInvalidMetadata   = 4002
	CodeInvalidCapacity   = 4003
	CodeSignpostUnknown   = 4004
	CodeSignpostEnded     = 4005
	CodeSignpostMismatch  = 4006
	CodeInvalidRequest    = 4000
	CodeMetadataTooDeep   = 4007
	CodeProducerFailed    = 4220
	CodeLoggerUnavailable = 4040

	// 5xxx - Internal faults
	CodeSinkFault      = 5001
	CodeTransportFault = 5002
	CodeInternal       = 5000
)

// Base error types
var (
	// ErrInvalidSeverity is returned when a severity name or value is not one of the six levels
	ErrInvalidSeverity = errors.New("invalid severity")

	// ErrInvalidMetadata is returned when metadata text cannot be decoded
	ErrInvalidMetadata = errors.New("invalid metadata")

	// ErrMaxDepth is returned when metadata nests deeper than the supported depth
	ErrMaxDepth = errors.New("metadata nesting exceeds maximum depth")

	// ErrInvalidCapacity is returned when a console store is built with a non-positive capacity
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrSinkFault is returned when an event sink fails or panics during fan-out
	ErrSinkFault = errors.New("event sink fault")

	// ErrTransportFault is returned when the native transport rejects a rendered line
	ErrTransportFault = errors.New("native transport fault")

	// ErrSignpostUnknown is returned when a signpost end references an id that was never issued
	ErrSignpostUnknown = errors.New("unknown signpost id")

	// ErrSignpostEnded is returned when a signpost id is ended a second time
	ErrSignpostEnded = errors.New("signpost already ended")

	// ErrSignpostNameMismatch is returned when a signpost is ended under a different name than it began with
	ErrSignpostNameMismatch = errors.New("signpost name mismatch")

	// ErrProducerFailed is returned when a deferred message producer fails
	ErrProducerFailed = errors.New("deferred message producer failed")

	// ErrInvalidRequest is returned when a viewer request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternal is returned for unexpected faults
	ErrInternal = errors.New("internal error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidSeverity):
		return CodeInvalidSeverity
	case errors.Is(err, ErrMaxDepth):
		return CodeMetadataTooDeep
	case errors.Is(err, ErrInvalidMetadata):
		return CodeInvalidMetadata
	case errors.Is(err, ErrInvalidCapacity):
		return CodeInvalidCapacity
	case errors.Is(err, ErrSignpostUnknown):
		return CodeSignpostUnknown
	case errors.Is(err, ErrSignpostEnded):
		return CodeSignpostEnded
	case errors.Is(err, ErrSignpostNameMismatch):
		return CodeSignpostMismatch
	case errors.Is(err, ErrProducerFailed):
		return CodeProducerFailed
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrSinkFault):
		return CodeSinkFault
	case errors.Is(err, ErrTransportFault):
		return CodeTransportFault
	default:
		return CodeInternal
	}
}

// SinkError describes an event sink that failed during fan-out
type SinkError struct {
	Token    uint64
	Category string
	Err      error
}

// Error implements the error interface for SinkError
func (e *SinkError) Error() string {
	return fmt.Sprintf("event sink %d on %q failed: %v", e.Token, e.Category, e.Err)
}

// Unwrap returns the underlying error
func (e *SinkError) Unwrap() error {
	return e.Err
}

// Is reports every SinkError as an ErrSinkFault
func (e *SinkError) Is(target error) bool {
	return target == ErrSinkFault
}

// LogFields returns a map of fields for structured logging
func (e *SinkError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "sink_fault",
		"sink_token": e.Token,
		"category":   e.Category,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e),
	}
}

// NewSinkError wraps the failure of one sink invocation
func NewSinkError(token uint64, category string, err error) error {
	return &SinkError{Token: token, Category: category, Err: err}
}

// SignpostError describes an out-of-order signpost end
type SignpostError struct {
	Name     string
	ID       uint64
	Category string
	Err      error
}

// Error implements the error interface for SignpostError
func (e *SignpostError) Error() string {
	return fmt.Sprintf("signpost %q (id %d) on %q: %v", e.Name, e.ID, e.Category, e.Err)
}

// Unwrap returns the underlying error
func (e *SignpostError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SignpostError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "signpost_ordering",
		"signpost":    e.Name,
		"signpost_id": e.ID,
		"category":    e.Category,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewSignpostError creates a detailed signpost ordering error
func NewSignpostError(name string, id uint64, category string, err error) error {
	return &SignpostError{Name: name, ID: id, Category: category, Err: err}
}

// TransportError describes a line the native transport did not accept
type TransportError struct {
	Subsystem string
	Category  string
	Severity  string
	Err       error
}

// Error implements the error interface for TransportError
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport rejected %s line for %s/%s: %v", e.Severity, e.Subsystem, e.Category, e.Err)
}

// Unwrap returns the underlying error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports every TransportError as an ErrTransportFault
func (e *TransportError) Is(target error) bool {
	return target == ErrTransportFault
}

// LogFields returns a map of fields for structured logging
func (e *TransportError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "transport_fault",
		"subsystem":  e.Subsystem,
		"category":   e.Category,
		"severity":   e.Severity,
		"error":      e.Err.Error(),
		"error_code": CodeTransportFault,
	}
}

// NewTransportError creates a detailed transport error
func NewTransportError(subsystem, category, severity string, err error) error {
	return &TransportError{Subsystem: subsystem, Category: category, Severity: severity, Err: err}
}

// PanicError converts a recovered panic value into an error
func PanicError(recovered any) error {
	switch v := recovered.(type) {
	case error:
		return fmt.Errorf("panic: %w", v)
	case string:
		return fmt.Errorf("panic: %s", v)
	default:
		return fmt.Errorf("panic: %v", v)
	}
}

// IsSinkFault checks if the error is an event sink failure
func IsSinkFault(err error) bool {
	return errors.Is(err, ErrSinkFault)
}

// IsTransportFault checks if the error is a native transport failure
func IsTransportFault(err error) bool {
	return errors.Is(err, ErrTransportFault)
}

// IsSignpostOrderingFault checks if the error is any signpost ordering failure
func IsSignpostOrderingFault(err error) bool {
	return errors.Is(err, ErrSignpostUnknown) ||
		errors.Is(err, ErrSignpostEnded) ||
		errors.Is(err, ErrSignpostNameMismatch)
}
