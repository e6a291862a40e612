package usecase

import (
	"context"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
)

// MessageProducer builds a log message lazily. It is only called when the
// severity of the call is enabled.
type MessageProducer func(ctx context.Context) (string, error)

// Emitter is the emit surface of a logger instance
type Emitter interface {
	// Log emits one entry; disabled severities are a no-op
	Log(severity entity.Severity, message string, tags entity.Tags, metadata *entity.Value)
	// LogAsync awaits produce off the caller's goroutine and then emits.
	// The returned channel is closed once the call has finished.
	LogAsync(ctx context.Context, severity entity.Severity, produce MessageProducer, tags entity.Tags, metadata *entity.Value) <-chan struct{}
	// Enabled reports whether severity passes the logger's gate
	Enabled(severity entity.Severity) bool
}

// EmitterProvider resolves named emitters
type EmitterProvider interface {
	Emitter(key string) Emitter
}

// ConsoleEventKind identifies a console store change
type ConsoleEventKind uint8

const (
	ConsoleAppended ConsoleEventKind = iota
	ConsoleCleared
	ConsolePaused
	ConsoleResumed
)

// String returns the event kind name
func (k ConsoleEventKind) String() string {
	switch k {
	case ConsoleAppended:
		return "appended"
	case ConsoleCleared:
		return "cleared"
	case ConsolePaused:
		return "paused"
	case ConsoleResumed:
		return "resumed"
	}
	return "unknown"
}

// ConsoleEvent notifies subscribers of a console store change. Entry is
// set for appends only.
type ConsoleEvent struct {
	Kind  ConsoleEventKind
	Entry *entity.LogEntry
}

// ConsoleViewer is the surface a presentation layer uses to display and
// drive a console store. It never mutates the buffer directly.
type ConsoleViewer interface {
	// Entries returns the reader-visible entries in buffer order
	Entries() []entity.LogEntry
	// Filter returns visible entries whose severity is in levels and whose
	// rendered text contains search, ignoring case
	Filter(levels []entity.Severity, search string) []entity.LogEntry
	// ExportText joins the rendered lines of selection in buffer order
	ExportText(selection []entity.LogEntry) string
	// Append adds an entry, evicting the oldest when full
	Append(entry entity.LogEntry)
	// Clear empties the buffer and, when paused, the frozen view
	Clear()
	// Pause freezes the reader-visible view
	Pause()
	// Resume shows the live buffer again
	Resume()
	// Paused reports whether the view is frozen
	Paused() bool
	// Len returns the number of visible entries
	Len() int
	// Capacity returns the maximum number of buffered entries
	Capacity() int
	// Subscribe registers for change notifications. Events are dropped
	// when the channel buffer is full. The returned func unsubscribes.
	Subscribe(buffer int) (<-chan ConsoleEvent, func())
}
