package entity

import (
	"time"

	"github.com/google/uuid"
)

// LogEntry is the record of one accepted log call. Entries are created
// once at emit time and never modified; consumers may retain them freely.
type LogEntry struct {
	ID        uuid.UUID
	Severity  Severity
	Message   string
	Tags      Tags
	Metadata  *Value // nil when the call carried no metadata
	Rendered  string // empty when the entry was not rendered
	Subsystem string
	Category  string
	Location  SourceLocation
	Timestamp time.Time
}

// NewLogEntry creates an entry with a fresh identifier. The tag slice is
// copied so later changes by the caller cannot reach the entry.
func NewLogEntry(severity Severity, message string, tags Tags, metadata *Value, at time.Time) LogEntry {
	var ownTags Tags
	if len(tags) > 0 {
		ownTags = make(Tags, len(tags))
		copy(ownTags, tags)
	}
	return LogEntry{
		ID:        uuid.New(),
		Severity:  severity,
		Message:   message,
		Tags:      ownTags,
		Metadata:  metadata,
		Timestamp: at,
	}
}

// HasMetadata reports whether the entry carries metadata
func (e LogEntry) HasMetadata() bool {
	return e.Metadata != nil
}

// Text returns the rendered line, falling back to the bare message
func (e LogEntry) Text() string {
	if e.Rendered != "" {
		return e.Rendered
	}
	return e.Message
}
