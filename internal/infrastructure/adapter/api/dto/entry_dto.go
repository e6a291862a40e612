package dto

import (
	"time"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
)

// EntryResponse is one console entry as served to viewers
type EntryResponse struct {
	ID        string        `json:"id"`
	Severity  string        `json:"severity"`
	Message   string        `json:"message"`
	Rendered  string        `json:"rendered"`
	Tags      []string      `json:"tags,omitempty"`
	Metadata  *entity.Value `json:"metadata,omitempty"`
	Subsystem string        `json:"subsystem"`
	Category  string        `json:"category"`
	Location  string        `json:"location,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// EntriesResponse is the body of GET /console/entries
type EntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
	Count   int             `json:"count"`
	Paused  bool            `json:"paused"`
}

// StatusResponse describes the console store and the registry
type StatusResponse struct {
	Paused    bool     `json:"paused"`
	Len       int      `json:"len"`
	Capacity  int      `json:"capacity"`
	Subsystem string   `json:"subsystem"`
	Loggers   []string `json:"loggers"`
}

// EventResponse is one server-sent console change
type EventResponse struct {
	Kind  string         `json:"kind"`
	Entry *EntryResponse `json:"entry,omitempty"`
}

// FromEntry maps a domain entry onto its response shape
func FromEntry(e entity.LogEntry) EntryResponse {
	resp := EntryResponse{
		ID:        e.ID.String(),
		Severity:  e.Severity.String(),
		Message:   e.Message,
		Rendered:  e.Text(),
		Metadata:  e.Metadata,
		Subsystem: e.Subsystem,
		Category:  e.Category,
		Timestamp: e.Timestamp,
	}
	for _, t := range e.Tags {
		resp.Tags = append(resp.Tags, t.String())
	}
	if !e.Location.IsZero() {
		resp.Location = e.Location.String()
	}
	return resp
}

// FromEntries maps a list of entries, never returning nil
func FromEntries(entries []entity.LogEntry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromEntry(e))
	}
	return out
}
