package dto

import "encoding/json"

// EmitRequest represents the body of POST /logs/:category
type EmitRequest struct {
	Severity string          `json:"severity" binding:"required"`
	Message  string          `json:"message" binding:"required"`
	Tags     []string        `json:"tags"`
	Metadata json.RawMessage `json:"metadata"`
}

// EmitResponse reports whether the entry passed the logger's gate
type EmitResponse struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
	Accepted bool   `json:"accepted"`
}
