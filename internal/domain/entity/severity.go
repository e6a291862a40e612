package entity

import (
	"fmt"
	"strings"

	errs "github.com/Aeastr/LogOutLoud/internal/domain/error"
)

// Severity represents the ordered log levels, from debug up to fault
type Severity uint8

const (
	// SeverityDebug for detailed diagnostic output
	SeverityDebug Severity = iota
	// SeverityInfo for general operational information
	SeverityInfo
	// SeverityNotice for normal but significant conditions
	SeverityNotice
	// SeverityWarning for recoverable problems
	SeverityWarning
	// SeverityError for failed operations
	SeverityError
	// SeverityFault for conditions the process cannot recover from
	SeverityFault

	severityCount
)

var severityNames = [severityCount]string{
	SeverityDebug:   "debug",
	SeverityInfo:    "info",
	SeverityNotice:  "notice",
	SeverityWarning: "warning",
	SeverityError:   "error",
	SeverityFault:   "fault",
}

// AllSeverities returns every severity in ascending order
func AllSeverities() []Severity {
	return []Severity{
		SeverityDebug,
		SeverityInfo,
		SeverityNotice,
		SeverityWarning,
		SeverityError,
		SeverityFault,
	}
}

// SeveritiesAtOrAbove returns min and every more severe level
func SeveritiesAtOrAbove(min Severity) []Severity {
	var out []Severity
	for _, s := range AllSeverities() {
		if s.AtOrAbove(min) {
			out = append(out, s)
		}
	}
	return out
}

// Valid reports whether s is one of the six defined severities
func (s Severity) Valid() bool {
	return s < severityCount
}

// AtOrAbove reports whether s is at least as severe as other
func (s Severity) AtOrAbove(other Severity) bool {
	return s >= other
}

// String returns the lower-case name of the severity
func (s Severity) String() string {
	if !s.Valid() {
		return fmt.Sprintf("severity(%d)", uint8(s))
	}
	return severityNames[s]
}

// MarshalText implements encoding.TextMarshaler
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidSeverity, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity converts a level name into a Severity. Common aliases
// such as "warn", "err" and "critical" are accepted.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug", "trace":
		return SeverityDebug, nil
	case "info":
		return SeverityInfo, nil
	case "notice":
		return SeverityNotice, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error", "err":
		return SeverityError, nil
	case "fault", "fatal", "critical":
		return SeverityFault, nil
	default:
		return SeverityDebug, fmt.Errorf("%w: %q", errs.ErrInvalidSeverity, name)
	}
}

// ParseSeverities parses a comma separated list of level names. An empty
// string yields every severity.
func ParseSeverities(list string) ([]Severity, error) {
	if strings.TrimSpace(list) == "" {
		return AllSeverities(), nil
	}
	var out []Severity
	for _, part := range strings.Split(list, ",") {
		s, err := ParseSeverity(part)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
