package entity

import "strings"

// Tag is a categorical label attached to a log call. Two tags are equal
// when their names are equal, so callers extend the set simply by
// declaring more constants.
type Tag string

// Predefined tags
const (
	TagGeneral  Tag = "General"
	TagNetwork  Tag = "Network"
	TagHTTP     Tag = "HTTP"
	TagSignpost Tag = "Signpost"
	TagConsole  Tag = "Console"
)

// String returns the tag name
func (t Tag) String() string {
	return string(t)
}

// Tags is an ordered list of tags; duplicates are kept
type Tags []Tag

// Prefix renders the tags as "[A][B]". An empty list renders as "".
func (ts Tags) Prefix() string {
	if len(ts) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range ts {
		b.WriteByte('[')
		b.WriteString(string(t))
		b.WriteByte(']')
	}
	return b.String()
}

// Contains reports whether the list holds a tag equal to t
func (ts Tags) Contains(t Tag) bool {
	for _, tag := range ts {
		if tag == t {
			return true
		}
	}
	return false
}

// ParseTags splits a comma separated list into tags, ignoring blanks
func ParseTags(list string) Tags {
	var out Tags
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, Tag(part))
		}
	}
	return out
}
