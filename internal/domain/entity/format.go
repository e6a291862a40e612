package entity

import (
	"sort"
	"strings"
)

// MetadataDelimiter separates the message from its serialized metadata
const MetadataDelimiter = " | "

// DefaultTimestampLayout is used when a policy asks for timestamps but names no layout
const DefaultTimestampLayout = "2006-01-02 15:04:05.000"

// VisibilityMode selects how a KeyVisibility treats metadata keys
type VisibilityMode uint8

const (
	// VisibilityAll shows every key
	VisibilityAll VisibilityMode = iota
	// VisibilityInclude shows only the listed keys
	VisibilityInclude
	// VisibilityExclude hides the listed keys
	VisibilityExclude
)

// KeyVisibility filters the keys of a metadata object. Only the top level
// of the object is filtered; nested objects are rendered untouched.
type KeyVisibility struct {
	mode VisibilityMode
	keys map[string]struct{}
}

// AllKeys shows every metadata key
func AllKeys() KeyVisibility {
	return KeyVisibility{mode: VisibilityAll}
}

// IncludeKeys shows only the given top-level keys
func IncludeKeys(keys ...string) KeyVisibility {
	return KeyVisibility{mode: VisibilityInclude, keys: keySet(keys)}
}

// ExcludeKeys hides the given top-level keys
func ExcludeKeys(keys ...string) KeyVisibility {
	return KeyVisibility{mode: VisibilityExclude, keys: keySet(keys)}
}

func keySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// Mode returns the visibility mode
func (k KeyVisibility) Mode() VisibilityMode {
	return k.mode
}

// Keys returns the listed keys in sorted order
func (k KeyVisibility) Keys() []string {
	out := make([]string, 0, len(k.keys))
	for key := range k.keys {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Allows reports whether a top-level key is visible
func (k KeyVisibility) Allows(key string) bool {
	_, listed := k.keys[key]
	switch k.mode {
	case VisibilityInclude:
		return listed
	case VisibilityExclude:
		return !listed
	default:
		return true
	}
}

// Apply filters the top-level keys of an object value. Values that are
// not objects are returned unchanged.
func (k KeyVisibility) Apply(v Value) Value {
	if k.mode == VisibilityAll || v.kind != KindObject {
		return v
	}
	kept := make([]Field, 0, len(v.obj))
	for _, f := range v.obj {
		if k.Allows(f.Key) {
			kept = append(kept, f)
		}
	}
	return Value{kind: KindObject, obj: kept}
}

// FormatPolicy describes what a rendered log line contains. Policies are
// plain values: a logger swaps in a whole new policy rather than editing
// fields in place.
type FormatPolicy struct {
	IncludeTags           bool
	IncludeMetadata       bool
	MetadataStyle         MetadataStyle
	Visibility            KeyVisibility
	IncludeTimestamp      bool
	TimestampLayout       string
	IncludeSourceLocation bool
}

// DefaultFormatPolicy renders tags and compact metadata with every key
func DefaultFormatPolicy() FormatPolicy {
	return FormatPolicy{
		IncludeTags:     true,
		IncludeMetadata: true,
		MetadataStyle:   MetadataCompact,
		Visibility:      AllKeys(),
		TimestampLayout: DefaultTimestampLayout,
	}
}

// IsZero reports whether p is the zero FormatPolicy
func (p FormatPolicy) IsZero() bool {
	return !p.IncludeTags && !p.IncludeMetadata && p.MetadataStyle == MetadataCompact &&
		p.Visibility.mode == VisibilityAll && len(p.Visibility.keys) == 0 &&
		!p.IncludeTimestamp && p.TimestampLayout == "" && !p.IncludeSourceLocation
}

// Render builds the line for entry under policy:
//
//	[timestamp ][Tag1][Tag2] message | {"metadata":true} (file.go:12 function)
//
// Each part is omitted when the policy disables it or the entry lacks it.
// The metadata suffix is also omitted when visibility filtering leaves an
// object with no keys.
func Render(entry LogEntry, policy FormatPolicy) string {
	var b strings.Builder
	if policy.IncludeTimestamp && !entry.Timestamp.IsZero() {
		layout := policy.TimestampLayout
		if layout == "" {
			layout = DefaultTimestampLayout
		}
		b.WriteString(entry.Timestamp.Format(layout))
		b.WriteByte(' ')
	}
	if policy.IncludeTags && len(entry.Tags) > 0 {
		b.WriteString(entry.Tags.Prefix())
		b.WriteByte(' ')
	}
	b.WriteString(entry.Message)
	if policy.IncludeMetadata && entry.Metadata != nil {
		md := *entry.Metadata
		filtered := policy.Visibility.Apply(md)
		if !(filtered.kind == KindObject && len(filtered.obj) == 0 && md.Len() > 0) {
			b.WriteString(MetadataDelimiter)
			b.Write(filtered.AppendTo(nil, policy.MetadataStyle))
		}
	}
	if policy.IncludeSourceLocation && !entry.Location.IsZero() {
		b.WriteString(" (")
		b.WriteString(entry.Location.String())
		b.WriteByte(')')
	}
	return b.String()
}
