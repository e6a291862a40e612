package entity

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf8"

	errs "github.com/Aeastr/LogOutLoud/internal/domain/error"
	json "github.com/goccy/go-json"
)

// MetadataStyle selects how metadata is laid out when rendered
type MetadataStyle uint8

const (
	// MetadataCompact renders on a single line with no insignificant whitespace
	MetadataCompact MetadataStyle = iota
	// MetadataPretty renders one member per line, indented by two spaces
	MetadataPretty
)

// String returns the style name
func (s MetadataStyle) String() string {
	if s == MetadataPretty {
		return "pretty"
	}
	return "compact"
}

// ParseMetadataStyle converts "compact" or "pretty" into a MetadataStyle
func ParseMetadataStyle(name string) (MetadataStyle, error) {
	switch name {
	case "", "compact":
		return MetadataCompact, nil
	case "pretty":
		return MetadataPretty, nil
	}
	return MetadataCompact, fmt.Errorf("unknown metadata style %q", name)
}

// Compact renders v as single-line JSON
func (v Value) Compact() string {
	return string(v.AppendTo(nil, MetadataCompact))
}

// Pretty renders v as indented JSON
func (v Value) Pretty() string {
	return string(v.AppendTo(nil, MetadataPretty))
}

// Render renders v in the given style
func (v Value) Render(style MetadataStyle) string {
	return string(v.AppendTo(nil, style))
}

// String implements fmt.Stringer with the compact form
func (v Value) String() string {
	return v.Compact()
}

// AppendTo appends the rendering of v to dst. Object keys are written in
// insertion order, so equal values always produce identical bytes.
func (v Value) AppendTo(dst []byte, style MetadataStyle) []byte {
	w := valueWriter{buf: dst, pretty: style == MetadataPretty}
	w.write(v, 0)
	return w.buf
}

// MarshalJSON implements json.Marshaler with the compact form
func (v Value) MarshalJSON() ([]byte, error) {
	return v.AppendTo(nil, MetadataCompact), nil
}

// UnmarshalJSON implements json.Unmarshaler, keeping object key order
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseValue(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

type valueWriter struct {
	buf    []byte
	pretty bool
}

func (w *valueWriter) write(v Value, depth int) {
	if depth > MaxDepth {
		w.buf = appendQuoted(w.buf, depthExceeded)
		return
	}
	switch v.kind {
	case KindNull:
		w.buf = append(w.buf, "null"...)
	case KindBool:
		w.buf = strconv.AppendBool(w.buf, v.b)
	case KindInt:
		w.buf = strconv.AppendInt(w.buf, v.i, 10)
	case KindFloat:
		w.buf = appendFloat(w.buf, v.f)
	case KindString:
		w.buf = appendQuoted(w.buf, v.s)
	case KindArray:
		if len(v.arr) == 0 {
			w.buf = append(w.buf, "[]"...)
			return
		}
		w.buf = append(w.buf, '[')
		for i, elem := range v.arr {
			if i > 0 {
				w.buf = append(w.buf, ',')
			}
			w.newline(depth + 1)
			w.write(elem, depth+1)
		}
		w.newline(depth)
		w.buf = append(w.buf, ']')
	case KindObject:
		if len(v.obj) == 0 {
			w.buf = append(w.buf, "{}"...)
			return
		}
		w.buf = append(w.buf, '{')
		for i, f := range v.obj {
			if i > 0 {
				w.buf = append(w.buf, ',')
			}
			w.newline(depth + 1)
			w.buf = appendQuoted(w.buf, f.Key)
			w.buf = append(w.buf, ':')
			if w.pretty {
				w.buf = append(w.buf, ' ')
			}
			w.write(f.Value, depth+1)
		}
		w.newline(depth)
		w.buf = append(w.buf, '}')
	}
}

func (w *valueWriter) newline(depth int) {
	if !w.pretty {
		return
	}
	w.buf = append(w.buf, '\n')
	for i := 0; i < depth; i++ {
		w.buf = append(w.buf, "  "...)
	}
}

// appendFloat mirrors the shortest round-trip formatting used by JSON
// encoders. Non-finite numbers have no JSON literal and are written as
// quoted strings.
func appendFloat(dst []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, `"NaN"`...)
	case math.IsInf(f, 1):
		return append(dst, `"+Inf"`...)
	case math.IsInf(f, -1):
		return append(dst, `"-Inf"`...)
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		// e-07 -> e-7
		n := len(dst) - start
		if n >= 4 && dst[len(dst)-4] == 'e' && dst[len(dst)-3] == '-' && dst[len(dst)-2] == '0' {
			dst[len(dst)-2] = dst[len(dst)-1]
			dst = dst[:len(dst)-1]
		}
	}
	return dst
}

const hexDigits = "0123456789abcdef"

func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c >= 0x20 && c != '"' && c != '\\' {
				i++
				continue
			}
			dst = append(dst, s[start:i]...)
			switch c {
			case '"', '\\':
				dst = append(dst, '\\', c)
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\t':
				dst = append(dst, '\\', 't')
			case '\b':
				dst = append(dst, '\\', 'b')
			case '\f':
				dst = append(dst, '\\', 'f')
			default:
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = append(dst, s[start:i]...)
			dst = append(dst, `\ufffd`...)
			i += size
			start = i
			continue
		}
		if r == '\u2028' || r == '\u2029' {
			dst = append(dst, s[start:i]...)
			dst = append(dst, '\\', 'u', '2', '0', '2', hexDigits[r&0xf])
			i += size
			start = i
			continue
		}
		i += size
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}

// ParseValue decodes JSON text into a Value, preserving object key order.
// Integral numbers become KindInt when they fit in an int64.
func ParseValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := parseValue(dec, 0)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("%w: trailing data after value", errs.ErrInvalidMetadata)
	}
	return v, nil
}

func parseValue(dec *json.Decoder, depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, errs.ErrMaxDepth
	}
	tok, err := dec.Token()
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", errs.ErrInvalidMetadata, err)
	}
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: bad number %q", errs.ErrInvalidMetadata, t.String())
		}
		return Float(f), nil
	case json.Delim:
		switch t {
		case '[':
			var arr []Value
			for dec.More() {
				elem, err := parseValue(dec, depth+1)
				if err != nil {
					return Value{}, err
				}
				arr = append(arr, elem)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, fmt.Errorf("%w: %v", errs.ErrInvalidMetadata, err)
			}
			return Value{kind: KindArray, arr: arr}, nil
		case '{':
			var fields []Field
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, fmt.Errorf("%w: %v", errs.ErrInvalidMetadata, err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("%w: object key is not a string", errs.ErrInvalidMetadata)
				}
				val, err := parseValue(dec, depth+1)
				if err != nil {
					return Value{}, err
				}
				fields = append(fields, Field{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, fmt.Errorf("%w: %v", errs.ErrInvalidMetadata, err)
			}
			return Object(fields...), nil
		}
	}
	return Value{}, fmt.Errorf("%w: unexpected token %v", errs.ErrInvalidMetadata, tok)
}
