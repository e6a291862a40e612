package entity

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"time"
)

// MaxDepth bounds how deeply nested a metadata value is walked when it is
// rendered, parsed or converted from arbitrary Go values.
const MaxDepth = 64

const depthExceeded = "<max depth exceeded>"

// ValueKind identifies the variant held by a Value
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{"null", "bool", "int", "float", "string", "array", "object"}

func (k ValueKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a JSON-like metadata value: null, bool, integer, float, string,
// an ordered array of values, or an object whose keys keep insertion order.
// The zero Value is null. Values are immutable once built; constructors copy
// the slices they are given.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
	obj  []Field
}

// Field is one key/value pair of an object
type Field struct {
	Key   string
	Value Value
}

// F builds a Field from a key and any Go value, converted with FromAny
func F(key string, v any) Field {
	return Field{Key: key, Value: FromAny(v)}
}

// Null returns the null value
func Null() Value { return Value{} }

// Bool wraps a boolean
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a floating-point number
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String wraps a string
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array builds an ordered sequence of values
func Array(values ...Value) Value {
	arr := make([]Value, len(values))
	copy(arr, values)
	return Value{kind: KindArray, arr: arr}
}

// Object builds a mapping that keeps the order fields were given in. A
// repeated key replaces the earlier value but keeps its original position.
func Object(fields ...Field) Value {
	obj := make([]Field, 0, len(fields))
	index := make(map[string]int, len(fields))
	for _, f := range fields {
		if at, ok := index[f.Key]; ok {
			obj[at].Value = f.Value
			continue
		}
		index[f.Key] = len(obj)
		obj = append(obj, f)
	}
	return Value{kind: KindObject, obj: obj}
}

// Kind returns the variant of v
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is null
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean held by v
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer held by v
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float held by v; integers are widened
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

// AsString returns the string held by v
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// Elements returns a copy of the array elements, or nil when v is not an array
func (v Value) Elements() []Value {
	if v.kind != KindArray {
		return nil
	}
	out := make([]Value, len(v.arr))
	copy(out, v.arr)
	return out
}

// Fields returns a copy of the object fields in insertion order, or nil
// when v is not an object
func (v Value) Fields() []Field {
	if v.kind != KindObject {
		return nil
	}
	out := make([]Field, len(v.obj))
	copy(out, v.obj)
	return out
}

// Len returns the number of elements or fields, and 0 for scalars
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	}
	return 0
}

// Lookup returns the value stored under key in a top-level object
func (v Value) Lookup(key string) (Value, bool) {
	for _, f := range v.obj {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Equal reports deep equality, including object key order
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f || (math.IsNaN(v.f) && math.IsNaN(other.f))
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for i := range v.obj {
			if v.obj[i].Key != other.obj[i].Key || !v.obj[i].Value.Equal(other.obj[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// FromAny converts an arbitrary Go value into a Value. Maps are converted
// with their keys sorted so the result is deterministic; structs and other
// unsupported kinds fall back to their fmt representation.
func FromAny(x any) Value {
	return fromAny(x, 0)
}

// FieldsOf converts a map of structured fields into an object value
func FieldsOf(m map[string]any) Value {
	return FromAny(m)
}

func fromAny(x any, depth int) Value {
	if depth > MaxDepth {
		return String(depthExceeded)
	}
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case *Value:
		if t == nil {
			return Null()
		}
		return *t
	case Field:
		return Object(t)
	case []Field:
		return Object(t...)
	case bool:
		return Bool(t)
	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint:
		return fromUint(uint64(t))
	case uint8:
		return Int(int64(t))
	case uint16:
		return Int(int64(t))
	case uint32:
		return Int(int64(t))
	case uint64:
		return fromUint(t)
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	case string:
		return String(t)
	case []byte:
		return String(string(t))
	case time.Time:
		return String(t.Format(time.RFC3339Nano))
	case time.Duration:
		return String(t.String())
	case Severity:
		return String(t.String())
	case Tag:
		return String(string(t))
	case error:
		return String(t.Error())
	case fmt.Stringer:
		return String(t.String())
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return fromAny(rv.Elem().Interface(), depth+1)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null()
		}
		arr := make([]Value, rv.Len())
		for i := range arr {
			arr[i] = fromAny(rv.Index(i).Interface(), depth+1)
		}
		return Value{kind: KindArray, arr: arr}
	case reflect.Map:
		if rv.IsNil() {
			return Null()
		}
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]reflect.Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := fmt.Sprint(iter.Key().Interface())
			keys = append(keys, k)
			byKey[k] = iter.Value()
		}
		sort.Strings(keys)
		obj := make([]Field, 0, len(keys))
		for _, k := range keys {
			obj = append(obj, Field{Key: k, Value: fromAny(byKey[k].Interface(), depth+1)})
		}
		return Value{kind: KindObject, obj: obj}
	}
	return String(fmt.Sprintf("%+v", x))
}

func fromUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}
