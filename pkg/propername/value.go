package propername

import (
	"fmt"
	"strings"
)

// Kind discriminates the two shapes a stored name can take.
type Kind int

const (
	// KindStructured marks a five-part Record.
	KindStructured Kind = iota
	// KindSimple marks a legacy pre-formatted name stored as a flat string.
	KindSimple
)

func (k Kind) String() string {
	if k == KindSimple {
		return "simple"
	}
	return "structured"
}

// Value is either Simple(string) or Structured(Record).
type Value struct {
	kind   Kind
	simple string
	record Record
}

// Simple wraps a flat, pre-formatted name.
func Simple(name string) Value {
	return Value{kind: KindSimple, simple: name}
}

// Structured wraps a Record.
func Structured(record Record) Value {
	return Value{kind: KindStructured, record: record}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Text returns the flat name for Simple values.
func (v Value) Text() (string, bool) {
	if v.kind != KindSimple {
		return "", false
	}
	return v.simple, true
}

// Record returns the structured record. Simple values are not decomposed and
// yield an empty record, so form controls still bind all five parts.
func (v Value) Record() Record {
	if v.kind != KindStructured {
		return Record{}
	}
	return v.record
}

// Raw returns the value in the shape it is persisted in: a string for Simple
// values and a part-keyed map for Structured ones.
func (v Value) Raw() any {
	if v.kind == KindSimple {
		return v.simple
	}
	return v.record.Map()
}

// Normalize converts raw stored data into a Value. Strings are treated as
// legacy simple names; maps and records become Structured values with every
// missing part defaulted to "". Nil and unrecognised shapes yield an empty
// Structured value.
func Normalize(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Structured(Record{})
	case Value:
		return v
	case *Value:
		if v == nil {
			return Structured(Record{})
		}
		return *v
	case string:
		return Simple(v)
	case Record:
		return Structured(v)
	case *Record:
		if v == nil {
			return Structured(Record{})
		}
		return Structured(*v)
	case map[string]string:
		var record Record
		for _, part := range canonicalParts {
			record.Set(part, v[string(part)])
		}
		return Structured(record)
	case map[string]any:
		var record Record
		for _, part := range canonicalParts {
			record.Set(part, stringify(v[string(part)]))
		}
		return Structured(record)
	default:
		return Structured(Record{})
	}
}

// NormalizeList converts a stored collection into Values. A single
// non-collection value is wrapped so callers always receive a slice; nil
// yields an empty slice.
func NormalizeList(raw any) []Value {
	switch v := raw.(type) {
	case nil:
		return nil
	case []Value:
		return append([]Value(nil), v...)
	case []Record:
		out := make([]Value, 0, len(v))
		for _, record := range v {
			out = append(out, Structured(record))
		}
		return out
	case []map[string]string:
		out := make([]Value, 0, len(v))
		for _, item := range v {
			out = append(out, Normalize(item))
		}
		return out
	case []map[string]any:
		out := make([]Value, 0, len(v))
		for _, item := range v {
			out = append(out, Normalize(item))
		}
		return out
	case []any:
		out := make([]Value, 0, len(v))
		for _, item := range v {
			out = append(out, Normalize(item))
		}
		return out
	case []string:
		out := make([]Value, 0, len(v))
		for _, item := range v {
			out = append(out, Simple(item))
		}
		return out
	default:
		return []Value{Normalize(raw)}
	}
}

// IsCollection reports whether raw is one of the list shapes accepted by
// NormalizeList.
func IsCollection(raw any) bool {
	switch raw.(type) {
	case []Value, []Record, []map[string]string, []map[string]any, []any, []string:
		return true
	default:
		return false
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
