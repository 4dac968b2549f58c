package sanitize

import (
	"github.com/goliatone/go-propername/pkg/model"
	"github.com/goliatone/go-propername/pkg/propername"
)

// Transform rewrites a single part value.
type Transform func(string) string

// Record applies fn to every part of the normalized value. Simple values
// are transformed as a whole and stay Simple.
func Record(value propername.Value, fn Transform) propername.Value {
	if fn == nil {
		return value
	}
	if text, ok := value.Text(); ok {
		return propername.Simple(fn(text))
	}
	return propername.Structured(value.Record().Apply(fn))
}

// Repeatable maps fn over every record of a repeatable field's collection.
// It reports false, leaving raw to the host's default per-field transform,
// when the field is not repeatable or raw is not a collection.
func Repeatable(field model.Field, raw any, fn Transform) ([]propername.Value, bool) {
	if !field.Repeatable || !propername.IsCollection(raw) {
		return nil, false
	}
	values := propername.NormalizeList(raw)
	out := make([]propername.Value, 0, len(values))
	for _, value := range values {
		out = append(out, Record(value, fn))
	}
	return out, true
}

// SanitizeRepeatable is Repeatable with the Text transform.
func SanitizeRepeatable(field model.Field, raw any) ([]propername.Value, bool) {
	return Repeatable(field, raw, Text)
}

// EscapeRepeatable is Repeatable with the Attr transform.
func EscapeRepeatable(field model.Field, raw any) ([]propername.Value, bool) {
	return Repeatable(field, raw, Attr)
}

// RawList converts values back into their persisted shapes.
func RawList(values []propername.Value) []any {
	out := make([]any, 0, len(values))
	for _, value := range values {
		out = append(out, value.Raw())
	}
	return out
}
