package model

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-propername/pkg/propername"
)

// FieldType identifies a registered proper name variant.
type FieldType string

const (
	FieldTypeNameFull   FieldType = "name_full"
	FieldTypeNameShort  FieldType = "name_short"
	FieldTypeNameSimple FieldType = "name_simple"
)

// FieldTypes lists the built-in variants in registration order.
func FieldTypes() []FieldType {
	return []FieldType{FieldTypeNameFull, FieldTypeNameShort, FieldTypeNameSimple}
}

// Valid reports whether t is a built-in variant.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeNameFull, FieldTypeNameShort, FieldTypeNameSimple:
		return true
	default:
		return false
	}
}

// Field describes a single proper name field as registered with the host.
// ID doubles as the base key for derived sub-field identifiers and as the
// storage key of the composite value.
type Field struct {
	ID          string            `json:"id" yaml:"id"`
	Type        FieldType         `json:"type" yaml:"type"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Repeatable  bool              `json:"repeatable,omitempty" yaml:"repeatable,omitempty"`
	SplitValues bool              `json:"split_values,omitempty" yaml:"split_values,omitempty"`
	Text        map[string]string `json:"text,omitempty" yaml:"text,omitempty"`
	UIHints     map[string]string `json:"hints,omitempty" yaml:"hints,omitempty"`
}

// InputID returns the element id bound to part. Repeatable rows pass their
// index; non-repeatable callers pass -1.
func (f Field) InputID(part propername.Part, index int) string {
	base := strings.TrimSpace(f.ID)
	if index >= 0 {
		base += "_" + strconv.Itoa(index)
	}
	return base + "_" + string(part)
}

// InputName returns the form input name bound to part, using the bracketed
// notation hosts decode back into a composite value.
func (f Field) InputName(part propername.Part, index int) string {
	base := strings.TrimSpace(f.ID)
	if index >= 0 {
		base += "[" + strconv.Itoa(index) + "]"
	}
	return base + "[" + string(part) + "]"
}

// SplitKey returns the storage key used for part when split storage is
// enabled.
func (f Field) SplitKey(part propername.Part) string {
	return strings.TrimSpace(f.ID) + "_" + string(part)
}

// TextOverride returns the configured label text for key, if any.
func (f Field) TextOverride(key string) (string, bool) {
	if f.Text == nil {
		return "", false
	}
	value := strings.TrimSpace(f.Text[key])
	return value, value != ""
}
