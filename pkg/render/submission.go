package render

import (
	"fmt"
	"sort"
	"strings"
)

// HiddenField is an extra hidden input emitted once after a rendered field,
// such as a save nonce or the id of the object being edited.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{Name: strings.TrimSpace(name), Value: fmt.Sprint(value)}
}

// Nonce carries a host-issued save nonce.
func Nonce(name, token string) HiddenField {
	return Hidden(name, token)
}

// ObjectField carries the id of the object being edited.
func ObjectField(name string, objectID any) HiddenField {
	return Hidden(name, objectID)
}

// HiddenInputs dedupes fields by name, later entries winning, drops blank
// names and sorts the result by name so markup is deterministic.
func HiddenInputs(fields ...HiddenField) []HiddenField {
	byName := make(map[string]string, len(fields))
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		byName[name] = field.Value
	}
	if len(byName) == 0 {
		return nil
	}

	out := make([]HiddenField, 0, len(byName))
	for name, value := range byName {
		out = append(out, HiddenField{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
