package render

import "github.com/goliatone/go-propername/pkg/propername"

// Size is the width hint attached to a sub-field input.
type Size string

const (
	SizeNarrow Size = "narrow"
	SizeMedium Size = "medium"
)

// Binding records one input emitted for a part of the name.
type Binding struct {
	Part   propername.Part `json:"part"`
	Index  int             `json:"index"`
	Name   string          `json:"name"`
	ID     string          `json:"id"`
	Value  string          `json:"value"`
	Label  string          `json:"label,omitempty"`
	Class  string          `json:"class,omitempty"`
	Size   Size            `json:"size,omitempty"`
	Hidden bool            `json:"hidden,omitempty"`
}

// Output is the result of rendering a field.
type Output struct {
	HTML     []byte
	Bindings []Binding
}

// Visible returns the bindings rendered as visible inputs.
func (o Output) Visible() []Binding {
	return filterBindings(o.Bindings, false)
}

// HiddenBindings returns the bindings rendered as hidden inputs.
func (o Output) HiddenBindings() []Binding {
	return filterBindings(o.Bindings, true)
}

func filterBindings(bindings []Binding, hidden bool) []Binding {
	var out []Binding
	for _, binding := range bindings {
		if binding.Hidden == hidden {
			out = append(out, binding)
		}
	}
	return out
}
