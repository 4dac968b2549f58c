package propername

import (
	"strings"
	"sync"
)

// Format joins the parts of record in canonical order, separated by single
// spaces. Empty parts never produce doubled or leading/trailing spaces.
func Format(record Record) string {
	values := make([]string, 0, len(canonicalParts))
	for _, part := range canonicalParts {
		values = append(values, record.Get(part))
	}
	return collapseSpaces(strings.Join(values, " "))
}

// FormatValue formats Structured values with Format and returns Simple values
// unchanged.
func FormatValue(value Value) string {
	if text, ok := value.Text(); ok {
		return text
	}
	return Format(value.Record())
}

func collapseSpaces(in string) string {
	var b strings.Builder
	b.Grow(len(in))
	prevSpace := false
	for _, r := range in {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// DisplayFilter post-processes a formatted name. It receives the formatted
// output and the value it was derived from.
type DisplayFilter func(output string, value Value) string

// Formatter applies display filters on top of FormatValue. The zero value is
// ready to use and applies no filters.
type Formatter struct {
	mu      sync.RWMutex
	filters []DisplayFilter
}

// NewFormatter constructs a formatter with the provided filters registered in
// order.
func NewFormatter(filters ...DisplayFilter) *Formatter {
	f := &Formatter{}
	for _, filter := range filters {
		f.AddFilter(filter)
	}
	return f
}

// AddFilter appends a display filter. Nil filters are ignored.
func (f *Formatter) AddFilter(filter DisplayFilter) {
	if f == nil || filter == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
}

// Display formats value and runs the result through the registered filters
// in registration order.
func (f *Formatter) Display(value Value) string {
	output := FormatValue(value)
	if f == nil {
		return output
	}

	f.mu.RLock()
	filters := append([]DisplayFilter(nil), f.filters...)
	f.mu.RUnlock()

	for _, filter := range filters {
		output = filter(output, value)
	}
	return output
}
