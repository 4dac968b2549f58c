package vanilla

import (
	"html"
	"sort"
	"strings"

	"github.com/goliatone/go-propername/pkg/render"
)

// HTMLEmitter is the default render.Emitter. Attribute values are escaped
// with html.EscapeString.
type HTMLEmitter struct{}

var _ render.Emitter = HTMLEmitter{}

// Input emits a text input unless attrs.Type says otherwise.
func (HTMLEmitter) Input(attrs render.InputAttrs) string {
	if strings.TrimSpace(attrs.Type) == "" {
		attrs.Type = "text"
	}
	return writeInput(attrs)
}

// Hidden emits a hidden input. Classes are dropped.
func (HTMLEmitter) Hidden(attrs render.InputAttrs) string {
	attrs.Type = "hidden"
	attrs.Class = ""
	return writeInput(attrs)
}

func writeInput(attrs render.InputAttrs) string {
	var builder strings.Builder
	builder.WriteString(`<input type="`)
	builder.WriteString(html.EscapeString(attrs.Type))
	builder.WriteString(`"`)
	if class := sanitizeClassList(attrs.Class); class != "" {
		writeAttr(&builder, "class", class)
	}
	writeAttr(&builder, "name", attrs.Name)
	if id := strings.TrimSpace(attrs.ID); id != "" {
		writeAttr(&builder, "id", id)
	}
	writeAttr(&builder, "value", attrs.Value)

	if len(attrs.Attrs) > 0 {
		keys := make([]string, 0, len(attrs.Attrs))
		for key := range attrs.Attrs {
			if strings.TrimSpace(key) == "" {
				continue
			}
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			writeAttr(&builder, strings.TrimSpace(key), attrs.Attrs[key])
		}
	}
	builder.WriteString(`/>`)
	return builder.String()
}

func writeAttr(builder *strings.Builder, name, value string) {
	builder.WriteByte(' ')
	builder.WriteString(html.EscapeString(name))
	builder.WriteString(`="`)
	builder.WriteString(html.EscapeString(value))
	builder.WriteString(`"`)
}

func sanitizeClassList(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return strings.Join(strings.Fields(value), " ")
}
