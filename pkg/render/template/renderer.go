package template

import (
	"io"
)

// TemplateRenderer is the engine contract renderers rely on to turn layout
// templates plus a data payload into markup.
type TemplateRenderer interface {
	// RenderTemplate executes the named template. The result is also written
	// to every writer in out.
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	// RenderString parses and executes inline template content.
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	// RegisterFilter exposes fn to templates as a filter.
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
}
