package propername

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/goliatone/go-propername/pkg/fieldtype"
	"github.com/goliatone/go-propername/pkg/model"
	names "github.com/goliatone/go-propername/pkg/propername"
	"github.com/goliatone/go-propername/pkg/render"
	"github.com/goliatone/go-propername/pkg/renderers/vanilla"
)

// Record aliases the five-part name record.
type Record = names.Record

// Value aliases the normalized stored value.
type Value = names.Value

// Field aliases the field definition.
type Field = model.Field

// RenderOptions describes per-request rendering overrides.
type RenderOptions = render.RenderOptions

// NewService exposes the field service constructor from the top-level
// module.
func NewService(options ...fieldtype.Option) (*fieldtype.Service, error) {
	return fieldtype.NewService(options...)
}

// Format renders record as a single display string.
func Format(record Record) string {
	return names.Format(record)
}

// defaultRegistry is built once and shared by RenderHTML callers.
var defaultRegistry = sync.OnceValues(func() (*fieldtype.Registry, error) {
	return fieldtype.NewDefaultRegistry()
})

// RenderHTML renders value with the built-in renderer for field's type. It
// is the simplest entry point when no store is involved.
func RenderHTML(ctx context.Context, field Field, value any, options RenderOptions) ([]byte, error) {
	registry, err := defaultRegistry()
	if err != nil {
		return nil, err
	}
	descriptor, ok := registry.Descriptor(field.Type)
	if !ok {
		return nil, &UnknownTypeError{Type: string(field.Type)}
	}
	if field.Repeatable {
		if lister, ok := descriptor.Renderer.(render.RenderList); ok {
			out, err := lister.RenderList(ctx, field, names.NormalizeList(value), options)
			return out.HTML, err
		}
	}
	out, err := descriptor.Renderer.Render(ctx, field, names.Normalize(value), options)
	return out.HTML, err
}

// UnknownTypeError reports a field type with no registered renderer.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("propername: unknown field type %q", e.Type)
}

// EmbeddedTemplates exposes the built-in layout templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the bundled stylesheet so Go applications can serve it.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(propername.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
