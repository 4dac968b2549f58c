package render

import (
	"context"

	"github.com/goliatone/go-propername/pkg/model"
	"github.com/goliatone/go-propername/pkg/propername"
)

// Renderer turns a proper name value into form markup for one field type.
// Implementations never validate; they only shape markup and report the
// inputs they bound so submissions round-trip all five parts.
type Renderer interface {
	FieldType() model.FieldType
	ContentType() string
	Render(ctx context.Context, field model.Field, value propername.Value, options RenderOptions) (Output, error)
}

// RenderList renders one group per value for repeatable fields. Renderers
// that do not implement it are driven row by row through Render.
type RenderList interface {
	RenderList(ctx context.Context, field model.Field, values []propername.Value, options RenderOptions) (Output, error)
}
