package vanilla

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-propername/pkg/model"
	"github.com/goliatone/go-propername/pkg/propername"
	"github.com/goliatone/go-propername/pkg/render"
	rendertemplate "github.com/goliatone/go-propername/pkg/render/template"
	"github.com/goliatone/go-propername/pkg/render/template/gotemplate"
)

// FilterProperName is the template filter that formats a stored name value.
const FilterProperName = "proper_name"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	emitter          render.Emitter
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithEmitter replaces the default HTML input emitter.
func WithEmitter(emitter render.Emitter) Option {
	return func(cfg *config) {
		if emitter != nil {
			cfg.emitter = emitter
		}
	}
}

// Renderer renders one proper name variant as HTML.
type Renderer struct {
	variant   variant
	templates rendertemplate.TemplateRenderer
	emitter   render.Emitter
}

var _ render.Renderer = (*Renderer)(nil)
var _ render.RenderList = (*Renderer)(nil)

// New constructs the renderer for fieldType applying any provided options.
func New(fieldType model.FieldType, options ...Option) (*Renderer, error) {
	v, ok := variantFor(fieldType)
	if !ok {
		return nil, fmt.Errorf("vanilla renderer: unsupported field type %q", fieldType)
	}

	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		templates = engine
	}
	if err := registerFilters(templates); err != nil {
		return nil, err
	}

	emitter := cfg.emitter
	if emitter == nil {
		emitter = HTMLEmitter{}
	}

	return &Renderer{variant: v, templates: templates, emitter: emitter}, nil
}

// NewFull constructs the five-input renderer.
func NewFull(options ...Option) (*Renderer, error) {
	return New(model.FieldTypeNameFull, options...)
}

// NewShort constructs the first/last renderer.
func NewShort(options ...Option) (*Renderer, error) {
	return New(model.FieldTypeNameShort, options...)
}

// NewSimple constructs the bare two-part renderer.
func NewSimple(options ...Option) (*Renderer, error) {
	return New(model.FieldTypeNameSimple, options...)
}

// Register adds the three built-in variants to registry.
func Register(registry *render.Registry, options ...Option) error {
	if registry == nil {
		return errors.New("vanilla renderer: registry is required")
	}
	for _, fieldType := range model.FieldTypes() {
		renderer, err := New(fieldType, options...)
		if err != nil {
			return err
		}
		if err := registry.Register(renderer); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) FieldType() model.FieldType {
	return r.variant.fieldType
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render emits a single name group for value.
func (r *Renderer) Render(ctx context.Context, field model.Field, value propername.Value, options render.RenderOptions) (render.Output, error) {
	if err := ctx.Err(); err != nil {
		return render.Output{}, err
	}
	bindings := r.variant.bind(field, value.Record(), -1, options)
	markup, err := r.renderGroup(field, bindings, -1, options)
	if err != nil {
		return render.Output{}, err
	}
	markup += r.extraHidden(options)
	return render.Output{HTML: []byte(markup), Bindings: bindings}, nil
}

// RenderList emits one group per value inside a repeat container. An empty
// list still renders one blank row so the field can be filled in.
func (r *Renderer) RenderList(ctx context.Context, field model.Field, values []propername.Value, options render.RenderOptions) (render.Output, error) {
	if err := ctx.Err(); err != nil {
		return render.Output{}, err
	}
	if len(values) == 0 {
		values = []propername.Value{propername.Structured(propername.Record{})}
	}

	var builder strings.Builder
	builder.WriteString(`<div`)
	if id := strings.TrimSpace(field.ID); id != "" {
		writeAttr(&builder, "id", id+"_repeat")
	}
	writeAttr(&builder, "class", string(ClassRepeat))
	writeAttr(&builder, "data-field", field.ID)
	builder.WriteString(` data-repeatable="true">`)

	var all []render.Binding
	for index, value := range values {
		bindings := r.variant.bind(field, value.Record(), index, options)
		group, err := r.renderGroup(field, bindings, index, options)
		if err != nil {
			return render.Output{}, err
		}
		builder.WriteString(group)
		all = append(all, bindings...)
	}
	builder.WriteString(`</div>`)
	builder.WriteString(r.extraHidden(options))

	return render.Output{HTML: []byte(builder.String()), Bindings: all}, nil
}

func (r *Renderer) renderGroup(field model.Field, bindings []render.Binding, index int, options render.RenderOptions) (string, error) {
	if r.templates == nil {
		return "", fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	emitter := r.emitter
	if options.Emitter != nil {
		emitter = options.Emitter
	}

	columns := make([]map[string]any, 0, len(bindings))
	hidden := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		attrs := render.InputAttrs{
			Name:  binding.Name,
			ID:    binding.ID,
			Value: binding.Value,
			Class: binding.Class,
		}
		if binding.Hidden {
			hidden = append(hidden, emitter.Hidden(attrs))
			continue
		}
		columns = append(columns, map[string]any{
			"id":           binding.ID,
			"label":        binding.Label,
			"column_class": columnClass(binding.Size),
			"control":      emitter.Input(attrs),
		})
	}

	groupClass := string(ClassGroup)
	if extra := sanitizeClassList(field.UIHints["cssClass"]); extra != "" {
		groupClass += " " + extra
	}
	row := ""
	if index >= 0 {
		row = strconv.Itoa(index)
	}

	payload := map[string]any{
		"field": map[string]any{
			"id":    field.ID,
			"type":  string(field.Type),
			"label": field.Label,
		},
		"group_class": groupClass,
		"row":         row,
		"columns":     columns,
		"hidden":      hidden,
	}

	templateName := r.resolveTemplate(options)
	rendered, err := r.templates.RenderTemplate(templateName, payload)
	if err != nil {
		return "", fmt.Errorf("vanilla renderer: render template %q: %w", templateName, err)
	}
	return rendered, nil
}

func (r *Renderer) resolveTemplate(options render.RenderOptions) string {
	if options.Theme != nil && options.Theme.Partials != nil {
		if candidate := strings.TrimSpace(options.Theme.Partials[r.variant.partialKey]); candidate != "" {
			return candidate
		}
	}
	return r.variant.template
}

func (r *Renderer) extraHidden(options render.RenderOptions) string {
	fields := render.HiddenInputs(options.Hidden...)
	if len(fields) == 0 {
		return ""
	}
	emitter := r.emitter
	if options.Emitter != nil {
		emitter = options.Emitter
	}
	var builder strings.Builder
	for _, field := range fields {
		builder.WriteString(emitter.Hidden(render.InputAttrs{Name: field.Name, Value: field.Value}))
	}
	return builder.String()
}

func registerFilters(templates rendertemplate.TemplateRenderer) error {
	err := templates.RegisterFilter(FilterProperName, func(input any, _ any) (any, error) {
		return propername.FormatValue(propername.Normalize(input)), nil
	})
	if err != nil && !errors.Is(err, gotemplate.ErrFilterExists) {
		return fmt.Errorf("vanilla renderer: register %s filter: %w", FilterProperName, err)
	}
	return nil
}
