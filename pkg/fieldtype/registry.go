package fieldtype

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-propername/pkg/meta"
	"github.com/goliatone/go-propername/pkg/model"
	"github.com/goliatone/go-propername/pkg/propername"
	"github.com/goliatone/go-propername/pkg/render"
	"github.com/goliatone/go-propername/pkg/renderers/vanilla"
	"github.com/goliatone/go-propername/pkg/sanitize"
)

// SaveFunc runs before the composite value is written. Returning true
// reports that the value was persisted elsewhere and the composite write
// must be skipped.
type SaveFunc func(ctx context.Context, store meta.Store, objectID string, field model.Field, value any) (bool, error)

// RepeatableFunc transforms a repeatable field's collection. Returning false
// leaves raw to the default per-record transform.
type RepeatableFunc func(field model.Field, raw any) ([]propername.Value, bool)

// Descriptor bundles the callbacks registered for one field type.
type Descriptor struct {
	Type     model.FieldType
	Renderer render.Renderer
	Save     SaveFunc
	Sanitize RepeatableFunc
	Escape   RepeatableFunc
}

// Registry tracks descriptors keyed by field type. Callers can register new
// types or override defaults.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[model.FieldType]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[model.FieldType]Descriptor),
	}
}

// NewDefaultRegistry registers name_full, name_short and name_simple backed
// by the HTML renderers. Options are forwarded to the renderers.
func NewDefaultRegistry(options ...vanilla.Option) (*Registry, error) {
	renderers := render.NewRegistry()
	if err := vanilla.Register(renderers, options...); err != nil {
		return nil, fmt.Errorf("fieldtype: register renderers: %w", err)
	}

	registry := NewRegistry()
	for _, fieldType := range renderers.Types() {
		renderer, _ := renderers.Lookup(fieldType)
		if err := registry.Register(Descriptor{
			Type:     fieldType,
			Renderer: renderer,
			Save:     SplitValues,
			Sanitize: sanitize.SanitizeRepeatable,
			Escape:   sanitize.EscapeRepeatable,
		}); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// Clone returns a copy of the registry to allow isolated mutations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for fieldType, descriptor := range r.descriptors {
		cloned.descriptors[fieldType] = descriptor
	}
	return cloned
}

// Register associates descriptor with its Type. Existing entries are
// replaced. Missing Save, Sanitize and Escape callbacks fall back to
// passthrough behaviour.
func (r *Registry) Register(descriptor Descriptor) error {
	fieldType := normalizeType(descriptor.Type)
	if fieldType == "" {
		return errors.New("fieldtype: field type is required")
	}
	if descriptor.Renderer == nil {
		return fmt.Errorf("fieldtype: renderer for %q is nil", fieldType)
	}
	descriptor.Type = fieldType
	if descriptor.Save == nil {
		descriptor.Save = passthroughSave
	}
	if descriptor.Sanitize == nil {
		descriptor.Sanitize = passthroughRepeatable
	}
	if descriptor.Escape == nil {
		descriptor.Escape = passthroughRepeatable
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.descriptors[fieldType] = descriptor
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying init-time
// wiring.
func (r *Registry) MustRegister(descriptor Descriptor) {
	if err := r.Register(descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches the descriptor for fieldType. An empty type resolves to
// name_full.
func (r *Registry) Descriptor(fieldType model.FieldType) (Descriptor, bool) {
	fieldType = normalizeType(fieldType)
	if fieldType == "" {
		fieldType = model.FieldTypeNameFull
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.descriptors[fieldType]
	return descriptor, ok
}

// Types returns the registered field types in sorted order.
func (r *Registry) Types() []model.FieldType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]model.FieldType, 0, len(r.descriptors))
	for fieldType := range r.descriptors {
		types = append(types, fieldType)
	}
	slices.Sort(types)
	return types
}

func normalizeType(fieldType model.FieldType) model.FieldType {
	return model.FieldType(strings.ToLower(strings.TrimSpace(string(fieldType))))
}

func passthroughSave(context.Context, meta.Store, string, model.Field, any) (bool, error) {
	return false, nil
}

func passthroughRepeatable(model.Field, any) ([]propername.Value, bool) {
	return nil, false
}
