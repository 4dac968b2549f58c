package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-propername/pkg/model"
)

// ErrUnknownFieldType is returned by Renderer when no variant is registered
// for the requested field type.
var ErrUnknownFieldType = errors.New("render: unknown field type")

// Registry maps proper name field types to their renderers. It is safe for
// concurrent use once populated.
type Registry struct {
	mu       sync.RWMutex
	variants map[model.FieldType]Renderer
}

func NewRegistry() *Registry {
	return &Registry{variants: map[model.FieldType]Renderer{}}
}

func canonicalType(fieldType model.FieldType) model.FieldType {
	return model.FieldType(strings.ToLower(strings.TrimSpace(string(fieldType))))
}

// Register files renderer under its own field type. A type may only be
// claimed once.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: nil renderer")
	}
	fieldType := canonicalType(renderer.FieldType())
	if fieldType == "" {
		return errors.New("render: renderer reports an empty field type")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.variants[fieldType]; taken {
		return fmt.Errorf("render: field type %q is already registered", fieldType)
	}
	r.variants[fieldType] = renderer
	return nil
}

func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Lookup returns the renderer for fieldType. An empty type resolves to
// name_full.
func (r *Registry) Lookup(fieldType model.FieldType) (Renderer, bool) {
	fieldType = canonicalType(fieldType)
	if fieldType == "" {
		fieldType = model.FieldTypeNameFull
	}
	r.mu.RLock()
	renderer, ok := r.variants[fieldType]
	r.mu.RUnlock()
	return renderer, ok
}

// Renderer is Lookup with an ErrUnknownFieldType error for misses.
func (r *Registry) Renderer(fieldType model.FieldType) (Renderer, error) {
	renderer, ok := r.Lookup(fieldType)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFieldType, fieldType)
	}
	return renderer, nil
}

// Types lists registered field types alphabetically.
func (r *Registry) Types() []model.FieldType {
	r.mu.RLock()
	types := make([]model.FieldType, 0, len(r.variants))
	for fieldType := range r.variants {
		types = append(types, fieldType)
	}
	r.mu.RUnlock()
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
