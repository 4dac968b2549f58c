package fieldtype

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-propername/pkg/meta"
	"github.com/goliatone/go-propername/pkg/model"
	"github.com/goliatone/go-propername/pkg/propername"
	"github.com/goliatone/go-propername/pkg/render"
	"github.com/goliatone/go-propername/pkg/sanitize"
)

// ErrNoObject is returned when no object id was given and the context does
// not carry a current object.
var ErrNoObject = errors.New("fieldtype: no object in context")

// DisplaySeparator joins the names of a repeatable collection in
// DisplayName.
const DisplaySeparator = ", "

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Default: zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStore sets the meta store. Default: an in-memory store.
func WithStore(store meta.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithFormatter sets the display formatter used by DisplayName.
func WithFormatter(formatter *propername.Formatter) Option {
	return func(s *Service) {
		if formatter != nil {
			s.formatter = formatter
		}
	}
}

// WithRegistry sets the descriptor registry. Default: NewDefaultRegistry().
func WithRegistry(registry *Registry) Option {
	return func(s *Service) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// Service runs the proper name field flows for a host.
type Service struct {
	registry  *Registry
	store     meta.Store
	formatter *propername.Formatter
	logger    *zap.Logger
}

// NewService constructs a Service applying options over the defaults.
func NewService(options ...Option) (*Service, error) {
	s := &Service{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.registry == nil {
		registry, err := NewDefaultRegistry()
		if err != nil {
			return nil, err
		}
		s.registry = registry
	}
	if s.store == nil {
		s.store = meta.NewMemoryStore()
	}
	if s.formatter == nil {
		s.formatter = propername.NewFormatter()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s, nil
}

// Registry exposes the descriptor registry.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Formatter exposes the display formatter so hosts can add filters.
func (s *Service) Formatter() *propername.Formatter {
	return s.formatter
}

// Store exposes the meta store.
func (s *Service) Store() meta.Store {
	return s.store
}

// Values loads the stored value of field for objectID. Split fields with no
// composite value are assembled from their parts. Repeatable fields yield
// one entry per stored record.
func (s *Service) Values(ctx context.Context, objectID string, field model.Field) ([]propername.Value, error) {
	id, ok := meta.ResolveObject(ctx, objectID)
	if !ok {
		return nil, ErrNoObject
	}
	raw, found, err := s.load(ctx, id, field, field.SplitValues)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	if field.Repeatable || propername.IsCollection(raw) {
		return propername.NormalizeList(raw), nil
	}
	return []propername.Value{propername.Normalize(raw)}, nil
}

// Render reads the stored value and renders it with the field type's
// renderer. A missing object renders an empty form.
func (s *Service) Render(ctx context.Context, field model.Field, objectID string, options render.RenderOptions) (render.Output, error) {
	descriptor, err := s.descriptor(field)
	if err != nil {
		return render.Output{}, err
	}

	values, err := s.Values(ctx, objectID, field)
	if err != nil && !errors.Is(err, ErrNoObject) {
		return render.Output{}, err
	}

	s.logger.Debug("rendering proper name field",
		zap.String("field", field.ID),
		zap.String("type", string(descriptor.Type)),
		zap.Int("values", len(values)),
	)

	if field.Repeatable {
		if lister, ok := descriptor.Renderer.(render.RenderList); ok {
			out, err := lister.RenderList(ctx, field, values, options)
			if err != nil {
				return render.Output{}, fmt.Errorf("fieldtype: render %s: %w", field.ID, err)
			}
			return out, nil
		}
	}

	value := propername.Structured(propername.Record{})
	if len(values) > 0 {
		value = values[0]
	}
	out, err := descriptor.Renderer.Render(ctx, field, value, options)
	if err != nil {
		return render.Output{}, fmt.Errorf("fieldtype: render %s: %w", field.ID, err)
	}
	return out, nil
}

// Save sanitizes raw submitted data, runs the save transform and writes the
// composite value unless the transform handled it.
func (s *Service) Save(ctx context.Context, objectID string, field model.Field, raw any) error {
	id, ok := meta.ResolveObject(ctx, objectID)
	if !ok {
		return ErrNoObject
	}
	descriptor, err := s.descriptor(field)
	if err != nil {
		return err
	}

	var value any
	if values, handled := descriptor.Sanitize(field, raw); handled {
		value = sanitize.RawList(values)
	} else {
		value = sanitize.Record(propername.Normalize(raw), sanitize.Text).Raw()
	}

	handled, err := descriptor.Save(ctx, s.store, id, field, value)
	if err != nil {
		return err
	}
	if handled {
		s.logger.Debug("proper name stored as split values",
			zap.String("object", id),
			zap.String("field", field.ID),
		)
		return nil
	}

	if err := s.store.Set(ctx, id, field.ID, value); err != nil {
		return fmt.Errorf("fieldtype: save %s: %w", field.ID, err)
	}
	s.logger.Debug("proper name stored",
		zap.String("object", id),
		zap.String("field", field.ID),
	)
	return nil
}

// Escaped returns the stored value of field with every part escaped for
// display. The result is a string, a part-keyed map, or a list of those for
// repeatable fields. Missing values yield an empty part-keyed map.
func (s *Service) Escaped(ctx context.Context, objectID string, field model.Field) (any, error) {
	id, ok := meta.ResolveObject(ctx, objectID)
	if !ok {
		return nil, ErrNoObject
	}
	descriptor, err := s.descriptor(field)
	if err != nil {
		return nil, err
	}
	raw, _, err := s.load(ctx, id, field, field.SplitValues)
	if err != nil {
		return nil, err
	}
	if values, handled := descriptor.Escape(field, raw); handled {
		return sanitize.RawList(values), nil
	}
	return sanitize.Record(propername.Normalize(raw), sanitize.Attr).Raw(), nil
}

// DisplayName returns the formatted name stored under key. An empty
// objectID falls back to the current object carried by ctx. When no
// composite value exists the split parts are assembled instead. Collections
// are formatted entry by entry and joined with DisplaySeparator. The result
// runs through the formatter's display filters.
func (s *Service) DisplayName(ctx context.Context, objectID, key string) (string, error) {
	id, ok := meta.ResolveObject(ctx, objectID)
	if !ok {
		return "", ErrNoObject
	}
	raw, found, err := s.load(ctx, id, model.Field{ID: key}, true)
	if err != nil {
		return "", err
	}
	if !found {
		return s.formatter.Display(propername.Structured(propername.Record{})), nil
	}

	if propername.IsCollection(raw) {
		values := propername.NormalizeList(raw)
		names := make([]string, 0, len(values))
		for _, value := range values {
			if name := s.formatter.Display(value); name != "" {
				names = append(names, name)
			}
		}
		return strings.Join(names, DisplaySeparator), nil
	}
	return s.formatter.Display(propername.Normalize(raw)), nil
}

// WriteDisplayName writes DisplayName to w.
func (s *Service) WriteDisplayName(ctx context.Context, w io.Writer, objectID, key string) error {
	name, err := s.DisplayName(ctx, objectID, key)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, name); err != nil {
		return fmt.Errorf("fieldtype: write display name: %w", err)
	}
	return nil
}

func (s *Service) descriptor(field model.Field) (Descriptor, error) {
	descriptor, ok := s.registry.Descriptor(field.Type)
	if !ok {
		return Descriptor{}, fmt.Errorf("fieldtype: unknown field type %q", field.Type)
	}
	return descriptor, nil
}

func (s *Service) load(ctx context.Context, objectID string, field model.Field, joinSplit bool) (any, bool, error) {
	raw, found, err := s.store.Get(ctx, objectID, field.ID)
	if err != nil {
		return nil, false, fmt.Errorf("fieldtype: load %s: %w", field.ID, err)
	}
	if found || !joinSplit {
		return raw, found, nil
	}

	record, found, err := JoinSplitValues(ctx, s.store, objectID, field)
	if err != nil || !found {
		return nil, false, err
	}
	return record.Map(), true, nil
}
