package meta

import (
	"context"
	"errors"
)

// ErrStoreClosed is returned by stores after Close.
var ErrStoreClosed = errors.New("meta: store closed")

// Store reads and writes field values for an object.
type Store interface {
	// Get returns the stored value and whether it exists.
	Get(ctx context.Context, objectID, key string) (any, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, objectID, key string, value any) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, objectID, key string) error
}

type objectKey struct{}

// WithObject returns a context carrying objectID as the current object.
func WithObject(ctx context.Context, objectID string) context.Context {
	return context.WithValue(ctx, objectKey{}, objectID)
}

// ObjectFrom returns the current object id carried by ctx.
func ObjectFrom(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(objectKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// ResolveObject returns objectID, or the current object from ctx when
// objectID is empty.
func ResolveObject(ctx context.Context, objectID string) (string, bool) {
	if objectID != "" {
		return objectID, true
	}
	return ObjectFrom(ctx)
}
