package meta

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store. Values are deep-copied through JSON on
// the way in and out, so callers never share state with the store.
// All data is lost when the process terminates.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]map[string]any
	closed  bool
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]map[string]any)}
}

// Get retrieves the value stored for key on objectID.
func (s *MemoryStore) Get(ctx context.Context, objectID, key string) (any, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, false, ErrStoreClosed
	}
	value, ok := s.objects[objectID][key]
	if !ok {
		return nil, false, nil
	}
	copied, err := cloneValue(value)
	if err != nil {
		return nil, false, err
	}
	return copied, true, nil
}

// Set stores value under key on objectID.
func (s *MemoryStore) Set(ctx context.Context, objectID, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	copied, err := cloneValue(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	fields, ok := s.objects[objectID]
	if !ok {
		fields = make(map[string]any)
		s.objects[objectID] = fields
	}
	fields[key] = copied
	return nil
}

// Delete removes key from objectID.
func (s *MemoryStore) Delete(ctx context.Context, objectID, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	delete(s.objects[objectID], key)
	return nil
}

// Keys returns the keys stored for objectID in sorted order.
func (s *MemoryStore) Keys(objectID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.objects[objectID]))
	for key := range s.objects[objectID] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Close releases the store. Further calls return ErrStoreClosed.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.objects = nil
	return nil
}

func cloneValue(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return v, nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}
