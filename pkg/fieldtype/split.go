package fieldtype

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-propername/pkg/meta"
	"github.com/goliatone/go-propername/pkg/model"
	"github.com/goliatone/go-propername/pkg/propername"
)

// SplitValues stores each non-empty part of value under its own key
// (<field id>_<part>) when the field enables split_values, and reports true
// so the composite write is skipped. Repeatable fields and legacy simple
// values are never split.
func SplitValues(ctx context.Context, store meta.Store, objectID string, field model.Field, value any) (bool, error) {
	if !field.SplitValues || field.Repeatable {
		return false, nil
	}
	normalized := propername.Normalize(value)
	if normalized.Kind() != propername.KindStructured {
		return false, nil
	}
	if store == nil {
		return false, errors.New("fieldtype: split values: store is nil")
	}

	record := normalized.Record()
	for _, part := range propername.Parts() {
		text := record.Get(part)
		if text == "" {
			continue
		}
		key := field.SplitKey(part)
		if err := store.Set(ctx, objectID, key, text); err != nil {
			return false, fmt.Errorf("fieldtype: split values: set %s: %w", key, err)
		}
	}
	return true, nil
}

// JoinSplitValues assembles a record from the per-part keys written by
// SplitValues. It reports false when none of the keys exist.
func JoinSplitValues(ctx context.Context, store meta.Store, objectID string, field model.Field) (propername.Record, bool, error) {
	var (
		record propername.Record
		found  bool
	)
	for _, part := range propername.Parts() {
		key := field.SplitKey(part)
		raw, ok, err := store.Get(ctx, objectID, key)
		if err != nil {
			return propername.Record{}, false, fmt.Errorf("fieldtype: join split values: get %s: %w", key, err)
		}
		if !ok {
			continue
		}
		found = true
		if text, isText := propername.Normalize(raw).Text(); isText {
			record.Set(part, text)
		}
	}
	return record, found, nil
}
