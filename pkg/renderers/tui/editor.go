// Package tui edits proper name values interactively in a terminal.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-propername/pkg/model"
	"github.com/goliatone/go-propername/pkg/propername"
	"github.com/goliatone/go-propername/pkg/render"
	"github.com/goliatone/go-propername/pkg/renderers/vanilla"
)

// Editor prompts for the visible parts of a proper name field.
type Editor struct {
	driver PromptDriver
	out    io.Writer
	labels render.RenderOptions
	theme  Theme
}

// New constructs an editor backed by survey unless a driver is supplied.
func New(options ...Option) *Editor {
	e := &Editor{out: os.Stdout}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.driver == nil {
		e.driver = surveyDriver{out: e.out}
	}
	return e
}

// Edit prompts for each part the field's variant shows, defaulting to the
// current value. Parts the variant hides come back empty. Simple current
// values offer no per-part defaults. An empty field type edits as name_full.
func (e *Editor) Edit(ctx context.Context, field model.Field, current propername.Value) (propername.Record, error) {
	if label := strings.TrimSpace(field.Label); label != "" {
		if err := e.info(ctx, label); err != nil {
			return propername.Record{}, err
		}
	}

	fieldType := field.Type
	if fieldType == "" {
		fieldType = model.FieldTypeNameFull
	}
	parts := vanilla.VisibleParts(fieldType)
	if len(parts) == 0 {
		return propername.Record{}, fmt.Errorf("tui: unsupported field type %q", field.Type)
	}

	existing := current.Record()
	var record propername.Record
	for _, part := range parts {
		answer, err := e.driver.AskPart(ctx, PartPrompt{
			Part:    part,
			Label:   render.Label(field, part, e.labels),
			Default: existing.Get(part),
			Help:    field.Description,
		})
		if err != nil {
			return propername.Record{}, fmt.Errorf("tui: prompt %s: %w", part, err)
		}
		record.Set(part, strings.TrimSpace(answer))
	}
	return record, nil
}

// EditList walks every current record of a repeatable field and then offers
// to add more. Records left entirely empty are dropped.
func (e *Editor) EditList(ctx context.Context, field model.Field, current []propername.Value) ([]propername.Record, error) {
	records := make([]propername.Record, 0, len(current))
	entry := model.Field{
		ID:          field.ID,
		Type:        field.Type,
		Description: field.Description,
		Text:        field.Text,
		UIHints:     field.UIHints,
	}

	if label := strings.TrimSpace(field.Label); label != "" {
		if err := e.info(ctx, label); err != nil {
			return nil, err
		}
	}

	// Rows are numbered in prompt order, so a cleared row keeps its number
	// and the next prompt moves on.
	row := 0
	for _, value := range current {
		row++
		entry.Label = fmt.Sprintf("#%d", row)
		record, err := e.Edit(ctx, entry, value)
		if err != nil {
			return nil, err
		}
		if !record.IsZero() {
			records = append(records, record)
		}
	}

	for {
		more, err := e.driver.AskMore(ctx, len(records))
		if err != nil {
			return nil, fmt.Errorf("tui: confirm: %w", err)
		}
		if !more {
			break
		}
		row++
		entry.Label = fmt.Sprintf("#%d", row)
		record, err := e.Edit(ctx, entry, propername.Structured(propername.Record{}))
		if err != nil {
			return nil, err
		}
		if !record.IsZero() {
			records = append(records, record)
		}
	}
	return records, nil
}

// Summary prints the formatted name.
func (e *Editor) Summary(ctx context.Context, record propername.Record) error {
	return e.info(ctx, propername.Format(record))
}

func (e *Editor) info(ctx context.Context, msg string) error {
	if err := e.driver.Say(ctx, e.theme.InfoPrefix+msg); err != nil {
		return fmt.Errorf("tui: info: %w", err)
	}
	return nil
}
