// Package fieldconfig loads proper name field definitions from JSON or YAML
// documents of the form:
//
//	fields:
//	  speaker:
//	    type: name_full
//	    label: Speaker
//	    split_values: true
//	    text:
//	      proper_name_first_text: Given name
package fieldconfig

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-propername/pkg/model"
)

// Store holds field definitions keyed by id.
type Store struct {
	fields  map[string]model.Field
	sources map[string]string
}

// LoadFS walks fsys and parses every JSON/YAML file. When fsys is nil or no
// config files are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isConfigFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fieldconfig: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFile parses a single config file, or every config file below path
// when it is a directory.
func LoadFile(path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("fieldconfig: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadFS(os.DirFS(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fieldconfig: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes one document. source is used in error messages.
func Parse(data []byte, source string) (*Store, error) {
	store := newStore()
	if err := store.add(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

// Field returns the definition for id.
func (s *Store) Field(id string) (model.Field, bool) {
	if s == nil {
		return model.Field{}, false
	}
	field, ok := s.fields[strings.TrimSpace(id)]
	if !ok {
		return model.Field{}, false
	}
	return cloneField(field), true
}

// Source returns the file that defined id.
func (s *Store) Source(id string) string {
	if s == nil {
		return ""
	}
	return s.sources[id]
}

// IDs returns the defined field ids in sorted order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.fields))
	for id := range s.fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any fields.
func (s *Store) Empty() bool {
	return s == nil || len(s.fields) == 0
}

type documentFile struct {
	Fields map[string]fieldFile `json:"fields" yaml:"fields"`
}

type fieldFile struct {
	Type        string            `json:"type" yaml:"type"`
	Label       string            `json:"label" yaml:"label"`
	Description string            `json:"description" yaml:"description"`
	Repeatable  bool              `json:"repeatable" yaml:"repeatable"`
	SplitValues bool              `json:"split_values" yaml:"split_values"`
	Text        map[string]string `json:"text" yaml:"text"`
	Hints       map[string]string `json:"hints" yaml:"hints"`
}

func newStore() *Store {
	return &Store{
		fields:  make(map[string]model.Field),
		sources: make(map[string]string),
	}
}

func (s *Store) add(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}
	for rawID, raw := range doc.Fields {
		id := strings.TrimSpace(rawID)
		if id == "" {
			return fmt.Errorf("fieldconfig: file %s defines an empty field id", source)
		}
		if previous, exists := s.sources[id]; exists {
			return fmt.Errorf("fieldconfig: duplicate field %q (file %s, first defined in %s)", id, source, previous)
		}
		field, err := normaliseField(raw, id, source)
		if err != nil {
			return err
		}
		s.fields[id] = field
		s.sources[id] = source
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("fieldconfig: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("fieldconfig: parse %s: invalid JSON or YAML", source)
}

func normaliseField(raw fieldFile, id, source string) (model.Field, error) {
	fieldType := model.FieldType(strings.ToLower(strings.TrimSpace(raw.Type)))
	if fieldType == "" {
		fieldType = model.FieldTypeNameFull
	}
	if !fieldType.Valid() {
		return model.Field{}, fmt.Errorf("fieldconfig: field %q (file %s) has unknown type %q", id, source, raw.Type)
	}
	return cloneField(model.Field{
		ID:          id,
		Type:        fieldType,
		Label:       strings.TrimSpace(raw.Label),
		Description: strings.TrimSpace(raw.Description),
		Repeatable:  raw.Repeatable,
		SplitValues: raw.SplitValues,
		Text:        raw.Text,
		UIHints:     raw.Hints,
	}), nil
}

func cloneField(field model.Field) model.Field {
	field.Text = cloneStringMap(field.Text)
	field.UIHints = cloneStringMap(field.UIHints)
	return field
}

func cloneStringMap(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
