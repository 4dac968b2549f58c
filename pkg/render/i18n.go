package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-propername/pkg/model"
	"github.com/goliatone/go-propername/pkg/propername"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when labels are
// resolved without a Translator.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler returns the label used when key cannot be
// translated. fallback is the built-in English label.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

// Label translation keys, one per part.
const (
	LabelKeySalutation = "proper_name_salutation_text"
	LabelKeyFirstName  = "proper_name_first_text"
	LabelKeyMiddleName = "proper_name_middle_text"
	LabelKeyLastName   = "proper_name_last_name"
	LabelKeySuffix     = "proper_name_suffix_text"
)

var defaultLabels = map[propername.Part]struct {
	key      string
	fallback string
}{
	propername.PartSalutation: {LabelKeySalutation, "Salutation"},
	propername.PartFirstName:  {LabelKeyFirstName, "First Name"},
	propername.PartMiddleName: {LabelKeyMiddleName, "Middle"},
	propername.PartLastName:   {LabelKeyLastName, "Last Name"},
	propername.PartSuffix:     {LabelKeySuffix, "Suffix"},
}

// LabelKey returns the translation key for part.
func LabelKey(part propername.Part) string {
	return defaultLabels[part].key
}

// DefaultLabel returns the built-in English label for part.
func DefaultLabel(part propername.Part) string {
	return defaultLabels[part].fallback
}

// Label resolves the label for part. Field text overrides win, then the
// translator, then the built-in default.
func Label(field model.Field, part propername.Part, opts RenderOptions) string {
	entry, ok := defaultLabels[part]
	if !ok {
		return string(part)
	}
	if override, ok := field.TextOverride(entry.key); ok {
		return override
	}

	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	return translate(opts.Locale, entry.key, entry.fallback, opts.Translator, onMissing)
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	if t == nil {
		return onMissing(locale, key, fallback, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, fallback, err)
}

func missingTranslationDefault(_, key, fallback string, _ error) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}
