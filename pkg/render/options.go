package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without changing the field configuration.
type RenderOptions struct {
	// Locale is forwarded to the Translator when resolving sub-field labels.
	Locale string
	// Translator resolves label keys such as "proper_name_first_text". When nil
	// the built-in English defaults are used.
	Translator Translator
	// OnMissing decides the label when a translation is unavailable. The
	// default falls back to the built-in label.
	OnMissing MissingTranslationHandler
	// Emitter overrides the markup emitted for individual inputs.
	Emitter Emitter
	// Hidden lists extra hidden inputs (nonces, object ids) appended once per
	// rendered field.
	Hidden []HiddenField
	// Theme carries the resolved go-theme selection. Renderers look up
	// template overrides in Theme.Partials.
	Theme *theme.RendererConfig
}
