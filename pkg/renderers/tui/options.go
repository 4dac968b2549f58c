package tui

import (
	"io"

	"github.com/goliatone/go-propername/pkg/render"
)

// Theme captures optional prefixes the editor applies when printing
// messages.
type Theme struct {
	InfoPrefix string
}

// Option configures the Editor.
type Option func(*Editor)

// WithPromptDriver overrides the prompt driver used by the editor.
func WithPromptDriver(driver PromptDriver) Option {
	return func(e *Editor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// WithOutput sets where the default driver prints informational messages.
// Default: os.Stdout.
func WithOutput(out io.Writer) Option {
	return func(e *Editor) {
		if out != nil {
			e.out = out
		}
	}
}

// WithTranslator sets the translator and locale used for prompt labels.
func WithTranslator(translator render.Translator, locale string) Option {
	return func(e *Editor) {
		e.labels.Translator = translator
		e.labels.Locale = locale
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(e *Editor) {
		e.theme = theme
	}
}
