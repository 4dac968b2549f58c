package vanilla

import "github.com/goliatone/go-propername/pkg/render"

// ChromeClass is a typed identifier for the CSS classes emitted around the
// name inputs.
type ChromeClass string

const (
	ClassGroup        ChromeClass = "propername-group"
	ClassRepeat       ChromeClass = "propername-repeat"
	ClassColumnNarrow ChromeClass = "propername-col-10"
	ClassColumnMedium ChromeClass = "propername-col-30"
	ClassInputNarrow  ChromeClass = "propername-text-small"
	ClassInputMedium  ChromeClass = "propername-text-medium"
)

func inputClass(size render.Size) string {
	if size == render.SizeNarrow {
		return string(ClassInputNarrow)
	}
	return string(ClassInputMedium)
}

func columnClass(size render.Size) string {
	if size == render.SizeNarrow {
		return string(ClassColumnNarrow)
	}
	return string(ClassColumnMedium)
}
