package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// maxTextPasses bounds the strip/decode loop in Text.
const maxTextPasses = 8

// Text strips markup from raw, decodes entities, collapses whitespace runs
// and trims the result. It is the save-time transform for a single part.
// Entity-encoded markup is decoded before stripping so it cannot come back
// as live tags, and the strip repeats until the output is stable.
func Text(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	current := raw
	for pass := 0; pass < maxTextPasses; pass++ {
		stripped := textSanitizer().Sanitize(decodeEntities(current))
		next := html.UnescapeString(stripped)
		if next == current {
			return strings.Join(strings.Fields(next), " ")
		}
		current = next
		if pass == maxTextPasses-1 {
			current = stripped
		}
	}
	return strings.Join(strings.Fields(current), " ")
}

func decodeEntities(s string) string {
	for {
		decoded := html.UnescapeString(s)
		if decoded == s {
			return s
		}
		s = decoded
	}
}

// Attr escapes raw for use inside an HTML attribute. It is the display-time
// transform for a single part.
func Attr(raw string) string {
	return html.EscapeString(raw)
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
