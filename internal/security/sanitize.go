package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// The five characters the frontend never receives raw. The ampersand is
// deliberately not escaped so the function is idempotent: a second pass over
// already-escaped text is a no-op.
var htmlEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize escapes unsafe characters and trims surrounding whitespace.
// Pure and total; applied to every string field of a submission payload.
func Sanitize(text string) string {
	return strings.TrimSpace(htmlEscaper.Replace(text))
}

// SanitizeFields sanitizes every string-valued field of a payload.
// Non-string values pass through unchanged.
func SanitizeFields(data map[string]any) map[string]any {
	sanitized := make(map[string]any, len(data))
	for key, value := range data {
		if s, ok := value.(string); ok {
			sanitized[key] = Sanitize(s)
		} else {
			sanitized[key] = value
		}
	}
	return sanitized
}

// ScrubMarkup strips any markup from remote-model output before it reaches
// clients. Model text is untrusted: explanations and chat replies are
// rendered by the widget, so tags are removed rather than escaped.
func ScrubMarkup(text string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(text))
}
