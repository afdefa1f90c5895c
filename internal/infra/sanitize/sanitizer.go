// Package sanitize cleans user-submitted text with bluemonday policies.
package sanitize

import (
	"html"
	"strings"

	"blog/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

type bluemondaySanitizer struct {
	plain *bluemonday.Policy
	rich  *bluemonday.Policy
}

// New returns a ContentSanitizer. Policies are safe for concurrent use once built.
func New() service.ContentSanitizer {
	return &bluemondaySanitizer{
		plain: bluemonday.StrictPolicy(),
		rich:  bluemonday.UGCPolicy(),
	}
}

// PlainText strips all markup. The strict policy escapes entities for HTML output,
// so they are decoded again: plain fields are stored and returned as text, not HTML.
func (s *bluemondaySanitizer) PlainText(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.plain.Sanitize(text)))
}

func (s *bluemondaySanitizer) RichText(text string) string {
	return strings.TrimSpace(s.rich.Sanitize(text))
}
