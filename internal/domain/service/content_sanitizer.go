package service

// ContentSanitizer cleans user-submitted post text before it is stored.
type ContentSanitizer interface {
	// PlainText strips every tag.
	PlainText(s string) string

	// RichText keeps markup that is safe to render.
	RichText(s string) string
}
