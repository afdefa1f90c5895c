package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizer(t *testing.T) {
	s := New()

	tests := []struct {
		name  string
		input string
		plain string
		rich  string
	}{
		{
			name:  "plain text untouched",
			input: "Hello world",
			plain: "Hello world",
			rich:  "Hello world",
		},
		{
			name:  "script removed",
			input: `<script>alert(1)</script>Hi`,
			plain: "Hi",
			rich:  "Hi",
		},
		{
			name:  "formatting kept only in rich text",
			input: "<p><b>bold</b> text</p>",
			plain: "bold text",
			rich:  "<p><b>bold</b> text</p>",
		},
		{
			name:  "event handler stripped",
			input: `<a href="https://example.com" onclick="steal()">link</a>`,
			plain: "link",
			rich:  `<a href="https://example.com" rel="nofollow">link</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.plain, s.PlainText(tt.input))
			assert.Equal(t, tt.rich, s.RichText(tt.input))
		})
	}
}

func TestSanitizer_PlainTextKeepsCharacters(t *testing.T) {
	s := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ampersand and apostrophe", input: "Tom & Jerry's", want: "Tom & Jerry's"},
		{name: "comparison survives", input: "1 < 2 > 0", want: "1 < 2 > 0"},
		{name: "quotes", input: `say "hi"`, want: `say "hi"`},
		{name: "tags removed but text kept", input: "Tom & <b>Jerry</b>", want: "Tom & Jerry"},
		{name: "surrounding space trimmed", input: "  fish & chips \n", want: "fish & chips"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.PlainText(tt.input))
		})
	}
}
