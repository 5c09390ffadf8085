package sanitizer_test

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/require"

	"github.com/banjoutils/banjo/pkg/sanitizer"
)

func TestStripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips script injection",
			input:    `<p>Hello</p><script>alert('xss')</script>`,
			expected: "Hello",
		},
		{
			name:     "strips all formatting tags",
			input:    `<p>Hello <strong>world</strong></p>`,
			expected: "Hello world",
		},
		{
			name:     "strips event handlers",
			input:    `<img src="x" onerror="alert('xss')">`,
			expected: "",
		},
		{
			name:     "strips javascript URLs",
			input:    `<a href="javascript:alert('xss')">click</a>`,
			expected: "click",
		},
		{
			name:     "plain text passes through",
			input:    "normal text without HTML",
			expected: "normal text without HTML",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, sanitizer.StripTags(tt.input))
		})
	}
}

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keeps basic formatting",
			input:    `<p>Hello <strong>world</strong></p>`,
			expected: `<p>Hello <strong>world</strong></p>`,
		},
		{
			name:     "keeps lists",
			input:    `<ul><li>one</li><li>two</li></ul>`,
			expected: `<ul><li>one</li><li>two</li></ul>`,
		},
		{
			name:     "strips scripts but keeps text",
			input:    `<p>safe</p><script>alert('xss')</script>`,
			expected: `<p>safe</p>`,
		},
		{
			name:     "adds nofollow to links",
			input:    `<a href="https://example.com">link</a>`,
			expected: `<a href="https://example.com" rel="nofollow">link</a>`,
		},
		{
			name:     "strips javascript links entirely",
			input:    `<a href="javascript:alert(1)">click</a>`,
			expected: `click`,
		},
		{
			name:     "strips event handlers from allowed tags",
			input:    `<p onclick="alert(1)">text</p>`,
			expected: `<p>text</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, sanitizer.SanitizeHTML(tt.input))
		})
	}
}

func TestSanitizeWith(t *testing.T) {
	t.Parallel()

	t.Run("nil policy returns input unchanged", func(t *testing.T) {
		t.Parallel()

		in := `<script>alert(1)</script>`
		require.Equal(t, in, sanitizer.SanitizeWith(in, nil))
	})

	t.Run("custom policy is applied", func(t *testing.T) {
		t.Parallel()

		policy := bluemonday.NewPolicy()
		policy.AllowElements("b")

		got := sanitizer.SanitizeWith(`<b>bold</b><i>italic</i>`, policy)
		require.Equal(t, `<b>bold</b>italic`, got)
	})
}
