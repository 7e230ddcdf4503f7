package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertMarkdownToText(t *testing.T) {
	tests := []struct {
		desc string
		in   string
		want string
	}{
		{"heading and emphasis", "# Great day\n\nI **love** it.", "Great day I love it."},
		{"markdown link keeps text", "Read [the review](https://example.com/r) now", "Read the review now"},
		{"bare url removed", "see https://example.com today", "see today"},
		{"apostrophe kept straight", "it's fine", "it's fine"},
		{"list items", "- good\n- bad\n", "good bad"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertMarkdownToText(tt.in))
		})
	}
}

func TestIsMarkdownName(t *testing.T) {
	assert.True(t, IsMarkdownName("notes.md"))
	assert.True(t, IsMarkdownName("NOTES.Markdown"))
	assert.False(t, IsMarkdownName("notes.txt"))
	assert.False(t, IsMarkdownName("notes"))
}
