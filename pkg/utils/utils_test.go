package utils

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"long", "hello world", 5, "hello"},
		{"empty", "", 5, ""},
		{"zero", "hello", 0, ""},
		{"negative", "hello", -1, ""},
		{"multibyte boundary", "café", 4, "caf"},
		{"multibyte whole", "café", 5, "café"},
		{"cjk", "日本語", 4, "日"},
		{"emoji", "😀x", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateStr(tt.input, tt.maxLen)
			assert.Equal(t, tt.expected, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestEllipsize(t *testing.T) {
	assert.Equal(t, "short", Ellipsize("short", 10))
	assert.Equal(t, "Reviews...", Ellipsize("Reviews code for quality", 10))
	assert.Equal(t, "Rev", Ellipsize("Reviews", 3))
	assert.Equal(t, "caf...", Ellipsize("café au lait", 7))
}
