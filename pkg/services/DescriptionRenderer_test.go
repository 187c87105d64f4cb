package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownDescriptionRendererPlainText(t *testing.T) {
	got, err := NewMarkdownDescriptionRenderer().Render("Tägliche Geschichtssendung")
	require.NoError(t, err)

	assert.Equal(t, "<p>Tägliche Geschichtssendung</p>", trimNewlines(string(got)))
}

func TestMarkdownDescriptionRendererFormatting(t *testing.T) {
	got, err := NewMarkdownDescriptionRenderer().Render("Jeden Tag **neu**")
	require.NoError(t, err)

	assert.Contains(t, string(got), "<strong>neu</strong>")
}

func TestMarkdownDescriptionRendererStripsScripts(t *testing.T) {
	got, err := NewMarkdownDescriptionRenderer().Render("Hallo <script>alert(1)</script> [Link](javascript:alert(1))")
	require.NoError(t, err)

	assert.NotContains(t, string(got), "<script")
	assert.NotContains(t, string(got), "javascript:")
}

func trimNewlines(s string) string {
	for len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}

	return s
}
