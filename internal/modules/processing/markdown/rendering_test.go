package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	html, err := Render("## Heading\n\nA paragraph with **bold** text.")
	require.NoError(t, err)

	assert.Contains(t, html, "<h2>Heading</h2>")
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestRenderImage(t *testing.T) {
	html, err := Render("![alt text](https://example.com/a.png)")
	require.NoError(t, err)
	assert.Contains(t, html, `<img src="https://example.com/a.png" alt="alt text"`)
}

func TestRenderEmpty(t *testing.T) {
	html, err := Render("  \n ")
	require.NoError(t, err)
	assert.Empty(t, html)
}
