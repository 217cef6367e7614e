package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarkdown(t *testing.T) {
	input := "# Hello World\n\nFirst paragraph here.\n\nSecond paragraph."

	article, err := ParseMarkdown(input)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", article.Title)
	assert.Equal(t, "Hello World", article.Description)
	assert.Equal(t, input, article.Content)
}

func TestParseMarkdownNoHeading(t *testing.T) {
	article, err := ParseMarkdown("Just some text\n\nwith paragraphs.")
	require.NoError(t, err)
	assert.Equal(t, "Untitled Post", article.Title)
}

func TestParseMarkdownEmpty(t *testing.T) {
	_, err := ParseMarkdown("   \n\n  ")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParsePlainText(t *testing.T) {
	article, err := ParsePlainText("My Title\nFirst body line.\n\nSecond body line.")
	require.NoError(t, err)
	assert.Equal(t, "My Title", article.Title)
	assert.Equal(t, "First body line.", article.Description)
	assert.Equal(t, "First body line.\n\nSecond body line.", article.Content)
}

func TestParsePlainTextOverlongTitle(t *testing.T) {
	long := strings.Repeat("word ", 25) // 125 chars
	article, err := ParsePlainText(long + "\nbody line")
	require.NoError(t, err)
	assert.Equal(t, "Untitled Post", article.Title)
}

func TestParsePlainTextNoBody(t *testing.T) {
	_, err := ParsePlainText("only one line")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestFirstParagraph(t *testing.T) {
	t.Run("strips formatting", func(t *testing.T) {
		got := FirstParagraph("## Heading\n**bold** and *italic* with [a link](https://example.com)\n\nnext", 160)
		assert.Equal(t, "Heading\nbold and italic with a link", got)
	})

	t.Run("truncates at 160", func(t *testing.T) {
		got := FirstParagraph(strings.Repeat("a", 200), 160)
		assert.Len(t, got, 160)
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.Equal(t, strings.Repeat("a", 157)+"...", got)
	})

	t.Run("short paragraph unchanged", func(t *testing.T) {
		assert.Equal(t, "short", FirstParagraph("short", 160))
	})
}
