package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHTML(t *testing.T) {
	doc := `<!DOCTYPE html>
<html>
<head>
<title>My Page Title</title>
<meta name="description" content="Page description here.">
<style>body { color: red; }</style>
</head>
<body>
<script>console.log("noise")</script>
<article>
<h1>Main Heading</h1>
<p>Opening paragraph with <strong>bold</strong> and <em>italic</em> text.</p>
<p>See <a href="https://example.com/docs">the docs</a>.</p>
<ul><li>first item</li><li>second item</li></ul>
<img src="/img/pic.png" alt="A picture">
</article>
</body>
</html>`

	article := ParseHTML(doc, "https://example.com/post/1")
	require.NotNil(t, article)

	assert.Equal(t, "My Page Title", article.Title)
	assert.Equal(t, "Page description here.", article.Description)
	assert.Contains(t, article.Content, "## Main Heading")
	assert.Contains(t, article.Content, "**bold**")
	assert.Contains(t, article.Content, "*italic*")
	assert.Contains(t, article.Content, "[the docs](https://example.com/docs)")
	assert.Contains(t, article.Content, "- first item")
	assert.Contains(t, article.Content, "- second item")
	assert.Contains(t, article.Content, "![A picture](/img/pic.png)")
	assert.NotContains(t, article.Content, "console.log")
	assert.NotContains(t, article.Content, "color: red")

	require.Len(t, article.Images, 1)
	assert.Equal(t, "https://example.com/img/pic.png", article.Images[0])
}

func TestParseHTMLTitleFallsBackToH1(t *testing.T) {
	article := ParseHTML("<html><body><h1>Heading Title</h1><p>text body</p></body></html>", "")
	assert.Equal(t, "Heading Title", article.Title)
}

func TestParseHTMLFragmentPreference(t *testing.T) {
	t.Run("main over body", func(t *testing.T) {
		doc := `<html><body>outside text<main><p>inside main</p></main></body></html>`
		article := ParseHTML(doc, "")
		assert.Contains(t, article.Content, "inside main")
		assert.NotContains(t, article.Content, "outside text")
	})

	t.Run("content div over body", func(t *testing.T) {
		doc := `<html><body>outside text<div class="post-content"><p>inside div</p></div></body></html>`
		article := ParseHTML(doc, "")
		assert.Contains(t, article.Content, "inside div")
		assert.NotContains(t, article.Content, "outside text")
	})

	t.Run("article over main", func(t *testing.T) {
		doc := `<html><body><main>main text</main><article><p>article text</p></article></body></html>`
		article := ParseHTML(doc, "")
		assert.Contains(t, article.Content, "article text")
		assert.NotContains(t, article.Content, "main text")
	})
}

func TestParseHTMLNeverFails(t *testing.T) {
	for _, input := range []string{
		"",
		"<<<>>>",
		"<div><p>unclosed",
		"random text without tags",
		"<html><head><title></title></head><body></body></html>",
	} {
		article := ParseHTML(input, "")
		require.NotNil(t, article, input)
		assert.NotEmpty(t, article.Title, input)
		assert.NotEmpty(t, article.Content, input)
	}
}

func TestParseHTMLImageFiltering(t *testing.T) {
	doc := `<html><body>
<img src="https://cdn.example.com/a.png" alt="">
<img src="/rel.png" alt="">
<img src="rel2.png" alt="">
</body></html>`

	t.Run("with source url", func(t *testing.T) {
		article := ParseHTML(doc, "https://host.test/articles/one")
		assert.Equal(t, []string{
			"https://cdn.example.com/a.png",
			"https://host.test/rel.png",
			"https://host.test/rel2.png",
		}, article.Images)
	})

	t.Run("without source url relative dropped", func(t *testing.T) {
		article := ParseHTML(doc, "")
		assert.Equal(t, []string{"https://cdn.example.com/a.png"}, article.Images)
	})
}
