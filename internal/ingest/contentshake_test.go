package ingest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentShake(t *testing.T) {
	input := strings.Join([]string{
		"ContentShake AI",
		"Title: Why Use a Sourcing Agent Instead of Alibaba",
		"Title Tag: Sourcing Agent vs Alibaba",
		"Meta Description: A practical comparison.",
		"Keywords: sourcing, china, alibaba",
		"Language: french",
		"",
		"Article",
		"boilerplate",
		"First paragraph of the article body.",
		"",
		"What is Alibaba?",
		"Alibaba is a marketplace.",
	}, "\n")

	article, err := ParseContentShake(input, DefaultSectionTable())
	require.NoError(t, err)

	assert.Equal(t, "Why Use a Sourcing Agent Instead of Alibaba", article.Title)
	assert.Equal(t, "Sourcing Agent vs Alibaba", article.SEOTitle)
	assert.Equal(t, "A practical comparison.", article.Description)
	assert.Equal(t, "A practical comparison.", article.SEODescription)
	assert.Equal(t, []string{"sourcing", "china", "alibaba"}, article.Keywords)
	assert.Equal(t, "fr", article.Language)
	assert.Equal(t, "First paragraph of the article body.\n\n## What is Alibaba?\nAlibaba is a marketplace.", article.Content)
}

func TestParseContentShakeCRLF(t *testing.T) {
	input := "Title: CRLF Post\r\nMeta Description: desc\r\nArticle\r\nboilerplate\r\nBody line one.\r\nBody line two."

	article, err := ParseContentShake(input, DefaultSectionTable())
	require.NoError(t, err)
	assert.Equal(t, "CRLF Post", article.Title)
	assert.Equal(t, "Body line one.\nBody line two.", article.Content)
}

func TestParseContentShakeKeywordsOnNextLine(t *testing.T) {
	input := strings.Join([]string{
		"Title: Wrapped Keywords",
		"Keywords:",
		"alpha, beta, gamma",
		"Article",
		"boilerplate",
		"Body text.",
	}, "\n")

	article, err := ParseContentShake(input, DefaultSectionTable())
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, article.Keywords)
}

func TestParseContentShakeKeywordsNextLineWithColonIgnored(t *testing.T) {
	input := strings.Join([]string{
		"Title: No Keywords",
		"Keywords:",
		"Language: english",
		"Article",
		"boilerplate",
		"Body text.",
	}, "\n")

	article, err := ParseContentShake(input, DefaultSectionTable())
	require.NoError(t, err)
	assert.Empty(t, article.Keywords)
	assert.Equal(t, "en", article.Language)
}

func TestParseContentShakeLanguageDefaults(t *testing.T) {
	for name, want := range map[string]string{
		"english": "en", "french": "fr", "arabic": "ar", "chinese": "zh", "klingon": "en",
	} {
		t.Run(name, func(t *testing.T) {
			input := fmt.Sprintf("Title: T\nLanguage: %s\nArticle\nboilerplate\nBody text.", name)
			article, err := ParseContentShake(input, DefaultSectionTable())
			require.NoError(t, err)
			assert.Equal(t, want, article.Language)
		})
	}
}

func TestParseContentShakeTitleFallsBackToSEOTitle(t *testing.T) {
	input := "Title Tag: Only SEO Title\nArticle\nboilerplate\nBody text."

	article, err := ParseContentShake(input, DefaultSectionTable())
	require.NoError(t, err)
	assert.Equal(t, "Only SEO Title", article.Title)
	assert.Equal(t, "Only SEO Title", article.SEOTitle)
}

func TestParseContentShakeDescriptionFallsBackToFirstParagraph(t *testing.T) {
	input := "Title: T\nArticle\nboilerplate\nOpening paragraph used as description."

	article, err := ParseContentShake(input, DefaultSectionTable())
	require.NoError(t, err)
	assert.Equal(t, "Opening paragraph used as description.", article.Description)
}

func TestParseContentShakeBodyStartHeuristic(t *testing.T) {
	lines := make([]string, 40)
	lines[0] = "Title: Heuristic Post"
	lines[1] = "Meta Description: d"
	for i := 2; i < 27; i++ {
		lines[i] = "short"
	}
	lines[27] = "When it comes to sourcing products overseas, businesses have to weigh their options carefully."
	for i := 28; i < 40; i++ {
		lines[i] = fmt.Sprintf("Body line %d.", i)
	}

	article, err := ParseContentShake(strings.Join(lines, "\n"), DefaultSectionTable())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(article.Content, "When it comes to sourcing products overseas"))
}

func TestParseContentShakeMissingBodyStart(t *testing.T) {
	// No Article marker and fewer than 29 lines: the default start index
	// lands past the end of the input.
	input := "Title Tag: Too Short\nMeta Description: d\nno body here"

	_, err := ParseContentShake(input, DefaultSectionTable())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedInput)
}
