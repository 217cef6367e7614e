package ingest

import (
	"fmt"
	"strings"
)

// languageCodes maps the vendor's spelled-out language names to ISO
// codes. Unknown names keep the "en" default.
var languageCodes = map[string]string{
	"english": "en",
	"french":  "fr",
	"arabic":  "ar",
	"chinese": "zh",
}

// ParseContentShake parses a ContentShake AI text export: a metadata
// preamble (Title, Title Tag, Meta Description, Keywords, Language)
// followed by the article body, which is converted to MDX with the given
// section table.
func ParseContentShake(text string, table SectionTable) (*Article, error) {
	lines := splitLines(text)

	var title, seoTitle, metaDescription string
	var keywords []string
	language := "en"
	start := -1

	for i, raw := range lines {
		line := strings.TrimSpace(raw)

		if strings.HasPrefix(line, "Title:") {
			title = strings.TrimSpace(strings.TrimPrefix(line, "Title:"))
		}

		if strings.HasPrefix(line, "Title Tag:") {
			seoTitle = strings.TrimSpace(strings.TrimPrefix(line, "Title Tag:"))
		}

		if strings.HasPrefix(line, "Meta Description:") {
			metaDescription = strings.TrimSpace(strings.TrimPrefix(line, "Meta Description:"))
		}

		if strings.HasPrefix(line, "Keywords:") {
			value := strings.TrimSpace(strings.TrimPrefix(line, "Keywords:"))
			if value != "" {
				keywords = splitKeywords(value)
			} else if i+1 < len(lines) {
				// The export sometimes wraps the keyword list onto the
				// next line.
				next := strings.TrimSpace(lines[i+1])
				if next != "" && !strings.Contains(next, ":") {
					keywords = splitKeywords(next)
				}
			}
		}

		if strings.HasPrefix(line, "Language:") {
			name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "Language:")))
			if code, ok := languageCodes[name]; ok {
				language = code
			}
		}

		if line == "Article" {
			// The line right after the marker is boilerplate.
			start = i + 2
			break
		}
	}

	if start == -1 {
		start = scanForBodyStart(lines)
	}
	if start == -1 {
		start = 28
	}
	if start >= len(lines) {
		return nil, fmt.Errorf("%w: article body start %d is beyond the %d input lines", ErrMalformedInput, start, len(lines))
	}

	content := ConvertBodyToMDX(lines[start:], table)
	if content == "" {
		return nil, fmt.Errorf("%w: article body is empty", ErrMalformedInput)
	}

	article := &Article{
		Title:          title,
		Description:    metaDescription,
		Content:        content,
		SEOTitle:       seoTitle,
		SEODescription: metaDescription,
		Keywords:       keywords,
		Language:       language,
	}
	if article.Title == "" {
		article.Title = seoTitle
	}
	if article.Title == "" {
		article.Title = "Untitled Post"
	}
	if article.SEOTitle == "" {
		article.SEOTitle = title
	}
	if article.Description == "" {
		article.Description = FirstParagraph(content, descriptionMaxLength)
	}
	return article, nil
}

// scanForBodyStart looks through lines 26..34 for the first long intro
// sentence when the Article marker is missing.
func scanForBodyStart(lines []string) int {
	for i := 26; i < len(lines) && i < 35; i++ {
		line := strings.TrimSpace(lines[i])
		if len(line) > 50 && (strings.Contains(line, "When it comes to") || strings.Contains(line, "Why Use")) {
			return i
		}
	}
	return -1
}

func splitKeywords(value string) []string {
	var keywords []string
	for _, part := range strings.Split(value, ",") {
		if k := strings.TrimSpace(part); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
