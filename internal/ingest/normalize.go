package ingest

import (
	"regexp"
	"strings"
)

// TOCEntry is one heading in a post's table of contents.
type TOCEntry struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

var (
	nonAlnumPattern   = regexp.MustCompile(`[^a-z0-9]+`)
	atxHeadingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
)

// Slugify lowercases text, collapses every run of characters outside
// [a-z0-9] into a single hyphen, and trims leading/trailing hyphens.
// Idempotent: slugifying a slug returns it unchanged.
func Slugify(text string) string {
	slug := strings.ToLower(text)
	slug = nonAlnumPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// SlugForTitle is the post slug rule: Slugify capped at 100 characters.
func SlugForTitle(title string) string {
	slug := Slugify(title)
	if len(slug) > 100 {
		slug = slug[:100]
	}
	return slug
}

// ExtractTOC collects every ATX heading in the MDX content, in order.
// Level is the number of # characters and ID is the heading slug
// (uncapped). Returns nil when there are no headings so the column
// serializes as JSON null rather than [].
func ExtractTOC(content string) []TOCEntry {
	var toc []TOCEntry
	for _, line := range splitLines(content) {
		m := atxHeadingPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[2])
		toc = append(toc, TOCEntry{
			ID:    Slugify(text),
			Text:  text,
			Level: len(m[1]),
		})
	}
	return toc
}
