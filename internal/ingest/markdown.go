package ingest

import (
	"fmt"
	"regexp"
	"strings"
)

const descriptionMaxLength = 160

var (
	atxTitlePattern      = regexp.MustCompile(`^#\s+`)
	headingMarkerPattern = regexp.MustCompile(`#{1,6}\s+`)
	inlineLinkPattern    = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
)

// ParseMarkdown keeps markdown input as-is and lifts the title from the
// first level-one ATX heading.
func ParseMarkdown(text string) (*Article, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty markdown input", ErrMalformedInput)
	}

	title := "Untitled Post"
	for _, line := range splitLines(text) {
		if atxTitlePattern.MatchString(line) {
			title = strings.TrimSpace(atxTitlePattern.ReplaceAllString(line, ""))
			break
		}
	}

	return &Article{
		Title:       title,
		Description: FirstParagraph(text, descriptionMaxLength),
		Content:     text,
	}, nil
}

// ParsePlainText treats the first non-empty line as the title and the
// rest as paragraphs. A first line over 100 characters is clearly prose
// rather than a title, so "Untitled Post" is used instead.
func ParsePlainText(text string) (*Article, error) {
	var lines []string
	for _, l := range splitLines(text) {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: plain text input has no body", ErrMalformedInput)
	}

	title := lines[0]
	if len([]rune(title)) > 100 {
		title = "Untitled Post"
	}
	content := strings.Join(lines[1:], "\n\n")
	description := lines[1]

	return &Article{
		Title:       title,
		Description: description,
		Content:     content,
	}, nil
}

// FirstParagraph strips markdown formatting and returns the first
// blank-line-delimited block, capped at maxLength with an ellipsis.
func FirstParagraph(content string, maxLength int) string {
	plain := headingMarkerPattern.ReplaceAllString(content, "")
	plain = strings.ReplaceAll(plain, "**", "")
	plain = strings.ReplaceAll(plain, "*", "")
	plain = inlineLinkPattern.ReplaceAllString(plain, "$1")
	plain = strings.TrimSpace(plain)

	first := strings.SplitN(plain, "\n\n", 2)[0]
	if first == "" {
		first = strings.SplitN(plain, "\n", 2)[0]
	}
	if first == "" {
		first = plain
	}

	runes := []rune(first)
	if len(runes) <= maxLength {
		return first
	}
	return string(runes[:maxLength-3]) + "..."
}
