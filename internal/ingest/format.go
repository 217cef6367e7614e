package ingest

import (
	"regexp"
	"strings"
)

// Format identifies the source layout of raw import input.
type Format string

const (
	FormatContentShake Format = "contentshake"
	FormatHTML         Format = "html"
	FormatMarkdown     Format = "markdown"
	FormatPlainText    Format = "plain-text"
)

var (
	htmlTagPattern  = regexp.MustCompile(`(?is)<[a-z].*>`)
	markdownPattern = regexp.MustCompile(`(?m)^#{1,6}\s|^\*\s|^-\s|^\d+\.\s|\[.*\]\(.*\)`)
)

// Detect classifies raw text into one of the supported input formats.
// Rules are checked in priority order; the first match wins and
// plain-text is the fallback, so Detect never fails.
func Detect(text string) Format {
	trimmed := strings.TrimSpace(text)

	if strings.HasPrefix(trimmed, "ContentShake AI") ||
		strings.Contains(trimmed, "Title Tag:") ||
		strings.Contains(trimmed, "Meta Description:") {
		return FormatContentShake
	}

	if htmlTagPattern.MatchString(trimmed) {
		return FormatHTML
	}

	if markdownPattern.MatchString(trimmed) {
		return FormatMarkdown
	}

	return FormatPlainText
}
