package ingest

import "regexp"

// Article is the normalized output of every converter. Content is MDX.
// On success Content is never empty; converters that cannot locate a
// body return ErrMalformedInput instead.
type Article struct {
	Title          string
	Description    string
	Content        string
	SEOTitle       string
	SEODescription string
	Keywords       []string
	Language       string
	Images         []string
}

var lineBreakPattern = regexp.MustCompile(`\r\n|\r|\n`)

// splitLines splits on \n, \r\n, and bare \r so exports from any
// platform parse the same way.
func splitLines(text string) []string {
	return lineBreakPattern.Split(text, -1)
}
