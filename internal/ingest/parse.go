package ingest

// Parse auto-detects the format of raw text and runs the matching
// converter. sourceURL is only consulted by the HTML converter for
// relative image resolution.
func Parse(text, sourceURL string, table SectionTable) (*Article, error) {
	switch Detect(text) {
	case FormatContentShake:
		return ParseContentShake(text, table)
	case FormatHTML:
		return ParseHTML(text, sourceURL), nil
	case FormatMarkdown:
		return ParseMarkdown(text)
	default:
		return ParsePlainText(text)
	}
}
