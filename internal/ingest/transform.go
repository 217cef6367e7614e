package ingest

import (
	"regexp"
	"strings"
)

// transformState names the three modes of the body-to-MDX pass.
type transformState int

const (
	stateNormal transformState = iota
	stateInSummary
	stateSkipOne
)

var photoCreditPattern = regexp.MustCompile(`by\s+([^(]+)\s*\(([^)]+)\)`)

// ConvertBodyToMDX runs the single-pass line transform over article body
// lines: heading promotion from the section table, the summary
// blockquote, blank collapsing, and image caption / photo credit
// rewriting. Output is joined with "\n" and trimmed.
func ConvertBodyToMDX(lines []string, table SectionTable) string {
	var out []string
	state := stateNormal
	previousWasHeading := false

	for i := 0; i < len(lines); i++ {
		if state == stateSkipOne {
			state = stateNormal
			continue
		}

		line := strings.TrimSpace(lines[i])

		// Leading blanks before any output.
		if len(out) == 0 && line == "" {
			continue
		}

		// The first body line often repeats the title.
		if i == 0 && table.DuplicateTitlePhrase != "" && strings.Contains(line, table.DuplicateTitlePhrase) {
			continue
		}

		if line == "Summary" && i+1 < len(lines) {
			state = stateInSummary
			out = append(out, "", "> **Summary**")
			continue
		}

		if state == stateInSummary {
			if table.isMainSection(line) {
				// Close the quote; the heading itself is handled by the
				// normal rules below so it is emitted exactly once.
				state = stateNormal
				out = append(out, "")
			} else {
				if line != "" {
					out = append(out, "> "+line)
				}
				continue
			}
		}

		if line == "" {
			if !previousWasHeading && len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}
			previousWasHeading = false
			continue
		}

		if table.isMainSection(line) {
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}
			out = append(out, "## "+line)
			previousWasHeading = true
			continue
		}

		if table.isSubsection(line) {
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}
			out = append(out, "### "+line)
			previousWasHeading = true
			continue
		}

		stripped := false
		for _, phrase := range table.CaptionPhrases {
			if strings.Contains(line, phrase) {
				out = append(out, "", "!["+phrase+"]("+table.PlaceholderImageURL+")", "")
				line = strings.TrimSpace(strings.ReplaceAll(line, phrase, ""))
				stripped = true
			}
		}
		if stripped && line == "" {
			continue
		}

		if line == table.CaptionWithCredit && i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if strings.Contains(next, "unsplash") || strings.Contains(next, "by ") {
				out = append(out, "", "!["+line+"]("+table.PlaceholderImageURL+")", "")
				if strings.Contains(next, "by ") && strings.Contains(next, "@") {
					if m := photoCreditPattern.FindStringSubmatch(next); m != nil {
						out = append(out, photoCredit(m), "")
						state = stateSkipOne
					}
				}
				continue
			}
		}

		if strings.Contains(line, "unsplash.com") || (strings.Contains(line, "by ") && strings.Contains(line, "@")) {
			if m := photoCreditPattern.FindStringSubmatch(line); m != nil {
				out = append(out, "", photoCredit(m), "")
			}
			continue
		}

		out = append(out, line)
		previousWasHeading = false
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}

func photoCredit(m []string) string {
	photographer := strings.TrimSpace(m[1])
	url := strings.TrimSpace(m[2])
	return "*Photo by [" + photographer + "](" + url + ") on Unsplash*"
}
