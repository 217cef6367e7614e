package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertBodyToMDXSummaryBlock(t *testing.T) {
	lines := []string{"Summary", "Some summary text", "Conclusion", "Body text"}
	got := ConvertBodyToMDX(lines, DefaultSectionTable())

	assert.Equal(t, "> **Summary**\n> Some summary text\n\n## Conclusion\nBody text", got)
	assert.Equal(t, 1, strings.Count(got, "## Conclusion"))
}

func TestConvertBodyToMDXSummarySwallowsBlanks(t *testing.T) {
	lines := []string{"intro", "Summary", "first point", "", "second point", "Conclusion", "done"}
	got := ConvertBodyToMDX(lines, DefaultSectionTable())

	assert.Contains(t, got, "> first point\n> second point")
	assert.NotContains(t, got, "> \n")
}

func TestConvertBodyToMDXHeadings(t *testing.T) {
	lines := []string{
		"Intro paragraph.",
		"What is Alibaba?",
		"A marketplace.",
		"The Scale of Alibaba",
		"It is large.",
	}
	got := ConvertBodyToMDX(lines, DefaultSectionTable())

	assert.Equal(t, strings.Join([]string{
		"Intro paragraph.",
		"",
		"## What is Alibaba?",
		"A marketplace.",
		"",
		"### The Scale of Alibaba",
		"It is large.",
	}, "\n"), got)
}

func TestConvertBodyToMDXBlankCollapsing(t *testing.T) {
	lines := []string{"", "", "first", "", "", "", "second"}
	got := ConvertBodyToMDX(lines, DefaultSectionTable())
	assert.Equal(t, "first\n\nsecond", got)
}

func TestConvertBodyToMDXNoBlankAfterHeading(t *testing.T) {
	lines := []string{"Conclusion", "", "Closing thoughts."}
	got := ConvertBodyToMDX(lines, DefaultSectionTable())
	assert.Equal(t, "## Conclusion\nClosing thoughts.", got)
}

func TestConvertBodyToMDXDuplicateTitleDropped(t *testing.T) {
	lines := []string{"Why Use a Sourcing Agent Instead of Alibaba", "Real opening line."}
	got := ConvertBodyToMDX(lines, DefaultSectionTable())
	assert.Equal(t, "Real opening line.", got)
}

func TestConvertBodyToMDXCaptionPhraseStripped(t *testing.T) {
	table := DefaultSectionTable()
	lines := []string{"Alibaba platform interface shows thousands of listings."}
	got := ConvertBodyToMDX(lines, table)

	require.Contains(t, got, "![Alibaba platform interface]("+table.PlaceholderImageURL+")")
	assert.Contains(t, got, "shows thousands of listings.")
	assert.NotContains(t, got, "Alibaba platform interface shows")
}

func TestConvertBodyToMDXCaptionOnlyLine(t *testing.T) {
	table := DefaultSectionTable()
	lines := []string{"before", "Sourcing agent negotiating in China", "after"}
	got := ConvertBodyToMDX(lines, table)

	assert.Contains(t, got, "![Sourcing agent negotiating in China]("+table.PlaceholderImageURL+")")
	assert.Contains(t, got, "before")
	assert.Contains(t, got, "after")
}

func TestConvertBodyToMDXCaptionWithCredit(t *testing.T) {
	table := DefaultSectionTable()
	lines := []string{
		"Comparing sourcing fees",
		"Photo by Jane Doe (https://unsplash.com/@janedoe)",
		"Next paragraph.",
	}
	got := ConvertBodyToMDX(lines, table)

	assert.Contains(t, got, "![Comparing sourcing fees]("+table.PlaceholderImageURL+")")
	assert.Contains(t, got, "*Photo by [Jane Doe](https://unsplash.com/@janedoe) on Unsplash*")
	// The attribution line was consumed, not emitted twice.
	assert.Equal(t, 1, strings.Count(got, "Jane Doe"))
	assert.Contains(t, got, "Next paragraph.")
}

func TestConvertBodyToMDXStandaloneCredit(t *testing.T) {
	lines := []string{
		"A paragraph.",
		"Taken by John Smith (https://unsplash.com/@jsmith) yesterday",
		"Another paragraph.",
	}
	got := ConvertBodyToMDX(lines, DefaultSectionTable())

	assert.Contains(t, got, "*Photo by [John Smith](https://unsplash.com/@jsmith) on Unsplash*")
	assert.NotContains(t, got, "Taken by John Smith")
}

func TestConvertBodyToMDXEmpty(t *testing.T) {
	assert.Equal(t, "", ConvertBodyToMDX(nil, DefaultSectionTable()))
	assert.Equal(t, "", ConvertBodyToMDX([]string{"", "  ", ""}, DefaultSectionTable()))
}
