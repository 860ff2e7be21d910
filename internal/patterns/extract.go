package patterns

import (
	"math"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// wordsPerPage is the estimate used when no page-count hint is supplied.
const wordsPerPage = 500

// Extract converts raw resume text into its formatting fingerprint. It is a
// pure function: identical input always yields an identical fingerprint, and
// it never fails. Empty or malformed input produces a zero-valued
// fingerprint rather than an error. A pageCountHint of 0 means "estimate
// from word count".
func Extract(text string, pageCountHint int) types.FormattingPatterns {
	if strings.TrimSpace(text) == "" {
		// Splitting "" by newline yields one empty line; guard against
		// misreading that as content.
		return types.FormattingPatterns{
			PageCount:         normalizePageCount(pageCountHint, 0),
			SectionOrder:      []string{},
			BulletStyle:       types.BulletStyle{Types: []string{}},
			QuantifiedMetrics: types.QuantifiedMetrics{Examples: []string{}},
			HeadingStyle:      types.HeadingStyle{Consistent: true, Styles: []string{}},
			DateFormat:        types.DateFormat{Formats: []string{}, Consistent: true},
		}
	}

	lines := strings.Split(text, "\n")
	words := strings.Fields(text)
	wordCount := len(words)

	sections := detectSections(lines)
	order := sectionOrder(sections)

	fingerprint := types.FormattingPatterns{
		PageCount:         normalizePageCount(pageCountHint, wordCount),
		SectionOrder:      order,
		BulletStyle:       detectBullets(lines, text),
		HasSummary:        containsSection(order, SectionSummary),
		QuantifiedMetrics: detectQuantifiedMetrics(text),
		HeadingStyle:      detectHeadingStyle(lines, sections),
		WhiteSpaceRatio:   whitespaceRatio(lines),
		DateFormat:        detectDateFormat(text),
		WordCount:         wordCount,
		AvgWordsPerLine:   averageWordsPerLine(wordCount, lines),
	}

	return fingerprint
}

// normalizePageCount applies the hint when present, otherwise estimates
// ceil(wordCount/500). The result is never below 1.
func normalizePageCount(hint, wordCount int) int {
	if hint > 0 {
		return hint
	}
	estimated := int(math.Ceil(float64(wordCount) / wordsPerPage))
	if estimated < 1 {
		return 1
	}
	return estimated
}

// whitespaceRatio is the blank-line fraction over all lines, rounded to 2
// decimals.
func whitespaceRatio(lines []string) float64 {
	if len(lines) == 0 {
		return 0
	}
	blank := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank++
		}
	}
	ratio := float64(blank) / float64(len(lines))
	return math.Round(ratio*100) / 100
}

// averageWordsPerLine counts only non-blank lines.
func averageWordsPerLine(wordCount int, lines []string) int {
	nonBlank := 0
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			nonBlank++
		}
	}
	if nonBlank == 0 {
		return 0
	}
	return wordCount / nonBlank
}

func containsSection(order []string, name string) bool {
	for _, s := range order {
		if s == name {
			return true
		}
	}
	return false
}
