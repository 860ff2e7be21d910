package patterns

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Heading style tags.
const (
	StyleAllCaps      = "all_caps"
	StyleTitleCase    = "title_case"
	StyleSentenceCase = "sentence_case"
)

// classifyHeadingStyle tags a detected section heading as ALL CAPS, Title
// Case, or Sentence case by character-class rules.
func classifyHeadingStyle(heading string) string {
	trimmed := strings.TrimSpace(heading)
	if trimmed == "" {
		return StyleSentenceCase
	}

	hasLower := false
	hasUpper := false
	for _, r := range trimmed {
		if unicode.IsLower(r) {
			hasLower = true
		} else if unicode.IsUpper(r) {
			hasUpper = true
		}
	}

	if hasUpper && !hasLower {
		return StyleAllCaps
	}

	// Title Case: every word starts with an uppercase letter.
	words := strings.Fields(trimmed)
	titleCased := true
	for _, w := range words {
		first := []rune(w)[0]
		if unicode.IsLetter(first) && !unicode.IsUpper(first) {
			titleCased = false
			break
		}
	}
	if titleCased && len(words) > 0 {
		return StyleTitleCase
	}

	return StyleSentenceCase
}

// detectHeadingStyle restricts to lines that matched a canonical section
// heading and reports whether their capitalization is consistent.
// Consistency means at most one distinct style across all detected headings.
func detectHeadingStyle(lines []string, sections []detectedSection) types.HeadingStyle {
	var styles []string
	seen := make(map[string]bool, 3)

	for _, section := range sections {
		if section.Line >= len(lines) {
			continue
		}
		line := strings.TrimSpace(lines[section.Line])
		// Synthesized Contact entries point at a contact-info line, not a heading.
		if matchSectionHeading(line) == "" {
			continue
		}
		style := classifyHeadingStyle(line)
		if !seen[style] {
			seen[style] = true
			styles = append(styles, style)
		}
	}

	return types.HeadingStyle{
		Consistent: len(styles) <= 1,
		Styles:     styles,
	}
}
