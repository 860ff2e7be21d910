package patterns

import (
	"regexp"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// bulletPattern pairs a glyph family tag with the regex that detects it at
// the start of a line. A line is counted once, under the first matching family.
type bulletPattern struct {
	Tag     string
	Pattern *regexp.Regexp
}

var bulletCatalogue = []bulletPattern{
	{"dash", regexp.MustCompile(`^\s*[-–—]\s+`)},
	{"dot", regexp.MustCompile(`^\s*[•·◦]\s*`)},
	{"asterisk", regexp.MustCompile(`^\s*\*\s+`)},
	{"number", regexp.MustCompile(`^\s*\d+[.)]\s+`)},
	{"arrow", regexp.MustCompile(`^\s*[>➢➤→]\s*`)},
}

// monthTokenPattern counts date tokens used to estimate work-entry count.
// Each date range contributes a start and an end token, so entries ≈ tokens/2.
var monthTokenPattern = regexp.MustCompile(`(?i)\b(jan(uary)?|feb(ruary)?|mar(ch)?|apr(il)?|may|jun(e)?|jul(y)?|aug(ust)?|sep(tember)?|oct(ober)?|nov(ember)?|dec(ember)?)\b[\s.,]*\d{4}|\b\d{1,2}[/-]\d{4}\b`)

// detectBullets classifies bullet lines by glyph family and estimates bullet
// density per work entry.
func detectBullets(lines []string, fullText string) types.BulletStyle {
	var styleTags []string
	seen := make(map[string]bool, len(bulletCatalogue))
	total := 0

	for _, line := range lines {
		for _, entry := range bulletCatalogue {
			if entry.Pattern.MatchString(line) {
				total++
				if !seen[entry.Tag] {
					seen[entry.Tag] = true
					styleTags = append(styleTags, entry.Tag)
				}
				break
			}
		}
	}

	entries := estimateEntryCount(fullText)
	avg := 0.0
	if total > 0 {
		avg = float64(total) / float64(entries)
	}

	return types.BulletStyle{
		Types:              styleTags,
		AvgBulletsPerEntry: avg,
		TotalBullets:       total,
	}
}

// estimateEntryCount derives a work-entry count from date tokens, treating
// each date range as a start+end pair. Defaults to 1 when no pairs are found.
func estimateEntryCount(text string) int {
	tokens := len(monthTokenPattern.FindAllString(text, -1))
	entries := tokens / 2
	if entries < 1 {
		return 1
	}
	return entries
}
