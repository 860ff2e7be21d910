// Package suggest produces deterministic word-choice suggestions for resume
// text. It is the in-scope counterpart of the external free-text generator:
// everything it emits is anchored to text it has just seen.
package suggest

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/anchor"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// synonymEntry maps a weak verb to a stronger replacement. The table is an
// explicit ordered list so detection order is stable across runs.
type synonymEntry struct {
	Weak    string
	Strong  string
	Pattern *regexp.Regexp
}

func newEntry(weak, strong string) synonymEntry {
	return synonymEntry{
		Weak:    weak,
		Strong:  strong,
		Pattern: regexp.MustCompile(`(?i)\b` + weak + `\b`),
	}
}

var synonymTable = []synonymEntry{
	newEntry("helped", "drove"),
	newEntry("worked on", "delivered"),
	newEntry("responsible for", "owned"),
	newEntry("assisted", "supported delivery of"),
	newEntry("made", "built"),
	newEntry("used", "leveraged"),
	newEntry("did", "executed"),
	newEntry("handled", "managed"),
	newEntry("was involved in", "contributed to"),
	newEntry("participated in", "collaborated on"),
}

// Detect scans resume text line by line for weak verbs, emitting one
// anchored suggestion per line at most (first table entry wins). Ranges
// come from the shared resolver; since the matched text is a literal
// substring of the resume, the exact stage always anchors it.
func Detect(resumeText string) []types.AnchoredSuggestion {
	var suggestions []types.AnchoredSuggestion
	lines := strings.Split(resumeText, "\n")

	for _, line := range lines {
		for _, entry := range synonymTable {
			match := entry.Pattern.FindString(line)
			if match == "" {
				continue
			}

			r := anchor.Resolve(resumeText, match)
			if r.IsSentinel() {
				break
			}

			suggestions = append(suggestions, types.AnchoredSuggestion{
				ID:            uuid.NewString(),
				OriginalText:  match,
				SuggestedText: matchCase(match, entry.Strong),
				Reasoning:     "Stronger action verbs read as ownership rather than assistance.",
				Category:      "word_choice",
				Severity:      types.SeverityInfo,
				Type:          "synonym",
				TextRange:     r,
			})
			break // One suggestion per line, first match wins
		}
	}

	return suggestions
}

// matchCase carries a leading capital from the original over to the
// replacement so the suggestion drops into the sentence cleanly.
func matchCase(original, replacement string) string {
	if original == "" || replacement == "" {
		return replacement
	}
	first := original[0]
	if first >= 'A' && first <= 'Z' {
		return strings.ToUpper(replacement[:1]) + replacement[1:]
	}
	return replacement
}
