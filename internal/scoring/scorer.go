// Package scoring grades a resume's formatting fingerprint, either against
// fixed heuristics or relative to a cohort of reference fingerprints.
package scoring

import (
	"github.com/jonathan/resume-analyzer/internal/patterns"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// baseScore is the starting score before deductions. Deductions are
// additive and independent; the final score is clamped to [0,100].
const baseScore = 100

// Result is the outcome of scoring one fingerprint.
type Result struct {
	Score          int                          `json:"score"` // 0-100
	Suggestions    []types.FormattingSuggestion `json:"suggestions"`
	ReferenceCount int                          `json:"reference_count"`
}

// Scorer grades a candidate fingerprint. Implementations are pure: no state
// survives between calls and concurrent use needs no locking.
type Scorer interface {
	Score(user types.FormattingPatterns) Result
}

// New selects a scoring strategy from cohort availability. References with a
// nil pattern payload are filtered out first; if nothing valid remains the
// standalone heuristic strategy is used.
func New(refs []types.ReferenceFingerprint) Scorer {
	valid := make([]types.ReferenceFingerprint, 0, len(refs))
	for _, ref := range refs {
		if ref.Patterns != nil {
			valid = append(valid, ref)
		}
	}

	if len(valid) == 0 {
		return &standaloneScorer{}
	}
	return &cohortScorer{refs: valid}
}

// Key sections every resume is expected to carry.
var keySections = []string{patterns.SectionExperience, patterns.SectionEducation, patterns.SectionSkills}

// clampScore bounds a post-deduction score to [0,100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > baseScore {
		return baseScore
	}
	return score
}

// missingKeySections lists the key sections absent from a fingerprint.
func missingKeySections(user types.FormattingPatterns) []string {
	var missing []string
	for _, section := range keySections {
		if !user.HasSection(section) {
			missing = append(missing, section)
		}
	}
	return missing
}
