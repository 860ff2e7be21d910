package feedback

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Merge combines anchored suggestions from the three producers into one
// ordered sequence. Producers are appended in reliability order: synonym
// detector first, then pre-identified deterministic issues, then external
// generator output. Duplicates (case-insensitive on OriginalText) keep
// the first-seen version. Generator items that could not be anchored (the
// {0,0} sentinel with a non-empty OriginalText) are dropped entirely: a
// suggestion that cannot be tied to real text is never surfaced.
func Merge(synonym, deterministic, generator []types.AnchoredSuggestion) []types.AnchoredSuggestion {
	seen := make(map[string]bool)
	merged := make([]types.AnchoredSuggestion, 0, len(synonym)+len(deterministic)+len(generator))

	add := func(s types.AnchoredSuggestion) {
		key := strings.ToLower(s.OriginalText)
		if seen[key] {
			return
		}
		seen[key] = true
		merged = append(merged, s)
	}

	for _, s := range synonym {
		add(s)
	}
	for _, s := range deterministic {
		add(s)
	}
	for _, s := range generator {
		if s.TextRange.IsSentinel() && s.OriginalText != "" {
			continue
		}
		add(s)
	}

	return merged
}
