// Package feedback converts scorer output into the uniform feedback shape
// handed to callers, and merges anchored suggestions from multiple producers.
package feedback

import (
	"github.com/jonathan/resume-analyzer/internal/types"
)

// FormattingLayer tags feedback from this engine so callers can merge it
// with other diagnostic layers (semantic, LLM review) without collisions.
const FormattingLayer = 1

// remediations maps each scorer aspect to one canonical remediation phrase.
// Unmapped aspects carry no remediation text (nil), not an empty string.
var remediations = map[string]string{
	types.AspectPageCount:          "Tighten your content to match the expected page count; cut older or less relevant entries first.",
	types.AspectSummarySection:     "Open with a 2-3 sentence professional summary that states your role, years of experience, and focus.",
	types.AspectHeadingConsistency: "Pick one heading style (ALL CAPS or Title Case) and apply it to every section heading.",
	types.AspectDateConsistency:    "Use one date format (for example \"Jan 2022 - Mar 2024\") for every date range.",
	types.AspectQuantifiedMetrics:  "Add specific numbers, percentages, and dollar amounts to your accomplishments wherever you can.",
	types.AspectBulletPoints:       "Convert paragraph descriptions into concise bullet points starting with strong action verbs.",
	types.AspectBulletDensity:      "Keep each work entry to its 3-6 strongest bullets and fold the rest into them.",
	types.AspectMissingSections:    "Add the standard Experience, Education, and Skills sections so screeners can find them.",
	types.AspectSectionOrder:       "Reorder your sections to match the convention for your field.",
}

// Normalize converts scorer suggestions into the uniform feedback shape.
// Severity, message, and values are copied through unchanged.
func Normalize(suggestions []types.FormattingSuggestion) []types.FeedbackItem {
	items := make([]types.FeedbackItem, 0, len(suggestions))
	for _, s := range suggestions {
		item := types.FeedbackItem{
			Aspect:            s.Aspect,
			Message:           s.Message,
			Severity:          s.Severity,
			UserValue:         s.UserValue,
			ReferenceValue:    s.ReferenceValue,
			PercentageSupport: s.PercentageSupport,
			Layer:             FormattingLayer,
		}
		if action, ok := remediations[s.Aspect]; ok {
			item.RecommendedAction = &action
		}
		items = append(items, item)
	}
	return items
}
