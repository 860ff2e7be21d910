package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Standalone deductions, applied against the 100 baseline.
const (
	deductPageCount      = 15
	deductNoSummary      = 10
	deductHeadings       = 10
	deductDates          = 8
	deductFewMetrics     = 10
	deductNoBullets      = 12
	deductBulletOverload = 5
	deductMissingSection = 5
	maxStandalonePages   = 2
	minQuantifiedMetrics = 3
	maxBulletsPerEntry   = 7.0
)

// Best-practice support priors used when no cohort is available. These are
// fixed domain estimates, not statistics.
const (
	supportPageCount     = 90
	supportSummary       = 75
	supportHeadings      = 80
	supportDates         = 70
	supportMetrics       = 65
	supportBullets       = 85
	supportBulletDensity = 60
	supportKeySections   = 95
)

// standaloneScorer applies fixed formatting heuristics. Used whenever no
// valid reference fingerprint is available.
type standaloneScorer struct{}

func (s *standaloneScorer) Score(user types.FormattingPatterns) Result {
	score := baseScore
	var suggestions []types.FormattingSuggestion

	if user.PageCount > maxStandalonePages {
		score -= deductPageCount
		suggestions = append(suggestions, types.FormattingSuggestion{
			Aspect:            types.AspectPageCount,
			UserValue:         fmt.Sprintf("%d pages", user.PageCount),
			ReferenceValue:    fmt.Sprintf("%d pages or fewer", maxStandalonePages),
			PercentageSupport: supportPageCount,
			Message:           fmt.Sprintf("Your resume is %d pages; most effective resumes stay within %d pages.", user.PageCount, maxStandalonePages),
			Severity:          types.SeverityWarning,
		})
	}

	if !user.HasSummary {
		score -= deductNoSummary
		suggestions = append(suggestions, types.FormattingSuggestion{
			Aspect:            types.AspectSummarySection,
			UserValue:         "no summary section",
			ReferenceValue:    "summary section present",
			PercentageSupport: supportSummary,
			Message:           "Your resume has no summary section; a short professional summary helps recruiters orient quickly.",
			Severity:          types.SeverityWarning,
		})
	}

	if !user.HeadingStyle.Consistent {
		score -= deductHeadings
		suggestions = append(suggestions, types.FormattingSuggestion{
			Aspect:            types.AspectHeadingConsistency,
			UserValue:         strings.Join(user.HeadingStyle.Styles, ", "),
			ReferenceValue:    "one heading style",
			PercentageSupport: supportHeadings,
			Message:           "Your section headings mix capitalization styles; pick one style and apply it throughout.",
			Severity:          types.SeverityWarning,
		})
	}

	if !user.DateFormat.Consistent {
		score -= deductDates
		suggestions = append(suggestions, types.FormattingSuggestion{
			Aspect:            types.AspectDateConsistency,
			UserValue:         strings.Join(user.DateFormat.Formats, ", "),
			ReferenceValue:    "one date format",
			PercentageSupport: supportDates,
			Message:           "Your resume mixes date formats; use the same format for every date range.",
			Severity:          types.SeverityWarning,
		})
	}

	if user.QuantifiedMetrics.Count < minQuantifiedMetrics {
		score -= deductFewMetrics
		severity := types.SeverityWarning
		if user.QuantifiedMetrics.Count == 0 {
			severity = types.SeverityCritical
		}
		suggestions = append(suggestions, types.FormattingSuggestion{
			Aspect:            types.AspectQuantifiedMetrics,
			UserValue:         fmt.Sprintf("%d quantified metrics", user.QuantifiedMetrics.Count),
			ReferenceValue:    fmt.Sprintf("%d or more", minQuantifiedMetrics),
			PercentageSupport: supportMetrics,
			Message:           "Your resume has few measurable results; numbers make accomplishments concrete.",
			Severity:          severity,
		})
	}

	if user.BulletStyle.TotalBullets == 0 {
		score -= deductNoBullets
		suggestions = append(suggestions, types.FormattingSuggestion{
			Aspect:            types.AspectBulletPoints,
			UserValue:         "no bullet points",
			ReferenceValue:    "bulleted accomplishments",
			PercentageSupport: supportBullets,
			Message:           "Your resume has no bullet points; dense paragraphs are hard to scan.",
			Severity:          types.SeverityCritical,
		})
	} else if user.BulletStyle.AvgBulletsPerEntry > maxBulletsPerEntry {
		score -= deductBulletOverload
		suggestions = append(suggestions, types.FormattingSuggestion{
			Aspect:            types.AspectBulletDensity,
			UserValue:         fmt.Sprintf("%.1f bullets per entry", user.BulletStyle.AvgBulletsPerEntry),
			ReferenceValue:    fmt.Sprintf("%.0f or fewer per entry", maxBulletsPerEntry),
			PercentageSupport: supportBulletDensity,
			Message:           "Your work entries average many bullets each; trim to the strongest points.",
			Severity:          types.SeverityInfo,
		})
	}

	if missing := missingKeySections(user); len(missing) > 0 {
		score -= deductMissingSection * len(missing)
		suggestions = append(suggestions, types.FormattingSuggestion{
			Aspect:            types.AspectMissingSections,
			UserValue:         "missing: " + strings.Join(missing, ", "),
			ReferenceValue:    strings.Join(keySections, ", ") + " present",
			PercentageSupport: supportKeySections,
			Message:           fmt.Sprintf("Your resume is missing standard sections: %s.", strings.Join(missing, ", ")),
			Severity:          types.SeverityCritical,
		})
	}

	return Result{
		Score:          clampScore(score),
		Suggestions:    suggestions,
		ReferenceCount: 0,
	}
}
