package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/patterns"
	"github.com/jonathan/resume-analyzer/internal/stats"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Cohort-relative deductions and support bars. Every threshold is gated on
// the cohort itself clearing a support bar before it is used against the
// candidate, so thin or inconsistent reference data stays silent.
const (
	cohortDeductPageFar     = 15
	cohortDeductPageNear    = 8
	cohortDeductNoSummary   = 10
	cohortDeductOrder       = 5
	cohortDeductNoBullets   = 12
	cohortDeductDensity     = 5
	cohortDeductZeroMetrics = 12
	cohortDeductFewMetrics  = 8
	cohortDeductHeadings    = 8
	cohortDeductDates       = 6
	cohortDeductMissing     = 5

	// modeCoverageBar is the percent of the cohort required at the
	// page-count mode; sectionPresenceBar is the percent presence required
	// before a section enters the common order.
	modeCoverageBar    = 60
	summarySupportBar  = 60
	consistencyBar     = 50
	bulletUsageBar     = 50
	sectionPresenceBar = 30
	densityDelta       = 3.0
	densityBandwidth   = 2.0
	metricsRatioCutoff = 0.5
)

// cohortScorer grades a fingerprint relative to reference fingerprints.
// refs is borrowed, already filtered for nil payloads, and never mutated.
type cohortScorer struct {
	refs []types.ReferenceFingerprint
}

func (s *cohortScorer) Score(user types.FormattingPatterns) Result {
	score := baseScore
	var suggestions []types.FormattingSuggestion

	apply := func(deduction int, sugg types.FormattingSuggestion) {
		score -= deduction
		suggestions = append(suggestions, sugg)
	}

	if deduction, sugg, ok := s.checkPageCount(user); ok {
		apply(deduction, sugg)
	}
	if sugg, ok := s.checkSummary(user); ok {
		apply(cohortDeductNoSummary, sugg)
	}
	if sugg, ok := s.checkSectionOrder(user); ok {
		apply(cohortDeductOrder, sugg)
	}
	if deduction, sugg, ok := s.checkBullets(user); ok {
		apply(deduction, sugg)
	}
	if deduction, sugg, ok := s.checkQuantifiedMetrics(user); ok {
		apply(deduction, sugg)
	}
	if sugg, ok := s.checkHeadingConsistency(user); ok {
		apply(cohortDeductHeadings, sugg)
	}
	if sugg, ok := s.checkDateConsistency(user); ok {
		apply(cohortDeductDates, sugg)
	}
	if deduction, sugg, ok := s.checkKeySections(user); ok {
		apply(deduction, sugg)
	}

	return Result{
		Score:          clampScore(score),
		Suggestions:    suggestions,
		ReferenceCount: len(s.refs),
	}
}

// checkPageCount flags only when the cohort mode is dominant (≥60% coverage)
// and the candidate differs from it. Overshooting the mode by more than one
// page costs more than a near miss.
func (s *cohortScorer) checkPageCount(user types.FormattingPatterns) (int, types.FormattingSuggestion, bool) {
	pages := make([]int, 0, len(s.refs))
	for _, ref := range s.refs {
		pages = append(pages, ref.Patterns.PageCount)
	}

	mode, coverage := stats.ModeCoverage(pages)
	if coverage < modeCoverageBar || user.PageCount == mode {
		return 0, types.FormattingSuggestion{}, false
	}

	deduction := cohortDeductPageNear
	if user.PageCount > mode+1 {
		deduction = cohortDeductPageFar
	}

	return deduction, types.FormattingSuggestion{
		Aspect:            types.AspectPageCount,
		UserValue:         fmt.Sprintf("%d pages", user.PageCount),
		ReferenceValue:    fmt.Sprintf("%d pages", mode),
		PercentageSupport: coverage,
		Message:           fmt.Sprintf("Similar resumes are typically %d pages; yours is %d.", mode, user.PageCount),
		Severity:          types.SeverityWarning,
	}, true
}

func (s *cohortScorer) checkSummary(user types.FormattingPatterns) (types.FormattingSuggestion, bool) {
	if user.HasSummary {
		return types.FormattingSuggestion{}, false
	}

	withSummary := 0
	for _, ref := range s.refs {
		if ref.Patterns.HasSummary {
			withSummary++
		}
	}
	support := stats.PercentWhere(len(s.refs), withSummary)
	if support < summarySupportBar {
		return types.FormattingSuggestion{}, false
	}

	return types.FormattingSuggestion{
		Aspect:            types.AspectSummarySection,
		UserValue:         "no summary section",
		ReferenceValue:    "summary section present",
		PercentageSupport: support,
		Message:           fmt.Sprintf("%d%% of similar resumes open with a summary section; yours has none.", support),
		Severity:          types.SeverityWarning,
	}, true
}

// checkSectionOrder derives the cohort's common section order from average
// positions (restricted to sections present in ≥30% of the cohort), then
// reports only the first adjacent-pair ordering conflict. Stopping at the
// first conflict is a deliberate anti-noise policy.
func (s *cohortScorer) checkSectionOrder(user types.FormattingPatterns) (types.FormattingSuggestion, bool) {
	common := s.commonSectionOrder()

	for i := 0; i+1 < len(common); i++ {
		first, second := common[i], common[i+1]
		userFirst := user.SectionIndex(first)
		userSecond := user.SectionIndex(second)
		if userFirst < 0 || userSecond < 0 {
			continue
		}
		if userSecond < userFirst {
			orderedCount := 0
			for _, ref := range s.refs {
				a := ref.Patterns.SectionIndex(first)
				b := ref.Patterns.SectionIndex(second)
				if a >= 0 && b >= 0 && a < b {
					orderedCount++
				}
			}

			return types.FormattingSuggestion{
				Aspect:            types.AspectSectionOrder,
				UserValue:         fmt.Sprintf("%s before %s", second, first),
				ReferenceValue:    fmt.Sprintf("%s before %s", first, second),
				PercentageSupport: stats.PercentWhere(len(s.refs), orderedCount),
				Message:           fmt.Sprintf("Similar resumes usually place %s before %s.", first, second),
				Severity:          types.SeverityInfo,
			}, true
		}
	}

	return types.FormattingSuggestion{}, false
}

// commonSectionOrder sorts canonical sections by their cohort-wide average
// position, keeping only sections present in enough of the cohort.
func (s *cohortScorer) commonSectionOrder() []string {
	type sectionStat struct {
		name        string
		avgPosition float64
	}

	var ordered []sectionStat
	for _, name := range patterns.CanonicalSections() {
		present := 0
		positionSum := 0
		for _, ref := range s.refs {
			if idx := ref.Patterns.SectionIndex(name); idx >= 0 {
				present++
				positionSum += idx
			}
		}
		if present == 0 || stats.PercentWhere(len(s.refs), present) < sectionPresenceBar {
			continue
		}
		ordered = append(ordered, sectionStat{
			name:        name,
			avgPosition: float64(positionSum) / float64(present),
		})
	}

	sort.SliceStable(ordered, func(a, b int) bool {
		return ordered[a].avgPosition < ordered[b].avgPosition
	})

	names := make([]string, 0, len(ordered))
	for _, stat := range ordered {
		names = append(names, stat.name)
	}
	return names
}

func (s *cohortScorer) checkBullets(user types.FormattingPatterns) (int, types.FormattingSuggestion, bool) {
	if user.BulletStyle.TotalBullets == 0 {
		withBullets := 0
		for _, ref := range s.refs {
			if ref.Patterns.BulletStyle.TotalBullets > 0 {
				withBullets++
			}
		}
		support := stats.PercentWhere(len(s.refs), withBullets)
		if support < bulletUsageBar {
			return 0, types.FormattingSuggestion{}, false
		}

		return cohortDeductNoBullets, types.FormattingSuggestion{
			Aspect:            types.AspectBulletPoints,
			UserValue:         "no bullet points",
			ReferenceValue:    "bulleted accomplishments",
			PercentageSupport: support,
			Message:           fmt.Sprintf("%d%% of similar resumes use bullet points; yours has none.", support),
			Severity:          types.SeverityCritical,
		}, true
	}

	averages := make([]float64, 0, len(s.refs))
	for _, ref := range s.refs {
		averages = append(averages, ref.Patterns.BulletStyle.AvgBulletsPerEntry)
	}
	cohortAvg := stats.AverageFloat(averages)

	if math.Abs(user.BulletStyle.AvgBulletsPerEntry-cohortAvg) <= densityDelta {
		return 0, types.FormattingSuggestion{}, false
	}

	within := 0
	for _, avg := range averages {
		if math.Abs(avg-cohortAvg) <= densityBandwidth {
			within++
		}
	}

	return cohortDeductDensity, types.FormattingSuggestion{
		Aspect:            types.AspectBulletDensity,
		UserValue:         fmt.Sprintf("%.1f bullets per entry", user.BulletStyle.AvgBulletsPerEntry),
		ReferenceValue:    fmt.Sprintf("%.1f bullets per entry", cohortAvg),
		PercentageSupport: stats.PercentWhere(len(averages), within),
		Message:           fmt.Sprintf("Similar resumes average %.1f bullets per entry; yours average %.1f.", cohortAvg, user.BulletStyle.AvgBulletsPerEntry),
		Severity:          types.SeverityInfo,
	}, true
}

func (s *cohortScorer) checkQuantifiedMetrics(user types.FormattingPatterns) (int, types.FormattingSuggestion, bool) {
	counts := make([]int, 0, len(s.refs))
	for _, ref := range s.refs {
		counts = append(counts, ref.Patterns.QuantifiedMetrics.Count)
	}
	cohortAvg := stats.Average(counts)

	if float64(user.QuantifiedMetrics.Count) >= cohortAvg*metricsRatioCutoff {
		return 0, types.FormattingSuggestion{}, false
	}

	deduction := cohortDeductFewMetrics
	severity := types.SeverityWarning
	if user.QuantifiedMetrics.Count == 0 {
		deduction = cohortDeductZeroMetrics
		severity = types.SeverityCritical
	}

	higher := 0
	for _, count := range counts {
		if count > user.QuantifiedMetrics.Count {
			higher++
		}
	}

	return deduction, types.FormattingSuggestion{
		Aspect:            types.AspectQuantifiedMetrics,
		UserValue:         fmt.Sprintf("%d quantified metrics", user.QuantifiedMetrics.Count),
		ReferenceValue:    fmt.Sprintf("%.1f on average", cohortAvg),
		PercentageSupport: stats.PercentWhere(len(counts), higher),
		Message:           "Similar resumes quantify more of their accomplishments than yours does.",
		Severity:          severity,
	}, true
}

func (s *cohortScorer) checkHeadingConsistency(user types.FormattingPatterns) (types.FormattingSuggestion, bool) {
	if user.HeadingStyle.Consistent {
		return types.FormattingSuggestion{}, false
	}

	consistent := 0
	for _, ref := range s.refs {
		if ref.Patterns.HeadingStyle.Consistent {
			consistent++
		}
	}
	support := stats.PercentWhere(len(s.refs), consistent)
	if support < consistencyBar {
		return types.FormattingSuggestion{}, false
	}

	return types.FormattingSuggestion{
		Aspect:            types.AspectHeadingConsistency,
		UserValue:         strings.Join(user.HeadingStyle.Styles, ", "),
		ReferenceValue:    "one heading style",
		PercentageSupport: support,
		Message:           fmt.Sprintf("%d%% of similar resumes keep one heading style; yours mixes several.", support),
		Severity:          types.SeverityWarning,
	}, true
}

func (s *cohortScorer) checkDateConsistency(user types.FormattingPatterns) (types.FormattingSuggestion, bool) {
	if user.DateFormat.Consistent {
		return types.FormattingSuggestion{}, false
	}

	consistent := 0
	for _, ref := range s.refs {
		if ref.Patterns.DateFormat.Consistent {
			consistent++
		}
	}
	support := stats.PercentWhere(len(s.refs), consistent)
	if support < consistencyBar {
		return types.FormattingSuggestion{}, false
	}

	return types.FormattingSuggestion{
		Aspect:            types.AspectDateConsistency,
		UserValue:         strings.Join(user.DateFormat.Formats, ", "),
		ReferenceValue:    "one date format",
		PercentageSupport: support,
		Message:           fmt.Sprintf("%d%% of similar resumes use one date format; yours mixes several.", support),
		Severity:          types.SeverityWarning,
	}, true
}

// checkKeySections deducts per missing key section regardless of the cohort;
// only the reported support percentage comes from cohort data.
func (s *cohortScorer) checkKeySections(user types.FormattingPatterns) (int, types.FormattingSuggestion, bool) {
	missing := missingKeySections(user)
	if len(missing) == 0 {
		return 0, types.FormattingSuggestion{}, false
	}

	allPresent := 0
	for _, ref := range s.refs {
		hasAll := true
		for _, section := range keySections {
			if !ref.Patterns.HasSection(section) {
				hasAll = false
				break
			}
		}
		if hasAll {
			allPresent++
		}
	}

	return cohortDeductMissing * len(missing), types.FormattingSuggestion{
		Aspect:            types.AspectMissingSections,
		UserValue:         "missing: " + strings.Join(missing, ", "),
		ReferenceValue:    strings.Join(keySections, ", ") + " present",
		PercentageSupport: stats.PercentWhere(len(s.refs), allPresent),
		Message:           fmt.Sprintf("Your resume is missing standard sections: %s.", strings.Join(missing, ", ")),
		Severity:          types.SeverityCritical,
	}, true
}
