package patterns

import (
	"regexp"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// metricPattern pairs a quantified-metric family tag with its regex. The
// families are scanned independently; examples are deduplicated across
// families so no single family dominates the list.
type metricPattern struct {
	Tag     string
	Pattern *regexp.Regexp
}

var metricCatalogue = []metricPattern{
	{"percentage", regexp.MustCompile(`\d+(\.\d+)?%`)},
	{"currency", regexp.MustCompile(`[$€£]\s?\d+(\.\d+)?\s?([KkMmBb]|million|billion|thousand)?`)},
	{"thousands", regexp.MustCompile(`\b\d{1,3}(,\d{3})+\b`)},
	{"multiplier", regexp.MustCompile(`\b\d+(\.\d+)?[xX]\b`)},
	{"count_noun", regexp.MustCompile(`(?i)\b\d+\+?\s+(users|customers|clients|employees|engineers|people|teams|projects|products|releases|deployments|servers|requests|transactions|tickets|reports|accounts)\b`)},
}

// maxMetricExamples caps how many unique matched substrings are retained.
const maxMetricExamples = 10

// detectQuantifiedMetrics scans the metric families over the full text. The
// first 10 unique matches are kept as examples, and Count is the number of
// unique examples rather than total occurrences.
func detectQuantifiedMetrics(text string) types.QuantifiedMetrics {
	var examples []string
	seen := make(map[string]bool)

	for _, family := range metricCatalogue {
		for _, match := range family.Pattern.FindAllString(text, -1) {
			if seen[match] {
				continue
			}
			seen[match] = true
			if len(examples) < maxMetricExamples {
				examples = append(examples, match)
			}
		}
	}

	return types.QuantifiedMetrics{
		Count:    len(examples),
		Examples: examples,
	}
}
