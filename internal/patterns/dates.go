package patterns

import (
	"regexp"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Date format tags.
const (
	DateSlash     = "MM/YYYY"
	DateHyphen    = "MM-YYYY"
	DateFullMonth = "Month YYYY"
	DateAbbrMonth = "Mon YYYY"
	DateBareYear  = "YYYY"
)

var (
	slashDatePattern  = regexp.MustCompile(`\b\d{1,2}/\d{4}\b`)
	hyphenDatePattern = regexp.MustCompile(`\b\d{1,2}-\d{4}\b`)
	fullMonthPattern = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{4}\b`)
	// "May" is simultaneously the full and abbreviated form, so the
	// abbreviated catalogue deliberately omits it: a lone "May 2020"
	// classifies as "Month YYYY", not "Mon YYYY".
	abbrMonthPattern = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec)\.?\s+\d{4}\b`)
	bareYearPattern  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// detectDateFormat classifies date notation across the text. A lone bare
// 4-digit year counts as "YYYY" only when nothing else matched. Consistency
// means at most one distinct format detected.
func detectDateFormat(text string) types.DateFormat {
	var formats []string
	add := func(tag string) {
		for _, f := range formats {
			if f == tag {
				return
			}
		}
		formats = append(formats, tag)
	}

	if slashDatePattern.MatchString(text) {
		add(DateSlash)
	}
	if hyphenDatePattern.MatchString(text) {
		add(DateHyphen)
	}

	if fullMonthPattern.MatchString(text) {
		add(DateFullMonth)
	}
	if abbrMonthPattern.MatchString(text) {
		add(DateAbbrMonth)
	}

	if len(formats) == 0 && bareYearPattern.MatchString(text) {
		add(DateBareYear)
	}

	return types.DateFormat{
		Formats:    formats,
		Consistent: len(formats) <= 1,
	}
}
