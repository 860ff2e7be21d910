// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// BulletStyle summarizes bullet usage across a resume.
type BulletStyle struct {
	Types              []string `json:"types"`                 // Glyph families seen: "dash", "dot", "asterisk", "number", "arrow"
	AvgBulletsPerEntry float64  `json:"avg_bullets_per_entry"` // Total bullets / estimated work entries
	TotalBullets       int      `json:"total_bullets"`
}

// QuantifiedMetrics summarizes measurable-impact phrases found in a resume.
// Count is the number of unique examples retained, not total occurrences,
// so no single metric family dominates the example list.
type QuantifiedMetrics struct {
	Count    int      `json:"count"`
	Examples []string `json:"examples"` // At most 10 unique matched substrings
}

// HeadingStyle summarizes how section headings are capitalized.
type HeadingStyle struct {
	Consistent bool     `json:"consistent"` // True iff at most one distinct style observed
	Styles     []string `json:"styles"`     // "all_caps", "title_case", "sentence_case"
}

// DateFormat summarizes date notation used in a resume.
type DateFormat struct {
	Formats    []string `json:"formats"` // "MM/YYYY", "MM-YYYY", "Month YYYY", "Mon YYYY", "YYYY"
	Consistent bool     `json:"consistent"`
}

// FormattingPatterns is the formatting fingerprint of a single resume.
// It is a pure function of the input text (plus an optional page-count
// override): identical input always yields an identical fingerprint.
type FormattingPatterns struct {
	PageCount         int               `json:"page_count"` // Supplied hint or ceil(wordCount/500), minimum 1
	SectionOrder      []string          `json:"section_order"`
	BulletStyle       BulletStyle       `json:"bullet_style"`
	HasSummary        bool              `json:"has_summary"`
	QuantifiedMetrics QuantifiedMetrics `json:"quantified_metrics"`
	HeadingStyle      HeadingStyle      `json:"heading_style"`
	WhiteSpaceRatio   float64           `json:"white_space_ratio"` // Blank-line fraction in [0,1], 2 decimals
	DateFormat        DateFormat        `json:"date_format"`
	WordCount         int               `json:"word_count"`
	AvgWordsPerLine   int               `json:"avg_words_per_line"`
}

// HasSection reports whether the fingerprint's section order contains the given canonical name.
func (p *FormattingPatterns) HasSection(name string) bool {
	for _, s := range p.SectionOrder {
		if s == name {
			return true
		}
	}
	return false
}

// SectionIndex returns the position of a canonical section in the section order, or -1.
func (p *FormattingPatterns) SectionIndex(name string) int {
	for i, s := range p.SectionOrder {
		if s == name {
			return i
		}
	}
	return -1
}
