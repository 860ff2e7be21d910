package types

import (
	"github.com/go-playground/validator/v10"
)

// Severity levels shared by all suggestion shapes.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// Aspect tags emitted by the formatting scorer.
const (
	AspectPageCount          = "page_count"
	AspectSummarySection     = "summary_section"
	AspectHeadingConsistency = "heading_consistency"
	AspectDateConsistency    = "date_consistency"
	AspectQuantifiedMetrics  = "quantified_metrics"
	AspectBulletPoints       = "bullet_points"
	AspectBulletDensity      = "bullet_density"
	AspectMissingSections    = "missing_sections"
	AspectSectionOrder       = "section_order"
)

// FormattingSuggestion is one diagnostic finding produced by the scorer.
// PercentageSupport is either a cohort statistic or, in standalone mode,
// a fixed best-practice prior.
type FormattingSuggestion struct {
	Aspect            string `json:"aspect"`
	UserValue         string `json:"user_value"`
	ReferenceValue    string `json:"reference_value"`
	PercentageSupport int    `json:"percentage_support"` // 0-100
	Message           string `json:"message"`
	Severity          string `json:"severity"`
}

// TextRange is a half-open character range [Start, End) into the source resume text.
type TextRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// IsSentinel reports whether the range is the {0,0} "could not anchor" value.
// Callers must treat it as a failure signal, never as a zero-width match.
func (r TextRange) IsSentinel() bool {
	return r.Start == 0 && r.End == 0
}

// AnchoredSuggestion is a free-text edit proposal resolved to a character
// range in the source resume. The range is the {0,0} sentinel when the
// proposal could not be anchored.
type AnchoredSuggestion struct {
	ID            string    `json:"id,omitempty"`
	OriginalText  string    `json:"original_text"`
	SuggestedText string    `json:"suggested_text"`
	Reasoning     string    `json:"reasoning,omitempty"`
	Category      string    `json:"category"`
	Severity      string    `json:"severity"`
	Type          string    `json:"type"`
	TextRange     TextRange `json:"text_range"`
}

// GeneratorSuggestion is the raw shape supplied by the external free-text
// suggestion generator (deterministic or LLM-based). It carries no range;
// anchoring is the engine's job.
type GeneratorSuggestion struct {
	OriginalText  string `json:"original_text" validate:"required"`
	SuggestedText string `json:"suggested_text" validate:"required"`
	Reasoning     string `json:"reasoning,omitempty"`
	Category      string `json:"category,omitempty"`
	Severity      string `json:"severity,omitempty" validate:"omitempty,oneof=critical warning info"`
	Type          string `json:"type,omitempty"`
}

// Validate validates the GeneratorSuggestion using the validator.
func (s *GeneratorSuggestion) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// FeedbackItem is the uniform feedback shape handed to callers after
// normalization. Layer 1 is the formatting layer; other layers (semantic,
// LLM review) are produced by collaborators outside this engine.
type FeedbackItem struct {
	Aspect            string  `json:"aspect"`
	Message           string  `json:"message"`
	Severity          string  `json:"severity"`
	UserValue         string  `json:"user_value"`
	ReferenceValue    string  `json:"reference_value"`
	PercentageSupport int     `json:"percentage_support"`
	RecommendedAction *string `json:"recommended_action,omitempty"` // Nil when no remediation is mapped for the aspect
	Layer             int     `json:"layer"`
}
