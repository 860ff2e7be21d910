// Package engine wires the formatting core together: fingerprint
// extraction, cohort-relative scoring, feedback normalization, and
// suggestion anchoring. Every entry point is a pure pass over in-memory
// data; the only collaborator that can fail is the cohort store, and its
// failure degrades to standalone scoring rather than surfacing an error.
package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/anchor"
	"github.com/jonathan/resume-analyzer/internal/feedback"
	"github.com/jonathan/resume-analyzer/internal/patterns"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/store"
	"github.com/jonathan/resume-analyzer/internal/suggest"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// anchorConcurrency bounds parallel anchoring of generator suggestions.
const anchorConcurrency = 4

// Analysis is the full result of analyzing one resume.
type Analysis struct {
	Fingerprint    types.FormattingPatterns `json:"fingerprint"`
	Score          int                      `json:"score"`
	Feedback       []types.FeedbackItem     `json:"feedback"`
	ReferenceCount int                      `json:"reference_count"`
}

// Engine orchestrates the formatting core. A nil cohort store means
// standalone scoring only.
type Engine struct {
	cohort store.CohortStore
}

// New creates an Engine. cohort may be nil.
func New(cohort store.CohortStore) *Engine {
	return &Engine{cohort: cohort}
}

// Analyze extracts a fingerprint from resume text, scores it against
// whatever cohort the store can supply, and normalizes the suggestions into
// feedback items. A pageCountHint of 0 means "estimate from word count".
func (e *Engine) Analyze(ctx context.Context, resumeText string, pageCountHint int, filters types.ReferenceFilters) Analysis {
	// 1. Extract the formatting fingerprint
	fingerprint := patterns.Extract(resumeText, pageCountHint)

	// 2. Fetch the cohort; any store failure degrades to an empty cohort
	var refs []types.ReferenceFingerprint
	if e.cohort != nil {
		if fetched, err := e.cohort.FetchReferences(ctx, filters); err == nil {
			refs = fetched
		}
	}

	// 3. Score with the strategy the cohort supports
	result := scoring.New(refs).Score(fingerprint)

	// 4. Normalize scorer suggestions into the uniform feedback shape
	return Analysis{
		Fingerprint:    fingerprint,
		Score:          result.Score,
		Feedback:       feedback.Normalize(result.Suggestions),
		ReferenceCount: result.ReferenceCount,
	}
}

// AnchorSuggestions anchors external generator suggestions into the resume
// text, runs the synonym detector, and merges both with any pre-identified
// deterministic suggestions. Generator items are anchored concurrently; the
// resolver is pure, so parallel use needs no locking. Items that cannot be
// anchored are dropped by the merge step, never surfaced.
func (e *Engine) AnchorSuggestions(ctx context.Context, resumeText string, deterministic []types.AnchoredSuggestion, generated []types.GeneratorSuggestion) ([]types.AnchoredSuggestion, error) {
	anchored := make([]types.AnchoredSuggestion, len(generated))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(anchorConcurrency)

	for i, gen := range generated {
		i, gen := i, gen
		g.Go(func() error {
			if err := gen.Validate(); err != nil {
				// Malformed items become unanchored sentinels; the merge
				// step drops them.
				anchored[i] = types.AnchoredSuggestion{OriginalText: gen.OriginalText}
				return nil
			}
			anchored[i] = types.AnchoredSuggestion{
				OriginalText:  gen.OriginalText,
				SuggestedText: gen.SuggestedText,
				Reasoning:     gen.Reasoning,
				Category:      gen.Category,
				Severity:      gen.Severity,
				Type:          gen.Type,
				TextRange:     anchor.Resolve(resumeText, gen.OriginalText),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Items whose originalText was empty are out of contract; drop them
	// here since the sentinel-range rule in the merge only covers items
	// with a non-empty originalText.
	kept := anchored[:0]
	for _, a := range anchored {
		if a.OriginalText != "" {
			kept = append(kept, a)
		}
	}

	synonyms := suggest.Detect(resumeText)

	return feedback.Merge(synonyms, deterministic, kept), nil
}
