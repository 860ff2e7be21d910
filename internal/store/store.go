// Package store provides cohort access: reference resume fingerprints
// fetched fresh per scoring request. The engine treats any store failure as
// an empty cohort, so implementations may return errors freely.
package store

import (
	"context"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// MaxReferences caps a cohort fetch. Larger cohorts add latency without
// improving the statistics the scorer computes.
const MaxReferences = 50

// CohortStore fetches reference fingerprints for cohort-relative scoring.
type CohortStore interface {
	FetchReferences(ctx context.Context, filters types.ReferenceFilters) ([]types.ReferenceFingerprint, error)
}
