package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// MemoryStore is an in-memory CohortStore used by tests and by the CLI when
// a cohort is supplied as a JSON file instead of a database.
type MemoryStore struct {
	refs []types.ReferenceFingerprint
}

// NewMemoryStore wraps a fixed reference set. The slice is borrowed, not copied.
func NewMemoryStore(refs []types.ReferenceFingerprint) *MemoryStore {
	return &MemoryStore{refs: refs}
}

// LoadMemoryStore reads a JSON array of reference fingerprints from a file.
func LoadMemoryStore(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cohort file %s: %w", path, err)
	}

	var refs []types.ReferenceFingerprint
	if err := json.Unmarshal(data, &refs); err != nil {
		return nil, fmt.Errorf("failed to parse cohort JSON: %w", err)
	}

	return NewMemoryStore(refs), nil
}

// FetchReferences applies the filters and cap in memory.
func (s *MemoryStore) FetchReferences(_ context.Context, filters types.ReferenceFilters) ([]types.ReferenceFingerprint, error) {
	var refs []types.ReferenceFingerprint
	for _, ref := range s.refs {
		if filters.Industry != "" && ref.Industry != filters.Industry {
			continue
		}
		if filters.RoleLevel != "" && ref.RoleLevel != filters.RoleLevel {
			continue
		}
		refs = append(refs, ref)
		if len(refs) == MaxReferences {
			break
		}
	}
	return refs, nil
}
