package types

import "github.com/google/uuid"

// ReferenceFingerprint is a FormattingPatterns fingerprint tagged with cohort
// metadata. Cohort entries are borrowed, read-only data: they are fetched
// fresh per scoring request and never mutated by the engine.
type ReferenceFingerprint struct {
	ID        uuid.UUID           `json:"id"`
	Title     string              `json:"title"`
	Industry  string              `json:"industry"`
	RoleLevel string              `json:"role_level"`
	Patterns  *FormattingPatterns `json:"patterns"` // Nil payloads are filtered out before any statistic is computed
}

// ReferenceFilters narrows a cohort fetch. Empty fields match everything.
type ReferenceFilters struct {
	Industry  string `json:"industry,omitempty"`
	RoleLevel string `json:"role_level,omitempty"`
}
