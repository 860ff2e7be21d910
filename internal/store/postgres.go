package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// ReferenceStore is a PostgreSQL-backed CohortStore. Fingerprints live in a
// reference_resumes table with the pattern payload as JSONB.
type ReferenceStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*ReferenceStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &ReferenceStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *ReferenceStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// buildReferenceQuery assembles the reference fetch statement with
// positional args for whichever filters are set. The limit is always the
// final arg.
func buildReferenceQuery(filters types.ReferenceFilters) (string, []any) {
	query := `SELECT id, title, industry, role_level, patterns
	          FROM reference_resumes`
	args := []any{}
	clause := ""

	if filters.Industry != "" {
		args = append(args, filters.Industry)
		clause = fmt.Sprintf(" WHERE industry = $%d", len(args))
	}
	if filters.RoleLevel != "" {
		args = append(args, filters.RoleLevel)
		if clause == "" {
			clause = fmt.Sprintf(" WHERE role_level = $%d", len(args))
		} else {
			clause += fmt.Sprintf(" AND role_level = $%d", len(args))
		}
	}

	args = append(args, MaxReferences)
	query += clause + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	return query, args
}

// FetchReferences retrieves up to MaxReferences reference fingerprints,
// optionally filtered by industry and role level. Rows whose pattern JSONB
// fails to decode are kept with a nil payload; the scorer factory filters
// those out before computing any statistic.
func (s *ReferenceStore) FetchReferences(ctx context.Context, filters types.ReferenceFilters) ([]types.ReferenceFingerprint, error) {
	query, args := buildReferenceQuery(filters)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch references: %w", err)
	}
	defer rows.Close()

	var refs []types.ReferenceFingerprint
	for rows.Next() {
		var ref types.ReferenceFingerprint
		var patternsJSON []byte

		if err := rows.Scan(&ref.ID, &ref.Title, &ref.Industry, &ref.RoleLevel, &patternsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan reference: %w", err)
		}

		if patternsJSON != nil {
			var patterns types.FormattingPatterns
			if err := json.Unmarshal(patternsJSON, &patterns); err == nil {
				ref.Patterns = &patterns
			}
		}

		refs = append(refs, ref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read references: %w", err)
	}

	return refs, nil
}
