package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func ref(industry, roleLevel string) types.ReferenceFingerprint {
	return types.ReferenceFingerprint{
		ID:        uuid.New(),
		Title:     "Reference",
		Industry:  industry,
		RoleLevel: roleLevel,
		Patterns:  &types.FormattingPatterns{PageCount: 1},
	}
}

func TestMemoryStore_Filters(t *testing.T) {
	s := NewMemoryStore([]types.ReferenceFingerprint{
		ref("tech", "senior"),
		ref("tech", "junior"),
		ref("finance", "senior"),
	})

	testCases := []struct {
		name     string
		filters  types.ReferenceFilters
		expected int
	}{
		{"no filters", types.ReferenceFilters{}, 3},
		{"industry only", types.ReferenceFilters{Industry: "tech"}, 2},
		{"role level only", types.ReferenceFilters{RoleLevel: "senior"}, 2},
		{"both", types.ReferenceFilters{Industry: "tech", RoleLevel: "senior"}, 1},
		{"no match", types.ReferenceFilters{Industry: "retail"}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			refs, err := s.FetchReferences(context.Background(), tc.filters)
			require.NoError(t, err)
			assert.Len(t, refs, tc.expected)
		})
	}
}

func TestMemoryStore_CapsAtMaxReferences(t *testing.T) {
	refs := make([]types.ReferenceFingerprint, MaxReferences+10)
	for i := range refs {
		refs[i] = ref("tech", "senior")
	}

	fetched, err := NewMemoryStore(refs).FetchReferences(context.Background(), types.ReferenceFilters{})
	require.NoError(t, err)
	assert.Len(t, fetched, MaxReferences)
}

func TestLoadMemoryStore(t *testing.T) {
	id := uuid.New()
	payload := fmt.Sprintf(`[
		{
			"id": "%s",
			"title": "Senior SWE resume",
			"industry": "tech",
			"role_level": "senior",
			"patterns": {"page_count": 1, "word_count": 480}
		}
	]`, id)

	path := filepath.Join(t.TempDir(), "cohort.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	s, err := LoadMemoryStore(path)
	require.NoError(t, err)

	refs, err := s.FetchReferences(context.Background(), types.ReferenceFilters{Industry: "tech"})
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, id, refs[0].ID)
	require.NotNil(t, refs[0].Patterns)
	assert.Equal(t, 1, refs[0].Patterns.PageCount)
	assert.Equal(t, 480, refs[0].Patterns.WordCount)
}

func TestLoadMemoryStore_MissingFile(t *testing.T) {
	_, err := LoadMemoryStore(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadMemoryStore_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cohort.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err := LoadMemoryStore(path)
	assert.Error(t, err)
}
