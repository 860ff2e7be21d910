package patterns

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSectionHeading(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected string
	}{
		{"exact", "Experience", SectionExperience},
		{"case insensitive", "EXPERIENCE", SectionExperience},
		{"variant", "Work History", SectionExperience},
		{"padded", "  Skills  ", SectionSkills},
		{"summary variant", "Professional Summary", SectionSummary},
		{"objective", "Objective", SectionSummary},
		{"education variant", "Academic Background", SectionEducation},
		{"certifications", "Certifications", SectionCertifications},
		{"volunteer", "Volunteer Experience", SectionVolunteer},
		{"not a heading", "I have experience with Go", ""},
		{"substring only", "Experienced", ""},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, matchSectionHeading(tc.line))
		})
	}
}

func TestMatchSectionHeading_LongLinesNeverMatch(t *testing.T) {
	// Guard against long ALL-CAPS sentences being misread as headings
	long := "EXPERIENCE " + strings.Repeat("AND MORE ", 10)
	require.Greater(t, len(long), maxHeadingLength)
	assert.Equal(t, "", matchSectionHeading(long))
}

func TestDetectSections_FirstMatchWins(t *testing.T) {
	lines := []string{"Experience", "details", "Work History", "more details"}
	sections := detectSections(lines)

	require.Len(t, sections, 1)
	assert.Equal(t, SectionExperience, sections[0].Name)
	assert.Equal(t, 0, sections[0].Line)
}

func TestDetectSections_ContactSynthesis(t *testing.T) {
	t.Run("email in first 5 lines", func(t *testing.T) {
		lines := []string{"Jane Doe", "jane@example.com", "", "Experience"}
		sections := detectSections(lines)

		require.Len(t, sections, 2)
		assert.Equal(t, SectionContact, sections[0].Name)
		assert.Equal(t, 1, sections[0].Line)
		assert.Equal(t, SectionExperience, sections[1].Name)
	})

	t.Run("phone in first 5 lines", func(t *testing.T) {
		lines := []string{"Jane Doe", "(555) 123-4567"}
		sections := detectSections(lines)

		require.Len(t, sections, 1)
		assert.Equal(t, SectionContact, sections[0].Name)
	})

	t.Run("email beyond first 5 lines is ignored", func(t *testing.T) {
		lines := []string{"a", "b", "c", "d", "e", "jane@example.com"}
		sections := detectSections(lines)
		assert.Empty(t, sections)
	})

	t.Run("explicit contact heading is not duplicated", func(t *testing.T) {
		lines := []string{"Contact", "jane@example.com"}
		sections := detectSections(lines)

		require.Len(t, sections, 1)
		assert.Equal(t, SectionContact, sections[0].Name)
		assert.Equal(t, 0, sections[0].Line)
	})
}

func TestDetectSections_OrderedByLine(t *testing.T) {
	lines := []string{"Skills", "", "Education", "", "Experience"}
	sections := detectSections(lines)

	require.Len(t, sections, 3)
	assert.Equal(t, SectionSkills, sections[0].Name)
	assert.Equal(t, SectionEducation, sections[1].Name)
	assert.Equal(t, SectionExperience, sections[2].Name)
}

func TestCanonicalSections(t *testing.T) {
	names := CanonicalSections()
	require.Len(t, names, 10)
	assert.Equal(t, SectionContact, names[0])
	assert.Equal(t, SectionVolunteer, names[9])

	// Returned slice is a copy
	names[0] = "mutated"
	assert.Equal(t, SectionContact, CanonicalSections()[0])
}
