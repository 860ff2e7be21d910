package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Doe
john.doe@example.com | (555) 123-4567

SUMMARY
Senior engineer with a decade of backend experience.

EXPERIENCE
Acme Corp - Senior Engineer
Jan 2020 - Mar 2023
- Increased revenue by 25%
- Led a team of 12 engineers

EDUCATION
State University, BS Computer Science

SKILLS
Go, PostgreSQL, Kubernetes`

func TestExtract_Deterministic(t *testing.T) {
	first := Extract(sampleResume, 0)
	second := Extract(sampleResume, 0)
	assert.Equal(t, first, second)
}

func TestExtract_EmptyText(t *testing.T) {
	fp := Extract("", 0)

	assert.Equal(t, 0, fp.WordCount)
	assert.GreaterOrEqual(t, fp.PageCount, 1)
	assert.Equal(t, 0.0, fp.WhiteSpaceRatio)
	assert.Empty(t, fp.SectionOrder)
	assert.Equal(t, 0, fp.BulletStyle.TotalBullets)
	assert.Equal(t, 0, fp.QuantifiedMetrics.Count)
	assert.True(t, fp.HeadingStyle.Consistent)
	assert.True(t, fp.DateFormat.Consistent)
}

func TestExtract_WhitespaceOnlyText(t *testing.T) {
	fp := Extract("   \n\t\n  ", 0)
	assert.Equal(t, 0, fp.WordCount)
	assert.Equal(t, 0.0, fp.WhiteSpaceRatio)
	assert.Empty(t, fp.SectionOrder)
}

func TestExtract_SampleResume(t *testing.T) {
	fp := Extract(sampleResume, 0)

	assert.Equal(t, []string{SectionContact, SectionSummary, SectionExperience, SectionEducation, SectionSkills}, fp.SectionOrder)
	assert.True(t, fp.HasSummary)
	assert.Equal(t, 2, fp.BulletStyle.TotalBullets)
	assert.Contains(t, fp.BulletStyle.Types, "dash")
	assert.True(t, fp.HeadingStyle.Consistent)
	assert.Equal(t, []string{StyleAllCaps}, fp.HeadingStyle.Styles)
	assert.True(t, fp.DateFormat.Consistent)
	assert.Equal(t, 1, fp.PageCount)
	assert.Greater(t, fp.WordCount, 0)
	assert.GreaterOrEqual(t, fp.QuantifiedMetrics.Count, 2)
}

func TestExtract_SectionOrderIsCanonicalSubsequence(t *testing.T) {
	fp := Extract(sampleResume, 0)
	canonical := CanonicalSections()

	seen := make(map[string]int)
	for _, name := range fp.SectionOrder {
		seen[name]++
		assert.Contains(t, canonical, name)
	}
	for name, count := range seen {
		assert.Equal(t, 1, count, "section %s appears more than once", name)
	}
}

func TestExtract_PageCountHint(t *testing.T) {
	fp := Extract(sampleResume, 3)
	assert.Equal(t, 3, fp.PageCount)
}

func TestExtract_PageCountEstimate(t *testing.T) {
	// 600 words should estimate 2 pages at 500 words per page
	text := ""
	for i := 0; i < 600; i++ {
		text += "word "
	}
	fp := Extract(text, 0)
	assert.Equal(t, 2, fp.PageCount)
}

func TestWhitespaceRatio(t *testing.T) {
	lines := []string{"content", "", "content", ""}
	assert.Equal(t, 0.5, whitespaceRatio(lines))

	assert.Equal(t, 0.0, whitespaceRatio(nil))

	lines = []string{"a", "b", ""}
	assert.Equal(t, 0.33, whitespaceRatio(lines))
}

func TestNormalizePageCount(t *testing.T) {
	assert.Equal(t, 1, normalizePageCount(0, 0))
	assert.Equal(t, 1, normalizePageCount(0, 500))
	assert.Equal(t, 2, normalizePageCount(0, 501))
	assert.Equal(t, 4, normalizePageCount(4, 100))
}

func TestAverageWordsPerLine(t *testing.T) {
	lines := []string{"one two three", "", "four five six"}
	require.Equal(t, 3, averageWordsPerLine(6, lines))
	assert.Equal(t, 0, averageWordsPerLine(0, []string{""}))
}
