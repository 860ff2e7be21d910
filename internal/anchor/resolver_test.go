package anchor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const anchorText = "Managed deployments across regions. Led the team daily.\nResponsible for reliability."

func TestResolve_ExactSubstringRoundTrip(t *testing.T) {
	// Stage 1 must succeed for every true substring: the returned slice
	// equals the needle exactly.
	needles := []string{
		"Managed deployments",
		"Led the team daily",
		"Responsible for reliability.",
		"s across r",
	}

	for _, needle := range needles {
		t.Run(needle, func(t *testing.T) {
			r := Resolve(anchorText, needle)
			require.False(t, r.IsSentinel())
			assert.Equal(t, needle, anchorText[r.Start:r.End])
		})
	}
}

func TestResolve_CaseInsensitive(t *testing.T) {
	r := Resolve("Hello World", "hello")
	assert.Equal(t, 0, r.Start)
	assert.Equal(t, 5, r.End)
}

func TestResolve_Sentinel(t *testing.T) {
	r := Resolve("abc", "xyz")
	assert.True(t, r.IsSentinel())
	assert.Equal(t, 0, r.Start)
	assert.Equal(t, 0, r.End)
}

func TestResolve_EmptyInputs(t *testing.T) {
	assert.True(t, Resolve("", "needle").IsSentinel())
	assert.True(t, Resolve("text", "").IsSentinel())
}

func TestResolve_WhitespaceNormalized(t *testing.T) {
	full := "Led    the   team"
	needle := "Led the team"

	r := Resolve(full, needle)
	require.False(t, r.IsSentinel())
	assert.Equal(t, 0, r.Start)
	// End is start+len(needle), not re-measured against the original
	assert.Equal(t, len(needle), r.End)
}

func TestResolve_WhitespaceNormalizedMidText(t *testing.T) {
	full := "Header line\nSkills:   Go,   Python"
	needle := "Skills: Go"

	r := Resolve(full, needle)
	require.False(t, r.IsSentinel())
	assert.Equal(t, strings.Index(full, "Skills"), r.Start)
}

func TestResolve_FuzzyTypo(t *testing.T) {
	needle := "Lead the team dailly" // Two edits away from the real sentence

	r := Resolve(anchorText, needle)
	require.False(t, r.IsSentinel())
	assert.Contains(t, anchorText[r.Start:r.End], "Led the team")
}

func TestResolve_FuzzyShortWord(t *testing.T) {
	full := "Kubernetes experience"
	needle := "Kubernets"

	r := Resolve(full, needle)
	require.False(t, r.IsSentinel())
	assert.Contains(t, full[r.Start:r.End], "Kubernetes")
}

func TestResolve_FuzzySkipsLongNeedles(t *testing.T) {
	needle := strings.Repeat("zq", 30) // 60 chars, nothing like the text
	r := Resolve(anchorText, needle)
	assert.True(t, r.IsSentinel())
}

func TestNormalizeWhitespace(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"single spaces kept", "a b c", "a b c"},
		{"runs collapse", "a   b\t\tc", "a b c"},
		{"newlines collapse", "a\n\nb", "a b"},
		{"mixed run", "a \n\t b", "a b"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, normalizeWhitespace(tc.input))
		})
	}
}

func TestMapNormalizedOffset(t *testing.T) {
	// "a   b" normalizes to "a b"; normalized offset 2 points at "b"
	assert.Equal(t, 0, mapNormalizedOffset("a   b", 0))

	offset := mapNormalizedOffset("a   b", 2)
	// The walk is approximate: it lands on or just before the target rune
	assert.GreaterOrEqual(t, offset, 2)
	assert.LessOrEqual(t, offset, 4)

	// Offsets past the end fail
	assert.Equal(t, -1, mapNormalizedOffset("ab", 5))
}
