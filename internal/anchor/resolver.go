// Package anchor re-locates free-text edit suggestions to exact character
// ranges in the original resume text. Matching degrades through an ordered
// cascade of increasingly lossy strategies, ending with approximate search;
// a suggestion that cannot be anchored yields the {0,0} sentinel range,
// never a fabricated position.
package anchor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// strategy is one matching attempt in the cascade. ok is false when the
// strategy cannot place the needle.
type strategy interface {
	Resolve(fullText, needle string) (types.TextRange, bool)
}

// strategies is the explicit ordered cascade: exact substring, then
// case-insensitive, then whitespace-normalized, then fuzzy. Each stage is
// attempted only if the prior one fails.
var strategies = []strategy{
	exactStrategy{},
	caseInsensitiveStrategy{},
	normalizedStrategy{},
	fuzzyStrategy{},
}

// Resolve finds the best-matching character range for needle within
// fullText. The {0,0} sentinel means "could not anchor"; callers must treat
// it as a failure signal, not a zero-width match.
func Resolve(fullText, needle string) types.TextRange {
	if needle == "" || fullText == "" {
		return types.TextRange{}
	}

	for _, s := range strategies {
		if r, ok := s.Resolve(fullText, needle); ok {
			return r
		}
	}
	return types.TextRange{}
}

// exactStrategy is a case-sensitive substring search.
type exactStrategy struct{}

func (exactStrategy) Resolve(fullText, needle string) (types.TextRange, bool) {
	idx := strings.Index(fullText, needle)
	if idx < 0 {
		return types.TextRange{}, false
	}
	return types.TextRange{Start: idx, End: idx + len(needle)}, true
}

// caseInsensitiveStrategy lowercases both sides before searching. Offsets
// are taken from the lowered text, which matches the original byte-for-byte
// for ASCII resumes.
type caseInsensitiveStrategy struct{}

func (caseInsensitiveStrategy) Resolve(fullText, needle string) (types.TextRange, bool) {
	idx := strings.Index(strings.ToLower(fullText), strings.ToLower(needle))
	if idx < 0 {
		return types.TextRange{}, false
	}
	return types.TextRange{Start: idx, End: idx + len(needle)}, true
}

// normalizedStrategy collapses whitespace runs in both texts to single
// spaces, searches the normalized text case-insensitively, then walks the
// original to reconstruct an approximate start offset. The end offset is
// start+len(needle) rather than re-measured, so this stage is best-effort:
// highlights may drift by a few characters when the original whitespace was
// collapsed. That inaccuracy is known and load-bearing; do not "fix" it
// without revisiting the downstream highlight expectations.
type normalizedStrategy struct{}

func (normalizedStrategy) Resolve(fullText, needle string) (types.TextRange, bool) {
	normFull := normalizeWhitespace(fullText)
	normNeedle := normalizeWhitespace(needle)
	if normNeedle == "" {
		return types.TextRange{}, false
	}

	idx := strings.Index(strings.ToLower(normFull), strings.ToLower(normNeedle))
	if idx < 0 {
		return types.TextRange{}, false
	}

	start := mapNormalizedOffset(fullText, idx)
	if start < 0 {
		return types.TextRange{}, false
	}

	end := start + len(needle)
	if end > len(fullText) {
		end = len(fullText)
	}
	return types.TextRange{Start: start, End: end}, true
}

// normalizeWhitespace collapses every run of whitespace to a single space.
func normalizeWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !prevSpace {
				b.WriteByte(' ')
			}
			prevSpace = true
			continue
		}
		b.WriteRune(r)
		prevSpace = false
	}
	return b.String()
}

// mapNormalizedOffset walks the original text counting "logical" bytes: a
// character counts unless it is whitespace immediately following other
// whitespace. Returns the original byte offset where the normalized offset
// falls, or -1 when the walk runs out of text.
func mapNormalizedOffset(original string, normOffset int) int {
	logical := 0
	prevSpace := false
	for i, r := range original {
		if logical >= normOffset {
			return i
		}
		if unicode.IsSpace(r) {
			if !prevSpace {
				logical++
			}
			prevSpace = true
			continue
		}
		logical += utf8.RuneLen(r)
		prevSpace = false
	}
	return -1
}
