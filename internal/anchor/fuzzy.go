package anchor

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// maxFuzzyNeedleLength bounds the fuzzy stage: long needles that failed
	// every exact-ish stage are too risky to place approximately.
	maxFuzzyNeedleLength = 50
	// wordIndexNeedleLength adds individual word tokens to the candidate
	// set for short needles.
	wordIndexNeedleLength = 10
	// maxDivergence is the tolerated normalized edit distance.
	maxDivergence = 0.4
	// segmentStretch decides whether a matched segment's own span is tight
	// enough to return directly.
	segmentStretch = 1.5
)

// segment is a sentence- or line-like slice of the full text, tagged with
// its start offset.
type segment struct {
	Text  string
	Start int
}

// fuzzyStrategy runs edit-distance-tolerant matching over sentence segments
// (plus word tokens for short needles) and maps the best hit back to a span.
type fuzzyStrategy struct{}

func (fuzzyStrategy) Resolve(fullText, needle string) (types.TextRange, bool) {
	if len(needle) > maxFuzzyNeedleLength {
		return types.TextRange{}, false
	}

	minLength := 3
	if len(needle) < minLength {
		minLength = len(needle)
	}

	candidates := splitSegments(fullText)
	if len(needle) <= wordIndexNeedleLength {
		candidates = append(candidates, splitWords(fullText)...)
	}

	best := -1
	bestScore := 0.0
	for i, c := range candidates {
		trimmed := strings.TrimSpace(c.Text)
		if len(trimmed) < minLength {
			continue
		}
		score := similarity(needle, trimmed)
		if windowed := bestWindowSimilarity(needle, trimmed); windowed > score {
			score = windowed
		}
		if score > bestScore {
			bestScore = score
			best = i
		}
	}

	if best < 0 || bestScore < 1-maxDivergence {
		return types.TextRange{}, false
	}

	return segmentSpan(candidates[best], needle), true
}

// segmentSpan converts the best-ranked segment into a returned range. A
// segment not much longer than the needle is returned whole; otherwise the
// needle is searched case-insensitively within it, falling back to the full
// segment span as a deliberately loose approximation.
func segmentSpan(seg segment, needle string) types.TextRange {
	if float64(len(seg.Text)) <= segmentStretch*float64(len(needle)) {
		return types.TextRange{Start: seg.Start, End: seg.Start + len(seg.Text)}
	}

	if idx := strings.Index(strings.ToLower(seg.Text), strings.ToLower(needle)); idx >= 0 {
		return types.TextRange{
			Start: seg.Start + idx,
			End:   seg.Start + idx + len(needle),
		}
	}

	return types.TextRange{Start: seg.Start, End: seg.Start + len(seg.Text)}
}

// splitSegments cuts the text into sentence/line-like pieces on . ! ? and
// newline, tagging each with its start offset. Delimiters are not included.
func splitSegments(text string) []segment {
	var segments []segment
	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			if i > start {
				segments = append(segments, segment{Text: text[start:i], Start: start})
			}
			start = i + 1
		}
	}
	if start < len(text) {
		segments = append(segments, segment{Text: text[start:], Start: start})
	}
	return segments
}

// splitWords indexes every individual word token with its offset.
func splitWords(text string) []segment {
	var words []segment
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				words = append(words, segment{Text: text[start:i], Start: start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, segment{Text: text[start:], Start: start})
	}
	return words
}

// bestWindowSimilarity scores a needle against needle-sized windows of a
// longer segment, starting at word boundaries. This lets a long sentence
// rank as a match when it merely contains a slightly-divergent copy of the
// needle.
func bestWindowSimilarity(needle, segText string) float64 {
	segRunes := []rune(segText)
	needleLen := len([]rune(needle))
	if len(segRunes) <= needleLen {
		return 0
	}

	best := 0.0
	for i := 0; i < len(segRunes)-needleLen+1; i++ {
		if i > 0 && !unicode.IsSpace(segRunes[i-1]) {
			continue // Only start windows at word boundaries
		}
		window := string(segRunes[i : i+needleLen])
		if score := similarity(needle, window); score > best {
			best = score
		}
	}
	return best
}

// similarity is 1 minus the normalized Levenshtein distance between the
// lowercased inputs, in [0,1].
func similarity(a, b string) float64 {
	aNorm := strings.ToLower(strings.TrimSpace(a))
	bNorm := strings.ToLower(strings.TrimSpace(b))
	if aNorm == bNorm {
		return 1
	}

	maxLen := len([]rune(aNorm))
	if l := len([]rune(bNorm)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}

	dist := levenshteinDistance(aNorm, bNorm)
	return 1 - float64(dist)/float64(maxLen)
}

// levenshteinDistance is the classic two-row edit-distance DP over runes.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len([]rune(b))
	}
	if len(b) == 0 {
		return len([]rune(a))
	}

	aRunes := []rune(a)
	bRunes := []rune(b)

	prev := make([]int, len(bRunes)+1)
	curr := make([]int, len(bRunes)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(aRunes); i++ {
		curr[0] = i
		for j := 1; j <= len(bRunes); j++ {
			cost := 1
			if aRunes[i-1] == bRunes[j-1] {
				cost = 0
			}
			curr[j] = min(min(prev[j]+1, curr[j-1]+1), prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(bRunes)]
}
