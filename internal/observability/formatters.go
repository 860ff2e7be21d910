// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/engine"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFingerprint outputs a human-readable summary of a formatting fingerprint.
func (p *Printer) PrintFingerprint(fp *types.FormattingPatterns) {
	if fp == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pages:       %d\n", fp.PageCount))
	sb.WriteString(fmt.Sprintf("Words:       %d (%d per line)\n", fp.WordCount, fp.AvgWordsPerLine))
	sb.WriteString(fmt.Sprintf("Sections:    %s\n", strings.Join(fp.SectionOrder, " → ")))
	sb.WriteString(fmt.Sprintf("Bullets:     %d (%.1f per entry)\n", fp.BulletStyle.TotalBullets, fp.BulletStyle.AvgBulletsPerEntry))
	sb.WriteString(fmt.Sprintf("Metrics:     %d quantified\n", fp.QuantifiedMetrics.Count))
	sb.WriteString(fmt.Sprintf("Headings:    consistent=%v\n", fp.HeadingStyle.Consistent))
	sb.WriteString(fmt.Sprintf("Dates:       consistent=%v (%s)\n", fp.DateFormat.Consistent, strings.Join(fp.DateFormat.Formats, ", ")))
	sb.WriteString(fmt.Sprintf("Whitespace:  %.2f", fp.WhiteSpaceRatio))

	p.printBox("FORMATTING FINGERPRINT", sb.String())
}

// PrintScoreReport outputs a human-readable summary of an analysis result.
func (p *Printer) PrintScoreReport(analysis *engine.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:       %d/100\n", analysis.Score))
	sb.WriteString(fmt.Sprintf("References:  %d\n", analysis.ReferenceCount))
	sb.WriteString(fmt.Sprintf("Findings:    %d\n", len(analysis.Feedback)))

	shown := 0
	for _, item := range analysis.Feedback {
		if shown == maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more", len(analysis.Feedback)-shown))
			break
		}
		sb.WriteString(fmt.Sprintf("[%s] %s\n", item.Severity, item.Aspect))
		shown++
	}

	p.printBox("FORMATTING SCORE", strings.TrimRight(sb.String(), "\n"))
}

// PrintAnchoredSuggestions outputs a summary of merged anchored suggestions.
func (p *Printer) PrintAnchoredSuggestions(suggestions []types.AnchoredSuggestion) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total: %d\n", len(suggestions)))

	shown := 0
	for _, s := range suggestions {
		if shown == maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more", len(suggestions)-shown))
			break
		}
		sb.WriteString(fmt.Sprintf("[%d:%d] %q → %q\n", s.TextRange.Start, s.TextRange.End, s.OriginalText, s.SuggestedText))
		shown++
	}

	p.printBox("ANCHORED SUGGESTIONS", strings.TrimRight(sb.String(), "\n"))
}
