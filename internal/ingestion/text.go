// Package ingestion reads and cleans raw resume text for the CLI. Cleaning
// is optional pre-processing at the edge: the engine itself accepts whatever
// string it is given and fingerprints it deterministically.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var excessiveBlankLines = regexp.MustCompile(`\n\n\n+`)

// CleanText normalizes raw resume text while preserving structure: line
// endings become LF, trailing whitespace is trimmed per line, and runs of
// blank lines collapse to at most two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Trim trailing whitespace per line; blank lines become empty
	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			line = ""
		}
		cleaned = append(cleaned, line)
	}
	result := strings.Join(cleaned, "\n")

	// 3. Remove excessive blank lines (max 2 consecutive)
	result = excessiveBlankLines.ReplaceAllString(result, "\n\n")

	// 4. Trim leading/trailing whitespace from entire content
	return strings.TrimSpace(result)
}

// ReadResume reads a resume text file and returns its cleaned content.
func ReadResume(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("resume file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	return CleanText(string(content)), nil
}
