package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/patterns"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a formatting fingerprint from resume text",
	Long:  "Reads a plain-text resume file and writes its formatting fingerprint (sections, bullets, headings, dates, metrics) as JSON.",
	RunE:  runExtract,
}

var (
	extractInput   string
	extractOutput  string
	extractPages   int
	extractVerbose bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInput, "in", "i", "", "Path to resume text file (required)")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output fingerprint JSON file (defaults to stdout)")
	extractCmd.Flags().IntVar(&extractPages, "pages", 0, "Page-count hint; 0 estimates from word count")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a human-readable fingerprint summary")

	if err := extractCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	text, err := ingestion.ReadResume(extractInput)
	if err != nil {
		return err
	}

	fingerprint := patterns.Extract(text, extractPages)

	if extractVerbose {
		observability.NewPrinter(os.Stdout).PrintFingerprint(&fingerprint)
	}

	return writeJSON(extractOutput, fingerprint)
}

// writeJSON marshals v with indentation and writes it to path, or to stdout
// when path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	if path == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
