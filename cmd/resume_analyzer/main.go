// Package main provides the resume_analyzer CLI for resume formatting
// analysis and suggestion anchoring.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume formatting analysis and suggestion anchoring",
	Long:  "Resume Analyzer extracts a formatting fingerprint from plain resume text, scores it against fixed heuristics or a reference cohort, and anchors free-text edit suggestions to exact character ranges.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
