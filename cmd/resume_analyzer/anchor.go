package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/engine"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/schemas"
)

var anchorCmd = &cobra.Command{
	Use:   "anchor",
	Short: "Anchor generator suggestions to resume text",
	Long:  "Reads free-text edit suggestions produced by an external generator, anchors each to an exact character range in the resume, merges them with the built-in synonym detector, and drops anything that cannot be located.",
	RunE:  runAnchor,
}

var (
	anchorResume      string
	anchorSuggestions string
	anchorOutput      string
	anchorVerbose     bool
)

func init() {
	anchorCmd.Flags().StringVarP(&anchorResume, "in", "i", "", "Path to resume text file (required)")
	anchorCmd.Flags().StringVarP(&anchorSuggestions, "suggestions", "s", "", "Path to generator suggestions JSON file (required)")
	anchorCmd.Flags().StringVarP(&anchorOutput, "out", "o", "", "Path to output anchored suggestions JSON file (defaults to stdout)")
	anchorCmd.Flags().BoolVarP(&anchorVerbose, "verbose", "v", false, "Print a human-readable anchoring summary")

	if err := anchorCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := anchorCmd.MarkFlagRequired("suggestions"); err != nil {
		panic(fmt.Sprintf("failed to mark suggestions flag as required: %v", err))
	}

	rootCmd.AddCommand(anchorCmd)
}

func runAnchor(cmd *cobra.Command, _ []string) error {
	text, err := ingestion.ReadResume(anchorResume)
	if err != nil {
		return err
	}

	payload, err := os.ReadFile(anchorSuggestions)
	if err != nil {
		return fmt.Errorf("failed to read suggestions file: %w", err)
	}

	generated, err := schemas.ParseGeneratorSuggestions(payload)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	anchored, err := engine.New(nil).AnchorSuggestions(ctx, text, nil, generated)
	if err != nil {
		return err
	}

	if anchorVerbose {
		observability.NewPrinter(os.Stdout).PrintAnchoredSuggestions(anchored)
	}

	return writeJSON(anchorOutput, anchored)
}
