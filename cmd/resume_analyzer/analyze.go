package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/engine"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/store"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume's formatting",
	Long:  "Scores a resume against fixed best-practice heuristics, or relative to a reference cohort when one is available from a cohort JSON file or the reference database.",
	RunE:  runAnalyze,
}

var (
	analyzeInput     string
	analyzeOutput    string
	analyzeConfig    string
	analyzeCohort    string
	analyzeIndustry  string
	analyzeRoleLevel string
	analyzePages     int
	analyzeVerbose   bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "in", "i", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output analysis JSON file (defaults to stdout)")
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Path to config JSON file (optional)")
	analyzeCmd.Flags().StringVar(&analyzeCohort, "cohort", "", "Path to cohort JSON file (alternative to DATABASE_URL)")
	analyzeCmd.Flags().StringVar(&analyzeIndustry, "industry", "", "Cohort industry filter")
	analyzeCmd.Flags().StringVar(&analyzeRoleLevel, "role-level", "", "Cohort role-level filter")
	analyzeCmd.Flags().IntVar(&analyzePages, "pages", 0, "Page-count hint; 0 estimates from word count")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a human-readable score report")

	if err := analyzeCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume:    analyzeInput,
		Cohort:    analyzeCohort,
		Industry:  analyzeIndustry,
		RoleLevel: analyzeRoleLevel,
		Pages:     analyzePages,
		Verbose:   analyzeVerbose,
	}

	if analyzeConfig != "" {
		fileCfg, err := config.LoadConfig(analyzeConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	} else {
		// Pick up DATABASE_URL even without a config file
		cfg = cfg.MergeWithDefaults(config.Config{})
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	text, err := ingestion.ReadResume(cfg.Resume)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cohort, cleanup, err := openCohortStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	analysis := engine.New(cohort).Analyze(ctx, text, cfg.Pages, types.ReferenceFilters{
		Industry:  cfg.Industry,
		RoleLevel: cfg.RoleLevel,
	})

	if cfg.Verbose || analyzeVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintFingerprint(&analysis.Fingerprint)
		printer.PrintScoreReport(&analysis)
	}

	return writeJSON(analyzeOutput, analysis)
}

// openCohortStore selects the cohort source: a JSON cohort file, then the
// reference database, then none (standalone scoring). The returned cleanup
// is always safe to call.
func openCohortStore(ctx context.Context, cfg config.Config) (store.CohortStore, func(), error) {
	noop := func() {}

	if cfg.Cohort != "" {
		memory, err := store.LoadMemoryStore(cfg.Cohort)
		if err != nil {
			return nil, noop, err
		}
		return memory, noop, nil
	}

	if cfg.DatabaseURL != "" {
		refs, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			// Degraded mode: the engine scores standalone when no cohort
			// source is reachable.
			fmt.Fprintf(os.Stderr, "Warning: reference database unavailable, scoring standalone: %v\n", err)
			return nil, noop, nil
		}
		return refs, refs.Close, nil
	}

	return nil, noop, nil
}
