package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/pipeline"
)

var dashboardCommand = &cobra.Command{
	Use:   "dashboard [resume-file]",
	Short: "Derive dashboard metrics for a resume's best-fit career",
	Long: `Parses the resume and computes presentation metrics against the career corpus:
resume score, interview readiness, job-match strength, and tagged top jobs for
the single best-fit profile. Prints the summary as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runDashboard,
}

var (
	dashboardConfigPath string
	dashboardCorpus     string
	dashboardAPIKey     string
	dashboardTopK       int
	dashboardVerbose    bool
)

func init() {
	dashboardCommand.Flags().StringVar(&dashboardConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	dashboardCommand.Flags().StringVar(&dashboardCorpus, "corpus", "", "Path to the career-profile corpus JSON")
	dashboardCommand.Flags().StringVar(&dashboardAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	dashboardCommand.Flags().IntVar(&dashboardTopK, "top-k", 0, "How many top careers to tag (default 5)")
	dashboardCommand.Flags().BoolVarP(&dashboardVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(dashboardCommand)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := buildConfig(dashboardConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("corpus") {
		cfg.CorpusPath = dashboardCorpus
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = dashboardAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = dashboardVerbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	p, err := pipeline.New(ctx, cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	summary, err := p.Dashboard(ctx, args[0], dashboardTopK)
	if err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}

	return printJSON(summary)
}
