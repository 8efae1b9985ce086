package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/pipeline"
)

var recommendCommand = &cobra.Command{
	Use:   "recommend [resume-file]",
	Short: "Produce ranked career recommendations for a resume",
	Long: `Parses the resume, embeds its career profile, ranks the full career corpus by
semantic similarity, enriches every candidate with labor-market data, and
prints the blended, filtered recommendation list as JSON.

Requires GEMINI_API_KEY (or --api-key). Adzuna credentials are optional;
without them market scores degrade to zero instead of failing.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

var (
	recommendConfigPath string
	recommendCorpus     string
	recommendAPIKey     string
	recommendCache      string
	recommendTop        int
	recommendVerbose    bool
)

func init() {
	recommendCommand.Flags().StringVar(&recommendConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	recommendCommand.Flags().StringVar(&recommendCorpus, "corpus", "", "Path to the career-profile corpus JSON")
	recommendCommand.Flags().StringVar(&recommendAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	recommendCommand.Flags().StringVar(&recommendCache, "market-cache", "", "Path to the market snapshot cache file")
	recommendCommand.Flags().IntVar(&recommendTop, "top", 0, "Truncate output to the top N recommendations (0 = all)")
	recommendCommand.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(recommendCommand)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := buildConfig(recommendConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("corpus") {
		cfg.CorpusPath = recommendCorpus
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = recommendAPIKey
	}
	if cmd.Flags().Changed("market-cache") {
		cfg.MarketCachePath = recommendCache
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = recommendVerbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	p, err := pipeline.New(ctx, cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	_, recommendations, err := p.Recommend(ctx, args[0])
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	// The engine returns the full filtered list; truncation is presentation.
	if recommendTop > 0 && len(recommendations) > recommendTop {
		recommendations = recommendations[:recommendTop]
	}

	return printJSON(recommendations)
}
