package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/corpus"
	"github.com/jonathan/career-compass/internal/market"
)

var warmCacheCommand = &cobra.Command{
	Use:   "warm-cache",
	Short: "Pre-fetch market snapshots for every corpus title",
	Long: `Fetches a labor-market snapshot for every career title in the corpus and
stores the results in the market cache, so later recommendation requests
resolve from disk instead of the Adzuna API.

Does not need a Gemini API key. Requires ADZUNA_APP_ID and ADZUNA_APP_KEY
(or config values); without them every fetch degrades to a neutral snapshot
and nothing is cached.`,
	Args: cobra.NoArgs,
	RunE: runWarmCache,
}

var (
	warmConfigPath string
	warmCorpus     string
	warmCache      string
	warmVerbose    bool
)

func init() {
	warmCacheCommand.Flags().StringVar(&warmConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	warmCacheCommand.Flags().StringVar(&warmCorpus, "corpus", "", "Path to the career-profile corpus JSON")
	warmCacheCommand.Flags().StringVar(&warmCache, "market-cache", "", "Path to the market snapshot cache file")
	warmCacheCommand.Flags().BoolVarP(&warmVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(warmCacheCommand)
}

func runWarmCache(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := buildConfig(warmConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("corpus") {
		cfg.CorpusPath = warmCorpus
	}
	if cmd.Flags().Changed("market-cache") {
		cfg.MarketCachePath = warmCache
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = warmVerbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Warming only needs the corpus titles and the market provider, so build
	// those directly instead of paying for an embedder the command never uses.
	profiles, err := corpus.Load(cfg.CorpusPath)
	if err != nil {
		return fmt.Errorf("corpus unavailable: %w", err)
	}

	cache := market.NewCache(cfg.MarketCachePath, cfg.MarketCacheTTL())
	client := market.NewClient(market.ClientConfig{
		AppID:   cfg.AdzunaAppID,
		AppKey:  cfg.AdzunaAppKey,
		Country: cfg.AdzunaCountry,
	})
	provider := market.NewProvider(cache, client)

	warmed := 0
	for _, profile := range profiles {
		if !provider.Fetch(ctx, profile.CareerTitle).IsNeutral() {
			warmed++
		}
	}

	fmt.Fprintf(os.Stdout, "Warmed %d of %d career titles\n", warmed, len(profiles))
	return nil
}
