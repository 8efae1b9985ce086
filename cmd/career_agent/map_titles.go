package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/corpus"
	"github.com/jonathan/career-compass/internal/embedding"
)

var mapTitlesCommand = &cobra.Command{
	Use:   "map-titles",
	Short: "Map corpus career titles to O*NET occupation codes",
	Long: `Embeds every corpus career title and every O*NET occupation title, then pairs
each career with the occupation whose title embeds closest to it. The mapping
is written as JSON for use in corpus curation.

Requires GEMINI_API_KEY (or --api-key).`,
	Args: cobra.NoArgs,
	RunE: runMapTitles,
}

var (
	mapTitlesConfigPath string
	mapTitlesCorpus     string
	mapTitlesONet       string
	mapTitlesOut        string
	mapTitlesAPIKey     string
)

func init() {
	mapTitlesCommand.Flags().StringVar(&mapTitlesConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	mapTitlesCommand.Flags().StringVar(&mapTitlesCorpus, "corpus", "", "Path to the career-profile corpus JSON")
	mapTitlesCommand.Flags().StringVar(&mapTitlesONet, "onet", "data/onet_titles.json", "Path to the processed O*NET occupation JSON")
	mapTitlesCommand.Flags().StringVar(&mapTitlesOut, "out", "data/title_mappings.json", "Where to write the resulting mappings")
	mapTitlesCommand.Flags().StringVar(&mapTitlesAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(mapTitlesCommand)
}

func runMapTitles(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := buildConfig(mapTitlesConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("corpus") {
		cfg.CorpusPath = mapTitlesCorpus
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = mapTitlesAPIKey
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	profiles, err := corpus.Load(cfg.CorpusPath)
	if err != nil {
		return fmt.Errorf("corpus unavailable: %w", err)
	}
	titles := make([]string, len(profiles))
	for i, profile := range profiles {
		titles[i] = profile.CareerTitle
	}

	onetProfiles, err := loadONetProfiles(mapTitlesONet)
	if err != nil {
		return err
	}

	embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}
	defer func() { _ = embedder.Close() }()

	mappings, err := corpus.MapTitles(ctx, embedder, titles, onetProfiles)
	if err != nil {
		return fmt.Errorf("title mapping failed: %w", err)
	}
	if err := corpus.WriteMappings(mapTitlesOut, mappings); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Wrote %d title mappings to %s\n", len(mappings), mapTitlesOut)
	return nil
}

func loadONetProfiles(path string) ([]corpus.ONetProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read O*NET data: %w", err)
	}
	var profiles []corpus.ONetProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse O*NET data: %w", err)
	}
	return profiles, nil
}
