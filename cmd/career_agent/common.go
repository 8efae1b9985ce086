package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/jonathan/career-compass/internal/config"
)

// buildConfig loads the optional config file, fills defaults and env-supplied
// credentials, and validates the result. Commands apply their own flag
// overrides to the returned value before use.
func buildConfig(configPath string) (config.Config, error) {
	var cfg config.Config

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.DefaultConfig())
	cfg.ApplyEnv()

	if cfg.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	return cfg, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
