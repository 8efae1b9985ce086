// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds all settings for the recommendation pipeline. All fields are
// optional in the JSON file; missing values fall back to defaults or env vars.
type Config struct {
	// Static data assets
	CorpusPath        string `json:"corpus_path,omitempty"`
	DegreeTablePath   string `json:"degree_table_path,omitempty"`
	SkillTaxonomyPath string `json:"skill_taxonomy_path,omitempty"`

	// Market data
	MarketCachePath     string `json:"market_cache_path,omitempty"`
	MarketCacheTTLHours int    `json:"market_cache_ttl_hours,omitempty" validate:"min=0"`
	AdzunaAppID         string `json:"adzuna_app_id,omitempty"`
	AdzunaAppKey        string `json:"adzuna_app_key,omitempty"`
	AdzunaCountry       string `json:"adzuna_country,omitempty" validate:"omitempty,len=2"`

	// Embedding
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	EmbeddingModel string `json:"embedding_model,omitempty"` // Gemini embedding model name

	// Behavior
	TopK    int  `json:"top_k,omitempty" validate:"min=0,max=100"`
	Verbose bool `json:"verbose,omitempty"`
}

// DefaultConfig returns the defaults applied when neither the config file nor
// CLI flags set a value.
func DefaultConfig() Config {
	return Config{
		CorpusPath:          filepath.Join("data", "career_profiles.json"),
		DegreeTablePath:     filepath.Join("data", "degrees.csv"),
		SkillTaxonomyPath:   filepath.Join("data", "tech_skills.json"),
		MarketCachePath:     filepath.Join("data", "market_cache.json"),
		MarketCacheTTLHours: int((7 * 24 * time.Hour).Hours()),
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks field constraints and that the corpus file exists when set.
// The degree table and skill taxonomy are deliberately not checked: missing
// reference data degrades extraction instead of failing it.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.CorpusPath != "" {
		if _, err := os.Stat(c.CorpusPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: corpus file not found: %s", c.CorpusPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.CorpusPath == "" {
		result.CorpusPath = defaults.CorpusPath
	}
	if result.DegreeTablePath == "" {
		result.DegreeTablePath = defaults.DegreeTablePath
	}
	if result.SkillTaxonomyPath == "" {
		result.SkillTaxonomyPath = defaults.SkillTaxonomyPath
	}
	if result.MarketCachePath == "" {
		result.MarketCachePath = defaults.MarketCachePath
	}
	if result.MarketCacheTTLHours == 0 {
		result.MarketCacheTTLHours = defaults.MarketCacheTTLHours
	}
	if result.AdzunaAppID == "" {
		result.AdzunaAppID = defaults.AdzunaAppID
	}
	if result.AdzunaAppKey == "" {
		result.AdzunaAppKey = defaults.AdzunaAppKey
	}
	if result.AdzunaCountry == "" {
		result.AdzunaCountry = defaults.AdzunaCountry
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}

	return result
}

// ApplyEnv fills credentials from environment variables when unset. Missing
// market credentials are not an error; the provider degrades to neutral
// snapshots without them.
func (c *Config) ApplyEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.AdzunaAppID == "" {
		c.AdzunaAppID = os.Getenv("ADZUNA_APP_ID")
	}
	if c.AdzunaAppKey == "" {
		c.AdzunaAppKey = os.Getenv("ADZUNA_APP_KEY")
	}
}

// MarketCacheTTL converts the configured hours to a duration. Zero disables
// cache expiry.
func (c *Config) MarketCacheTTL() time.Duration {
	return time.Duration(c.MarketCacheTTLHours) * time.Hour
}
