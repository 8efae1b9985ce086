package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"corpus_path": "corpus.json",
		"adzuna_country": "gb",
		"top_k": 10
	}`), 0o644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "corpus.json", cfg.CorpusPath)
	assert.Equal(t, "gb", cfg.AdzunaCountry)
	assert.Equal(t, 10, cfg.TopK)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")

	assert.Error(t, err)
}

func TestValidate_BadCountryCode(t *testing.T) {
	cfg := Config{AdzunaCountry: "india"}

	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeTTL(t *testing.T) {
	cfg := Config{MarketCacheTTLHours: -1}

	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingCorpus(t *testing.T) {
	cfg := Config{CorpusPath: filepath.Join(t.TempDir(), "nope.json")}

	assert.ErrorContains(t, cfg.Validate(), "corpus file not found")
}

func TestValidate_MissingReferenceDataIsFine(t *testing.T) {
	cfg := Config{
		DegreeTablePath:   "does-not-exist.csv",
		SkillTaxonomyPath: "does-not-exist.json",
	}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{CorpusPath: "custom.json"}

	merged := cfg.MergeWithDefaults(DefaultConfig())

	assert.Equal(t, "custom.json", merged.CorpusPath)
	assert.Equal(t, filepath.Join("data", "degrees.csv"), merged.DegreeTablePath)
	assert.Equal(t, filepath.Join("data", "market_cache.json"), merged.MarketCachePath)
	assert.Equal(t, 168, merged.MarketCacheTTLHours)
}

func TestMarketCacheTTL(t *testing.T) {
	cfg := Config{MarketCacheTTLHours: 24}
	assert.Equal(t, 24*time.Hour, cfg.MarketCacheTTL())

	zero := Config{}
	assert.Equal(t, time.Duration(0), zero.MarketCacheTTL())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("ADZUNA_APP_ID", "adz-id")
	t.Setenv("ADZUNA_APP_KEY", "adz-key")

	cfg := Config{APIKey: "explicit"}
	cfg.ApplyEnv()

	assert.Equal(t, "explicit", cfg.APIKey, "explicit value wins over env")
	assert.Equal(t, "adz-id", cfg.AdzunaAppID)
	assert.Equal(t, "adz-key", cfg.AdzunaAppKey)
}
