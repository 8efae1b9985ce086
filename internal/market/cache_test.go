package market

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func cachePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "market_cache.json")
}

func TestCache_MissingFileIsEmpty(t *testing.T) {
	cache := NewCache(cachePath(t), DefaultCacheTTL)

	_, ok := cache.Get("data analyst")

	assert.False(t, ok)
}

func TestCache_PutThenGet(t *testing.T) {
	cache := NewCache(cachePath(t), DefaultCacheTTL)
	snapshot := types.MarketSnapshot{
		JobCount:      100,
		AverageSalary: 55000,
		MarketScore:   0.2,
		FetchedAt:     time.Now().UTC(),
	}

	require.NoError(t, cache.Put("data analyst", snapshot))

	got, ok := cache.Get("data analyst")
	require.True(t, ok)
	assert.Equal(t, snapshot.JobCount, got.JobCount)
	assert.Equal(t, snapshot.AverageSalary, got.AverageSalary)
}

func TestCache_KeysAreCaseSensitive(t *testing.T) {
	cache := NewCache(cachePath(t), DefaultCacheTTL)
	require.NoError(t, cache.Put("Data Analyst", types.MarketSnapshot{JobCount: 1, FetchedAt: time.Now()}))

	_, ok := cache.Get("data analyst")

	assert.False(t, ok)
}

func TestCache_ExpiredEntryIsMiss(t *testing.T) {
	cache := NewCache(cachePath(t), time.Hour)
	stale := types.MarketSnapshot{
		JobCount:  5,
		FetchedAt: time.Now().Add(-2 * time.Hour),
	}
	require.NoError(t, cache.Put("data analyst", stale))

	_, ok := cache.Get("data analyst")

	assert.False(t, ok)
}

func TestCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewCache(cachePath(t), 0)
	old := types.MarketSnapshot{
		JobCount:  5,
		FetchedAt: time.Now().Add(-365 * 24 * time.Hour),
	}
	require.NoError(t, cache.Put("data analyst", old))

	_, ok := cache.Get("data analyst")

	assert.True(t, ok)
}

func TestCache_RepeatedPutIsIdempotent(t *testing.T) {
	path := cachePath(t)
	cache := NewCache(path, DefaultCacheTTL)
	snapshot := types.MarketSnapshot{JobCount: 7, FetchedAt: time.Now().UTC()}

	require.NoError(t, cache.Put("data analyst", snapshot))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, cache.Put("data analyst", snapshot))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCache_CorruptFileTreatedAsEmpty(t *testing.T) {
	path := cachePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
	cache := NewCache(path, DefaultCacheTTL)

	_, ok := cache.Get("data analyst")
	assert.False(t, ok)

	// Put recovers by rewriting the file.
	require.NoError(t, cache.Put("data analyst", types.MarketSnapshot{JobCount: 1, FetchedAt: time.Now()}))
	_, ok = cache.Get("data analyst")
	assert.True(t, ok)
}
