package commands

import (
	"testing"
	"time"

	"playerfouls-backend/lib/scrapers/fbref"

	"github.com/stretchr/testify/require"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func TestScraperConfigDefaults(t *testing.T) {
	opts := ScraperConfig{}.options()
	require.Equal(t, fbref.DefaultOptions(), opts)
}

func TestScraperConfigIndependentOverrides(t *testing.T) {
	defaults := fbref.DefaultOptions()

	opts := ScraperConfig{ScrapeDelaySeconds: floatp(0.5)}.options()
	require.Equal(t, 500*time.Millisecond, opts.ScrapeDelay)
	require.Equal(t, defaults.MaxRetries, opts.MaxRetries)
	require.Equal(t, defaults.Timeout, opts.Timeout)

	opts = ScraperConfig{MaxRetries: intp(5)}.options()
	require.Equal(t, defaults.ScrapeDelay, opts.ScrapeDelay)
	require.Equal(t, 5, opts.MaxRetries)
	require.Equal(t, defaults.Timeout, opts.Timeout)

	opts = ScraperConfig{TimeoutSeconds: floatp(10)}.options()
	require.Equal(t, defaults.ScrapeDelay, opts.ScrapeDelay)
	require.Equal(t, defaults.MaxRetries, opts.MaxRetries)
	require.Equal(t, 10*time.Second, opts.Timeout)
}

func TestScraperConfigZeroDelay(t *testing.T) {
	opts := ScraperConfig{ScrapeDelaySeconds: floatp(0)}.options()
	require.Equal(t, time.Duration(0), opts.ScrapeDelay)
}

func TestDatabaseConfigDefaultsToLocalFile(t *testing.T) {
	require.Equal(t, "results.db", Config{}.database().File)

	cfg := Config{}
	cfg.Database.Url = "libsql://example.turso.io"
	require.Equal(t, "", cfg.database().File)
}
