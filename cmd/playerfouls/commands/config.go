package commands

import (
	"os"
	"time"

	"playerfouls-backend/lib/configutil"
	"playerfouls-backend/lib/scrapers/fbref"
	"playerfouls-backend/lib/serviceutil"
	"playerfouls-backend/lib/sqliteutil"
)

// ScraperConfig overrides the scraping pipeline's pacing. each field
// stands alone: fields left unset keep their defaults.
type ScraperConfig struct {
	ScrapeDelaySeconds *float64 `json:"scrape_delay_seconds"`
	MaxRetries         *int     `json:"max_retries"`
	TimeoutSeconds     *float64 `json:"timeout_seconds"`
}

type Config struct {
	Database sqliteutil.Config `json:"database"`
	Scraper  ScraperConfig     `json:"scraper"`
}

func (c ScraperConfig) options() fbref.Options {
	opts := fbref.DefaultOptions()
	if c.ScrapeDelaySeconds != nil {
		opts.ScrapeDelay = time.Duration(*c.ScrapeDelaySeconds * float64(time.Second))
	}
	if c.MaxRetries != nil {
		opts.MaxRetries = *c.MaxRetries
	}
	if c.TimeoutSeconds != nil {
		opts.Timeout = time.Duration(*c.TimeoutSeconds * float64(time.Second))
	}
	return opts
}

func (c Config) database() sqliteutil.Config {
	if c.Database.File == "" && c.Database.Url == "" {
		c.Database.File = "results.db"
	}
	return c.Database
}

// loadConfig reads config.json5 when present; commands run on defaults
// without one.
func loadConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if os.IsNotExist(err) {
		return Config{}
	}
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}
