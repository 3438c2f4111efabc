package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for invalid values.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Search.Query) == "" {
		return fmt.Errorf("search.query must not be empty")
	}
	if cfg.Search.MaxResults < 1 {
		return fmt.Errorf("search.max_results must be >= 1, got %d", cfg.Search.MaxResults)
	}
	if cfg.Search.MaxResults > 500 {
		return fmt.Errorf("search.max_results must be <= 500, got %d", cfg.Search.MaxResults)
	}

	if cfg.Scroll.ListPause < 0 || cfg.Scroll.ReviewPause < 0 {
		return fmt.Errorf("scroll pauses must be >= 0")
	}
	if cfg.Scroll.ListIdleMax < 1 {
		return fmt.Errorf("scroll.list_idle_max must be >= 1, got %d", cfg.Scroll.ListIdleMax)
	}
	if cfg.Scroll.ReviewIdleMax < 1 {
		return fmt.Errorf("scroll.review_idle_max must be >= 1, got %d", cfg.Scroll.ReviewIdleMax)
	}

	if cfg.Reviews.MaxPerListing < 0 {
		return fmt.Errorf("reviews.max_per_listing must be >= 0, got %d", cfg.Reviews.MaxPerListing)
	}

	if len(cfg.Taxonomy.Keywords) == 0 {
		return fmt.Errorf("taxonomy.keywords must not be empty")
	}
	for _, kw := range cfg.Taxonomy.Keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("taxonomy.keywords must not contain blank entries")
		}
	}

	if cfg.Browser.NavTimeout <= 0 {
		return fmt.Errorf("browser.nav_timeout must be > 0")
	}
	if cfg.Browser.SettleDelay < 0 {
		return fmt.Errorf("browser.settle_delay must be >= 0")
	}

	if cfg.Output.Path == "" {
		return fmt.Errorf("output.path must not be empty")
	}
	if cfg.Output.Format != "ts" && cfg.Output.Format != "json" {
		return fmt.Errorf("output.format must be 'ts' or 'json', got %q", cfg.Output.Format)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level must be debug/info/warn/error, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be 'text' or 'json', got %q", cfg.Logging.Format)
	}

	return nil
}
