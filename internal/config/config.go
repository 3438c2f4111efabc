package config

import (
	"time"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Config is the root configuration for dentscout. Every value is fixed
// for the duration of one batch run; there is no runtime reconfiguration.
type Config struct {
	Search   SearchConfig   `mapstructure:"search"   yaml:"search"`
	Scroll   ScrollConfig   `mapstructure:"scroll"   yaml:"scroll"`
	Reviews  ReviewsConfig  `mapstructure:"reviews"  yaml:"reviews"`
	Taxonomy TaxonomyConfig `mapstructure:"taxonomy" yaml:"taxonomy"`
	Browser  BrowserConfig  `mapstructure:"browser"  yaml:"browser"`
	Output   OutputConfig   `mapstructure:"output"   yaml:"output"`
	Logging  LoggingConfig  `mapstructure:"logging"  yaml:"logging"`
}

// SearchConfig controls the map query and the result cap.
type SearchConfig struct {
	Query      string `mapstructure:"query"       yaml:"query"`
	MaxResults int    `mapstructure:"max_results" yaml:"max_results"`
	Category   string `mapstructure:"category"    yaml:"category"`
}

// ScrollConfig controls the convergent load-more loops.
type ScrollConfig struct {
	ListPause     time.Duration `mapstructure:"list_pause"      yaml:"list_pause"`
	ReviewPause   time.Duration `mapstructure:"review_pause"    yaml:"review_pause"`
	ListIdleMax   int           `mapstructure:"list_idle_max"   yaml:"list_idle_max"`
	ReviewIdleMax int           `mapstructure:"review_idle_max" yaml:"review_idle_max"`
}

// ReviewsConfig controls per-listing review harvesting.
type ReviewsConfig struct {
	MaxPerListing int    `mapstructure:"max_per_listing" yaml:"max_per_listing"`
	Source        string `mapstructure:"source"          yaml:"source"`
}

// TaxonomyConfig holds the keyword list used for relevance filtering.
// Matching is whole-word: morphological variants ("autism" vs "autistic")
// must be listed separately.
type TaxonomyConfig struct {
	Keywords []string `mapstructure:"keywords" yaml:"keywords"`
}

// BrowserConfig controls the headless browser session.
type BrowserConfig struct {
	Headless    bool          `mapstructure:"headless"     yaml:"headless"`
	NavTimeout  time.Duration `mapstructure:"nav_timeout"  yaml:"nav_timeout"`
	SettleDelay time.Duration `mapstructure:"settle_delay" yaml:"settle_delay"`
	WindowSize  string        `mapstructure:"window_size"  yaml:"window_size"`
}

// OutputConfig controls artifact serialization.
type OutputConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
	// Format is "ts" (TypeScript data module) or "json".
	Format string `mapstructure:"format" yaml:"format"`
	// Placeholder substitutes a deterministic placeholder dataset when
	// zero listings matched, so the artifact is never empty. Disable to
	// surface an empty run as a failure instead.
	Placeholder bool `mapstructure:"placeholder" yaml:"placeholder"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DefaultKeywords is the shipped neurodivergence taxonomy. Variants are
// listed separately on purpose: matching does no stemming.
var DefaultKeywords = []string{
	"neurodivergent", "neurodiversity", "ND",
	"autism", "autistic", "Asperger's", "ADHD",
	"attention deficit hyperactivity disorder",
	"sensory processing disorder", "SPD", "sensory sensitivities",
	"Tourette's", "special needs", "developmental disabilities",
	"anxiety", "fearful patients", "patient understanding",
	"calm dentist", "gentle dentist", "compassionate dentist",
	"pediatric autism", "children with special needs",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Query:      "Dentists near New York, NY",
			MaxResults: 50,
			Category:   "Dentist",
		},
		Scroll: ScrollConfig{
			ListPause:     1500 * time.Millisecond,
			ReviewPause:   1 * time.Second,
			ListIdleMax:   2,
			ReviewIdleMax: 3,
		},
		Reviews: ReviewsConfig{
			MaxPerListing: 30,
			Source:        "Google Maps",
		},
		Taxonomy: TaxonomyConfig{
			Keywords: DefaultKeywords,
		},
		Browser: BrowserConfig{
			Headless:    true,
			NavTimeout:  30 * time.Second,
			SettleDelay: 2 * time.Second,
			WindowSize:  "1920,1080",
		},
		Output: OutputConfig{
			Path:        "./output/services.ts",
			Format:      "ts",
			Placeholder: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
