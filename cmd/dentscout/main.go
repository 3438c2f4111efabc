package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/blausm/dentscout/internal/annotate"
	"github.com/blausm/dentscout/internal/artifact"
	"github.com/blausm/dentscout/internal/browser"
	"github.com/blausm/dentscout/internal/config"
	"github.com/blausm/dentscout/internal/extract"
	"github.com/blausm/dentscout/internal/match"
	"github.com/blausm/dentscout/internal/pipeline"
	"github.com/blausm/dentscout/internal/types"
)

var (
	cfgFile       string
	verbose       bool
	query         string
	maxResults    int
	maxReviews    int
	outputPath    string
	outputFormat  string
	keywords      string
	headed        bool
	noPlaceholder bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dentscout",
		Short: "DentScout — neurodivergence-aware dentist listing extractor",
		Long: `DentScout drives a headless browser over a map search, harvests dentist
listings and their reviews, and keeps only the ones whose descriptions or
reviews mention a configurable neurodivergence keyword taxonomy. Each kept
mention is tagged with a sentiment score, and the accepted set is written
out as a TypeScript data module (or JSON) ready for a frontend to import.`,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(scrapeCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// scrapeCmd creates the "scrape" subcommand.
func scrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Run one extraction batch",
		Long:  "Run one complete batch: search, scroll, visit every listing, harvest reviews, and write the artifact.",
		RunE:  runScrape,
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "map search query (default from config)")
	cmd.Flags().IntVarP(&maxResults, "max-results", "m", 0, "cap on listings to visit (0 = config default)")
	cmd.Flags().IntVar(&maxReviews, "max-reviews", 0, "cap on reviews per listing (0 = config default)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "artifact path (default from config)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "artifact format: ts, json")
	cmd.Flags().StringVar(&keywords, "keywords", "", "comma-separated taxonomy override")
	cmd.Flags().BoolVar(&headed, "headed", false, "run the browser with a visible window")
	cmd.Flags().BoolVar(&noPlaceholder, "no-placeholder", false, "fail on zero matches instead of writing placeholder data")

	return cmd
}

// runScrape executes one batch end to end.
func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyCLIOverrides(cfg)

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := setupLogger(cfg.Logging)

	tax, err := match.Compile(cfg.Taxonomy.Keywords)
	if err != nil {
		return fmt.Errorf("compile taxonomy: %w", err)
	}

	writer, err := artifact.New(cfg.Output, logger)
	if err != nil {
		return fmt.Errorf("create artifact writer: %w", err)
	}

	logger.Info("starting batch",
		"query", cfg.Search.Query,
		"max_results", cfg.Search.MaxResults,
		"keywords", len(cfg.Taxonomy.Keywords),
		"output", cfg.Output.Path,
		"format", cfg.Output.Format,
	)

	sess, err := browser.NewSession(cfg.Browser, logger)
	if err != nil {
		return fmt.Errorf("start browser: %w", err)
	}
	defer func() {
		if err := sess.Close(); err != nil {
			logger.Warn("browser close failed", "error", err)
		}
	}()

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := pipeline.New(cfg, extract.New(sess, cfg, logger), annotate.New(tax, logger), logger)

	start := time.Now()
	result, err := runner.Run(ctx)
	if err != nil {
		if errors.Is(err, types.ErrNoMatches) {
			logger.Error("no listings matched and placeholder output is disabled")
			return err
		}
		return fmt.Errorf("run batch: %w", err)
	}

	if err := writer.Write(result.Services, result.Placeholder); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}

	elapsed := time.Since(start)
	stats := result.Stats.Snapshot()

	logger.Info("batch complete",
		"elapsed", elapsed,
		"visited", stats["items_visited"],
		"accepted", stats["items_accepted"],
		"skipped", stats["items_skipped"],
		"failed", stats["items_failed"],
		"reviews", stats["reviews_harvested"],
		"placeholder", result.Placeholder,
	)

	fmt.Printf("\n✅ Batch complete in %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("   Listings:  %v visited, %v accepted, %v skipped, %v failed\n",
		stats["items_visited"], stats["items_accepted"], stats["items_skipped"], stats["items_failed"])
	fmt.Printf("   Reviews:   %v harvested\n", stats["reviews_harvested"])
	fmt.Printf("   Output:    %s\n", writer.Path())

	if result.Placeholder {
		fmt.Println("\n💡 No listings matched the keyword taxonomy; the artifact holds placeholder data.")
		fmt.Println("   Broaden the taxonomy with --keywords, or pass --no-placeholder to fail instead.")
	}

	return nil
}

// versionCmd creates the "version" subcommand.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("DentScout %s\n", config.Version)
		},
	}
}

// configCmd creates the "config" subcommand for inspecting configuration.
func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fmt.Printf("Search:\n")
			fmt.Printf("  Query:            %s\n", cfg.Search.Query)
			fmt.Printf("  Max Results:      %d\n", cfg.Search.MaxResults)
			fmt.Printf("  Category:         %s\n", cfg.Search.Category)
			fmt.Printf("\nScroll:\n")
			fmt.Printf("  List Pause:       %s\n", cfg.Scroll.ListPause)
			fmt.Printf("  Review Pause:     %s\n", cfg.Scroll.ReviewPause)
			fmt.Printf("  List Idle Max:    %d\n", cfg.Scroll.ListIdleMax)
			fmt.Printf("  Review Idle Max:  %d\n", cfg.Scroll.ReviewIdleMax)
			fmt.Printf("\nReviews:\n")
			fmt.Printf("  Max Per Listing:  %d\n", cfg.Reviews.MaxPerListing)
			fmt.Printf("  Source Label:     %s\n", cfg.Reviews.Source)
			fmt.Printf("\nTaxonomy:\n")
			fmt.Printf("  Keywords:         %d configured\n", len(cfg.Taxonomy.Keywords))
			fmt.Printf("\nBrowser:\n")
			fmt.Printf("  Headless:         %v\n", cfg.Browser.Headless)
			fmt.Printf("  Nav Timeout:      %s\n", cfg.Browser.NavTimeout)
			fmt.Printf("  Settle Delay:     %s\n", cfg.Browser.SettleDelay)
			fmt.Printf("  Window Size:      %s\n", cfg.Browser.WindowSize)
			fmt.Printf("\nOutput:\n")
			fmt.Printf("  Path:             %s\n", cfg.Output.Path)
			fmt.Printf("  Format:           %s\n", cfg.Output.Format)
			fmt.Printf("  Placeholder:      %v\n", cfg.Output.Placeholder)
			return nil
		},
	}
	return cmd
}

// setupLogger creates a structured logger from the logging config, with
// --verbose forcing debug level.
func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// applyCLIOverrides applies command-line flag values to the config.
func applyCLIOverrides(cfg *config.Config) {
	if query != "" {
		cfg.Search.Query = query
	}
	if maxResults > 0 {
		cfg.Search.MaxResults = maxResults
	}
	if maxReviews > 0 {
		cfg.Reviews.MaxPerListing = maxReviews
	}
	if outputPath != "" {
		cfg.Output.Path = outputPath
	}
	if outputFormat != "" {
		cfg.Output.Format = strings.ToLower(outputFormat)
	}
	if keywords != "" {
		var list []string
		for _, k := range strings.Split(keywords, ",") {
			if k = strings.TrimSpace(k); k != "" {
				list = append(list, k)
			}
		}
		cfg.Taxonomy.Keywords = list
	}
	if headed {
		cfg.Browser.Headless = false
	}
	if noPlaceholder {
		cfg.Output.Placeholder = false
	}
}
