// Package pipeline orchestrates one batch run: load the result list,
// visit each listing sequentially, harvest and annotate, and collect the
// accepted set.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/blausm/dentscout/internal/annotate"
	"github.com/blausm/dentscout/internal/config"
	"github.com/blausm/dentscout/internal/types"
)

// Visitor is the browser-backed capability the runner drives. Calls are
// strictly sequential: the underlying focus/navigation state is shared,
// and concurrent visits would race on it.
type Visitor interface {
	// OpenSearch submits the query and waits for the result feed.
	OpenSearch(query string) error

	// LoadResults scrolls the list until target items or convergence.
	LoadResults(ctx context.Context, target int) (int, error)

	// FocusItem moves the shared focus into the i-th result's detail pane.
	FocusItem(i int) error

	// ExtractDetails reads the focused pane into a Service. A nil error
	// with a fully defaulted record is normal; an error skips the item.
	ExtractDetails(id string) (*types.Service, error)

	// HarvestReviews collects the focused listing's reviews.
	HarvestReviews(ctx context.Context, serviceID string) ([]types.Review, error)

	// RestoreList recovers the focus back to the list view.
	RestoreList() error
}

// Stats counts one run's outcomes.
type Stats struct {
	ItemsVisited     atomic.Int64
	ItemsAccepted    atomic.Int64
	ItemsSkipped     atomic.Int64
	ItemsFailed      atomic.Int64
	ReviewsHarvested atomic.Int64
}

// Snapshot returns the counters as a map for logging.
func (s *Stats) Snapshot() map[string]int64 {
	return map[string]int64{
		"items_visited":     s.ItemsVisited.Load(),
		"items_accepted":    s.ItemsAccepted.Load(),
		"items_skipped":     s.ItemsSkipped.Load(),
		"items_failed":      s.ItemsFailed.Load(),
		"reviews_harvested": s.ReviewsHarvested.Load(),
	}
}

// Result is the outcome of one batch run.
type Result struct {
	// Services is the accepted set in discovery order.
	Services []types.Service

	// Placeholder is true when Services is the deterministic placeholder
	// set because zero listings matched the taxonomy. This keeps "found
	// nothing" observable instead of indistinguishable from real data.
	Placeholder bool

	Stats   *Stats
	Elapsed time.Duration
}

// Runner executes the extraction-and-enrichment pipeline.
type Runner struct {
	cfg       *config.Config
	visitor   Visitor
	annotator *annotate.Annotator
	logger    *slog.Logger
}

// New creates a Runner.
func New(cfg *config.Config, visitor Visitor, annotator *annotate.Annotator, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:       cfg,
		visitor:   visitor,
		annotator: annotator,
		logger:    logger.With("component", "runner"),
	}
}

// Run performs one complete batch. Listing-level failures are logged and
// contained; only search bootstrap failures (no query surface at all)
// abort the run.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	stats := &Stats{}

	if err := r.visitor.OpenSearch(r.cfg.Search.Query); err != nil {
		return nil, fmt.Errorf("open search: %w", err)
	}

	count, err := r.visitor.LoadResults(ctx, r.cfg.Search.MaxResults)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	if count > r.cfg.Search.MaxResults {
		count = r.cfg.Search.MaxResults
	}

	seen := newDedup()
	var accepted []types.Service
	nextID := 1

	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		svc, ok := r.visitItem(ctx, i, strconv.Itoa(nextID), stats)
		if !ok {
			continue
		}

		if seen.isDuplicate(svc) {
			r.logger.Debug("duplicate listing skipped", "name", svc.Name)
			stats.ItemsSkipped.Add(1)
			continue
		}

		if r.annotator.AnnotateService(svc) {
			finalize(svc)
			accepted = append(accepted, *svc)
			nextID++
			stats.ItemsAccepted.Add(1)
			r.logger.Info("listing accepted",
				"id", svc.ID,
				"name", svc.Name,
				"mentions", len(svc.Mentions),
			)
		} else {
			stats.ItemsSkipped.Add(1)
			r.logger.Debug("listing skipped, no taxonomy mentions", "name", svc.Name)
		}
	}

	result := &Result{
		Services: accepted,
		Stats:    stats,
		Elapsed:  time.Since(start),
	}

	if len(accepted) == 0 {
		r.logger.Warn("zero listings matched the taxonomy")
		if !r.cfg.Output.Placeholder {
			return result, types.ErrNoMatches
		}
		result.Services = PlaceholderServices()
		result.Placeholder = true
		r.logger.Warn("substituting placeholder dataset",
			"services", len(result.Services),
		)
	}

	return result, nil
}

// visitItem focuses one result card, extracts its record and reviews,
// and always attempts to restore the list view afterwards. Any failure
// is contained to this item.
func (r *Runner) visitItem(ctx context.Context, i int, id string, stats *Stats) (svc *types.Service, ok bool) {
	stats.ItemsVisited.Add(1)

	defer func() {
		if err := r.visitor.RestoreList(); err != nil {
			r.logger.Warn("restore to list view failed", "item", i, "error", err)
		}
	}()

	if err := r.visitor.FocusItem(i); err != nil {
		stats.ItemsFailed.Add(1)
		r.logger.Warn("listing failed", "error", &types.ExtractError{Item: i, Err: err})
		return nil, false
	}

	svc, err := r.visitor.ExtractDetails(id)
	if err != nil {
		stats.ItemsFailed.Add(1)
		r.logger.Warn("listing failed", "error", &types.ExtractError{Item: i, Err: err})
		return nil, false
	}

	reviews, err := r.visitor.HarvestReviews(ctx, id)
	if err != nil {
		// Reviews are enrichment: keep the listing, log the loss.
		r.logger.Warn("review harvest failed",
			"error", &types.ExtractError{Item: i, Name: svc.Name, Err: err})
	}
	svc.Reviews = reviews
	stats.ReviewsHarvested.Add(int64(len(reviews)))

	return svc, true
}

// finalize derives the aggregate fields right before acceptance; the
// record is immutable afterwards.
func finalize(svc *types.Service) {
	if len(svc.Reviews) > 0 {
		sum := 0
		for _, rv := range svc.Reviews {
			sum += rv.Rating
		}
		mean := float64(sum) / float64(len(svc.Reviews))
		svc.AverageRating = math.Round(mean*10) / 10
	}
	// With no reviews the page's own displayed rating stands.
}

// dedup tracks listings already processed across re-reads of the
// virtualized list, which can repeat cards after focus restores.
type dedup struct {
	seen map[string]struct{}
}

func newDedup() *dedup {
	return &dedup{seen: make(map[string]struct{})}
}

func (d *dedup) isDuplicate(svc *types.Service) bool {
	key := strings.ToLower(strings.TrimSpace(svc.Name)) + "|" +
		strings.ToLower(strings.TrimSpace(svc.Address))
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}
