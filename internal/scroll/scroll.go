// Package scroll drives virtualized "load more" feeds until a target
// count is reached or the feed converges.
package scroll

import (
	"context"
	"log/slog"
	"time"
)

// Feed is any incrementally-loading collection: the map result list and
// the per-listing review pane both satisfy it.
type Feed interface {
	// Count reports the number of currently loaded items.
	Count() (int, error)

	// LoadMore triggers the next load, typically by scrolling the feed
	// container to its bottom.
	LoadMore() error
}

// Options bound one scroll run.
type Options struct {
	// Target is the item count at which the run stops successfully.
	Target int

	// MaxIdleRounds is the number of consecutive unchanged polls after
	// which the feed is considered converged. This is the sole
	// termination guarantee besides Target; there is no wall-clock bound.
	MaxIdleRounds int

	// Pause is the wait after each LoadMore before re-polling.
	Pause time.Duration
}

// Run polls the feed until Target is reached or MaxIdleRounds unchanged
// polls occur, returning the final count. Context cancellation aborts
// between rounds.
func Run(ctx context.Context, feed Feed, opts Options, logger *slog.Logger) (int, error) {
	logger = logger.With("component", "scroller")

	last := -1
	idle := 0

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		count, err := feed.Count()
		if err != nil {
			return 0, err
		}

		if count >= opts.Target {
			logger.Debug("target reached", "count", count, "target", opts.Target)
			return count, nil
		}

		if count == last {
			idle++
			if idle >= opts.MaxIdleRounds {
				logger.Debug("feed converged", "count", count, "idle_rounds", idle)
				return count, nil
			}
		} else {
			idle = 0
		}
		last = count

		if err := feed.LoadMore(); err != nil {
			return count, err
		}

		select {
		case <-ctx.Done():
			return count, ctx.Err()
		case <-time.After(opts.Pause):
		}
	}
}
