package extract

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/blausm/dentscout/internal/reldate"
	"github.com/blausm/dentscout/internal/scroll"
	"github.com/blausm/dentscout/internal/types"
)

// HarvestReviews opens the Reviews tab of the focused listing, scrolls
// the review feed to the configured cap, and parses the loaded cards.
// A listing without a Reviews tab yields an empty set, not an error.
func (e *Extractor) HarvestReviews(ctx context.Context, serviceID string) ([]types.Review, error) {
	if !e.sess.ClickXPath(xpReviewsTab) {
		e.logger.Debug("no reviews tab", "service_id", serviceID)
		return nil, nil
	}
	defer func() {
		if err := e.sess.Back(); err != nil {
			e.logger.Warn("restore after Reviews failed", "error", err)
		}
	}()

	maxReviews := e.cfg.Reviews.MaxPerListing
	if _, err := scroll.Run(ctx, reviewFeed{e.sess}, scroll.Options{
		Target:        maxReviews,
		MaxIdleRounds: e.cfg.Scroll.ReviewIdleMax,
		Pause:         e.cfg.Scroll.ReviewPause,
	}, e.logger); err != nil {
		return nil, &types.ScrollError{Feed: "reviews", Err: err}
	}

	snapshot, err := e.sess.HTML()
	if err != nil {
		return nil, &types.ScrollError{Feed: "reviews", Err: err}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snapshot))
	if err != nil {
		return nil, &types.ScrollError{Feed: "reviews", Err: err}
	}

	reviews := e.buildReviews(parseReviewCards(doc), serviceID)
	e.logger.Debug("reviews harvested", "service_id", serviceID, "count", len(reviews))
	return reviews, nil
}

// buildReviews converts raw cards into review records: ids are
// {serviceID}-{1-based index}, authors default to Anonymous, relative
// dates are anchored at extraction time, and the configured cap applies
// even if more cards were loaded.
func (e *Extractor) buildReviews(cards []rawReview, serviceID string) []types.Review {
	now := e.now()
	maxReviews := e.cfg.Reviews.MaxPerListing

	var reviews []types.Review
	for _, card := range cards {
		if len(reviews) >= maxReviews {
			break
		}
		if len(strings.TrimSpace(card.Comment)) < 10 {
			// Not enough text to be a review card.
			continue
		}

		author := card.Author
		if author == "" {
			author = "Anonymous"
		}

		reviews = append(reviews, types.Review{
			ID:        types.ReviewID(serviceID, len(reviews)+1),
			ServiceID: serviceID,
			Rating:    card.Rating,
			Comment:   card.Comment,
			Author:    author,
			Source:    e.cfg.Reviews.Source,
			Date:      reldate.NormalizeToISO(card.DateRaw, now),
		})
	}
	return reviews
}
