// Package extract pulls listing and review records out of the focused
// map UI state, tolerating partial field availability.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/antchfx/htmlquery"

	"github.com/blausm/dentscout/internal/browser"
	"github.com/blausm/dentscout/internal/config"
	"github.com/blausm/dentscout/internal/scroll"
	"github.com/blausm/dentscout/internal/types"
)

// Extractor drives the shared browser session to extract one listing at
// a time. It is not safe for concurrent use: every call mutates the
// single shared focus state.
type Extractor struct {
	sess   *browser.Session
	cfg    *config.Config
	logger *slog.Logger

	// now anchors relative review dates; injectable for tests.
	now func() time.Time
}

// New creates an Extractor over an open browser session.
func New(sess *browser.Session, cfg *config.Config, logger *slog.Logger) *Extractor {
	return &Extractor{
		sess:   sess,
		cfg:    cfg,
		logger: logger.With("component", "extractor"),
		now:    time.Now,
	}
}

// OpenSearch submits the configured query and waits for the result feed.
func (e *Extractor) OpenSearch(query string) error {
	return e.sess.OpenSearch(query)
}

// LoadResults scrolls the result feed until target items are visible or
// the feed converges, returning the loaded count.
func (e *Extractor) LoadResults(ctx context.Context, target int) (int, error) {
	count, err := scroll.Run(ctx, listFeed{e.sess}, scroll.Options{
		Target:        target,
		MaxIdleRounds: e.cfg.Scroll.ListIdleMax,
		Pause:         e.cfg.Scroll.ListPause,
	}, e.logger)
	if err != nil {
		return count, &types.ScrollError{Feed: "results", Err: err}
	}
	e.logger.Info("result list loaded", "count", count, "target", target)
	return count, nil
}

// FocusItem clicks the i-th result card, moving the shared focus into
// that listing's detail pane.
func (e *Extractor) FocusItem(i int) error {
	if err := e.sess.ClickNth(selResultItem, i); err != nil {
		return fmt.Errorf("focus item %d: %w", i, err)
	}
	return nil
}

// RestoreList navigates back to the list view. Called after every item,
// success or failure, to recover the shared focus state.
func (e *Extractor) RestoreList() error {
	return e.sess.Back()
}

// ExtractDetails reads the focused detail pane into a Service record.
// Each field is extracted independently; a missing or unparsable field
// takes its documented default. Only a missing name is unrecoverable,
// since nothing else identifies the listing.
func (e *Extractor) ExtractDetails(id string) (*types.Service, error) {
	name := strings.TrimSpace(e.sess.TextOr(selName, ""))
	if name == "" {
		return nil, fmt.Errorf("detail pane: %w", types.ErrNotFound)
	}

	address := strings.TrimSpace(e.sess.TextOr(selAddress, ""))
	phone := strings.TrimSpace(e.sess.TextOr(selPhone, ""))
	website := e.sess.AttrOr(selWebsite, "href", "")
	pageRating := parseStarsFloat(e.sess.AttrOr(selRatingLabel, "aria-label", ""))
	reviewCount := parseReviewCount(e.sess.TextOr(selReviewCount, ""))
	lat, lon := parseCoords(e.sess.CurrentURL())

	description := e.extractAbout()
	hours := e.extractHours()

	if description == "" {
		description = fmt.Sprintf("Dental practice located in %s.", address)
	}

	svc := &types.Service{
		ID:               id,
		Name:             name,
		Description:      description,
		ShortDescription: types.Shorten(description),
		Category:         e.cfg.Search.Category,
		Address:          address,
		Latitude:         lat,
		Longitude:        lon,
		Phone:            phone,
		Website:          website,
		Hours:            types.NormalizeHours(hours),
		AverageRating:    pageRating,
	}

	e.logger.Debug("listing extracted",
		"id", id,
		"name", name,
		"rating", pageRating,
		"review_count", reviewCount,
	)
	return svc, nil
}

// extractAbout opens the About tab when present and concatenates the
// region text, restoring focus afterwards.
func (e *Extractor) extractAbout() string {
	if !e.sess.ClickXPath(xpAboutTab) {
		return ""
	}
	defer func() {
		if err := e.sess.Back(); err != nil {
			e.logger.Warn("restore after About failed", "error", err)
		}
	}()

	snapshot, err := e.sess.HTML()
	if err != nil {
		e.logger.Warn("About snapshot failed", "error", err)
		return ""
	}
	doc, err := htmlquery.Parse(strings.NewReader(snapshot))
	if err != nil {
		return ""
	}
	return aboutText(doc)
}

// extractHours opens the hours dropdown when present and reads the
// weekly table, restoring focus afterwards. The result may be partial;
// the caller normalizes to the seven canonical keys.
func (e *Extractor) extractHours() map[string]string {
	if !e.sess.ClickXPath(xpHoursTab) {
		return nil
	}
	defer func() {
		if err := e.sess.Back(); err != nil {
			e.logger.Warn("restore after Hours failed", "error", err)
		}
	}()

	snapshot, err := e.sess.HTML()
	if err != nil {
		e.logger.Warn("Hours snapshot failed", "error", err)
		return nil
	}
	doc, err := htmlquery.Parse(strings.NewReader(snapshot))
	if err != nil {
		return nil
	}
	return parseHours(doc)
}
