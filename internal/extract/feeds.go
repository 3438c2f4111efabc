package extract

import (
	"github.com/blausm/dentscout/internal/browser"
)

// listFeed adapts the virtualized result list to scroll.Feed.
type listFeed struct {
	sess *browser.Session
}

func (f listFeed) Count() (int, error) {
	return f.sess.CountElements(selResultItem)
}

func (f listFeed) LoadMore() error {
	return f.sess.ScrollFeedBottom(selResultFeed)
}

// reviewFeed adapts the per-listing review pane to scroll.Feed. It
// reuses the same feed container, which holds review cards once the
// Reviews tab is open.
type reviewFeed struct {
	sess *browser.Session
}

func (f reviewFeed) Count() (int, error) {
	return f.sess.CountElements(selReviewCard)
}

func (f reviewFeed) LoadMore() error {
	return f.sess.ScrollFeedBottom(selResultFeed)
}
