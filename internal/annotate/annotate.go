// Package annotate fuses keyword matching and sentiment scoring into
// structured mention records, and applies the inclusion rule that decides
// which listings make it into the output set.
package annotate

import (
	"fmt"
	"log/slog"

	"github.com/blausm/dentscout/internal/match"
	"github.com/blausm/dentscout/internal/sentiment"
	"github.com/blausm/dentscout/internal/types"
)

// windowRadius is the raw context slice taken on each side of a match
// before word-boundary adjustment.
const windowRadius = 100

// SourceDescription labels mentions found in a listing's description.
const SourceDescription = "Description"

// Annotator tags text with mention records for one compiled taxonomy.
type Annotator struct {
	tax    *match.Taxonomy
	logger *slog.Logger
}

// New creates an Annotator over a compiled taxonomy.
func New(tax *match.Taxonomy, logger *slog.Logger) *Annotator {
	return &Annotator{
		tax:    tax,
		logger: logger.With("component", "annotator"),
	}
}

// Annotate scans text and emits one mention per matched taxonomy phrase,
// tagged with the caller's source label. Mention order follows taxonomy
// order.
func (a *Annotator) Annotate(text, source string) []types.Mention {
	var mentions []types.Mention
	for _, m := range a.tax.FindFirst(text) {
		ctx := contextWindow(text, m.Start, len(m.Keyword))
		score := sentiment.Score(ctx)
		mentions = append(mentions, types.Mention{
			Keyword:        m.Keyword,
			Context:        ctx,
			Source:         source,
			Sentiment:      score.Label,
			SentimentScore: score.Value,
		})
	}
	return mentions
}

// AnnotateService scans a listing's description and every review comment,
// attaching mention records in place. The returned bool is the inclusion
// decision: true iff at least one mention was found anywhere.
//
// Review-level mentions drop the source label (it is implicit); the
// listing-level copy keeps it.
func (a *Annotator) AnnotateService(svc *types.Service) bool {
	svc.Mentions = a.Annotate(svc.Description, SourceDescription)

	for i := range svc.Reviews {
		review := &svc.Reviews[i]
		source := fmt.Sprintf("Review by %s", review.Author)

		found := a.Annotate(review.Comment, source)
		if len(found) == 0 {
			continue
		}

		svc.Mentions = append(svc.Mentions, found...)

		review.Mentions = make([]types.Mention, len(found))
		for j, m := range found {
			m.Source = ""
			review.Mentions[j] = m
		}
	}

	if len(svc.Mentions) > 0 {
		a.logger.Debug("listing matched taxonomy",
			"name", svc.Name,
			"mentions", len(svc.Mentions),
		)
		return true
	}
	return false
}

// contextWindow slices up to windowRadius bytes on each side of the match
// and expands outward to the nearest space so no word is cut in half.
func contextWindow(text string, start, matchLen int) string {
	lo := start - windowRadius
	if lo < 0 {
		lo = 0
	}
	hi := start + matchLen + windowRadius
	if hi > len(text) {
		hi = len(text)
	}

	for lo > 0 && !isBoundary(text[lo-1]) {
		lo--
	}
	for hi < len(text) && !isBoundary(text[hi]) {
		hi++
	}

	return text[lo:hi]
}

// isBoundary reports whether a byte ends a word for window expansion.
// Any whitespace counts, so multi-line comments stop at line breaks.
func isBoundary(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
