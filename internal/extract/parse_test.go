package extract

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"

	"github.com/blausm/dentscout/internal/config"
)

func TestParseStarsFloat(t *testing.T) {
	tests := []struct {
		label string
		want  float64
	}{
		{"4.5 stars", 4.5},
		{"5 stars", 5},
		{"4.5 stars 1,208 Reviews", 4.5},
		{"no rating", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := parseStarsFloat(tt.label); got != tt.want {
			t.Errorf("parseStarsFloat(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestParseStarsInt(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"5 stars", 5},
		{"1 star", 1},
		{"3 stars, wheelchair accessible", 3},
		{"", 0},
	}
	for _, tt := range tests {
		if got := parseStarsInt(tt.label); got != tt.want {
			t.Errorf("parseStarsInt(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
}

func TestParseReviewCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"1,208 reviews", 1208},
		{"(42)", 42},
		{"no reviews", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := parseReviewCount(tt.text); got != tt.want {
			t.Errorf("parseReviewCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestParseCoords(t *testing.T) {
	lat, lon := parseCoords("https://www.google.com/maps/place/X/@40.7549,-73.984,17z/data=abc")
	if lat != 40.7549 || lon != -73.984 {
		t.Errorf("got %v,%v", lat, lon)
	}

	lat, lon = parseCoords("https://www.google.com/maps/search/dentists")
	if lat != FallbackLatitude || lon != FallbackLongitude {
		t.Errorf("expected fallback centroid, got %v,%v", lat, lon)
	}
}

func TestAboutText(t *testing.T) {
	snapshot := `<html><body>
		<div role="region"><p>Family dental practice.</p><p>Sensory friendly rooms.</p></div>
		<div role="region"><span>Wheelchair accessible.</span></div>
		<div>unrelated</div>
	</body></html>`
	doc, err := htmlquery.Parse(strings.NewReader(snapshot))
	if err != nil {
		t.Fatal(err)
	}
	got := aboutText(doc)
	want := "Family dental practice. Sensory friendly rooms. Wheelchair accessible."
	if got != want {
		t.Errorf("aboutText = %q, want %q", got, want)
	}
}

func TestAboutTextAdjacentBlocks(t *testing.T) {
	snapshot := `<html><body>
		<div role="region"><p>We support autism</p><p>friendly scheduling.</p></div>
	</body></html>`
	doc, err := htmlquery.Parse(strings.NewReader(snapshot))
	if err != nil {
		t.Fatal(err)
	}
	got := aboutText(doc)
	want := "We support autism friendly scheduling."
	if got != want {
		t.Errorf("aboutText = %q, want %q", got, want)
	}
	if strings.Contains(got, "autismfriendly") {
		t.Error("adjacent blocks must not glue words together")
	}
}

func TestAboutTextMissing(t *testing.T) {
	doc, err := htmlquery.Parse(strings.NewReader("<html><body><p>nothing</p></body></html>"))
	if err != nil {
		t.Fatal(err)
	}
	if got := aboutText(doc); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestParseHours(t *testing.T) {
	snapshot := `<html><body><table>
		<tr><td>Monday</td><td>9:00 AM - 5:00 PM</td></tr>
		<tr><td>Tuesday (Holiday)</td><td>Closed</td></tr>
		<tr><td>Suggest new hours</td><td>-</td></tr>
		<tr><td>Saturday</td><td>10:00 AM - 2:00 PM</td></tr>
	</table></body></html>`
	doc, err := htmlquery.Parse(strings.NewReader(snapshot))
	if err != nil {
		t.Fatal(err)
	}
	got := parseHours(doc)
	if got["Monday"] != "9:00 AM - 5:00 PM" {
		t.Errorf("Monday = %q", got["Monday"])
	}
	if got["Tuesday"] != "Closed" {
		t.Errorf("Tuesday = %q", got["Tuesday"])
	}
	if got["Saturday"] != "10:00 AM - 2:00 PM" {
		t.Errorf("Saturday = %q", got["Saturday"])
	}
	if _, ok := got["Suggest new hours"]; ok {
		t.Error("non-day row must be ignored")
	}
	if len(got) != 3 {
		t.Errorf("expected 3 days parsed, got %d: %v", len(got), got)
	}
}

const reviewFeedSnapshot = `<html><body><div role="feed">
	<div data-review-id="r1" aria-label="Dana Miles">
		<div class="d4r55 x1">Dana Miles</div>
		<span role="img" aria-label="5 stars"></span>
		<span class="rsqaWe">2 months ago</span>
		<span class="wiI7pd">Wonderful experience, the staff was gentle with my anxious daughter.</span>
	</div>
	<div data-review-id="r1">
		<span>nested duplicate of the same card</span>
	</div>
	<div data-review-id="r2">
		<span role="img" aria-label="2 stars"></span>
		<span class="rsqaWe">a week ago</span>
		<span class="wiI7pd">Long wait and the receptionist was rude to us.</span>
	</div>
	<div data-review-id="r3" aria-label="Ed">
		<span class="wiI7pd">ok</span>
	</div>
</div></body></html>`

func TestParseReviewCards(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(reviewFeedSnapshot))
	if err != nil {
		t.Fatal(err)
	}
	cards := parseReviewCards(doc)
	if len(cards) != 3 {
		t.Fatalf("expected 3 unique cards, got %d", len(cards))
	}

	if cards[0].Author != "Dana Miles" {
		t.Errorf("author = %q", cards[0].Author)
	}
	if cards[0].Rating != 5 {
		t.Errorf("rating = %d", cards[0].Rating)
	}
	if cards[0].DateRaw != "2 months ago" {
		t.Errorf("date = %q", cards[0].DateRaw)
	}
	if !strings.HasPrefix(cards[0].Comment, "Wonderful experience") {
		t.Errorf("comment = %q", cards[0].Comment)
	}

	// Second card has no author element or aria-label.
	if cards[1].Author != "" {
		t.Errorf("expected empty author, got %q", cards[1].Author)
	}
	if cards[1].Rating != 2 {
		t.Errorf("rating = %d", cards[1].Rating)
	}
}

func testExtractor() *Extractor {
	return &Extractor{
		cfg:    config.DefaultConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now: func() time.Time {
			return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
		},
	}
}

func TestBuildReviews(t *testing.T) {
	e := testExtractor()
	cards := []rawReview{
		{Author: "Dana Miles", Rating: 5, DateRaw: "2 months ago", Comment: "Wonderful experience, gentle staff."},
		{Author: "", Rating: 2, DateRaw: "a week ago", Comment: "Long wait and a rude receptionist."},
		{Author: "Ed", Rating: 4, DateRaw: "", Comment: "ok"}, // too short, skipped
	}

	reviews := e.buildReviews(cards, "7")
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}

	r := reviews[0]
	if r.ID != "7-1" || r.ServiceID != "7" {
		t.Errorf("id/serviceId = %q/%q", r.ID, r.ServiceID)
	}
	if r.Date != "2025-04-15" {
		t.Errorf("date = %q", r.Date)
	}
	if r.Source != "Google Maps" {
		t.Errorf("source = %q", r.Source)
	}

	if reviews[1].Author != "Anonymous" {
		t.Errorf("expected Anonymous default, got %q", reviews[1].Author)
	}
	if reviews[1].ID != "7-2" {
		t.Errorf("id = %q", reviews[1].ID)
	}
	if reviews[1].Date != "2025-06-08" {
		t.Errorf("date = %q", reviews[1].Date)
	}
}

func TestBuildReviewsCap(t *testing.T) {
	e := testExtractor()
	e.cfg.Reviews.MaxPerListing = 2

	cards := make([]rawReview, 5)
	for i := range cards {
		cards[i] = rawReview{Author: "A", Rating: 3, Comment: "A perfectly reasonable visit overall."}
	}

	reviews := e.buildReviews(cards, "1")
	if len(reviews) != 2 {
		t.Errorf("expected cap at 2, got %d", len(reviews))
	}
}
