package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/blausm/dentscout/internal/types"
)

var (
	starsFloatRe = regexp.MustCompile(`([\d.]+) stars`)
	starsIntRe   = regexp.MustCompile(`(\d+) stars?`)
	coordsRe     = regexp.MustCompile(`@(-?[\d.]+),(-?[\d.]+)`)
	nonDigitRe   = regexp.MustCompile(`[^\d]`)
)

// Fallback coordinates: New York City centroid, used when the location
// reference carries no @lat,lon pair.
const (
	FallbackLatitude  = 40.7128
	FallbackLongitude = -74.0060
)

// parseStarsFloat pulls the rating out of an aria label like
// "4.5 stars". Returns 0 when the shape is unexpected.
func parseStarsFloat(label string) float64 {
	m := starsFloatRe.FindStringSubmatch(label)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}

// parseStarsInt pulls an integer rating out of an aria label like
// "5 stars" or "1 star". Returns 0 when the shape is unexpected.
func parseStarsInt(label string) int {
	m := starsIntRe.FindStringSubmatch(label)
	if m == nil {
		return 0
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return v
}

// parseReviewCount strips everything but digits from a text like
// "1,208 reviews" and parses the remainder.
func parseReviewCount(text string) int {
	digits := nonDigitRe.ReplaceAllString(text, "")
	if digits == "" {
		return 0
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return v
}

// parseCoords extracts the @lat,lon pair embedded in the current
// location reference. Falls back to the fixed city centroid.
func parseCoords(url string) (lat, lon float64) {
	m := coordsRe.FindStringSubmatch(url)
	if m == nil {
		return FallbackLatitude, FallbackLongitude
	}
	lat, errLat := strconv.ParseFloat(m[1], 64)
	lon, errLon := strconv.ParseFloat(m[2], 64)
	if errLat != nil || errLon != nil {
		return FallbackLatitude, FallbackLongitude
	}
	return lat, lon
}

// aboutText concatenates all visible text inside expandable About
// regions of the snapshot. Empty when no region exists. Text nodes are
// joined one by one so adjacent block elements never glue words together.
func aboutText(doc *html.Node) string {
	var parts []string
	for _, region := range htmlquery.Find(doc, "//div[@role='region']") {
		for _, node := range htmlquery.Find(region, ".//text()") {
			text := strings.Join(strings.Fields(node.Data), " ")
			if text != "" {
				parts = append(parts, text)
			}
		}
	}
	return strings.Join(parts, " ")
}

// parseHours reads the opening-hours table from a snapshot: one row per
// day, first cell the day name, second the hours string. Rows that do
// not start with a canonical day name are ignored.
func parseHours(doc *html.Node) map[string]string {
	hours := make(map[string]string)
	for _, row := range htmlquery.Find(doc, "//tr") {
		cells := htmlquery.Find(row, "./td")
		if len(cells) < 2 {
			continue
		}
		day := canonicalDay(strings.TrimSpace(htmlquery.InnerText(cells[0])))
		if day == "" {
			continue
		}
		hour := strings.Join(strings.Fields(htmlquery.InnerText(cells[1])), " ")
		if hour != "" {
			hours[day] = hour
		}
	}
	return hours
}

// canonicalDay maps a cell text onto one of the seven canonical day
// names, tolerating trailing decoration ("Monday (Memorial Day)").
func canonicalDay(text string) string {
	for _, day := range types.DayNames {
		if strings.HasPrefix(text, day) {
			return day
		}
	}
	return ""
}

// rawReview is one review card before date normalization and id
// assignment.
type rawReview struct {
	Author  string
	Rating  int
	DateRaw string
	Comment string
}

// parseReviewCards extracts raw review records from a reviews-feed
// snapshot. Cards are keyed by their review id attribute; nested
// duplicates of the same card collapse to the first occurrence.
func parseReviewCards(doc *goquery.Document) []rawReview {
	var out []rawReview
	seen := make(map[string]bool)

	doc.Find("div[role='feed'] div[data-review-id]").Each(func(_ int, card *goquery.Selection) {
		id, _ := card.Attr("data-review-id")
		if id == "" || seen[id] {
			return
		}
		seen[id] = true

		var r rawReview

		r.Author = strings.TrimSpace(card.Find("div[class*='d4r55']").First().Text())
		if r.Author == "" {
			r.Author, _ = card.Attr("aria-label")
			r.Author = strings.TrimSpace(r.Author)
		}

		if label, ok := card.Find("span[role='img'][aria-label*='star']").First().Attr("aria-label"); ok {
			r.Rating = parseStarsInt(label)
		}

		card.Find("span").EachWithBreak(func(_ int, span *goquery.Selection) bool {
			text := strings.TrimSpace(span.Text())
			if strings.HasSuffix(text, " ago") && len(text) < 40 {
				r.DateRaw = text
				return false
			}
			return true
		})

		r.Comment = strings.TrimSpace(card.Find("span[class*='wiI7pd']").First().Text())
		if r.Comment == "" {
			// Fall back to the longest span text that is not a label we
			// already consumed.
			card.Find("span").Each(func(_ int, span *goquery.Selection) {
				text := strings.TrimSpace(span.Text())
				if text == r.Author || text == r.DateRaw {
					return
				}
				if len(text) > len(r.Comment) {
					r.Comment = text
				}
			})
		}

		out = append(out, r)
	})

	return out
}
