package types

import "fmt"

// Sentiment is the 3-class polarity label attached to a mention.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// DayNames are the canonical hour-map keys, in week order. Every Service
// carries exactly these seven keys.
var DayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Mention records one taxonomy keyword occurrence together with its
// sentiment-scored context window.
type Mention struct {
	// Keyword is the canonical taxonomy phrase that matched.
	Keyword string `json:"keyword"`

	// Context is the word-boundary-adjusted text window around the match.
	Context string `json:"context"`

	// Source labels where the mention was found ("Description" or
	// "Review by X"). Omitted on review-level mentions, where the source
	// is implicit.
	Source string `json:"source,omitempty"`

	Sentiment      Sentiment `json:"sentiment"`
	SentimentScore float64   `json:"sentiment_score"`
}

// Review is one harvested review record, owned by its Service.
type Review struct {
	ID        string    `json:"id"`
	ServiceID string    `json:"serviceId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Author    string    `json:"author"`
	Source    string    `json:"source"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Mentions  []Mention `json:"mentions,omitempty"`
}

// Service is one extracted business listing. A Service enters the output
// set only when at least one Mention was found in its description or in
// any of its reviews; after acceptance it is never mutated.
type Service struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"shortDescription"`
	Category         string            `json:"category"`
	Address          string            `json:"address"`
	Latitude         float64           `json:"latitude"`
	Longitude        float64           `json:"longitude"`
	Phone            string            `json:"phone"`
	Website          string            `json:"website,omitempty"`
	Hours            map[string]string `json:"hours"`
	AverageRating    float64           `json:"averageRating,omitempty"`
	Reviews          []Review          `json:"reviews,omitempty"`
	Mentions         []Mention         `json:"mentions,omitempty"`
}

// ShortDescriptionLimit is the truncation point for derived short
// descriptions.
const ShortDescriptionLimit = 100

// Shorten derives a short description from a full one: the first 100
// characters plus an ellipsis when longer.
func Shorten(description string) string {
	if len(description) > ShortDescriptionLimit {
		return description[:ShortDescriptionLimit] + "..."
	}
	return description
}

// DefaultHours returns the fallback weekly schedule used when no hours
// could be extracted.
func DefaultHours() map[string]string {
	return map[string]string{
		"Monday":    "9:00 AM - 5:00 PM",
		"Tuesday":   "9:00 AM - 5:00 PM",
		"Wednesday": "9:00 AM - 5:00 PM",
		"Thursday":  "9:00 AM - 5:00 PM",
		"Friday":    "9:00 AM - 5:00 PM",
		"Saturday":  "Closed",
		"Sunday":    "Closed",
	}
}

// NormalizeHours fills any missing canonical day keys from the defaults
// and drops non-canonical keys, so consumers always see exactly seven
// entries.
func NormalizeHours(hours map[string]string) map[string]string {
	defaults := DefaultHours()
	out := make(map[string]string, len(DayNames))
	for _, day := range DayNames {
		if h, ok := hours[day]; ok && h != "" {
			out[day] = h
		} else {
			out[day] = defaults[day]
		}
	}
	return out
}

// ReviewID synthesizes the id for the 1-based i-th review of a service.
func ReviewID(serviceID string, i int) string {
	return fmt.Sprintf("%s-%d", serviceID, i)
}
