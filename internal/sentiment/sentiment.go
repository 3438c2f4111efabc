// Package sentiment scores text polarity against an embedded valence
// lexicon and maps the result to a 3-class label.
package sentiment

import (
	"math"
	"regexp"
	"strings"

	"github.com/blausm/dentscout/internal/types"
)

// Thresholds for the 3-class mapping on the comparative scale.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

var wordRe = regexp.MustCompile(`[a-zA-Z']+`)

// Result is the outcome of scoring one text window.
type Result struct {
	Label types.Sentiment

	// Value is the comparative polarity: the sum of matched-word
	// valences divided by the word count, rounded to 2 decimals.
	Value float64
}

// Score rates the polarity of text. Empty or punctuation-only input is
// not an error; it scores as neutral zero.
func Score(text string) Result {
	words := wordRe.FindAllString(text, -1)
	if len(words) == 0 {
		return Result{Label: types.SentimentNeutral, Value: 0}
	}

	sum := 0
	for _, w := range words {
		if v, ok := valences[strings.ToLower(w)]; ok {
			sum += v
		}
	}

	// The label comes from the raw quotient; rounding is for reporting
	// only and must not pull a value back across a threshold.
	raw := float64(sum) / float64(len(words))

	label := types.SentimentNeutral
	switch {
	case raw > positiveThreshold:
		label = types.SentimentPositive
	case raw < negativeThreshold:
		label = types.SentimentNegative
	}

	return Result{Label: label, Value: round2(raw)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
