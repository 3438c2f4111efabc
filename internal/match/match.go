// Package match compiles a keyword taxonomy into boundary-safe patterns
// and finds occurrences in free text.
package match

import (
	"fmt"
	"regexp"

	"github.com/blausm/dentscout/internal/types"
)

// Match is one keyword occurrence in a scanned text.
type Match struct {
	// Keyword is the canonical taxonomy phrase, as listed at compile
	// time (not the cased form found in the text).
	Keyword string

	// Start is the byte offset of the occurrence.
	Start int
}

// Taxonomy is an immutable, compiled keyword list. Each phrase becomes a
// case-insensitive pattern anchored on word boundaries, so "cat" never
// matches inside "cats".
type Taxonomy struct {
	phrases  []string
	patterns []*regexp.Regexp
}

// Compile builds a Taxonomy from canonical phrases, preserving order.
// Special characters in phrases are escaped and matched literally.
func Compile(phrases []string) (*Taxonomy, error) {
	if len(phrases) == 0 {
		return nil, types.ErrEmptyTaxonomy
	}

	t := &Taxonomy{
		phrases:  make([]string, len(phrases)),
		patterns: make([]*regexp.Regexp, len(phrases)),
	}
	copy(t.phrases, phrases)

	for i, phrase := range phrases {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("compile phrase %q: %w", phrase, err)
		}
		t.patterns[i] = re
	}
	return t, nil
}

// Len returns the number of compiled phrases.
func (t *Taxonomy) Len() int { return len(t.phrases) }

// Keywords returns a copy of the canonical phrase list in taxonomy order.
func (t *Taxonomy) Keywords() []string {
	out := make([]string, len(t.phrases))
	copy(out, t.phrases)
	return out
}

// FindFirst scans text once per phrase and reports at most one match per
// phrase that occurs, in taxonomy order (not document order). An empty
// text yields an empty result.
func (t *Taxonomy) FindFirst(text string) []Match {
	if text == "" {
		return nil
	}

	var matches []Match
	for i, re := range t.patterns {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		matches = append(matches, Match{
			Keyword: t.phrases[i],
			Start:   loc[0],
		})
	}
	return matches
}
