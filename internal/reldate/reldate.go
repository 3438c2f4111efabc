// Package reldate converts human-relative date phrases like "3 months
// ago" into absolute calendar dates anchored to a reference time.
package reldate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	yearsRe  = regexp.MustCompile(`(\d+) years ago`)
	monthsRe = regexp.MustCompile(`(\d+) months ago`)
	weeksRe  = regexp.MustCompile(`(\d+) weeks ago`)
	daysRe   = regexp.MustCompile(`(\d+) days ago`)
)

// Normalize resolves a relative phrase against ref. Recognized forms are
// "a <unit> ago" and "<N> <unit>s ago" for year, month, week and day,
// matched case-sensitively as substrings. Years and months subtract from
// the respective calendar field; weeks and days subtract whole days and
// roll over month and year boundaries. Anything else — "yesterday",
// localized strings — falls back to ref unchanged. Best effort only.
func Normalize(phrase string, ref time.Time) time.Time {
	switch {
	case strings.Contains(phrase, "a year ago"):
		return addYears(ref, -1)
	case yearsRe.MatchString(phrase):
		n := captureInt(yearsRe, phrase)
		return addYears(ref, -n)
	case strings.Contains(phrase, "a month ago"):
		return addMonths(ref, -1)
	case monthsRe.MatchString(phrase):
		n := captureInt(monthsRe, phrase)
		return addMonths(ref, -n)
	case strings.Contains(phrase, "a week ago"):
		return ref.AddDate(0, 0, -7)
	case weeksRe.MatchString(phrase):
		n := captureInt(weeksRe, phrase)
		return ref.AddDate(0, 0, -7*n)
	case strings.Contains(phrase, "a day ago"):
		return ref.AddDate(0, 0, -1)
	case daysRe.MatchString(phrase):
		n := captureInt(daysRe, phrase)
		return ref.AddDate(0, 0, -n)
	}
	return ref
}

// NormalizeToISO is Normalize formatted as the artifact's YYYY-MM-DD.
func NormalizeToISO(phrase string, ref time.Time) string {
	return Normalize(phrase, ref).Format("2006-01-02")
}

func captureInt(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	n, _ := strconv.Atoi(m[1])
	return n
}

// addYears subtracts into the year field directly, with no day-overflow
// correction (Feb 29 stays as handed to time.Date and normalizes there).
func addYears(t time.Time, delta int) time.Time {
	return time.Date(t.Year()+delta, t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// addMonths subtracts into the month field, carrying whole years.
func addMonths(t time.Time, delta int) time.Time {
	month := int(t.Month()) + delta
	year := t.Year()
	for month < 1 {
		month += 12
		year--
	}
	for month > 12 {
		month -= 12
		year++
	}
	return time.Date(year, time.Month(month), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
