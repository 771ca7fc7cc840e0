package dataset

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// millionRegexp captures shorthand prices like "3.5m" or "12 m"
	millionRegexp = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*m\b`)
	// digitRegexp strips everything that is not a digit
	digitRegexp = regexp.MustCompile(`[^0-9]`)
)

// dateLayouts are tried in order. Numeric dates are day-first.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"2 January 2006",
	"2006-01-02",
}

// NormalizePrice parses a raw price string into a numeric amount.
// It handles currency symbols, thousands separators and the "3.5m"
// millions shorthand. The second return value is false when no usable
// amount could be extracted; parse failures never propagate as errors.
func NormalizePrice(raw string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")

	if m := millionRegexp.FindStringSubmatch(s); m != nil {
		val, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return val * 1_000_000, true
	}

	digits := digitRegexp.ReplaceAllString(s, "")
	if digits == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// NormalizeDate parses a raw date string, interpreting ambiguous numeric
// dates day-first. Unparseable input returns false, never an error.
func NormalizeDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthBucket derives the calendar-month key used for trend grouping.
func MonthBucket(t time.Time) string {
	return t.Format("2006-01")
}
