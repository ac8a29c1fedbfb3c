package entities

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// RateSeries maps an ISO calendar date to the rate observed on that day.
// Keys arrive in no particular order.
type RateSeries map[string]float64

type RatePoint struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

type Range string

const (
	Range5D  Range = "5D"
	Range1M  Range = "1M"
	Range6M  Range = "6M"
	RangeYTD Range = "YTD"

	DefaultRange = Range1M
)

var Ranges = []Range{Range5D, Range1M, Range6M, RangeYTD}

func ParseRange(s string) (Range, error) {
	r := Range(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case Range5D, Range1M, Range6M, RangeYTD:
		return r, nil
	default:
		return "", ErrUnknownRange
	}
}

// Normalize maps unknown or empty tokens to DefaultRange.
func (r Range) Normalize() Range {
	if parsed, err := ParseRange(string(r)); err == nil {
		return parsed
	}
	return DefaultRange
}

// Cutoff returns the first calendar day, in UTC, that belongs to the window
// ending at now. Unknown tokens use the one month rule.
func (r Range) Cutoff(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch r.Normalize() {
	case Range5D:
		return day.AddDate(0, 0, -5)
	case Range6M:
		return monthsBefore(day, 6)
	case RangeYTD:
		return time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return monthsBefore(day, 1)
	}
}

// monthsBefore clamps to the last day of the target month instead of
// overflowing into the next one (Mar 31 minus one month is Feb 28).
func monthsBefore(day time.Time, months int) time.Time {
	first := time.Date(day.Year(), day.Month()-time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()

	d := day.Day()
	if d > last {
		d = last
	}

	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
