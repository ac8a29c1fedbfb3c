// Package window narrows a historical rate series to the days covered by a
// named range relative to a reference time.
package window

import (
	"github.com/langowen/fxdash/internal/entities"
	"iter"
	"slices"
	"time"
)

// Filter returns the points of series dated on or after the cutoff of rng,
// oldest first. Nothing is computed until the sequence is ranged over and
// every iteration starts from scratch. Points dated after now are kept: the
// window has a floor but no ceiling.
func Filter(series entities.RateSeries, rng entities.Range, now time.Time) iter.Seq[entities.RatePoint] {
	return func(yield func(entities.RatePoint) bool) {
		for _, p := range filter(series, rng.Cutoff(now), time.Time{}) {
			if !yield(p.RatePoint) {
				return
			}
		}
	}
}

// Bounded is Filter with a ceiling: points dated after the calendar day of
// now are dropped as well.
func Bounded(series entities.RateSeries, rng entities.Range, now time.Time) iter.Seq[entities.RatePoint] {
	ceiling := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return func(yield func(entities.RatePoint) bool) {
		for _, p := range filter(series, rng.Cutoff(now), ceiling) {
			if !yield(p.RatePoint) {
				return
			}
		}
	}
}

// Points is Filter collected into a slice. The result is never nil.
func Points(series entities.RateSeries, rng entities.Range, now time.Time) []entities.RatePoint {
	points := slices.Collect(Filter(series, rng, now))
	if points == nil {
		return []entities.RatePoint{}
	}
	return points
}

type datedPoint struct {
	entities.RatePoint
	day time.Time
}

// filter keeps days in [cutoff, ceiling]; a zero ceiling means unbounded.
func filter(series entities.RateSeries, cutoff, ceiling time.Time) []datedPoint {
	points := make([]datedPoint, 0, len(series))

	for date, rate := range series {
		day, err := entities.ParseDate(date)
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			continue
		}
		if !ceiling.IsZero() && day.After(ceiling) {
			continue
		}
		points = append(points, datedPoint{
			RatePoint: entities.RatePoint{Date: date, Rate: rate},
			day:       day,
		})
	}

	slices.SortFunc(points, func(a, b datedPoint) int {
		return a.day.Compare(b.day)
	})

	return points
}
