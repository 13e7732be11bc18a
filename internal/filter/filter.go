// Package filter implements the derived views each dashboard page shows:
// predicate pipelines over the dataset snapshot and the small statistics
// computed from what survives them.
//
// Predicates combine with AND and the source order is preserved. An empty
// field or the value All disables that dimension.
package filter

import (
	"strconv"
	"time"
)

// All disables a filter dimension
const All = "all"

// Where applies preds in order and keeps the items that satisfy all of them.
// The result is never nil and never contains items missing from src.
func Where[T any](src []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(src))
next:
	for _, item := range src {
		for _, pred := range preds {
			if !pred(item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}

// Cutoff is the earliest instant kept by a "last N days" filter
func Cutoff(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

// since reports whether t falls on or after cutoff
func since(t, cutoff time.Time) bool {
	return !t.Before(cutoff)
}

func enabled[S ~string](v S) bool {
	return v != "" && v != All
}

// Summary holds numeric aggregates over a set of values
type Summary struct {
	Count int
	Avg   float64
	Min   float64
	Max   float64
}

// Summarize aggregates values. An empty input yields the zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	s := Summary{Count: len(values), Min: values[0], Max: values[0]}
	sum := 0.0
	for _, v := range values {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Avg = sum / float64(len(values))
	return s
}

// Stats are display-ready aggregates
type Stats struct {
	Avg string
	Max string
	Min string
}

// emptyStats is shown when a filter leaves nothing to aggregate
var emptyStats = Stats{Avg: "0", Max: "0", Min: "0"}

func formatStats(s Summary, precision int) Stats {
	if s.Count == 0 {
		return emptyStats
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', precision, 64) }
	return Stats{Avg: f(s.Avg), Max: f(s.Max), Min: f(s.Min)}
}
