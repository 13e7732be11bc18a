package filter

import (
	"strings"
	"time"

	"github.com/ngmaloney/ecowatch-terminal/internal/models"
)

// DateRange limits alerts to a recent window
type DateRange string

const (
	RangeDay      DateRange = "1day"
	RangeWeek     DateRange = "7days"
	RangeMonth    DateRange = "30days"
	RangeAllDates DateRange = All
)

// DateRanges lists the selectable ranges in display order
var DateRanges = []DateRange{RangeDay, RangeWeek, RangeMonth, RangeAllDates}

// Days returns the window length. Unknown ranges fall back to a week.
func (r DateRange) Days() (int, bool) {
	switch r {
	case "", RangeAllDates:
		return 0, false
	case RangeDay:
		return 1, true
	case RangeMonth:
		return 30, true
	default:
		return 7, true
	}
}

// AlertFilter is the alerts page filter state
type AlertFilter struct {
	Search    string
	Severity  models.AlertSeverity
	Type      models.AlertType
	Status    models.AlertStatus
	DateRange DateRange
}

// DefaultAlertFilter shows active alerts from the last week
func DefaultAlertFilter() AlertFilter {
	return AlertFilter{
		Severity:  All,
		Type:      All,
		Status:    models.StatusActive,
		DateRange: RangeWeek,
	}
}

// Alerts returns the alerts matching f, in source order
func Alerts(alerts []models.Alert, f AlertFilter, now time.Time) []models.Alert {
	var preds []func(models.Alert) bool

	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		preds = append(preds, func(a models.Alert) bool {
			return strings.Contains(strings.ToLower(a.Title), term) ||
				strings.Contains(strings.ToLower(a.Region), term) ||
				strings.Contains(strings.ToLower(a.Description), term)
		})
	}
	if enabled(f.Severity) {
		preds = append(preds, func(a models.Alert) bool { return a.Severity == f.Severity })
	}
	if enabled(f.Type) {
		preds = append(preds, func(a models.Alert) bool { return a.Type == f.Type })
	}
	if enabled(f.Status) {
		preds = append(preds, func(a models.Alert) bool { return a.Status == f.Status })
	}
	if days, ok := f.DateRange.Days(); ok {
		cutoff := Cutoff(now, days)
		preds = append(preds, func(a models.Alert) bool { return since(a.Date, cutoff) })
	}

	return Where(alerts, preds...)
}

// AlertStats are the header counters of the alerts page
type AlertStats struct {
	Total    int
	Active   int
	Critical int
	Resolved int
}

// CountAlerts counts over the full alert list, independent of any filter
func CountAlerts(alerts []models.Alert) AlertStats {
	s := AlertStats{Total: len(alerts)}
	for _, a := range alerts {
		switch a.Status {
		case models.StatusActive:
			s.Active++
		case models.StatusResolved:
			s.Resolved++
		}
		if a.Severity == models.SeverityCritical {
			s.Critical++
		}
	}
	return s
}

// MapPoints converts alerts into map points, skipping alerts without coordinates
func MapPoints(alerts []models.Alert) []models.VegetationDataItem {
	points := make([]models.VegetationDataItem, 0, len(alerts))
	for _, a := range alerts {
		if p, ok := a.ToMapPoint(); ok {
			points = append(points, p)
		}
	}
	return points
}
