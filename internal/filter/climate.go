package filter

import (
	"slices"
	"time"

	"github.com/ngmaloney/ecowatch-terminal/internal/models"
)

// Period is the climate page time window
type Period string

const (
	PeriodWeek  Period = "7days"
	PeriodMonth Period = "30days"
)

// Periods lists the selectable windows
var Periods = []Period{PeriodWeek, PeriodMonth}

// Days returns the window length; anything but a week is a month
func (p Period) Days() int {
	if p == PeriodWeek {
		return 7
	}
	return 30
}

// ClimateFilter is the climate page filter state
type ClimateFilter struct {
	Region   models.Region
	DataType models.DataType
	Period   Period
}

// DefaultClimateFilter shows a month of Cunene temperatures
func DefaultClimateFilter() ClimateFilter {
	return ClimateFilter{
		Region:   models.RegionCunene,
		DataType: models.DataTemperature,
		Period:   PeriodMonth,
	}
}

// Climate returns the records of the selected region inside the period, in
// source order. DataType does not filter; it selects what Stats aggregates.
func Climate(records []models.ClimateRecord, f ClimateFilter, now time.Time) []models.ClimateRecord {
	cutoff := Cutoff(now, f.Period.Days())
	return Where(records,
		func(r models.ClimateRecord) bool { return r.Region == f.Region },
		func(r models.ClimateRecord) bool { return since(r.Date, cutoff) },
	)
}

// Values extracts the measurement selected by dataType
func Values(records []models.ClimateRecord, dataType models.DataType) []float64 {
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.Value(dataType)
	}
	return values
}

// ClimateStats formats avg/max/min of the selected measurement with its
// display precision. An empty set yields "0" for all three.
func ClimateStats(records []models.ClimateRecord, dataType models.DataType) Stats {
	return formatStats(Summarize(Values(records, dataType)), dataType.Precision())
}

// MostRecentFirst returns a reversed copy for the table view
func MostRecentFirst(records []models.ClimateRecord) []models.ClimateRecord {
	out := slices.Clone(records)
	slices.Reverse(out)
	return out
}

// RiskDistribution counts records per risk level over the filtered set
func RiskDistribution(records []models.ClimateRecord) map[models.RiskLevel]int {
	counts := make(map[models.RiskLevel]int, len(models.RiskLevels))
	for _, level := range models.RiskLevels {
		counts[level] = 0
	}
	for _, r := range records {
		counts[r.RiskLevel]++
	}
	return counts
}
