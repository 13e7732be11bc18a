package filter

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/ngmaloney/ecowatch-terminal/internal/mockdata"
	"github.com/ngmaloney/ecowatch-terminal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noon = time.Date(2025, time.October, 4, 12, 0, 0, 0, time.UTC)

func climateFixture(now time.Time) []models.ClimateRecord {
	return mockdata.GenerateClimateData(now, rand.New(rand.NewPCG(3, 3)))
}

func TestWhere_PreservesOrderAndSubset(t *testing.T) {
	src := []int{5, 1, 4, 2, 3, 6}
	got := Where(src, func(v int) bool { return v%2 == 0 }, func(v int) bool { return v > 2 })
	assert.Equal(t, []int{4, 6}, got)

	none := Where(src, func(int) bool { return false })
	assert.NotNil(t, none)
	assert.Empty(t, none)

	assert.Equal(t, src, Where(src))
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{2, 4, 9})
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 5.0, s.Avg, 1e-9)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestClimate_CuneneNDVIWeek(t *testing.T) {
	data := climateFixture(noon)
	require.Len(t, data, 90)

	f := ClimateFilter{Region: models.RegionCunene, DataType: models.DataNDVI, Period: PeriodWeek}
	got := Climate(data, f, noon)

	require.Len(t, got, 7)
	for _, r := range got {
		assert.Equal(t, models.RegionCunene, r.Region)
	}
}

func TestClimate_Month(t *testing.T) {
	data := climateFixture(noon)
	f := ClimateFilter{Region: models.RegionOkavango, DataType: models.DataTemperature, Period: PeriodMonth}
	assert.Len(t, Climate(data, f, noon), 30)

	// Unknown periods behave like a month.
	f.Period = "90days"
	assert.Len(t, Climate(data, f, noon), 30)
}

func TestClimate_CutoffIsInclusive(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, time.October, 4, 0, 0, 0, 0, time.UTC))
	data := climateFixture(clock.Now())
	f := ClimateFilter{Region: models.RegionNamibia, DataType: models.DataNDVI, Period: PeriodWeek}

	// At midnight the record dated exactly seven days ago sits on the cutoff.
	atBoundary := Climate(data, f, clock.Now())
	require.Len(t, atBoundary, 8)
	assert.Equal(t, Cutoff(clock.Now(), 7), atBoundary[0].Date)

	clock.Advance(time.Second)
	assert.Len(t, Climate(data, f, clock.Now()), 7)
}

func TestClimateStats(t *testing.T) {
	records := []models.ClimateRecord{
		{Temperature: 28.0, NDVI: 0.5123},
		{Temperature: 30.2, NDVI: 0.4},
	}

	temp := ClimateStats(records, models.DataTemperature)
	assert.Equal(t, Stats{Avg: "29.1", Max: "30.2", Min: "28.0"}, temp)

	ndvi := ClimateStats(records, models.DataNDVI)
	assert.Equal(t, Stats{Avg: "0.456", Max: "0.512", Min: "0.400"}, ndvi)
}

func TestClimateStats_Empty(t *testing.T) {
	for _, dt := range models.DataTypes {
		assert.Equal(t, Stats{Avg: "0", Max: "0", Min: "0"}, ClimateStats(nil, dt), dt)
	}
}

func TestClimateStats_UsesFilteredSubset(t *testing.T) {
	data := climateFixture(noon)
	f := ClimateFilter{Region: models.RegionNamibia, DataType: models.DataTemperature, Period: PeriodWeek}
	subset := Climate(data, f, noon)

	want := Summarize(Values(subset, models.DataTemperature))
	got := ClimateStats(subset, models.DataTemperature)
	assert.Equal(t, models.DataTemperature.Format(want.Max), got.Max)
	assert.Equal(t, models.DataTemperature.Format(want.Min), got.Min)
}

func TestMostRecentFirst(t *testing.T) {
	data := Climate(climateFixture(noon), DefaultClimateFilter(), noon)
	reversed := MostRecentFirst(data)

	require.Len(t, reversed, len(data))
	assert.Equal(t, data[len(data)-1], reversed[0])
	assert.True(t, reversed[0].Date.After(reversed[1].Date))
	// Source slice keeps its order.
	assert.True(t, data[0].Date.Before(data[1].Date))
}

func TestRiskDistribution(t *testing.T) {
	data := climateFixture(noon)
	counts := RiskDistribution(data)

	total := 0
	for _, level := range models.RiskLevels {
		total += counts[level]
	}
	assert.Equal(t, len(data), total)
}
