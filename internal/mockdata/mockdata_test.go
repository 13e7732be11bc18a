package mockdata

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/ngmaloney/ecowatch-terminal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.October, 4, 14, 30, 0, 0, time.UTC)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestGenerateClimateData_Shape(t *testing.T) {
	data := GenerateClimateData(fixedNow, seeded(1))
	require.Len(t, data, Days*len(models.Regions))

	// Oldest day first, regions in fixed order within a day.
	assert.Equal(t, time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC), data[0].Date)
	assert.Equal(t, time.Date(2025, time.October, 4, 0, 0, 0, 0, time.UTC), data[len(data)-1].Date)
	for i, rec := range data {
		assert.Equal(t, models.Regions[i%len(models.Regions)], rec.Region, "record %d", i)
	}

	perRegion := map[models.Region]int{}
	for _, rec := range data {
		perRegion[rec.Region]++
	}
	for _, region := range models.Regions {
		assert.Equal(t, Days, perRegion[region], region)
	}
}

func TestGenerateClimateData_Bounds(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		for _, rec := range GenerateClimateData(fixedNow, seeded(seed)) {
			assert.GreaterOrEqual(t, rec.SoilMoisture, 0.0)
			assert.LessOrEqual(t, rec.SoilMoisture, 100.0)
			assert.GreaterOrEqual(t, rec.NDVI, 0.0)
			assert.LessOrEqual(t, rec.NDVI, 1.0)
			assert.GreaterOrEqual(t, rec.Precipitation, 0.0)
			assert.Equal(t, ClassifyRisk(rec.NDVI, rec.Temperature), rec.RiskLevel)
		}
	}
}

func TestGenerateClimateData_SeedIsReproducible(t *testing.T) {
	a := GenerateClimateData(fixedNow, seeded(42))
	b := GenerateClimateData(fixedNow, seeded(42))
	assert.Equal(t, a, b)
}

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		name        string
		ndvi        float64
		temperature float64
		want        models.RiskLevel
	}{
		{"low ndvi is critical", 0.29, 25, models.RiskCritical},
		{"heat alone is critical", 0.8, 35.1, models.RiskCritical},
		{"ndvi below 0.45", 0.3, 25, models.RiskHigh},
		{"heat above 32", 0.8, 32.5, models.RiskHigh},
		{"ndvi below 0.6", 0.45, 30, models.RiskMedium},
		{"healthy", 0.6, 30, models.RiskLow},
		{"35 is not above 35", 0.7, 35, models.RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRisk(tt.ndvi, tt.temperature))
		})
	}
}

func TestGenerateAlerts(t *testing.T) {
	alerts := GenerateAlerts(fixedNow)
	require.Len(t, alerts, 6)

	critical := 0
	types := map[models.AlertType]bool{}
	ids := map[string]bool{}
	for _, a := range alerts {
		assert.True(t, a.Severity.Valid(), a.ID)
		assert.True(t, a.Type.Valid(), a.ID)
		assert.True(t, a.Status.Valid(), a.ID)
		assert.False(t, a.Date.After(fixedNow), a.ID)
		assert.False(t, ids[a.ID], "duplicate id %s", a.ID)
		ids[a.ID] = true
		types[a.Type] = true
		if a.Severity == models.SeverityCritical {
			critical++
		}
	}
	assert.Equal(t, 1, critical)
	assert.Len(t, types, len(models.AlertTypes))
	assert.Equal(t, fixedNow.AddDate(0, 0, -5), alerts[5].Date)
}

func TestGenerateVegetationData(t *testing.T) {
	items := GenerateVegetationData(fixedNow)
	require.Len(t, items, 4)
	for _, item := range items {
		assert.True(t, item.RiskLevel.Valid(), item.ID)
		assert.NotZero(t, item.Coordinates.Latitude, item.ID)
		assert.Equal(t, fixedNow, item.Date)
	}
}

func TestSetClock(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(fixedNow))
	defer SetClock(nil)

	assert.Equal(t, fixedNow, Now())
}

func TestGenerators_ZeroNowUsesClock(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(fixedNow))
	t.Cleanup(func() { SetClock(nil) })

	climate := GenerateClimateData(time.Time{}, seeded(1))
	require.NotEmpty(t, climate)
	assert.Equal(t, time.Date(2025, time.October, 4, 0, 0, 0, 0, time.UTC), climate[len(climate)-1].Date)

	alerts := GenerateAlerts(time.Time{})
	require.NotEmpty(t, alerts)
	assert.Equal(t, fixedNow, alerts[0].Date)

	for _, v := range GenerateVegetationData(time.Time{}) {
		assert.Equal(t, fixedNow, v.Date, v.ID)
	}
}
