package mockdata

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/ngmaloney/ecowatch-terminal/internal/models"
)

// Days is the length of the generated climate series
const Days = 30

type baseline struct {
	temperature   float64
	soilMoisture  float64
	precipitation float64
	ndvi          float64
}

var baselines = map[models.Region]baseline{
	models.RegionCunene:   {temperature: 28, soilMoisture: 40, precipitation: 2, ndvi: 0.5},
	models.RegionNamibia:  {temperature: 22, soilMoisture: 20, precipitation: 0.5, ndvi: 0.2},
	models.RegionOkavango: {temperature: 30, soilMoisture: 70, precipitation: 5, ndvi: 0.8},
}

// GenerateClimateData builds Days days of records for every region, oldest
// day first and regions in models.Regions order within a day.
func GenerateClimateData(now time.Time, rng *rand.Rand) []models.ClimateRecord {
	if now.IsZero() {
		now = clock.Now()
	}
	today := startOfDay(now)
	data := make([]models.ClimateRecord, 0, Days*len(models.Regions))

	for i := Days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		offset := float64(i)

		for _, region := range models.Regions {
			base := baselines[region]

			temperature := round(base.temperature+math.Sin(offset/3)*3+(rng.Float64()-0.5)*2, 1)
			soilMoisture := clamp(round(base.soilMoisture-math.Cos(offset/5)*15+(rng.Float64()-0.5)*10, 1), 0, 100)

			rain := 0.0
			if rng.Float64() > 0.8 {
				rain = rng.Float64() * 10
			}
			precipitation := math.Max(0, round(base.precipitation+rain, 1))

			ndvi := clamp(round(base.ndvi+(soilMoisture-base.soilMoisture)/200-(temperature-base.temperature)/100, 3), 0, 1)

			data = append(data, models.ClimateRecord{
				Date:          day,
				Region:        region,
				Temperature:   temperature,
				SoilMoisture:  soilMoisture,
				Precipitation: precipitation,
				NDVI:          ndvi,
				RiskLevel:     ClassifyRisk(ndvi, temperature),
			})
		}
	}

	return data
}

// ClassifyRisk derives the risk level from NDVI and temperature thresholds.
// Either signal alone can raise the level.
func ClassifyRisk(ndvi, temperature float64) models.RiskLevel {
	switch {
	case ndvi < 0.3 || temperature > 35:
		return models.RiskCritical
	case ndvi < 0.45 || temperature > 32:
		return models.RiskHigh
	case ndvi < 0.6:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
