package mockdata

import (
	"time"

	"github.com/ngmaloney/ecowatch-terminal/internal/models"
)

// GenerateVegetationData returns the fixed vegetation observations, all dated
// now. A zero now reads the package clock.
func GenerateVegetationData(now time.Time) []models.VegetationDataItem {
	if now.IsZero() {
		now = clock.Now()
	}
	return []models.VegetationDataItem{
		{
			ID:             "1",
			Region:         "Costa da Namíbia",
			Date:           now,
			NDVIValue:      0.14,
			Temperature:    28.5,
			SoilMoisture:   12,
			RiskLevel:      models.RiskCritical,
			VegetationType: models.VegetationDesert,
			Coordinates:    models.Coordinates{Latitude: -22.9576, Longitude: 14.5053},
		},
		{
			ID:             "2",
			Region:         "Cunene, Angola",
			Date:           now,
			NDVIValue:      0.43,
			Temperature:    32.1,
			SoilMoisture:   25,
			RiskLevel:      models.RiskHigh,
			VegetationType: models.VegetationSavanna,
			Coordinates:    models.Coordinates{Latitude: -16.3167, Longitude: 15.8167},
		},
		{
			ID:             "3",
			Region:         "Delta do Okavango",
			Date:           now,
			NDVIValue:      0.78,
			Temperature:    26.8,
			SoilMoisture:   85,
			RiskLevel:      models.RiskLow,
			VegetationType: models.VegetationForest,
			Coordinates:    models.Coordinates{Latitude: -18.7573, Longitude: 22.0589},
		},
		{
			ID:             "4",
			Region:         "Cunene - Oshakati",
			Date:           now,
			NDVIValue:      0.52,
			Temperature:    30.2,
			SoilMoisture:   35,
			RiskLevel:      models.RiskMedium,
			VegetationType: models.VegetationSavanna,
			Coordinates:    models.Coordinates{Latitude: -17.7833, Longitude: 15.6833},
		},
	}
}
