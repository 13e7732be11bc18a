package mockdata

import (
	"time"

	"github.com/ngmaloney/ecowatch-terminal/internal/models"
)

// GenerateAlerts returns the fixed alert list dated relative to now. A zero
// now reads the package clock.
func GenerateAlerts(now time.Time) []models.Alert {
	if now.IsZero() {
		now = clock.Now()
	}
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	return []models.Alert{
		{
			ID:          "1",
			Title:       "Queda Acentuada no NDVI",
			Description: "Redução de 45% no índice de vegetação no Cunene.",
			Region:      "Cunene, Angola",
			Date:        daysAgo(0),
			Severity:    models.SeverityCritical,
			Type:        models.TypeVegetation,
			Status:      models.StatusActive,
			Coordinates: &models.Coordinates{Latitude: -16.3167, Longitude: 15.8167},
			NDVIValue:   ptr(0.23),
		},
		{
			ID:          "2",
			Title:       "Temperatura Extremamente Alta",
			Description: "Temperatura atingiu 42°C, acima da média histórica.",
			Region:      "Costa da Namíbia",
			Date:        daysAgo(1),
			Severity:    models.SeverityHigh,
			Type:        models.TypeTemperature,
			Status:      models.StatusInvestigating,
			Coordinates: &models.Coordinates{Latitude: -22.9576, Longitude: 14.5053},
			Temperature: ptr(42),
		},
		{
			ID:          "3",
			Title:       "Umidade do Solo Crítica",
			Description: "Níveis de umidade abaixo de 15% por mais de 10 dias.",
			Region:      "Kalahari Central",
			Date:        daysAgo(2),
			Severity:    models.SeverityHigh,
			Type:        models.TypeMoisture,
			Status:      models.StatusActive,
			Coordinates: &models.Coordinates{Latitude: -23.0, Longitude: 21.0},
			NDVIValue:   ptr(0.18),
		},
		{
			ID:          "4",
			Title:       "Risco de Incêndio Florestal",
			Description: "Condições climáticas favoráveis para incêndios.",
			Region:      "Delta do Okavango",
			Date:        daysAgo(3),
			Severity:    models.SeverityMedium,
			Type:        models.TypeFire,
			Status:      models.StatusActive,
			Coordinates: &models.Coordinates{Latitude: -18.7573, Longitude: 22.0589},
		},
		{
			ID:           "5",
			Title:        "Cheia Sazonal Acima do Normal",
			Description:  "Nível da água no delta 30% acima da média para a estação.",
			Region:       "Delta do Okavango",
			Date:         daysAgo(4),
			Severity:     models.SeverityMedium,
			Type:         models.TypeFlood,
			Status:       models.StatusInvestigating,
			Coordinates:  &models.Coordinates{Latitude: -19.2833, Longitude: 22.9},
			SoilMoisture: ptr(92),
		},
		{
			ID:          "6",
			Title:       "Degradação de Pastagem",
			Description: "Redução na qualidade da vegetação.",
			Region:      "Cunene - Oshakati",
			Date:        daysAgo(5),
			Severity:    models.SeverityLow,
			Type:        models.TypeVegetation,
			Status:      models.StatusResolved,
			Coordinates: &models.Coordinates{Latitude: -17.7833, Longitude: 15.6833},
			NDVIValue:   ptr(0.31),
		},
	}
}

func ptr(v float64) *float64 {
	return &v
}
