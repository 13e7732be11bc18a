package analysis

// Overview is the content shown on the analysis page. The values are fixed
// demonstration figures until a real analysis backend supplies them.
type Overview struct {
	Zone      MonitoredZone
	Period    Period
	Sensors   []Sensor
	Metrics   Metrics
	Alerts    []ZoneAlert
	RiskIndex []RiskIndex
	Hotspots  []Hotspot
}

type MonitoredZone struct {
	Name        string
	AreaKm2     float64
	Biome       string
	Coordinates LatLng
	LastUpdate  string
	Status      string
}

type Sensor struct {
	ID   string
	Name string
}

type Metrics struct {
	VegetationHealth   float64
	VegetationTrend    string
	VegetationChange   string
	WaterStress        float64
	WaterStressLevel   string
	WaterStressChange  string
	FireRisk           string
	FireRiskLevel      string
	FireProbability    float64
	TemperatureAnomaly float64
	EnvironmentalScore int
	ScoreLevel         string
}

type ZoneAlert struct {
	ID        string
	Type      string
	Level     string
	Message   string
	Timestamp string
}

// RiskIndex is a 0-100 score for one hazard
type RiskIndex struct {
	Type        string
	Value       int
	Level       string
	Trend       string
	Factors     []string
	Probability float64
}

type Hotspot struct {
	ID            string
	Coordinates   LatLng
	RiskType      string
	Intensity     int
	AreaKm2       float64
	Trend         string
	LastDetection string
}

// DefaultOverview returns the demonstration content for the analysis page
func DefaultOverview() Overview {
	return Overview{
		Zone: MonitoredZone{
			Name:        "Reserva do Calulu",
			AreaKm2:     1200,
			Biome:       "Savana Arborizada",
			Coordinates: LatLng{Lat: -10.73, Lng: 14.91},
			LastUpdate:  "Há 45 minutos",
			Status:      "critical",
		},
		Period: Period{Start: "2024-05-01", End: "2024-06-01"},
		Sensors: []Sensor{
			{ID: "landsat", Name: "Landsat"},
			{ID: "modis", Name: "MODIS"},
			{ID: "smap", Name: "SMAP"},
			{ID: "grace", Name: "GRACE"},
		},
		Metrics: Metrics{
			VegetationHealth:   0.72,
			VegetationTrend:    "improving",
			VegetationChange:   "+5%",
			WaterStress:        0.45,
			WaterStressLevel:   "high",
			WaterStressChange:  "-12%",
			FireRisk:           "Alto",
			FireRiskLevel:      "high",
			FireProbability:    0.87,
			TemperatureAnomaly: 1.2,
			EnvironmentalScore: 68,
			ScoreLevel:         "moderate",
		},
		Alerts: []ZoneAlert{
			{ID: "1", Type: "drought", Level: "high", Message: "NDWI abaixo de 0.5 - Alerta de Seca Moderada", Timestamp: "2024-06-01T10:30:00Z"},
			{ID: "2", Type: "temperature", Level: "moderate", Message: "Temperatura +1.2°C acima da média histórica", Timestamp: "2024-06-01T09:15:00Z"},
			{ID: "3", Type: "fire", Level: "high", Message: "Risco de Incêndio > 80% - Condições críticas", Timestamp: "2024-06-01T08:45:00Z"},
		},
		RiskIndex: []RiskIndex{
			{Type: "fire", Value: 78, Level: "high", Trend: "increasing", Probability: 0.78,
				Factors: []string{"Temperatura elevada", "Baixa umidade", "Vegetação seca", "Ventos fortes"}},
			{Type: "drought", Value: 65, Level: "moderate", Trend: "stable", Probability: 0.65,
				Factors: []string{"Precipitação abaixo da média", "Umidade do solo baixa", "Temperaturas altas"}},
			{Type: "degradation", Value: 42, Level: "moderate", Trend: "increasing", Probability: 0.42,
				Factors: []string{"Desmatamento recente", "Solo exposto", "Erosão"}},
			{Type: "flood", Value: 15, Level: "low", Trend: "decreasing", Probability: 0.15,
				Factors: []string{"Baixa precipitação", "Topografia favorável"}},
		},
		Hotspots: []Hotspot{
			{ID: "hs1", Coordinates: LatLng{Lat: -10.735, Lng: 14.915}, RiskType: "fire", Intensity: 85, AreaKm2: 12.5, Trend: "expanding", LastDetection: "2024-06-01T10:30:00Z"},
			{ID: "hs2", Coordinates: LatLng{Lat: -10.725, Lng: 14.905}, RiskType: "drought", Intensity: 70, AreaKm2: 25.3, Trend: "stable", LastDetection: "2024-06-01T09:15:00Z"},
			{ID: "hs3", Coordinates: LatLng{Lat: -10.745, Lng: 14.925}, RiskType: "degradation", Intensity: 55, AreaKm2: 8.7, Trend: "expanding", LastDetection: "2024-05-31T14:20:00Z"},
		},
	}
}

// HighRisks counts indices at level high or above
func (o Overview) HighRisks() int {
	n := 0
	for _, r := range o.RiskIndex {
		switch r.Level {
		case "high", "very_high", "extreme":
			n++
		}
	}
	return n
}

// RiskLabel translates a risk index level for display
func RiskLabel(level string) string {
	switch level {
	case "low":
		return "Baixo"
	case "moderate":
		return "Moderado"
	case "high":
		return "Alto"
	case "very_high":
		return "Muito Alto"
	case "extreme":
		return "Extremo"
	default:
		return level
	}
}

// HazardLabel translates a hazard type for display
func HazardLabel(t string) string {
	switch t {
	case "fire":
		return "Incêndio"
	case "drought":
		return "Seca"
	case "degradation":
		return "Degradação"
	case "flood":
		return "Inundação"
	default:
		return t
	}
}
