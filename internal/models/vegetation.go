package models

import "time"

// Vegetation types used by the map layers
const (
	VegetationDesert  = "vegetacao_desertica"
	VegetationSavanna = "savana"
	VegetationForest  = "floresta"
	VegetationArid    = "desertica"
)

// VegetationDataItem is a georeferenced vegetation observation shown on the map
type VegetationDataItem struct {
	ID             string      `json:"id"`
	Region         string      `json:"region"`
	Date           time.Time   `json:"date"`
	NDVIValue      float64     `json:"ndvi_value"`
	Temperature    float64     `json:"temperature"`
	SoilMoisture   float64     `json:"soil_moisture"`
	RiskLevel      RiskLevel   `json:"risk_level"`
	VegetationType string      `json:"vegetation_type"`
	Coordinates    Coordinates `json:"coordinates"`
}
