package models

import (
	"strconv"
	"time"
)

// Region is one of the monitored regions with a climate series
type Region string

const (
	RegionCunene   Region = "Cunene, Angola"
	RegionNamibia  Region = "Costa da Namíbia"
	RegionOkavango Region = "Delta do Okavango"
)

// Regions lists the monitored regions in display order
var Regions = []Region{RegionCunene, RegionNamibia, RegionOkavango}

// Valid reports whether r is a monitored region
func (r Region) Valid() bool {
	for _, region := range Regions {
		if region == r {
			return true
		}
	}
	return false
}

// ParseRegion converts s into a Region
func ParseRegion(s string) (Region, error) {
	r := Region(s)
	if !r.Valid() {
		return "", &EnumError{Kind: "region", Value: s}
	}
	return r, nil
}

// ClimateRecord is one day of climate measurements for a region
type ClimateRecord struct {
	Date          time.Time `json:"date"` // calendar day, UTC midnight
	Region        Region    `json:"region"`
	Temperature   float64   `json:"temperature"`   // °C
	SoilMoisture  float64   `json:"soil_moisture"` // %
	Precipitation float64   `json:"precipitation"` // mm
	NDVI          float64   `json:"ndvi"`          // 0..1
	RiskLevel     RiskLevel `json:"risk_level"`
}

// DataType selects which climate measurement a view works on
type DataType string

const (
	DataTemperature   DataType = "temperature"
	DataSoilMoisture  DataType = "soil_moisture"
	DataPrecipitation DataType = "precipitation"
	DataNDVI          DataType = "ndvi"
)

// DataTypes lists the selectable measurements in display order
var DataTypes = []DataType{DataTemperature, DataSoilMoisture, DataPrecipitation, DataNDVI}

// Valid reports whether d is a known measurement
func (d DataType) Valid() bool {
	switch d {
	case DataTemperature, DataSoilMoisture, DataPrecipitation, DataNDVI:
		return true
	}
	return false
}

// ParseDataType converts s into a DataType
func ParseDataType(s string) (DataType, error) {
	d := DataType(s)
	if !d.Valid() {
		return "", &EnumError{Kind: "data type", Value: s}
	}
	return d, nil
}

// Label returns the display name of the measurement
func (d DataType) Label() string {
	switch d {
	case DataTemperature:
		return "Temperatura"
	case DataSoilMoisture:
		return "Umidade do Solo"
	case DataPrecipitation:
		return "Precipitação"
	case DataNDVI:
		return "NDVI"
	default:
		return string(d)
	}
}

// Unit returns the measurement unit; NDVI is dimensionless
func (d DataType) Unit() string {
	switch d {
	case DataTemperature:
		return "°C"
	case DataSoilMoisture:
		return "%"
	case DataPrecipitation:
		return "mm"
	default:
		return ""
	}
}

// Precision is the number of decimals used when displaying values of d
func (d DataType) Precision() int {
	if d == DataNDVI {
		return 3
	}
	return 1
}

// Format renders v with the precision of d
func (d DataType) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', d.Precision(), 64)
}

// Value returns the measurement selected by d
func (c ClimateRecord) Value(d DataType) float64 {
	switch d {
	case DataTemperature:
		return c.Temperature
	case DataSoilMoisture:
		return c.SoilMoisture
	case DataPrecipitation:
		return c.Precipitation
	case DataNDVI:
		return c.NDVI
	default:
		return 0
	}
}
