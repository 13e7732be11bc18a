package models

import "time"

// AlertSeverity represents the severity level of an alert
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "baixa"
	SeverityMedium   AlertSeverity = "media"
	SeverityHigh     AlertSeverity = "alta"
	SeverityCritical AlertSeverity = "critica"
)

// Severities lists alert severities from lowest to highest
var Severities = []AlertSeverity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// AlertType is the environmental phenomenon an alert is about
type AlertType string

const (
	TypeVegetation  AlertType = "vegetation"
	TypeTemperature AlertType = "temperature"
	TypeMoisture    AlertType = "moisture"
	TypeFire        AlertType = "fire"
	TypeFlood       AlertType = "flood"
)

// AlertTypes lists every alert type
var AlertTypes = []AlertType{TypeVegetation, TypeTemperature, TypeMoisture, TypeFire, TypeFlood}

// AlertStatus is the triage state of an alert
type AlertStatus string

const (
	StatusActive        AlertStatus = "active"
	StatusResolved      AlertStatus = "resolved"
	StatusInvestigating AlertStatus = "investigating"
)

// AlertStatuses lists every alert status
var AlertStatuses = []AlertStatus{StatusActive, StatusResolved, StatusInvestigating}

// Alert represents an environmental alert raised for a region
type Alert struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Region       string        `json:"region"`
	Date         time.Time     `json:"date"`
	Severity     AlertSeverity `json:"severity"`
	Type         AlertType     `json:"type"`
	Status       AlertStatus   `json:"status"`
	Coordinates  *Coordinates  `json:"coordinates,omitempty"`
	NDVIValue    *float64      `json:"ndvi_value,omitempty"`
	Temperature  *float64      `json:"temperature,omitempty"`
	SoilMoisture *float64      `json:"soil_moisture,omitempty"`
}

// Valid reports whether s is a known severity
func (s AlertSeverity) Valid() bool {
	for _, v := range Severities {
		if v == s {
			return true
		}
	}
	return false
}

// RiskLevel maps the severity onto the equivalent map risk level
func (s AlertSeverity) RiskLevel() RiskLevel {
	switch s {
	case SeverityLow:
		return RiskLow
	case SeverityMedium:
		return RiskMedium
	case SeverityHigh:
		return RiskHigh
	case SeverityCritical:
		return RiskCritical
	default:
		return ""
	}
}

// Valid reports whether t is a known alert type
func (t AlertType) Valid() bool {
	for _, v := range AlertTypes {
		if v == t {
			return true
		}
	}
	return false
}

// VegetationType is the vegetation layer an alert of type t is drawn on
func (t AlertType) VegetationType() string {
	switch t {
	case TypeVegetation, TypeFire:
		return VegetationSavanna
	case TypeTemperature:
		return VegetationArid
	case TypeMoisture, TypeFlood:
		return VegetationForest
	default:
		return ""
	}
}

// Valid reports whether s is a known status
func (s AlertStatus) Valid() bool {
	for _, v := range AlertStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ParseSeverity converts s into an AlertSeverity
func ParseSeverity(s string) (AlertSeverity, error) {
	v := AlertSeverity(s)
	if !v.Valid() {
		return "", &EnumError{Kind: "severity", Value: s}
	}
	return v, nil
}

// ParseAlertType converts s into an AlertType
func ParseAlertType(s string) (AlertType, error) {
	v := AlertType(s)
	if !v.Valid() {
		return "", &EnumError{Kind: "alert type", Value: s}
	}
	return v, nil
}

// ParseAlertStatus converts s into an AlertStatus
func ParseAlertStatus(s string) (AlertStatus, error) {
	v := AlertStatus(s)
	if !v.Valid() {
		return "", &EnumError{Kind: "alert status", Value: s}
	}
	return v, nil
}

// ToMapPoint converts the alert into a map point. Alerts without coordinates
// cannot be placed and return false.
func (a *Alert) ToMapPoint() (VegetationDataItem, bool) {
	if a.Coordinates == nil {
		return VegetationDataItem{}, false
	}
	return VegetationDataItem{
		ID:             a.ID,
		Region:         a.Region,
		Date:           a.Date,
		NDVIValue:      deref(a.NDVIValue),
		Temperature:    deref(a.Temperature),
		SoilMoisture:   deref(a.SoilMoisture),
		RiskLevel:      a.Severity.RiskLevel(),
		VegetationType: a.Type.VegetationType(),
		Coordinates:    *a.Coordinates,
	}, true
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
