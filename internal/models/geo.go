package models

// Coordinates is a WGS84 point in decimal degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RiskLevel is the ordinal environmental risk category
type RiskLevel string

const (
	RiskLow      RiskLevel = "baixo"
	RiskMedium   RiskLevel = "medio"
	RiskHigh     RiskLevel = "alto"
	RiskCritical RiskLevel = "critico"
)

// RiskLevels lists every risk level from lowest to highest
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}

// Valid reports whether r is one of the known risk levels
func (r RiskLevel) Valid() bool {
	return r.Rank() >= 0
}

// Rank returns the ordinal position of the level (0 = baixo), or -1 if unknown
func (r RiskLevel) Rank() int {
	for i, level := range RiskLevels {
		if level == r {
			return i
		}
	}
	return -1
}

// Label returns the display name for the level
func (r RiskLevel) Label() string {
	switch r {
	case RiskLow:
		return "Baixo"
	case RiskMedium:
		return "Médio"
	case RiskHigh:
		return "Alto"
	case RiskCritical:
		return "Crítico"
	default:
		return string(r)
	}
}

// ParseRiskLevel converts s into a RiskLevel
func ParseRiskLevel(s string) (RiskLevel, error) {
	r := RiskLevel(s)
	if !r.Valid() {
		return "", &EnumError{Kind: "risk level", Value: s}
	}
	return r, nil
}

// EnumError reports a value outside one of the closed enum sets
type EnumError struct {
	Kind  string
	Value string
}

func (e *EnumError) Error() string {
	return "unknown " + e.Kind + ": " + e.Value
}
