package backend

import (
	"context"

	"github.com/ngmaloney/ecowatch-terminal/internal/analysis"
)

// Result is the decoded JSON body returned by the analysis backend
type Result = map[string]any

// AnalyzeRequest asks the backend for a full sensor analysis of a point
type AnalyzeRequest struct {
	Lon                  float64  `json:"lon"`
	Lat                  float64  `json:"lat"`
	BufferKm             float64  `json:"buffer_km"`
	Start                string   `json:"start"`
	End                  string   `json:"end"`
	Sensors              []string `json:"sensors"`
	GraceAnalysis        bool     `json:"grace_analysis"`
	IncludeMLPredictions bool     `json:"include_ml_predictions"`
}

// Client defines the interface for submitting analyses to the backend
type Client interface {
	// AnalyzeZone submits a zone selected on the map
	AnalyzeZone(ctx context.Context, p analysis.Payload) (Result, error)

	// Analyze requests a sensor analysis around a point
	Analyze(ctx context.Context, req AnalyzeRequest) (Result, error)
}

// DefaultSensors are requested when an AnalyzeRequest names none
var DefaultSensors = []string{"landsat", "modis", "smap", "grace"}

// RequestFromPayload converts a zone payload into a sensor analysis request
func RequestFromPayload(p analysis.Payload) AnalyzeRequest {
	return AnalyzeRequest{
		Lon:                  p.Coordinates.Lng,
		Lat:                  p.Coordinates.Lat,
		BufferKm:             p.Radius,
		Start:                p.Period.Start,
		End:                  p.Period.End,
		Sensors:              append([]string(nil), DefaultSensors...),
		GraceAnalysis:        true,
		IncludeMLPredictions: true,
	}
}
