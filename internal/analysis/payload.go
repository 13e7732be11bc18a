package analysis

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used for analysis periods
const DateLayout = "2006-01-02"

// LatLng is a point as the analysis backend expects it
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Period is an inclusive range of calendar days, formatted YYYY-MM-DD
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Payload is the zone-analysis request body and the stored currentAnalysis value
type Payload struct {
	Coordinates  LatLng  `json:"coordinates"`
	Radius       float64 `json:"radius"`
	Period       Period  `json:"period"`
	LocationName string  `json:"locationName,omitempty"`
}

// Zone is the area selected on the map
type Zone struct {
	Lat    float64
	Lng    float64
	Radius float64 // km
}

// DefaultPeriod covers the six months up to and including now
func DefaultPeriod(now time.Time) Period {
	return Period{
		Start: now.AddDate(0, -6, 0).Format(DateLayout),
		End:   now.Format(DateLayout),
	}
}

// DefaultName labels an unnamed zone by its coordinates
func DefaultName(lat, lng float64) string {
	return fmt.Sprintf("Zona %.6f, %.6f", lat, lng)
}

// Validate checks the period dates and radius
func (p Period) Validate() error {
	start, err := time.Parse(DateLayout, p.Start)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", p.Start, err)
	}
	end, err := time.Parse(DateLayout, p.End)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", p.End, err)
	}
	if end.Before(start) {
		return fmt.Errorf("period end %s is before start %s", p.End, p.Start)
	}
	return nil
}

// Validate checks the zone is a real point with a positive radius
func (z Zone) Validate() error {
	if z.Lat < -90 || z.Lat > 90 {
		return fmt.Errorf("latitude %v out of range", z.Lat)
	}
	if z.Lng < -180 || z.Lng > 180 {
		return fmt.Errorf("longitude %v out of range", z.Lng)
	}
	if z.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %v", z.Radius)
	}
	return nil
}
