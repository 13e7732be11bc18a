package analysis

import (
	"math"
	"sort"

	"github.com/ngmaloney/ecowatch-terminal/internal/models"
)

// NearbyPoint is a vegetation point with its distance from the zone centre
type NearbyPoint struct {
	Point      models.VegetationDataItem
	DistanceKm float64
}

// HaversineKm calculates distance in kilometres between two lat/lon points
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// NearbyPoints returns the points within radiusKm of center, closest first
func NearbyPoints(points []models.VegetationDataItem, center LatLng, radiusKm float64) []NearbyPoint {
	var nearby []NearbyPoint
	for _, p := range points {
		d := HaversineKm(center.Lat, center.Lng, p.Coordinates.Latitude, p.Coordinates.Longitude)
		if d <= radiusKm {
			nearby = append(nearby, NearbyPoint{Point: p, DistanceKm: d})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby
}
