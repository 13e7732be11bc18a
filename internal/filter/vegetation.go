package filter

import "github.com/ngmaloney/ecowatch-terminal/internal/models"

// VegetationFilter is the map page filter state
type VegetationFilter struct {
	VegetationType string
	RiskLevel      models.RiskLevel
}

// DefaultVegetationFilter shows every point
func DefaultVegetationFilter() VegetationFilter {
	return VegetationFilter{VegetationType: All, RiskLevel: All}
}

// Vegetation returns the points matching f, in source order
func Vegetation(items []models.VegetationDataItem, f VegetationFilter) []models.VegetationDataItem {
	var preds []func(models.VegetationDataItem) bool
	if enabled(f.VegetationType) {
		preds = append(preds, func(v models.VegetationDataItem) bool { return v.VegetationType == f.VegetationType })
	}
	if enabled(f.RiskLevel) {
		preds = append(preds, func(v models.VegetationDataItem) bool { return v.RiskLevel == f.RiskLevel })
	}
	return Where(items, preds...)
}

// RiskCounts counts points per risk level. Every level is present in the result.
func RiskCounts(items []models.VegetationDataItem) map[models.RiskLevel]int {
	counts := make(map[models.RiskLevel]int, len(models.RiskLevels))
	for _, level := range models.RiskLevels {
		counts[level] = 0
	}
	for _, item := range items {
		counts[item.RiskLevel]++
	}
	return counts
}

// VegetationTypes returns the distinct vegetation types in first-seen order
func VegetationTypes(items []models.VegetationDataItem) []string {
	seen := make(map[string]bool)
	var types []string
	for _, item := range items {
		if !seen[item.VegetationType] {
			seen[item.VegetationType] = true
			types = append(types, item.VegetationType)
		}
	}
	return types
}

// AverageNDVI is the mean NDVI of items, or 0 when empty
func AverageNDVI(items []models.VegetationDataItem) float64 {
	values := make([]float64, len(items))
	for i, item := range items {
		values[i] = item.NDVIValue
	}
	return Summarize(values).Avg
}
