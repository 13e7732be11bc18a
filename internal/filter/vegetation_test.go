package filter

import (
	"testing"

	"github.com/ngmaloney/ecowatch-terminal/internal/mockdata"
	"github.com/ngmaloney/ecowatch-terminal/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestVegetation(t *testing.T) {
	items := mockdata.GenerateVegetationData(noon)

	tests := []struct {
		name   string
		filter VegetationFilter
		want   []string
	}{
		{"default shows all", DefaultVegetationFilter(), []string{"1", "2", "3", "4"}},
		{"zero value shows all", VegetationFilter{}, []string{"1", "2", "3", "4"}},
		{"savanna", VegetationFilter{VegetationType: models.VegetationSavanna, RiskLevel: All}, []string{"2", "4"}},
		{"critical", VegetationFilter{VegetationType: All, RiskLevel: models.RiskCritical}, []string{"1"}},
		{"savanna and low risk", VegetationFilter{VegetationType: models.VegetationSavanna, RiskLevel: models.RiskLow}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Vegetation(items, tt.filter)
			gotIDs := make([]string, len(got))
			for i, item := range got {
				gotIDs[i] = item.ID
			}
			assert.Equal(t, tt.want, gotIDs)
		})
	}
}

func TestRiskCounts(t *testing.T) {
	counts := RiskCounts(mockdata.GenerateVegetationData(noon))
	for _, level := range models.RiskLevels {
		assert.Equal(t, 1, counts[level], level)
	}

	empty := RiskCounts(nil)
	assert.Len(t, empty, len(models.RiskLevels))
}

func TestVegetationTypes(t *testing.T) {
	types := VegetationTypes(mockdata.GenerateVegetationData(noon))
	assert.Equal(t, []string{models.VegetationDesert, models.VegetationSavanna, models.VegetationForest}, types)
}

func TestAverageNDVI(t *testing.T) {
	assert.InDelta(t, (0.14+0.43+0.78+0.52)/4, AverageNDVI(mockdata.GenerateVegetationData(noon)), 1e-9)
	assert.Zero(t, AverageNDVI(nil))
}
