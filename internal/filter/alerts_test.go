package filter

import (
	"testing"

	"github.com/ngmaloney/ecowatch-terminal/internal/mockdata"
	"github.com/ngmaloney/ecowatch-terminal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allAlerts() AlertFilter {
	return AlertFilter{Severity: All, Type: All, Status: All, DateRange: RangeAllDates}
}

func ids(alerts []models.Alert) []string {
	out := make([]string, len(alerts))
	for i, a := range alerts {
		out[i] = a.ID
	}
	return out
}

func TestAlerts_Critical(t *testing.T) {
	alerts := mockdata.GenerateAlerts(noon)
	f := allAlerts()
	f.Severity = models.SeverityCritical

	got := Alerts(alerts, f, noon)
	require.Len(t, got, 1)
	assert.Equal(t, models.SeverityCritical, got[0].Severity)
}

func TestAlerts_AllReturnsEverything(t *testing.T) {
	alerts := mockdata.GenerateAlerts(noon)
	assert.Equal(t, alerts, Alerts(alerts, allAlerts(), noon))
	assert.Equal(t, alerts, Alerts(alerts, AlertFilter{}, noon))
}

func TestAlerts_SingleDimension(t *testing.T) {
	alerts := mockdata.GenerateAlerts(noon)

	for _, sev := range models.Severities {
		f := allAlerts()
		f.Severity = sev
		for _, a := range Alerts(alerts, f, noon) {
			assert.Equal(t, sev, a.Severity)
		}
	}
	for _, typ := range models.AlertTypes {
		f := allAlerts()
		f.Type = typ
		got := Alerts(alerts, f, noon)
		assert.NotEmpty(t, got, typ)
		for _, a := range got {
			assert.Equal(t, typ, a.Type)
		}
	}
	for _, status := range models.AlertStatuses {
		f := allAlerts()
		f.Status = status
		for _, a := range Alerts(alerts, f, noon) {
			assert.Equal(t, status, a.Status)
		}
	}
}

func TestAlerts_Default(t *testing.T) {
	alerts := mockdata.GenerateAlerts(noon)
	got := Alerts(alerts, DefaultAlertFilter(), noon)
	assert.Equal(t, []string{"1", "3", "4"}, ids(got))
}

func TestAlerts_DateRange(t *testing.T) {
	alerts := mockdata.GenerateAlerts(noon)

	tests := []struct {
		dateRange DateRange
		want      []string
	}{
		{RangeDay, []string{"1", "2"}},
		{RangeWeek, []string{"1", "2", "3", "4", "5", "6"}},
		{RangeMonth, []string{"1", "2", "3", "4", "5", "6"}},
		{RangeAllDates, []string{"1", "2", "3", "4", "5", "6"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.dateRange), func(t *testing.T) {
			f := allAlerts()
			f.DateRange = tt.dateRange
			assert.Equal(t, tt.want, ids(Alerts(alerts, f, noon)))
		})
	}

	// A day later the alert dated exactly one day ago falls out of the 1day window.
	f := allAlerts()
	f.DateRange = RangeDay
	assert.Equal(t, []string{"1"}, ids(Alerts(alerts, f, noon.Add(1))))
}

func TestAlerts_Search(t *testing.T) {
	alerts := mockdata.GenerateAlerts(noon)

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"title", "ndvi", []string{"1"}},
		{"region case-insensitive", "OKAVANGO", []string{"4", "5"}},
		{"description", "incêndios", []string{"4"}},
		{"surrounding spaces", "  kalahari ", []string{"3"}},
		{"no match", "tsunami", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := allAlerts()
			f.Search = tt.term
			assert.Equal(t, tt.want, ids(Alerts(alerts, f, noon)))
		})
	}
}

func TestAlerts_EveryCombinationIsASubset(t *testing.T) {
	alerts := mockdata.GenerateAlerts(noon)
	source := make(map[string]models.Alert, len(alerts))
	for _, a := range alerts {
		source[a.ID] = a
	}

	severities := append([]models.AlertSeverity{All}, models.Severities...)
	types := append([]models.AlertType{All}, models.AlertTypes...)
	statuses := append([]models.AlertStatus{All}, models.AlertStatuses...)

	for _, sev := range severities {
		for _, typ := range types {
			for _, status := range statuses {
				for _, dr := range DateRanges {
					f := AlertFilter{Severity: sev, Type: typ, Status: status, DateRange: dr}
					got := Alerts(alerts, f, noon)
					assert.LessOrEqual(t, len(got), len(alerts))
					for _, a := range got {
						assert.Equal(t, source[a.ID], a, "filter %+v introduced a record", f)
					}
				}
			}
		}
	}
}

func TestCountAlerts(t *testing.T) {
	stats := CountAlerts(mockdata.GenerateAlerts(noon))
	assert.Equal(t, AlertStats{Total: 6, Active: 3, Critical: 1, Resolved: 1}, stats)
}

func TestMapPoints(t *testing.T) {
	alerts := mockdata.GenerateAlerts(noon)
	alerts = append(alerts, models.Alert{ID: "7", Severity: models.SeverityLow})

	points := MapPoints(alerts)
	require.Len(t, points, 6)
	assert.Equal(t, models.RiskCritical, points[0].RiskLevel)
	assert.Equal(t, 0.23, points[0].NDVIValue)
	assert.Equal(t, models.VegetationArid, points[1].VegetationType)
}
