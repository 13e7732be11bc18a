package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/ecowatch-terminal/internal/filter"
	"github.com/ngmaloney/ecowatch-terminal/internal/models"
)

// recentAlerts returns the n most recent alerts, newest first
func recentAlerts(alerts []models.Alert, n int) []models.Alert {
	sorted := slices.Clone(alerts)
	slices.SortStableFunc(sorted, func(a, b models.Alert) int {
		return b.Date.Compare(a.Date)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// latestByRegion returns the most recent climate record of each region
func latestByRegion(records []models.ClimateRecord) map[models.Region]models.ClimateRecord {
	latest := make(map[models.Region]models.ClimateRecord, len(models.Regions))
	for _, r := range records {
		if cur, ok := latest[r.Region]; !ok || r.Date.After(cur.Date) {
			latest[r.Region] = r
		}
	}
	return latest
}

// viewHome renders the overview page
func (m Model) viewHome() string {
	stats := filter.CountAlerts(m.snapshot.Alerts)
	overview := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Regiões monitoradas", fmt.Sprint(len(models.Regions))),
		statCard("Alertas ativos", fmt.Sprint(stats.Active)),
		statCard("Alertas críticos", fmt.Sprint(stats.Critical)),
		statCard("NDVI médio", models.DataNDVI.Format(filter.AverageNDVI(m.snapshot.VegetationData))),
		statCard("Pontos de vegetação", fmt.Sprint(len(m.snapshot.VegetationData))),
	)

	var recent []string
	for _, a := range recentAlerts(m.snapshot.Alerts, 3) {
		recent = append(recent, fmt.Sprintf("%s %s\n   %s",
			severityStyle(a.Severity).Render("●"),
			valueStyle.Render(a.Title),
			mutedStyle.Render(a.Region+" • "+formatDate(a.Date))))
	}
	if len(recent) == 0 {
		recent = append(recent, mutedStyle.Render("Nenhum alerta recente"))
	}

	latest := latestByRegion(m.snapshot.ClimateData)
	var regions []string
	for _, region := range models.Regions {
		r, ok := latest[region]
		if !ok {
			regions = append(regions, fmt.Sprintf("%-20s %s", region, mutedStyle.Render("sem dados")))
			continue
		}
		regions = append(regions, fmt.Sprintf("%-20s %s°C  NDVI %s  %s",
			region,
			models.DataTemperature.Format(r.Temperature),
			models.DataNDVI.Format(r.NDVI),
			riskStyle(r.RiskLevel).Render(r.RiskLevel.Label())))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		overview,
		lipgloss.JoinHorizontal(lipgloss.Top,
			paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
				titleStyle.Render("🚨 Alertas recentes"), strings.Join(recent, "\n"))),
			paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
				titleStyle.Render("🌍 Status das regiões"), strings.Join(regions, "\n"))),
		),
	)
}
