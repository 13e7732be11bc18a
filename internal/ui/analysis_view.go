package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/ecowatch-terminal/internal/analysis"
	"github.com/ngmaloney/ecowatch-terminal/internal/models"
)

// handleAnalysisKey handles keyboard input on the analysis page
func (m Model) handleAnalysisKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "c" && m.current != nil && m.analysis != nil {
		return m, clearAnalysis(m.analysis)
	}
	return m, nil
}

// viewAnalysis renders the analysis page
func (m Model) viewAnalysis() string {
	sections := []string{titleStyle.Render("📊 Análise Detalhada"), m.renderCurrentAnalysis()}

	o := m.overview
	zone := lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.Render("Zona monitorada: "+o.Zone.Name),
		mutedStyle.Render(fmt.Sprintf("%s • %.0f km² • %.2f, %.2f • Atualizado %s",
			o.Zone.Biome, o.Zone.AreaKm2, o.Zone.Coordinates.Lat, o.Zone.Coordinates.Lng, strings.ToLower(o.Zone.LastUpdate))),
	)

	metrics := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Saúde da vegetação", fmt.Sprintf("%.2f (%s)", o.Metrics.VegetationHealth, o.Metrics.VegetationChange)),
		statCard("Estresse hídrico", fmt.Sprintf("%.2f (%s)", o.Metrics.WaterStress, o.Metrics.WaterStressChange)),
		statCard("Risco de incêndio", fmt.Sprintf("%s %.0f%%", o.Metrics.FireRisk, o.Metrics.FireProbability*100)),
		statCard("Anomalia térmica", fmt.Sprintf("+%.1f°C", o.Metrics.TemperatureAnomaly)),
		statCard("Índice ambiental", fmt.Sprintf("%d/100", o.Metrics.EnvironmentalScore)),
	)

	var risks []string
	for _, r := range o.RiskIndex {
		risks = append(risks, fmt.Sprintf("%-11s %s %3d  %s",
			analysis.HazardLabel(r.Type), meter(r.Value, 20), r.Value, mutedStyle.Render(analysis.RiskLabel(r.Level))))
	}

	var hotspots []string
	for _, h := range o.Hotspots {
		hotspots = append(hotspots, fmt.Sprintf("%s  %-10s intensidade %d  %.1f km²  (%.3f, %.3f)",
			h.ID, analysis.HazardLabel(h.RiskType), h.Intensity, h.AreaKm2, h.Coordinates.Lat, h.Coordinates.Lng))
	}

	var alerts []string
	for _, a := range o.Alerts {
		alerts = append(alerts, "• "+a.Message)
	}

	sections = append(sections,
		zone,
		metrics,
		sectionHeaderStyle.Render(fmt.Sprintf("Índices de risco (%d alto)", o.HighRisks())),
		strings.Join(risks, "\n"),
		sectionHeaderStyle.Render("Pontos críticos"),
		strings.Join(hotspots, "\n"),
		sectionHeaderStyle.Render("Alertas da zona"),
		strings.Join(alerts, "\n"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderCurrentAnalysis shows the stored zone analysis and what lies inside it
func (m Model) renderCurrentAnalysis() string {
	if m.current == nil {
		return paneStyle.Render(mutedStyle.Render(
			"Nenhuma análise de zona salva. Escolha uma zona no Mapa (tecla 2) e pressione A."))
	}

	p := m.current
	lines := []string{
		selectedStyle.Render(p.LocationName),
		labelStyle.Render("Coordenadas: ") + valueStyle.Render(fmt.Sprintf("%.6f, %.6f", p.Coordinates.Lat, p.Coordinates.Lng)),
		labelStyle.Render("Raio: ") + valueStyle.Render(fmt.Sprintf("%g km", p.Radius)),
		labelStyle.Render("Período: ") + valueStyle.Render(p.Period.Start+" a "+p.Period.End),
	}

	nearby := analysis.NearbyPoints(m.snapshot.VegetationData, p.Coordinates, p.Radius)
	if len(nearby) == 0 {
		lines = append(lines, mutedStyle.Render("Nenhum ponto monitorado dentro do raio"))
	} else {
		lines = append(lines, labelStyle.Render(fmt.Sprintf("Pontos no raio (%d):", len(nearby))))
		for _, n := range nearby {
			lines = append(lines, fmt.Sprintf("  %s %s  %.1f km  NDVI %s",
				riskStyle(n.Point.RiskLevel).Render("●"), n.Point.Region, n.DistanceKm,
				models.DataNDVI.Format(n.Point.NDVIValue)))
		}
	}

	if len(m.lastResult) > 0 {
		keys := make([]string, 0, len(m.lastResult))
		for k := range m.lastResult {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		lines = append(lines, labelStyle.Render("Resposta do servidor:"))
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("  %s: %v", k, m.lastResult[k]))
		}
	}

	return paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// meter renders a 0-100 value as a bar of the given width
func meter(value, width int) string {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	filled := value * width / 100
	style := riskStyle(models.RiskLow)
	switch {
	case value >= 75:
		style = riskStyle(models.RiskCritical)
	case value >= 50:
		style = riskStyle(models.RiskHigh)
	case value >= 25:
		style = riskStyle(models.RiskMedium)
	}
	return style.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", width-filled))
}
