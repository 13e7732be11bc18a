package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/ecowatch-terminal/internal/filter"
	"github.com/ngmaloney/ecowatch-terminal/internal/models"
)

var climateColumns = []table.Column{
	{Title: "Data", Width: 10},
	{Title: "Temp (°C)", Width: 9},
	{Title: "Umidade (%)", Width: 11},
	{Title: "Precip. (mm)", Width: 12},
	{Title: "NDVI", Width: 6},
	{Title: "Risco", Width: 8},
}

// createClimateTable creates the climate data table, most recent day first
func createClimateTable(records []models.ClimateRecord, height int) table.Model {
	t := table.New(
		table.WithColumns(climateColumns),
		table.WithRows(climateRows(records)),
		table.WithHeight(height),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorBorder)
	t.SetStyles(s)

	return t
}

func climateRows(records []models.ClimateRecord) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			formatDate(r.Date),
			models.DataTemperature.Format(r.Temperature),
			models.DataSoilMoisture.Format(r.SoilMoisture),
			models.DataPrecipitation.Format(r.Precipitation),
			models.DataNDVI.Format(r.NDVI),
			r.RiskLevel.Label(),
		}
	}
	return rows
}

// refreshClimate reapplies the climate filter
func (m *Model) refreshClimate() {
	m.climateRecords = filter.Climate(m.snapshot.ClimateData, m.climateFilter, m.clock.Now())
	m.climateTable.SetRows(climateRows(filter.MostRecentFirst(m.climateRecords)))
	m.climateTable.GotoTop()
}

// handleClimateKey handles keyboard input on the climate page
func (m Model) handleClimateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "g":
		m.climateFilter.Region = cycle(models.Regions, m.climateFilter.Region)
	case "v":
		m.climateFilter.DataType = cycle(models.DataTypes, m.climateFilter.DataType)
	case "p":
		m.climateFilter.Period = cycle(filter.Periods, m.climateFilter.Period)
	case "up", "down", "k", "j", "pgup", "pgdown":
		var cmd tea.Cmd
		m.climateTable, cmd = m.climateTable.Update(msg)
		return m, cmd
	default:
		return m, nil
	}

	m.refreshClimate()
	return m, nil
}

// viewClimate renders the climate page
func (m Model) viewClimate() string {
	f := m.climateFilter
	filters := strings.Join([]string{
		labelStyle.Render("Região: ") + valueStyle.Render(string(f.Region)),
		labelStyle.Render("Variável: ") + valueStyle.Render(f.DataType.Label()),
		labelStyle.Render("Período: ") + valueStyle.Render(periodLabel(f.Period)),
	}, "   ")

	stats := filter.ClimateStats(m.climateRecords, f.DataType)
	unit := f.DataType.Unit()
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Média", stats.Avg+unit),
		statCard("Máxima", stats.Max+unit),
		statCard("Mínima", stats.Min+unit),
		statCard("Registros", fmt.Sprint(len(m.climateRecords))),
	)

	chart := lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.Render(fmt.Sprintf("📈 %s ao longo do tempo", f.DataType.Label())),
		bigValueStyle.Render(sparkline(filter.Values(m.climateRecords, f.DataType))),
	)

	dist := filter.RiskDistribution(m.climateRecords)
	var risks []string
	for _, level := range models.RiskLevels {
		risks = append(risks, riskStyle(level).Render(fmt.Sprintf("%s: %d", level.Label(), dist[level])))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🌡️  Dados Climáticos"),
		filters,
		"",
		cards,
		chart,
		"",
		m.climateTable.View(),
		"",
		labelStyle.Render("Distribuição de risco: ")+strings.Join(risks, "  "),
	)
}

// statCard renders a small labelled value box
func statCard(label, value string) string {
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(label),
		bigValueStyle.Render(value),
	))
}

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// sparkline renders values as a single row of block characters
func sparkline(values []float64) string {
	if len(values) == 0 {
		return mutedStyle.Render("Sem dados para o período")
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	var b strings.Builder
	for _, v := range values {
		idx := len(sparkBlocks) / 2
		if hi > lo {
			idx = int(math.Round((v - lo) / (hi - lo) * float64(len(sparkBlocks)-1)))
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}
