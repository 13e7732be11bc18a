package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/ecowatch-terminal/internal/filter"
	"github.com/ngmaloney/ecowatch-terminal/internal/models"
)

// refreshAlerts reapplies the alert filter and rebuilds the list
func (m *Model) refreshAlerts() {
	m.alertFilter.Search = m.alertSearch.Value()
	m.filteredAlerts = filter.Alerts(m.snapshot.Alerts, m.alertFilter, m.clock.Now())
	m.alertList.SetItems(alertItems(m.filteredAlerts))
	m.alertList.ResetSelected()
	m.alertList.Title = fmt.Sprintf("Alertas (%d)", len(m.filteredAlerts))
}

// handleAlertsKey handles keyboard input on the alerts page
func (m Model) handleAlertsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		return m, m.alertSearch.Focus()
	case "s":
		m.alertFilter.Severity = cycle(withAll(models.Severities), m.alertFilter.Severity)
	case "t":
		m.alertFilter.Type = cycle(withAll(models.AlertTypes), m.alertFilter.Type)
	case "e":
		m.alertFilter.Status = cycle(withAll(models.AlertStatuses), m.alertFilter.Status)
	case "d":
		m.alertFilter.DateRange = cycle(filter.DateRanges, m.alertFilter.DateRange)
	case "r":
		m.alertFilter = filter.DefaultAlertFilter()
		m.alertSearch.SetValue("")
	case "up", "down", "k", "j", "pgup", "pgdown", "home", "end":
		var cmd tea.Cmd
		m.alertList, cmd = m.alertList.Update(msg)
		return m, cmd
	default:
		return m, nil
	}

	m.refreshAlerts()
	return m, nil
}

// handleAlertSearchKey handles typing in the alert search box
func (m Model) handleAlertSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.alertSearch.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.alertSearch, cmd = m.alertSearch.Update(msg)
	m.refreshAlerts()
	return m, cmd
}

// viewAlerts renders the alerts page
func (m Model) viewAlerts() string {
	f := m.alertFilter
	filters := strings.Join([]string{
		labelStyle.Render("Severidade: ") + valueStyle.Render(severityLabel(f.Severity)),
		labelStyle.Render("Tipo: ") + valueStyle.Render(typeLabel(f.Type)),
		labelStyle.Render("Status: ") + valueStyle.Render(statusLabel(f.Status)),
		labelStyle.Render("Período: ") + valueStyle.Render(dateRangeLabel(f.DateRange)),
	}, "   ")

	stats := filter.CountAlerts(m.snapshot.Alerts)
	statsLine := strings.Join([]string{
		fmt.Sprintf("Total %s", bigValueStyle.Render(fmt.Sprint(stats.Total))),
		fmt.Sprintf("Ativos %s", riskStyle(models.RiskHigh).Render(fmt.Sprint(stats.Active))),
		fmt.Sprintf("Críticos %s", riskStyle(models.RiskCritical).Render(fmt.Sprint(stats.Critical))),
		fmt.Sprintf("Resolvidos %s", successStyle.Render(fmt.Sprint(stats.Resolved))),
	}, "   ")

	search := m.alertSearch.View()
	if !m.alertSearch.Focused() && m.alertSearch.Value() == "" {
		search = mutedStyle.Render("Pressione / para buscar")
	}

	var left string
	if len(m.filteredAlerts) == 0 {
		left = paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Nenhum alerta encontrado"),
			mutedStyle.Render("Ajuste os filtros ou pressione R para limpar."),
		))
	} else {
		left = m.alertList.View()
	}

	right := lipgloss.JoinVertical(lipgloss.Left, m.renderAlertDetails(), m.renderAlertMap())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🚨 Alertas Ambientais"),
		search,
		filters,
		statsLine,
		"",
		body,
	)
}

// renderAlertMap plots the filtered alerts that carry coordinates
func (m Model) renderAlertMap() string {
	points := filter.MapPoints(m.filteredAlerts)
	return paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.UnsetMarginTop().Render(fmt.Sprintf("🗺️  Alertas no mapa (%d)", len(points))),
		renderPlot(points),
	))
}

// selectedAlert returns the highlighted alert, if any
func (m Model) selectedAlert() (models.Alert, bool) {
	if item, ok := m.alertList.SelectedItem().(alertItem); ok {
		return item.alert, true
	}
	return models.Alert{}, false
}

// renderAlertDetails renders the details pane for the selected alert
func (m Model) renderAlertDetails() string {
	a, ok := m.selectedAlert()
	if !ok {
		return paneStyle.Render(mutedStyle.Render("Selecione um alerta para ver os detalhes"))
	}

	width := m.width/2 - 4
	if width < 30 {
		width = 30
	}
	wrap := lipgloss.NewStyle().Width(width - 4)

	lines := []string{
		severityStyle(a.Severity).Render(a.Title),
		"",
		wrap.Render(a.Description),
		"",
		labelStyle.Render("Região: ") + valueStyle.Render(a.Region),
		labelStyle.Render("Data: ") + valueStyle.Render(formatDate(a.Date)),
		labelStyle.Render("Severidade: ") + severityStyle(a.Severity).Render(severityLabel(a.Severity)),
		labelStyle.Render("Tipo: ") + valueStyle.Render(typeLabel(a.Type)),
		labelStyle.Render("Status: ") + statusStyle(a.Status).Render(statusLabel(a.Status)),
	}
	if a.Coordinates != nil {
		lines = append(lines, labelStyle.Render("Coordenadas: ")+valueStyle.Render(
			fmt.Sprintf("%.4f, %.4f", a.Coordinates.Latitude, a.Coordinates.Longitude)))
	}
	if a.NDVIValue != nil {
		lines = append(lines, labelStyle.Render("NDVI: ")+valueStyle.Render(models.DataNDVI.Format(*a.NDVIValue)))
	}
	if a.Temperature != nil {
		lines = append(lines, labelStyle.Render("Temperatura: ")+valueStyle.Render(models.DataTemperature.Format(*a.Temperature)+"°C"))
	}
	if a.SoilMoisture != nil {
		lines = append(lines, labelStyle.Render("Umidade do solo: ")+valueStyle.Render(models.DataSoilMoisture.Format(*a.SoilMoisture)+"%"))
	}

	return paneStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
