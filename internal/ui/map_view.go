package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/ecowatch-terminal/internal/analysis"
	"github.com/ngmaloney/ecowatch-terminal/internal/filter"
	"github.com/ngmaloney/ecowatch-terminal/internal/models"
)

// Zone form fields
const (
	fieldLocation = iota
	fieldLat
	fieldLng
	fieldRadius
	fieldCount
)

var zoneFieldLabels = [fieldCount]string{"Local", "Latitude", "Longitude", "Raio (km)"}

// Plot bounds, roughly Angola to Botswana
const (
	plotMinLat = -24.0
	plotMaxLat = -14.0
	plotMinLng = 11.0
	plotMaxLng = 25.0
	plotWidth  = 48
	plotHeight = 14
)

func newZoneInputs() [fieldCount]textinput.Model {
	var inputs [fieldCount]textinput.Model
	placeholders := [fieldCount]string{"Ondjiva, Angola", "-17.0639", "15.7342", "5"}
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 80
		ti.Width = 30
		ti.Prompt = ""
		inputs[i] = ti
	}
	inputs[fieldRadius].SetValue("5")
	return inputs
}

// handleMapKey handles keyboard input on the map page
func (m Model) handleMapKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "v":
		types := withAll(filter.VegetationTypes(m.snapshot.VegetationData))
		m.vegFilter.VegetationType = cycle(types, m.vegFilter.VegetationType)
	case "n":
		m.vegFilter.RiskLevel = cycle(withAll(models.RiskLevels), m.vegFilter.RiskLevel)
	case "f", "enter":
		return m.focusZoneField(fieldLocation)
	case "a":
		return m.submitAnalysis()
	}
	return m, nil
}

func (m Model) focusZoneField(i int) (tea.Model, tea.Cmd) {
	for j := range m.zoneInputs {
		m.zoneInputs[j].Blur()
	}
	m.zoneFocus = i
	return m, m.zoneInputs[i].Focus()
}

func (m *Model) blurZoneForm() {
	for j := range m.zoneInputs {
		m.zoneInputs[j].Blur()
	}
	m.zoneFocus = -1
}

// handleZoneFormKey handles typing in the zone analysis form
func (m Model) handleZoneFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.blurZoneForm()
		return m, nil
	case "tab", "down":
		return m.focusZoneField((m.zoneFocus + 1) % fieldCount)
	case "shift+tab", "up":
		return m.focusZoneField((m.zoneFocus + fieldCount - 1) % fieldCount)
	case "enter":
		query := strings.TrimSpace(m.zoneInputs[fieldLocation].Value())
		if m.zoneFocus == fieldLocation && query != "" {
			if m.geocoder == nil {
				m.analysisErr = fmt.Errorf("busca de localidade indisponível")
				return m, nil
			}
			m.analysisErr = nil
			return m, geocodeLocation(m.geocoder, query)
		}
		return m.submitAnalysis()
	}

	var cmd tea.Cmd
	m.zoneInputs[m.zoneFocus], cmd = m.zoneInputs[m.zoneFocus].Update(msg)
	if m.zoneFocus == fieldLocation {
		// A typed name replaces the one found by the last search
		m.locationName = ""
	}
	return m, cmd
}

// handleGeocode fills the form from a location search
func (m Model) handleGeocode(msg geocodeMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.analysisErr = fmt.Errorf("localidade não encontrada: %w", msg.err)
		return m, nil
	}
	loc := msg.location
	m.locationName = loc.Name
	m.zoneInputs[fieldLat].SetValue(strconv.FormatFloat(loc.Latitude, 'f', 6, 64))
	m.zoneInputs[fieldLng].SetValue(strconv.FormatFloat(loc.Longitude, 'f', 6, 64))
	m.analysisErr = nil
	return m.focusZoneField(fieldRadius)
}

// zoneFromForm parses the form into a zone
func (m Model) zoneFromForm() (analysis.Zone, error) {
	parse := func(field int) (float64, error) {
		raw := strings.TrimSpace(m.zoneInputs[field].Value())
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			return 0, fmt.Errorf("%s inválido(a): %q", zoneFieldLabels[field], raw)
		}
		return v, nil
	}

	lat, err := parse(fieldLat)
	if err != nil {
		return analysis.Zone{}, err
	}
	lng, err := parse(fieldLng)
	if err != nil {
		return analysis.Zone{}, err
	}
	radius, err := parse(fieldRadius)
	if err != nil {
		return analysis.Zone{}, err
	}

	zone := analysis.Zone{Lat: lat, Lng: lng, Radius: radius}
	return zone, zone.Validate()
}

// submitAnalysis starts the zone analysis
func (m Model) submitAnalysis() (tea.Model, tea.Cmd) {
	if m.analysisStatus == analysis.StatusAnalyzing {
		return m, nil
	}
	if m.analysis == nil {
		m.analysisErr = fmt.Errorf("serviço de análise indisponível")
		return m, nil
	}

	zone, err := m.zoneFromForm()
	if err != nil {
		m.analysisErr = err
		return m, nil
	}

	name := m.locationName
	if name == "" {
		name = strings.TrimSpace(m.zoneInputs[fieldLocation].Value())
	}

	m.blurZoneForm()
	m.analysisErr = nil
	m.analysisStatus = analysis.StatusAnalyzing
	return m, tea.Batch(m.spinner.Tick, startAnalysis(m.analysis, zone, name))
}

// viewMap renders the map page
func (m Model) viewMap() string {
	points := m.visiblePoints()

	filters := strings.Join([]string{
		labelStyle.Render("Vegetação: ") + valueStyle.Render(vegetationLabel(m.vegFilter.VegetationType)),
		labelStyle.Render("Risco: ") + valueStyle.Render(riskLabel(m.vegFilter.RiskLevel)),
	}, "   ")

	counts := filter.RiskCounts(points)
	var legend []string
	for _, level := range models.RiskLevels {
		legend = append(legend, riskStyle(level).Render(fmt.Sprintf("● %s %d", level.Label(), counts[level])))
	}

	plot := paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		renderPlot(points),
		strings.Join(legend, "  "),
	))

	left := lipgloss.JoinVertical(lipgloss.Left, plot, m.renderPointList(points))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🗺️  Mapa de Monitoramento"),
		filters,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, left, m.renderZoneForm()),
	)
}

// visiblePoints applies the map filters to the vegetation observations
func (m Model) visiblePoints() []models.VegetationDataItem {
	return filter.Vegetation(m.snapshot.VegetationData, m.vegFilter)
}

// renderPlot draws points on a coarse lat/lng grid
func renderPlot(points []models.VegetationDataItem) string {
	grid := make([][]string, plotHeight)
	for r := range grid {
		grid[r] = make([]string, plotWidth)
		for c := range grid[r] {
			grid[r][c] = mutedStyle.Render("·")
		}
	}

	for _, p := range points {
		row, col, ok := plotCell(p.Coordinates)
		if !ok {
			continue
		}
		grid[row][col] = riskStyle(p.RiskLevel).Render("●")
	}

	rows := make([]string, plotHeight)
	for r := range grid {
		rows[r] = strings.Join(grid[r], "")
	}
	return strings.Join(rows, "\n")
}

// plotCell maps coordinates to a grid cell; north is up
func plotCell(c models.Coordinates) (row, col int, ok bool) {
	if c.Latitude < plotMinLat || c.Latitude > plotMaxLat || c.Longitude < plotMinLng || c.Longitude > plotMaxLng {
		return 0, 0, false
	}
	row = int((plotMaxLat - c.Latitude) / (plotMaxLat - plotMinLat) * float64(plotHeight-1))
	col = int((c.Longitude - plotMinLng) / (plotMaxLng - plotMinLng) * float64(plotWidth-1))
	return row, col, true
}

func (m Model) renderPointList(points []models.VegetationDataItem) string {
	if len(points) == 0 {
		return mutedStyle.Render("Nenhum ponto corresponde aos filtros")
	}
	lines := make([]string, 0, len(points))
	for _, p := range points {
		lines = append(lines, fmt.Sprintf("%s %-22s NDVI %s  %s",
			riskStyle(p.RiskLevel).Render("●"),
			p.Region,
			models.DataNDVI.Format(p.NDVIValue),
			mutedStyle.Render(vegetationLabel(p.VegetationType)),
		))
	}
	return strings.Join(lines, "\n")
}

// renderZoneForm renders the zone analysis form and its status
func (m Model) renderZoneForm() string {
	lines := []string{titleStyle.Render("📍 Análise da Zona"), ""}
	for i, in := range m.zoneInputs {
		label := labelStyle.Render(fmt.Sprintf("%-10s", zoneFieldLabels[i]))
		if i == m.zoneFocus {
			label = selectedStyle.Render(fmt.Sprintf("%-10s", zoneFieldLabels[i]))
		}
		lines = append(lines, label+" "+in.View())
	}
	lines = append(lines, "")

	switch m.analysisStatus {
	case analysis.StatusAnalyzing:
		lines = append(lines, m.spinner.View()+" Analisando zona...")
	case analysis.StatusCompleted:
		lines = append(lines, successStyle.Render("✓ Análise concluída"))
	default:
		lines = append(lines, mutedStyle.Render("Pronto para analisar"))
	}
	if m.locationName != "" {
		lines = append(lines, mutedStyle.Render(m.locationName))
	}
	if m.analysisErr != nil {
		lines = append(lines, errorStyle.Render("✗ "+m.analysisErr.Error()))
	}
	if m.zoneFocus >= 0 {
		lines = append(lines, "", mutedStyle.Render("Tab: Próximo campo • Enter: Buscar/Analisar • Esc: Sair"))
	}

	return paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
