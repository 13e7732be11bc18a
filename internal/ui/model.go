package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/ngmaloney/ecowatch-terminal/internal/analysis"
	"github.com/ngmaloney/ecowatch-terminal/internal/dataset"
	"github.com/ngmaloney/ecowatch-terminal/internal/filter"
	"github.com/ngmaloney/ecowatch-terminal/internal/geocoding"
	"github.com/ngmaloney/ecowatch-terminal/internal/models"
	"github.com/ngmaloney/ecowatch-terminal/internal/settings"
	"go.uber.org/zap"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoading AppState = iota // Waiting for the generated dataset
	StateReady                   // Dashboard pages are shown
	StateError                   // Error state
)

// Page is one of the dashboard screens
type Page int

const (
	PageHome Page = iota
	PageMap
	PageAlerts
	PageClimate
	PageAnalysis
	PageSettings
	pageCount
)

var pageTitles = [...]string{"Início", "Mapa", "Alertas", "Clima", "Análise", "Configurações"}

func (p Page) String() string {
	if p < 0 || p >= pageCount {
		return "?"
	}
	return pageTitles[p]
}

// Deps are the services the dashboard talks to. Nil services disable the
// features that need them.
type Deps struct {
	Provider *dataset.Provider
	Analysis *analysis.Service
	Geocoder *geocoding.Geocoder
	Settings *settings.Store
	Clock    clockwork.Clock
	Logger   *zap.Logger

	// ExportDir receives files exported from the settings page; defaults to data
	ExportDir string
}

// Model represents the application's state
type Model struct {
	state  AppState
	page   Page
	width  int
	height int
	err    error
	status string

	provider  *dataset.Provider
	analysis  *analysis.Service
	geocoder  *geocoding.Geocoder
	store     *settings.Store
	clock     clockwork.Clock
	logger    *zap.Logger
	exportDir string

	spinner  spinner.Model
	snapshot dataset.Snapshot

	// Alerts page
	alertFilter    filter.AlertFilter
	alertSearch    textinput.Model
	alertList      list.Model
	filteredAlerts []models.Alert

	// Climate page
	climateFilter  filter.ClimateFilter
	climateRecords []models.ClimateRecord
	climateTable   table.Model

	// Map page
	vegFilter      filter.VegetationFilter
	zoneInputs     [fieldCount]textinput.Model
	zoneFocus      int // -1 when the form is not being edited
	analysisStatus analysis.Status
	analysisErr    error
	locationName   string

	// Analysis page
	current    *analysis.Payload
	lastResult map[string]any
	overview   analysis.Overview

	// Settings page
	settings       settings.Settings
	settingsCursor int
	settingsDirty  bool
}

// NewModel creates a new application model
func NewModel(deps Deps) Model {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.ExportDir == "" {
		deps.ExportDir = "data"
	}

	ti := textinput.New()
	ti.Placeholder = "Buscar por título, região ou descrição..."
	ti.CharLimit = 100
	ti.Width = 50

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		state:          StateLoading,
		page:           PageHome,
		provider:       deps.Provider,
		analysis:       deps.Analysis,
		geocoder:       deps.Geocoder,
		store:          deps.Settings,
		clock:          deps.Clock,
		logger:         deps.Logger,
		exportDir:      deps.ExportDir,
		spinner:        s,
		alertFilter:    filter.DefaultAlertFilter(),
		alertSearch:    ti,
		alertList:      createAlertList(nil, 60, 10),
		climateFilter:  filter.DefaultClimateFilter(),
		climateTable:   createClimateTable(nil, 10),
		vegFilter:      filter.DefaultVegetationFilter(),
		zoneInputs:     newZoneInputs(),
		zoneFocus:      -1,
		analysisStatus: analysis.StatusIdle,
		overview:       analysis.DefaultOverview(),
		settings:       settings.Defaults(),
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadSnapshot(m.provider),
		loadSettings(m.store),
		loadCurrentAnalysis(m.analysis),
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case dataLoadedMsg:
		m.snapshot = msg.snapshot
		if m.snapshot.Loading {
			return m, nil
		}
		m.state = StateReady
		m.refreshAlerts()
		m.refreshClimate()
		return m, nil

	case settingsLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("loading settings failed, using defaults", zap.Error(msg.err))
			m.status = "Não foi possível carregar as configurações salvas"
		}
		m.settings = msg.settings
		if m.page == PageHome {
			m.page = startPage(m.settings.Preferences.DefaultView)
		}
		return m, nil

	case settingsSavedMsg:
		if msg.err != nil {
			m.status = "Erro ao salvar: " + msg.err.Error()
			return m, nil
		}
		m.settings = msg.settings
		m.settingsDirty = false
		if msg.reset {
			m.status = "Configurações restauradas"
		} else {
			m.status = "Configurações aplicadas com sucesso!"
		}
		return m, nil

	case currentAnalysisMsg:
		if msg.err != nil {
			m.logger.Warn("loading current analysis failed", zap.Error(msg.err))
		}
		m.current = msg.payload
		return m, nil

	case analysisDoneMsg:
		if msg.err != nil {
			m.analysisStatus = analysis.StatusIdle
			m.analysisErr = msg.err
			return m, nil
		}
		m.analysisStatus = analysis.StatusCompleted
		m.analysisErr = nil
		payload := msg.payload
		m.current = &payload
		m.lastResult = msg.result
		m.page = PageAnalysis
		return m, nil

	case analysisClearedMsg:
		if msg.err != nil {
			m.status = "Erro ao limpar análise: " + msg.err.Error()
			return m, nil
		}
		m.current = nil
		m.lastResult = nil
		m.analysisStatus = analysis.StatusIdle
		m.status = "Análise removida"
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.logger.Error("export failed", zap.Error(msg.err))
			m.status = "Erro ao exportar: " + msg.err.Error()
			return m, nil
		}
		m.logger.Info("export written", zap.String("path", msg.path), zap.Int("records", msg.count))
		m.status = fmt.Sprintf("%d registros exportados para %s", msg.count, msg.path)
		return m, nil

	case geocodeMsg:
		return m.handleGeocode(msg)

	case spinner.TickMsg:
		if m.state != StateLoading && m.analysisStatus != analysis.StatusAnalyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Forward cursor blinks to whichever input is being edited
	return m.updateFocusedInput(msg)
}

// handleKey routes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case StateLoading:
		if key == "q" {
			return m, tea.Quit
		}
		return m, nil
	case StateError:
		if key == "q" {
			return m, tea.Quit
		}
		// Any other key dismisses the error
		m.err = nil
		m.state = StateLoading
		if len(m.snapshot.ClimateData) > 0 && !m.snapshot.Loading {
			m.state = StateReady
		}
		return m, nil
	}

	if m.editing() {
		switch m.page {
		case PageAlerts:
			return m.handleAlertSearchKey(msg)
		case PageMap:
			return m.handleZoneFormKey(msg)
		}
	}

	m.status = ""
	switch key {
	case "q":
		return m, tea.Quit
	case "1", "2", "3", "4", "5", "6":
		m.page = Page(key[0] - '1')
		return m, nil
	case "tab":
		m.page = (m.page + 1) % pageCount
		return m, nil
	case "shift+tab":
		m.page = (m.page + pageCount - 1) % pageCount
		return m, nil
	}

	switch m.page {
	case PageAlerts:
		return m.handleAlertsKey(msg)
	case PageClimate:
		return m.handleClimateKey(msg)
	case PageMap:
		return m.handleMapKey(msg)
	case PageAnalysis:
		return m.handleAnalysisKey(msg)
	case PageSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

// editing reports whether a text input currently owns the keyboard
func (m Model) editing() bool {
	return m.alertSearch.Focused() || m.zoneFocus >= 0
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.alertSearch.Focused():
		m.alertSearch, cmd = m.alertSearch.Update(msg)
	case m.zoneFocus >= 0:
		m.zoneInputs[m.zoneFocus], cmd = m.zoneInputs[m.zoneFocus].Update(msg)
	}
	return m, cmd
}

// resize fits the list and table to the terminal
func (m *Model) resize() {
	bodyHeight := m.height - 16
	if bodyHeight < 5 {
		bodyHeight = 5
	}
	listWidth := m.width/2 - 2
	if listWidth < 30 {
		listWidth = 30
	}
	m.alertList.SetSize(listWidth, bodyHeight)
	m.climateTable.SetHeight(bodyHeight - 6)
}

// startPage maps the defaultView preference to a page
func startPage(view string) Page {
	switch view {
	case "alerts":
		return PageAlerts
	case "climate":
		return PageClimate
	case "vegetation":
		return PageMap
	default:
		return PageHome
	}
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Carregando..."
	}

	switch m.state {
	case StateLoading:
		return m.viewLoading()
	case StateError:
		return m.viewError()
	}

	var body string
	switch m.page {
	case PageHome:
		body = m.viewHome()
	case PageMap:
		body = m.viewMap()
	case PageAlerts:
		body = m.viewAlerts()
	case PageClimate:
		body = m.viewClimate()
	case PageAnalysis:
		body = m.viewAnalysis()
	case PageSettings:
		body = m.viewSettings()
	}

	sections := []string{m.viewHeader(), "", body}
	if m.status != "" {
		sections = append(sections, "", successStyle.Render(m.status))
	}
	sections = append(sections, helpStyle.Render(m.pageHelp()+" • 1-6/Tab: Páginas • Q: Sair"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewHeader renders the title and page tabs
func (m Model) viewHeader() string {
	title := titleStyle.Render("🌍 EcoWatch Terminal")
	subtitle := subtitleStyle.Render("Monitoramento Ambiental • África Austral")

	tabs := make([]string, 0, pageCount)
	for p := Page(0); p < pageCount; p++ {
		label := fmt.Sprintf("%d %s", p+1, p)
		if p == m.page {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", subtitle),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	)
}

// pageHelp lists the keys of the current page
func (m Model) pageHelp() string {
	switch m.page {
	case PageAlerts:
		return "/: Buscar • S: Severidade • T: Tipo • E: Status • D: Período • R: Limpar filtros • ↑/↓: Navegar"
	case PageClimate:
		return "G: Região • V: Variável • P: Período • ↑/↓: Tabela"
	case PageMap:
		return "V: Vegetação • N: Risco • F: Editar zona • A: Analisar zona"
	case PageAnalysis:
		return "C: Limpar análise"
	case PageSettings:
		return "↑/↓: Navegar • Enter/Espaço: Alterar • S: Salvar • R: Restaurar padrões • X: Exportar dados"
	}
	return ""
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	title := titleStyle.Render("🌍 EcoWatch Terminal")
	status := mutedStyle.Render("Carregando dados ambientais...")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		title,
		"",
		fmt.Sprintf("%s %s", m.spinner.View(), status),
	)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Erro")

	var errorMsg string
	if m.err != nil {
		errorMsg = m.err.Error()
	} else {
		errorMsg = "Ocorreu um erro desconhecido"
	}

	help := helpStyle.Render("Pressione qualquer tecla para continuar • Q: Sair")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorMsg, "", help)
}
