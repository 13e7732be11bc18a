package ui

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/ecowatch-terminal/internal/analysis"
	"github.com/ngmaloney/ecowatch-terminal/internal/dataset"
	"github.com/ngmaloney/ecowatch-terminal/internal/export"
	"github.com/ngmaloney/ecowatch-terminal/internal/geocoding"
	"github.com/ngmaloney/ecowatch-terminal/internal/settings"
)

// loadSnapshot reads the generated data in the background
func loadSnapshot(p *dataset.Provider) tea.Cmd {
	return func() tea.Msg {
		if p == nil {
			return errMsg{err: dataset.ErrNoProvider}
		}
		return dataLoadedMsg{snapshot: p.Snapshot()}
	}
}

// loadSettings reads saved settings, falling back to defaults
func loadSettings(store *settings.Store) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return settingsLoadedMsg{settings: settings.Defaults()}
		}
		s, err := store.Load()
		return settingsLoadedMsg{settings: s, err: err}
	}
}

// saveSettings persists s
func saveSettings(store *settings.Store, s settings.Settings) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return settingsSavedMsg{settings: s}
		}
		return settingsSavedMsg{settings: s, err: store.Save(s)}
	}
}

// resetSettings removes saved settings
func resetSettings(store *settings.Store) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return settingsSavedMsg{settings: settings.Defaults(), reset: true}
		}
		s, err := store.Reset()
		return settingsSavedMsg{settings: s, reset: true, err: err}
	}
}

// loadCurrentAnalysis reads the stored analysis
func loadCurrentAnalysis(svc *analysis.Service) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return currentAnalysisMsg{}
		}
		p, err := svc.Current()
		if errors.Is(err, analysis.ErrNoAnalysis) {
			return currentAnalysisMsg{}
		}
		if err != nil {
			return currentAnalysisMsg{err: err}
		}
		return currentAnalysisMsg{payload: &p}
	}
}

// startAnalysis submits a zone analysis in the background
func startAnalysis(svc *analysis.Service, zone analysis.Zone, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		p, result, err := svc.Start(ctx, zone, analysis.Period{}, name)
		return analysisDoneMsg{payload: p, result: result, err: err}
	}
}

// clearAnalysis removes the stored analysis
func clearAnalysis(svc *analysis.Service) tea.Cmd {
	return func() tea.Msg {
		return analysisClearedMsg{err: svc.Clear()}
	}
}

// geocodeLocation performs geocoding in the background
func geocodeLocation(geocoder *geocoding.Geocoder, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		location, err := geocoder.Geocode(ctx, query)
		return geocodeMsg{location: location, err: err}
	}
}

// exportSnapshot writes snap to dir in the given format
func exportSnapshot(format, dir string, snap dataset.Snapshot) tea.Cmd {
	return func() tea.Msg {
		f, err := export.ParseFormat(format)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		path := filepath.Join(dir, "ecowatch-export"+f.Extension())
		n, err := export.Snapshot(f, path, snap)
		return exportDoneMsg{path: path, count: n, err: err}
	}
}
