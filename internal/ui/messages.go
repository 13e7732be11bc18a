package ui

import (
	"github.com/ngmaloney/ecowatch-terminal/internal/analysis"
	"github.com/ngmaloney/ecowatch-terminal/internal/dataset"
	"github.com/ngmaloney/ecowatch-terminal/internal/geocoding"
	"github.com/ngmaloney/ecowatch-terminal/internal/settings"
)

// Message types for async operations

// dataLoadedMsg is sent when the provider snapshot is ready
type dataLoadedMsg struct {
	snapshot dataset.Snapshot
}

// settingsLoadedMsg is sent when saved settings have been read
type settingsLoadedMsg struct {
	settings settings.Settings
	err      error
}

// settingsSavedMsg is sent after settings were saved or reset
type settingsSavedMsg struct {
	settings settings.Settings
	reset    bool
	err      error
}

// currentAnalysisMsg carries the stored analysis, if any
type currentAnalysisMsg struct {
	payload *analysis.Payload
	err     error
}

// analysisDoneMsg is sent when a zone analysis request finishes
type analysisDoneMsg struct {
	payload analysis.Payload
	result  map[string]any
	err     error
}

// analysisClearedMsg is sent after the stored analysis was removed
type analysisClearedMsg struct {
	err error
}

// geocodeMsg is sent when geocoding completes
type geocodeMsg struct {
	location *geocoding.Location
	err      error
}

// exportDoneMsg is sent after the snapshot was written to disk
type exportDoneMsg struct {
	path  string
	count int
	err   error
}

// errMsg is a message type for errors
type errMsg struct {
	err error
}
