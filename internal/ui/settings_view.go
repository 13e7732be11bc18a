package ui

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/ecowatch-terminal/internal/settings"
)

// settingsKeys is the cursor order on the settings page
var settingsKeys = slices.Concat(settings.ToggleKeys, settings.ChoiceKeys)

// handleSettingsKey handles keyboard input on the settings page
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
	case "down", "j":
		if m.settingsCursor < len(settingsKeys)-1 {
			m.settingsCursor++
		}
	case "enter", " ":
		key := settingsKeys[m.settingsCursor]
		var err error
		if m.settingsCursor < len(settings.ToggleKeys) {
			err = m.settings.Toggle(key)
		} else {
			err = m.settings.Cycle(key)
		}
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.settingsDirty = true
	case "s":
		return m, saveSettings(m.store, m.settings)
	case "r":
		return m, resetSettings(m.store)
	case "x":
		return m, exportSnapshot(m.settings.Data.ExportFormat, m.exportDir, m.snapshot)
	}
	return m, nil
}

// viewSettings renders the settings page
func (m Model) viewSettings() string {
	var toggles, choices []string
	for i, key := range settingsKeys {
		cursor := "  "
		style := valueStyle
		if i == m.settingsCursor {
			cursor = selectedStyle.Render("▸ ")
			style = selectedStyle
		}

		if i < len(settings.ToggleKeys) {
			mark := mutedStyle.Render("[ ]")
			if m.settings.Enabled(key) {
				mark = successStyle.Render("[✓]")
			}
			toggles = append(toggles, fmt.Sprintf("%s%s %s", cursor, mark, style.Render(settings.Label(key))))
			continue
		}
		choices = append(choices, fmt.Sprintf("%s%s: %s", cursor, style.Render(settings.Label(key)), bigValueStyle.Render(m.settings.Value(key))))
	}

	app := m.settings.App
	info := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Versão: ")+valueStyle.Render(app.Version),
		labelStyle.Render("Equipe: ")+valueStyle.Render(app.Team),
		labelStyle.Render("Atualizado em: ")+valueStyle.Render(app.LastUpdate),
		labelStyle.Render("Região: ")+valueStyle.Render(app.Region),
		labelStyle.Render("Status: ")+successStyle.Render(app.Status),
	)

	dirty := ""
	if m.settingsDirty {
		dirty = mutedStyle.Render(" (alterações não salvas)")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("⚙️  Configurações")+dirty,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
				append([]string{sectionHeaderStyle.UnsetMarginTop().Render("Notificações e dados")}, toggles...)...)),
			paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
				append([]string{sectionHeaderStyle.UnsetMarginTop().Render("Preferências")}, choices...)...)),
			paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
				sectionHeaderStyle.UnsetMarginTop().Render("Sobre"), info)),
		),
	)
}
