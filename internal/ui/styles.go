package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/ecowatch-terminal/internal/models"
)

var (
	// Color palette
	colorPrimary   = lipgloss.Color("#10B981") // Emerald
	colorSecondary = lipgloss.Color("#6EE7B7") // Light emerald
	colorDanger    = lipgloss.Color("#EF4444") // Red for critical
	colorHigh      = lipgloss.Color("#F97316") // Orange
	colorWarning   = lipgloss.Color("#F59E0B") // Amber
	colorSuccess   = lipgloss.Color("#22C55E") // Green
	colorInfo      = lipgloss.Color("#3B82F6") // Blue
	colorMuted     = lipgloss.Color("#6C757D") // Gray
	colorBorder    = lipgloss.Color("#059669") // Border green

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	// Navigation tabs
	tabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 1)

	// Pane styles
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginRight(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2).
			MarginRight(1)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	bigValueStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0, 0, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				MarginTop(1)
)

// riskStyle colours a risk level from green (baixo) to red (critico)
func riskStyle(level models.RiskLevel) lipgloss.Style {
	switch level {
	case models.RiskCritical:
		return lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	case models.RiskHigh:
		return lipgloss.NewStyle().Foreground(colorHigh).Bold(true)
	case models.RiskMedium:
		return lipgloss.NewStyle().Foreground(colorWarning)
	case models.RiskLow:
		return lipgloss.NewStyle().Foreground(colorSuccess)
	default:
		return valueStyle
	}
}

// severityStyle returns the appropriate style for an alert severity
func severityStyle(severity models.AlertSeverity) lipgloss.Style {
	return riskStyle(severity.RiskLevel())
}

// statusStyle colours an alert status
func statusStyle(status models.AlertStatus) lipgloss.Style {
	switch status {
	case models.StatusActive:
		return lipgloss.NewStyle().Foreground(colorDanger)
	case models.StatusInvestigating:
		return lipgloss.NewStyle().Foreground(colorInfo)
	case models.StatusResolved:
		return successStyle
	default:
		return valueStyle
	}
}
