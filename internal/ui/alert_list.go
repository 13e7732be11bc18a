package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/ngmaloney/ecowatch-terminal/internal/models"
)

// alertItem wraps an Alert for use in a list
type alertItem struct {
	alert models.Alert
}

// FilterValue implements list.Item
func (a alertItem) FilterValue() string {
	return a.alert.Title + " " + a.alert.Region
}

// Title implements list.DefaultItem
func (a alertItem) Title() string {
	return fmt.Sprintf("[%s] %s", severityLabel(a.alert.Severity), a.alert.Title)
}

// Description implements list.DefaultItem
func (a alertItem) Description() string {
	return fmt.Sprintf("%s • %s • %s", a.alert.Region, formatDate(a.alert.Date), statusLabel(a.alert.Status))
}

func alertItems(alerts []models.Alert) []list.Item {
	items := make([]list.Item, len(alerts))
	for i, a := range alerts {
		items[i] = alertItem{alert: a}
	}
	return items
}

// createAlertList creates a list.Model from alerts
func createAlertList(alerts []models.Alert, width, height int) list.Model {
	l := list.New(alertItems(alerts), list.NewDefaultDelegate(), width, height)
	l.Title = "Alertas"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	// q and esc belong to the dashboard, not the list
	l.KeyMap.Quit.SetEnabled(false)

	return l
}
