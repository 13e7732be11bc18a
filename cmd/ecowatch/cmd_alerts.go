package main

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ngmaloney/ecowatch-terminal/internal/dataset"
	"github.com/ngmaloney/ecowatch-terminal/internal/filter"
	"github.com/ngmaloney/ecowatch-terminal/internal/models"
	"github.com/spf13/cobra"
)

var (
	alertSearch    string
	alertSeverity  string
	alertType      string
	alertStatus    string
	alertDateRange string
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "List environmental alerts",
	Long: `Prints the alerts matching the given filters. Every filter accepts "all".

Example:
  ecowatch alerts --severity critica --status all --range all`,
	Args: cobra.NoArgs,
	RunE: runAlerts,
}

func init() {
	def := filter.DefaultAlertFilter()
	alertsCmd.Flags().StringVarP(&alertSearch, "search", "s", "", "Match title, region or description")
	alertsCmd.Flags().StringVar(&alertSeverity, "severity", string(def.Severity), "baixa, media, alta, critica or all")
	alertsCmd.Flags().StringVar(&alertType, "type", string(def.Type), "vegetation, temperature, moisture, fire, flood or all")
	alertsCmd.Flags().StringVar(&alertStatus, "status", string(def.Status), "active, resolved, investigating or all")
	alertsCmd.Flags().StringVar(&alertDateRange, "range", string(def.DateRange), "1day, 7days, 30days or all")
}

// alertFilterFromFlags validates the filter flags
func alertFilterFromFlags() (filter.AlertFilter, error) {
	f := filter.AlertFilter{
		Search:    alertSearch,
		Severity:  filter.All,
		Type:      filter.All,
		Status:    filter.All,
		DateRange: filter.DateRange(alertDateRange),
	}

	var err error
	if alertSeverity != filter.All {
		if f.Severity, err = models.ParseSeverity(alertSeverity); err != nil {
			return f, err
		}
	}
	if alertType != filter.All {
		if f.Type, err = models.ParseAlertType(alertType); err != nil {
			return f, err
		}
	}
	if alertStatus != filter.All {
		if f.Status, err = models.ParseAlertStatus(alertStatus); err != nil {
			return f, err
		}
	}
	if !slices.Contains(filter.DateRanges, f.DateRange) {
		return f, fmt.Errorf("invalid date range %q", alertDateRange)
	}
	return f, nil
}

func runAlerts(cmd *cobra.Command, args []string) error {
	f, err := alertFilterFromFlags()
	if err != nil {
		return err
	}

	provider := dataset.MustFromContext(cmd.Context())
	snap := provider.Snapshot()
	alerts := filter.Alerts(snap.Alerts, f, provider.GeneratedAt())
	stats := filter.CountAlerts(snap.Alerts)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Total %d • Ativos %d • Críticos %d • Resolvidos %d\n",
		stats.Total, stats.Active, stats.Critical, stats.Resolved)

	if len(alerts) == 0 {
		fmt.Fprintln(out, "Nenhum alerta encontrado")
		return nil
	}

	rows := make([][]string, 0, len(alerts))
	for _, a := range alerts {
		rows = append(rows, []string{
			a.ID,
			a.Date.Format("02/01/2006"),
			string(a.Severity),
			string(a.Type),
			string(a.Status),
			a.Region,
			a.Title,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Data", "Severidade", "Tipo", "Status", "Região", "Título").
		Rows(rows...)
	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "%d de %d alertas\n", len(alerts), len(snap.Alerts))
	return nil
}
