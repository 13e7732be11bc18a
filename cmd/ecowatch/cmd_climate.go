package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ngmaloney/ecowatch-terminal/internal/dataset"
	"github.com/ngmaloney/ecowatch-terminal/internal/filter"
	"github.com/ngmaloney/ecowatch-terminal/internal/models"
	"github.com/spf13/cobra"
)

var (
	climateRegion   string
	climateDataType string
	climatePeriod   string
)

var climateCmd = &cobra.Command{
	Use:   "climate",
	Short: "Show climate statistics for a region",
	Long: `Prints average, maximum and minimum of one measurement for a region over
the last 7 or 30 days, followed by the records most recent first.

Example:
  ecowatch climate --region "Delta do Okavango" --type ndvi --period 7days`,
	Args: cobra.NoArgs,
	RunE: runClimate,
}

func init() {
	def := filter.DefaultClimateFilter()
	climateCmd.Flags().StringVarP(&climateRegion, "region", "r", string(def.Region), "Monitored region")
	climateCmd.Flags().StringVarP(&climateDataType, "type", "t", string(def.DataType), "temperature, soil_moisture, precipitation or ndvi")
	climateCmd.Flags().StringVarP(&climatePeriod, "period", "p", string(def.Period), "7days or 30days")
}

// climateFilterFromFlags validates the filter flags
func climateFilterFromFlags() (filter.ClimateFilter, error) {
	region, err := models.ParseRegion(climateRegion)
	if err != nil {
		return filter.ClimateFilter{}, err
	}
	dataType, err := models.ParseDataType(climateDataType)
	if err != nil {
		return filter.ClimateFilter{}, err
	}
	period := filter.Period(climatePeriod)
	if period != filter.PeriodWeek && period != filter.PeriodMonth {
		return filter.ClimateFilter{}, fmt.Errorf("invalid period %q", climatePeriod)
	}
	return filter.ClimateFilter{Region: region, DataType: dataType, Period: period}, nil
}

func runClimate(cmd *cobra.Command, args []string) error {
	f, err := climateFilterFromFlags()
	if err != nil {
		return err
	}

	provider := dataset.MustFromContext(cmd.Context())
	records := filter.Climate(provider.Snapshot().ClimateData, f, provider.GeneratedAt())
	stats := filter.ClimateStats(records, f.DataType)
	unit := f.DataType.Unit()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s • %s • %s\n", f.Region, f.DataType.Label(), f.Period)
	fmt.Fprintf(out, "Média %s%s • Máxima %s%s • Mínima %s%s\n",
		stats.Avg, unit, stats.Max, unit, stats.Min, unit)

	rows := make([][]string, 0, len(records))
	for _, r := range filter.MostRecentFirst(records) {
		rows = append(rows, []string{
			r.Date.Format("02/01/2006"),
			f.DataType.Format(r.Value(f.DataType)) + unit,
			r.RiskLevel.Label(),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Data", f.DataType.Label(), "Risco").
		Rows(rows...)
	fmt.Fprintln(out, t.Render())
	return nil
}
