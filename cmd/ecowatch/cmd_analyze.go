package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ngmaloney/ecowatch-terminal/internal/analysis"
	"github.com/ngmaloney/ecowatch-terminal/internal/geocoding"
	"github.com/spf13/cobra"
)

var (
	analyzeLat      float64
	analyzeLng      float64
	analyzeRadius   float64
	analyzeStart    string
	analyzeEnd      string
	analyzeName     string
	analyzeLocation string
	analyzeClear    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Submit a zone analysis to the backend",
	Long: `Sends a circular zone to the analysis backend and stores it as the current
analysis shown on the dashboard. The period defaults to the last six months.

Example:
  ecowatch analyze --lat -17.0639 --lng 15.7342 --radius 5 --name Ondjiva
  ecowatch analyze --location "Maun, Botswana" --radius 10`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Float64Var(&analyzeLat, "lat", 0, "Zone centre latitude")
	analyzeCmd.Flags().Float64Var(&analyzeLng, "lng", 0, "Zone centre longitude")
	analyzeCmd.Flags().Float64Var(&analyzeRadius, "radius", 5, "Zone radius in km")
	analyzeCmd.Flags().StringVar(&analyzeStart, "start", "", "Period start (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&analyzeEnd, "end", "", "Period end (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&analyzeName, "name", "", "Location name")
	analyzeCmd.Flags().StringVar(&analyzeLocation, "location", "", "Look up the centre by place name")
	analyzeCmd.Flags().BoolVar(&analyzeClear, "clear", false, "Remove the stored analysis and exit")
	analyzeCmd.MarkFlagsRequiredTogether("lat", "lng")
	analyzeCmd.MarkFlagsMutuallyExclusive("lat", "location")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	svc, client := newAnalysisService()
	defer client.CloseIdleConnections()
	out := cmd.OutOrStdout()

	if analyzeClear {
		if err := svc.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Análise removida")
		return nil
	}

	ctx := cmd.Context()
	zone := analysis.Zone{Lat: analyzeLat, Lng: analyzeLng, Radius: analyzeRadius}
	name := analyzeName

	switch {
	case analyzeLocation != "":
		loc, err := geocoding.NewGeocoder(cfg.NominatimURL, logger).Geocode(ctx, analyzeLocation)
		if err != nil {
			return fmt.Errorf("looking up %q: %w", analyzeLocation, err)
		}
		zone.Lat, zone.Lng = loc.Latitude, loc.Longitude
		if name == "" {
			name = loc.Name
		}
	case !cmd.Flags().Changed("lat"):
		return showCurrentAnalysis(cmd, svc)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.BackendTimeout*time.Duration(cfg.BackendRetries+1))
	defer cancel()

	payload, result, err := svc.Start(ctx, zone, analysis.Period{Start: analyzeStart, End: analyzeEnd}, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Análise concluída: %s\n", payload.LocationName)
	return writeJSON(cmd, map[string]any{"payload": payload, "result": result})
}

// showCurrentAnalysis prints the stored analysis
func showCurrentAnalysis(cmd *cobra.Command, svc *analysis.Service) error {
	p, err := svc.Current()
	if errors.Is(err, analysis.ErrNoAnalysis) {
		fmt.Fprintln(cmd.OutOrStdout(), "Nenhuma análise salva")
		return nil
	}
	if err != nil {
		return err
	}
	return writeJSON(cmd, p)
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
