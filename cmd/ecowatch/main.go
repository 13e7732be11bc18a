package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/ngmaloney/ecowatch-terminal/internal/analysis"
	"github.com/ngmaloney/ecowatch-terminal/internal/backend"
	"github.com/ngmaloney/ecowatch-terminal/internal/config"
	"github.com/ngmaloney/ecowatch-terminal/internal/dataset"
	"github.com/ngmaloney/ecowatch-terminal/internal/geocoding"
	"github.com/ngmaloney/ecowatch-terminal/internal/logging"
	"github.com/ngmaloney/ecowatch-terminal/internal/settings"
	"github.com/ngmaloney/ecowatch-terminal/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ecowatch",
	Short: "EcoWatch - environmental monitoring dashboard for southern Africa",
	Long: `EcoWatch shows generated climate, alert and vegetation data for
Cunene, the Namibian coast and the Okavango Delta, and submits zone
analyses to the analysis backend.

Run without arguments to start the terminal dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.LogFile)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		provider := dataset.NewProvider(cfg.Seed, logger)
		cmd.SetContext(dataset.NewContext(cmd.Context(), provider))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDashboard,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(alertsCmd)
	rootCmd.AddCommand(climateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newAnalysisService wires the saved-analysis repository to the backend client
func newAnalysisService() (*analysis.Service, *backend.HTTPClient) {
	client := backend.NewHTTPClient(backend.Options{
		BaseURL: cfg.BackendURL,
		Timeout: cfg.BackendTimeout,
		Retries: cfg.BackendRetries,
		Logger:  logger,
	})
	repo := analysis.NewRepository(cfg.DBPath)
	return analysis.NewService(repo, client, clockwork.NewRealClock(), logger), client
}

// runDashboard starts the terminal UI
func runDashboard(cmd *cobra.Command, args []string) error {
	svc, client := newAnalysisService()
	defer client.CloseIdleConnections()

	model := ui.NewModel(ui.Deps{
		Provider: dataset.MustFromContext(cmd.Context()),
		Analysis: svc,
		Geocoder: geocoding.NewGeocoder(cfg.NominatimURL, logger),
		Settings: settings.NewStore(cfg.DBPath),
		Clock:    clockwork.NewRealClock(),
		Logger:   logger,
	})

	logger.Info("starting dashboard", zap.String("db", cfg.DBPath), zap.String("backend", cfg.BackendURL))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}
