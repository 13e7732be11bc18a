// Package dataset holds the process-wide snapshot of generated data that
// every dashboard page reads from.
package dataset

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/ngmaloney/ecowatch-terminal/internal/mockdata"
	"github.com/ngmaloney/ecowatch-terminal/internal/models"
	"go.uber.org/zap"
)

// ErrNoProvider is raised when the dataset is accessed from a context that
// was never given a Provider.
var ErrNoProvider = errors.New("dataset: accessed outside a Provider scope")

// Snapshot is the read-only view handed to consumers
type Snapshot struct {
	ClimateData    []models.ClimateRecord
	Alerts         []models.Alert
	VegetationData []models.VegetationDataItem
	Loading        bool
}

// Provider generates the dashboard data once and serves copies of it
type Provider struct {
	seed   uint64
	logger *zap.Logger

	once           sync.Once
	generatedAt    time.Time
	climateData    []models.ClimateRecord
	alerts         []models.Alert
	vegetationData []models.VegetationDataItem
}

// NewProvider creates a provider. A zero seed draws one from the clock, so
// every session gets a different climate series.
func NewProvider(seed uint64, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{seed: seed, logger: logger}
}

func (p *Provider) load() {
	p.once.Do(func() {
		now := mockdata.Now()
		seed := p.seed
		if seed == 0 {
			seed = uint64(now.UnixNano())
		}
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

		p.generatedAt = now
		p.climateData = mockdata.GenerateClimateData(now, rng)
		p.alerts = mockdata.GenerateAlerts(now)
		p.vegetationData = mockdata.GenerateVegetationData(now)

		p.logger.Debug("dataset generated",
			zap.Uint64("seed", seed),
			zap.Int("climate_records", len(p.climateData)),
			zap.Int("alerts", len(p.alerts)),
			zap.Int("vegetation_points", len(p.vegetationData)),
		)
	})
}

// Snapshot returns copies of the generated arrays. Loading stays true until
// all three arrays are non-empty.
func (p *Provider) Snapshot() Snapshot {
	p.load()
	return Snapshot{
		ClimateData:    slices.Clone(p.climateData),
		Alerts:         cloneAlerts(p.alerts),
		VegetationData: slices.Clone(p.vegetationData),
		Loading:        len(p.climateData) == 0 || len(p.alerts) == 0 || len(p.vegetationData) == 0,
	}
}

// GeneratedAt is the instant the data was generated; relative filters
// ("last 7 days") are evaluated against it.
func (p *Provider) GeneratedAt() time.Time {
	p.load()
	return p.generatedAt
}

// cloneAlerts deep-copies the optional pointer fields so callers cannot
// reach the provider's records through them.
func cloneAlerts(src []models.Alert) []models.Alert {
	out := make([]models.Alert, len(src))
	for i, a := range src {
		if a.Coordinates != nil {
			c := *a.Coordinates
			a.Coordinates = &c
		}
		a.NDVIValue = cloneFloat(a.NDVIValue)
		a.Temperature = cloneFloat(a.Temperature)
		a.SoilMoisture = cloneFloat(a.SoilMoisture)
		out[i] = a
	}
	return out
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying p
func NewContext(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the provider attached to ctx
func FromContext(ctx context.Context) (*Provider, error) {
	p, ok := ctx.Value(contextKey{}).(*Provider)
	if !ok || p == nil {
		return nil, ErrNoProvider
	}
	return p, nil
}

// MustFromContext is FromContext for callers that cannot run without data.
// It panics with ErrNoProvider when ctx has no provider.
func MustFromContext(ctx context.Context) *Provider {
	p, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return p
}
