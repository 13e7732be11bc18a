package analysis

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Status is the lifecycle state of a zone analysis
type Status string

const (
	StatusIdle      Status = "idle"
	StatusAnalyzing Status = "analyzing"
	StatusCompleted Status = "completed"
)

// Submitter sends a payload to the analysis backend
type Submitter interface {
	AnalyzeZone(ctx context.Context, p Payload) (map[string]any, error)
}

// Service orchestrates zone analyses
type Service struct {
	repo    *Repository
	backend Submitter
	clock   clockwork.Clock
	logger  *zap.Logger

	mu     sync.Mutex
	status Status
}

// NewService creates a new analysis service
func NewService(repo *Repository, backend Submitter, clock clockwork.Clock, logger *zap.Logger) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:    repo,
		backend: backend,
		clock:   clock,
		logger:  logger,
		status:  StatusIdle,
	}
}

// Status returns the current analysis state
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Service) setStatus(st Status) {
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}

// BuildPayload fills in the default period and name where they are missing
func (s *Service) BuildPayload(zone Zone, period Period, name string) Payload {
	if period.Start == "" || period.End == "" {
		def := DefaultPeriod(s.clock.Now())
		if period.Start == "" {
			period.Start = def.Start
		}
		if period.End == "" {
			period.End = def.End
		}
	}
	if name == "" {
		name = DefaultName(zone.Lat, zone.Lng)
	}
	return Payload{
		Coordinates:  LatLng{Lat: zone.Lat, Lng: zone.Lng},
		Radius:       zone.Radius,
		Period:       period,
		LocationName: name,
	}
}

// Start submits a zone analysis and stores it as currentAnalysis on success.
// On failure the status returns to idle and nothing is stored.
func (s *Service) Start(ctx context.Context, zone Zone, period Period, name string) (Payload, map[string]any, error) {
	p := s.BuildPayload(zone, period, name)
	if err := zone.Validate(); err != nil {
		return p, nil, err
	}
	if err := p.Period.Validate(); err != nil {
		return p, nil, err
	}

	s.setStatus(StatusAnalyzing)
	s.logger.Info("starting zone analysis",
		zap.String("location", p.LocationName),
		zap.Float64("lat", p.Coordinates.Lat),
		zap.Float64("lng", p.Coordinates.Lng),
		zap.Float64("radius_km", p.Radius))

	result, err := s.backend.AnalyzeZone(ctx, p)
	if err != nil {
		s.setStatus(StatusIdle)
		s.logger.Error("zone analysis failed", zap.String("location", p.LocationName), zap.Error(err))
		return p, nil, fmt.Errorf("analyzing zone: %w", err)
	}

	if err := s.repo.SaveCurrent(p); err != nil {
		s.setStatus(StatusIdle)
		return p, nil, err
	}

	s.setStatus(StatusCompleted)
	s.logger.Info("zone analysis completed", zap.String("location", p.LocationName), zap.Int("result_fields", len(result)))
	return p, result, nil
}

// Current returns the stored analysis, or ErrNoAnalysis
func (s *Service) Current() (Payload, error) {
	return s.repo.LoadCurrent()
}

// Clear forgets the stored analysis and resets the status
func (s *Service) Clear() error {
	if err := s.repo.ClearCurrent(); err != nil {
		return fmt.Errorf("clearing analysis: %w", err)
	}
	s.setStatus(StatusIdle)
	return nil
}
