package analysis

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBackend struct {
	err      error
	received []Payload
}

func (f *fakeBackend) AnalyzeZone(_ context.Context, p Payload) (map[string]any, error) {
	f.received = append(f.received, p)
	if f.err != nil {
		return nil, f.err
	}
	return map[string]any{"status": "ok"}, nil
}

func newTestService(t *testing.T, backend Submitter) (*Service, *Repository) {
	t.Helper()
	repo := NewRepository(filepath.Join(t.TempDir(), "ecowatch.db"))
	clock := clockwork.NewFakeClockAt(time.Date(2025, 10, 4, 14, 30, 0, 0, time.UTC))
	return NewService(repo, backend, clock, zap.NewNop()), repo
}

func TestService_BuildPayloadDefaults(t *testing.T) {
	svc, _ := newTestService(t, &fakeBackend{})

	p := svc.BuildPayload(Zone{Lat: -17.0639, Lng: 15.7342, Radius: 5}, Period{}, "")

	assert.Equal(t, Period{Start: "2025-04-04", End: "2025-10-04"}, p.Period)
	assert.Equal(t, "Zona -17.063900, 15.734200", p.LocationName)
	assert.Equal(t, LatLng{Lat: -17.0639, Lng: 15.7342}, p.Coordinates)
	assert.Equal(t, 5.0, p.Radius)
}

func TestService_StartSavesOnSuccess(t *testing.T) {
	backend := &fakeBackend{}
	svc, repo := newTestService(t, backend)

	p, result, err := svc.Start(context.Background(), Zone{Lat: -18.7573, Lng: 22.0589, Radius: 10},
		Period{Start: "2025-09-01", End: "2025-10-01"}, "Delta")
	require.NoError(t, err)

	assert.Equal(t, "ok", result["status"])
	assert.Equal(t, StatusCompleted, svc.Status())
	require.Len(t, backend.received, 1)
	assert.Equal(t, p, backend.received[0])

	stored, err := repo.LoadCurrent()
	require.NoError(t, err)
	assert.Equal(t, p, stored)
}

func TestService_StartFailureReturnsToIdle(t *testing.T) {
	backend := &fakeBackend{err: errors.New("connection refused")}
	svc, repo := newTestService(t, backend)

	_, _, err := svc.Start(context.Background(), Zone{Lat: -18.7573, Lng: 22.0589, Radius: 10}, Period{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.err)

	assert.Equal(t, StatusIdle, svc.Status())
	_, err = repo.LoadCurrent()
	assert.ErrorIs(t, err, ErrNoAnalysis)
}

func TestService_StartRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		zone   Zone
		period Period
	}{
		{"zero radius", Zone{Lat: 1, Lng: 1}, Period{}},
		{"latitude out of range", Zone{Lat: 91, Lng: 1, Radius: 1}, Period{}},
		{"bad date", Zone{Lat: 1, Lng: 1, Radius: 1}, Period{Start: "01/09/2025", End: "2025-10-01"}},
		{"end before start", Zone{Lat: 1, Lng: 1, Radius: 1}, Period{Start: "2025-10-01", End: "2025-09-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{}
			svc, _ := newTestService(t, backend)

			_, _, err := svc.Start(context.Background(), tt.zone, tt.period, "")
			assert.Error(t, err)
			assert.Empty(t, backend.received, "backend should not be called")
			assert.Equal(t, StatusIdle, svc.Status())
		})
	}
}

func TestService_Clear(t *testing.T) {
	svc, repo := newTestService(t, &fakeBackend{})

	_, _, err := svc.Start(context.Background(), Zone{Lat: -17, Lng: 15, Radius: 3}, Period{}, "")
	require.NoError(t, err)

	require.NoError(t, svc.Clear())
	assert.Equal(t, StatusIdle, svc.Status())
	_, err = repo.LoadCurrent()
	assert.ErrorIs(t, err, ErrNoAnalysis)
}
