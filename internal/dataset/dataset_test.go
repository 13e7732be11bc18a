package dataset

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/ngmaloney/ecowatch-terminal/internal/mockdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Snapshot(t *testing.T) {
	p := NewProvider(7, nil)
	snap := p.Snapshot()

	assert.False(t, snap.Loading)
	assert.Len(t, snap.ClimateData, 90)
	assert.Len(t, snap.Alerts, 6)
	assert.Len(t, snap.VegetationData, 4)
}

func TestProvider_GeneratesOnce(t *testing.T) {
	p := NewProvider(0, nil)

	var wg sync.WaitGroup
	snaps := make([]Snapshot, 8)
	for i := range snaps {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snaps[i] = p.Snapshot()
		}(i)
	}
	wg.Wait()

	for _, s := range snaps[1:] {
		assert.Equal(t, snaps[0].ClimateData, s.ClimateData)
	}
}

func TestProvider_SnapshotIsACopy(t *testing.T) {
	p := NewProvider(7, nil)

	first := p.Snapshot()
	first.ClimateData[0].Temperature = -99
	first.Alerts[0].Title = "changed"
	first.Alerts[0].Coordinates.Latitude = 0
	first.VegetationData[0].NDVIValue = -1

	second := p.Snapshot()
	assert.NotEqual(t, -99.0, second.ClimateData[0].Temperature)
	assert.NotEqual(t, "changed", second.Alerts[0].Title)
	assert.NotZero(t, second.Alerts[0].Coordinates.Latitude)
	assert.NotEqual(t, -1.0, second.VegetationData[0].NDVIValue)
}

func TestProvider_SameSeedSameSeries(t *testing.T) {
	fixed := time.Date(2025, time.October, 4, 12, 0, 0, 0, time.UTC)
	mockdata.SetClock(clockwork.NewFakeClockAt(fixed))
	defer mockdata.SetClock(nil)

	a := NewProvider(99, nil).Snapshot()
	b := NewProvider(99, nil).Snapshot()
	assert.Equal(t, a.ClimateData, b.ClimateData)
	assert.Equal(t, fixed, NewProvider(99, nil).GeneratedAt())
}

func TestFromContext(t *testing.T) {
	p := NewProvider(1, nil)
	ctx := NewContext(context.Background(), p)

	got, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, p, got)
	assert.Same(t, p, MustFromContext(ctx))
}

func TestFromContext_OutsideScope(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoProvider)

	assert.PanicsWithError(t, ErrNoProvider.Error(), func() {
		MustFromContext(context.Background())
	})
}
