package settings

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ngmaloney/ecowatch-terminal/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := Defaults()

	assert.True(t, s.Notifications.EmailAlerts)
	assert.False(t, s.Notifications.PushNotifications)
	assert.Equal(t, "pt-BR", s.Preferences.Language)
	assert.Equal(t, "csv", s.Data.ExportFormat)
	assert.Equal(t, "2.1.0", s.App.Version)
	assert.Equal(t, "NASA Space Apps 2025 - Grupo Galactus X", s.App.Team)
}

func TestEveryKeyIsAddressable(t *testing.T) {
	s := Defaults()
	for _, key := range ToggleKeys {
		assert.NotNil(t, s.toggle(key), "toggle %s", key)
		assert.NotEqual(t, key, Label(key), "label for %s", key)
	}
	for _, key := range ChoiceKeys {
		require.NotNil(t, s.choice(key), "choice %s", key)
		assert.Contains(t, Options[key], s.Value(key), "default of %s must be an option", key)
	}
}

func TestToggle(t *testing.T) {
	s := Defaults()

	require.NoError(t, s.Toggle("pushNotifications"))
	assert.True(t, s.Enabled("pushNotifications"))
	require.NoError(t, s.Toggle("pushNotifications"))
	assert.False(t, s.Enabled("pushNotifications"))

	require.NoError(t, s.Toggle("compression"))
	assert.False(t, s.Data.Compression)

	assert.Error(t, s.Toggle("language"))
	assert.Error(t, s.Toggle("nope"))
}

func TestCycleAndSet(t *testing.T) {
	s := Defaults()

	require.NoError(t, s.Cycle("timeFormat"))
	assert.Equal(t, "12h", s.Preferences.TimeFormat)
	require.NoError(t, s.Cycle("timeFormat"))
	assert.Equal(t, "24h", s.Preferences.TimeFormat, "cycle should wrap around")

	require.NoError(t, s.Set("exportFormat", "shp"))
	assert.Equal(t, "shp", s.Data.ExportFormat)
	assert.Error(t, s.Set("exportFormat", "pdf"))
	assert.Error(t, s.Set("emailAlerts", "true"))
	assert.Error(t, s.Cycle("emailAlerts"))
}

func TestStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ecowatch.db")
	store := NewStore(dbPath)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), got, "empty store should load defaults")

	want := Defaults()
	require.NoError(t, want.Toggle("weeklyReports"))
	require.NoError(t, want.Set("language", "en-US"))
	require.NoError(t, store.Save(want))

	got, err = store.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	reset, err := store.Reset()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), reset)

	got, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), got)
}

func TestStore_PartialDocumentKeepsDefaults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ecowatch.db")
	require.NoError(t, database.NewStateStore(dbPath).Put(Key, []byte(`{"preferences":{"theme":"dark"},"appInfo":{"version":"0.0.1"}}`)))

	got, err := NewStore(dbPath).Load()
	require.NoError(t, err)

	assert.Equal(t, "dark", got.Preferences.Theme)
	assert.Equal(t, "pt-BR", got.Preferences.Language)
	assert.True(t, got.Notifications.EmailAlerts)
	assert.Equal(t, "2.1.0", got.App.Version, "app info is not user editable")
}
