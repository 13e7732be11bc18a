package settings

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ngmaloney/ecowatch-terminal/internal/database"
)

// Key is the state key holding the saved settings
const Key = "settings"

// Store handles persistence for user settings
type Store struct {
	state *database.StateStore
}

// NewStore creates a store backed by the database at dbPath
func NewStore(dbPath string) *Store {
	return &Store{state: database.NewStateStore(dbPath)}
}

// Save persists s
func (st *Store) Save(s Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := st.state.Put(Key, data); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// Load returns the saved settings, or Defaults when none were saved.
// Fields missing from older saves keep their default values.
func (st *Store) Load() (Settings, error) {
	s := Defaults()

	data, err := st.state.Get(Key)
	if errors.Is(err, database.ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("loading settings: %w", err)
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return Defaults(), fmt.Errorf("decoding settings: %w", err)
	}
	s.App = Defaults().App
	return s, nil
}

// Reset removes the saved settings and returns the defaults
func (st *Store) Reset() (Settings, error) {
	if err := st.state.Delete(Key); err != nil {
		return Defaults(), fmt.Errorf("resetting settings: %w", err)
	}
	return Defaults(), nil
}
