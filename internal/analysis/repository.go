package analysis

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ngmaloney/ecowatch-terminal/internal/database"
)

// CurrentKey is the state key holding the latest submitted analysis
const CurrentKey = "currentAnalysis"

// ErrNoAnalysis is returned when no analysis has been stored yet
var ErrNoAnalysis = errors.New("no current analysis")

// Repository handles persistence for the currentAnalysis snapshot
type Repository struct {
	store *database.StateStore
}

// NewRepository creates a repository backed by the database at dbPath
func NewRepository(dbPath string) *Repository {
	return &Repository{store: database.NewStateStore(dbPath)}
}

// SaveCurrent replaces the stored analysis with p
func (r *Repository) SaveCurrent(p Payload) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding analysis: %w", err)
	}
	if err := r.store.Put(CurrentKey, data); err != nil {
		return fmt.Errorf("saving analysis: %w", err)
	}
	return nil
}

// LoadCurrent returns the stored analysis, or ErrNoAnalysis
func (r *Repository) LoadCurrent() (Payload, error) {
	data, err := r.store.Get(CurrentKey)
	if errors.Is(err, database.ErrNotFound) {
		return Payload{}, ErrNoAnalysis
	}
	if err != nil {
		return Payload{}, fmt.Errorf("loading analysis: %w", err)
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("decoding analysis: %w", err)
	}
	return p, nil
}

// ClearCurrent removes the stored analysis
func (r *Repository) ClearCurrent() error {
	return r.store.Delete(CurrentKey)
}
