package database

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureUserSchema_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "ecowatch.db")

	if err := EnsureUserSchema(dbPath); err != nil {
		t.Fatalf("EnsureUserSchema() error = %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestStateStore_ValuesOutliveTheStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ecowatch.db")

	first := NewStateStore(dbPath)
	if err := first.Put("settings", []byte(`{"theme":"dark"}`)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	// Re-running the schema setup must keep existing rows
	if err := EnsureUserSchema(dbPath); err != nil {
		t.Fatalf("EnsureUserSchema() error = %v", err)
	}

	second := NewStateStore(dbPath)
	got, err := second.Get("settings")
	if err != nil {
		t.Fatalf("Get() from a new store error = %v", err)
	}
	if string(got) != `{"theme":"dark"}` {
		t.Errorf("Get() = %s, want the value written by the first store", got)
	}
}

func TestStateStore_UnwritableLocation(t *testing.T) {
	// A file where the database directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStateStore(filepath.Join(blocker, "ecowatch.db"))
	if err := store.Put("settings", []byte(`{}`)); err == nil {
		t.Error("Put() under a regular file should fail")
	}
	if _, err := store.Get("settings"); err == nil {
		t.Error("Get() under a regular file should fail")
	}
}
