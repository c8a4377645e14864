package storage

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/gryd/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "gryd.db"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreAbsentRecords(t *testing.T) {
	store := newTestSQLiteStore(t)

	habits, err := store.GetHabits()
	if err != nil {
		t.Fatalf("GetHabits() returned unexpected error: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("GetHabits() = %d habits, want 0", len(habits))
	}

	completions, err := store.GetCompletions()
	if err != nil {
		t.Fatalf("GetCompletions() returned unexpected error: %v", err)
	}
	if len(completions) != 0 {
		t.Errorf("GetCompletions() = %d entries, want 0", len(completions))
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() returned unexpected error: %v", err)
	}
	if settings.ShowDayLabels != nil {
		t.Error("absent settings should have no explicit values")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gryd.db")
	store := NewSQLiteStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	habits := []models.PersistentHabit{{
		ID:         "h1",
		Name:       "commits",
		CreatedAt:  "2026-08-01T10:00:00Z",
		DataSource: models.DataSourceGitHub,
		Frequency:  7,
	}}
	if err := store.SaveHabits(habits); err != nil {
		t.Fatalf("SaveHabits() returned unexpected error: %v", err)
	}
	if err := store.SaveCompletions(models.CompletionMap{"h1": {"2026-08-30": 5}}); err != nil {
		t.Fatalf("SaveCompletions() returned unexpected error: %v", err)
	}
	month := false
	if err := store.SaveSettings(models.StoredSettings{ShowMonthLabels: &month}); err != nil {
		t.Fatalf("SaveSettings() returned unexpected error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() returned unexpected error: %v", err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() on reopen returned unexpected error: %v", err)
	}
	defer reopened.Close()

	gotHabits, err := reopened.GetHabits()
	if err != nil {
		t.Fatalf("GetHabits() returned unexpected error: %v", err)
	}
	if len(gotHabits) != 1 || gotHabits[0].DataSource != models.DataSourceGitHub {
		t.Errorf("GetHabits() = %+v, want the saved habit", gotHabits)
	}

	gotCompletions, err := reopened.GetCompletions()
	if err != nil {
		t.Fatalf("GetCompletions() returned unexpected error: %v", err)
	}
	if gotCompletions.Count("h1", "2026-08-30") != 5 {
		t.Errorf("completion count = %d, want 5", gotCompletions.Count("h1", "2026-08-30"))
	}

	gotSettings, err := reopened.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() returned unexpected error: %v", err)
	}
	if gotSettings.ShowMonthLabels == nil || *gotSettings.ShowMonthLabels {
		t.Error("explicit false showMonthLabels lost on round trip")
	}
}

func TestSQLiteStoreOverwrite(t *testing.T) {
	store := newTestSQLiteStore(t)

	if err := store.SaveHabits([]models.PersistentHabit{{ID: "h1", Name: "a", CreatedAt: "x"}}); err != nil {
		t.Fatalf("SaveHabits() returned unexpected error: %v", err)
	}
	if err := store.SaveHabits([]models.PersistentHabit{{ID: "h2", Name: "b", CreatedAt: "y"}}); err != nil {
		t.Fatalf("SaveHabits() returned unexpected error: %v", err)
	}

	habits, err := store.GetHabits()
	if err != nil {
		t.Fatalf("GetHabits() returned unexpected error: %v", err)
	}
	if len(habits) != 1 || habits[0].ID != "h2" {
		t.Errorf("GetHabits() = %+v, want only the latest save", habits)
	}
}

func TestSQLiteStoreNotLoaded(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "gryd.db"))
	if _, err := store.GetHabits(); err == nil {
		t.Error("GetHabits() before Load() succeeded, want error")
	}
	if err := store.SaveHabits(nil); err == nil {
		t.Error("SaveHabits() before Load() succeeded, want error")
	}
}
