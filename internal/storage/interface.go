package storage

import "github.com/julianstephens/gryd/internal/models"

// Provider is key-indexed persistent storage for the three logical records:
// habit list, completion map, and settings. Providers hold no business logic;
// reads of an absent record return its empty default, and saves are
// whole-record overwrites.
//
// Concurrency note:
//   - A Provider is not safe for concurrent use by multiple goroutines without
//     external synchronization; the engine serializes access behind its lock.
//   - Running multiple gryd processes against the same storage path at the
//     same time is not supported and may lead to data loss.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	GetHabits() ([]models.PersistentHabit, error)
	SaveHabits([]models.PersistentHabit) error

	// Completions
	GetCompletions() (models.CompletionMap, error)
	SaveCompletions(models.CompletionMap) error

	// Settings
	GetSettings() (models.StoredSettings, error)
	SaveSettings(models.StoredSettings) error

	// Utils
	GetConfigPath() string
}
