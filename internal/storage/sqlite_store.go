package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/gryd/internal/constants"
	"github.com/julianstephens/gryd/internal/models"
)

// SQLiteStore keeps each logical record as a JSON blob in a key/value table.
// The schema stays deliberately dumb; all interpretation happens above.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.open()
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return s.open()
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = s.db.Exec(`CREATE TABLE IF NOT EXISTS records (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create records table: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// getRecord reads the blob for a key. An absent key reads as (nil, nil);
// a medium failure is an error, never silently treated as empty.
func (s *SQLiteStore) getRecord(key string) ([]byte, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record %q: %w", key, err)
	}
	return []byte(value), nil
}

func (s *SQLiteStore) setRecord(key string, value []byte) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to write record %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetHabits() ([]models.PersistentHabit, error) {
	data, err := s.getRecord(constants.StorageHabitsKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []models.PersistentHabit{}, nil
	}

	var habits []models.PersistentHabit
	if err := json.Unmarshal(data, &habits); err != nil {
		return nil, fmt.Errorf("failed to parse habits record: %w", err)
	}
	return habits, nil
}

func (s *SQLiteStore) SaveHabits(habits []models.PersistentHabit) error {
	if habits == nil {
		habits = []models.PersistentHabit{}
	}
	data, err := json.Marshal(habits)
	if err != nil {
		return fmt.Errorf("failed to serialize habits: %w", err)
	}
	return s.setRecord(constants.StorageHabitsKey, data)
}

func (s *SQLiteStore) GetCompletions() (models.CompletionMap, error) {
	data, err := s.getRecord(constants.StorageCompletionsKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return models.CompletionMap{}, nil
	}

	var completions models.CompletionMap
	if err := json.Unmarshal(data, &completions); err != nil {
		return nil, fmt.Errorf("failed to parse completions record: %w", err)
	}
	return completions, nil
}

func (s *SQLiteStore) SaveCompletions(completions models.CompletionMap) error {
	if completions == nil {
		completions = models.CompletionMap{}
	}
	data, err := json.Marshal(completions)
	if err != nil {
		return fmt.Errorf("failed to serialize completions: %w", err)
	}
	return s.setRecord(constants.StorageCompletionsKey, data)
}

func (s *SQLiteStore) GetSettings() (models.StoredSettings, error) {
	data, err := s.getRecord(constants.StorageSettingsKey)
	if err != nil {
		return models.StoredSettings{}, err
	}
	if data == nil {
		return models.StoredSettings{}, nil
	}

	var settings models.StoredSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return models.StoredSettings{}, fmt.Errorf("failed to parse settings record: %w", err)
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.StoredSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	return s.setRecord(constants.StorageSettingsKey, data)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
