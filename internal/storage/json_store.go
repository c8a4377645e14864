package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/gryd/internal/models"
)

// document is the on-disk shape of the JSON store: the three records under
// fixed keys in a single file.
type document struct {
	Version     int                      `json:"version"`
	Habits      []models.PersistentHabit `json:"habits"`
	Completions models.CompletionMap     `json:"completions"`
	Settings    models.StoredSettings    `json:"settings"`
}

type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func emptyDocument() *document {
	return &document{
		Version:     1,
		Habits:      []models.PersistentHabit{},
		Completions: models.CompletionMap{},
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = emptyDocument()
	return s.save()
}

// Load reads the storage file. An absent file is not an error: every record
// simply reads as its empty default until the first save creates the file.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.doc = emptyDocument()
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure collections are initialized
	if s.doc.Habits == nil {
		s.doc.Habits = []models.PersistentHabit{}
	}
	if s.doc.Completions == nil {
		s.doc.Completions = models.CompletionMap{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetHabits() ([]models.PersistentHabit, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	habits := make([]models.PersistentHabit, len(s.doc.Habits))
	copy(habits, s.doc.Habits)
	return habits, nil
}

func (s *JSONStore) SaveHabits(habits []models.PersistentHabit) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Habits = make([]models.PersistentHabit, len(habits))
	copy(s.doc.Habits, habits)
	return s.save()
}

func (s *JSONStore) GetCompletions() (models.CompletionMap, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.doc.Completions.Clone(), nil
}

func (s *JSONStore) SaveCompletions(completions models.CompletionMap) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Completions = completions.Clone()
	return s.save()
}

func (s *JSONStore) GetSettings() (models.StoredSettings, error) {
	if s.doc == nil {
		return models.StoredSettings{}, fmt.Errorf("storage not loaded")
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.StoredSettings) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
