// Package backup serializes the three storage records into one versioned
// document and validates untrusted documents before they may replace local
// state. The document shape is an interop format shared with other frontends,
// so field names must not change.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/julianstephens/gryd/internal/constants"
	"github.com/julianstephens/gryd/internal/models"
	"github.com/julianstephens/gryd/internal/storage"
)

// Document is the versioned backup shape written by export and accepted by
// import.
type Document struct {
	Version     string                   `json:"version"`
	Habits      []models.PersistentHabit `json:"habits"`
	Completions models.CompletionMap     `json:"completions"`
	Settings    models.StoredSettings    `json:"settings"`
	ExportedAt  string                   `json:"exportedAt"`
}

// Export snapshots the three records into a document. Completions of
// externally sourced habits are stripped: they are reproducible from the
// source and never authoritative local state.
func Export(habits []models.PersistentHabit, completions models.CompletionMap, settings models.StoredSettings) Document {
	external := make(map[string]bool, len(habits))
	for _, h := range habits {
		if h.DataSource.IsExternal() {
			external[h.ID] = true
		}
	}

	kept := models.CompletionMap{}
	for habitID, dates := range completions {
		if external[habitID] {
			continue
		}
		kept[habitID] = dates
	}

	if habits == nil {
		habits = []models.PersistentHabit{}
	}

	return Document{
		Version:     constants.Version,
		Habits:      habits,
		Completions: kept,
		Settings:    settings,
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
	}
}

// Write emits the document as indented UTF-8 JSON.
func (d Document) Write(w io.Writer) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize backup: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// Read parses a byte stream as a backup document, structurally validating it
// before decoding. A document that fails validation is rejected wholesale.
func Read(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read backup: %w", err)
	}

	if err := Validate(data); err != nil {
		return Document{}, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse backup: %w", err)
	}
	if doc.Completions == nil {
		doc.Completions = models.CompletionMap{}
	}
	return doc, nil
}

// Apply wholesale-replaces the store's three records with the document's
// contents. Callers must re-initialise the engine afterwards; validation has
// already happened in Read, so any failure here is a storage failure.
func Apply(store storage.Provider, doc Document) error {
	if err := store.SaveHabits(doc.Habits); err != nil {
		return err
	}
	if err := store.SaveCompletions(doc.Completions); err != nil {
		return err
	}
	return store.SaveSettings(doc.Settings)
}
