package engine

import (
	"fmt"

	"github.com/julianstephens/gryd/internal/models"
)

// Settings returns a copy of the resolved settings.
func (e *Engine) Settings() models.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// Setting reads a single settings field by key.
func (e *Engine) Setting(key string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	value, ok := e.settings.Get(key)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}
	return value, nil
}

// SetSetting writes a single settings field and persists the whole settings
// object immediately.
func (e *Engine) SetSetting(key string, value bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.settings.Set(key, value) {
		return fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}
	return e.store.SaveSettings(e.settings.Stored())
}
