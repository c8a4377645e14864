// Package engine owns the canonical in-memory habit, completion, and settings
// state. Every mutation enters through a named operation so the invariants
// (completion authority, id uniqueness, cyclic counting) live in one place.
// Background reconciliations merge into state per habit id under the engine
// lock; nothing ever replaces whole state from a goroutine.
package engine

import (
	"errors"
	"sync"

	"github.com/julianstephens/gryd/internal/models"
	"github.com/julianstephens/gryd/internal/source"
	"github.com/julianstephens/gryd/internal/storage"
)

var (
	// ErrNameRequired is returned when a habit draft has no display name
	ErrNameRequired = errors.New("habit name is required")
	// ErrUnknownSetting is returned for setting keys outside the recognized set
	ErrUnknownSetting = errors.New("unknown setting key")
)

type Engine struct {
	store   storage.Provider
	gateway source.Gateway

	mu           sync.Mutex
	habits       []models.Habit
	completions  models.CompletionMap
	settings     models.Settings
	initialising bool

	// seq fences reconciliations per habit id: only the most recently
	// dispatched fetch for a habit may merge its result.
	seq map[string]uint64
	wg  sync.WaitGroup
}

func New(store storage.Provider, gateway source.Gateway) *Engine {
	return &Engine{
		store:        store,
		gateway:      gateway,
		completions:  models.CompletionMap{},
		settings:     models.StoredSettings{}.Resolve(),
		initialising: true,
		seq:          make(map[string]uint64),
	}
}

// InitialiseHabits loads the habit list and settings from storage. Habits
// with an external source start in the loading state; habits already resolved
// in memory keep their runtime state, so the call is safe to repeat to
// re-sync from storage.
func (e *Engine) InitialiseHabits() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	persisted, err := e.store.GetHabits()
	if err != nil {
		return err
	}

	prev := make(map[string]models.Habit, len(e.habits))
	for _, h := range e.habits {
		prev[h.ID] = h
	}

	habits := make([]models.Habit, 0, len(persisted))
	for _, p := range persisted {
		h := models.Habit{PersistentHabit: p}
		if old, ok := prev[p.ID]; ok {
			h.Loading = old.Loading
			h.Error = old.Error
		} else if p.DataSource.IsExternal() {
			h.Loading = true
		}
		habits = append(habits, h)
	}
	e.habits = habits

	stored, err := e.store.GetSettings()
	if err != nil {
		return err
	}
	e.settings = stored.Resolve()

	e.initialising = false
	return nil
}

// InitialiseCompletions loads the completion map from storage, then kicks off
// one reconciliation per externally sourced habit. It returns once local
// completions are loaded and every fetch has been dispatched; it does not
// wait for any fetch to resolve.
func (e *Engine) InitialiseCompletions() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	completions, err := e.store.GetCompletions()
	if err != nil {
		return err
	}
	e.completions = completions

	for _, h := range e.habits {
		if h.DataSource.IsExternal() && h.DataSourceIdentifier != "" {
			e.dispatchReconcileLocked(h.PersistentHabit)
		}
	}
	return nil
}

// Wait blocks until all dispatched reconciliations have resolved. Display
// paths call it before rendering; mutations never need to.
func (e *Engine) Wait() {
	e.wg.Wait()
}

// Initialising reports whether InitialiseHabits has completed at least once.
func (e *Engine) Initialising() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialising
}

// Habits returns a copy of the habit list in display order.
func (e *Engine) Habits() []models.Habit {
	e.mu.Lock()
	defer e.mu.Unlock()
	return models.SortHabitsByOrder(e.habits)
}

// findHabitLocked returns the index of the habit with the given id, or -1.
func (e *Engine) findHabitLocked(id string) int {
	for i := range e.habits {
		if e.habits[i].ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) persistHabitsLocked() error {
	return e.store.SaveHabits(models.SanitizeHabits(e.habits))
}
