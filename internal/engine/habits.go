package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/gryd/internal/constants"
	"github.com/julianstephens/gryd/internal/models"
)

// AddHabit validates a draft, assigns identity and position, persists the
// list, and starts reconciliation when the habit is externally sourced. The
// stored habit is returned so callers can show the assigned id.
func (e *Engine) AddHabit(draft models.Habit) (models.Habit, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return models.Habit{}, ErrNameRequired
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	draft.ID = uuid.New().String()
	draft.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if draft.Frequency <= 0 {
		draft.Frequency = models.DefaultFrequency(draft.DataSource)
	}
	if draft.Color == "" {
		draft.Color = constants.DefaultHabitColor
	}

	next := 0
	for _, h := range e.habits {
		if h.Order != nil && *h.Order >= next {
			next = *h.Order + 1
		}
	}
	draft.Order = &next

	draft.Loading = false
	draft.Error = ""
	e.habits = append(e.habits, draft)

	if err := e.persistHabitsLocked(); err != nil {
		return models.Habit{}, err
	}

	if draft.DataSource.IsExternal() && draft.DataSourceIdentifier != "" {
		e.dispatchReconcileLocked(draft.PersistentHabit)
	}
	return draft, nil
}

// EditHabit replaces the habit with a matching id. Editing an externally
// sourced habit re-triggers reconciliation, since the identifier or source
// may have changed.
func (e *Engine) EditHabit(habit models.Habit) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.findHabitLocked(habit.ID)
	if idx >= 0 {
		e.habits[idx] = habit
	}

	if err := e.persistHabitsLocked(); err != nil {
		return err
	}

	if idx >= 0 && habit.DataSource.IsExternal() && habit.DataSourceIdentifier != "" {
		e.dispatchReconcileLocked(habit.PersistentHabit)
	}
	return nil
}

// EditHabits applies a bulk positional update: each existing habit is
// replaced wholesale when an entry with the same id appears in the input,
// and kept unchanged otherwise. Used for reordering.
func (e *Engine) EditHabits(habits []models.Habit) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	replacements := make(map[string]models.Habit, len(habits))
	for _, h := range habits {
		replacements[h.ID] = h
	}

	for i := range e.habits {
		if repl, ok := replacements[e.habits[i].ID]; ok {
			e.habits[i] = repl
		}
	}
	return e.persistHabitsLocked()
}

// DeleteHabit removes a habit and its completion entry. The completion map is
// only persisted for manual habits: external completions were never stored,
// so there is nothing durable to rewrite for them.
func (e *Engine) DeleteHabit(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.findHabitLocked(id)
	external := idx >= 0 && e.habits[idx].DataSource.IsExternal()

	delete(e.completions, id)
	if !external {
		if err := e.store.SaveCompletions(e.completions); err != nil {
			return err
		}
	}

	if idx >= 0 {
		e.habits = append(e.habits[:idx], e.habits[idx+1:]...)
	}
	// Any in-flight fetch for this habit will no longer find it and
	// discards its result.
	delete(e.seq, id)

	return e.persistHabitsLocked()
}

// GetHabitCompletions returns the per-date counts for one habit. The result
// is a copy; missing habits yield an empty map.
func (e *Engine) GetHabitCompletions(id string) map[string]int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completions.CloneDates(id)
}

// UpdateHabitCompletion advances the completion counter for (habit, date)
// through the cycle 0 → 1 → … → frequency → removed. For externally sourced
// habits the call is a no-op: authority over their counts lives with the
// gateway, and not even an in-memory bump is allowed.
func (e *Engine) UpdateHabitCompletion(date, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	frequency := models.DefaultFrequency(models.DataSourceManual)
	if idx := e.findHabitLocked(id); idx >= 0 {
		if e.habits[idx].DataSource.IsExternal() {
			return nil
		}
		frequency = e.habits[idx].EffectiveFrequency()
	}

	count := e.completions.Count(id, date)
	if count < frequency {
		if e.completions[id] == nil {
			e.completions[id] = make(map[string]int)
		}
		e.completions[id][date] = count + 1
	} else {
		delete(e.completions[id], date)
		if len(e.completions[id]) == 0 {
			delete(e.completions, id)
		}
	}

	return e.store.SaveCompletions(e.completions)
}

// Today returns the current date in the application's standard format.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}
