package engine

import (
	"context"

	"github.com/julianstephens/gryd/internal/logger"
	"github.com/julianstephens/gryd/internal/models"
)

// dispatchReconcileLocked starts an independent fetch for one habit. The
// caller must hold the engine lock. Each dispatch bumps the habit's sequence
// number; a fetch that resolves after a later dispatch finds a mismatched
// sequence and discards its result instead of writing stale data.
func (e *Engine) dispatchReconcileLocked(habit models.PersistentHabit) {
	e.seq[habit.ID]++
	gen := e.seq[habit.ID]

	if idx := e.findHabitLocked(habit.ID); idx >= 0 {
		e.habits[idx].Loading = true
	}

	logger.Debug("dispatching reconciliation",
		"habit", habit.Name, "source", habit.DataSource, "identifier", habit.DataSourceIdentifier)

	e.wg.Add(1)
	go e.reconcile(habit, gen)
}

// reconcile fetches external completions for one habit and merges the result
// into shared state keyed by habit id. One habit's failure never touches
// another habit's data, and a failure keeps the habit's previous completion
// snapshot in place.
func (e *Engine) reconcile(habit models.PersistentHabit, gen uint64) {
	defer e.wg.Done()

	counts, err := e.gateway.Fetch(context.Background(), habit.DataSource, habit.DataSourceIdentifier)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.seq[habit.ID] != gen {
		logger.Debug("discarding superseded reconciliation", "habit", habit.Name)
		return
	}

	idx := e.findHabitLocked(habit.ID)
	if idx < 0 {
		// Habit was deleted while the fetch was in flight
		return
	}

	h := &e.habits[idx]
	h.Loading = false

	if err != nil {
		h.Error = err.Error()
		logger.Warn("reconciliation failed", "habit", habit.Name, "err", err)
		return
	}

	h.Error = ""
	if h.Frequency <= 0 {
		h.Frequency = models.DefaultFrequency(h.DataSource)
	}
	e.completions[habit.ID] = counts

	logger.Debug("reconciled habit", "habit", habit.Name, "days", len(counts))
}
