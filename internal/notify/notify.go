// Package notify defines the reminder-scheduling collaborator consumed by
// the CLI. Delivery is platform-specific and out of gryd's hands; the engine
// only ever sees the opaque identifiers handed out here.
package notify

import (
	"github.com/google/uuid"

	"github.com/julianstephens/gryd/internal/logger"
)

// Scheduler schedules and cancels daily reminders. Schedule returns an
// opaque identifier used to cancel a stale reminder before rescheduling.
type Scheduler interface {
	Schedule(habitName string, hour, minute int) (string, error)
	Cancel(id string) error
}

// Noop satisfies Scheduler on systems without a wired notifier. It still
// hands out identifiers so reminder bookkeeping works end to end.
type Noop struct{}

func (Noop) Schedule(habitName string, hour, minute int) (string, error) {
	id := uuid.New().String()
	logger.Debug("scheduled reminder", "habit", habitName, "hour", hour, "minute", minute, "id", id)
	return id, nil
}

func (Noop) Cancel(id string) error {
	logger.Debug("cancelled reminder", "id", id)
	return nil
}
