package models

import "sort"

// DataSource identifies who owns a habit's completion counts: the user
// (manual) or an external contribution feed.
type DataSource string

const (
	DataSourceManual DataSource = "manual"
	DataSourceGitHub DataSource = "github"
	DataSourceGitLab DataSource = "gitlab"
)

// DefaultFrequency returns the completions-per-day that counts as "fully done"
// for a source when the habit does not set its own frequency.
func DefaultFrequency(ds DataSource) int {
	switch ds {
	case DataSourceGitHub:
		return 7
	case DataSourceGitLab:
		return 30
	default:
		return 1
	}
}

// IsExternal reports whether completion counts for this source are derived
// from a third-party feed rather than entered by the user. The zero value
// (no source recorded) counts as manual.
func (ds DataSource) IsExternal() bool {
	return ds == DataSourceGitHub || ds == DataSourceGitLab
}

// PersistentHabit holds the fields of a habit that are written to storage and
// included in backup documents. The JSON tags are the interop format shared
// with exports, so they must not change shape silently.
type PersistentHabit struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	Icon              string `json:"icon,omitempty"`
	Color             string `json:"color,omitempty"`
	CreatedAt         string `json:"createdAt"` // ISO-8601 timestamp
	DailyReminderTime string `json:"dailyReminderTime,omitempty"` // HH:MM
	// DailyReminderNotificationID is the opaque handle returned by the
	// notification scheduler, kept so a stale reminder can be cancelled
	// before rescheduling.
	DailyReminderNotificationID string     `json:"dailyReminderNotificationIdentifier,omitempty"`
	DataSource                  DataSource `json:"dataSource,omitempty"`
	DataSourceIdentifier        string     `json:"dataSourceIdentifier,omitempty"`
	Frequency                   int        `json:"frequency,omitempty"`
	Order                       *int       `json:"order,omitempty"`
}

// Habit is a PersistentHabit plus runtime-only reconciliation state. Loading
// and Error are never persisted; the type split keeps that invariant in the
// marshaller rather than at call sites.
type Habit struct {
	PersistentHabit

	// Loading is true while an external fetch for this habit is outstanding.
	Loading bool `json:"-"`
	// Error holds the last fetch failure message, cleared on success.
	Error string `json:"-"`
}

// EffectiveFrequency returns the habit's frequency, falling back to the
// per-source default when unset.
func (h Habit) EffectiveFrequency() int {
	if h.Frequency > 0 {
		return h.Frequency
	}
	return DefaultFrequency(h.DataSource)
}

// SanitizeHabits strips runtime-only state for persistence.
func SanitizeHabits(habits []Habit) []PersistentHabit {
	out := make([]PersistentHabit, 0, len(habits))
	for _, h := range habits {
		out = append(out, h.PersistentHabit)
	}
	return out
}

// SortHabitsByOrder returns a copy sorted by explicit order. Habits without
// an order sort after ordered ones, keeping their encounter order.
func SortHabitsByOrder(habits []Habit) []Habit {
	sorted := make([]Habit, len(habits))
	copy(sorted, habits)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Order, sorted[j].Order
		switch {
		case a != nil && b != nil:
			return *a < *b
		case a != nil:
			return true
		default:
			return false
		}
	})
	return sorted
}
