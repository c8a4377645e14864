package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/gryd/internal/constants"
	"github.com/julianstephens/gryd/internal/engine"
	"github.com/julianstephens/gryd/internal/models"
	"github.com/julianstephens/gryd/internal/notify"
	"github.com/julianstephens/gryd/internal/storage"
)

type Context struct {
	Store    storage.Provider
	Engine   *engine.Engine
	Notifier notify.Scheduler
}

// initEngine loads storage and brings the engine up. External reconciliations
// are dispatched here and resolve in the background; commands that render
// state call ctx.Engine.Wait() first.
func (c *Context) initEngine() error {
	if err := c.Store.Load(); err != nil {
		return err
	}
	if err := c.Engine.InitialiseHabits(); err != nil {
		return err
	}
	return c.Engine.InitialiseCompletions()
}

func (c *Context) findHabitByName(name string) (models.Habit, error) {
	for _, h := range c.Engine.Habits() {
		if h.Name == name {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q not found", name)
}

func parseDataSource(s string) (models.DataSource, error) {
	switch models.DataSource(strings.ToLower(s)) {
	case "", models.DataSourceManual:
		return models.DataSourceManual, nil
	case models.DataSourceGitHub:
		return models.DataSourceGitHub, nil
	case models.DataSourceGitLab:
		return models.DataSourceGitLab, nil
	default:
		return "", fmt.Errorf("invalid data source: %q (expected manual, github, or gitlab)", s)
	}
}

// parseReminderTime splits an HH:MM string into hour and minute.
func parseReminderTime(timeStr string) (hour, minute int, err error) {
	parsed, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time format: %q (expected HH:MM)", timeStr)
	}
	return parsed.Hour(), parsed.Minute(), nil
}

// scheduleReminder cancels a habit's stale reminder, schedules the new one,
// and returns the updated habit. An empty time clears the reminder.
func (c *Context) scheduleReminder(habit models.Habit, timeStr string) (models.Habit, error) {
	if habit.DailyReminderNotificationID != "" {
		if err := c.Notifier.Cancel(habit.DailyReminderNotificationID); err != nil {
			return habit, fmt.Errorf("failed to cancel existing reminder: %w", err)
		}
		habit.DailyReminderNotificationID = ""
	}
	habit.DailyReminderTime = timeStr
	if timeStr == "" {
		return habit, nil
	}

	hour, minute, err := parseReminderTime(timeStr)
	if err != nil {
		return habit, err
	}
	id, err := c.Notifier.Schedule(habit.Name, hour, minute)
	if err != nil {
		return habit, fmt.Errorf("failed to schedule reminder: %w", err)
	}
	habit.DailyReminderNotificationID = id
	return habit, nil
}

func validateDate(date string) error {
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	return nil
}
