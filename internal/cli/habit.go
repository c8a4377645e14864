package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/gryd/internal/constants"
	"github.com/julianstephens/gryd/internal/models"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	Edit    HabitEditCmd    `cmd:"" help:"Edit an existing habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Done    HabitDoneCmd    `cmd:"" help:"Mark a habit done for a day (tap again to advance or reset)."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit and its completions."`
	Reorder HabitReorderCmd `cmd:"" help:"Reorder habits by listing their names in the new order."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Optional description."`
	Icon        string `help:"Optional icon name."`
	Color       string `help:"Base color as a hex string, e.g. #39D353."`
	Source      string `help:"Data source: manual, github, or gitlab." default:"manual"`
	Identifier  string `help:"Username for an external source."`
	Frequency   int    `help:"Completions per day that count as fully done (default per source)."`
	Remind      string `help:"Daily reminder time in HH:MM."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	source, err := parseDataSource(c.Source)
	if err != nil {
		return err
	}
	if source.IsExternal() && c.Identifier == "" {
		return fmt.Errorf("an identifier is required for source %q", source)
	}

	if err := ctx.initEngine(); err != nil {
		return err
	}

	draft := models.Habit{PersistentHabit: models.PersistentHabit{
		Name:                 c.Name,
		Description:          c.Description,
		Icon:                 c.Icon,
		Color:                c.Color,
		DataSource:           source,
		DataSourceIdentifier: c.Identifier,
		Frequency:            c.Frequency,
	}}

	habit, err := ctx.Engine.AddHabit(draft)
	if err != nil {
		return err
	}

	if c.Remind != "" {
		habit, err = ctx.scheduleReminder(habit, c.Remind)
		if err != nil {
			return err
		}
		if err := ctx.Engine.EditHabit(habit); err != nil {
			return err
		}
	}

	if source.IsExternal() {
		// Surface the first sync result right away
		ctx.Engine.Wait()
		for _, h := range ctx.Engine.Habits() {
			if h.ID == habit.ID && h.Error != "" {
				fmt.Printf("Added habit %q, but the first sync failed: %s\n", habit.Name, h.Error)
				return nil
			}
		}
	}

	fmt.Printf("Added habit: %s\n", habit.Name)
	return nil
}

type HabitEditCmd struct {
	Name        string  `arg:"" help:"Current habit name."`
	Rename      string  `help:"New habit name."`
	Description *string `help:"New description."`
	Icon        *string `help:"New icon name."`
	Color       *string `help:"New base color."`
	Source      string  `help:"New data source: manual, github, or gitlab."`
	Identifier  *string `help:"New username for an external source."`
	Frequency   int     `help:"New completions-per-day target."`
	Remind      *string `help:"New reminder time in HH:MM; pass an empty string to clear."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.initEngine(); err != nil {
		return err
	}

	habit, err := ctx.findHabitByName(c.Name)
	if err != nil {
		return err
	}

	if c.Rename != "" {
		habit.Name = c.Rename
	}
	if c.Description != nil {
		habit.Description = *c.Description
	}
	if c.Icon != nil {
		habit.Icon = *c.Icon
	}
	if c.Color != nil {
		habit.Color = *c.Color
	}
	if c.Source != "" {
		source, err := parseDataSource(c.Source)
		if err != nil {
			return err
		}
		habit.DataSource = source
	}
	if c.Identifier != nil {
		habit.DataSourceIdentifier = *c.Identifier
	}
	if c.Frequency > 0 {
		habit.Frequency = c.Frequency
	}
	if habit.DataSource.IsExternal() && habit.DataSourceIdentifier == "" {
		return fmt.Errorf("an identifier is required for source %q", habit.DataSource)
	}
	if c.Remind != nil {
		habit, err = ctx.scheduleReminder(habit, *c.Remind)
		if err != nil {
			return err
		}
	}

	if err := ctx.Engine.EditHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.initEngine(); err != nil {
		return err
	}
	ctx.Engine.Wait()

	habits := ctx.Engine.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := time.Now().Format(constants.DateFormat)
	for _, h := range habits {
		completions := ctx.Engine.GetHabitCompletions(h.ID)
		status := " "
		count := completions[today]
		if count >= h.EffectiveFrequency() {
			status = "x"
		}
		detail := string(h.DataSource)
		if detail == "" {
			detail = string(models.DataSourceManual)
		}
		if h.DataSourceIdentifier != "" {
			detail += ":" + h.DataSourceIdentifier
		}
		line := fmt.Sprintf("[%s] %-20s %d/%d today  (%s)", status, h.Name, count, h.EffectiveFrequency(), detail)
		if h.Error != "" {
			line += "  sync failed: " + h.Error
		}
		fmt.Println(line)
	}
	return nil
}

type HabitDoneCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	if err := ctx.initEngine(); err != nil {
		return err
	}

	habit, err := ctx.findHabitByName(c.Name)
	if err != nil {
		return err
	}
	if habit.DataSource.IsExternal() {
		return fmt.Errorf("habit %q is synced from %s and cannot be marked manually", habit.Name, habit.DataSource)
	}

	day := c.Date
	if day == "" {
		day = time.Now().Format(constants.DateFormat)
	} else if err := validateDate(day); err != nil {
		return err
	}

	if err := ctx.Engine.UpdateHabitCompletion(day, habit.ID); err != nil {
		return err
	}

	count := ctx.Engine.GetHabitCompletions(habit.ID)[day]
	if count == 0 {
		fmt.Printf("Reset habit %q for %s\n", habit.Name, day)
	} else {
		fmt.Printf("Marked habit %q for %s (%d/%d)\n", habit.Name, day, count, habit.EffectiveFrequency())
	}
	return nil
}

type HabitDeleteCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.initEngine(); err != nil {
		return err
	}

	habit, err := ctx.findHabitByName(c.Name)
	if err != nil {
		return err
	}

	if !c.Force {
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete habit %q and all of its completions?", habit.Name)).
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// Cancel the reminder before the habit record disappears
	if habit.DailyReminderNotificationID != "" {
		if err := ctx.Notifier.Cancel(habit.DailyReminderNotificationID); err != nil {
			return fmt.Errorf("failed to cancel reminder: %w", err)
		}
	}

	if err := ctx.Engine.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}

type HabitReorderCmd struct {
	Names []string `arg:"" help:"Habit names in the desired order."`
}

func (c *HabitReorderCmd) Run(ctx *Context) error {
	if err := ctx.initEngine(); err != nil {
		return err
	}

	updated := make([]models.Habit, 0, len(c.Names))
	for position, name := range c.Names {
		habit, err := ctx.findHabitByName(name)
		if err != nil {
			return err
		}
		order := position
		habit.Order = &order
		updated = append(updated, habit)
	}

	if err := ctx.Engine.EditHabits(updated); err != nil {
		return err
	}

	fmt.Println("Reordered habits.")
	return nil
}
