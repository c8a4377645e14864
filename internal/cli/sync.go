package cli

import (
	"fmt"

	"github.com/julianstephens/gryd/internal/models"
)

type SyncCmd struct {
	Name string `arg:"" optional:"" help:"Sync only this habit (default: all external habits)."`
}

func (c *SyncCmd) Run(ctx *Context) error {
	if err := ctx.initEngine(); err != nil {
		return err
	}

	var targets []models.Habit
	if c.Name != "" {
		habit, err := ctx.findHabitByName(c.Name)
		if err != nil {
			return err
		}
		if !habit.DataSource.IsExternal() {
			return fmt.Errorf("habit %q has no external source to sync", habit.Name)
		}
		targets = append(targets, habit)
	} else {
		for _, h := range ctx.Engine.Habits() {
			if h.DataSource.IsExternal() {
				targets = append(targets, h)
			}
		}
	}

	if len(targets) == 0 {
		fmt.Println("No external habits to sync.")
		return nil
	}

	// initEngine already dispatched a reconciliation per external habit;
	// editing re-dispatches one for habits named explicitly.
	if c.Name != "" {
		if err := ctx.Engine.EditHabit(targets[0]); err != nil {
			return err
		}
	}
	ctx.Engine.Wait()

	failed := 0
	for _, h := range ctx.Engine.Habits() {
		if !h.DataSource.IsExternal() {
			continue
		}
		if c.Name != "" && h.Name != c.Name {
			continue
		}
		if h.Error != "" {
			failed++
			fmt.Printf("✗ %s: %s\n", h.Name, h.Error)
		} else {
			fmt.Printf("✓ %s\n", h.Name)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d habit(s) failed to sync", failed)
	}
	return nil
}
