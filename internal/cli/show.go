package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/gryd/internal/heatmap"
)

type ShowCmd struct {
	Name  string `arg:"" optional:"" help:"Show only this habit."`
	Weeks int    `help:"Number of weeks to render." default:"16"`
	Week  bool   `help:"Render a single trailing-week row per habit."`
}

func (c *ShowCmd) Run(ctx *Context) error {
	if err := ctx.initEngine(); err != nil {
		return err
	}
	ctx.Engine.Wait()

	habits := ctx.Engine.Habits()
	if c.Name != "" {
		habit, err := ctx.findHabitByName(c.Name)
		if err != nil {
			return err
		}
		habits = habits[:0]
		habits = append(habits, habit)
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	settings := ctx.Engine.Settings()
	today := time.Now()

	for i, h := range habits {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s%s\n", h.Name, heatmap.StatusSuffix(h))
		completions := ctx.Engine.GetHabitCompletions(h.ID)
		if c.Week {
			fmt.Println(heatmap.WeekRow(h, completions, today, settings))
		} else {
			fmt.Println(heatmap.Grid(h, completions, c.Weeks, today, settings))
		}
	}
	return nil
}
