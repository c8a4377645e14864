package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/gryd/internal/backup"
)

type ExportCmd struct {
	Output string `help:"Write the backup to a file instead of stdout." short:"o"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}
	completions, err := ctx.Store.GetCompletions()
	if err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	doc := backup.Export(habits, completions, settings)

	if c.Output == "" {
		return doc.Write(os.Stdout)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Output, err)
	}
	defer f.Close()

	if err := doc.Write(f); err != nil {
		return err
	}
	fmt.Printf("Exported backup to %s\n", c.Output)
	return nil
}

type ImportCmd struct {
	File  string `arg:"" help:"Backup file to import."`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", c.File, err)
	}
	defer f.Close()

	doc, err := backup.Read(f)
	if err != nil {
		return err
	}

	if !c.Force {
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Replace all local data with %d habit(s) from %s?", len(doc.Habits), c.File)).
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

	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := backup.Apply(ctx.Store, doc); err != nil {
		return err
	}

	// Re-initialise so external habits imported without completions sync
	if err := ctx.Engine.InitialiseHabits(); err != nil {
		return err
	}
	if err := ctx.Engine.InitialiseCompletions(); err != nil {
		return err
	}
	ctx.Engine.Wait()

	fmt.Printf("Imported %d habit(s) from %s\n", len(doc.Habits), c.File)
	for _, h := range ctx.Engine.Habits() {
		if h.Error != "" {
			fmt.Printf("  sync failed for %q: %s\n", h.Name, h.Error)
		}
	}
	return nil
}
