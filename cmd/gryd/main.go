package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/gryd/internal/cli"
	"github.com/julianstephens/gryd/internal/constants"
	"github.com/julianstephens/gryd/internal/engine"
	"github.com/julianstephens/gryd/internal/keyring"
	"github.com/julianstephens/gryd/internal/logger"
	"github.com/julianstephens/gryd/internal/notify"
	"github.com/julianstephens/gryd/internal/source"
	"github.com/julianstephens/gryd/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. A .json extension selects the plain-file store; anything else uses SQLite." type:"string" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize gryd storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive habit board." default:"1"`
	Habit    cli.HabitCmd    `cmd:"" help:"Manage habits."`
	Show     cli.ShowCmd     `cmd:"" help:"Render habit heatmaps."`
	Sync     cli.SyncCmd     `cmd:"" help:"Re-fetch completions for external habits."`
	Settings cli.SettingsCmd `cmd:"" help:"Manage display settings."`
	Export   cli.ExportCmd   `cmd:"" help:"Export all data as a backup document."`
	Import   cli.ImportCmd   `cmd:"" help:"Replace all data from a backup document."`
	Token    cli.TokenCmd    `cmd:"" help:"Manage external source API tokens."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with contribution-style heatmaps"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var store storage.Provider
	if strings.EqualFold(filepath.Ext(configPath), ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}
	defer store.Close()

	gateway := source.NewClient(keyring.Provider{})

	appCtx := &cli.Context{
		Store:    store,
		Engine:   engine.New(store, gateway),
		Notifier: notify.Noop{},
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
