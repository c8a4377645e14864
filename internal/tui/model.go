// Package tui is the interactive habit board: one line per habit with its
// trailing week of cells, an expandable contribution grid, and keys to mark
// today or re-sync external sources.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/gryd/internal/engine"
)

type Model struct {
	engine *engine.Engine
	keys   KeyMap
	help   help.Model

	cursor   int
	showGrid bool
	syncing  bool
	quitting bool
	width    int
	height   int
	err      error
}

// syncedMsg arrives when all dispatched reconciliations have resolved.
type syncedMsg struct{}

func NewModel(eng *engine.Engine) Model {
	return Model{
		engine:  eng,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		syncing: true,
	}
}

// waitForSync resolves once every in-flight fetch has merged or been
// discarded.
func (m Model) waitForSync() tea.Cmd {
	return func() tea.Msg {
		m.engine.Wait()
		return syncedMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return m.waitForSync()
}
