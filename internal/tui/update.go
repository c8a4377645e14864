package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/gryd/internal/engine"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case syncedMsg:
		m.syncing = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	habits := m.engine.Habits()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(habits)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Grid):
		m.showGrid = !m.showGrid
		return m, nil

	case key.Matches(msg, m.keys.Mark):
		if m.cursor >= len(habits) {
			return m, nil
		}
		habit := habits[m.cursor]
		if habit.DataSource.IsExternal() {
			return m, nil
		}
		m.err = m.engine.UpdateHabitCompletion(engine.Today(), habit.ID)
		return m, nil

	case key.Matches(msg, m.keys.Sync):
		if m.syncing {
			return m, nil
		}
		if err := m.engine.InitialiseCompletions(); err != nil {
			m.err = err
			return m, nil
		}
		m.syncing = true
		return m, m.waitForSync()
	}

	return m, nil
}
