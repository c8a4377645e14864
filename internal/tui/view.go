package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/gryd/internal/constants"
	"github.com/julianstephens/gryd/internal/heatmap"
)

const gridWeeks = 16

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	habits := m.engine.Habits()
	settings := m.engine.Settings()
	today := time.Now()
	todayStr := today.Format(constants.DateFormat)

	var b strings.Builder

	title := constants.AppName
	if m.syncing {
		title += dimStyle.Render("  syncing…")
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(habits) == 0 {
		b.WriteString(dimStyle.Render("No habits yet. Add one with `gryd habit add`."))
		b.WriteString("\n")
	}

	for i, h := range habits {
		completions := m.engine.GetHabitCompletions(h.ID)

		name := h.Name
		if i == m.cursor {
			name = selectedStyle.Render("› " + name)
		} else {
			name = "  " + name
		}

		count := completions[todayStr]
		progress := fmt.Sprintf(" %d/%d", count, h.EffectiveFrequency())
		if count >= h.EffectiveFrequency() {
			progress = doneStyle.Render(progress)
		} else {
			progress = dimStyle.Render(progress)
		}

		b.WriteString(name)
		b.WriteString(progress)
		b.WriteString(heatmap.StatusSuffix(h))
		b.WriteString("\n")

		row := heatmap.WeekRow(h, completions, today, settings)
		b.WriteString(indent(row, "  "))
		b.WriteString("\n")

		if m.showGrid && i == m.cursor {
			b.WriteString("\n")
			b.WriteString(indent(heatmap.Grid(h, completions, gridWeeks, today, settings), "  "))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(dimStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(m.keys))
	return docStyle.Render(b.String())
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
