package heatmap

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/gryd/internal/constants"
	"github.com/julianstephens/gryd/internal/models"
)

const cellGlyph = "██"

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	todayStyle   = lipgloss.NewStyle().Underline(true)
	loadingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func cellColorStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

func baseColor(habit models.Habit) string {
	if habit.Color != "" {
		return habit.Color
	}
	return DefaultBaseColor
}

// StatusSuffix renders a habit's runtime reconciliation state for display
// next to its name, or an empty string when there is nothing to report.
func StatusSuffix(habit models.Habit) string {
	switch {
	case habit.Loading:
		return loadingStyle.Render(" syncing…")
	case habit.Error != "":
		return errorStyle.Render(" ✗ " + habit.Error)
	default:
		return ""
	}
}

// WeekRow renders the trailing seven days for one habit as a single line of
// colored cells, with an optional day-label line above.
func WeekRow(habit models.Habit, completions map[string]int, today time.Time, settings models.Settings) string {
	frequency := habit.EffectiveFrequency()
	color := baseColor(habit)

	var labels, cells []string
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		date := day.Format(constants.DateFormat)
		count := completions[date]

		label := day.Format("Mon")[:2]
		if i == 0 {
			label = todayStyle.Render(label)
		} else {
			label = labelStyle.Render(label)
		}
		labels = append(labels, label)
		cells = append(cells, cellColorStyle(ColorVariant(color, count, frequency)).Render(cellGlyph))
	}

	var b strings.Builder
	if settings.ShowDayLabels {
		b.WriteString(strings.Join(labels, " "))
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(cells, " "))
	return b.String()
}

// gridStart returns the first date of a grid covering the given number of
// weeks and ending in the week that contains today.
func gridStart(today time.Time, weeks int, weekStartsOnSunday bool) time.Time {
	offset := int(today.Weekday()) // days since Sunday
	if !weekStartsOnSunday {
		offset = (offset + 6) % 7 // days since Monday
	}
	weekStart := today.AddDate(0, 0, -offset)
	return weekStart.AddDate(0, 0, -7*(weeks-1))
}

// Grid renders a contribution-calendar grid for one habit: weeks as columns,
// weekdays as rows, honouring the month-label, day-label, and week-start
// settings.
func Grid(habit models.Habit, completions map[string]int, weeks int, today time.Time, settings models.Settings) string {
	if weeks < 1 {
		weeks = 1
	}
	frequency := habit.EffectiveFrequency()
	color := baseColor(habit)
	start := gridStart(today, weeks, settings.WeekStartsOnSunday)
	todayStr := today.Format(constants.DateFormat)

	var b strings.Builder

	if settings.ShowMonthLabels {
		var months []string
		prev := time.Month(0)
		for w := 0; w < weeks; w++ {
			day := start.AddDate(0, 0, 7*w)
			if day.Month() != prev {
				months = append(months, day.Format("Jan"))
				prev = day.Month()
			} else {
				months = append(months, "   ")
			}
		}
		if settings.ShowDayLabels {
			b.WriteString("   ")
		}
		b.WriteString(labelStyle.Render(strings.Join(months, "")))
		b.WriteString("\n")
	}

	for row := 0; row < 7; row++ {
		if settings.ShowDayLabels {
			day := start.AddDate(0, 0, row)
			b.WriteString(labelStyle.Render(day.Format("Mon")[:2] + " "))
		}
		for w := 0; w < weeks; w++ {
			day := start.AddDate(0, 0, 7*w+row)
			date := day.Format(constants.DateFormat)
			if date > todayStr {
				b.WriteString("  ")
				b.WriteString(" ")
				continue
			}
			count := completions[date]
			b.WriteString(cellColorStyle(ColorVariant(color, count, frequency)).Render(cellGlyph))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
