package heatmap

import (
	"testing"
	"time"

	"github.com/julianstephens/gryd/internal/models"
)

func TestLevel(t *testing.T) {
	t.Run("zero count is always level zero", func(t *testing.T) {
		for _, cap := range []int{0, 1, 2, 6, 12, 30} {
			if got := Level(0, cap); got != 0 {
				t.Errorf("Level(0, %d) = %d, want 0", cap, got)
			}
		}
		if got := Level(-1, 3); got != 0 {
			t.Errorf("Level(-1, 3) = %d, want 0", got)
		}
	})

	t.Run("cap of one is binary", func(t *testing.T) {
		for _, count := range []int{1, 2, 50} {
			if got := Level(count, 1); got != MaxLevel {
				t.Errorf("Level(%d, 1) = %d, want %d", count, got, MaxLevel)
			}
		}
	})

	t.Run("cap of six steps through all five tiers", func(t *testing.T) {
		want := []int{1, 2, 3, 4, 5, 5, 5}
		for i, w := range want {
			count := i + 1
			if got := Level(count, 6); got != w {
				t.Errorf("Level(%d, 6) = %d, want %d", count, got, w)
			}
		}
	})

	t.Run("caps above six behave like six", func(t *testing.T) {
		for count := 0; count <= 15; count++ {
			if got, want := Level(count, 12), Level(count, 6); got != want {
				t.Errorf("Level(%d, 12) = %d, want %d as for cap six", count, got, want)
			}
			if got, want := Level(count, 30), Level(count, 6); got != want {
				t.Errorf("Level(%d, 30) = %d, want %d as for cap six", count, got, want)
			}
		}
	})

	t.Run("small caps project onto the full range", func(t *testing.T) {
		tests := []struct {
			count, cap, want int
		}{
			{1, 2, 3},
			{2, 2, 5},
			{1, 3, 2},
			{2, 3, 4},
			{3, 3, 5},
			{4, 3, 5},
			{1, 5, 1},
			{5, 5, 5},
		}
		for _, tt := range tests {
			if got := Level(tt.count, tt.cap); got != tt.want {
				t.Errorf("Level(%d, %d) = %d, want %d", tt.count, tt.cap, got, tt.want)
			}
		}
	})

	t.Run("meeting the cap always reaches max level", func(t *testing.T) {
		for cap := 1; cap <= 40; cap++ {
			if got := Level(cap, cap); got != MaxLevel {
				t.Errorf("Level(%d, %d) = %d, want %d", cap, cap, got, MaxLevel)
			}
		}
	})

	t.Run("levels never decrease as counts grow", func(t *testing.T) {
		for cap := 1; cap <= 12; cap++ {
			prev := 0
			for count := 0; count <= cap+3; count++ {
				got := Level(count, cap)
				if got < prev {
					t.Errorf("Level(%d, %d) = %d dropped below previous %d", count, cap, got, prev)
				}
				prev = got
			}
		}
	})
}

func TestOpacity(t *testing.T) {
	if got := Opacity(0); got != 0 {
		t.Errorf("Opacity(0) = %v, want 0", got)
	}
	if got := Opacity(MaxLevel); got != 1.0 {
		t.Errorf("Opacity(MaxLevel) = %v, want 1.0", got)
	}
	prev := -1.0
	for level := 0; level <= MaxLevel; level++ {
		got := Opacity(level)
		if got <= prev {
			t.Errorf("Opacity(%d) = %v not greater than Opacity(%d) = %v", level, got, level-1, prev)
		}
		prev = got
	}
	// Out-of-range levels clamp rather than panic
	if got := Opacity(-3); got != 0 {
		t.Errorf("Opacity(-3) = %v, want 0", got)
	}
	if got := Opacity(99); got != 1.0 {
		t.Errorf("Opacity(99) = %v, want 1.0", got)
	}
}

func TestColorVariant(t *testing.T) {
	t.Run("zero count renders the empty cell color", func(t *testing.T) {
		if got := ColorVariant("#39D353", 0, 6); got != emptyCellColor {
			t.Errorf("ColorVariant(0) = %s, want %s", got, emptyCellColor)
		}
	})

	t.Run("full intensity is the base color", func(t *testing.T) {
		if got := ColorVariant("#39d353", 6, 6); got != "#39d353" {
			t.Errorf("ColorVariant(full) = %s, want the base color", got)
		}
	})

	t.Run("invalid base color falls back to the default", func(t *testing.T) {
		got := ColorVariant("chartreuse", 6, 6)
		want := ColorVariant(DefaultBaseColor, 6, 6)
		if got != want {
			t.Errorf("ColorVariant(bad base) = %s, want fallback %s", got, want)
		}
	})

	t.Run("distinct levels yield distinct colors", func(t *testing.T) {
		seen := map[string]int{}
		for count := 0; count <= 6; count++ {
			c := ColorVariant("#39D353", count, 6)
			if prior, dup := seen[c]; dup && Level(prior, 6) != Level(count, 6) {
				t.Errorf("counts %d and %d share color %s across different levels", prior, count, c)
			}
			seen[c] = count
		}
	})
}

func TestWeekRow(t *testing.T) {
	habit := models.Habit{PersistentHabit: models.PersistentHabit{Name: "read", Frequency: 2}}
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	completions := map[string]int{"2026-08-30": 2, "2026-08-28": 1}

	t.Run("renders labels when enabled", func(t *testing.T) {
		out := WeekRow(habit, completions, today, models.Settings{ShowDayLabels: true})
		if lines := len(splitLines(out)); lines != 2 {
			t.Errorf("WeekRow with labels = %d lines, want 2", lines)
		}
	})

	t.Run("omits labels when disabled", func(t *testing.T) {
		out := WeekRow(habit, completions, today, models.Settings{})
		if lines := len(splitLines(out)); lines != 1 {
			t.Errorf("WeekRow without labels = %d lines, want 1", lines)
		}
	})
}

func TestGridShape(t *testing.T) {
	habit := models.Habit{PersistentHabit: models.PersistentHabit{Name: "read", Frequency: 1}}
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("seven weekday rows", func(t *testing.T) {
		out := Grid(habit, nil, 4, today, models.Settings{})
		if lines := len(splitLines(out)); lines != 7 {
			t.Errorf("Grid = %d lines, want 7", lines)
		}
	})

	t.Run("month label row when enabled", func(t *testing.T) {
		out := Grid(habit, nil, 4, today, models.Settings{ShowMonthLabels: true})
		if lines := len(splitLines(out)); lines != 8 {
			t.Errorf("Grid with month labels = %d lines, want 8", lines)
		}
	})

	t.Run("zero weeks clamps to one", func(t *testing.T) {
		out := Grid(habit, nil, 0, today, models.Settings{})
		if lines := len(splitLines(out)); lines != 7 {
			t.Errorf("Grid(0 weeks) = %d lines, want 7", lines)
		}
	})
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
