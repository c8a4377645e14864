// Package heatmap turns completion counts into the discrete intensity levels
// and colors painted by the calendar views. The quantization here is part of
// the data contract with every view layer, so the step boundaries are covered
// by tests and must not drift.
package heatmap

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/julianstephens/gryd/internal/constants"
)

const (
	// MaxLevel is the strongest intensity tier
	MaxLevel = 5

	// maxCap is the largest frequency the quantization distinguishes;
	// higher caps are treated as this value.
	maxCap = 6

	// DefaultBaseColor is used when a habit has no color set
	DefaultBaseColor = constants.DefaultHabitColor

	// backgroundColor is the app's calendar background; level 0 cells and
	// blends are computed against it.
	backgroundColor = "#0D1117"
	emptyCellColor  = "#161B22"
)

// tierOpacity maps a level to the share of the habit's base color shown.
var tierOpacity = [MaxLevel + 1]float64{0, 0.2, 0.4, 0.6, 0.8, 1.0}

// Level maps a completion count and a frequency cap to an intensity level in
// [0, MaxLevel]. Zero counts are always level 0. A cap of one is binary:
// any completion is full intensity. Larger caps are clamped to six and split
// into at most five equal-width steps; the count's step is then projected
// onto the five tiers.
func Level(count, frequencyCap int) int {
	if count <= 0 {
		return 0
	}
	if frequencyCap <= 1 {
		return MaxLevel
	}

	capped := frequencyCap
	if capped > maxCap {
		capped = maxCap
	}
	steps := capped
	if steps > MaxLevel {
		steps = MaxLevel
	}

	stepSize := float64(capped) / float64(steps)
	raw := int(math.Ceil(float64(count) / stepSize))
	if raw > steps {
		raw = steps
	}
	if raw < 1 {
		raw = 1
	}

	// Project the step index onto the five tiers so a fully met cap always
	// lands on MaxLevel regardless of step count.
	return (raw*MaxLevel + steps - 1) / steps
}

// Opacity returns the color share for a level.
func Opacity(level int) float64 {
	if level < 0 {
		level = 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return tierOpacity[level]
}

// ColorVariant returns the hex color for a cell: the habit's base color
// blended toward the calendar background by the level's opacity tier.
func ColorVariant(baseHex string, count, frequencyCap int) string {
	level := Level(count, frequencyCap)
	if level == 0 {
		return emptyCellColor
	}

	base, err := colorful.Hex(baseHex)
	if err != nil {
		base, _ = colorful.Hex(DefaultBaseColor)
	}
	bg, _ := colorful.Hex(backgroundColor)

	return bg.BlendRgb(base, Opacity(level)).Hex()
}
