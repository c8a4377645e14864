package models

import "github.com/julianstephens/gryd/internal/constants"

// Settings holds the resolved application settings. It is the shape the
// engine and views consume; defaults have already been applied.
type Settings struct {
	ShowMonthLabels    bool
	ShowDayLabels      bool
	WeekStartsOnSunday bool
}

// StoredSettings is the persisted and exported shape. Pointer fields
// distinguish "explicitly set" from "absent": a key missing from storage (or
// from an old persisted shape) picks up its default on resolve, while an
// explicit false survives a round-trip.
type StoredSettings struct {
	ShowMonthLabels    *bool `json:"showMonthLabels,omitempty"`
	ShowDayLabels      *bool `json:"showDayLabels,omitempty"`
	WeekStartsOnSunday *bool `json:"weekStartsOnSunday,omitempty"`
}

// Resolve merges stored values over the defaults.
func (s StoredSettings) Resolve() Settings {
	resolved := Settings{
		ShowMonthLabels:    constants.DefaultShowMonthLabels,
		ShowDayLabels:      constants.DefaultShowDayLabels,
		WeekStartsOnSunday: constants.DefaultWeekStartsOnSunday,
	}
	if s.ShowMonthLabels != nil {
		resolved.ShowMonthLabels = *s.ShowMonthLabels
	}
	if s.ShowDayLabels != nil {
		resolved.ShowDayLabels = *s.ShowDayLabels
	}
	if s.WeekStartsOnSunday != nil {
		resolved.WeekStartsOnSunday = *s.WeekStartsOnSunday
	}
	return resolved
}

// Stored converts resolved settings back to the persisted shape. Every key is
// written explicitly so a later default change cannot reinterpret old data.
func (s Settings) Stored() StoredSettings {
	month, day, sunday := s.ShowMonthLabels, s.ShowDayLabels, s.WeekStartsOnSunday
	return StoredSettings{
		ShowMonthLabels:    &month,
		ShowDayLabels:      &day,
		WeekStartsOnSunday: &sunday,
	}
}

// Get returns the value of a single setting by key. The bool result is false
// for unrecognized keys.
func (s Settings) Get(key string) (value, ok bool) {
	switch key {
	case constants.SettingShowMonthLabels:
		return s.ShowMonthLabels, true
	case constants.SettingShowDayLabels:
		return s.ShowDayLabels, true
	case constants.SettingWeekStartsOnSunday:
		return s.WeekStartsOnSunday, true
	default:
		return false, false
	}
}

// Set assigns a single setting by key, reporting whether the key is
// recognized.
func (s *Settings) Set(key string, value bool) bool {
	switch key {
	case constants.SettingShowMonthLabels:
		s.ShowMonthLabels = value
	case constants.SettingShowDayLabels:
		s.ShowDayLabels = value
	case constants.SettingWeekStartsOnSunday:
		s.WeekStartsOnSunday = value
	default:
		return false
	}
	return true
}
