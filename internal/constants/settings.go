package constants

const (
	// Setting keys, as they appear in storage and in backup documents
	SettingShowMonthLabels    = "showMonthLabels"
	SettingShowDayLabels      = "showDayLabels"
	SettingWeekStartsOnSunday = "weekStartsOnSunday"

	// Default setting values
	DefaultShowMonthLabels    = true
	DefaultShowDayLabels      = true
	DefaultWeekStartsOnSunday = false
)

// SettingKeys lists every recognized setting key. Unknown keys are rejected
// at the import boundary.
var SettingKeys = []string{
	SettingShowMonthLabels,
	SettingShowDayLabels,
	SettingWeekStartsOnSunday,
}
