package constants

const (
	AppName           = "gryd"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/gryd/gryd.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DefaultHabitColor is assigned at creation when a habit has no color, so
	// every persisted habit carries one. The export format requires it.
	DefaultHabitColor = "#06B6D4"

	// Storage record keys. Each key holds one JSON blob.
	StorageHabitsKey      = "gryd-habits"
	StorageCompletionsKey = "gryd-completions"
	StorageSettingsKey    = "gryd-settings"

	// Keyring user names for external source credentials
	KeyringGitHubToken = "github-token"
	KeyringGitLabToken = "gitlab-token"
)
