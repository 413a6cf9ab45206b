package constants

import "time"

const (
	// Default preference values
	DefaultTheme                = "light"
	DefaultNotificationsEnabled = true

	// Progress defaults
	DefaultDailyGoalMin = 4 * 60
	TrendDays           = 7

	// Persistence
	DefaultSaveDebounce = time.Duration(0)
	FlushTimeout        = 5 * time.Second

	// Display
	ShortIDLength = 8

	// Settings file
	SettingsFileName = "config.yaml"
)
