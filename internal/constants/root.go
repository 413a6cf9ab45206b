package constants

import "time"

const (
	AppName            = "studylit"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/studylit/studylit.db"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// ConnectionEnvVar may hold a PostgreSQL connection string
	ConnectionEnvVar = "STUDYLIT_DB_CONNECTION"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "studylit-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "studylit-notifier.lock"
	NotificationDurationMs = 5000

	// MaxManualHours caps one manually logged entry
	MaxManualHours = 1000

	TrayAppIdentifier      = "com.julianstephens.studylit"
	TrayExecutablePrefix   = "studylit-tray"
)
