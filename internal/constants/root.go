package constants

const (
	AppName           = "dateformatters"
	DefaultConfigPath = "~/.config/dateformatters/config.yaml"
	Version           = "v0.1.0"

	// DefaultLocale is used when neither the caller nor the environment names one
	DefaultLocale = "en_US"

	// DateInputFormat is the primary date/time layout accepted by --date and the TUI date field
	DateInputFormat = "2006-01-02 15:04:05"

	// DateFormat is the date-only layout (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DateMinuteFormat is the date and time layout without seconds
	DateMinuteFormat = "2006-01-02 15:04"

	// NowKeyword selects the current instant wherever a date is accepted
	NowKeyword = "now"

	// Log rotation settings
	LogDirName    = "logs"
	LogFileName   = "dateformatters.log"
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28
	LogPrefix     = AppName
)
