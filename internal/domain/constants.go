package domain

// Identifier format
const (
	UserIDPrefix = "user_"

	// MaxUserIDLength is the width of the user_id columns
	MaxUserIDLength = 128
)

// Snapshot defaults applied when a registered player has no saved state yet
const (
	DefaultBalance         = 5000
	DefaultSelectedLines   = 1
	DefaultTargetLocations = 3
	DefaultMaxLines        = 5
)

// Daily history
const (
	// GameDateLayout is the canonical calendar-date format of GameDate
	GameDateLayout = "2006-01-02"

	// DefaultHistoryDays is the trailing window returned by recent-history queries
	DefaultHistoryDays = 7
)
