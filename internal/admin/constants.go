package admin

// Defaults
const (
	DefaultRecentRecords = 10
	MaxRecentRecords     = 100
)

// Error Messages
const (
	ErrMsgUserIDRequired = "userId is required"
	ErrMsgInvalidRecord  = "record id must be positive"
	ErrMsgNegativeDays   = "days must not be negative"
)

// Log Messages
const (
	LogMsgRecordDeleted  = "Daily record deleted"
	LogMsgUserPurged     = "User data purged"
	LogMsgAllDataCleared = "All game data cleared"
	LogMsgOldHistory     = "Old history cleared"
)
