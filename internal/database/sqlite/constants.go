package sqlite

import "time"

// DriverName identifies this backend in health and status output
const DriverName = "sqlite"

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Connection settings
const (
	// fileDSNParams applies to on-disk databases only
	fileDSNParams = "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on"

	// SlowQueryThreshold is reported through the gorm logger
	SlowQueryThreshold = 200 * time.Millisecond
)

// Error Messages
const (
	ErrMsgFailedToOpen             = "failed to open sqlite database"
	ErrMsgFailedToMigrate          = "failed to migrate sqlite schema"
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToCommit           = "failed to commit transaction"
	ErrMsgFailedToRollback         = "failed to rollback transaction"

	ErrMsgFailedToFindCredential   = "failed to find credential"
	ErrMsgFailedToCheckCredential  = "failed to check credential"
	ErrMsgFailedToInsertCredential = "failed to insert credential"
	ErrMsgFailedToDeleteCredential = "failed to delete credential"

	ErrMsgFailedToSaveGameState   = "failed to save game state"
	ErrMsgFailedToGetGameState    = "failed to get game state"
	ErrMsgFailedToInsertGameState = "failed to insert game state"
	ErrMsgFailedToListGameStates  = "failed to list game states"
	ErrMsgFailedToDeleteGameState = "failed to delete game state"
	ErrMsgFailedToEncodeLocations = "failed to encode visited locations"
	ErrMsgFailedToDecodeLocations = "failed to decode visited locations"

	ErrMsgFailedToGetDailyResult    = "failed to get daily result"
	ErrMsgFailedToListDailyResults  = "failed to list daily results"
	ErrMsgFailedToInsertDailyResult = "failed to insert daily result"
	ErrMsgFailedToUpdateDailyResult = "failed to update daily result"
	ErrMsgFailedToDeleteHistory     = "failed to delete history"
	ErrMsgFailedToGetLatestActivity = "failed to get latest activity"
	ErrMsgFailedToListActiveUsers   = "failed to list recently active users"
	ErrMsgFailedToGetHistoryStats   = "failed to get history stats"
	ErrMsgFailedToDeleteDailyResult = "failed to delete daily result"
)

// Log Messages
const (
	LogMsgOpened = "SQLite store opened"
)
