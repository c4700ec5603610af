package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// DriverName identifies this backend in health and status output
const DriverName = "postgres"

// dateFormat renders DATE columns back into the domain layout
const dateFormat = "YYYY-MM-DD"

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Identity Operations
const (
	ErrMsgFailedToFindCredential   = "failed to find credential"
	ErrMsgFailedToCheckCredential  = "failed to check credential"
	ErrMsgFailedToInsertCredential = "failed to insert credential"
	ErrMsgFailedToDeleteCredential = "failed to delete credential"
)

// Error Messages - Game State Operations
const (
	ErrMsgFailedToSaveGameState   = "failed to save game state"
	ErrMsgFailedToGetGameState    = "failed to get game state"
	ErrMsgFailedToInsertGameState = "failed to insert game state"
	ErrMsgFailedToListGameStates  = "failed to list game states"
	ErrMsgFailedToDeleteGameState = "failed to delete game state"
	ErrMsgFailedToEncodeLocations = "failed to encode visited locations"
	ErrMsgFailedToDecodeLocations = "failed to decode visited locations"
)

// Error Messages - History Operations
const (
	ErrMsgInvalidGameDate           = "invalid game date"
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
