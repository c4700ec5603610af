package reconcile

// Reconciliation limits
const (
	// MaxUpsertAttempts bounds the insert-race retry of UpsertDailyResult
	MaxUpsertAttempts = 2

	lockKeySeparator = "|"
)

// Error Messages
const (
	ErrMsgUserIDRequired        = "userId is required"
	ErrMsgGameDateInvalid       = "gameDate must be YYYY-MM-DD"
	ErrMsgNegativeSpins         = "spinsCount must not be negative"
	ErrMsgNegativeBiggestWin    = "biggestWin must not be negative"
	ErrMsgSelectedLinesRange    = "selectedLines out of range"
	ErrMsgVisitedLocationsArity = "visitedLocations has the wrong length"
	ErrMsgUpsertRetriesExceeded = "daily result upsert kept conflicting"
)

// Log Messages
const (
	LogMsgSnapshotSaved     = "Game state saved"
	LogMsgDailyResultUpsert = "Daily result reconciled"
	LogMsgUpsertConflict    = "Concurrent insert of daily result, retrying as update"
	LogMsgStaleWrite        = "Stale daily counter ignored"
	LogMsgHistoryCleared    = "User history cleared"
)
