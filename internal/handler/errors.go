package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// Request errors
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgInvalidDays           = "Invalid days parameter"
	ErrMsgInvalidRecordID       = "Invalid record id"
	ErrMsgCredentialsRequired   = "Username and password are required"

	// Reconciliation errors
	ErrMsgGameStateNotFound = "Game state not found"
)

// Success messages for API responses
const (
	MsgStatusOK = "SlotMaster API is running"
)

// Response field values
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)
