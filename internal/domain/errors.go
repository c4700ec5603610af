package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgNotFound = "not found"

	// Input errors
	ErrMsgInvalidArgument = "invalid argument"

	// Identity errors
	ErrMsgDuplicateUser       = "username already registered"
	ErrMsgInvalidCredentials  = "invalid username or password"
	ErrMsgUsernameRequired    = "username is required"
	ErrMsgPasswordRequired    = "password is required"
	ErrMsgPasswordTooShort    = "password is too short"
	ErrMsgDisplayNameRequired = "user name is required"

	// Store errors
	ErrMsgConflict         = "conflicting concurrent write"
	ErrMsgStoreUnavailable = "store unavailable"
	ErrMsgTxClosed         = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrNotFound is returned when a snapshot, record or credential does not exist.
	// Callers must never substitute defaults for it.
	ErrNotFound = errors.New(ErrMsgNotFound)

	ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)

	ErrDuplicateUser      = errors.New(ErrMsgDuplicateUser)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)

	// ErrConflict signals a uniqueness race between two writers of the same key
	ErrConflict = errors.New(ErrMsgConflict)

	// ErrStoreUnavailable wraps any persistence failure that is not a lookup miss or a uniqueness violation
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)

	ErrTxClosed = errors.New(ErrMsgTxClosed)
)
