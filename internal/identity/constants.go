package identity

// Identity rules
const (
	// MinPasswordLength matches the mobile client's own check
	MinPasswordLength = 3

	// RecentUsersLimit bounds the recently-active users list
	RecentUsersLimit = 10

	// idReplacement substitutes every character outside [a-z0-9] in guest ids
	idReplacement = '_'
)

// Log Messages
const (
	LogMsgSharedIDReused      = "Reusing most recently active user id"
	LogMsgSharedIDCreated     = "No history yet, synthesized a shared user id"
	LogMsgGuestCreated        = "Created guest user id"
	LogMsgUserRegistered      = "User registered with default game state"
	LogMsgRegisterDuplicate   = "Registration rejected, username taken"
	LogMsgLoginSucceeded      = "User logged in"
	LogMsgLoginFailed         = "Login failed"
	LogMsgDefaultStateCreated = "Created default game state on login"
	LogMsgDefaultStateFailed  = "Failed to create default game state on login"
)
