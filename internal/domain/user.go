package domain

import (
	"strings"
	"time"
)

// Credential is a registered username with its password digest
type Credential struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Created      time.Time `json:"created"`
}

// UserSummary is one entry of the recently-active users list
type UserSummary struct {
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName"`
	Balance      *int64    `json:"balance"`
	LastActivity time.Time `json:"lastActivity"`
}

// RankingEntry is one row of the balance leaderboard
type RankingEntry struct {
	Rank       int    `json:"rank"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	Balance    int64  `json:"balance"`
	SpinsCount int64  `json:"spinsCount"`
	BiggestWin int64  `json:"biggestWin"`
}

// HistoryStats aggregates the whole daily history table
type HistoryStats struct {
	TotalRecords   int64 `json:"totalRecords"`
	UniqueUsers    int64 `json:"uniqueUsers"`
	TotalSpins     int64 `json:"totalSpins"`
	MaxWin         int64 `json:"maxWin"`
	TotalSnapshots int64 `json:"totalSnapshots"`
}

// PurgeResult reports what an admin user purge removed
type PurgeResult struct {
	UserID            string `json:"userId"`
	HistoryDeleted    int64  `json:"historyDeleted"`
	StateDeleted      bool   `json:"stateDeleted"`
	CredentialDeleted bool   `json:"credentialDeleted"`
}

// ClearResult reports what a full game-data clear removed. Credentials are kept.
type ClearResult struct {
	HistoryDeleted int64 `json:"historyDeleted"`
	StatesDeleted  int64 `json:"statesDeleted"`
}

// RegisteredUserID returns the identifier owned by a registered username
func RegisteredUserID(username string) string {
	return UserIDPrefix + username
}

// UsernameFromUserID reverses RegisteredUserID. ok is false for ids without the prefix.
func UsernameFromUserID(userID string) (string, bool) {
	if !strings.HasPrefix(userID, UserIDPrefix) {
		return "", false
	}
	return strings.TrimPrefix(userID, UserIDPrefix), true
}

// DisplayNameFromUserID extracts a human name from an identifier.
// "user_alice" becomes "alice"; "user_bob_1700000000000" becomes "bob".
func DisplayNameFromUserID(userID string) string {
	name, ok := UsernameFromUserID(userID)
	if !ok || name == "" {
		return userID
	}
	if idx := strings.LastIndex(name, "_"); idx > 0 && isDigits(name[idx+1:]) {
		name = name[:idx]
	}
	return name
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
