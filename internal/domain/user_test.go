package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayNameFromUserID(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		want   string
	}{
		{"registered user", "user_alice", "alice"},
		{"guest with timestamp", "user_bob_1700000000000", "bob"},
		{"guest with spaces in name", "user_mary_jane_1700000000000", "mary_jane"},
		{"shared fallback id", "user_1700000000000", "1700000000000"},
		{"underscore without digits", "user_big_win", "big_win"},
		{"no prefix", "player42", "player42"},
		{"bare prefix", "user_", "user_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayNameFromUserID(tt.userID))
		})
	}
}

func TestRegisteredUserIDRoundTrip(t *testing.T) {
	id := RegisteredUserID("alice")
	assert.Equal(t, "user_alice", id)

	name, ok := UsernameFromUserID(id)
	assert.True(t, ok)
	assert.Equal(t, "alice", name)

	_, ok = UsernameFromUserID("guest")
	assert.False(t, ok)
}
