package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "42", 42},
		{"negative", "-5", -5},
		{"empty uses default", "", 7},
		{"invalid uses default", "abc", 7},
		{"float uses default", "1.5", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT", 7))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"seconds", "30s", 30 * time.Second},
		{"compound", "1h30m", 90 * time.Minute},
		{"empty uses default", "", time.Minute},
		{"plain number uses default", "30", time.Minute},
		{"invalid uses default", "soon", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION", time.Minute))
		})
	}
}

func TestGetEnvAsBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"FALSE", false},
		{"", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, getEnvAsBool("TEST_BOOL", true))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("TEST_LIST", " a ,b,, c ")
	assert.Equal(t, []string{"a", "b", "c"}, getEnvAsList("TEST_LIST"))

	t.Setenv("TEST_LIST", "")
	assert.Nil(t, getEnvAsList("TEST_LIST"))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_STR", "set")
	assert.Equal(t, "set", getEnv("TEST_STR", "default"))
	assert.Equal(t, "default", getEnv("TEST_STR_UNSET_XYZ", "default"))
}
