package config

import (
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	if got := GetEnvString("TEST_STR", "fallback"); got != "value" {
		t.Errorf("GetEnvString = %q, want value", got)
	}
	if got := GetEnvString("TEST_STR_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnvString = %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := GetEnvInt("TEST_INT", 7); got != 42 {
		t.Errorf("GetEnvInt = %d, want 42", got)
	}
	t.Setenv("TEST_INT", "not-a-number")
	if got := GetEnvInt("TEST_INT", 7); got != 7 {
		t.Errorf("GetEnvInt = %d, want default on parse error", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"false", false},
		{"0", false},
		{"garbage", true}, // falls back to default
	}
	for _, tt := range tests {
		t.Setenv("TEST_BOOL", tt.value)
		if got := GetEnvBool("TEST_BOOL", true); got != tt.want {
			t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "90s")
	if got := GetEnvDuration("TEST_DUR", time.Minute); got != 90*time.Second {
		t.Errorf("GetEnvDuration = %v, want 90s", got)
	}
	t.Setenv("TEST_DUR", "soon")
	if got := GetEnvDuration("TEST_DUR", time.Minute); got != time.Minute {
		t.Errorf("GetEnvDuration = %v, want default on parse error", got)
	}
}
