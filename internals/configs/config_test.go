package configs

import (
	"os"
	"testing"
)

func TestGetEnv(t *testing.T) {
	const key = "MENTLE_TEST_ENV_KEY"

	os.Unsetenv(key)
	if got := GetEnv(key, "fallback"); got != "fallback" {
		t.Errorf("Expected fallback for unset key, got '%s'", got)
	}
	if got := GetEnv(key); got != "" {
		t.Errorf("Expected empty string when unset with no default, got '%s'", got)
	}

	os.Setenv(key, "configured")
	defer os.Unsetenv(key)

	if got := GetEnv(key, "fallback"); got != "configured" {
		t.Errorf("Expected set value to win over default, got '%s'", got)
	}

	os.Setenv(key, "")
	if got := GetEnv(key, "fallback"); got != "" {
		t.Errorf("Expected explicitly empty value to be returned as-is, got '%s'", got)
	}
}
