package config

import (
	"os"
	"strings"
	"testing"
)

func TestValidateEnvMissingCritical(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "")

	err := ValidateEnv()
	if err == nil {
		t.Fatal("expected error when critical variables are missing")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("error should name the missing variables: %v", err)
	}
}

func TestValidateEnvAllSet(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/test")

	if err := ValidateEnv(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_KEY", "value")
	if got := GetEnv("SOME_KEY", "fallback"); got != "value" {
		t.Errorf("expected value, got %q", got)
	}

	os.Unsetenv("MISSING_KEY")
	if got := GetEnv("MISSING_KEY", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestLoadEnvMissingFileIsNotFatal(t *testing.T) {
	if err := LoadEnv(); err != nil {
		t.Errorf("missing .env must not be an error, got %v", err)
	}
}
