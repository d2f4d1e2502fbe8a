package config

import (
	"strings"
	"testing"
)

func setAllEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AW_API_APP_NAME", "Wellness Sessions API")
	t.Setenv("AW_API_APP_VERSION", "v1")
	t.Setenv("AW_API_SERVER_PORT", "5000")
	t.Setenv("AW_API_SERVER_LOG_LEVEL", "debug")
	t.Setenv("AW_API_PG_DSN", "host=localhost user=postgres dbname=wellness")
	t.Setenv("AW_API_PG_LOG_LEVEL", "warn")
	t.Setenv("AW_API_REDIS_HOST", "localhost")
	t.Setenv("AW_API_REDIS_PORT", "6379")
	t.Setenv("AW_API_REDIS_PASSWORD", "redispass")
	t.Setenv("AW_API_JWT_SECRET", "supersecretvalue")
}

func TestLoadFromEnv(t *testing.T) {
	setAllEnv(t)

	cfg := &Config{}
	if err := cfg.loadFromEnv(); err != nil {
		t.Fatalf("loadFromEnv: %v", err)
	}
	if cfg.ServerPort != "5000" {
		t.Errorf("ServerPort = %q", cfg.ServerPort)
	}
	if cfg.JWTSecret != "supersecretvalue" {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
}

func TestLoadFromEnvMissingVariable(t *testing.T) {
	setAllEnv(t)
	t.Setenv("AW_API_JWT_SECRET", "")

	cfg := &Config{}
	err := cfg.loadFromEnv()
	if err == nil {
		t.Fatal("expected error for missing AW_API_JWT_SECRET")
	}
	if !strings.Contains(err.Error(), "AW_API_JWT_SECRET") {
		t.Errorf("err = %v, want the variable named", err)
	}
}

func TestStringMasksSecrets(t *testing.T) {
	setAllEnv(t)

	cfg := &Config{}
	if err := cfg.loadFromEnv(); err != nil {
		t.Fatalf("loadFromEnv: %v", err)
	}

	s := cfg.String()
	for _, secret := range []string{"supersecretvalue", "redispass"} {
		if strings.Contains(s, secret) {
			t.Errorf("String() leaks %q", secret)
		}
	}
	if !strings.Contains(s, "Wellness Sessions API") {
		t.Error("String() should include non-sensitive values")
	}
}
