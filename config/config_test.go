package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_PORT", "DB_PATH", "TOKEN_TTL_HOURS", "ALLOW_ORIGINS"} {
		t.Setenv(key, "")
	}

	c := FromEnv()
	if c.Port != "8080" || c.DBDriver != "mysql" || c.DBPort != "3306" || c.DBPath != "healthcheck.db" {
		t.Errorf("defaults = %+v", c)
	}
	if c.TokenTTL != 12*time.Hour {
		t.Errorf("token ttl = %v", c.TokenTTL)
	}
	if len(c.AllowOrigins) != 1 || c.AllowOrigins[0] != "*" {
		t.Errorf("allow origins = %v", c.AllowOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("TOKEN_TTL_HOURS", "2")
	t.Setenv("ALLOW_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("JWT_SECRET_KEY", "s3cret")

	c := FromEnv()
	if c.DBDriver != "sqlite" {
		t.Errorf("driver = %q", c.DBDriver)
	}
	if c.TokenTTL != 2*time.Hour {
		t.Errorf("token ttl = %v", c.TokenTTL)
	}
	if len(c.AllowOrigins) != 2 || c.AllowOrigins[1] != "https://b.example" {
		t.Errorf("allow origins = %v", c.AllowOrigins)
	}
	if c.JWTSecret != "s3cret" {
		t.Errorf("secret = %q", c.JWTSecret)
	}

	t.Setenv("TOKEN_TTL_HOURS", "zero")
	if c := FromEnv(); c.TokenTTL != 12*time.Hour {
		t.Errorf("invalid ttl must fall back, got %v", c.TokenTTL)
	}
}
