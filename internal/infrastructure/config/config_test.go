package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.Port != 8080 {
		t.Errorf("API.Port = %d, want 8080", cfg.API.Port)
	}
	if cfg.Security.JWT.Issuer != "blueprints-core" {
		t.Errorf("JWT.Issuer = %q", cfg.Security.JWT.Issuer)
	}
	if cfg.Security.JWT.TokenTTLSeconds != 900 {
		t.Errorf("JWT.TokenTTLSeconds = %d, want 900", cfg.Security.JWT.TokenTTLSeconds)
	}
	if len(cfg.Auth.Users) != 2 {
		t.Fatalf("Auth.Users = %d entries, want 2", len(cfg.Auth.Users))
	}
	if cfg.Auth.Users[0].Username != "student" || cfg.Auth.Users[1].Username != "assistant" {
		t.Errorf("unexpected default users: %+v", cfg.Auth.Users)
	}
	if !cfg.Seed.Demo {
		t.Error("Seed.Demo should default to true")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
api:
  host: "127.0.0.1"
  port: 9090
logging:
  level: "debug"
security:
  jwt:
    issuer: "test-issuer"
    token_ttl_seconds: 60
auth:
  users:
    - username: "alice"
      password: "secret"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.Host != "127.0.0.1" || cfg.API.Port != 9090 {
		t.Errorf("API = %+v", cfg.API)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.Security.JWT.Issuer != "test-issuer" {
		t.Errorf("JWT.Issuer = %q", cfg.Security.JWT.Issuer)
	}
	if len(cfg.Auth.Users) != 1 || cfg.Auth.Users[0].Username != "alice" {
		t.Errorf("Auth.Users = %+v", cfg.Auth.Users)
	}

	// Unset fields keep their defaults
	if cfg.API.Timeouts.Read != 30 {
		t.Errorf("Timeouts.Read = %d, want default 30", cfg.API.Timeouts.Read)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "api: [not: valid")
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for invalid YAML")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
api:
  port: 9090
`)

	t.Setenv("BLUEPRINTS_API_PORT", "7070")
	t.Setenv("BLUEPRINTS_JWT_ISSUER", "env-issuer")
	t.Setenv("BLUEPRINTS_JWT_TTL_SECONDS", "120")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.Port != 7070 {
		t.Errorf("API.Port = %d, want env override 7070", cfg.API.Port)
	}
	if cfg.Security.JWT.Issuer != "env-issuer" {
		t.Errorf("JWT.Issuer = %q, want env-issuer", cfg.Security.JWT.Issuer)
	}
	if cfg.Security.JWT.TokenTTLSeconds != 120 {
		t.Errorf("TokenTTLSeconds = %d, want 120", cfg.Security.JWT.TokenTTLSeconds)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.API.Port = 0 }},
		{"empty issuer", func(c *Config) { c.Security.JWT.Issuer = "" }},
		{"negative ttl", func(c *Config) { c.Security.JWT.TokenTTLSeconds = -1 }},
		{"no users", func(c *Config) { c.Auth.Users = nil }},
		{"user without username", func(c *Config) {
			c.Auth.Users = []UserConfig{{Username: "", Password: "x"}}
		}},
		{"unpaired key files", func(c *Config) {
			c.Security.JWT.PrivateKeyFile = "/keys/private.pem"
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestTokenTTL(t *testing.T) {
	cfg := Default()
	if got := cfg.TokenTTL(); got != 900*time.Second {
		t.Errorf("TokenTTL() = %v, want 900s", got)
	}

	cfg.Security.JWT.TokenTTLSeconds = 0
	if got := cfg.TokenTTL(); got != 900*time.Second {
		t.Errorf("TokenTTL() with unset ttl = %v, want 900s default", got)
	}

	cfg.Security.JWT.TokenTTLSeconds = 60
	if got := cfg.TokenTTL(); got != 60*time.Second {
		t.Errorf("TokenTTL() = %v, want 60s", got)
	}
}
