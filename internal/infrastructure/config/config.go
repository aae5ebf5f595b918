package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for Blueprints Core.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Logging  LoggingConfig  `yaml:"logging"`
	Security SecurityConfig `yaml:"security"`
	Auth     AuthConfig     `yaml:"auth"`
	Seed     SeedConfig     `yaml:"seed"`
}

// APIConfig contains HTTP API server settings.
type APIConfig struct {
	Host     string           `yaml:"host"`
	Port     int              `yaml:"port"`
	Timeouts APITimeoutConfig `yaml:"timeouts"`
	CORS     CORSConfig       `yaml:"cors"`
}

// APITimeoutConfig contains HTTP timeout settings in seconds.
type APITimeoutConfig struct {
	Read  int `yaml:"read"`
	Write int `yaml:"write"`
	Idle  int `yaml:"idle"`
}

// CORSConfig contains Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// SecurityConfig contains security settings.
type SecurityConfig struct {
	JWT JWTConfig `yaml:"jwt"`
}

// JWTConfig contains JWT token settings.
//
// Tokens are signed with RS256. The key pair is loaded from the configured
// PEM files; when both paths are empty an ephemeral pair is generated at
// startup, which means issued tokens die with the process.
type JWTConfig struct {
	Issuer          string `yaml:"issuer"`
	TokenTTLSeconds int    `yaml:"token_ttl_seconds"`
	PrivateKeyFile  string `yaml:"private_key_file"`
	PublicKeyFile   string `yaml:"public_key_file"`
}

// AuthConfig contains the fixed credential set.
type AuthConfig struct {
	Users []UserConfig `yaml:"users"`
}

// UserConfig is a single username/password pair.
//
// Passwords are stored and compared in plain text. This mirrors the system
// this service is compatible with and is a documented weakness, not a
// pattern to copy.
type UserConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// SeedConfig controls demo data seeding.
type SeedConfig struct {
	Demo bool `yaml:"demo"`
}

// defaultTokenTTLSeconds is the access token lifetime when unset.
const defaultTokenTTLSeconds = 900

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: BLUEPRINTS_SECTION_KEY
// For example: BLUEPRINTS_API_PORT, BLUEPRINTS_JWT_ISSUER
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with sensible defaults.
//
// The default credential set and demo seed match the coursework deployment;
// both can be replaced via YAML or environment variables.
func Default() *Config {
	return &Config{
		API: APIConfig{
			Host: "0.0.0.0",
			Port: 8080,
			Timeouts: APITimeoutConfig{
				Read:  30,
				Write: 30,
				Idle:  60,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Security: SecurityConfig{
			JWT: JWTConfig{
				Issuer:          "blueprints-core",
				TokenTTLSeconds: defaultTokenTTLSeconds,
			},
		},
		Auth: AuthConfig{
			Users: []UserConfig{
				{Username: "student", Password: "student123"},
				{Username: "assistant", Password: "assistant123"},
			},
		},
		Seed: SeedConfig{
			Demo: true,
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: BLUEPRINTS_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// API
	if v := os.Getenv("BLUEPRINTS_API_HOST"); v != "" {
		cfg.API.Host = v
	}
	if v := os.Getenv("BLUEPRINTS_API_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.API.Port = port
		}
	}

	// Logging
	if v := os.Getenv("BLUEPRINTS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	// Security - JWT
	if v := os.Getenv("BLUEPRINTS_JWT_ISSUER"); v != "" {
		cfg.Security.JWT.Issuer = v
	}
	if v := os.Getenv("BLUEPRINTS_JWT_TTL_SECONDS"); v != "" {
		if ttl, err := strconv.Atoi(v); err == nil {
			cfg.Security.JWT.TokenTTLSeconds = ttl
		}
	}
	if v := os.Getenv("BLUEPRINTS_JWT_PRIVATE_KEY_FILE"); v != "" {
		cfg.Security.JWT.PrivateKeyFile = v
	}
	if v := os.Getenv("BLUEPRINTS_JWT_PUBLIC_KEY_FILE"); v != "" {
		cfg.Security.JWT.PublicKeyFile = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.API.Port < 1 || c.API.Port > 65535 {
		errs = append(errs, "api.port must be between 1 and 65535")
	}

	if c.Security.JWT.Issuer == "" {
		errs = append(errs, "security.jwt.issuer is required")
	}
	if c.Security.JWT.TokenTTLSeconds < 0 {
		errs = append(errs, "security.jwt.token_ttl_seconds must not be negative")
	}

	// Key files must be configured in pairs — a private key without the
	// matching public key (or vice versa) cannot verify what it signs.
	priv, pub := c.Security.JWT.PrivateKeyFile, c.Security.JWT.PublicKeyFile
	if (priv == "") != (pub == "") {
		errs = append(errs, "security.jwt.private_key_file and public_key_file must be set together")
	}

	if len(c.Auth.Users) == 0 {
		errs = append(errs, "auth.users must contain at least one credential pair")
	}
	for _, u := range c.Auth.Users {
		if u.Username == "" {
			errs = append(errs, "auth.users entries require a username")
			break
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// TokenTTL returns the configured token lifetime, defaulting to 900 seconds
// when unset.
func (c *Config) TokenTTL() time.Duration {
	ttl := c.Security.JWT.TokenTTLSeconds
	if ttl == 0 {
		ttl = defaultTokenTTLSeconds
	}
	return time.Duration(ttl) * time.Second
}

// GetReadTimeout returns the API read timeout as a Duration.
func (c *Config) GetReadTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Read) * time.Second
}

// GetWriteTimeout returns the API write timeout as a Duration.
func (c *Config) GetWriteTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Write) * time.Second
}
