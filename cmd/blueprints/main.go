// Blueprints Core - JWT-secured blueprint API
//
// This is the main entry point for the Blueprints Core service: a small
// REST API exposing login (RS256 JWT issuance) and a scope-gated CRUD
// surface over an in-memory blueprint collection.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arsw-lab/blueprints-core/internal/api"
	"github.com/arsw-lab/blueprints-core/internal/auth"
	"github.com/arsw-lab/blueprints-core/internal/blueprint"
	"github.com/arsw-lab/blueprints-core/internal/infrastructure/config"
	"github.com/arsw-lab/blueprints-core/internal/infrastructure/logging"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Blueprints Core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Load or generate the signing key pair. A key loading failure is fatal:
	// a service that cannot sign tokens has no reason to start.
	keys, err := loadKeys(cfg, log)
	if err != nil {
		return fmt.Errorf("loading signing keys: %w", err)
	}

	// Build the fixed credential store
	users := make([]auth.User, 0, len(cfg.Auth.Users))
	for _, u := range cfg.Auth.Users {
		users = append(users, auth.User{Username: u.Username, Password: u.Password})
	}
	credentials := auth.NewCredentials(users)
	log.Info("credential store initialised", "users", credentials.Count())

	// Initialise the blueprint store
	store := blueprint.NewStore()
	if cfg.Seed.Demo {
		blueprint.SeedDemo(store, log.Logger)
	}
	log.Info("blueprint store initialised", "blueprints", store.Count())

	// Start the API server
	server, err := api.New(api.Deps{
		Config:      cfg.API,
		Security:    cfg.Security,
		Logger:      log,
		Store:       store,
		Credentials: credentials,
		Keys:        keys,
		Version:     version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()
	log.Info("API server listening",
		"address", fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port),
	)

	log.Info("initialisation complete, waiting for shutdown signal")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	return nil
}

// loadKeys loads the RSA key pair from the configured PEM files, or
// generates an ephemeral pair when no files are configured.
func loadKeys(cfg *config.Config, log *logging.Logger) (*auth.KeyPair, error) {
	jwtCfg := cfg.Security.JWT

	if jwtCfg.PrivateKeyFile != "" {
		keys, err := auth.LoadKeyPair(jwtCfg.PrivateKeyFile, jwtCfg.PublicKeyFile)
		if err != nil {
			return nil, err
		}
		log.Info("signing keys loaded",
			"private_key", jwtCfg.PrivateKeyFile,
			"public_key", jwtCfg.PublicKeyFile,
		)
		return keys, nil
	}

	keys, err := auth.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	log.Warn("no key files configured, generated ephemeral signing keys",
		"consequence", "issued tokens become invalid when the process exits",
	)
	return keys, nil
}

// getConfigPath returns the configuration file path.
// Uses BLUEPRINTS_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("BLUEPRINTS_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
