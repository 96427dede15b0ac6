// Package config loads and validates the API server configuration from the
// environment, failing fast on anything that would leave the server
// insecure or half-configured.
package config

import (
	"fmt"
	"os"
	"time"

	"newsdesk/pkg/config"
)

// App is the fully validated server configuration.
type App struct {
	Addr    string
	Version string

	AdminEmail    string
	AdminPassword string
	AdminName     string

	JWTSecret []byte

	LoginRateLimit  int
	LoginRateWindow time.Duration
	MaxBodyBytes    int64

	ShutdownTimeout time.Duration
}

// Load reads the configuration from the environment and validates it.
// Missing admin credentials or a weak JWT secret abort startup.
func Load() (*App, error) {
	app := &App{
		Addr:            config.GetEnvString("ADDR", ":8080"),
		Version:         config.GetEnvString("APP_VERSION", "dev"),
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		AdminName:       config.GetEnvString("ADMIN_NAME", "Administrator"),
		LoginRateLimit:  config.GetEnvInt("LOGIN_RATE_LIMIT", 5),
		LoginRateWindow: config.GetEnvDuration("LOGIN_RATE_WINDOW", time.Minute),
		MaxBodyBytes:    int64(config.GetEnvInt("MAX_BODY_BYTES", 1<<20)),
		ShutdownTimeout: config.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if app.AdminEmail == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL is required")
	}
	if app.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required")
	}

	policy := DefaultSecurityPolicy()
	if path := os.Getenv("SECURITY_POLICY_FILE"); path != "" {
		loaded, err := LoadSecurityPolicy(path)
		if err != nil {
			return nil, err
		}
		policy = loaded
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if err := policy.ValidateSecret(secret); err != nil {
		return nil, err
	}
	app.JWTSecret = []byte(secret)

	if app.LoginRateLimit <= 0 {
		return nil, fmt.Errorf("LOGIN_RATE_LIMIT must be positive")
	}
	if app.LoginRateWindow <= 0 {
		return nil, fmt.Errorf("LOGIN_RATE_WINDOW must be positive")
	}

	return app, nil
}
