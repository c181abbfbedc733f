package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks if the configuration is complete enough to start the
// server in the current environment.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.ServerPort == "" {
		errs = append(errs, "SERVER_PORT must not be empty")
	}
	if cfg.DBHost == "" {
		errs = append(errs, "DB_HOST must not be empty")
	}
	if cfg.DBPort == "" {
		errs = append(errs, "DB_PORT must not be empty")
	}
	if cfg.DBName == "" {
		errs = append(errs, "DB_NAME must not be empty")
	}

	// The signing secret has no safe default outside development.
	if cfg.JWTSecret == "" {
		errs = append(errs, "JWT_SECRET is required")
	}
	if IsProduction() && strings.HasPrefix(cfg.JWTSecret, "dev-secret") {
		errs = append(errs, "JWT_SECRET must be set explicitly in production")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}

	return nil
}
