package config

import (
	"fmt"
	"os"
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

// ConfigRequirements defines required configuration for each environment
type ConfigRequirements struct {
	RequiredEnvVars []string
	RequiredSecrets []string
}

var secretBackedRequirements = ConfigRequirements{
	RequiredSecrets: []string{
		"db_user",
		"db_password",
		"jwt_secret",
		"redis_password",
		"db_host",
		"db_port",
		"db_name",
		"redis_host",
		"redis_port",
		"server_port",
	},
}

var requirements = map[Environment]ConfigRequirements{
	Development: secretBackedRequirements,
	Test:        secretBackedRequirements,
	Production:  secretBackedRequirements,
	CI: {
		RequiredEnvVars: []string{
			"SERVER_PORT",
			"DB_HOST",
			"DB_PORT",
			"DB_USER",
			"DB_NAME",
			"REDIS_HOST",
			"REDIS_PORT",
		},
	},
}

// ValidateConfig checks the configuration against the current environment's
// requirements. The coach API settings are deliberately not required; the
// coach endpoint degrades to canned text without them.
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	reqs := requirements[env]

	var errs []string

	for _, envVar := range reqs.RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			errs = append(errs, fmt.Sprintf("required environment variable %s is not set", envVar))
		}
	}

	for _, secret := range reqs.RequiredSecrets {
		if readSecret(secret) == "" {
			errs = append(errs, fmt.Sprintf("required secret %s is not set", secret))
		}
	}

	if cfg.DBPassword == "" {
		errs = append(errs, "database password is required")
	}
	if cfg.JWTSecret == "" {
		errs = append(errs, "jwt secret is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
