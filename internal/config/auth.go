package config

import (
	"fmt"
	"time"
)

// AuthConfig holds session token configuration.
type AuthConfig struct {
	// JWTSecret is the HMAC key used to sign session tokens.
	JWTSecret string
	// SessionTTL is how long an issued session token stays valid.
	SessionTTL time.Duration
	// VerifierSecret is the shared secret checked against the first-factor
	// auth token when no external verifier is configured.
	VerifierSecret string
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret:      GetEnv("AUTH_JWT_SECRET", ""),
		SessionTTL:     GetEnvDuration("AUTH_SESSION_TTL", 12*time.Hour),
		VerifierSecret: GetEnv("AUTH_VERIFIER_SECRET", ""),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET must be set")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SessionTTL must be greater than 0")
	}
	return nil
}
