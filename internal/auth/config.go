package auth

import (
	"fmt"
	"time"

	"procook-backend/internal/config"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret" json:"jwt_secret"`
	TokenTTL      time.Duration `yaml:"token_ttl" json:"token_ttl"`
	Issuer        string        `yaml:"issuer" json:"issuer"`
	SessionSecret string        `yaml:"session_secret" json:"session_secret"`
	SessionMaxAge int           `yaml:"session_max_age" json:"session_max_age"`
	SecureCookies bool          `yaml:"secure_cookies" json:"secure_cookies"`
	// RevokedTokenCapacity bounds the in-memory revocation list, zero means the default
	RevokedTokenCapacity int `yaml:"revoked_token_capacity" json:"revoked_token_capacity"`
}

// NewAuthConfig derives the auth settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      time.Duration(cfg.JWTTTLHours) * time.Hour,
		Issuer:        "procook-backend",
		SessionSecret: cfg.SessionSecret,
		SessionMaxAge: cfg.SessionMaxAge,
		SecureCookies: cfg.IsProduction(),

		RevokedTokenCapacity: cfg.RevokedTokenCapacity,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("session secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	if c.SessionMaxAge <= 0 {
		return fmt.Errorf("session max age must be positive")
	}
	if c.RevokedTokenCapacity < 0 {
		return fmt.Errorf("revoked token capacity must not be negative")
	}
	return nil
}
