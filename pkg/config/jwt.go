package config

import (
	"time"
)

// JWTConfig holds JWT authentication configuration
type JWTConfig struct {
	Secret            string `env:"JWT_SECRET" env-default:"very-secure-jwt-secret"`
	AccessTokenExpiry string `env:"ACCESS_TOKEN_EXPIRY" env-default:"5m"`
	Issuer            string `env:"JWT_ISSUER" env-default:"rolegate"`
	Audience          string `env:"JWT_AUDIENCE" env-default:"rolegate"`
}

// ParseAccessTokenExpiry parses the access token expiry duration
func (j JWTConfig) ParseAccessTokenExpiry() (time.Duration, error) {
	return time.ParseDuration(j.AccessTokenExpiry)
}

// NewJWTConfigFromEnv creates a JWTConfig from environment variables
func NewJWTConfigFromEnv() JWTConfig {
	return JWTConfig{
		Secret:            GetEnvOrDefault("JWT_SECRET", "very-secure-jwt-secret"),
		AccessTokenExpiry: GetEnvOrDefault("ACCESS_TOKEN_EXPIRY", "5m"),
		Issuer:            GetEnvOrDefault("JWT_ISSUER", "rolegate"),
		Audience:          GetEnvOrDefault("JWT_AUDIENCE", "rolegate"),
	}
}
