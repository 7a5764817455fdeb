package jwtkit

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds service configuration sourced from environment variables.
type Config struct {
	// SigningKey is the secret for HMAC algorithms or a PEM-encoded private
	// key for RSA and ECDSA algorithms.
	SigningKey string `env:"JWT_SIGNING_KEY"`

	// VerificationKey is a PEM-encoded public key used by Decode with RSA
	// and ECDSA algorithms. Optional; Decode falls back to SigningKey.
	VerificationKey string `env:"JWT_VERIFICATION_KEY"`

	// Algorithm is used when encoding tokens (default HS256).
	Algorithm Algorithm `env:"JWT_ALGORITHM" envDefault:"HS256"`

	// AllowedAlgorithms restricts which declared algorithms Decode accepts,
	// as a comma-separated list. Empty accepts any supported algorithm.
	AllowedAlgorithms []Algorithm `env:"JWT_ALLOWED_ALGORITHMS"`

	// MaxTokenLength bounds the length of tokens accepted by the service
	// (default 8192).
	MaxTokenLength int `env:"JWT_MAX_TOKEN_LENGTH" envDefault:"8192"`
}

// DefaultConfig returns the default service configuration.
func DefaultConfig() Config {
	return Config{
		Algorithm:      AlgorithmHS256,
		MaxTokenLength: defaultMaxTokenLength,
	}
}

var envLoaded sync.Once

// LoadConfig populates Config from environment variables. A .env file in
// the working directory is loaded first when present.
func LoadConfig() (Config, error) {
	envLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	return cfg, nil
}

// MustLoadConfig works like LoadConfig but panics if loading fails.
// Useful for configuration the application cannot start without.
func MustLoadConfig() Config {
	cfg, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}
