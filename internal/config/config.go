package config

import (
	"os"
	"strconv"
	"time"

	"analyse-relay/internal/relay"
)

const (
	DefaultCohereURL = "https://api.cohere.com/v2/chat"
	DefaultModel     = "command-r-plus-08-2024"
	DefaultMaxTokens = 1000
	DefaultAPIKeyEnv = "COHERE_API_KEY"
	DefaultPort      = "8080"
	DefaultLogLevel  = "info"
)

// Config holds everything the relay reads from the environment at startup.
// The API key is read separately, see EnvCredentials.
type Config struct {
	Port            string
	LogLevel        string
	CohereURL       string
	Model           string
	MaxTokens       int
	UpstreamTimeout time.Duration // zero means no client timeout
	APIKeyEnv       string
}

// Load reads the configuration from the environment, falling back to defaults.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", DefaultPort),
		LogLevel:        getEnv("LOG_LEVEL", DefaultLogLevel),
		CohereURL:       getEnv("COHERE_API_URL", DefaultCohereURL),
		Model:           getEnv("COHERE_MODEL", DefaultModel),
		MaxTokens:       getEnvInt("COHERE_MAX_TOKENS", DefaultMaxTokens),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 0),
		APIKeyEnv:       DefaultAPIKeyEnv,
	}
}

// Credentials returns the source the relay reads its API key from.
func (c *Config) Credentials() EnvCredentials {
	return EnvCredentials{Name: c.APIKeyEnv}
}

// EnvCredentials reads the API key from the named environment variable on every call,
// so a rotated key is picked up without a restart.
type EnvCredentials struct {
	Name string
}

// APIKey implements relay.CredentialSource.
func (e EnvCredentials) APIKey() (string, error) {
	key := os.Getenv(e.Name)
	if key == "" {
		return "", &relay.MissingCredentialError{Name: e.Name}
	}
	return key, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
