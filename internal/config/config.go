// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// StructuredConfig is the top-level configuration shared by the server and
// the terminal client. It is assembled from environment variables,
// command-line flags, an optional JSON file and built-in defaults.
type StructuredConfig struct {
	App App `envPrefix:"APP_"`

	Storage Storage `envPrefix:"STORAGE_"`

	Server Server `envPrefix:"SERVER_"`

	// Preview configures the preview bundle cache.
	Preview Preview `envPrefix:"PREVIEW_"`

	// Adapter configures the client's connection to the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds terminal client behaviour settings.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds session and runtime settings.
type App struct {
	// TokenSignKey is the HMAC key used to sign session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens, checked on every parse.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is both the JWT lifetime and the cookie Max-Age.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// CookieSecure marks the session cookie Secure (HTTPS only).
	// Env: APP_COOKIE_SECURE
	CookieSecure bool `env:"COOKIE_SECURE"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported by /healthz.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds database connection settings.
type DB struct {
	// DSN is the connection string: a postgres URL or a sqlite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver selects the backend: "postgres" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Server holds HTTP listener settings.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins lists browser origins allowed by CORS.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Preview holds preview bundle settings.
type Preview struct {
	// CacheSize is the number of bundles kept in the LRU.
	// Env: PREVIEW_CACHE_SIZE
	CacheSize int `env:"CACHE_SIZE"`
}

// Adapter holds the client's outbound connection settings.
type Adapter struct {
	// HTTPAddress is the server base URL, e.g. "http://localhost:8080".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds terminal client behaviour.
type Client struct {
	// SearchDebounce is the quiet period before search text is applied.
	// Env: CLIENT_SEARCH_DEBOUNCE
	SearchDebounce time.Duration `env:"SEARCH_DEBOUNCE"`

	// PageSize is the list page size requested from the server.
	// Env: CLIENT_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// GetStructuredConfig loads and validates the server configuration.
//
// Sources are merged so that a field set by an earlier source is kept:
// environment, then flags, then the JSON file, then defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	return cfg, nil
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
