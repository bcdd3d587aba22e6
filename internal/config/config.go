// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// user-admin application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds network address and timeout settings for the web
	// front-end.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the connection settings of the remote data API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Flash selects and configures the flash message backend.
	Flash Flash `envPrefix:"FLASH_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the origins allowed by CORS. Empty disables CORS.
	// Env: SERVER_ALLOWED_ORIGINS (comma-separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter holds the settings of the PostgREST data API client.
type Adapter struct {
	// BaseURL is the root URL of the data API (e.g. "http://localhost:3000").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound API call. Zero means no timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Flash configures where one-time user notifications are kept between a
// redirect and the next page render.
type Flash struct {
	// Backend is either [FlashBackendCookie] or [FlashBackendRedis].
	// Env: FLASH_BACKEND
	Backend string `env:"BACKEND"`

	// RedisAddress is the "host:port" of the Redis server used by the redis
	// backend.
	// Env: FLASH_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// RedisPassword is the optional Redis AUTH password.
	// Env: FLASH_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// TTL bounds how long undelivered messages are kept.
	// Env: FLASH_TTL
	TTL time.Duration `env:"TTL"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Flash backends.
const (
	FlashBackendCookie = "cookie"
	FlashBackendRedis  = "redis"
)

// Defaults applied when no source sets a value.
const (
	DefaultHTTPAddress = "localhost:8000"
	DefaultFlashTTL    = 5 * time.Minute
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
