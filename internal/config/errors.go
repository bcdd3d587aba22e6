package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid data API settings
	// (for example, a missing base URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates invalid web server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidFlashConfigs indicates an unknown flash backend or a redis
	// backend without an address.
	ErrInvalidFlashConfigs = errors.New("invalid flash configuration")
)
