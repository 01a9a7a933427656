package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a listen address without a port or a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
