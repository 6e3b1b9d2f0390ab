package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (unknown driver or empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLockoutConfigs indicates invalid lockout policy settings
	// (non-positive threshold, window, or block duration).
	ErrInvalidLockoutConfigs = errors.New("invalid lockout configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (missing address or non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (bootstrap admin password set without a username).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
