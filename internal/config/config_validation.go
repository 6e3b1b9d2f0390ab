// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Avdeyev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.Driver != "postgres" && cfg.Storage.DB.Driver != "sqlite" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Lockout.FailureThreshold < 1 || cfg.Lockout.FailureWindow <= 0 || cfg.Lockout.BlockDuration <= 0 {
		return ErrInvalidLockoutConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	// an admin bootstrap password without a username would create an
	// account that cannot be addressed
	if cfg.App.AdminPassword != "" && cfg.App.AdminUsername == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
