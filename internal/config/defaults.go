package config

import "time"

// Built-in defaults applied after all explicit sources.
const (
	DefaultFailureThreshold = 5
	DefaultFailureWindow    = 30 * time.Minute
	DefaultBlockDuration    = 24 * time.Hour

	DefaultDBDriver = "sqlite"
	DefaultDBDSN    = "authgate.db"

	DefaultHTTPAddress    = ":8080"
	DefaultRequestTimeout = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Lockout: Lockout{
			FailureThreshold: DefaultFailureThreshold,
			FailureWindow:    DefaultFailureWindow,
			BlockDuration:    DefaultBlockDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: DefaultDBDriver,
				DSN:    DefaultDBDSN,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
