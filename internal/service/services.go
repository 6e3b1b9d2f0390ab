package service

import (
	"github.com/avdeyev/authgate/internal/config"
	"github.com/avdeyev/authgate/internal/crypto"
	"github.com/avdeyev/authgate/internal/logger"
	"github.com/avdeyev/authgate/internal/store"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	Auth    AuthService
	Lockout LockoutService
	Admin   AdminService
}

// NewServices wires the full service graph on top of the given storages.
// All dependencies are injected explicitly; no package-level state.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher()
	clock := NewSystemClock()

	lockout := NewLockoutService(storages.AttemptRepository, storages.BlockRepository, cfg.Lockout, logger)

	return &Services{
		Auth:    NewAuthService(storages.UserRepository, lockout, hasher, clock, logger),
		Lockout: lockout,
		Admin:   NewAdminService(storages, hasher, clock, logger),
	}
}
