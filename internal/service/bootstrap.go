package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeyev/authgate/internal/config"
	"github.com/avdeyev/authgate/internal/crypto"
	"github.com/avdeyev/authgate/internal/logger"
	"github.com/avdeyev/authgate/internal/store"
	"github.com/avdeyev/authgate/models"
)

// EnsureBootstrapAdmin creates the configured administrator account when it
// does not exist yet. The step is skipped entirely when no bootstrap
// password is configured; an already-present account is left untouched, so
// the call is idempotent across restarts.
func EnsureBootstrapAdmin(ctx context.Context, users store.UserRepository, cfg config.App, log *logger.Logger) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	_, err := users.FindUserByUsername(ctx, cfg.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("bootstrap admin lookup failed: %w", err)
	}

	hasher := crypto.NewPasswordHasher()
	salt, err := hasher.GenerateSalt()
	if err != nil {
		return fmt.Errorf("bootstrap admin salt generation failed: %w", err)
	}

	admin := models.User{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: hasher.Hash(cfg.AdminPassword, salt),
		Salt:         salt,
		Role:         models.RoleAdmin,
		Status:       models.StatusActive,
		CreatedAt:    NewSystemClock().Now(),
	}

	created, err := users.CreateUser(ctx, admin)
	if err != nil {
		return fmt.Errorf("bootstrap admin creation failed: %w", err)
	}

	log.Info().Int64("id", created.ID).Str("username", created.Username).Msg("bootstrap admin account created")
	return nil
}
