package service

import (
	"context"
	"fmt"

	"github.com/avdeyev/authgate/internal/crypto"
	"github.com/avdeyev/authgate/internal/logger"
	"github.com/avdeyev/authgate/internal/store"
	"github.com/avdeyev/authgate/models"
)

// adminService is the concrete implementation of [AdminService].
type adminService struct {
	users    store.UserRepository
	attempts store.AttemptRepository
	blocks   store.BlockRepository
	hasher   crypto.PasswordHasher
	clock    Clock
	logger   *logger.Logger
}

// NewAdminService constructs an [AdminService] backed by the given
// repositories.
func NewAdminService(storages *store.Storages, hasher crypto.PasswordHasher, clock Clock, logger *logger.Logger) AdminService {
	return &adminService{
		users:    storages.UserRepository,
		attempts: storages.AttemptRepository,
		blocks:   storages.BlockRepository,
		hasher:   hasher,
		clock:    clock,
		logger:   logger,
	}
}

// ListUsers returns all accounts, newest first.
func (s *adminService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}
	return users, nil
}

// UpdateUser applies a partial update to the account identified by userID.
//
// The update is resolved into a storage-level patch of fixed columns: a
// password change generates a fresh salt and digest here, so plaintext never
// reaches the repository. Role and status values are validated against the
// known enumerations.
//
// Returns [store.ErrNoUserWasFound] when no such account exists; an empty
// update is a no-op success, matching a PUT with no recognised fields.
func (s *adminService) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) error {
	log := logger.FromContext(ctx)

	if _, err := s.users.FindUserByID(ctx, userID); err != nil {
		return err
	}

	if update.IsEmpty() {
		return nil
	}

	if err := validateUpdate(update); err != nil {
		log.Error().Int64("id", userID).Err(err).Msg("invalid user update provided")
		return err
	}

	patch := models.UserPatch{
		Email:  update.Email,
		Role:   update.Role,
		Status: update.Status,
	}

	if update.Password != nil && *update.Password != "" {
		salt, err := s.hasher.GenerateSalt()
		if err != nil {
			return fmt.Errorf("salt generation failed: %w", err)
		}
		digest := s.hasher.Hash(*update.Password, salt)
		patch.PasswordHash = &digest
		patch.Salt = &salt
	}

	if patch.IsEmpty() {
		// a present-but-empty password field patches nothing
		return nil
	}

	if err := s.users.UpdateUser(ctx, userID, patch); err != nil {
		log.Err(err).Int64("id", userID).Msg("user update failed")
		return fmt.Errorf("user update failed: %w", err)
	}

	log.Info().Int64("id", userID).Msg("user updated")
	return nil
}

// ListBlockedIPs returns all blocks active at the current time.
func (s *adminService) ListBlockedIPs(ctx context.Context) ([]models.BlockedIP, error) {
	blocks, err := s.blocks.ListActive(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("listing blocks failed: %w", err)
	}
	return blocks, nil
}

// ClearBlockedIPs removes every block record, active or expired.
func (s *adminService) ClearBlockedIPs(ctx context.Context) error {
	if err := s.blocks.ClearAll(ctx); err != nil {
		return fmt.Errorf("clearing blocks failed: %w", err)
	}

	logger.FromContext(ctx).Info().Msg("all blocked ips cleared")
	return nil
}

// Stats aggregates the user, attempt, and block counters.
func (s *adminService) Stats(ctx context.Context) (models.Stats, error) {
	var (
		stats models.Stats
		err   error
	)

	if stats.TotalUsers, err = s.users.CountUsers(ctx); err != nil {
		return models.Stats{}, fmt.Errorf("counting users failed: %w", err)
	}
	if stats.AdminUsers, err = s.users.CountUsersByRole(ctx, models.RoleAdmin); err != nil {
		return models.Stats{}, fmt.Errorf("counting admins failed: %w", err)
	}
	if stats.ActiveUsers, err = s.users.CountUsersByStatus(ctx, models.StatusActive); err != nil {
		return models.Stats{}, fmt.Errorf("counting active users failed: %w", err)
	}
	if stats.SuccessfulLogins, err = s.attempts.CountByOutcome(ctx, true); err != nil {
		return models.Stats{}, fmt.Errorf("counting successful logins failed: %w", err)
	}
	if stats.FailedLogins, err = s.attempts.CountByOutcome(ctx, false); err != nil {
		return models.Stats{}, fmt.Errorf("counting failed logins failed: %w", err)
	}
	if stats.BlockedIPs, err = s.blocks.CountActive(ctx, s.clock.Now()); err != nil {
		return models.Stats{}, fmt.Errorf("counting blocks failed: %w", err)
	}

	return stats, nil
}

func validateUpdate(update models.UserUpdate) error {
	if update.Role != nil && *update.Role != models.RoleUser && *update.Role != models.RoleAdmin {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidDataProvided, *update.Role)
	}
	if update.Status != nil && *update.Status != models.StatusActive && *update.Status != models.StatusDisabled {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidDataProvided, *update.Status)
	}
	return nil
}
