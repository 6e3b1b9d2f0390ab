package store

import (
	"context"
	"time"

	"github.com/avdeyev/authgate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// UserRepository is the persistence contract for user accounts. Uniqueness
// of username and email is enforced by the storage layer itself: concurrent
// CreateUser calls for the same username cannot both succeed, the loser
// receives ErrUsernameAlreadyExists (or ErrEmailAlreadyExists).
type UserRepository interface {
	// CreateUser inserts the account and returns it with server-assigned
	// fields (ID, CreatedAt echoed back from the database).
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the account with the given username or
	// ErrNoUserWasFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByEmail returns the account with the given email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given ID or
	// ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateLastLogin sets last_login to now. Idempotent with respect to
	// observed state.
	UpdateLastLogin(ctx context.Context, userID int64, now time.Time) error

	// UpdateUser applies a structured partial update. Returns
	// ErrNoUserWasFound if no row matches userID.
	UpdateUser(ctx context.Context, userID int64, patch models.UserPatch) error

	// ListUsers returns all accounts, newest first.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CountUsers returns the total number of accounts.
	CountUsers(ctx context.Context) (int64, error)

	// CountUsersByRole returns the number of accounts with the given role.
	CountUsersByRole(ctx context.Context, role string) (int64, error)

	// CountUsersByStatus returns the number of accounts with the given status.
	CountUsersByStatus(ctx context.Context, status string) (int64, error)
}

// AttemptRepository is the persistence contract for the append-only login
// ledger.
type AttemptRepository interface {
	// RecordAttempt appends one ledger row.
	RecordAttempt(ctx context.Context, attempt models.LoginAttempt) error

	// CountRecentFailures returns the number of failed attempts from
	// ipAddress strictly after since.
	CountRecentFailures(ctx context.Context, ipAddress string, since time.Time) (int, error)

	// CountByOutcome returns the all-time number of attempts with the given
	// outcome.
	CountByOutcome(ctx context.Context, success bool) (int64, error)
}

// BlockRepository is the persistence contract for per-source lockout records.
// At most one row exists per source; Upsert replaces any prior block.
type BlockRepository interface {
	// Upsert installs the block, replacing an existing row for the same
	// source address.
	Upsert(ctx context.Context, block models.BlockedIP) error

	// FindActive returns the block for ipAddress whose unblock time is
	// still in the future, or ErrNoBlockWasFound.
	FindActive(ctx context.Context, ipAddress string, now time.Time) (models.BlockedIP, error)

	// ListActive returns all blocks still applying at now, newest first.
	ListActive(ctx context.Context, now time.Time) ([]models.BlockedIP, error)

	// ClearAll removes every block record, active or expired.
	ClearAll(ctx context.Context) error

	// CountActive returns the number of blocks still applying at now.
	CountActive(ctx context.Context, now time.Time) (int64, error)
}
