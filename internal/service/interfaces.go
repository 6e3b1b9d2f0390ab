package service

import (
	"context"
	"time"

	"github.com/avdeyev/authgate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_service.go -package=mock

// AuthService implements the two authentication use cases. The source
// argument of Login identifies the caller for lockout purposes; it is
// derived by the transport layer from the forwarded-for header or the peer
// address.
type AuthService interface {
	// Register creates a new account with role "user" and active status.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies credentials, enforcing the per-source lockout policy
	// before any credential comparison happens.
	Login(ctx context.Context, source string, req models.LoginRequest) (models.User, error)
}

// LockoutService is the per-source lockout authority. It owns the attempt
// ledger and block store; other services only read decisions and report
// outcomes through it.
type LockoutService interface {
	// IsBlocked reports whether an active block exists for source at now.
	IsBlocked(ctx context.Context, source string, now time.Time) (bool, error)

	// TooManyFailures reports whether the failed attempts from source
	// inside the sliding window have reached the configured threshold.
	TooManyFailures(ctx context.Context, source string, now time.Time) (bool, error)

	// InstallBlock installs a fresh block for source lasting the configured
	// duration, replacing any prior block.
	InstallBlock(ctx context.Context, source string, now time.Time) error

	// RecordAttempt appends one ledger row. The write is best-effort:
	// persistence failures are logged and never propagated, so a ledger
	// outage cannot fail an otherwise-successful login.
	RecordAttempt(ctx context.Context, source string, success bool, now time.Time)
}

// AdminService implements the administrative surface: account listing and
// maintenance, block inspection and purge, and aggregate statistics.
type AdminService interface {
	// ListUsers returns all accounts, newest first.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies a partial update to the account. A password change
	// regenerates the salt and digest.
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) error

	// ListBlockedIPs returns all currently active blocks.
	ListBlockedIPs(ctx context.Context) ([]models.BlockedIP, error)

	// ClearBlockedIPs removes every block record.
	ClearBlockedIPs(ctx context.Context) error

	// Stats returns the aggregate user/attempt/block counters.
	Stats(ctx context.Context) (models.Stats, error)
}
