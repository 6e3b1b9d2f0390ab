package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avdeyev/authgate/internal/config"
	"github.com/avdeyev/authgate/internal/logger"
	"github.com/avdeyev/authgate/models"
)

// newSQLiteStorages opens an in-memory SQLite database through the same
// code path production uses (NewStorages → NewConnectSQLite → Migrate), so
// the tests below exercise the real driver's parameter binding and type
// conversion rather than a mock's text matching.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	storages, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: DriverSQLite, DSN: ":memory:"},
	}, logger.Nop())
	if err != nil {
		t.Fatalf("opening sqlite storage: %v", err)
	}
	t.Cleanup(func() {
		if err := storages.Close(); err != nil {
			t.Errorf("closing sqlite storage: %v", err)
		}
	})

	return storages
}

func newSQLiteUser(t *testing.T, s *Storages, username, email string) models.User {
	t.Helper()

	created, err := s.UserRepository.CreateUser(context.Background(), models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "digest",
		Salt:         "salt",
		Role:         models.RoleUser,
		Status:       models.StatusActive,
		CreatedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("creating user %q: %v", username, err)
	}

	return created
}

func TestSQLite_UpdateLastLoginPersists(t *testing.T) {
	storages := newSQLiteStorages(t)
	ctx := context.Background()

	created := newSQLiteUser(t, storages, "alice", "alice@example.com")
	if created.ID == 0 {
		t.Fatal("expected a server-assigned user ID")
	}
	if created.LastLogin != nil {
		t.Fatalf("fresh account must have no last_login, got %v", created.LastLogin)
	}

	loginAt := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	if err := storages.UserRepository.UpdateLastLogin(ctx, created.ID, loginAt); err != nil {
		t.Fatalf("updating last login: %v", err)
	}

	found, err := storages.UserRepository.FindUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("finding user: %v", err)
	}
	if found.LastLogin == nil {
		t.Fatal("last_login not persisted")
	}
	if !found.LastLogin.Equal(loginAt) {
		t.Fatalf("last_login = %v, want %v", found.LastLogin, loginAt)
	}
}

func TestSQLite_CreateUserUniqueViolations(t *testing.T) {
	storages := newSQLiteStorages(t)
	ctx := context.Background()

	newSQLiteUser(t, storages, "alice", "alice@example.com")

	_, err := storages.UserRepository.CreateUser(ctx, models.User{
		Username:     "alice",
		Email:        "other@example.com",
		PasswordHash: "digest",
		Salt:         "salt",
		Role:         models.RoleUser,
		Status:       models.StatusActive,
		CreatedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}

	_, err = storages.UserRepository.CreateUser(ctx, models.User{
		Username:     "bob",
		Email:        "alice@example.com",
		PasswordHash: "digest",
		Salt:         "salt",
		Role:         models.RoleUser,
		Status:       models.StatusActive,
		CreatedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

// TestSQLite_LockoutLifecycle walks the full failure-then-block-then-login
// sequence against the real backend: repeated failed attempts accumulate in
// the ledger, a block is installed and found while active, it expires by
// timestamp comparison, and the eventual successful login updates last_login.
func TestSQLite_LockoutLifecycle(t *testing.T) {
	storages := newSQLiteStorages(t)
	ctx := context.Background()

	const source = "203.0.113.9"
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	user := newSQLiteUser(t, storages, "alice", "alice@example.com")

	for i := 1; i <= 5; i++ {
		err := storages.AttemptRepository.RecordAttempt(ctx, models.LoginAttempt{
			IPAddress:   source,
			AttemptedAt: base.Add(time.Duration(i) * time.Second),
			Success:     false,
		})
		if err != nil {
			t.Fatalf("recording attempt %d: %v", i, err)
		}
	}

	failures, err := storages.AttemptRepository.CountRecentFailures(ctx, source, base)
	if err != nil {
		t.Fatalf("counting failures: %v", err)
	}
	if failures != 5 {
		t.Fatalf("failures = %d, want 5", failures)
	}

	otherFailures, err := storages.AttemptRepository.CountRecentFailures(ctx, "198.51.100.1", base)
	if err != nil {
		t.Fatalf("counting failures for unrelated source: %v", err)
	}
	if otherFailures != 0 {
		t.Fatalf("unrelated source failures = %d, want 0", otherFailures)
	}

	block := models.BlockedIP{
		IPAddress: source,
		BlockedAt: base.Add(6 * time.Second),
		UnblockAt: base.Add(24 * time.Hour),
		Reason:    "Too many failed login attempts",
	}
	if err := storages.BlockRepository.Upsert(ctx, block); err != nil {
		t.Fatalf("installing block: %v", err)
	}

	active, err := storages.BlockRepository.FindActive(ctx, source, base.Add(7*time.Second))
	if err != nil {
		t.Fatalf("finding active block: %v", err)
	}
	if !active.UnblockAt.Equal(block.UnblockAt) {
		t.Fatalf("unblock_at = %v, want %v", active.UnblockAt, block.UnblockAt)
	}

	// past unblock_at the same row no longer counts as a block
	_, err = storages.BlockRepository.FindActive(ctx, source, base.Add(25*time.Hour))
	if !errors.Is(err, ErrNoBlockWasFound) {
		t.Fatalf("expected ErrNoBlockWasFound after expiry, got %v", err)
	}

	loginAt := base.Add(25 * time.Hour)
	err = storages.AttemptRepository.RecordAttempt(ctx, models.LoginAttempt{
		IPAddress:   source,
		AttemptedAt: loginAt,
		Success:     true,
	})
	if err != nil {
		t.Fatalf("recording successful attempt: %v", err)
	}
	if err := storages.UserRepository.UpdateLastLogin(ctx, user.ID, loginAt); err != nil {
		t.Fatalf("updating last login: %v", err)
	}

	succeeded, err := storages.AttemptRepository.CountByOutcome(ctx, true)
	if err != nil {
		t.Fatalf("counting successes: %v", err)
	}
	if succeeded != 1 {
		t.Fatalf("successes = %d, want 1", succeeded)
	}

	found, err := storages.UserRepository.FindUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("finding user: %v", err)
	}
	if found.LastLogin == nil || !found.LastLogin.Equal(loginAt) {
		t.Fatalf("last_login = %v, want %v", found.LastLogin, loginAt)
	}
}
