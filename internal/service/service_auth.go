package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/avdeyev/authgate/internal/crypto"
	"github.com/avdeyev/authgate/internal/logger"
	"github.com/avdeyev/authgate/internal/store"
	"github.com/avdeyev/authgate/models"
)

// Validation limits applied at registration.
const (
	usernameMinLen = 3
	usernameMaxLen = 20
	passwordMinLen = 6
)

// authService is the concrete implementation of [AuthService].
// It orchestrates the lockout authority, the credential store, and the
// password hasher to implement the register and login use cases.
type authService struct {
	// users is the data-access layer used to create and look up accounts.
	users store.UserRepository

	// lockout decides per-source block state and records attempt outcomes.
	lockout LockoutService

	// hasher produces and verifies salted password digests.
	hasher crypto.PasswordHasher

	// clock supplies now for every lockout decision and timestamp written.
	clock Clock

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repositories
// and lockout authority.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(users store.UserRepository, lockout LockoutService, hasher crypto.PasswordHasher, clock Clock, logger *logger.Logger) AuthService {
	return &authService{
		users:   users,
		lockout: lockout,
		hasher:  hasher,
		clock:   clock,
		logger:  logger,
	}
}

// Register creates a new account.
//
// Username and email are trimmed before validation; the password is taken
// as-is. Duplicate checks run username first, then email, and the storage
// layer's unique constraints close the race between concurrent
// registrations: when two calls survive the pre-checks, exactly one insert
// succeeds and the other receives the duplicate error.
//
// Returns the persisted account (with server-assigned ID) or:
//   - [ErrInvalidDataProvided] (wrapped with a detail message) if a field is
//     missing or violates the length rules.
//   - [store.ErrUsernameAlreadyExists] / [store.ErrEmailAlreadyExists] on
//     duplicates.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	password := req.Password

	if err := validateRegistration(username, email, password); err != nil {
		log.Error().Str("username", username).Err(err).Msg("invalid registration data provided")
		return models.User{}, err
	}

	if err := a.checkDuplicates(ctx, username, email); err != nil {
		return models.User{}, err
	}

	salt, err := a.hasher.GenerateSalt()
	if err != nil {
		log.Err(err).Msg("salt generation failed")
		return models.User{}, fmt.Errorf("salt generation failed: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: a.hasher.Hash(password, salt),
		Salt:         salt,
		Role:         models.RoleUser,
		Status:       models.StatusActive,
		CreatedAt:    a.clock.Now(),
	}

	created, err := a.users.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login authenticates an existing account, applying the lockout policy for
// source before any credential work.
//
// Decision order:
//  1. An already-blocked source is rejected without a ledger write and
//     without touching the credential store, so blocked and unblocked paths
//     cannot be told apart by hash timing.
//  2. A source at the failure threshold gets a fresh block installed and is
//     rejected.
//  3. Missing fields, unknown username, and wrong password each append a
//     failed ledger row; unknown username and wrong password surface the
//     same [ErrInvalidCredentials].
//  4. A disabled account is rejected without a ledger write: the status is
//     an account property, not a credential guess.
//  5. Success appends a successful row and bumps last_login.
func (a *authService) Login(ctx context.Context, source string, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)
	now := a.clock.Now()

	blocked, err := a.lockout.IsBlocked(ctx, source, now)
	if err != nil {
		return models.User{}, err
	}
	if blocked {
		log.Warn().Str("source", source).Msg("login rejected: source is blocked")
		return models.User{}, ErrIPBlocked
	}

	tooMany, err := a.lockout.TooManyFailures(ctx, source, now)
	if err != nil {
		return models.User{}, err
	}
	if tooMany {
		if err = a.lockout.InstallBlock(ctx, source, now); err != nil {
			return models.User{}, err
		}
		return models.User{}, ErrTooManyAttempts
	}

	username := strings.TrimSpace(req.Username)
	password := req.Password

	if username == "" || password == "" {
		a.lockout.RecordAttempt(ctx, source, false, now)
		return models.User{}, fmt.Errorf("%w: username and password are required", ErrInvalidDataProvided)
	}

	user, err := a.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			a.lockout.RecordAttempt(ctx, source, false, now)
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !user.IsActive() {
		log.Warn().Int64("id", user.ID).Msg("login rejected: account disabled")
		return models.User{}, ErrAccountDisabled
	}

	if !a.hasher.Verify(password, user.Salt, user.PasswordHash) {
		a.lockout.RecordAttempt(ctx, source, false, now)
		log.Warn().Int64("id", user.ID).Str("source", source).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	a.lockout.RecordAttempt(ctx, source, true, now)

	if err = a.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("updating last login failed")
		return models.User{}, fmt.Errorf("updating last login failed: %w", err)
	}
	user.LastLogin = &now

	log.Info().Int64("id", user.ID).Str("username", user.Username).Msg("user logged in")
	return user, nil
}

func validateRegistration(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("%w: all fields are required", ErrInvalidDataProvided)
	}

	if n := utf8.RuneCountInString(username); n < usernameMinLen || n > usernameMaxLen {
		return fmt.Errorf("%w: username must be %d-%d characters", ErrInvalidDataProvided, usernameMinLen, usernameMaxLen)
	}

	if utf8.RuneCountInString(password) < passwordMinLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidDataProvided, passwordMinLen)
	}

	return nil
}

// checkDuplicates rejects usernames and emails that are already taken,
// username first. The check is advisory: the storage constraints are the
// authority under concurrency.
func (a *authService) checkDuplicates(ctx context.Context, username, email string) error {
	if _, err := a.users.FindUserByUsername(ctx, username); err == nil {
		return store.ErrUsernameAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("user search by username failed: %w", err)
	}

	if _, err := a.users.FindUserByEmail(ctx, email); err == nil {
		return store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("user search by email failed: %w", err)
	}

	return nil
}
