package service

import "errors"

// Sentinel errors surfaced by the service layer. The HTTP layer maps each of
// them to a status code; none of them leaks whether a username exists or why
// exactly a credential check failed.
var (
	// ErrInvalidDataProvided is returned when request fields are missing or
	// violate the length rules.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned both when the username is unknown
	// and when the password is wrong, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrIPBlocked is returned when the source address carries an active
	// block installed on a previous attempt.
	ErrIPBlocked = errors.New("ip blocked")

	// ErrTooManyAttempts is returned on the attempt that crosses the
	// failure threshold and installs a fresh block.
	ErrTooManyAttempts = errors.New("too many failed login attempts")

	// ErrAccountDisabled is returned when the account exists but its status
	// is not active.
	ErrAccountDisabled = errors.New("account disabled")
)
