package models

import "time"

// Role values assignable to a user account.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Status values assignable to a user account.
const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user, assigned by the
	// persistence layer at creation and immutable afterwards.
	ID int64 `json:"id"`

	// Username is the unique login identifier, 3-20 characters,
	// case-sensitive as stored and immutable after creation.
	Username string `json:"username"`

	// Email is the unique contact address supplied at registration.
	Email string `json:"email"`

	// PasswordHash stores the salted one-way digest of the user's password.
	// This value MUST be a derived value (hash output), never plaintext.
	// It is never serialised to JSON.
	PasswordHash string `json:"-"`

	// Salt is the per-account random value mixed into PasswordHash.
	// It is never serialised to JSON.
	Salt string `json:"-"`

	// Role is either RoleUser or RoleAdmin. Defaults to RoleUser.
	Role string `json:"role"`

	// Status is either StatusActive or StatusDisabled. Accounts with any
	// status other than StatusActive cannot log in.
	Status string `json:"status"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// LastLogin is the timestamp of the most recent successful login,
	// nil until the account has logged in at least once.
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsActive reports whether the account is allowed to log in.
func (u User) IsActive() bool {
	return u.Status == StatusActive
}
