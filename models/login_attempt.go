package models

import "time"

// LoginAttempt is a single row of the append-only login ledger. Rows are
// written once per evaluated login and never mutated; the lockout decision
// counts recent failed rows over a sliding window.
type LoginAttempt struct {
	// ID is the internal unique identifier of the ledger row.
	ID int64 `json:"-"`

	// IPAddress identifies the origin of the attempt. It is the first
	// X-Forwarded-For entry when present, otherwise the peer address.
	IPAddress string `json:"ip_address"`

	// AttemptedAt is the server-clock time of the attempt.
	AttemptedAt time.Time `json:"attempted_at"`

	// Success records the outcome of the credential evaluation.
	Success bool `json:"success"`
}

// TableName returns the name of the database table
// associated with the LoginAttempt model.
func (a LoginAttempt) TableName() string {
	return "login_attempts"
}
