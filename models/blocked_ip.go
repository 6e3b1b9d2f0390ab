package models

import "time"

// BlockedIP is a lockout record for a single source address. At most one row
// exists per address; installing a new block for the same address replaces
// the previous one. A block is active while the current time is before
// UnblockAt — expiry is purely a comparison, no sweeper deletes rows.
type BlockedIP struct {
	// ID is the internal unique identifier of the block row.
	ID int64 `json:"-"`

	// IPAddress is the blocked source, unique across active blocks.
	IPAddress string `json:"ip_address"`

	// BlockedAt is when the block was installed.
	BlockedAt time.Time `json:"blocked_at"`

	// UnblockAt is when the block stops applying.
	UnblockAt time.Time `json:"unblock_at"`

	// Reason is a free-text classification of why the block was installed.
	Reason string `json:"reason"`
}

// TableName returns the name of the database table
// associated with the BlockedIP model.
func (b BlockedIP) TableName() string {
	return "blocked_ips"
}

// ActiveAt reports whether the block still applies at the given time.
func (b BlockedIP) ActiveAt(now time.Time) bool {
	return now.Before(b.UnblockAt)
}
