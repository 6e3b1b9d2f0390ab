package models

// Stats aggregates the counters exposed on the admin statistics endpoint.
type Stats struct {
	// TotalUsers is the number of registered accounts.
	TotalUsers int64 `json:"total_users"`

	// AdminUsers is the number of accounts with the admin role.
	AdminUsers int64 `json:"admin_users"`

	// ActiveUsers is the number of accounts with active status.
	ActiveUsers int64 `json:"active_users"`

	// SuccessfulLogins is the all-time count of successful login attempts.
	SuccessfulLogins int64 `json:"successful_logins"`

	// FailedLogins is the all-time count of failed login attempts.
	FailedLogins int64 `json:"failed_logins"`

	// BlockedIPs is the number of currently active blocks.
	BlockedIPs int64 `json:"blocked_ips"`
}
