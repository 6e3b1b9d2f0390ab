package models

// UserResponse is the envelope returned by the register and login endpoints.
// User is the public-safe account view: secret fields (hash, salt) carry a
// `json:"-"` tag and are never serialised.
type UserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    User   `json:"user"`
}

// UsersResponse is the envelope returned by the admin user listing.
type UsersResponse struct {
	Success bool   `json:"success"`
	Users   []User `json:"users"`
}

// BlockedIPsResponse is the envelope returned by the active-blocks listing.
type BlockedIPsResponse struct {
	Success    bool        `json:"success"`
	BlockedIPs []BlockedIP `json:"blocked_ips"`
}

// StatsResponse is the envelope returned by the statistics endpoint.
type StatsResponse struct {
	Success bool  `json:"success"`
	Stats   Stats `json:"stats"`
}

// MessageResponse is the envelope for endpoints that only confirm an action.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
