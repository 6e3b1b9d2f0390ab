package models

// RegisterRequest is the JSON body accepted by POST /api/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body accepted by POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserUpdate is the structured patch accepted by PUT /api/user/{userID}.
// Nil fields are left untouched; a non-nil Password regenerates the
// account's salt and digest.
type UserUpdate struct {
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
	Status   *string `json:"status,omitempty"`
	Password *string `json:"password,omitempty"`
}

// IsEmpty reports whether the patch carries no fields to apply.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.Role == nil && u.Status == nil && u.Password == nil
}
