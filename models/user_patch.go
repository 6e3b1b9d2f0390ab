package models

// UserPatch is the storage-level projection of a UserUpdate. The service
// layer resolves a password change into a fresh salt and digest before the
// patch reaches the repository, so the repository only ever sees opaque
// column values. Nil fields are not written.
type UserPatch struct {
	Email        *string
	Role         *string
	Status       *string
	PasswordHash *string
	Salt         *string
}

// IsEmpty reports whether the patch carries no columns to write.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.Role == nil && p.Status == nil &&
		p.PasswordHash == nil && p.Salt == nil
}
