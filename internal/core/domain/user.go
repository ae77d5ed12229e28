package domain

// DefaultRole is assumed when a stored user record carries no role field.
// Roles are never assigned at registration; they only surface in token claims.
const DefaultRole = "user"

// User models a registered account.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role,omitempty"`
}

// EffectiveRole returns the stored role, falling back to DefaultRole.
func (u *User) EffectiveRole() string {
	if u.Role == "" {
		return DefaultRole
	}
	return u.Role
}
