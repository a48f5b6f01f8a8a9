package models

// Role identifies the kind of account making a request.
type Role string

const (
	RoleUser    Role = "user"
	RoleCoach   Role = "coach"
	RoleMedical Role = "medical"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a wire string to a Role. Unrecognized values are carried
// through unchanged so downstream permission checks fail closed on them.
func ParseRole(s string) Role {
	return Role(s)
}

// Known reports whether the role is one the platform recognizes.
func (r Role) Known() bool {
	switch r {
	case RoleUser, RoleCoach, RoleMedical, RoleAdmin:
		return true
	default:
		return false
	}
}

// Viewer is the identity+role pair behind a visibility query.
type Viewer struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}
