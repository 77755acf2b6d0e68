package models

// Role defines a permission tier gating API operations.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleModerator Role = "Moderator"
	RoleReadOnly  Role = "ReadOnly"
)

// ParseRole converts a string into a Role, reporting whether it matched one
// of the known tiers.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleModerator, RoleReadOnly:
		return Role(s), true
	}
	return "", false
}

// User defines an API user held in the in-process credential table.
// Password is an opaque secret: either a bcrypt hash or, for statically
// configured demo users, the plaintext secret itself.
type User struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"-"`
	Roles    []Role `json:"roles" example:"Admin"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
