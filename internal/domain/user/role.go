package user

import "strings"

type Role string

const (
	RoleChef      Role = "Chef"
	RoleFoodLover Role = "FoodLover"
	RoleAdmin     Role = "Admin"
)

var roles = []Role{RoleChef, RoleFoodLover, RoleAdmin}

// ParseRole accepts role names case-insensitively.
func ParseRole(s string) (Role, bool) {
	s = strings.TrimSpace(s)
	for _, r := range roles {
		if strings.EqualFold(s, string(r)) {
			return r, true
		}
	}
	return "", false
}

func (r Role) Valid() bool {
	for _, known := range roles {
		if r == known {
			return true
		}
	}
	return false
}

// RequiresChefProfile reports whether the role title and specialty are mandatory.
func (r Role) RequiresChefProfile() bool {
	return r == RoleChef
}

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uint
	Role   Role
}

func (a Actor) Is(r Role) bool {
	return a.Role == r
}
