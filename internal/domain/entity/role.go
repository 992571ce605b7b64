package entity

// Role is the platform-level access role of a user.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleOwner    Role = "OWNER"
	RoleEmployee Role = "EMPLOYEE"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleEmployee:
		return true
	}

	return false
}
