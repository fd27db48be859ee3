package entity

// Role represents the type of role a caller can have in the store.
type Role string

const (
	// RoleAdmin indicates a store administrator.
	RoleAdmin Role = "admin"
	// RoleUser indicates a regular signed-in shopper.
	RoleUser Role = "user"
	// RoleGuest indicates an anonymous caller.
	RoleGuest Role = "guest"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	default:
		return false
	}
}
