// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a visitor can declare in the system.
type Role string

const (
	// RoleUser indicates a regular shopper role.
	RoleUser Role = "user"
	// RoleAdmin indicates the catalog administrator role.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Session is the client-declared login state. A stored role implies the
// visitor is logged in; there is no credential verification behind it.
type Session struct {
	LoggedIn bool `json:"loggedIn"`
	Role     Role `json:"role"`
}
