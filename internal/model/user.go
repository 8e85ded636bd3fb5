package model

// Role of a user as asserted by the identity provider.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAgent  Role = "agent"
	RoleAdmin  Role = "admin"
)

// UserSummary is the public projection of a user attached to listings and showings.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type User struct {
	UserSummary
	Role Role `json:"role"`
}

// Actor is the caller on whose behalf an operation runs.
type Actor struct {
	ID   string
	Role Role
}

// IsAdmin reports whether the actor has the admin role.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
