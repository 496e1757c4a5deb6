package models

import "fmt"

// Role distinguishes the two kinds of marketplace accounts.
type Role string

const (
	RoleClient Role = "client"
	RoleLawyer Role = "lawyer"
)

// ParseRole validates a role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient, RoleLawyer:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Session is the authenticated identity held between login and logout.
type Session struct {
	Token  string `json:"token"`
	UserID ID     `json:"userId"`
	Role   Role   `json:"role"`
}

// Credentials are posted to /api/auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"userType"`
}

// Registration is posted to /api/auth/register. Specialization and Location
// are only meaningful for lawyers.
type Registration struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Role           Role   `json:"userType"`
	Phone          string `json:"phone,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Location       string `json:"location,omitempty"`
}

// AuthResponse is returned by both auth endpoints.
type AuthResponse struct {
	Token  string `json:"token"`
	UserID ID     `json:"userId"`
	Role   Role   `json:"role,omitempty"`
}
