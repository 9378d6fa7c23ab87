package entities

import "time"

// Role is a user's access level.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleDesigner Role = "Designer"
)

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleDesigner:
		return true
	}
	return false
}

// User is a profile record. Deactivated users are soft-deleted via IsActive.
type User struct {
	ID        string
	Email     string
	Username  string
	Name      string
	Role      Role
	AvatarURL *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserRef is the short projection embedded in expanded responses.
type UserRef struct {
	ID    string
	Name  string
	Email string
}

// UserFilter narrows user listings.
type UserFilter struct {
	Role   Role
	Search string
	Limit  int
	Offset int
}

// UserUpdate carries a partial profile update; nil fields are left untouched.
type UserUpdate struct {
	Name      *string
	Username  *string
	AvatarURL *string
	Role      *Role
	IsActive  *bool
}

// RegisterInput is the payload of a self-service registration.
type RegisterInput struct {
	Email    string
	Password string
	Username string
	Name     string
	Role     Role
}

// Credential is an authentication record, stored apart from the profile.
type Credential struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is a server-side login session referenced by token id.
type Session struct {
	ID           string
	CredentialID string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}
