package domain

// Role is the coarse permission level carried by a session.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleClient Role = "CLIENT"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleClient
}

// User is an application login.
type User struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// Session identifies the caller of a service operation. It is built by the
// auth middleware and passed explicitly to every service call.
type Session struct {
	UserID string
	Role   Role
}

// CanWrite reports whether the session may create accounts and post entries.
func (s Session) CanWrite() bool {
	return s.Role == RoleAdmin
}
