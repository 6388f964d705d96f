package domain

// UserRole is the access level of an admin user.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
)

// User is an operator account. The shop runs with one or a handful of admins;
// there is no customer-facing login.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"` // matched case-insensitively at login
	PasswordHash string   `json:"-"`
	FullName     string   `json:"fullName"`
	Role         UserRole `json:"role"`
	AuditFields
}
