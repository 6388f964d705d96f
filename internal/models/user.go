package models

// User represents a row of the users table.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	FullName     string `db:"full_name"`
	Role         string `db:"role"`
	AuditFields
}
