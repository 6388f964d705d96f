package dto

import (
	"time"

	"github.com/shopbook/shopbook_backend/internal/core/domain"
)

// LoginRequest carries the operator credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the access token and the logged-in user.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// CreateAdminRequest adds another admin user.
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name"`
}

// UpdateProfileRequest edits the logged-in admin's own profile.
type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	FullName string `json:"full_name" binding:"required"`
}

// ChangePasswordRequest rotates the logged-in admin's password after
// verifying the current one.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// UserResponse is an operator account as returned by the API. The password
// hash never leaves the service layer.
type UserResponse struct {
	UserID    string          `json:"id"`
	Username  string          `json:"username"`
	FullName  string          `json:"full_name"`
	Role      domain.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of users.
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i := range users {
		res[i] = ToUserResponse(&users[i])
	}
	return res
}
