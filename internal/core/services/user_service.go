package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook_backend/internal/apperrors"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/internal/dto"
	"github.com/shopbook/shopbook_backend/internal/utils"
)

type userService struct {
	userRepo ports.UserRepository
}

// NewUserService creates the operator-account service.
func NewUserService(userRepo ports.UserRepository) ports.UserService {
	return &userService{userRepo: userRepo}
}

var _ ports.UserService = (*userService)(nil)

// Authenticate verifies the credentials and returns the user. The username is
// matched case-insensitively. Failures are deliberately ErrUnauthorized, not
// ErrNotFound, so login never leaks which usernames exist.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.ToLower(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user %q: %w", username, err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}
	return user, nil
}

func (s *userService) CreateAdmin(ctx context.Context, req dto.CreateAdminRequest, actorID string) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     strings.ToLower(req.Username),
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         domain.RoleAdmin,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user %q: %w", user.Username, err)
	}
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) ListAdmins(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx)
}

// DeleteAdmin removes another admin. Self-deletion is rejected so the shop
// can't lock itself out.
func (s *userService) DeleteAdmin(ctx context.Context, userID string, actorID string) error {
	if userID == actorID {
		return fmt.Errorf("%w: cannot delete yourself", apperrors.ErrValidation)
	}
	return s.userRepo.DeleteUser(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) error {
	return s.userRepo.UpdateUserProfile(ctx, userID, strings.ToLower(req.Username), req.FullName, time.Now().UTC())
}

// ChangePassword rotates the operator's password after verifying the current one.
func (s *userService) ChangePassword(ctx context.Context, userID string, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return fmt.Errorf("%w: incorrect current password", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdateUserPassword(ctx, userID, hash, time.Now().UTC())
}

// EnsureDefaultAdmin creates the bootstrap admin on first start so a fresh
// deployment is immediately usable. Existing users are left untouched.
func (s *userService) EnsureDefaultAdmin(ctx context.Context, username, password, fullName string) error {
	_, err := s.userRepo.FindUserByUsername(ctx, strings.ToLower(username))
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check for default admin: %w", err)
	}

	_, err = s.CreateAdmin(ctx, dto.CreateAdminRequest{
		Username: username,
		Password: password,
		FullName: fullName,
	}, "system")
	return err
}
