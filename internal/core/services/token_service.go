package services

import (
	"context"
	"time"

	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/internal/utils"
	"github.com/shopbook/shopbook_backend/pkg/config"
)

type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates the JWT issuing service.
func NewTokenService(cfg *config.Config) ports.TokenService {
	return &tokenService{cfg: cfg}
}

var _ ports.TokenService = (*tokenService)(nil)

// GenerateAccessToken creates a signed access token for the given operator.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}
