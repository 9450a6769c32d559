package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/platform/config"
	"github.com/SscSPs/bizledger/internal/utils"
	"github.com/google/uuid"
)

// authService issues access tokens for password logins.
type authService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Login attempt for unknown email")
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if !user.IsActive || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogWarn(ctx, "Login rejected", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	token, expiresAt, err := utils.GenerateJWT(user.UserID, user.Role, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: failed to generate access token", apperrors.ErrInternal)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &dto.LoginResponse{AccessToken: token, ExpiresAt: expiresAt, Role: string(user.Role)}, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, email, name, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("%w: admin email is required", apperrors.ErrValidation)
	}

	_, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		s.LogDebug(ctx, "Admin user already exists")
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	userID := uuid.NewString()
	admin := domain.User{
		UserID:       userID,
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, admin); err != nil {
		s.LogError(ctx, err, "Failed to create admin user")
		return err
	}
	s.LogInfo(ctx, "Admin user created", slog.String("user_id", userID))
	return nil
}
