package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/app/models/dto"
	"github.com/yigit/enrollhub/internal/app/repositories"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
	"github.com/yigit/enrollhub/internal/pkg/auth"
)

// AuthService handles login, token checks and the users table
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context) error
	Authenticate(authHeader string) (*auth.Claims, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ResetUsers(ctx context.Context) error
}

type authServiceImpl struct {
	store      repositories.Store
	jwtService *auth.JWTService
	passwords  auth.PasswordMatcher
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(store repositories.Store, jwtService *auth.JWTService, passwords auth.PasswordMatcher, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		store:      store,
		jwtService: jwtService,
		passwords:  passwords,
		logger:     logger.With().Str("component", "auth_service").Logger(),
	}
}

// Login authenticates a user and issues an access token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	var user *models.User
	err := s.store.View(ctx, func(_ context.Context, r *repositories.Repositories) error {
		u, err := r.Users.GetByUsername(req.Username)
		if err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !s.passwords.Matches(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("role", string(user.RoleType)).Msg("User logged in")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

// Logout is not supported: tokens are stateless and simply expire.
func (s *authServiceImpl) Logout(context.Context) error {
	return apperrors.ErrNotImplemented
}

// Authenticate verifies an Authorization header value
func (s *authServiceImpl) Authenticate(authHeader string) (*auth.Claims, error) {
	token, err := auth.ExtractBearerToken(authHeader)
	if err != nil {
		return nil, err
	}
	return s.jwtService.ValidateToken(token)
}

// ListUsers returns every user; passwords are never serialised
func (s *authServiceImpl) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.store.View(ctx, func(_ context.Context, r *repositories.Repositories) error {
		users = r.Users.List()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ResetUsers restores the seed users
func (s *authServiceImpl) ResetUsers(ctx context.Context) error {
	err := s.store.Update(ctx, func(_ context.Context, r *repositories.Repositories) error {
		return r.Users.ResetToSeed()
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to reset users")
		return fmt.Errorf("failed to reset users: %w", err)
	}
	s.logger.Info().Msg("Users reset to seed data")
	return nil
}
