package services

import (
	"github.com/rs/zerolog"

	"github.com/campushq/studenthub/internal/app/models"
	"github.com/campushq/studenthub/internal/app/repositories"
	"github.com/campushq/studenthub/internal/pkg/apperrors"
	"github.com/campushq/studenthub/internal/pkg/auth"
)

// AuthService authenticates login requests against the credential table
// and issues signed tokens.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo repositories.UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login checks the submitted credentials and returns a signed token
// carrying the user's role claims. Rejections carry a single
// ErrInvalidCredentials signal regardless of which check failed.
func (s *AuthService) Login(username, password string) (token string, expiresIn int, user *models.User, err error) {
	found, ok := s.userRepo.FindByUsername(username)
	if !ok || !auth.CheckSecret(found.Password, password) {
		s.logger.Warn().Str("username", username).Msg("Login failed")
		return "", 0, nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err = s.jwtService.GenerateToken(found)
	if err != nil {
		s.logger.Error().Err(err).Str("username", found.Username).Msg("Token generation failed")
		return "", 0, nil, err
	}

	s.logger.Info().Str("username", found.Username).Msg("Login successful")
	return token, expiresIn, found, nil
}
