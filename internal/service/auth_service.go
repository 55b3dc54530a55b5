package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	"github.com/mcasfest/fest-api/internal/domain/repository"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
	"github.com/mcasfest/fest-api/pkg/auth"
)

// AuthService authenticates admin and judge accounts.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) (*AuthService, error) {
	if userRepo == nil || jwtService == nil {
		return nil, fmt.Errorf("auth service requires user repository and jwt service")
	}
	return &AuthService{userRepo: userRepo, jwtService: jwtService}, nil
}

// Login verifies credentials and issues a session token. Unknown usernames
// and wrong passwords return the same error; callers learn nothing about
// which one failed.
func (s *AuthService) Login(username, password string) (*entity.User, string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUser returns the account behind a token's user ID
func (s *AuthService) GetUser(userID uint) (*entity.User, error) {
	return s.userRepo.GetByID(userID)
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
