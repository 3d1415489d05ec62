package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Noam97/mini-project-manager/internal/auth"
	"github.com/Noam97/mini-project-manager/internal/models"
	"github.com/Noam97/mini-project-manager/internal/repository"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService handles registration, credential verification, and token
// issuance.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Password string
}

// Register creates a new user and returns a signed token. The username is
// trimmed and case-folded for the uniqueness check only; the stored username
// keeps its original casing.
func (s *AuthService) Register(input RegisterInput) (string, error) {
	username := strings.TrimSpace(input.Username)
	normalized := strings.ToLower(username)

	// Fast-path check. The unique index on username_normalized is the
	// authoritative guard against the check-then-insert race.
	if _, err := s.userRepo.FindByNormalizedUsername(normalized); err == nil {
		return "", ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to check username: %w", err)
	}

	salt, err := auth.NewSalt()
	if err != nil {
		return "", fmt.Errorf("failed to create credentials: %w", err)
	}

	user := &models.User{
		Username:           username,
		UsernameNormalized: normalized,
		PasswordSalt:       salt,
		PasswordHash:       auth.HashPassword(input.Password, salt),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrUsernameTaken
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns a signed token. A missing user and
// a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(input LoginInput) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(input.Username))

	user, err := s.userRepo.FindByNormalizedUsername(normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if !auth.VerifyPassword(input.Password, user.PasswordSalt, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
