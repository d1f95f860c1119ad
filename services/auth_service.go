package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Dosada05/prediction-pool/models"
	"github.com/Dosada05/prediction-pool/repositories"
)

const minPasswordLength = 6

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, creds models.Credentials) (*models.User, error)
}

type RegisterInput struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authService struct {
	userRepo repositories.UserRepository
	logger   *slog.Logger
}

func NewAuthService(userRepo repositories.UserRepository, logger *slog.Logger) AuthService {
	return &authService{userRepo: userRepo, logger: logger}
}

// Register creates an unpaid participant. Administrators are provisioned
// directly in the database.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	username := strings.ToLower(trimmed(input.Username))
	name := trimmed(input.Name)
	email := strings.ToLower(trimmed(input.Email))

	switch {
	case username == "" || strings.ContainsAny(username, " \t/"):
		return nil, validationError("username is required and cannot contain spaces or slashes")
	case name == "":
		return nil, validationError("name is required")
	case !strings.Contains(email, "@"):
		return nil, validationError("a valid email is required")
	case len(input.Password) < minPasswordLength:
		return nil, ErrPasswordTooShort
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, handleRepositoryError(err, "create user")
	}

	s.logger.InfoContext(ctx, "participant registered", slog.String("username", user.Username))
	user.PasswordHash = ""
	return user, nil
}

func (s *authService) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.ToLower(trimmed(creds.Username)))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}
