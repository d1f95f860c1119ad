package services

import (
	"context"
	"log/slog"

	"github.com/Dosada05/prediction-pool/models"
	"github.com/Dosada05/prediction-pool/repositories"
)

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	SetPaid(ctx context.Context, username string, paid bool) (*models.User, error)
}

type userService struct {
	userRepo   repositories.UserRepository
	recomputer Recomputer
	logger     *slog.Logger
}

func NewUserService(userRepo repositories.UserRepository, recomputer Recomputer, logger *slog.Logger) UserService {
	return &userService{userRepo: userRepo, recomputer: recomputer, logger: logger}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, handleRepositoryError(err, "list users")
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, handleRepositoryError(err, "load user")
	}
	user.PasswordHash = ""
	return user, nil
}

// SetPaid changes whether the participant's ticket is paid. Paying joins the
// ranking, so the leaderboard is recomputed.
func (s *userService) SetPaid(ctx context.Context, username string, paid bool) (*models.User, error) {
	if err := s.userRepo.SetPaid(ctx, username, paid); err != nil {
		return nil, handleRepositoryError(err, "update paid flag")
	}
	user, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "paid flag updated", slog.String("username", username), slog.Bool("paid", paid))
	if err := s.recomputer.Recompute(ctx, "roster_changed"); err != nil {
		s.logger.ErrorContext(ctx, "failed to recompute leaderboard", slog.String("username", username), slog.Any("error", err))
	}
	return user, nil
}
