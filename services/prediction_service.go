package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/Dosada05/prediction-pool/models"
	"github.com/Dosada05/prediction-pool/repositories"
)

type PredictionService interface {
	Submit(ctx context.Context, username, matchID string, score models.PartialScore) error
	ListMine(ctx context.Context, username string) (map[string]models.PartialScore, error)
}

type predictionService struct {
	predictionRepo repositories.PredictionRepository
	matchRepo      repositories.MatchRepository
	now            func() time.Time
	logger         *slog.Logger
}

func NewPredictionService(predictionRepo repositories.PredictionRepository, matchRepo repositories.MatchRepository, logger *slog.Logger) PredictionService {
	return &predictionService{
		predictionRepo: predictionRepo,
		matchRepo:      matchRepo,
		now:            time.Now,
		logger:         logger,
	}
}

// Submit stores a prediction. Either side may be left empty; such a half
// prediction counts as not predicted until it is completed. Predictions close
// at kickoff, or earlier if a result is entered early.
func (s *predictionService) Submit(ctx context.Context, username, matchID string, score models.PartialScore) error {
	if (score.A != nil && *score.A < 0) || (score.B != nil && *score.B < 0) {
		return validationError("scores must not be negative")
	}

	m, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return handleRepositoryError(err, "load match")
	}
	now := s.now()
	if _, played := m.Official(); played || !now.Before(m.Date) {
		return ErrPredictionLocked
	}

	if err := s.predictionRepo.Upsert(ctx, username, matchID, score, now); err != nil {
		return handleRepositoryError(err, "save prediction")
	}
	s.logger.DebugContext(ctx, "prediction saved", slog.String("username", username), slog.String("match_id", matchID))
	return nil
}

func (s *predictionService) ListMine(ctx context.Context, username string) (map[string]models.PartialScore, error) {
	bets, err := s.predictionRepo.ListByUser(ctx, username)
	if err != nil {
		return nil, handleRepositoryError(err, "list predictions")
	}
	return bets, nil
}
