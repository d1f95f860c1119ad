package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/Dosada05/prediction-pool/live"
	"github.com/Dosada05/prediction-pool/models"
	"github.com/Dosada05/prediction-pool/repositories"
)

type CreateMatchInput struct {
	ID    string    `json:"id"`
	TeamA string    `json:"team_a"`
	TeamB string    `json:"team_b"`
	Group string    `json:"group"`
	Date  time.Time `json:"date"`
	Venue *string   `json:"venue,omitempty"`
}

type MatchService interface {
	List(ctx context.Context) ([]models.Match, error)
	Create(ctx context.Context, input CreateMatchInput) (*models.Match, error)
	SetResult(ctx context.Context, matchID string, score models.Score) (*models.Match, error)
	ClearResult(ctx context.Context, matchID string) (*models.Match, error)
}

type matchService struct {
	matchRepo   repositories.MatchRepository
	recomputer  Recomputer
	broadcaster Broadcaster
	primaryTeam string
	logger      *slog.Logger
}

func NewMatchService(matchRepo repositories.MatchRepository, recomputer Recomputer, broadcaster Broadcaster, primaryTeam string, logger *slog.Logger) MatchService {
	return &matchService{
		matchRepo:   matchRepo,
		recomputer:  recomputer,
		broadcaster: broadcasterOrNop(broadcaster),
		primaryTeam: primaryTeam,
		logger:      logger,
	}
}

func (s *matchService) List(ctx context.Context) ([]models.Match, error) {
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, handleRepositoryError(err, "list matches")
	}
	return matches, nil
}

func (s *matchService) Create(ctx context.Context, input CreateMatchInput) (*models.Match, error) {
	m := &models.Match{
		ID:    trimmed(input.ID),
		TeamA: trimmed(input.TeamA),
		TeamB: trimmed(input.TeamB),
		Group: trimmed(input.Group),
		Date:  input.Date,
		Venue: input.Venue,
	}
	switch {
	case m.ID == "":
		return nil, validationError("match id is required")
	case m.TeamA == "" || m.TeamB == "":
		return nil, validationError("both teams are required")
	case m.TeamA == m.TeamB:
		return nil, validationError("a team cannot play itself")
	case m.Group == "":
		return nil, validationError("group is required")
	case m.Date.IsZero():
		return nil, validationError("match date is required")
	}
	m.IsMarquee = m.Involves(s.primaryTeam)

	if err := s.matchRepo.Create(ctx, m); err != nil {
		return nil, handleRepositoryError(err, "create match")
	}
	s.logger.InfoContext(ctx, "match created", slog.String("match_id", m.ID), slog.Bool("marquee", m.IsMarquee))
	return m, nil
}

func (s *matchService) SetResult(ctx context.Context, matchID string, score models.Score) (*models.Match, error) {
	if score.A < 0 || score.B < 0 {
		return nil, validationError("scores must not be negative")
	}
	return s.storeResult(ctx, matchID, &score.A, &score.B, "result_set")
}

func (s *matchService) ClearResult(ctx context.Context, matchID string) (*models.Match, error) {
	return s.storeResult(ctx, matchID, nil, nil, "result_cleared")
}

func (s *matchService) storeResult(ctx context.Context, matchID string, a, b *int, reason string) (*models.Match, error) {
	if err := s.matchRepo.SetResult(ctx, nil, matchID, a, b); err != nil {
		return nil, handleRepositoryError(err, "store official result")
	}
	m, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, handleRepositoryError(err, "reload match")
	}

	s.logger.InfoContext(ctx, "official result updated", slog.String("match_id", matchID), slog.String("reason", reason))
	s.broadcaster.Broadcast(live.MessageResultUpdated, m)
	if err := s.recomputer.Recompute(ctx, reason); err != nil {
		s.logger.ErrorContext(ctx, "failed to recompute leaderboard", slog.String("match_id", matchID), slog.Any("error", err))
	}
	return m, nil
}
