package services

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/prediction-pool/models"
	"github.com/Dosada05/prediction-pool/repositories"
	"github.com/Dosada05/prediction-pool/standings"
)

type ThirdPlace struct {
	models.GroupRow
	Rank      int  `json:"rank"`
	Qualified bool `json:"qualified"`
}

// StandingsView is the group stage as one participant's predictions would
// leave it.
type StandingsView struct {
	Username    string              `json:"username"`
	Groups      []models.GroupTable `json:"groups"`
	ThirdPlaces []ThirdPlace        `json:"third_places"`
}

type StandingsService interface {
	ForUser(ctx context.Context, username string) (*StandingsView, error)
}

type standingsService struct {
	userRepo         repositories.UserRepository
	matchRepo        repositories.MatchRepository
	predictionRepo   repositories.PredictionRepository
	qualifyingThirds int
	logger           *slog.Logger
}

func NewStandingsService(userRepo repositories.UserRepository, matchRepo repositories.MatchRepository, predictionRepo repositories.PredictionRepository, qualifyingThirds int, logger *slog.Logger) StandingsService {
	return &standingsService{
		userRepo:         userRepo,
		matchRepo:        matchRepo,
		predictionRepo:   predictionRepo,
		qualifyingThirds: qualifyingThirds,
		logger:           logger,
	}
}

func (s *standingsService) ForUser(ctx context.Context, username string) (*StandingsView, error) {
	var (
		matches []models.Match
		bets    map[string]models.PartialScore
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.userRepo.GetByUsername(gCtx, username)
		return handleRepositoryError(err, "load user")
	})
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.List(gCtx)
		return handleRepositoryError(err, "load matches")
	})
	g.Go(func() error {
		var err error
		bets, err = s.predictionRepo.ListByUser(gCtx, username)
		return handleRepositoryError(err, "load predictions")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tables := standings.BuildGroupTables(matches, bets)
	ranked := standings.RankThirdPlaces(tables)

	thirds := make([]ThirdPlace, len(ranked))
	for i, row := range ranked {
		thirds[i] = ThirdPlace{GroupRow: row, Rank: i + 1, Qualified: i < s.qualifyingThirds}
	}

	s.logger.DebugContext(ctx, "standings simulated",
		slog.String("username", username),
		slog.Int("groups", len(tables)),
		slog.Int("predictions", len(bets)),
	)
	return &StandingsView{Username: username, Groups: tables, ThirdPlaces: thirds}, nil
}
