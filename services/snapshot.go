package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/prediction-pool/models"
	"github.com/Dosada05/prediction-pool/repositories"
	"github.com/Dosada05/prediction-pool/scoring"
)

// poolSnapshot holds everything the engine consumes. The four reads run
// concurrently without a shared transaction; a write landing between them is
// picked up by the recompute that write triggers.
type poolSnapshot struct {
	users       []models.User
	matches     []models.Match
	predictions models.Predictions
	config      *models.PoolConfig
}

// roster returns the participants eligible for ranking, in user order.
func (s *poolSnapshot) roster() []models.Participant {
	roster := make([]models.Participant, 0, len(s.users))
	for _, u := range s.users {
		if u.EligibleForRanking() {
			roster = append(roster, u.Participant())
		}
	}
	return roster
}

func (s *poolSnapshot) leaderboardInput() scoring.LeaderboardInput {
	return scoring.LeaderboardInput{
		Roster:      s.roster(),
		Matches:     s.matches,
		Predictions: s.predictions,
		Rules:       scoring.RuleSet(s.config.Rules),
		Policy:      s.config.Settings.Multiplier,
	}
}

func (s *poolSnapshot) match(id string) (models.Match, bool) {
	for _, m := range s.matches {
		if m.ID == id {
			return m, true
		}
	}
	return models.Match{}, false
}

type snapshotLoader struct {
	userRepo       repositories.UserRepository
	matchRepo      repositories.MatchRepository
	predictionRepo repositories.PredictionRepository
	configReader   ConfigReader
	logger         *slog.Logger
}

func (l *snapshotLoader) load(ctx context.Context) (*poolSnapshot, error) {
	snap := &poolSnapshot{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		users, err := l.userRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load users: %w", err)
		}
		snap.users = users
		return nil
	})

	g.Go(func() error {
		matches, err := l.matchRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load matches: %w", err)
		}
		snap.matches = matches
		return nil
	})

	g.Go(func() error {
		preds, err := l.predictionRepo.ListAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load predictions: %w", err)
		}
		snap.predictions = preds
		return nil
	})

	g.Go(func() error {
		cfg, err := l.configReader.Get(gCtx)
		if err != nil {
			return err
		}
		snap.config = cfg
		return nil
	})

	if err := g.Wait(); err != nil {
		l.logger.ErrorContext(ctx, "failed to load pool snapshot", slog.Any("error", err))
		return nil, err
	}
	return snap, nil
}
