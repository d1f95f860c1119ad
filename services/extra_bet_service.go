package services

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/Dosada05/prediction-pool/models"
	"github.com/Dosada05/prediction-pool/repositories"
)

const (
	rosterSize        = 26
	maxTopScorerChars = 80
)

type ExtraBetService interface {
	Get(ctx context.Context, username string) (*models.ExtraBets, error)
	Save(ctx context.Context, username string, bets models.ExtraBets) (*models.ExtraBets, error)
}

type extraBetService struct {
	extraBetRepo repositories.ExtraBetRepository
	matchRepo    repositories.MatchRepository
	tx           repositories.Transactor
	now          func() time.Time
	logger       *slog.Logger
}

func NewExtraBetService(extraBetRepo repositories.ExtraBetRepository, matchRepo repositories.MatchRepository, tx repositories.Transactor, logger *slog.Logger) ExtraBetService {
	return &extraBetService{
		extraBetRepo: extraBetRepo,
		matchRepo:    matchRepo,
		tx:           tx,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *extraBetService) Get(ctx context.Context, username string) (*models.ExtraBets, error) {
	values, err := s.extraBetRepo.ListByUser(ctx, username)
	if err != nil {
		return nil, handleRepositoryError(err, "list extra bets")
	}
	bets := models.ExtraBetsFromValues(values)
	return &bets, nil
}

// Save replaces all of the participant's extra bets. They close when the
// first match of the tournament kicks off.
func (s *extraBetService) Save(ctx context.Context, username string, bets models.ExtraBets) (*models.ExtraBets, error) {
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, handleRepositoryError(err, "list matches")
	}
	if opening, ok := firstKickoff(matches); ok && !s.now().Before(opening) {
		return nil, ErrExtraBetsLocked
	}

	bets = trimExtraBets(bets)
	if err := validateExtraBets(bets, matches); err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		return s.extraBetRepo.Save(ctx, exec, username, bets.Values())
	})
	if err != nil {
		return nil, handleRepositoryError(err, "save extra bets")
	}
	s.logger.DebugContext(ctx, "extra bets saved", slog.String("username", username))
	return &bets, nil
}

func firstKickoff(matches []models.Match) (time.Time, bool) {
	var first time.Time
	for _, m := range matches {
		if first.IsZero() || m.Date.Before(first) {
			first = m.Date
		}
	}
	return first, !first.IsZero()
}

func trimExtraBets(b models.ExtraBets) models.ExtraBets {
	return models.ExtraBets{
		Champion:     trimmed(b.Champion),
		ViceChampion: trimmed(b.ViceChampion),
		ThirdPlace:   trimmed(b.ThirdPlace),
		TopScorer:    trimmed(b.TopScorer),
		FirstScorer1: trimmed(b.FirstScorer1),
		FirstScorer2: trimmed(b.FirstScorer2),
		FirstScorer3: trimmed(b.FirstScorer3),
	}
}

func validateExtraBets(b models.ExtraBets, matches []models.Match) error {
	teams := make(map[string]bool)
	for _, m := range matches {
		teams[m.TeamA] = true
		teams[m.TeamB] = true
	}

	podium := []struct{ field, team string }{
		{models.ExtraChampion, b.Champion},
		{models.ExtraViceChampion, b.ViceChampion},
		{models.ExtraThirdPlace, b.ThirdPlace},
	}
	picked := make(map[string]string, len(podium))
	for _, p := range podium {
		if p.team == "" {
			continue
		}
		if !teams[p.team] {
			return validationError("%s: unknown team %q", p.field, p.team)
		}
		if other, ok := picked[p.team]; ok {
			return validationError("%s and %s must be different teams", other, p.field)
		}
		picked[p.team] = p.field
	}

	if len([]rune(b.TopScorer)) > maxTopScorerChars {
		return validationError("%s must be at most %d characters", models.ExtraTopScorer, maxTopScorerChars)
	}

	shirts := []struct{ field, shirt string }{
		{models.ExtraFirstScorer1, b.FirstScorer1},
		{models.ExtraFirstScorer2, b.FirstScorer2},
		{models.ExtraFirstScorer3, b.FirstScorer3},
	}
	for _, s := range shirts {
		if s.shirt == "" {
			continue
		}
		if n, err := strconv.Atoi(s.shirt); err != nil || n < 1 || n > rosterSize {
			return validationError("%s must be a shirt number from 1 to %d", s.field, rosterSize)
		}
	}
	return nil
}
