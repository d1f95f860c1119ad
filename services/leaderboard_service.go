package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Dosada05/prediction-pool/live"
	"github.com/Dosada05/prediction-pool/models"
	"github.com/Dosada05/prediction-pool/repositories"
	"github.com/Dosada05/prediction-pool/scoring"
)

type LeaderboardService interface {
	Get(ctx context.Context) ([]models.LeaderboardEntry, error)
	Prizes(ctx context.Context) (*scoring.Prizes, error)
	Breakdown(ctx context.Context, matchID string) (*scoring.MatchBreakdown, error)
	History(ctx context.Context, username string) ([]models.HistoryEntry, error)
	Recompute(ctx context.Context, reason string) error
}

type leaderboardService struct {
	loader      *snapshotLoader
	historyRepo repositories.LeaderboardHistoryRepository
	tx          repositories.Transactor
	broadcaster Broadcaster
	logger      *slog.Logger

	recomputeMu sync.Mutex
}

func NewLeaderboardService(
	userRepo repositories.UserRepository,
	matchRepo repositories.MatchRepository,
	predictionRepo repositories.PredictionRepository,
	historyRepo repositories.LeaderboardHistoryRepository,
	configReader ConfigReader,
	tx repositories.Transactor,
	broadcaster Broadcaster,
	logger *slog.Logger,
) LeaderboardService {
	return &leaderboardService{
		loader: &snapshotLoader{
			userRepo:       userRepo,
			matchRepo:      matchRepo,
			predictionRepo: predictionRepo,
			configReader:   configReader,
			logger:         logger,
		},
		historyRepo: historyRepo,
		tx:          tx,
		broadcaster: broadcasterOrNop(broadcaster),
		logger:      logger,
	}
}

func (s *leaderboardService) Get(ctx context.Context) ([]models.LeaderboardEntry, error) {
	snap, err := s.loader.load(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := scoring.BuildLeaderboard(snap.leaderboardInput())
	if err != nil {
		return nil, fmt.Errorf("failed to build leaderboard: %w", err)
	}

	recent, err := s.historyRepo.Recent(ctx, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard history: %w", err)
	}
	applyTrends(entries, recent)
	return entries, nil
}

func (s *leaderboardService) Prizes(ctx context.Context) (*scoring.Prizes, error) {
	snap, err := s.loader.load(ctx)
	if err != nil {
		return nil, err
	}
	settings := snap.config.Settings
	prizes, err := scoring.SplitPrizes(len(snap.roster()), settings.TicketPriceCents, settings.Prizes)
	if err != nil {
		return nil, err
	}
	return &prizes, nil
}

func (s *leaderboardService) Breakdown(ctx context.Context, matchID string) (*scoring.MatchBreakdown, error) {
	snap, err := s.loader.load(ctx)
	if err != nil {
		return nil, err
	}
	m, ok := snap.match(matchID)
	if !ok {
		return nil, ErrMatchNotFound
	}
	return scoring.BreakdownMatch(m, snap.roster(), snap.predictions, scoring.RuleSet(snap.config.Rules), snap.config.Settings.Multiplier)
}

// History returns the participant's recorded rounds, oldest first.
func (s *leaderboardService) History(ctx context.Context, username string) ([]models.HistoryEntry, error) {
	if _, err := s.loader.userRepo.GetByUsername(ctx, username); err != nil {
		return nil, handleRepositoryError(err, "load user")
	}
	history, err := s.historyRepo.ListByUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard history: %w", err)
	}
	return history, nil
}

// Recompute records the current standings as a new history round and
// notifies connected clients. Calls are serialized.
func (s *leaderboardService) Recompute(ctx context.Context, reason string) error {
	s.recomputeMu.Lock()
	defer s.recomputeMu.Unlock()

	snap, err := s.loader.load(ctx)
	if err != nil {
		return err
	}
	entries, err := scoring.BuildLeaderboard(snap.leaderboardInput())
	if err != nil {
		return fmt.Errorf("failed to build leaderboard: %w", err)
	}

	var round int
	var recent []models.HistoryEntry
	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		var err error
		if round, err = s.historyRepo.AppendRound(ctx, exec, historyRows(entries)); err != nil {
			return err
		}
		recent, err = s.historyRepo.Recent(ctx, exec, 2)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to record leaderboard history: %w", err)
	}

	applyTrends(entries, recent)
	s.logger.InfoContext(ctx, "leaderboard recomputed",
		slog.String("reason", reason),
		slog.Int("round", round),
		slog.Int("participants", len(entries)),
	)
	s.broadcaster.Broadcast(live.MessageLeaderboardUpdated, map[string]interface{}{
		"reason":  reason,
		"round":   round,
		"entries": entries,
	})
	return nil
}

func historyRows(entries []models.LeaderboardEntry) []models.HistoryEntry {
	rows := make([]models.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, models.HistoryEntry{
			ParticipantID: e.ParticipantID,
			Position:      e.Position,
			Points:        e.Points,
			ExactScores:   e.ExactScores,
			MarqueePoints: e.MarqueePoints,
		})
	}
	return rows
}

// applyTrends compares each participant's two latest recorded rounds. recent
// must list a participant's rows newest first.
func applyTrends(entries []models.LeaderboardEntry, recent []models.HistoryEntry) {
	latest := make(map[string][]int, len(entries))
	for _, h := range recent {
		if len(latest[h.ParticipantID]) < 2 {
			latest[h.ParticipantID] = append(latest[h.ParticipantID], h.Position)
		}
	}
	for i := range entries {
		positions := latest[entries[i].ParticipantID]
		if len(positions) < 2 {
			entries[i].Trend = models.TrendSame
			continue
		}
		entries[i].Trend = trend(positions[0], positions[1])
	}
}

// trend compares a position with an earlier one; zero means unknown.
func trend(current, before int) models.Trend {
	switch {
	case before == 0 || before == current:
		return models.TrendSame
	case current < before:
		return models.TrendUp
	default:
		return models.TrendDown
	}
}
