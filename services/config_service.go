package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/Dosada05/prediction-pool/live"
	"github.com/Dosada05/prediction-pool/models"
	"github.com/Dosada05/prediction-pool/repositories"
	"github.com/Dosada05/prediction-pool/scoring"
)

// FinalPhase is the group label of the tournament final.
const FinalPhase = "FINAL"

// DefaultSettings is used until an administrator saves pool settings.
func DefaultSettings(primaryTeam string) models.PoolSettings {
	return models.PoolSettings{
		TicketPriceCents: 5000,
		Prizes:           models.PrizeDistribution{First: 65, Second: 25, Third: 10},
		Multiplier: models.MultiplierPolicy{
			SpecialTeams:  []string{primaryTeam},
			SpecialPhases: []string{FinalPhase},
		},
	}
}

// ConfigReader yields the pool configuration the engine runs with.
type ConfigReader interface {
	Get(ctx context.Context) (*models.PoolConfig, error)
}

// ConfigStore reads the stored configuration, falling back to defaults. An
// empty rule table is seeded with the default rules.
type ConfigStore struct {
	repo        repositories.ConfigRepository
	tx          repositories.Transactor
	primaryTeam string
	logger      *slog.Logger
}

func NewConfigStore(repo repositories.ConfigRepository, tx repositories.Transactor, primaryTeam string, logger *slog.Logger) *ConfigStore {
	return &ConfigStore{repo: repo, tx: tx, primaryTeam: primaryTeam, logger: logger}
}

func (s *ConfigStore) Get(ctx context.Context) (*models.PoolConfig, error) {
	rules, err := s.repo.ListRules(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load scoring rules: %w", err)
	}
	if len(rules) == 0 {
		rules = scoring.DefaultRules()
		s.logger.WarnContext(ctx, "no scoring rules configured, seeding defaults", slog.Int("rules", len(rules)))
		seedErr := s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
			return s.repo.ReplaceRules(ctx, exec, rules)
		})
		if seedErr != nil {
			s.logger.ErrorContext(ctx, "failed to persist default scoring rules", slog.Any("error", seedErr))
		}
	}

	settings, err := s.repo.GetSettings(ctx)
	switch {
	case errors.Is(err, repositories.ErrPoolSettingsNotFound):
		defaults := DefaultSettings(s.primaryTeam)
		settings = &defaults
	case err != nil:
		return nil, fmt.Errorf("failed to load pool settings: %w", err)
	}

	return &models.PoolConfig{Rules: rules, Settings: *settings}, nil
}

// Recomputer rebuilds and persists the leaderboard at a round boundary.
type Recomputer interface {
	Recompute(ctx context.Context, reason string) error
}

type ConfigService interface {
	Get(ctx context.Context) (*models.PoolConfig, error)
	UpdateRules(ctx context.Context, rules []models.ScoringRule) (*models.PoolConfig, error)
	UpdateSettings(ctx context.Context, settings models.PoolSettings) (*models.PoolConfig, error)
}

type configService struct {
	store       ConfigReader
	repo        repositories.ConfigRepository
	tx          repositories.Transactor
	recomputer  Recomputer
	broadcaster Broadcaster
	logger      *slog.Logger
}

func NewConfigService(store ConfigReader, repo repositories.ConfigRepository, tx repositories.Transactor, recomputer Recomputer, broadcaster Broadcaster, logger *slog.Logger) ConfigService {
	return &configService{
		store:       store,
		repo:        repo,
		tx:          tx,
		recomputer:  recomputer,
		broadcaster: broadcasterOrNop(broadcaster),
		logger:      logger,
	}
}

func (s *configService) Get(ctx context.Context) (*models.PoolConfig, error) {
	return s.store.Get(ctx)
}

func (s *configService) UpdateRules(ctx context.Context, rules []models.ScoringRule) (*models.PoolConfig, error) {
	if err := validateRules(rules); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		return s.repo.ReplaceRules(ctx, exec, rules)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save scoring rules: %w", err)
	}
	s.logger.InfoContext(ctx, "scoring rules updated", slog.Int("rules", len(rules)))

	s.afterChange(ctx, "rules_updated")
	return s.store.Get(ctx)
}

func (s *configService) UpdateSettings(ctx context.Context, settings models.PoolSettings) (*models.PoolConfig, error) {
	settings.Multiplier.SpecialTeams = cleanList(settings.Multiplier.SpecialTeams)
	settings.Multiplier.SpecialPhases = cleanList(settings.Multiplier.SpecialPhases)
	if _, err := scoring.SplitPrizes(0, settings.TicketPriceCents, settings.Prizes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	if err := s.repo.SaveSettings(ctx, &settings); err != nil {
		return nil, fmt.Errorf("failed to save pool settings: %w", err)
	}
	s.logger.InfoContext(ctx, "pool settings updated",
		slog.Int64("ticket_price_cents", settings.TicketPriceCents),
		slog.Any("special_teams", settings.Multiplier.SpecialTeams),
		slog.Any("special_phases", settings.Multiplier.SpecialPhases),
	)

	s.afterChange(ctx, "settings_updated")
	return s.store.Get(ctx)
}

// afterChange marks a round boundary. The change itself is already stored, so
// a failed recompute is only logged.
func (s *configService) afterChange(ctx context.Context, reason string) {
	s.broadcaster.Broadcast(live.MessageRulesUpdated, map[string]string{"reason": reason})
	if err := s.recomputer.Recompute(ctx, reason); err != nil {
		s.logger.ErrorContext(ctx, "failed to recompute leaderboard", slog.String("reason", reason), slog.Any("error", err))
	}
}

func validateRules(rules []models.ScoringRule) error {
	ids := make(map[string]bool, len(rules))
	for _, r := range rules {
		if trimmed(r.ID) == "" {
			return validationError("every scoring rule needs an id")
		}
		if ids[r.ID] {
			return validationError("duplicate scoring rule id %q", r.ID)
		}
		ids[r.ID] = true
	}
	if err := scoring.RuleSet(rules).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	return nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = trimmed(v); v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
