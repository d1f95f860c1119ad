package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Dosada05/prediction-pool/models"
)

var ErrPoolSettingsNotFound = errors.New("pool settings not found")

// ConfigRepository stores the administrator-managed pool configuration: the
// scoring rules and the single pool_settings row.
type ConfigRepository interface {
	ListRules(ctx context.Context, exec SQLExecutor) ([]models.ScoringRule, error)
	ReplaceRules(ctx context.Context, exec SQLExecutor, rules []models.ScoringRule) error
	GetSettings(ctx context.Context) (*models.PoolSettings, error)
	SaveSettings(ctx context.Context, settings *models.PoolSettings) error
}

type postgresConfigRepository struct {
	db *sql.DB
}

func NewPostgresConfigRepository(db *sql.DB) ConfigRepository {
	return &postgresConfigRepository{db: db}
}

func (r *postgresConfigRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresConfigRepository) ListRules(ctx context.Context, exec SQLExecutor) ([]models.ScoringRule, error) {
	executor := r.getExecutor(exec)
	rows, err := executor.QueryContext(ctx, `SELECT id, category, label, points FROM scoring_rules ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list scoring rules: %w", err)
	}
	defer rows.Close()

	rules := make([]models.ScoringRule, 0)
	for rows.Next() {
		var rule models.ScoringRule
		if err := rows.Scan(&rule.ID, &rule.Category, &rule.Label, &rule.Points); err != nil {
			return nil, fmt.Errorf("failed to scan scoring rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}

// ReplaceRules swaps the whole rule set. Run it inside a transaction so
// readers never observe a half-written set.
func (r *postgresConfigRepository) ReplaceRules(ctx context.Context, exec SQLExecutor, rules []models.ScoringRule) error {
	executor := r.getExecutor(exec)
	if _, err := executor.ExecContext(ctx, `DELETE FROM scoring_rules`); err != nil {
		return fmt.Errorf("failed to clear scoring rules: %w", err)
	}
	if len(rules) == 0 {
		return nil
	}

	stmt, err := executor.PrepareContext(ctx, `INSERT INTO scoring_rules (id, category, label, points) VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return fmt.Errorf("failed to prepare scoring rule insert: %w", err)
	}
	defer stmt.Close()

	for _, rule := range rules {
		if _, err := stmt.ExecContext(ctx, rule.ID, rule.Category, rule.Label, rule.Points); err != nil {
			return fmt.Errorf("failed to insert scoring rule %q: %w", rule.ID, err)
		}
	}
	return nil
}

func (r *postgresConfigRepository) GetSettings(ctx context.Context) (*models.PoolSettings, error) {
	query := `
		SELECT ticket_price_cents, prize_first, prize_second, prize_third,
		       special_teams, special_phases, updated_at
		FROM pool_settings
		WHERE id = 1`

	var s models.PoolSettings
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.TicketPriceCents,
		&s.Prizes.First,
		&s.Prizes.Second,
		&s.Prizes.Third,
		pq.Array(&s.Multiplier.SpecialTeams),
		pq.Array(&s.Multiplier.SpecialPhases),
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPoolSettingsNotFound
		}
		return nil, fmt.Errorf("failed to load pool settings: %w", err)
	}
	return &s, nil
}

func (r *postgresConfigRepository) SaveSettings(ctx context.Context, s *models.PoolSettings) error {
	query := `
		INSERT INTO pool_settings
		    (id, ticket_price_cents, prize_first, prize_second, prize_third, special_teams, special_phases, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (id) DO UPDATE SET
			ticket_price_cents = EXCLUDED.ticket_price_cents,
			prize_first = EXCLUDED.prize_first,
			prize_second = EXCLUDED.prize_second,
			prize_third = EXCLUDED.prize_third,
			special_teams = EXCLUDED.special_teams,
			special_phases = EXCLUDED.special_phases,
			updated_at = NOW()
		RETURNING updated_at`

	return r.db.QueryRowContext(ctx, query,
		s.TicketPriceCents,
		s.Prizes.First,
		s.Prizes.Second,
		s.Prizes.Third,
		pq.Array(s.Multiplier.SpecialTeams),
		pq.Array(s.Multiplier.SpecialPhases),
	).Scan(&s.UpdatedAt)
}
