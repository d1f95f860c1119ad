package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/prediction-pool/models"
)

var (
	ErrMatchNotFound   = errors.New("match not found")
	ErrMatchIDConflict = errors.New("match id conflict")
)

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id string) (*models.Match, error)
	List(ctx context.Context) ([]models.Match, error)
	// SetResult stores the official score. Passing nil for both sides clears it.
	SetResult(ctx context.Context, exec SQLExecutor, id string, scoreA, scoreB *int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const matchColumns = `id, team_a, team_b, group_label, match_date, venue, is_marquee, official_score_a, official_score_b`

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (id, team_a, team_b, group_label, match_date, venue, is_marquee)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		match.ID, match.TeamA, match.TeamB, match.Group, match.Date, match.Venue, match.IsMarquee,
	)
	if err != nil {
		if pqErr, ok := pqErrorCode(err); ok && pqErr.Code == pqUniqueViolation {
			return ErrMatchIDConflict
		}
		return err
	}
	return nil
}

func scanMatch(row rowScanner) (*models.Match, error) {
	var m models.Match
	var venue sql.NullString
	var scoreA, scoreB sql.NullInt64
	err := row.Scan(
		&m.ID, &m.TeamA, &m.TeamB, &m.Group, &m.Date, &venue, &m.IsMarquee, &scoreA, &scoreB,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match: %w", err)
	}
	if venue.Valid {
		m.Venue = &venue.String
	}
	m.OfficialScoreA = nullIntPtr(scoreA)
	m.OfficialScoreB = nullIntPtr(scoreB)
	return &m, nil
}

func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id string) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	return scanMatch(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresMatchRepository) List(ctx context.Context) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches ORDER BY match_date ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) SetResult(ctx context.Context, exec SQLExecutor, id string, scoreA, scoreB *int) error {
	executor := r.getExecutor(exec)
	query := `UPDATE matches SET official_score_a = $1, official_score_b = $2 WHERE id = $3`
	result, err := executor.ExecContext(ctx, query, scoreA, scoreB, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}
