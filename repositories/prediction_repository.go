package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/prediction-pool/models"
)

var (
	ErrPredictionUserInvalid = errors.New("prediction user conflict or invalid")
	ErrPredictionClosed      = errors.New("match is unknown or closed for predictions")
)

type PredictionRepository interface {
	// Upsert stores the prediction only while the match has no official
	// result and kicks off after the given instant; otherwise it returns
	// ErrPredictionClosed.
	Upsert(ctx context.Context, username, matchID string, score models.PartialScore, before time.Time) error
	ListByUser(ctx context.Context, username string) (map[string]models.PartialScore, error)
	ListAll(ctx context.Context) (models.Predictions, error)
}

type postgresPredictionRepository struct {
	db *sql.DB
}

func NewPostgresPredictionRepository(db *sql.DB) PredictionRepository {
	return &postgresPredictionRepository{db: db}
}

func (r *postgresPredictionRepository) Upsert(ctx context.Context, username, matchID string, score models.PartialScore, before time.Time) error {
	query := `
		INSERT INTO predictions (username, match_id, score_a, score_b, updated_at)
		SELECT $1::text, m.id, $3::integer, $4::integer, NOW()
		FROM matches m
		WHERE m.id = $2
		  AND m.official_score_a IS NULL
		  AND m.official_score_b IS NULL
		  AND m.match_date > $5
		FOR SHARE OF m
		ON CONFLICT (username, match_id)
		DO UPDATE SET score_a = EXCLUDED.score_a, score_b = EXCLUDED.score_b, updated_at = NOW()`

	result, err := r.db.ExecContext(ctx, query, username, matchID, score.A, score.B, before)
	if err != nil {
		if pqErr, ok := pqErrorCode(err); ok && pqErr.Code == pqForeignKeyViolation && pqErr.Constraint == "predictions_username_fkey" {
			return ErrPredictionUserInvalid
		}
		return err
	}
	return checkAffectedRows(result, ErrPredictionClosed)
}

func (r *postgresPredictionRepository) ListByUser(ctx context.Context, username string) (map[string]models.PartialScore, error) {
	query := `SELECT username, match_id, score_a, score_b FROM predictions WHERE username = $1`
	all, err := r.collect(ctx, query, username)
	if err != nil {
		return nil, err
	}
	if bets, ok := all[username]; ok {
		return bets, nil
	}
	return map[string]models.PartialScore{}, nil
}

func (r *postgresPredictionRepository) ListAll(ctx context.Context) (models.Predictions, error) {
	query := `SELECT username, match_id, score_a, score_b FROM predictions`
	return r.collect(ctx, query)
}

func (r *postgresPredictionRepository) collect(ctx context.Context, query string, args ...interface{}) (models.Predictions, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	preds := make(models.Predictions)
	for rows.Next() {
		var username, matchID string
		var scoreA, scoreB sql.NullInt64
		if err := rows.Scan(&username, &matchID, &scoreA, &scoreB); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		bets, ok := preds[username]
		if !ok {
			bets = make(map[string]models.PartialScore)
			preds[username] = bets
		}
		bets[matchID] = models.PartialScore{A: nullIntPtr(scoreA), B: nullIntPtr(scoreB)}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return preds, nil
}
