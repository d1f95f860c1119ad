package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Dosada05/prediction-pool/models"
)

type LeaderboardHistoryRepository interface {
	// AppendRound records the rows as the next round and returns its number.
	// The table lock it takes is held until exec's transaction ends.
	AppendRound(ctx context.Context, exec SQLExecutor, entries []models.HistoryEntry) (int, error)
	// Recent returns up to depth latest rows per participant, newest first.
	Recent(ctx context.Context, exec SQLExecutor, depth int) ([]models.HistoryEntry, error)
	ListByUser(ctx context.Context, username string) ([]models.HistoryEntry, error)
}

type postgresLeaderboardHistoryRepository struct {
	db *sql.DB
}

func NewPostgresLeaderboardHistoryRepository(db *sql.DB) LeaderboardHistoryRepository {
	return &postgresLeaderboardHistoryRepository{db: db}
}

func (r *postgresLeaderboardHistoryRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresLeaderboardHistoryRepository) AppendRound(ctx context.Context, exec SQLExecutor, entries []models.HistoryEntry) (int, error) {
	executor := r.getExecutor(exec)
	if _, err := executor.ExecContext(ctx, `LOCK TABLE leaderboard_history IN EXCLUSIVE MODE`); err != nil {
		return 0, fmt.Errorf("failed to lock leaderboard history: %w", err)
	}

	var round int
	err := executor.QueryRowContext(ctx, `SELECT COALESCE(MAX(round), 0) + 1 FROM leaderboard_history`).Scan(&round)
	if err != nil {
		return 0, fmt.Errorf("failed to read next round: %w", err)
	}
	if len(entries) == 0 {
		return round, nil
	}

	stmt, err := executor.PrepareContext(ctx, `
		INSERT INTO leaderboard_history (username, round, position, points, exact_scores, marquee_points, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare leaderboard history insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for i := range entries {
		e := &entries[i]
		e.Round = round
		if e.RecordedAt.IsZero() {
			e.RecordedAt = now
		}
		if _, err := stmt.ExecContext(ctx, e.ParticipantID, e.Round, e.Position, e.Points, e.ExactScores, e.MarqueePoints, e.RecordedAt); err != nil {
			return 0, fmt.Errorf("failed to insert history for %q: %w", e.ParticipantID, err)
		}
	}
	return round, nil
}

func (r *postgresLeaderboardHistoryRepository) Recent(ctx context.Context, exec SQLExecutor, depth int) ([]models.HistoryEntry, error) {
	query := `
		SELECT username, round, position, points, exact_scores, marquee_points, recorded_at
		FROM (
			SELECT h.*, ROW_NUMBER() OVER (PARTITION BY username ORDER BY round DESC) AS rn
			FROM leaderboard_history h
		) ranked
		WHERE rn <= $1
		ORDER BY username ASC, round DESC`
	return r.collect(ctx, r.getExecutor(exec), query, depth)
}

func (r *postgresLeaderboardHistoryRepository) ListByUser(ctx context.Context, username string) ([]models.HistoryEntry, error) {
	query := `
		SELECT username, round, position, points, exact_scores, marquee_points, recorded_at
		FROM leaderboard_history
		WHERE username = $1
		ORDER BY round ASC`
	return r.collect(ctx, r.db, query, username)
}

func (r *postgresLeaderboardHistoryRepository) collect(ctx context.Context, executor SQLExecutor, query string, args ...interface{}) ([]models.HistoryEntry, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard history: %w", err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0)
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.ParticipantID, &e.Round, &e.Position, &e.Points, &e.ExactScores, &e.MarqueePoints, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard history: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
