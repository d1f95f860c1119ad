package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var ErrExtraBetUserInvalid = errors.New("extra bet user conflict or invalid")

type ExtraBetRepository interface {
	ListByUser(ctx context.Context, username string) (map[string]string, error)
	// Save upserts every non-empty value and deletes the slugs whose value is
	// empty.
	Save(ctx context.Context, exec SQLExecutor, username string, values map[string]string) error
}

type postgresExtraBetRepository struct {
	db *sql.DB
}

func NewPostgresExtraBetRepository(db *sql.DB) ExtraBetRepository {
	return &postgresExtraBetRepository{db: db}
}

func (r *postgresExtraBetRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresExtraBetRepository) ListByUser(ctx context.Context, username string) (map[string]string, error) {
	query := `SELECT slug, value FROM extra_bets WHERE username = $1`

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query extra bets: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var slug, value string
		if err := rows.Scan(&slug, &value); err != nil {
			return nil, fmt.Errorf("failed to scan extra bet: %w", err)
		}
		values[slug] = value
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func (r *postgresExtraBetRepository) Save(ctx context.Context, exec SQLExecutor, username string, values map[string]string) error {
	executor := r.getExecutor(exec)

	upsert := `
		INSERT INTO extra_bets (username, slug, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (username, slug)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	remove := `DELETE FROM extra_bets WHERE username = $1 AND slug = $2`

	for slug, value := range values {
		var err error
		if value == "" {
			_, err = executor.ExecContext(ctx, remove, username, slug)
		} else {
			_, err = executor.ExecContext(ctx, upsert, username, slug, value)
		}
		if err != nil {
			if pqErr, ok := pqErrorCode(err); ok && pqErr.Code == pqForeignKeyViolation {
				return ErrExtraBetUserInvalid
			}
			return fmt.Errorf("failed to save extra bet %q: %w", slug, err)
		}
	}
	return nil
}
