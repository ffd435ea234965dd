package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chatkarma/chatkarma/internal/domain"
)

// schemaStatements bootstrap the scores relation. CITEXT gives the item key
// case-insensitive uniqueness; the serial id preserves insertion order for
// stable leaderboard tie-breaking.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS citext`,
	`CREATE TABLE IF NOT EXISTS scores (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		item CITEXT UNIQUE NOT NULL,
		score INTEGER NOT NULL DEFAULT 0
	)`,
}

// ScoreRepo is the Postgres-backed score store.
type ScoreRepo struct {
	pool *pgxpool.Pool

	mu    sync.Mutex
	ready bool
}

// NewScoreRepo creates a score repository on the given pool. The schema is not
// touched until the first operation needs it.
func NewScoreRepo(pool *pgxpool.Pool) *ScoreRepo {
	return &ScoreRepo{pool: pool}
}

// ensureSchema creates the extension and table if absent. A failed bootstrap
// is retried on the next call rather than latched.
func (r *ScoreRepo) ensureSchema(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ready {
		return nil
	}

	for _, stmt := range schemaStatements {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to bootstrap scores schema: %w: %w", domain.ErrStorageUnavailable, err)
		}
	}

	r.ready = true
	return nil
}

// ApplyDelta adds the operation's delta to the item's score and returns the
// resulting total. The upsert is a single statement, so concurrent deltas to
// the same item interleave without lost updates, and the CITEXT unique key
// prevents duplicate rows for case-insensitive collisions.
func (r *ScoreRepo) ApplyDelta(ctx context.Context, item string, op domain.Operation) (int, error) {
	if err := r.ensureSchema(ctx); err != nil {
		return 0, err
	}

	var total int
	err := r.pool.QueryRow(ctx, `
		INSERT INTO scores (item, score) VALUES ($1, $2)
		ON CONFLICT (item) DO UPDATE SET score = scores.score + EXCLUDED.score
		RETURNING score
	`, item, op.Delta()).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to apply delta for %q: %w: %w", item, domain.ErrStorageUnavailable, err)
	}

	return total, nil
}

// TopScores returns at most limit records ordered by score descending, then by
// insertion order.
func (r *ScoreRepo) TopScores(ctx context.Context, limit int) ([]domain.ScoreRecord, error) {
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT item, score FROM scores
		ORDER BY score DESC, id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top scores: %w: %w", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var records []domain.ScoreRecord
	for rows.Next() {
		var rec domain.ScoreRecord
		if err := rows.Scan(&rec.Item, &rec.Score); err != nil {
			return nil, fmt.Errorf("failed to scan score record: %w: %w", domain.ErrStorageUnavailable, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read top scores: %w: %w", domain.ErrStorageUnavailable, err)
	}

	return records, nil
}
