// Package activity implements the ActivitySample and Screenshot repositories
// using PostgreSQL. Both are attachment tables: rows reference a time entry
// but never modify it.
package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/hourglass-hq/hourglass-backend/internal/adapter/postgres"
	"github.com/hourglass-hq/hourglass-backend/internal/domain"
)

// Repo provides activity sample and screenshot persistence.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSampleSQL = `
INSERT INTO activity_samples (id, entry_id, user_id, level, mouse_count, key_count, recorded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const avgLevelSQL = `
SELECT coalesce(round(avg(level)), 0)::int, count(*)
FROM activity_samples
WHERE entry_id = $1`

const listSamplesSQL = `
SELECT id, entry_id, user_id, level, mouse_count, key_count, recorded_at
FROM activity_samples
WHERE entry_id = $1
ORDER BY recorded_at`

const insertScreenshotSQL = `
INSERT INTO screenshots (id, entry_id, user_id, url, captured_at)
VALUES ($1, $2, $3, $4, $5)`

const listScreenshotsSQL = `
SELECT id, entry_id, user_id, url, captured_at
FROM screenshots
WHERE entry_id = $1
ORDER BY captured_at`

// CreateSample inserts an activity sample for an entry.
func (r *Repo) CreateSample(ctx context.Context, s *domain.ActivitySample) (*domain.ActivitySample, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, insertSampleSQL,
		s.ID, s.EntryID, s.UserID, s.Level, s.MouseCount, s.KeyCount, s.RecordedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "activity_sample", s.ID)
	}
	return s, nil
}

// AvgLevelByEntry returns the rounded average activity level across the
// entry's samples and the sample count. Zero average with zero count means
// no samples yet.
func (r *Repo) AvgLevelByEntry(ctx context.Context, entryID uuid.UUID) (int, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var avg, count int
	if err := querier.QueryRow(ctx, avgLevelSQL, entryID).Scan(&avg, &count); err != nil {
		return 0, 0, fmt.Errorf("avg activity level: %w", err)
	}
	return avg, count, nil
}

// ListSamplesByEntry returns the entry's samples in recording order.
func (r *Repo) ListSamplesByEntry(ctx context.Context, entryID uuid.UUID) ([]*domain.ActivitySample, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSamplesSQL, entryID)
	if err != nil {
		return nil, fmt.Errorf("list activity samples: %w", err)
	}
	defer rows.Close()

	var samples []*domain.ActivitySample
	for rows.Next() {
		var s domain.ActivitySample
		if err := rows.Scan(&s.ID, &s.EntryID, &s.UserID, &s.Level, &s.MouseCount, &s.KeyCount, &s.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan activity sample: %w", err)
		}
		samples = append(samples, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity samples: %w", err)
	}

	return samples, nil
}

// CreateScreenshot inserts a screenshot reference for an entry.
func (r *Repo) CreateScreenshot(ctx context.Context, s *domain.Screenshot) (*domain.Screenshot, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, insertScreenshotSQL,
		s.ID, s.EntryID, s.UserID, s.URL, s.CapturedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "screenshot", s.ID)
	}
	return s, nil
}

// ListScreenshotsByEntry returns the entry's screenshots in capture order.
func (r *Repo) ListScreenshotsByEntry(ctx context.Context, entryID uuid.UUID) ([]*domain.Screenshot, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listScreenshotsSQL, entryID)
	if err != nil {
		return nil, fmt.Errorf("list screenshots: %w", err)
	}
	defer rows.Close()

	var shots []*domain.Screenshot
	for rows.Next() {
		var s domain.Screenshot
		if err := rows.Scan(&s.ID, &s.EntryID, &s.UserID, &s.URL, &s.CapturedAt); err != nil {
			return nil, fmt.Errorf("scan screenshot: %w", err)
		}
		shots = append(shots, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate screenshots: %w", err)
	}

	return shots, nil
}
