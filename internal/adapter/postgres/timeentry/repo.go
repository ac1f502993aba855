// Package timeentry implements the TimeEntry repository using PostgreSQL.
// Static queries are raw SQL constants; List and report range queries build
// dynamic WHERE clauses with squirrel.
//
// Pause periods are stored as an append-only JSONB array. Durations are never
// persisted; they are recomputed from start/end/pauses on read.
package timeentry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/hourglass-hq/hourglass-backend/internal/adapter/postgres"
	"github.com/hourglass-hq/hourglass-backend/internal/domain"
)

// Repo provides time entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new time entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const entryColumns = `id, user_id, project_id, task_id, description, start_time, end_time,
pause_periods, is_manual, activity_level, created_at, updated_at`

const insertSQL = `
INSERT INTO time_entries (` + entryColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

const getByIDSQL = `
SELECT ` + entryColumns + `
FROM time_entries
WHERE id = $1 AND user_id = $2`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

// The active slot: the single open non-manual entry for a user, if any.
// Enforced by the partial unique index time_entries_active_slot_idx.
const getActiveSQL = `
SELECT ` + entryColumns + `
FROM time_entries
WHERE user_id = $1 AND end_time IS NULL AND NOT is_manual`

const getActiveForUpdateSQL = getActiveSQL + `
FOR UPDATE`

const updateSQL = `
UPDATE time_entries
SET task_id = $2, description = $3, start_time = $4, end_time = $5,
    pause_periods = $6, activity_level = $7, updated_at = $8
WHERE id = $1`

// Create inserts a new time entry. The active-slot unique index rejects a
// second open live entry for the same user with domain.ErrConflict.
func (r *Repo) Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	periods, err := marshalPausePeriods(entry.PausePeriods)
	if err != nil {
		return nil, fmt.Errorf("time_entry %s: %w", entry.ID, err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry.CreatedAt = now
	entry.UpdatedAt = now

	_, err = querier.Exec(ctx, insertSQL,
		entry.ID, entry.UserID, entry.ProjectID, entry.TaskID, entry.Description,
		entry.StartTime, entry.EndTime, periods, entry.IsManual, entry.ActivityLevel,
		entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "time_entry", entry.ID)
	}

	return entry, nil
}

// GetByID returns the entry with the given id owned by userID.
// Returns domain.ErrNotFound if absent or owned by someone else.
func (r *Repo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.TimeEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)
	return r.scanOne(querier.QueryRow(ctx, getByIDSQL, entryID, userID), entryID)
}

// GetByIDForUpdate is GetByID with a row lock. Must run inside a transaction;
// it serializes concurrent transitions on the same entry.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, entryID uuid.UUID) (*domain.TimeEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)
	return r.scanOne(querier.QueryRow(ctx, getByIDForUpdateSQL, entryID, userID), entryID)
}

// GetActive returns the user's active (RUNNING or PAUSED) entry.
// Returns domain.ErrNotFound when the active slot is free.
func (r *Repo) GetActive(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)
	return r.scanOne(querier.QueryRow(ctx, getActiveSQL, userID), userID)
}

// GetActiveForUpdate is GetActive with a row lock. Must run inside a
// transaction; it serializes writers on the user's active slot.
func (r *Repo) GetActiveForUpdate(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)
	return r.scanOne(querier.QueryRow(ctx, getActiveForUpdateSQL, userID), userID)
}

// Update persists the entry's mutable fields. Immutable fields (user_id,
// project_id, is_manual) are never written after creation.
func (r *Repo) Update(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	periods, err := marshalPausePeriods(entry.PausePeriods)
	if err != nil {
		return nil, fmt.Errorf("time_entry %s: %w", entry.ID, err)
	}

	tag, err := querier.Exec(ctx, updateSQL,
		entry.ID, entry.TaskID, entry.Description, entry.StartTime, entry.EndTime,
		periods, entry.ActivityLevel, entry.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "time_entry", entry.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("time_entry %s: %w", entry.ID, domain.ErrNotFound)
	}

	return entry, nil
}

// List returns the user's entries matching the filter, newest first,
// plus the total count ignoring limit/offset.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) ([]*domain.TimeEntry, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{sq.Eq{"user_id": userID}}
	if !filter.From.IsZero() {
		where = append(where, sq.GtOrEq{"start_time": filter.From})
	}
	if !filter.To.IsZero() {
		where = append(where, sq.LtOrEq{"start_time": filter.To})
	}
	if filter.ProjectID != nil {
		where = append(where, sq.Eq{"project_id": *filter.ProjectID})
	}

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	countSQL, countArgs, err := builder.Select("count(*)").From("time_entries").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count time_entries: %w", err)
	}

	query := builder.Select(entryColumns).From("time_entries").Where(where).
		OrderBy("start_time DESC")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list time_entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.TimeEntry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate time_entries: %w", err)
	}

	return entries, total, nil
}

// ListClosed returns stopped entries whose start_time falls in the half-open
// range [From, To), ordered by user then start time. Used by report
// aggregation; the exclusive upper bound keeps an entry starting exactly at
// midnight out of the previous day's report. Open entries never appear.
func (r *Repo) ListClosed(ctx context.Context, filter domain.ClosedEntryFilter) ([]*domain.TimeEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{
		sq.NotEq{"end_time": nil},
		sq.GtOrEq{"start_time": filter.From},
		sq.Lt{"start_time": filter.To},
	}
	if len(filter.UserIDs) > 0 {
		where = append(where, sq.Eq{"user_id": filter.UserIDs})
	}

	sql, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(entryColumns).From("time_entries").Where(where).
		OrderBy("user_id", "start_time").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build closed query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list closed time_entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.TimeEntry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate closed time_entries: %w", err)
	}

	return entries, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func (r *Repo) scanOne(row interface{ Scan(dest ...any) error }, id uuid.UUID) (*domain.TimeEntry, error) {
	entry, err := scanEntry(row.Scan)
	if err != nil {
		return nil, postgres.MapError(err, "time_entry", id)
	}
	return entry, nil
}

func scanEntry(scan func(dest ...any) error) (*domain.TimeEntry, error) {
	var (
		entry   domain.TimeEntry
		endTime *time.Time
		periods []byte
	)

	err := scan(
		&entry.ID, &entry.UserID, &entry.ProjectID, &entry.TaskID, &entry.Description,
		&entry.StartTime, &endTime, &periods, &entry.IsManual, &entry.ActivityLevel,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.EndTime = endTime
	entry.PausePeriods, err = unmarshalPausePeriods(periods)
	if err != nil {
		return nil, fmt.Errorf("time_entry %s: %w", entry.ID, err)
	}

	return &entry, nil
}

func marshalPausePeriods(periods []domain.PausePeriod) ([]byte, error) {
	if periods == nil {
		periods = []domain.PausePeriod{}
	}
	data, err := json.Marshal(periods)
	if err != nil {
		return nil, fmt.Errorf("marshal pause_periods: %w", err)
	}
	return data, nil
}

func unmarshalPausePeriods(data []byte) ([]domain.PausePeriod, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var periods []domain.PausePeriod
	if err := json.Unmarshal(data, &periods); err != nil {
		return nil, fmt.Errorf("unmarshal pause_periods: %w", err)
	}
	if len(periods) == 0 {
		return nil, nil
	}
	return periods, nil
}
