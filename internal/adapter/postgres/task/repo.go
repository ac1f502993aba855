// Package task implements the Task repository using PostgreSQL.
package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/hourglass-hq/hourglass-backend/internal/adapter/postgres"
	"github.com/hourglass-hq/hourglass-backend/internal/domain"
)

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new task repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const taskColumns = `id, project_id, name, status, created_at, updated_at`

const insertSQL = `
INSERT INTO tasks (` + taskColumns + `)
VALUES ($1, $2, $3, $4, $5, $6)`

const getByIDSQL = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = $1`

const listByProjectSQL = `
SELECT ` + taskColumns + `
FROM tasks
WHERE project_id = $1
ORDER BY created_at`

const updateSQL = `
UPDATE tasks
SET name = $2, status = $3
WHERE id = $1`

// Deleting a task clears task_id on its entries via ON DELETE SET NULL;
// the entries themselves stay valid.
const deleteSQL = `DELETE FROM tasks WHERE id = $1`

// Create inserts a new task.
func (r *Repo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := querier.Exec(ctx, insertSQL,
		t.ID, t.ProjectID, t.Name, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "task", t.ID)
	}
	return t, nil
}

// GetByID returns the task with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTask(querier.QueryRow(ctx, getByIDSQL, id).Scan)
	if err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return t, nil
}

// ListByProject returns the project's tasks ordered by creation.
func (r *Repo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByProjectSQL, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}

// Update writes the task's mutable fields.
func (r *Repo) Update(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateSQL, t.ID, t.Name, t.Status)
	if err != nil {
		return nil, postgres.MapError(err, "task", t.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("task %s: %w", t.ID, domain.ErrNotFound)
	}
	return t, nil
}

// Delete removes the task. Entries referencing it keep running with their
// task reference cleared.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "task", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanTask(scan func(dest ...any) error) (*domain.Task, error) {
	var t domain.Task
	err := scan(&t.ID, &t.ProjectID, &t.Name, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
