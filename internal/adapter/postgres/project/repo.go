// Package project implements the Project and Task repositories using PostgreSQL.
package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/hourglass-hq/hourglass-backend/internal/adapter/postgres"
	"github.com/hourglass-hq/hourglass-backend/internal/domain"
)

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const projectColumns = `id, name, description, status, seconds_tracked, created_at, updated_at`

const insertSQL = `
INSERT INTO projects (` + projectColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const getByIDSQL = `
SELECT ` + projectColumns + `
FROM projects
WHERE id = $1`

const getByIDsSQL = `
SELECT ` + projectColumns + `
FROM projects
WHERE id = ANY($1::uuid[])`

const listSQL = `
SELECT ` + projectColumns + `
FROM projects
ORDER BY name`

const updateSQL = `
UPDATE projects
SET name = $2, description = $3, status = $4
WHERE id = $1`

// addSecondsSQL keeps the denormalized running total in step with stopped
// entries. Runs in the same transaction as the entry mutation.
const addSecondsSQL = `
UPDATE projects
SET seconds_tracked = seconds_tracked + $2
WHERE id = $1`

// Create inserts a new project.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := querier.Exec(ctx, insertSQL,
		p.ID, p.Name, p.Description, p.Status, p.SecondsTracked, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	return p, nil
}

// GetByID returns the project with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(querier.QueryRow(ctx, getByIDSQL, id).Scan)
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return p, nil
}

// GetByIDs returns projects for the given ids keyed by id. Missing ids are
// simply absent from the map.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Project, error) {
	result := make(map[uuid.UUID]*domain.Project, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get projects by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		result[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return result, nil
}

// List returns all projects ordered by name.
func (r *Repo) List(ctx context.Context) ([]*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return projects, nil
}

// Update writes the project's mutable fields.
func (r *Repo) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateSQL, p.ID, p.Name, p.Description, p.Status)
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("project %s: %w", p.ID, domain.ErrNotFound)
	}
	return p, nil
}

// AddSecondsTracked increments the project's denormalized tracked total.
func (r *Repo) AddSecondsTracked(ctx context.Context, id uuid.UUID, seconds int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, addSecondsSQL, id, seconds)
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanProject(scan func(dest ...any) error) (*domain.Project, error) {
	var p domain.Project
	err := scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.SecondsTracked, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
