package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hourglass-hq/hourglass-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the USER role. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		Role:         domain.UserRoleUser,
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtestha",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, role, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, string(user.Role), user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedProject creates an active project. Returns a filled domain.Project.
func SeedProject(t *testing.T, pool *pgxpool.Pool) domain.Project {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	project := domain.Project{
		ID:          uuid.New(),
		Name:        "Project " + suffix,
		Description: "seeded project",
		Status:      domain.ProjectStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO projects (id, name, description, status, seconds_tracked, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, 0, $5, $6)`,
		project.ID, project.Name, project.Description, string(project.Status), project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject insert project: %v", err)
	}

	return project
}

// SeedTask creates an open task under the given project.
func SeedTask(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID) domain.Task {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	task := domain.Task{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      "Task " + suffix,
		Status:    domain.TaskStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tasks (id, project_id, name, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		task.ID, task.ProjectID, task.Name, string(task.Status), task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask insert task: %v", err)
	}

	return task
}

// SeedStoppedEntry creates a closed manual time entry spanning [start, end).
func SeedStoppedEntry(t *testing.T, pool *pgxpool.Pool, userID, projectID uuid.UUID, start, end time.Time) domain.TimeEntry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.TimeEntry{
		ID:        uuid.New(),
		UserID:    userID,
		ProjectID: projectID,
		StartTime: start,
		EndTime:   &end,
		IsManual:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO time_entries (id, user_id, project_id, description, start_time, end_time, pause_periods, is_manual, created_at, updated_at)
		 VALUES ($1, $2, $3, '', $4, $5, '[]'::jsonb, true, $6, $7)`,
		entry.ID, entry.UserID, entry.ProjectID, entry.StartTime, entry.EndTime, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStoppedEntry insert: %v", err)
	}

	return entry
}
