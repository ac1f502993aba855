// Package tracking implements the time-entry lifecycle: starting, pausing,
// resuming, and stopping tracked work sessions, manual retroactive entries,
// and attachment of activity data.
//
// Every state-changing operation runs as one atomic unit: the active-slot or
// entry row is read under FOR UPDATE inside a transaction, the transition is
// decided, and the new state is written before commit. Concurrency across
// different users needs no coordination; the per-user active slot is the only
// shared-mutable boundary.
package tracking

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/hourglass-hq/hourglass-backend/internal/config"
	"github.com/hourglass-hq/hourglass-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error)
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.TimeEntry, error)
	GetByIDForUpdate(ctx context.Context, userID, entryID uuid.UUID) (*domain.TimeEntry, error)
	GetActive(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error)
	GetActiveForUpdate(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error)
	Update(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) ([]*domain.TimeEntry, int, error)
}

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	AddSecondsTracked(ctx context.Context, id uuid.UUID, seconds int64) error
}

type taskRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
}

type userRepo interface {
	TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error
}

type activityRepo interface {
	CreateSample(ctx context.Context, s *domain.ActivitySample) (*domain.ActivitySample, error)
	AvgLevelByEntry(ctx context.Context, entryID uuid.UUID) (int, int, error)
	ListSamplesByEntry(ctx context.Context, entryID uuid.UUID) ([]*domain.ActivitySample, error)
	CreateScreenshot(ctx context.Context, s *domain.Screenshot) (*domain.Screenshot, error)
	ListScreenshotsByEntry(ctx context.Context, entryID uuid.UUID) ([]*domain.Screenshot, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the time-entry lifecycle business logic.
type Service struct {
	entries  entryRepo
	projects projectRepo
	tasks    taskRepo
	users    userRepo
	activity activityRepo
	tx       txManager
	clock    clockwork.Clock
	log      *slog.Logger
	cfg      config.TrackingConfig
}

// NewService creates a new tracking service.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	projects projectRepo,
	tasks taskRepo,
	users userRepo,
	activity activityRepo,
	tx txManager,
	clock clockwork.Clock,
	cfg config.TrackingConfig,
) *Service {
	return &Service{
		entries:  entries,
		projects: projects,
		tasks:    tasks,
		users:    users,
		activity: activity,
		tx:       tx,
		clock:    clock,
		log:      logger.With("service", "tracking"),
		cfg:      cfg,
	}
}

// now returns the current instant in UTC truncated to microseconds, matching
// timestamptz precision so derived durations agree with persisted rows.
func (s *Service) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}

// checkProjectAndTask verifies the project exists and is active, and that the
// task (if given) exists and belongs to the project.
func (s *Service) checkProjectAndTask(ctx context.Context, projectID uuid.UUID, taskID *uuid.UUID) error {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.Status != domain.ProjectStatusActive {
		return domain.NewValidationError("project_id", "project is archived")
	}

	if taskID != nil {
		task, err := s.tasks.GetByID(ctx, *taskID)
		if err != nil {
			return err
		}
		if task.ProjectID != projectID {
			return domain.NewValidationError("task_id", "task belongs to a different project")
		}
	}

	return nil
}
