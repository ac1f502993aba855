// Package project implements project and task management.
//
// Creating, updating, and archiving projects and tasks is restricted to
// managers and admins; reading is open to any authenticated user.
package project

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hourglass-hq/hourglass-backend/internal/domain"
	"github.com/hourglass-hq/hourglass-backend/pkg/ctxutil"
)

type projectRepo interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
}

type taskRepo interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements project and task management.
type Service struct {
	projects projectRepo
	tasks    taskRepo
	log      *slog.Logger
}

// NewService creates a new project service.
func NewService(logger *slog.Logger, projects projectRepo, tasks taskRepo) *Service {
	return &Service{
		projects: projects,
		tasks:    tasks,
		log:      logger.With("service", "project"),
	}
}

func requireManager(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	role := domain.UserRole(ctxutil.UserRoleFromCtx(ctx))
	if !role.CanManageProjects() {
		return domain.ErrForbidden
	}
	return nil
}

// CreateProject creates an active project.
func (s *Service) CreateProject(ctx context.Context, in ProjectInput) (*domain.Project, error) {
	if err := requireManager(ctx); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	project, err := s.projects.Create(ctx, &domain.Project{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		Status:      domain.ProjectStatusActive,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "project created", "project_id", project.ID, "name", project.Name)
	return project, nil
}

// GetProject returns a project by id.
func (s *Service) GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.projects.GetByID(ctx, id)
}

// ListProjects returns all projects.
func (s *Service) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.projects.List(ctx)
}

// UpdateProject applies a partial edit to a project.
func (s *Service) UpdateProject(ctx context.Context, id uuid.UUID, in ProjectUpdateInput) (*domain.Project, error) {
	if err := requireManager(ctx); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Status != nil {
		project.Status = *in.Status
	}

	project, err = s.projects.Update(ctx, project)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "project updated", "project_id", id)
	return project, nil
}

// ArchiveProject marks a project archived. Archived projects reject new time
// entries but keep their history.
func (s *Service) ArchiveProject(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	archived := domain.ProjectStatusArchived
	return s.UpdateProject(ctx, id, ProjectUpdateInput{Status: &archived})
}

// CreateTask creates an open task within a project.
func (s *Service) CreateTask(ctx context.Context, in TaskInput) (*domain.Task, error) {
	if err := requireManager(ctx); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	project, err := s.projects.GetByID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.Status != domain.ProjectStatusActive {
		return nil, domain.NewValidationError("project_id", "project is archived")
	}

	task, err := s.tasks.Create(ctx, &domain.Task{
		ID:        uuid.New(),
		ProjectID: in.ProjectID,
		Name:      in.Name,
		Status:    domain.TaskStatusOpen,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "task created", "task_id", task.ID, "project_id", in.ProjectID)
	return task, nil
}

// ListTasks returns the tasks of a project.
func (s *Service) ListTasks(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.tasks.ListByProject(ctx, projectID)
}

// UpdateTask applies a partial edit to a task.
func (s *Service) UpdateTask(ctx context.Context, id uuid.UUID, in TaskUpdateInput) (*domain.Task, error) {
	if err := requireManager(ctx); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		task.Name = *in.Name
	}
	if in.Status != nil {
		task.Status = *in.Status
	}

	task, err = s.tasks.Update(ctx, task)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "task updated", "task_id", id)
	return task, nil
}

// DeleteTask removes a task. Time entries referencing it keep their history
// with the task reference cleared by the storage layer.
func (s *Service) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := requireManager(ctx); err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "task deleted", "task_id", id)
	return nil
}
