package project

import (
	"strings"

	"github.com/google/uuid"

	"github.com/hourglass-hq/hourglass-backend/internal/domain"
)

const (
	maxNameLen        = 200
	maxDescriptionLen = 1000
)

// ProjectInput carries the parameters for creating a project.
type ProjectInput struct {
	Name        string
	Description string
}

// Validate checks structural validity of the input.
func (in *ProjectInput) Validate() error {
	var errs []domain.FieldError

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(in.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	in.Description = strings.TrimSpace(in.Description)
	if len(in.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ProjectUpdateInput carries a partial edit of a project. Nil fields are left
// unchanged.
type ProjectUpdateInput struct {
	Name        *string
	Description *string
	Status      *domain.ProjectStatus
}

// Validate checks structural validity of the edit.
func (in *ProjectUpdateInput) Validate() error {
	var errs []domain.FieldError

	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		in.Name = &trimmed
		if trimmed == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if len(trimmed) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}
	if in.Description != nil && len(*in.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if in.Status != nil && !in.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// TaskInput carries the parameters for creating a task.
type TaskInput struct {
	ProjectID uuid.UUID
	Name      string
}

// Validate checks structural validity of the input.
func (in *TaskInput) Validate() error {
	var errs []domain.FieldError

	if in.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(in.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// TaskUpdateInput carries a partial edit of a task. Nil fields are left
// unchanged.
type TaskUpdateInput struct {
	Name   *string
	Status *domain.TaskStatus
}

// Validate checks structural validity of the edit.
func (in *TaskUpdateInput) Validate() error {
	var errs []domain.FieldError

	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		in.Name = &trimmed
		if trimmed == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if len(trimmed) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}
	if in.Status != nil && !in.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
