package tracking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hourglass-hq/hourglass-backend/internal/domain"
)

const maxDescriptionLen = 500

// StartInput carries the parameters for starting live tracking.
type StartInput struct {
	ProjectID   uuid.UUID
	TaskID      *uuid.UUID
	Description string
}

// Validate checks structural validity of the input.
func (in *StartInput) Validate() error {
	var errs []domain.FieldError

	if in.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if in.TaskID != nil && *in.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "must be a valid id when set"})
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

// ManualInput carries the parameters for a retroactive entry.
type ManualInput struct {
	ProjectID   uuid.UUID
	TaskID      *uuid.UUID
	StartTime   time.Time
	EndTime     time.Time
	Description string
}

// Validate checks structural validity; maxSpan bounds the entry length.
func (in *ManualInput) Validate(maxSpan time.Duration) error {
	var errs []domain.FieldError

	if in.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if in.TaskID != nil && *in.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "must be a valid id when set"})
	}
	if in.StartTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_time", Message: "required"})
	}
	if in.EndTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end_time", Message: "required"})
	}
	if !in.StartTime.IsZero() && !in.EndTime.IsZero() {
		if !in.EndTime.After(in.StartTime) {
			errs = append(errs, domain.FieldError{Field: "end_time", Message: "must be after start_time"})
		} else if in.EndTime.Sub(in.StartTime) > maxSpan {
			errs = append(errs, domain.FieldError{Field: "end_time", Message: "entry exceeds maximum span"})
		}
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

// UpdateInput carries a partial edit of an existing entry. Nil fields are
// left unchanged. ClearTask removes the task reference; it wins over TaskID.
// Time edits are only legal on stopped entries.
type UpdateInput struct {
	Description *string
	TaskID      *uuid.UUID
	ClearTask   bool
	StartTime   *time.Time
	EndTime     *time.Time
}

// Validate checks structural validity of the edit.
func (in *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if in.TaskID != nil && *in.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "must be a valid id when set"})
	}
	if in.Description != nil {
		trimmed := strings.TrimSpace(*in.Description)
		in.Description = &trimmed
		if len(trimmed) > maxDescriptionLen {
			errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ActivityInput carries one activity sample from the desktop tracker.
type ActivityInput struct {
	EntryID    uuid.UUID
	Level      int
	MouseCount int
	KeyCount   int
}

// Validate checks structural validity of the sample.
func (in *ActivityInput) Validate() error {
	var errs []domain.FieldError

	if in.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if in.Level < 0 || in.Level > 100 {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be in [0,100]"})
	}
	if in.MouseCount < 0 {
		errs = append(errs, domain.FieldError{Field: "mouse_count", Message: "must be >= 0"})
	}
	if in.KeyCount < 0 {
		errs = append(errs, domain.FieldError{Field: "key_count", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ScreenshotInput carries a screenshot reference captured by the tracker.
type ScreenshotInput struct {
	EntryID uuid.UUID
	URL     string
}

// Validate checks structural validity of the reference.
func (in *ScreenshotInput) Validate() error {
	var errs []domain.FieldError

	if in.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	in.URL = strings.TrimSpace(in.URL)
	if in.URL == "" {
		errs = append(errs, domain.FieldError{Field: "url", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
