package tracking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hourglass-hq/hourglass-backend/internal/domain"
	"github.com/hourglass-hq/hourglass-backend/pkg/ctxutil"
)

// Get returns one of the user's entries by id.
func (s *Service) Get(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.entries.GetByID(ctx, userID, entryID)
}

// Active returns the user's currently RUNNING or PAUSED entry, or nil when
// nothing is being tracked.
func (s *Service) Active(ctx context.Context) (*domain.TimeEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.entries.GetActive(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns the user's entries matching the filter, newest first, along
// with the total match count. Limit is clamped to the configured maximum and
// defaulted when unset.
func (s *Service) List(ctx context.Context, filter domain.EntryFilter) ([]*domain.TimeEntry, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if filter.Limit <= 0 {
		filter.Limit = s.cfg.ListDefaultSize
	}
	if filter.Limit > s.cfg.ListMaxSize {
		filter.Limit = s.cfg.ListMaxSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return nil, 0, domain.NewValidationError("to", "must not be before from")
	}

	return s.entries.List(ctx, userID, filter)
}

// Update applies a partial edit to one of the user's entries. Description and
// task can change in any state; start and end times can only be edited on a
// STOPPED entry, and the edited entry must still satisfy every structural
// invariant. When the duration of a stopped entry changes, the project's
// tracked seconds counter is adjusted by the delta.
func (s *Service) Update(ctx context.Context, entryID uuid.UUID, in UpdateInput) (*domain.TimeEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	var entry *domain.TimeEntry
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		e, err := s.entries.GetByIDForUpdate(ctx, userID, entryID)
		if err != nil {
			return err
		}

		if (in.StartTime != nil || in.EndTime != nil) && e.State() != domain.EntryStateStopped {
			return domain.NewInvalidStateError("edit times of", e.State())
		}

		var before int64
		if e.EndTime != nil {
			before = e.DurationSecondsAt(*e.EndTime)
		}

		if in.Description != nil {
			e.Description = *in.Description
		}
		switch {
		case in.ClearTask:
			e.TaskID = nil
		case in.TaskID != nil:
			task, err := s.tasks.GetByID(ctx, *in.TaskID)
			if err != nil {
				return err
			}
			if task.ProjectID != e.ProjectID {
				return domain.NewValidationError("task_id", "task belongs to a different project")
			}
			e.TaskID = in.TaskID
		}
		if in.StartTime != nil {
			e.StartTime = in.StartTime.UTC()
		}
		if in.EndTime != nil {
			end := in.EndTime.UTC()
			e.EndTime = &end
		}

		if err := e.Validate(); err != nil {
			return err
		}

		entry, err = s.entries.Update(ctx, e)
		if err != nil {
			return fmt.Errorf("update entry: %w", err)
		}

		if entry.EndTime != nil {
			if delta := entry.DurationSecondsAt(*entry.EndTime) - before; delta != 0 {
				if err := s.projects.AddSecondsTracked(ctx, entry.ProjectID, delta); err != nil {
					return fmt.Errorf("adjust project seconds: %w", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entry updated", "entry_id", entryID, "user_id", userID)
	return entry, nil
}
