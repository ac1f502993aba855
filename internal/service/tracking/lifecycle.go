package tracking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hourglass-hq/hourglass-backend/internal/domain"
	"github.com/hourglass-hq/hourglass-backend/pkg/ctxutil"
)

// Start opens a new RUNNING entry for the authenticated user. At most one
// active entry exists per user: the active slot is checked under FOR UPDATE
// and a partial unique index backstops the invariant at the storage level.
func (s *Service) Start(ctx context.Context, in StartInput) (*domain.TimeEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	startedAt := s.now()

	var entry *domain.TimeEntry
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.checkProjectAndTask(ctx, in.ProjectID, in.TaskID); err != nil {
			return err
		}

		active, err := s.entries.GetActiveForUpdate(ctx, userID)
		if err == nil {
			return fmt.Errorf("%w: an entry is already active (id=%s)", domain.ErrConflict, active.ID)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check active slot: %w", err)
		}

		entry, err = s.entries.Create(ctx, &domain.TimeEntry{
			ID:          uuid.New(),
			UserID:      userID,
			ProjectID:   in.ProjectID,
			TaskID:      in.TaskID,
			Description: in.Description,
			StartTime:   startedAt,
		})
		if err != nil {
			return fmt.Errorf("create entry: %w", err)
		}

		if err := s.users.TouchLastActive(ctx, userID, startedAt); err != nil {
			return fmt.Errorf("touch last active: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tracking started",
		"entry_id", entry.ID,
		"user_id", userID,
		"project_id", in.ProjectID,
	)
	return entry, nil
}

// Pause suspends a RUNNING entry by appending an open pause period.
// Pausing an entry in any other state fails with an InvalidStateError.
func (s *Service) Pause(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	pausedAt := s.now()

	var entry *domain.TimeEntry
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		e, err := s.entries.GetByIDForUpdate(ctx, userID, entryID)
		if err != nil {
			return err
		}
		if st := e.State(); st != domain.EntryStateRunning {
			return domain.NewInvalidStateError("pause", st)
		}

		e.PausePeriods = append(e.PausePeriods, domain.PausePeriod{StartedAt: pausedAt})

		entry, err = s.entries.Update(ctx, e)
		if err != nil {
			return fmt.Errorf("update entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tracking paused", "entry_id", entryID, "user_id", userID)
	return entry, nil
}

// Resume closes the open pause period of a PAUSED entry, returning it to
// RUNNING. Resuming an entry in any other state fails with an
// InvalidStateError.
func (s *Service) Resume(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	resumedAt := s.now()

	var entry *domain.TimeEntry
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		e, err := s.entries.GetByIDForUpdate(ctx, userID, entryID)
		if err != nil {
			return err
		}
		if st := e.State(); st != domain.EntryStatePaused {
			return domain.NewInvalidStateError("resume", st)
		}

		e.PausePeriods[e.OpenPause()].EndedAt = &resumedAt

		entry, err = s.entries.Update(ctx, e)
		if err != nil {
			return fmt.Errorf("update entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tracking resumed", "entry_id", entryID, "user_id", userID)
	return entry, nil
}

// Stop finalizes an entry. A RUNNING or PAUSED entry gets its end time set
// (an open pause is closed at the same instant) and the project's tracked
// seconds counter is bumped. Stopping an already STOPPED entry is a no-op:
// the entry is returned unchanged, so retries of a stop request are safe.
func (s *Service) Stop(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stoppedAt := s.now()

	var entry *domain.TimeEntry
	var alreadyStopped bool
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		e, err := s.entries.GetByIDForUpdate(ctx, userID, entryID)
		if err != nil {
			return err
		}
		if e.State() == domain.EntryStateStopped {
			entry, alreadyStopped = e, true
			return nil
		}

		if i := e.OpenPause(); i >= 0 {
			e.PausePeriods[i].EndedAt = &stoppedAt
		}
		e.EndTime = &stoppedAt

		entry, err = s.entries.Update(ctx, e)
		if err != nil {
			return fmt.Errorf("update entry: %w", err)
		}

		seconds := entry.DurationSecondsAt(stoppedAt)
		if err := s.projects.AddSecondsTracked(ctx, entry.ProjectID, seconds); err != nil {
			return fmt.Errorf("add project seconds: %w", err)
		}
		if err := s.users.TouchLastActive(ctx, userID, stoppedAt); err != nil {
			return fmt.Errorf("touch last active: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if alreadyStopped {
		s.log.DebugContext(ctx, "stop on stopped entry", "entry_id", entryID, "user_id", userID)
		return entry, nil
	}

	s.log.InfoContext(ctx, "tracking stopped",
		"entry_id", entryID,
		"user_id", userID,
		"duration_seconds", entry.DurationSecondsAt(stoppedAt),
	)
	return entry, nil
}
