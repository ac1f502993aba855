package tracking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hourglass-hq/hourglass-backend/internal/domain"
	"github.com/hourglass-hq/hourglass-backend/pkg/ctxutil"
)

// CreateManual records a retroactive entry. Manual entries are born STOPPED
// with both bounds supplied by the caller, never occupy the active slot, and
// never carry pause periods. The time window may overlap other entries.
func (s *Service) CreateManual(ctx context.Context, in ManualInput) (*domain.TimeEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := in.Validate(s.cfg.MaxManualEntry); err != nil {
		return nil, err
	}

	start := in.StartTime.UTC()
	end := in.EndTime.UTC()
	if end.After(s.now()) {
		return nil, domain.NewValidationError("end_time", "must not be in the future")
	}

	var entry *domain.TimeEntry
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.checkProjectAndTask(ctx, in.ProjectID, in.TaskID); err != nil {
			return err
		}

		var err error
		entry, err = s.entries.Create(ctx, &domain.TimeEntry{
			ID:          uuid.New(),
			UserID:      userID,
			ProjectID:   in.ProjectID,
			TaskID:      in.TaskID,
			Description: in.Description,
			StartTime:   start,
			EndTime:     &end,
			IsManual:    true,
		})
		if err != nil {
			return fmt.Errorf("create entry: %w", err)
		}

		seconds := entry.DurationSecondsAt(end)
		if err := s.projects.AddSecondsTracked(ctx, entry.ProjectID, seconds); err != nil {
			return fmt.Errorf("add project seconds: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "manual entry created",
		"entry_id", entry.ID,
		"user_id", userID,
		"project_id", in.ProjectID,
		"duration_seconds", entry.DurationSecondsAt(end),
	)
	return entry, nil
}
