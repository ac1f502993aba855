package tracking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hourglass-hq/hourglass-backend/internal/domain"
	"github.com/hourglass-hq/hourglass-backend/pkg/ctxutil"
)

// RecordActivity stores one activity sample against an entry and refreshes
// the entry's rolling average activity level. The entry may be in any state;
// trackers that went offline sync their samples after the entry is stopped.
// Samples attach metadata only; they never change the entry's time bounds or
// pauses.
func (s *Service) RecordActivity(ctx context.Context, in ActivityInput) (*domain.ActivitySample, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	recordedAt := s.now()

	var sample *domain.ActivitySample
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		entry, err := s.entries.GetByIDForUpdate(ctx, userID, in.EntryID)
		if err != nil {
			return err
		}

		sample, err = s.activity.CreateSample(ctx, &domain.ActivitySample{
			ID:         uuid.New(),
			EntryID:    in.EntryID,
			UserID:     userID,
			Level:      in.Level,
			MouseCount: in.MouseCount,
			KeyCount:   in.KeyCount,
			RecordedAt: recordedAt,
		})
		if err != nil {
			return fmt.Errorf("create sample: %w", err)
		}

		avg, count, err := s.activity.AvgLevelByEntry(ctx, in.EntryID)
		if err != nil {
			return fmt.Errorf("average activity: %w", err)
		}
		if count > 0 {
			entry.ActivityLevel = &avg
			if _, err := s.entries.Update(ctx, entry); err != nil {
				return fmt.Errorf("update entry activity level: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "activity recorded",
		"entry_id", in.EntryID,
		"user_id", userID,
		"level", in.Level,
	)
	return sample, nil
}

// AttachScreenshot stores a screenshot reference against an entry the caller
// owns. Like activity samples, screenshots may arrive after the entry is
// paused or stopped.
func (s *Service) AttachScreenshot(ctx context.Context, in ScreenshotInput) (*domain.Screenshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	capturedAt := s.now()

	if _, err := s.entries.GetByID(ctx, userID, in.EntryID); err != nil {
		return nil, err
	}

	shot, err := s.activity.CreateScreenshot(ctx, &domain.Screenshot{
		ID:         uuid.New(),
		EntryID:    in.EntryID,
		UserID:     userID,
		URL:        in.URL,
		CapturedAt: capturedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("create screenshot: %w", err)
	}

	s.log.DebugContext(ctx, "screenshot attached", "entry_id", in.EntryID, "user_id", userID)
	return shot, nil
}

// ActivitySamples returns the entry's samples in recording order. The entry
// must belong to the authenticated user.
func (s *Service) ActivitySamples(ctx context.Context, entryID uuid.UUID) ([]*domain.ActivitySample, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.entries.GetByID(ctx, userID, entryID); err != nil {
		return nil, err
	}
	return s.activity.ListSamplesByEntry(ctx, entryID)
}

// Screenshots returns the entry's screenshot references in capture order. The
// entry must belong to the authenticated user.
func (s *Service) Screenshots(ctx context.Context, entryID uuid.UUID) ([]*domain.Screenshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.entries.GetByID(ctx, userID, entryID); err != nil {
		return nil, err
	}
	return s.activity.ListScreenshotsByEntry(ctx, entryID)
}
