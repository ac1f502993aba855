package domain

import (
	"time"

	"github.com/google/uuid"
)

// PausePeriod is one interval during which tracking was suspended.
// EndedAt == nil means the pause is still open (the entry is PAUSED).
type PausePeriod struct {
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// IsOpen returns true if the pause has not been resumed yet.
func (p PausePeriod) IsOpen() bool { return p.EndedAt == nil }

// TimeEntry represents a single tracked work session.
//
// PausePeriods is an append-only ordered sequence: live tracking appends an
// open period on pause and closes it on resume. Duration is never stored as
// ground truth; it is always recomputed from StartTime, EndTime, and
// PausePeriods (see DurationAt).
type TimeEntry struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ProjectID     uuid.UUID
	TaskID        *uuid.UUID
	Description   string
	StartTime     time.Time
	EndTime       *time.Time
	PausePeriods  []PausePeriod
	IsManual      bool
	ActivityLevel *int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// State derives the lifecycle state: STOPPED once EndTime is set, PAUSED while
// the last pause period is open, RUNNING otherwise.
func (e *TimeEntry) State() EntryState {
	if e.EndTime != nil {
		return EntryStateStopped
	}
	if e.IsPaused() {
		return EntryStatePaused
	}
	return EntryStateRunning
}

// IsPaused returns true if the entry is open and its last pause period has no end.
func (e *TimeEntry) IsPaused() bool {
	if e.EndTime != nil || len(e.PausePeriods) == 0 {
		return false
	}
	return e.PausePeriods[len(e.PausePeriods)-1].IsOpen()
}

// OpenPause returns the index of the open pause period, or -1 if none.
func (e *TimeEntry) OpenPause() int {
	if n := len(e.PausePeriods); n > 0 && e.PausePeriods[n-1].IsOpen() {
		return n - 1
	}
	return -1
}

// DurationAt computes the active tracked duration as of the given instant.
//
// The upper bound is EndTime when the entry is stopped, otherwise "at". Each
// pause period subtracts its overlap with [StartTime, upper]; an open pause
// contributes up to the upper bound. The result never goes negative: if pause
// time exceeds elapsed wall time (clock skew), it clamps to zero.
//
// Pure function of the entry's fields and "at".
func (e *TimeEntry) DurationAt(at time.Time) time.Duration {
	upper := at
	if e.EndTime != nil {
		upper = *e.EndTime
	}
	if !upper.After(e.StartTime) {
		return 0
	}

	total := upper.Sub(e.StartTime)

	var paused time.Duration
	for _, p := range e.PausePeriods {
		if !p.StartedAt.Before(upper) {
			continue
		}
		end := upper
		if p.EndedAt != nil && p.EndedAt.Before(upper) {
			end = *p.EndedAt
		}
		if end.After(p.StartedAt) {
			paused += end.Sub(p.StartedAt)
		}
	}

	if paused >= total {
		return 0
	}
	return total - paused
}

// DurationSecondsAt is DurationAt truncated to whole seconds.
func (e *TimeEntry) DurationSecondsAt(at time.Time) int64 {
	return int64(e.DurationAt(at) / time.Second)
}

// PausedAt computes the total paused duration as of the given instant,
// clipping an open pause period at the evaluation instant.
func (e *TimeEntry) PausedAt(at time.Time) time.Duration {
	upper := at
	if e.EndTime != nil {
		upper = *e.EndTime
	}

	var paused time.Duration
	for _, p := range e.PausePeriods {
		if !p.StartedAt.Before(upper) {
			continue
		}
		end := upper
		if p.EndedAt != nil && p.EndedAt.Before(upper) {
			end = *p.EndedAt
		}
		if end.After(p.StartedAt) {
			paused += end.Sub(p.StartedAt)
		}
	}
	return paused
}

// Validate checks the entry's structural invariants: pause periods ordered,
// non-overlapping, within [StartTime, EndTime], and EndTime after StartTime.
// Used by repositories before persisting and by tests.
func (e *TimeEntry) Validate() error {
	if e.EndTime != nil && !e.EndTime.After(e.StartTime) {
		return NewValidationError("end_time", "must be after start_time")
	}

	prevEnd := e.StartTime
	for i, p := range e.PausePeriods {
		if p.StartedAt.Before(prevEnd) {
			return NewValidationError("pause_periods", "periods must be ordered and non-overlapping")
		}
		if p.EndedAt == nil {
			if i != len(e.PausePeriods)-1 {
				return NewValidationError("pause_periods", "only the last period may be open")
			}
			if e.EndTime != nil {
				return NewValidationError("pause_periods", "stopped entry cannot have an open pause")
			}
			continue
		}
		if p.EndedAt.Before(p.StartedAt) {
			return NewValidationError("pause_periods", "period end before its start")
		}
		if e.EndTime != nil && p.EndedAt.After(*e.EndTime) {
			return NewValidationError("pause_periods", "period ends after entry end_time")
		}
		prevEnd = *p.EndedAt
	}

	return nil
}
