package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryFilter narrows List queries over a user's time entries.
// Zero-value time bounds and nil ProjectID mean "no constraint".
type EntryFilter struct {
	From      time.Time
	To        time.Time
	ProjectID *uuid.UUID
	Limit     int
	Offset    int
}

// ClosedEntryFilter selects stopped entries for report aggregation.
// An entry matches when its StartTime falls inside the half-open [From, To).
type ClosedEntryFilter struct {
	UserIDs []uuid.UUID
	From    time.Time
	To      time.Time
}
