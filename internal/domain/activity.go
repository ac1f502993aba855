package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivitySample is one activity measurement reported by the desktop tracker
// for a slice of a time entry. Level is a percentage in [0,100] derived from
// input counts. Samples never alter the entry's duration fields.
type ActivitySample struct {
	ID         uuid.UUID
	EntryID    uuid.UUID
	UserID     uuid.UUID
	Level      int
	MouseCount int
	KeyCount   int
	RecordedAt time.Time
}

// Screenshot is a reference to a captured screen image stored externally.
// Only the URL is persisted here; blob storage is out of scope.
type Screenshot struct {
	ID         uuid.UUID
	EntryID    uuid.UUID
	UserID     uuid.UUID
	URL        string
	CapturedAt time.Time
}
