package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectBreakdown is the per-project slice of a daily report.
type ProjectBreakdown struct {
	ProjectID   uuid.UUID
	ProjectName string
	Seconds     int64
	Entries     int
}

// DailyReport aggregates one user's closed entries for a single day.
type DailyReport struct {
	UserID       uuid.UUID
	Date         time.Time
	TotalSeconds int64
	Entries      int
	Projects     []ProjectBreakdown
}

// MemberTotal is the per-user slice of a team report.
type MemberTotal struct {
	UserID     uuid.UUID
	UserName   string
	Seconds    int64
	Entries    int
	ProjectIDs []uuid.UUID
}

// TeamReport aggregates closed entries across users over a date range.
type TeamReport struct {
	From    time.Time
	To      time.Time
	Members []MemberTotal
}
