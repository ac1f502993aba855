// Package report aggregates closed time entries into daily and team totals.
//
// Reports are computed from the entries themselves: every duration is derived
// with the entry's own end time as the upper bound, never the wall clock, so
// a report over closed entries is stable no matter when it is generated. The
// denormalized per-project counter is display-only and never feeds a report.
package report

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/hourglass-hq/hourglass-backend/internal/config"
	"github.com/hourglass-hq/hourglass-backend/internal/domain"
	"github.com/hourglass-hq/hourglass-backend/pkg/ctxutil"
)

type entryRepo interface {
	ListClosed(ctx context.Context, filter domain.ClosedEntryFilter) ([]*domain.TimeEntry, error)
}

type projectRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Project, error)
}

type userRepo interface {
	List(ctx context.Context) ([]*domain.User, error)
}

// Service implements report aggregation.
type Service struct {
	entries  entryRepo
	projects projectRepo
	users    userRepo
	clock    clockwork.Clock
	log      *slog.Logger
	cfg      config.TrackingConfig
}

// NewService creates a new report service.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	projects projectRepo,
	users userRepo,
	clock clockwork.Clock,
	cfg config.TrackingConfig,
) *Service {
	return &Service{
		entries:  entries,
		projects: projects,
		users:    users,
		clock:    clock,
		log:      logger.With("service", "report"),
		cfg:      cfg,
	}
}

// Daily aggregates the authenticated user's closed entries for one calendar
// day (UTC) into a total plus a per-project breakdown.
func (s *Service) Daily(ctx context.Context, day time.Time) (*domain.DailyReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	dayStart := day.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	entries, err := s.entries.ListClosed(ctx, domain.ClosedEntryFilter{
		UserIDs: []uuid.UUID{userID},
		From:    dayStart,
		To:      dayEnd,
	})
	if err != nil {
		return nil, err
	}

	report := &domain.DailyReport{
		UserID:  userID,
		Date:    dayStart,
		Entries: len(entries),
	}

	byProject := make(map[uuid.UUID]*domain.ProjectBreakdown)
	for _, e := range entries {
		seconds := e.DurationSecondsAt(*e.EndTime)
		report.TotalSeconds += seconds

		b, ok := byProject[e.ProjectID]
		if !ok {
			b = &domain.ProjectBreakdown{ProjectID: e.ProjectID}
			byProject[e.ProjectID] = b
		}
		b.Seconds += seconds
		b.Entries++
	}

	if len(byProject) > 0 {
		ids := make([]uuid.UUID, 0, len(byProject))
		for id := range byProject {
			ids = append(ids, id)
		}
		projects, err := s.projects.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for id, b := range byProject {
			if p, ok := projects[id]; ok {
				b.ProjectName = p.Name
			}
			report.Projects = append(report.Projects, *b)
		}
		sort.Slice(report.Projects, func(i, j int) bool {
			return report.Projects[i].Seconds > report.Projects[j].Seconds
		})
	}

	return report, nil
}

// Team aggregates closed entries across all users over [from, to). Only
// managers and admins may call it; the caller's role comes from the request
// context. A zero range defaults to the configured trailing window ending now.
func (s *Service) Team(ctx context.Context, from, to time.Time) (*domain.TeamReport, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	role := domain.UserRole(ctxutil.UserRoleFromCtx(ctx))
	if !role.CanViewTeamReports() {
		return nil, domain.ErrForbidden
	}

	if from.IsZero() && to.IsZero() {
		to = s.clock.Now().UTC()
		from = to.AddDate(0, 0, -s.cfg.TeamReportDays)
	}
	if !to.After(from) {
		return nil, domain.NewValidationError("to", "must be after from")
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.ListClosed(ctx, domain.ClosedEntryFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	// Every member appears, idle ones with zero seconds.
	byUser := make(map[uuid.UUID]*domain.MemberTotal, len(users))
	for _, u := range users {
		byUser[u.ID] = &domain.MemberTotal{UserID: u.ID, UserName: u.Name}
	}

	projectSeen := make(map[uuid.UUID]map[uuid.UUID]bool)
	for _, e := range entries {
		m, ok := byUser[e.UserID]
		if !ok {
			continue
		}
		m.Seconds += e.DurationSecondsAt(*e.EndTime)
		m.Entries++
		if projectSeen[e.UserID] == nil {
			projectSeen[e.UserID] = make(map[uuid.UUID]bool)
		}
		if !projectSeen[e.UserID][e.ProjectID] {
			projectSeen[e.UserID][e.ProjectID] = true
			m.ProjectIDs = append(m.ProjectIDs, e.ProjectID)
		}
	}

	report := &domain.TeamReport{From: from, To: to}
	report.Members = make([]domain.MemberTotal, 0, len(byUser))
	for _, m := range byUser {
		report.Members = append(report.Members, *m)
	}
	sort.Slice(report.Members, func(i, j int) bool {
		if report.Members[i].Seconds != report.Members[j].Seconds {
			return report.Members[i].Seconds > report.Members[j].Seconds
		}
		return report.Members[i].UserName < report.Members[j].UserName
	})

	return report, nil
}
