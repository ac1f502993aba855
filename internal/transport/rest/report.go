package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hourglass-hq/hourglass-backend/internal/domain"
)

// reportService defines the minimal interface needed by ReportHandler.
type reportService interface {
	Daily(ctx context.Context, day time.Time) (*domain.DailyReport, error)
	Team(ctx context.Context, from, to time.Time) (*domain.TeamReport, error)
}

// ReportHandler serves report REST endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "reports")}
}

type projectBreakdownResponse struct {
	ProjectID   string `json:"projectId"`
	ProjectName string `json:"projectName"`
	Seconds     int64  `json:"seconds"`
	Entries     int    `json:"entries"`
}

type dailyReportResponse struct {
	UserID       string                     `json:"userId"`
	Date         string                     `json:"date"`
	TotalSeconds int64                      `json:"totalSeconds"`
	Entries      int                        `json:"entries"`
	Projects     []projectBreakdownResponse `json:"projects"`
}

type memberTotalResponse struct {
	UserID     string   `json:"userId"`
	UserName   string   `json:"userName"`
	Seconds    int64    `json:"seconds"`
	Entries    int      `json:"entries"`
	ProjectIDs []string `json:"projectIds,omitempty"`
}

type teamReportResponse struct {
	From    time.Time             `json:"from"`
	To      time.Time             `json:"to"`
	Members []memberTotalResponse `json:"members"`
}

// Daily handles GET /reports/daily?date=2026-03-02. The date defaults to today.
func (h *ReportHandler) Daily(w http.ResponseWriter, r *http.Request) {
	day := time.Now().UTC()
	if v := r.URL.Query().Get("date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		day = t
	}

	report, err := h.svc.Daily(r.Context(), day)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := dailyReportResponse{
		UserID:       report.UserID.String(),
		Date:         report.Date.Format("2006-01-02"),
		TotalSeconds: report.TotalSeconds,
		Entries:      report.Entries,
		Projects:     make([]projectBreakdownResponse, 0, len(report.Projects)),
	}
	for _, p := range report.Projects {
		resp.Projects = append(resp.Projects, projectBreakdownResponse{
			ProjectID:   p.ProjectID.String(),
			ProjectName: p.ProjectName,
			Seconds:     p.Seconds,
			Entries:     p.Entries,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Team handles GET /reports/team?from=&to=. An omitted range defaults to the
// configured trailing window.
func (h *ReportHandler) Team(w http.ResponseWriter, r *http.Request) {
	var from, to time.Time
	q := r.URL.Query()

	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid from timestamp")
			return
		}
		from = t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid to timestamp")
			return
		}
		to = t
	}

	report, err := h.svc.Team(r.Context(), from, to)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := teamReportResponse{
		From:    report.From,
		To:      report.To,
		Members: make([]memberTotalResponse, 0, len(report.Members)),
	}
	for _, m := range report.Members {
		resp.Members = append(resp.Members, memberTotalResponse{
			UserID:     m.UserID.String(),
			UserName:   m.UserName,
			Seconds:    m.Seconds,
			Entries:    m.Entries,
			ProjectIDs: uuidStrings(m.ProjectIDs),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func uuidStrings(ids []uuid.UUID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
