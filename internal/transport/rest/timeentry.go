package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/hourglass-hq/hourglass-backend/internal/domain"
	"github.com/hourglass-hq/hourglass-backend/internal/service/tracking"
)

// trackingService defines the minimal interface needed by EntryHandler.
type trackingService interface {
	Start(ctx context.Context, in tracking.StartInput) (*domain.TimeEntry, error)
	Pause(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error)
	Resume(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error)
	Stop(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error)
	CreateManual(ctx context.Context, in tracking.ManualInput) (*domain.TimeEntry, error)
	Get(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error)
	Active(ctx context.Context) (*domain.TimeEntry, error)
	List(ctx context.Context, filter domain.EntryFilter) ([]*domain.TimeEntry, int, error)
	Update(ctx context.Context, entryID uuid.UUID, in tracking.UpdateInput) (*domain.TimeEntry, error)
	RecordActivity(ctx context.Context, in tracking.ActivityInput) (*domain.ActivitySample, error)
	AttachScreenshot(ctx context.Context, in tracking.ScreenshotInput) (*domain.Screenshot, error)
	ActivitySamples(ctx context.Context, entryID uuid.UUID) ([]*domain.ActivitySample, error)
	Screenshots(ctx context.Context, entryID uuid.UUID) ([]*domain.Screenshot, error)
}

// EntryHandler serves time entry REST endpoints.
type EntryHandler struct {
	svc trackingService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc trackingService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entries")}
}

type startRequest struct {
	ProjectID   string  `json:"projectId"`
	TaskID      *string `json:"taskId,omitempty"`
	Description string  `json:"description"`
}

type manualRequest struct {
	ProjectID   string    `json:"projectId"`
	TaskID      *string   `json:"taskId,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Description string    `json:"description"`
}

type updateEntryRequest struct {
	Description *string    `json:"description,omitempty"`
	TaskID      *string    `json:"taskId,omitempty"`
	ClearTask   bool       `json:"clearTask,omitempty"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	EndTime     *time.Time `json:"endTime,omitempty"`
}

type activityRequest struct {
	Level      int `json:"level"`
	MouseCount int `json:"mouseCount"`
	KeyCount   int `json:"keyCount"`
}

type screenshotRequest struct {
	URL string `json:"url"`
}

type pausePeriodResponse struct {
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
}

type entryResponse struct {
	ID              string                `json:"id"`
	UserID          string                `json:"userId"`
	ProjectID       string                `json:"projectId"`
	TaskID          *string               `json:"taskId,omitempty"`
	Description     string                `json:"description,omitempty"`
	State           string                `json:"state"`
	StartTime       time.Time             `json:"startTime"`
	EndTime         *time.Time            `json:"endTime,omitempty"`
	PausePeriods    []pausePeriodResponse `json:"pausePeriods,omitempty"`
	DurationSeconds int64                 `json:"durationSeconds"`
	IsManual        bool                  `json:"isManual"`
	ActivityLevel   *int                  `json:"activityLevel,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

type entryListResponse struct {
	Entries []entryResponse `json:"entries"`
	Total   int             `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

type activityResponse struct {
	ID         string    `json:"id"`
	EntryID    string    `json:"entryId"`
	Level      int       `json:"level"`
	MouseCount int       `json:"mouseCount"`
	KeyCount   int       `json:"keyCount"`
	RecordedAt time.Time `json:"recordedAt"`
}

type screenshotResponse struct {
	ID         string    `json:"id"`
	EntryID    string    `json:"entryId"`
	URL        string    `json:"url"`
	CapturedAt time.Time `json:"capturedAt"`
}

// Start handles POST /entries/start.
func (h *EntryHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	projectID, taskID, ok := parseProjectTask(w, req.ProjectID, req.TaskID)
	if !ok {
		return
	}

	entry, err := h.svc.Start(r.Context(), tracking.StartInput{
		ProjectID:   projectID,
		TaskID:      taskID,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Pause handles POST /entries/{id}/pause.
func (h *EntryHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Pause)
}

// Resume handles POST /entries/{id}/resume.
func (h *EntryHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Resume)
}

// Stop handles POST /entries/{id}/stop.
func (h *EntryHandler) Stop(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Stop)
}

func (h *EntryHandler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.TimeEntry, error)) {
	entryID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	entry, err := op(r.Context(), entryID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// CreateManual handles POST /entries.
func (h *EntryHandler) CreateManual(w http.ResponseWriter, r *http.Request) {
	var req manualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	projectID, taskID, ok := parseProjectTask(w, req.ProjectID, req.TaskID)
	if !ok {
		return
	}

	entry, err := h.svc.CreateManual(r.Context(), tracking.ManualInput{
		ProjectID:   projectID,
		TaskID:      taskID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Get handles GET /entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	entryID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.Get(r.Context(), entryID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Active handles GET /entries/active. Returns 204 when nothing is being tracked.
func (h *EntryHandler) Active(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.Active(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if entry == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// List handles GET /entries?from=&to=&projectId=&limit=&offset=.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseEntryFilter(w, r)
	if !ok {
		return
	}

	entries, total, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := entryListResponse{
		Entries: make([]entryResponse, 0, len(entries)),
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, toEntryResponse(e))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Update handles PATCH /entries/{id}.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	entryID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := tracking.UpdateInput{
		Description: req.Description,
		ClearTask:   req.ClearTask,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	if req.TaskID != nil {
		taskID, err := uuid.Parse(*req.TaskID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid task id")
			return
		}
		in.TaskID = &taskID
	}

	entry, err := h.svc.Update(r.Context(), entryID, in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// RecordActivity handles POST /entries/{id}/activity.
func (h *EntryHandler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	entryID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sample, err := h.svc.RecordActivity(r.Context(), tracking.ActivityInput{
		EntryID:    entryID,
		Level:      req.Level,
		MouseCount: req.MouseCount,
		KeyCount:   req.KeyCount,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, activityResponse{
		ID:         sample.ID.String(),
		EntryID:    sample.EntryID.String(),
		Level:      sample.Level,
		MouseCount: sample.MouseCount,
		KeyCount:   sample.KeyCount,
		RecordedAt: sample.RecordedAt,
	})
}

// AttachScreenshot handles POST /entries/{id}/screenshots.
func (h *EntryHandler) AttachScreenshot(w http.ResponseWriter, r *http.Request) {
	entryID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req screenshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	shot, err := h.svc.AttachScreenshot(r.Context(), tracking.ScreenshotInput{
		EntryID: entryID,
		URL:     req.URL,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, screenshotResponse{
		ID:         shot.ID.String(),
		EntryID:    shot.EntryID.String(),
		URL:        shot.URL,
		CapturedAt: shot.CapturedAt,
	})
}

// ListActivity handles GET /entries/{id}/activity.
func (h *EntryHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	entryID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	samples, err := h.svc.ActivitySamples(r.Context(), entryID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]activityResponse, 0, len(samples))
	for _, s := range samples {
		resp = append(resp, activityResponse{
			ID:         s.ID.String(),
			EntryID:    s.EntryID.String(),
			Level:      s.Level,
			MouseCount: s.MouseCount,
			KeyCount:   s.KeyCount,
			RecordedAt: s.RecordedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"samples": resp})
}

// ListScreenshots handles GET /entries/{id}/screenshots.
func (h *EntryHandler) ListScreenshots(w http.ResponseWriter, r *http.Request) {
	entryID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	shots, err := h.svc.Screenshots(r.Context(), entryID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]screenshotResponse, 0, len(shots))
	for _, s := range shots {
		resp = append(resp, screenshotResponse{
			ID:         s.ID.String(),
			EntryID:    s.EntryID.String(),
			URL:        s.URL,
			CapturedAt: s.CapturedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"screenshots": resp})
}

func parseIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func parseProjectTask(w http.ResponseWriter, rawProject string, rawTask *string) (uuid.UUID, *uuid.UUID, bool) {
	projectID, err := uuid.Parse(rawProject)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return uuid.Nil, nil, false
	}

	var taskID *uuid.UUID
	if rawTask != nil && *rawTask != "" {
		id, err := uuid.Parse(*rawTask)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid task id")
			return uuid.Nil, nil, false
		}
		taskID = &id
	}
	return projectID, taskID, true
}

func parseEntryFilter(w http.ResponseWriter, r *http.Request) (domain.EntryFilter, bool) {
	var filter domain.EntryFilter
	q := r.URL.Query()

	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid from timestamp")
			return filter, false
		}
		filter.From = t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid to timestamp")
			return filter, false
		}
		filter.To = t
	}
	if v := q.Get("projectId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid project id")
			return filter, false
		}
		filter.ProjectID = &id
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return filter, false
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return filter, false
		}
		filter.Offset = n
	}
	return filter, true
}

func toEntryResponse(e *domain.TimeEntry) entryResponse {
	resp := entryResponse{
		ID:              e.ID.String(),
		UserID:          e.UserID.String(),
		ProjectID:       e.ProjectID.String(),
		Description:     e.Description,
		State:           e.State().String(),
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		DurationSeconds: e.DurationSecondsAt(time.Now().UTC()),
		IsManual:        e.IsManual,
		ActivityLevel:   e.ActivityLevel,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if e.TaskID != nil {
		s := e.TaskID.String()
		resp.TaskID = &s
	}
	for _, p := range e.PausePeriods {
		resp.PausePeriods = append(resp.PausePeriods, pausePeriodResponse{
			StartedAt: p.StartedAt,
			EndedAt:   p.EndedAt,
		})
	}
	return resp
}
