package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hourglass-hq/hourglass-backend/internal/domain"
	"github.com/hourglass-hq/hourglass-backend/internal/service/project"
	"github.com/hourglass-hq/hourglass-backend/internal/transport/middleware"
)

// projectService defines the minimal interface needed by ProjectHandler.
type projectService interface {
	CreateProject(ctx context.Context, in project.ProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, in project.ProjectUpdateInput) (*domain.Project, error)
	ArchiveProject(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	CreateTask(ctx context.Context, in project.TaskInput) (*domain.Task, error)
	ListTasks(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, in project.TaskUpdateInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

// ProjectHandler serves project and task REST endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "projects")}
}

type projectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type projectUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type taskRequest struct {
	Name string `json:"name"`
}

type taskUpdateRequest struct {
	Name   *string `json:"name,omitempty"`
	Status *string `json:"status,omitempty"`
}

type projectResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Status         string    `json:"status"`
	SecondsTracked int64     `json:"secondsTracked"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type taskResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.requireManager(w, r) {
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.CreateProject(r.Context(), project.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProjectResponse(p))
}

// Get handles GET /projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	p, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// List handles GET /projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, toProjectResponse(p))
	}

	writeJSON(w, http.StatusOK, map[string]any{"projects": resp})
}

// Update handles PATCH /projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !h.requireManager(w, r) {
		return
	}

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req projectUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := project.ProjectUpdateInput{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		in.Status = &status
	}

	p, err := h.svc.UpdateProject(r.Context(), id, in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Archive handles POST /projects/{id}/archive.
func (h *ProjectHandler) Archive(w http.ResponseWriter, r *http.Request) {
	if !h.requireManager(w, r) {
		return
	}

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	p, err := h.svc.ArchiveProject(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// CreateTask handles POST /projects/{id}/tasks.
func (h *ProjectHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	if !h.requireManager(w, r) {
		return
	}

	projectID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.CreateTask(r.Context(), project.TaskInput{
		ProjectID: projectID,
		Name:      req.Name,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(t))
}

// ListTasks handles GET /projects/{id}/tasks.
func (h *ProjectHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	projectID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	tasks, err := h.svc.ListTasks(r.Context(), projectID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, toTaskResponse(t))
	}

	writeJSON(w, http.StatusOK, map[string]any{"tasks": resp})
}

// UpdateTask handles PATCH /tasks/{id}.
func (h *ProjectHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	if !h.requireManager(w, r) {
		return
	}

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req taskUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := project.TaskUpdateInput{Name: req.Name}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		in.Status = &status
	}

	t, err := h.svc.UpdateTask(r.Context(), id, in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

// DeleteTask handles DELETE /tasks/{id}.
func (h *ProjectHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if !h.requireManager(w, r) {
		return
	}

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteTask(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProjectHandler) requireManager(w http.ResponseWriter, r *http.Request) bool {
	if err := middleware.RequireManager(r.Context()); err != nil {
		writeError(w, http.StatusForbidden, "manager access required")
		return false
	}
	return true
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		Description:    p.Description,
		Status:         p.Status.String(),
		SecondsTracked: p.SecondsTracked,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:        t.ID.String(),
		ProjectID: t.ProjectID.String(),
		Name:      t.Name,
		Status:    t.Status.String(),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
