package rest

import "net/http"

// Handlers bundles the REST handlers mounted by NewRouter.
type Handlers struct {
	Auth     *AuthHandler
	Entries  *EntryHandler
	Projects *ProjectHandler
	Reports  *ReportHandler
	Health   *HealthHandler
}

// NewRouter registers all routes on a fresh mux. Authentication and other
// cross-cutting concerns are applied by the caller as middleware around the
// returned mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("GET /me", h.Auth.Me)

	mux.HandleFunc("POST /entries/start", h.Entries.Start)
	mux.HandleFunc("POST /entries/{id}/pause", h.Entries.Pause)
	mux.HandleFunc("POST /entries/{id}/resume", h.Entries.Resume)
	mux.HandleFunc("POST /entries/{id}/stop", h.Entries.Stop)
	mux.HandleFunc("POST /entries", h.Entries.CreateManual)
	mux.HandleFunc("GET /entries", h.Entries.List)
	mux.HandleFunc("GET /entries/active", h.Entries.Active)
	mux.HandleFunc("GET /entries/{id}", h.Entries.Get)
	mux.HandleFunc("PATCH /entries/{id}", h.Entries.Update)
	mux.HandleFunc("POST /entries/{id}/activity", h.Entries.RecordActivity)
	mux.HandleFunc("GET /entries/{id}/activity", h.Entries.ListActivity)
	mux.HandleFunc("POST /entries/{id}/screenshots", h.Entries.AttachScreenshot)
	mux.HandleFunc("GET /entries/{id}/screenshots", h.Entries.ListScreenshots)

	mux.HandleFunc("POST /projects", h.Projects.Create)
	mux.HandleFunc("GET /projects", h.Projects.List)
	mux.HandleFunc("GET /projects/{id}", h.Projects.Get)
	mux.HandleFunc("PATCH /projects/{id}", h.Projects.Update)
	mux.HandleFunc("POST /projects/{id}/archive", h.Projects.Archive)
	mux.HandleFunc("POST /projects/{id}/tasks", h.Projects.CreateTask)
	mux.HandleFunc("GET /projects/{id}/tasks", h.Projects.ListTasks)
	mux.HandleFunc("PATCH /tasks/{id}", h.Projects.UpdateTask)
	mux.HandleFunc("DELETE /tasks/{id}", h.Projects.DeleteTask)

	mux.HandleFunc("GET /reports/daily", h.Reports.Daily)
	mux.HandleFunc("GET /reports/team", h.Reports.Team)

	return mux
}
