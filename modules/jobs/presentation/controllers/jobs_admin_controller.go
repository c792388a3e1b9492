package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"

	"github.com/confhall/confhall/modules/jobs/services"
	"github.com/confhall/confhall/pkg/application"
	"github.com/confhall/confhall/pkg/configuration"
	"github.com/confhall/confhall/pkg/httpapi"
	"github.com/confhall/confhall/pkg/metrics"
	"github.com/confhall/confhall/pkg/middleware"
	"github.com/confhall/confhall/pkg/tabular"
)

// JobsAdminController serves the recruiter views: stored resumes, submitted
// applications, their CSV exports and resume file download.
type JobsAdminController struct {
	resumes      *services.ResumeService
	applications *services.ApplicationService
	basePath     string
}

func NewJobsAdminController(app application.Application) application.Controller {
	return &JobsAdminController{
		resumes:      app.Service(services.ResumeService{}).(*services.ResumeService),
		applications: app.Service(services.ApplicationService{}).(*services.ApplicationService),
		basePath:     "/jobs/admin",
	}
}

func (c *JobsAdminController) Key() string {
	return c.basePath
}

func (c *JobsAdminController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.Authorize(), middleware.RequireAdmin())
	router.HandleFunc("/resumes", c.ListResumes).Methods(http.MethodGet)
	router.HandleFunc("/applications", c.ListApplications).Methods(http.MethodGet)
	router.HandleFunc("/export/resumes", c.ExportResumes).Methods(http.MethodGet)
	router.HandleFunc("/export/applications", c.ExportApplications).Methods(http.MethodGet)
	router.HandleFunc("/download/{filename}", c.Download).Methods(http.MethodGet)
}

func (c *JobsAdminController) ListResumes(w http.ResponseWriter, r *http.Request) {
	all, err := c.resumes.GetAll(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch resumes", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, all)
}

func (c *JobsAdminController) ListApplications(w http.ResponseWriter, r *http.Request) {
	all, err := c.applications.GetAll(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch applications", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, all)
}

func (c *JobsAdminController) ExportResumes(w http.ResponseWriter, r *http.Request) {
	body, err := c.resumes.ExportCSV(r.Context())
	metrics.RecordExport("resumes", err)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to export resumes", err)
		return
	}
	writeCSV(w, tabular.ExportFilename("resumes", time.Now()), body)
}

func (c *JobsAdminController) ExportApplications(w http.ResponseWriter, r *http.Request) {
	body, err := c.applications.ExportCSV(r.Context())
	metrics.RecordExport("applications", err)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to export applications", err)
		return
	}
	writeCSV(w, tabular.ExportFilename("job-applications", time.Now()), body)
}

// Download streams a stored resume file. The filename is reduced to its
// base name so the route cannot reach outside the resumes directory.
func (c *JobsAdminController) Download(w http.ResponseWriter, r *http.Request) {
	filename := filepath.Base(mux.Vars(r)["filename"])
	path := filepath.Join(configuration.Use().ResumesDir, filename)

	if _, err := os.Stat(path); err != nil {
		_ = httpapi.WriteError(w, http.StatusNotFound, "File not found", nil)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename=`+filename)
	http.ServeFile(w, r, path)
}

func writeCSV(w http.ResponseWriter, filename string, body []byte) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=`+filename)
	_, _ = w.Write(body)
}
