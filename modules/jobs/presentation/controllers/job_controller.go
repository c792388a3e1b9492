package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/confhall/confhall/modules/jobs/domain/job"
	"github.com/confhall/confhall/modules/jobs/services"
	"github.com/confhall/confhall/pkg/application"
	"github.com/confhall/confhall/pkg/configuration"
	"github.com/confhall/confhall/pkg/httpapi"
	"github.com/confhall/confhall/pkg/metrics"
	"github.com/confhall/confhall/pkg/middleware"
	"github.com/confhall/confhall/pkg/uploads"
)

// JobController serves the job board: listings for attendees, posting and
// bulk upload for organizers, and resume/application submission.
type JobController struct {
	jobs         *services.JobService
	resumes      *services.ResumeService
	applications *services.ApplicationService
	basePath     string
}

func NewJobController(app application.Application) application.Controller {
	return &JobController{
		jobs:         app.Service(services.JobService{}).(*services.JobService),
		resumes:      app.Service(services.ResumeService{}).(*services.ResumeService),
		applications: app.Service(services.ApplicationService{}).(*services.ApplicationService),
		basePath:     "/jobs",
	}
}

func (c *JobController) Key() string {
	return c.basePath
}

func (c *JobController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.Authorize())
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/resumes", c.SubmitResume).Methods(http.MethodPost)
	router.HandleFunc("/apply", c.Apply).Methods(http.MethodPost)

	admin := middleware.RequireAdmin()
	router.Handle("", admin(http.HandlerFunc(c.Create))).Methods(http.MethodPost)
	router.Handle("/upload-csv", admin(http.HandlerFunc(c.Upload))).Methods(http.MethodPost)
}

func (c *JobController) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := c.jobs.GetAll(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to fetch jobs", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, jobs)
}

func (c *JobController) Create(w http.ResponseWriter, r *http.Request) {
	var dto job.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := c.jobs.Create(r.Context(), &dto)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			_ = httpapi.WriteError(w, http.StatusBadRequest, "Validation failed", err)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to create job", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, created)
}

func (c *JobController) Upload(w http.ResponseWriter, r *http.Request) {
	rows, err := uploads.ReadTabular(r, "file")
	if err != nil {
		metrics.RecordUpload("jobs", 0, 0, err)
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "CSV upload failed", err)
		return
	}

	inserted, dropped, err := c.jobs.ImportRows(r.Context(), rows)
	metrics.RecordUpload("jobs", inserted, dropped, err)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to save jobs", err)
		return
	}

	_ = httpapi.WriteMessage(w, http.StatusOK, fmt.Sprintf("%d jobs uploaded successfully", inserted))
}

func (c *JobController) SubmitResume(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	filename, err := uploads.SaveStored(r, "resume", conf.ResumesDir, conf.MaxUploadSize)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to upload resume", err)
		return
	}

	_, err = c.resumes.Submit(r.Context(), &services.SubmitDTO{
		Name:       r.FormValue("name"),
		Phone:      r.FormValue("phone"),
		Experience: r.FormValue("experience"),
		Skills:     r.FormValue("skills"),
		Filename:   filename,
	})
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to upload resume", err)
		return
	}
	_ = httpapi.WriteMessage(w, http.StatusCreated, "Resume uploaded successfully")
}

func (c *JobController) Apply(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	filename, err := uploads.SaveStored(r, "resume", conf.ResumesDir, conf.MaxUploadSize)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to submit application", err)
		return
	}

	_, err = c.applications.Submit(r.Context(), &services.ApplyDTO{
		JobID:      r.FormValue("jobId"),
		JobTitle:   r.FormValue("jobTitle"),
		Company:    r.FormValue("company"),
		Name:       r.FormValue("name"),
		Phone:      r.FormValue("phone"),
		ResumeFile: filename,
	})
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Failed to submit application", err)
		return
	}
	_ = httpapi.WriteMessage(w, http.StatusCreated, "Application submitted successfully")
}
