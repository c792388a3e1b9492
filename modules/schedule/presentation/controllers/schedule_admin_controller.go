package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/confhall/confhall/modules/schedule/domain/session"
	"github.com/confhall/confhall/modules/schedule/services"
	"github.com/confhall/confhall/pkg/application"
	"github.com/confhall/confhall/pkg/httpapi"
	"github.com/confhall/confhall/pkg/metrics"
	"github.com/confhall/confhall/pkg/middleware"
	"github.com/confhall/confhall/pkg/uploads"
)

// ScheduleAdminController owns the organizer-side schedule endpoints:
// bulk upload (full replace), manual creation, and the admin listing.
type ScheduleAdminController struct {
	sessions *services.SessionService
	basePath string
}

func NewScheduleAdminController(app application.Application) application.Controller {
	return &ScheduleAdminController{
		sessions: app.Service(services.SessionService{}).(*services.SessionService),
		basePath: "/admin",
	}
}

func (c *ScheduleAdminController) Key() string {
	return c.basePath + "/sessions"
}

func (c *ScheduleAdminController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.Authorize(), middleware.RequireAdmin())
	router.HandleFunc("/uploadSessions", c.Upload).Methods(http.MethodPost)
	router.HandleFunc("/createSession", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/sessions", c.List).Methods(http.MethodGet)
}

func (c *ScheduleAdminController) Upload(w http.ResponseWriter, r *http.Request) {
	rows, err := uploads.ReadTabular(r, "file")
	if err != nil {
		metrics.RecordUpload("sessions", 0, 0, err)
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Upload failed", err)
		return
	}

	inserted, dropped, err := c.sessions.ImportRows(r.Context(), rows)
	metrics.RecordUpload("sessions", inserted, dropped, err)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Upload failed", err)
		return
	}

	_ = httpapi.WriteMessage(w, http.StatusOK, fmt.Sprintf("%d sessions uploaded successfully", inserted))
}

func (c *ScheduleAdminController) Create(w http.ResponseWriter, r *http.Request) {
	var dto session.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := c.sessions.Create(r.Context(), &dto)
	if err != nil {
		if errors.Is(err, session.ErrSessionIDTaken) {
			_ = httpapi.WriteError(w, http.StatusBadRequest, "Session ID already exists", nil)
			return
		}
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			_ = httpapi.WriteError(w, http.StatusBadRequest, "Validation failed", err)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Server error", err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Session created successfully",
		"session": created,
	})
}

func (c *ScheduleAdminController) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.sessions.GetAll(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, sessions)
}
