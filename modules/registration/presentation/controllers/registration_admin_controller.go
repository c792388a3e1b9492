package controllers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/confhall/confhall/modules/registration/services"
	"github.com/confhall/confhall/pkg/application"
	"github.com/confhall/confhall/pkg/httpapi"
	"github.com/confhall/confhall/pkg/metrics"
	"github.com/confhall/confhall/pkg/middleware"
	"github.com/confhall/confhall/pkg/uploads"
)

// RegistrationAdminController owns the attendee whitelist: bulk upload
// (full replace) and the admin listing.
type RegistrationAdminController struct {
	whitelist *services.WhitelistService
	basePath  string
}

func NewRegistrationAdminController(app application.Application) application.Controller {
	return &RegistrationAdminController{
		whitelist: app.Service(services.WhitelistService{}).(*services.WhitelistService),
		basePath:  "/admin",
	}
}

func (c *RegistrationAdminController) Key() string {
	return c.basePath + "/whitelist"
}

func (c *RegistrationAdminController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.Authorize(), middleware.RequireAdmin())
	router.HandleFunc("/uploadWhitelist", c.Upload).Methods(http.MethodPost)
	router.HandleFunc("/attendees", c.List).Methods(http.MethodGet)
}

func (c *RegistrationAdminController) Upload(w http.ResponseWriter, r *http.Request) {
	rows, err := uploads.ReadTabular(r, "file")
	if err != nil {
		metrics.RecordUpload("whitelist", 0, 0, err)
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Upload failed", err)
		return
	}

	inserted, err := c.whitelist.ImportRows(r.Context(), rows)
	metrics.RecordUpload("whitelist", inserted, 0, err)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Upload failed", err)
		return
	}

	_ = httpapi.WriteMessage(w, http.StatusOK, fmt.Sprintf("%d attendees uploaded successfully", inserted))
}

func (c *RegistrationAdminController) List(w http.ResponseWriter, r *http.Request) {
	entries, err := c.whitelist.GetAll(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, entries)
}
