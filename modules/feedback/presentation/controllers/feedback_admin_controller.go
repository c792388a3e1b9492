package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/confhall/confhall/modules/feedback/services"
	"github.com/confhall/confhall/pkg/application"
	"github.com/confhall/confhall/pkg/httpapi"
	"github.com/confhall/confhall/pkg/metrics"
	"github.com/confhall/confhall/pkg/middleware"
)

// FeedbackAdminController serves the organizer-side feedback views and
// the all-feedback CSV export.
type FeedbackAdminController struct {
	feedback *services.FeedbackService
	basePath string
}

func NewFeedbackAdminController(app application.Application) application.Controller {
	return &FeedbackAdminController{
		feedback: app.Service(services.FeedbackService{}).(*services.FeedbackService),
		basePath: "/admin",
	}
}

func (c *FeedbackAdminController) Key() string {
	return c.basePath + "/feedback"
}

func (c *FeedbackAdminController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.Authorize(), middleware.RequireAdmin())
	router.HandleFunc("/feedback/{sessionId}", c.ForSession).Methods(http.MethodGet)
	router.HandleFunc("/exportFeedback", c.Export).Methods(http.MethodGet)
}

func (c *FeedbackAdminController) ForSession(w http.ResponseWriter, r *http.Request) {
	entries, err := c.feedback.ForSession(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, entries)
}

func (c *FeedbackAdminController) Export(w http.ResponseWriter, r *http.Request) {
	body, err := c.feedback.ExportCSV(r.Context())
	metrics.RecordExport("feedback", err)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Export failed", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=feedback-export.csv`)
	_, _ = w.Write(body)
}
