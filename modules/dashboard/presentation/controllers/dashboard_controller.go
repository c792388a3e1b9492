package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	feedbacksvc "github.com/confhall/confhall/modules/feedback/services"
	registrationsvc "github.com/confhall/confhall/modules/registration/services"
	schedulesvc "github.com/confhall/confhall/modules/schedule/services"
	"github.com/confhall/confhall/pkg/application"
	"github.com/confhall/confhall/pkg/httpapi"
	"github.com/confhall/confhall/pkg/middleware"
)

// DashboardController aggregates counters from the other modules into the
// organizer dashboard.
type DashboardController struct {
	sessions  *schedulesvc.SessionService
	feedback  *feedbacksvc.FeedbackService
	whitelist *registrationsvc.WhitelistService
	basePath  string
}

func NewDashboardController(app application.Application) application.Controller {
	return &DashboardController{
		sessions:  app.Service(schedulesvc.SessionService{}).(*schedulesvc.SessionService),
		feedback:  app.Service(feedbacksvc.FeedbackService{}).(*feedbacksvc.FeedbackService),
		whitelist: app.Service(registrationsvc.WhitelistService{}).(*registrationsvc.WhitelistService),
		basePath:  "/admin",
	}
}

func (c *DashboardController) Key() string {
	return c.basePath + "/stats"
}

func (c *DashboardController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.Authorize(), middleware.RequireAdmin())
	router.HandleFunc("/stats", c.Stats).Methods(http.MethodGet)
}

func (c *DashboardController) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	totalSessions, err := c.sessions.Count(ctx)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	totalFeedback, err := c.feedback.Count(ctx)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	totalAttendees, err := c.whitelist.Count(ctx)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Server error", err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]int64{
		"totalSessions":  totalSessions,
		"totalFeedback":  totalFeedback,
		"totalAttendees": totalAttendees,
	})
}
