package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/confhall/confhall/modules/schedule/domain/session"
	"github.com/confhall/confhall/modules/schedule/services"
	"github.com/confhall/confhall/pkg/application"
	"github.com/confhall/confhall/pkg/httpapi"
	"github.com/confhall/confhall/pkg/middleware"
)

// SessionController serves the attendee-facing schedule.
type SessionController struct {
	sessions *services.SessionService
	basePath string
}

func NewSessionController(app application.Application) application.Controller {
	return &SessionController{
		sessions: app.Service(services.SessionService{}).(*services.SessionService),
		basePath: "/sessions",
	}
}

func (c *SessionController) Key() string {
	return c.basePath
}

func (c *SessionController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.Authorize())
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/{sessionId}", c.Get).Methods(http.MethodGet)
}

func (c *SessionController) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.sessions.GetAll(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, sessions)
}

func (c *SessionController) Get(w http.ResponseWriter, r *http.Request) {
	entity, err := c.sessions.GetBySessionID(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "Session not found", nil)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, entity)
}
