package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/confhall/confhall/pkg/application"
	"github.com/confhall/confhall/pkg/composables"
	"github.com/confhall/confhall/pkg/httpapi"
)

// HealthController answers liveness probes. It also pings the database so a
// lost pool surfaces here first.
type HealthController struct {
	basePath string
}

func NewHealthController(app application.Application) application.Controller {
	return &HealthController{basePath: "/health"}
}

func (c *HealthController) Key() string {
	return c.basePath
}

func (c *HealthController) Register(r *mux.Router) {
	r.HandleFunc(c.basePath, c.Check).Methods(http.MethodGet)
}

func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	pool, err := composables.UsePool(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}
	if err := pool.Ping(r.Context()); err != nil {
		_ = httpapi.WriteError(w, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
