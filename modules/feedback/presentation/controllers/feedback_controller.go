package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/confhall/confhall/modules/feedback/domain/feedback"
	"github.com/confhall/confhall/modules/feedback/services"
	"github.com/confhall/confhall/pkg/application"
	"github.com/confhall/confhall/pkg/httpapi"
	"github.com/confhall/confhall/pkg/middleware"
)

// FeedbackController serves the attendee-facing feedback endpoints.
type FeedbackController struct {
	feedback *services.FeedbackService
	basePath string
}

func NewFeedbackController(app application.Application) application.Controller {
	return &FeedbackController{
		feedback: app.Service(services.FeedbackService{}).(*services.FeedbackService),
		basePath: "/feedback",
	}
}

func (c *FeedbackController) Key() string {
	return c.basePath
}

func (c *FeedbackController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(middleware.Authorize())
	router.HandleFunc("", c.Submit).Methods(http.MethodPost)
	router.HandleFunc("/my-feedback", c.MyFeedback).Methods(http.MethodGet)
	router.HandleFunc("/categories", c.Categories).Methods(http.MethodGet)
}

func (c *FeedbackController) Submit(w http.ResponseWriter, r *http.Request) {
	var dto feedback.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := c.feedback.Submit(r.Context(), &dto)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			_ = httpapi.WriteError(w, http.StatusBadRequest, "Validation failed", err)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Server error", err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":  "Feedback submitted successfully",
		"feedback": created,
	})
}

func (c *FeedbackController) MyFeedback(w http.ResponseWriter, r *http.Request) {
	entries, err := c.feedback.MyFeedback(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, entries)
}

func (c *FeedbackController) Categories(w http.ResponseWriter, r *http.Request) {
	_ = httpapi.WriteJSON(w, http.StatusOK, feedback.Categories)
}
