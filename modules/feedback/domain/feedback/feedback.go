package feedback

import (
	"context"
	"time"
)

// Feedback is one submitted rating. Session feedback carries the rated
// sessionId; event-level feedback carries only its category.
type Feedback struct {
	ID        int       `json:"-"`
	Category  string    `json:"category"`
	SessionID string    `json:"sessionId,omitempty"`
	UserEmail string    `json:"userEmail"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateDTO struct {
	Category  string `json:"category" validate:"required"`
	SessionID string `json:"sessionId"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// Category describes one feedback area shown on the attendee dashboard.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var Categories = []Category{
	{ID: "sessions", Name: "Sessions", Description: "Rate the talks you attended"},
	{ID: "venue", Name: "Venue", Description: "Facilities, rooms and signage"},
	{ID: "catering", Name: "Catering", Description: "Food and refreshments"},
	{ID: "organization", Name: "Organization", Description: "Registration, schedule and communication"},
	{ID: "overall", Name: "Overall", Description: "Your overall event experience"},
}

type Repository interface {
	Create(ctx context.Context, entity Feedback) (Feedback, error)
	GetAll(ctx context.Context) ([]Feedback, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]Feedback, error)
	GetByUserEmail(ctx context.Context, email string) ([]Feedback, error)
	Count(ctx context.Context) (int64, error)
}
