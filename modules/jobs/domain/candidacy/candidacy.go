package candidacy

import (
	"context"
	"time"
)

// Application is one attendee's application to a posted job. The job title
// and company are denormalized at submit time so the record survives job
// board replacements.
type Application struct {
	ID         int       `json:"id"`
	UserEmail  string    `json:"userEmail"`
	JobID      string    `json:"jobId"`
	JobTitle   string    `json:"jobTitle"`
	Company    string    `json:"company"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	ResumeFile string    `json:"resumeFile,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Repository interface {
	Create(ctx context.Context, entity Application) (Application, error)
	GetAll(ctx context.Context) ([]Application, error)
	Count(ctx context.Context) (int64, error)
}
