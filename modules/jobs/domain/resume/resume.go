package resume

import (
	"context"
	"time"
)

// Resume is a candidate profile left at the job board, with an optional
// stored resume file.
type Resume struct {
	ID         int       `json:"id"`
	UserEmail  string    `json:"userEmail"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Experience string    `json:"experience"`
	Skills     string    `json:"skills"`
	Filename   string    `json:"filename,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Repository interface {
	Create(ctx context.Context, entity Resume) (Resume, error)
	GetAll(ctx context.Context) ([]Resume, error)
	Count(ctx context.Context) (int64, error)
}
