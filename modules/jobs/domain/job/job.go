package job

import (
	"context"
	"time"
)

type Job struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Experience  string    `json:"experience"`
	Skills      string    `json:"skills"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateDTO struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location"`
	Experience  string `json:"experience"`
	Skills      string `json:"skills"`
	Description string `json:"description"`
}

func (d *CreateDTO) Entity() Job {
	return Job{
		Title:       d.Title,
		Company:     d.Company,
		Location:    d.Location,
		Experience:  d.Experience,
		Skills:      d.Skills,
		Description: d.Description,
	}
}

type Repository interface {
	GetAll(ctx context.Context) ([]Job, error)
	Create(ctx context.Context, entity Job) (Job, error)
	AppendAll(ctx context.Context, entities []Job) (int, error)
	Count(ctx context.Context) (int64, error)
}
