package services

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/confhall/confhall/modules/jobs/domain/job"
	"github.com/confhall/confhall/pkg/composables"
	"github.com/confhall/confhall/pkg/eventbus"
	"github.com/confhall/confhall/pkg/tabular"
)

// JobsImported is published after a successful job board upload.
type JobsImported struct {
	Count   int
	Dropped int
}

type JobService struct {
	repo      job.Repository
	publisher eventbus.EventBus
	validate  *validator.Validate
}

func NewJobService(repo job.Repository, publisher eventbus.EventBus) *JobService {
	return &JobService{
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(),
	}
}

func (s *JobService) GetAll(ctx context.Context) ([]job.Job, error) {
	return s.repo.GetAll(ctx)
}

func (s *JobService) Create(ctx context.Context, dto *job.CreateDTO) (job.Job, error) {
	if err := s.validate.Struct(dto); err != nil {
		return job.Job{}, err
	}
	return s.repo.Create(ctx, dto.Entity())
}

func (s *JobService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// ImportRows normalizes decoded upload rows and appends them to the job
// board. Existing postings are kept; rows lacking a title or company are
// dropped, not treated as errors.
func (s *JobService) ImportRows(ctx context.Context, rows []tabular.Row) (int, int, error) {
	entities, dropped := normalizeJobRows(rows)

	inserted, err := s.repo.AppendAll(ctx, entities)
	if err != nil {
		return 0, dropped, err
	}

	if dropped > 0 {
		composables.UseLogger(ctx).
			WithField("dropped", dropped).
			Warn("job upload dropped rows missing title/company")
	}
	s.publisher.Publish(JobsImported{Count: inserted, Dropped: dropped})
	return inserted, dropped, nil
}

func normalizeJobRows(rows []tabular.Row) ([]job.Job, int) {
	entities := make([]job.Job, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		if row["title"] == "" || row["company"] == "" {
			dropped++
			continue
		}
		entities = append(entities, job.Job{
			Title:       row["title"],
			Company:     row["company"],
			Location:    row["location"],
			Experience:  row["experience"],
			Skills:      row["skills"],
			Description: row["description"],
		})
	}
	return entities, dropped
}
