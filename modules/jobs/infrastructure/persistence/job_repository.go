package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/confhall/confhall/modules/jobs/domain/job"
	"github.com/confhall/confhall/pkg/composables"
)

const uniqueViolation = "23505"

const jobColumns = `id, title, company, location, experience, skills, description, created_at`

type JobRepository struct{}

func NewJobRepository() job.Repository {
	return &JobRepository{}
}

func (r *JobRepository) GetAll(ctx context.Context) ([]job.Job, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "query jobs")
	}
	defer rows.Close()

	return scanJobs(rows)
}

func (r *JobRepository) Create(ctx context.Context, entity job.Job) (job.Job, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return job.Job{}, err
	}

	err = pool.QueryRow(ctx, `
		INSERT INTO jobs (title, company, location, experience, skills, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, entity.Title, entity.Company, entity.Location, entity.Experience, entity.Skills, entity.Description).
		Scan(&entity.ID, &entity.CreatedAt)
	if err != nil {
		return job.Job{}, errors.Wrap(err, "insert job")
	}
	return entity, nil
}

// AppendAll inserts the batch row by row, keeping existing postings. A
// duplicate key skips that row only; any other error aborts the append.
func (r *JobRepository) AppendAll(ctx context.Context, entities []job.Job) (int, error) {
	ctx = context.WithoutCancel(ctx)

	pool, err := composables.UsePool(ctx)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, entity := range entities {
		_, err := pool.Exec(ctx, `
			INSERT INTO jobs (title, company, location, experience, skills, description)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, entity.Title, entity.Company, entity.Location, entity.Experience, entity.Skills, entity.Description)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				continue
			}
			return inserted, errors.Wrap(err, "insert job")
		}
		inserted++
	}
	return inserted, nil
}

func (r *JobRepository) Count(ctx context.Context) (int64, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "count jobs")
	}
	return count, nil
}

func scanJobs(rows pgx.Rows) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Experience, &j.Skills, &j.Description, &j.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan job")
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate jobs")
	}
	return out, nil
}
