package persistence

import (
	"context"

	"github.com/pkg/errors"

	"github.com/confhall/confhall/modules/jobs/domain/candidacy"
	"github.com/confhall/confhall/pkg/composables"
)

type ApplicationRepository struct{}

func NewApplicationRepository() candidacy.Repository {
	return &ApplicationRepository{}
}

func (r *ApplicationRepository) Create(ctx context.Context, entity candidacy.Application) (candidacy.Application, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return candidacy.Application{}, err
	}

	err = pool.QueryRow(ctx, `
		INSERT INTO job_applications (user_email, job_id, job_title, company, name, phone, resume_file)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, entity.UserEmail, entity.JobID, entity.JobTitle, entity.Company, entity.Name, entity.Phone, entity.ResumeFile).
		Scan(&entity.ID, &entity.CreatedAt)
	if err != nil {
		return candidacy.Application{}, errors.Wrap(err, "insert job application")
	}
	return entity, nil
}

func (r *ApplicationRepository) GetAll(ctx context.Context) ([]candidacy.Application, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `
		SELECT id, user_email, job_id, job_title, company, name, phone, resume_file, created_at
		FROM job_applications
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, errors.Wrap(err, "query job applications")
	}
	defer rows.Close()

	out := make([]candidacy.Application, 0)
	for rows.Next() {
		var e candidacy.Application
		if err := rows.Scan(&e.ID, &e.UserEmail, &e.JobID, &e.JobTitle, &e.Company, &e.Name, &e.Phone, &e.ResumeFile, &e.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan job application")
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate job applications")
	}
	return out, nil
}

func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM job_applications`).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "count job applications")
	}
	return count, nil
}
