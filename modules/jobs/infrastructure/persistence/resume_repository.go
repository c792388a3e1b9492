package persistence

import (
	"context"

	"github.com/pkg/errors"

	"github.com/confhall/confhall/modules/jobs/domain/resume"
	"github.com/confhall/confhall/pkg/composables"
)

type ResumeRepository struct{}

func NewResumeRepository() resume.Repository {
	return &ResumeRepository{}
}

func (r *ResumeRepository) Create(ctx context.Context, entity resume.Resume) (resume.Resume, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return resume.Resume{}, err
	}

	err = pool.QueryRow(ctx, `
		INSERT INTO resumes (user_email, name, phone, experience, skills, filename)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, entity.UserEmail, entity.Name, entity.Phone, entity.Experience, entity.Skills, entity.Filename).
		Scan(&entity.ID, &entity.CreatedAt)
	if err != nil {
		return resume.Resume{}, errors.Wrap(err, "insert resume")
	}
	return entity, nil
}

func (r *ResumeRepository) GetAll(ctx context.Context) ([]resume.Resume, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `
		SELECT id, user_email, name, phone, experience, skills, filename, created_at
		FROM resumes
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, errors.Wrap(err, "query resumes")
	}
	defer rows.Close()

	out := make([]resume.Resume, 0)
	for rows.Next() {
		var e resume.Resume
		if err := rows.Scan(&e.ID, &e.UserEmail, &e.Name, &e.Phone, &e.Experience, &e.Skills, &e.Filename, &e.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan resume")
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate resumes")
	}
	return out, nil
}

func (r *ResumeRepository) Count(ctx context.Context) (int64, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM resumes`).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "count resumes")
	}
	return count, nil
}
