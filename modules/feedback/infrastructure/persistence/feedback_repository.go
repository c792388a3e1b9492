package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/confhall/confhall/modules/feedback/domain/feedback"
	"github.com/confhall/confhall/pkg/composables"
)

const feedbackColumns = `id, category, session_id, user_email, rating, comment, created_at`

type FeedbackRepository struct{}

func NewFeedbackRepository() feedback.Repository {
	return &FeedbackRepository{}
}

func (r *FeedbackRepository) Create(ctx context.Context, entity feedback.Feedback) (feedback.Feedback, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return feedback.Feedback{}, err
	}

	err = pool.QueryRow(ctx, `
		INSERT INTO feedback (category, session_id, user_email, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, entity.Category, entity.SessionID, entity.UserEmail, entity.Rating, entity.Comment).
		Scan(&entity.ID, &entity.CreatedAt)
	if err != nil {
		return feedback.Feedback{}, errors.Wrap(err, "insert feedback")
	}
	return entity, nil
}

func (r *FeedbackRepository) GetAll(ctx context.Context) ([]feedback.Feedback, error) {
	return r.query(ctx, `SELECT `+feedbackColumns+` FROM feedback ORDER BY created_at ASC`)
}

func (r *FeedbackRepository) GetBySessionID(ctx context.Context, sessionID string) ([]feedback.Feedback, error) {
	return r.query(ctx, `SELECT `+feedbackColumns+` FROM feedback WHERE session_id = $1 ORDER BY created_at ASC`, sessionID)
}

func (r *FeedbackRepository) GetByUserEmail(ctx context.Context, email string) ([]feedback.Feedback, error) {
	return r.query(ctx, `SELECT `+feedbackColumns+` FROM feedback WHERE user_email = $1 ORDER BY created_at ASC`, email)
}

func (r *FeedbackRepository) Count(ctx context.Context) (int64, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM feedback`).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "count feedback")
	}
	return count, nil
}

func (r *FeedbackRepository) query(ctx context.Context, sql string, args ...any) ([]feedback.Feedback, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query feedback")
	}
	defer rows.Close()

	return scanFeedback(rows)
}

func scanFeedback(rows pgx.Rows) ([]feedback.Feedback, error) {
	out := make([]feedback.Feedback, 0)
	for rows.Next() {
		var f feedback.Feedback
		if err := rows.Scan(&f.ID, &f.Category, &f.SessionID, &f.UserEmail, &f.Rating, &f.Comment, &f.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan feedback")
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate feedback")
	}
	return out, nil
}
