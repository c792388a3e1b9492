package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/confhall/confhall/modules/feedback/domain/feedback"
	"github.com/confhall/confhall/pkg/composables"
)

type feedbackRepoFake struct {
	entries []feedback.Feedback
}

func (f *feedbackRepoFake) Create(ctx context.Context, entity feedback.Feedback) (feedback.Feedback, error) {
	entity.ID = len(f.entries) + 1
	if entity.CreatedAt.IsZero() {
		entity.CreatedAt = time.Now()
	}
	f.entries = append(f.entries, entity)
	return entity, nil
}

func (f *feedbackRepoFake) GetAll(ctx context.Context) ([]feedback.Feedback, error) {
	return f.entries, nil
}

func (f *feedbackRepoFake) GetBySessionID(ctx context.Context, sessionID string) ([]feedback.Feedback, error) {
	out := make([]feedback.Feedback, 0)
	for _, e := range f.entries {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *feedbackRepoFake) GetByUserEmail(ctx context.Context, email string) ([]feedback.Feedback, error) {
	out := make([]feedback.Feedback, 0)
	for _, e := range f.entries {
		if e.UserEmail == email {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *feedbackRepoFake) Count(ctx context.Context) (int64, error) {
	return int64(len(f.entries)), nil
}

func userCtx(email string) context.Context {
	return composables.WithUser(context.Background(), composables.User{Email: email, Role: "attendee"})
}

func TestSubmit_StampsAuthenticatedUser(t *testing.T) {
	repo := &feedbackRepoFake{}
	svc := NewFeedbackService(repo)

	created, err := svc.Submit(userCtx("alice@example.com"), &feedback.CreateDTO{
		Category:  "session",
		SessionID: "ACD101",
		Rating:    4,
		Comment:   "Great talk",
	})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", created.UserEmail)
	require.Equal(t, "ACD101", created.SessionID)
}

func TestSubmit_RejectsOutOfRangeRating(t *testing.T) {
	svc := NewFeedbackService(&feedbackRepoFake{})

	_, err := svc.Submit(userCtx("alice@example.com"), &feedback.CreateDTO{
		Category: "venue",
		Rating:   6,
	})
	require.Error(t, err)
}

func TestSubmit_RequiresUser(t *testing.T) {
	svc := NewFeedbackService(&feedbackRepoFake{})

	_, err := svc.Submit(context.Background(), &feedback.CreateDTO{
		Category: "venue",
		Rating:   3,
	})
	require.ErrorIs(t, err, composables.ErrNoUser)
}

func TestMyFeedback_FiltersByUser(t *testing.T) {
	repo := &feedbackRepoFake{entries: []feedback.Feedback{
		{UserEmail: "alice@example.com", Category: "venue", Rating: 5},
		{UserEmail: "bob@example.com", Category: "venue", Rating: 2},
	}}
	svc := NewFeedbackService(repo)

	mine, err := svc.MyFeedback(userCtx("alice@example.com"))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, 5, mine[0].Rating)
}

func TestExportCSV_EscapesAndFormats(t *testing.T) {
	created := time.Date(2025, 3, 9, 19, 30, 5, 0, time.UTC)
	repo := &feedbackRepoFake{entries: []feedback.Feedback{
		{SessionID: "ACD101", UserEmail: "alice@example.com", Rating: 4, Comment: `Loved it, "really"`, CreatedAt: created},
	}}
	svc := NewFeedbackService(repo)

	body, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)
	require.Equal(t,
		"SessionID,UserEmail,Rating,Comment,CreatedAt\n"+
			"ACD101,alice@example.com,4,\"Loved it, \"\"really\"\"\",2025-03-09T19:30:05Z\n",
		string(body))
}

func TestExportCSV_EmptyIsHeaderOnly(t *testing.T) {
	svc := NewFeedbackService(&feedbackRepoFake{})

	body, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)
	require.Equal(t, "SessionID,UserEmail,Rating,Comment,CreatedAt\n", string(body))
}
