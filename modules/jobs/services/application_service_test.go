package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/confhall/confhall/modules/jobs/domain/candidacy"
	"github.com/confhall/confhall/modules/jobs/domain/resume"
	"github.com/confhall/confhall/pkg/composables"
)

type applicationRepoFake struct {
	apps []candidacy.Application
}

func (f *applicationRepoFake) Create(ctx context.Context, entity candidacy.Application) (candidacy.Application, error) {
	entity.ID = len(f.apps) + 1
	if entity.CreatedAt.IsZero() {
		entity.CreatedAt = time.Now()
	}
	f.apps = append(f.apps, entity)
	return entity, nil
}

func (f *applicationRepoFake) GetAll(ctx context.Context) ([]candidacy.Application, error) {
	return f.apps, nil
}

func (f *applicationRepoFake) Count(ctx context.Context) (int64, error) {
	return int64(len(f.apps)), nil
}

type resumeRepoFake struct {
	resumes []resume.Resume
}

func (f *resumeRepoFake) Create(ctx context.Context, entity resume.Resume) (resume.Resume, error) {
	entity.ID = len(f.resumes) + 1
	if entity.CreatedAt.IsZero() {
		entity.CreatedAt = time.Now()
	}
	f.resumes = append(f.resumes, entity)
	return entity, nil
}

func (f *resumeRepoFake) GetAll(ctx context.Context) ([]resume.Resume, error) {
	return f.resumes, nil
}

func (f *resumeRepoFake) Count(ctx context.Context) (int64, error) {
	return int64(len(f.resumes)), nil
}

func attendeeCtx(email string) context.Context {
	return composables.WithUser(context.Background(), composables.User{Email: email, Role: "attendee"})
}

func TestApplicationSubmit_StampsAuthenticatedUser(t *testing.T) {
	repo := &applicationRepoFake{}
	svc := NewApplicationService(repo)

	created, err := svc.Submit(attendeeCtx("alice@example.com"), &ApplyDTO{
		JobID:    "42",
		JobTitle: "Backend Engineer",
		Company:  "Initech",
		Name:     "Alice",
	})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", created.UserEmail)
	require.Equal(t, "Backend Engineer", created.JobTitle)
}

func TestApplicationSubmit_RequiresUser(t *testing.T) {
	svc := NewApplicationService(&applicationRepoFake{})

	_, err := svc.Submit(context.Background(), &ApplyDTO{JobTitle: "Backend Engineer"})
	require.ErrorIs(t, err, composables.ErrNoUser)
}

func TestApplicationExportCSV_QuotesTitles(t *testing.T) {
	applied := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &applicationRepoFake{apps: []candidacy.Application{
		{ID: 7, JobTitle: `Engineer, "Platform"`, UserEmail: "alice@example.com", Name: "Alice", Phone: "555-0100", ResumeFile: "abc123", CreatedAt: applied},
	}}
	svc := NewApplicationService(repo)

	body, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)
	require.Equal(t,
		"ID,Job Title,Applicant Email,Name,Phone,Applied Date,Resume File\n"+
			"7,\"Engineer, \"\"Platform\"\"\",alice@example.com,Alice,555-0100,2025-06-01,abc123\n",
		string(body))
}

func TestResumeExportCSV_EmptyIsHeaderOnly(t *testing.T) {
	svc := NewResumeService(&resumeRepoFake{})

	body, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ID,User Email,Name,Phone,Experience,Skills,Upload Date,File\n", string(body))
}

func TestResumeSubmit_KeepsFormFields(t *testing.T) {
	repo := &resumeRepoFake{}
	svc := NewResumeService(repo)

	created, err := svc.Submit(attendeeCtx("bob@example.com"), &SubmitDTO{
		Name:       "Bob",
		Phone:      "555-0101",
		Experience: "5 years",
		Skills:     "Go, Postgres",
		Filename:   "f00d",
	})
	require.NoError(t, err)
	require.Equal(t, "bob@example.com", created.UserEmail)
	require.Equal(t, "Go, Postgres", created.Skills)
	require.Equal(t, "f00d", created.Filename)
}
