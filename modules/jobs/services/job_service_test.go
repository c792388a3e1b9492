package services

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/confhall/confhall/modules/jobs/domain/job"
	"github.com/confhall/confhall/pkg/eventbus"
	"github.com/confhall/confhall/pkg/tabular"
)

type jobRepoFake struct {
	jobs []job.Job
}

func (f *jobRepoFake) GetAll(ctx context.Context) ([]job.Job, error) {
	return f.jobs, nil
}

func (f *jobRepoFake) Create(ctx context.Context, entity job.Job) (job.Job, error) {
	entity.ID = len(f.jobs) + 1
	f.jobs = append(f.jobs, entity)
	return entity, nil
}

func (f *jobRepoFake) AppendAll(ctx context.Context, entities []job.Job) (int, error) {
	f.jobs = append(f.jobs, entities...)
	return len(entities), nil
}

func (f *jobRepoFake) Count(ctx context.Context) (int64, error) {
	return int64(len(f.jobs)), nil
}

func newJobService(repo job.Repository) *JobService {
	return NewJobService(repo, eventbus.NewEventPublisher(logrus.New()))
}

func TestJobImport_AppendsToExistingBoard(t *testing.T) {
	repo := &jobRepoFake{jobs: []job.Job{{Title: "SRE", Company: "Acme"}}}
	svc := newJobService(repo)

	count, dropped, err := svc.ImportRows(context.Background(), []tabular.Row{
		{"title": "Backend Engineer", "company": "Initech", "location": "Remote"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, 0, dropped)
	require.Len(t, repo.jobs, 2)
	require.Equal(t, "Backend Engineer", repo.jobs[1].Title)
	require.Equal(t, "Remote", repo.jobs[1].Location)
}

func TestJobImport_DropsRowsMissingTitleOrCompany(t *testing.T) {
	repo := &jobRepoFake{}
	svc := newJobService(repo)

	count, dropped, err := svc.ImportRows(context.Background(), []tabular.Row{
		{"title": "Backend Engineer"},
		{"company": "Initech"},
	})
	require.NoError(t, err)
	require.Equal(t, 0, count)
	require.Equal(t, 2, dropped)
	require.Empty(t, repo.jobs)
}

func TestJobImport_DefaultsOptionalFieldsToEmpty(t *testing.T) {
	repo := &jobRepoFake{}
	svc := newJobService(repo)

	count, _, err := svc.ImportRows(context.Background(), []tabular.Row{
		{"title": "Backend Engineer", "company": "Initech"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, "", repo.jobs[0].Location)
	require.Equal(t, "", repo.jobs[0].Experience)
	require.Equal(t, "", repo.jobs[0].Skills)
	require.Equal(t, "", repo.jobs[0].Description)
}

func TestJobCreate_RequiresTitleAndCompany(t *testing.T) {
	svc := newJobService(&jobRepoFake{})

	_, err := svc.Create(context.Background(), &job.CreateDTO{Title: "Backend Engineer"})
	require.Error(t, err)

	created, err := svc.Create(context.Background(), &job.CreateDTO{Title: "Backend Engineer", Company: "Initech"})
	require.NoError(t, err)
	require.Equal(t, "Initech", created.Company)
}
