package services

import (
	"context"
	"strconv"

	"github.com/confhall/confhall/modules/jobs/domain/candidacy"
	"github.com/confhall/confhall/pkg/composables"
	"github.com/confhall/confhall/pkg/tabular"
)

var applicationExportHeader = []string{"ID", "Job Title", "Applicant Email", "Name", "Phone", "Applied Date", "Resume File"}

type ApplicationService struct {
	repo candidacy.Repository
}

func NewApplicationService(repo candidacy.Repository) *ApplicationService {
	return &ApplicationService{repo: repo}
}

// ApplyDTO carries the application form fields; the attached resume file is
// stored separately and referenced by ResumeFile.
type ApplyDTO struct {
	JobID      string
	JobTitle   string
	Company    string
	Name       string
	Phone      string
	ResumeFile string
}

func (s *ApplicationService) Submit(ctx context.Context, dto *ApplyDTO) (candidacy.Application, error) {
	user, err := composables.UseUser(ctx)
	if err != nil {
		return candidacy.Application{}, err
	}
	return s.repo.Create(ctx, candidacy.Application{
		UserEmail:  user.Email,
		JobID:      dto.JobID,
		JobTitle:   dto.JobTitle,
		Company:    dto.Company,
		Name:       dto.Name,
		Phone:      dto.Phone,
		ResumeFile: dto.ResumeFile,
	})
}

func (s *ApplicationService) GetAll(ctx context.Context) ([]candidacy.Application, error) {
	return s.repo.GetAll(ctx)
}

// ExportCSV renders every submitted application as a CSV document.
func (s *ApplicationService) ExportCSV(ctx context.Context) ([]byte, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	records := make([][]string, 0, len(all))
	for _, a := range all {
		records = append(records, []string{
			strconv.Itoa(a.ID),
			a.JobTitle,
			a.UserEmail,
			a.Name,
			a.Phone,
			a.CreatedAt.UTC().Format(exportDateLayout),
			a.ResumeFile,
		})
	}
	enc := tabular.Encoder{Header: applicationExportHeader}
	return enc.Encode(records)
}
