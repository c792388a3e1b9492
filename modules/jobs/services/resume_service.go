package services

import (
	"context"
	"strconv"

	"github.com/confhall/confhall/modules/jobs/domain/resume"
	"github.com/confhall/confhall/pkg/composables"
	"github.com/confhall/confhall/pkg/tabular"
)

var resumeExportHeader = []string{"ID", "User Email", "Name", "Phone", "Experience", "Skills", "Upload Date", "File"}

const exportDateLayout = "2006-01-02"

type ResumeService struct {
	repo resume.Repository
}

func NewResumeService(repo resume.Repository) *ResumeService {
	return &ResumeService{repo: repo}
}

// SubmitDTO carries the resume form fields; the file is stored separately
// and referenced by Filename.
type SubmitDTO struct {
	Name       string
	Phone      string
	Experience string
	Skills     string
	Filename   string
}

func (s *ResumeService) Submit(ctx context.Context, dto *SubmitDTO) (resume.Resume, error) {
	user, err := composables.UseUser(ctx)
	if err != nil {
		return resume.Resume{}, err
	}
	return s.repo.Create(ctx, resume.Resume{
		UserEmail:  user.Email,
		Name:       dto.Name,
		Phone:      dto.Phone,
		Experience: dto.Experience,
		Skills:     dto.Skills,
		Filename:   dto.Filename,
	})
}

func (s *ResumeService) GetAll(ctx context.Context) ([]resume.Resume, error) {
	return s.repo.GetAll(ctx)
}

// ExportCSV renders every stored resume profile as a CSV document.
func (s *ResumeService) ExportCSV(ctx context.Context) ([]byte, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	records := make([][]string, 0, len(all))
	for _, r := range all {
		records = append(records, []string{
			strconv.Itoa(r.ID),
			r.UserEmail,
			r.Name,
			r.Phone,
			r.Experience,
			r.Skills,
			r.CreatedAt.UTC().Format(exportDateLayout),
			r.Filename,
		})
	}
	enc := tabular.Encoder{Header: resumeExportHeader}
	return enc.Encode(records)
}
