package services

import (
	"context"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/confhall/confhall/modules/feedback/domain/feedback"
	"github.com/confhall/confhall/pkg/composables"
	"github.com/confhall/confhall/pkg/tabular"
)

var exportHeader = []string{"SessionID", "UserEmail", "Rating", "Comment", "CreatedAt"}

type FeedbackService struct {
	repo     feedback.Repository
	validate *validator.Validate
}

func NewFeedbackService(repo feedback.Repository) *FeedbackService {
	return &FeedbackService{repo: repo, validate: validator.New()}
}

// Submit stores a rating on behalf of the authenticated user.
func (s *FeedbackService) Submit(ctx context.Context, dto *feedback.CreateDTO) (feedback.Feedback, error) {
	if err := s.validate.Struct(dto); err != nil {
		return feedback.Feedback{}, err
	}
	user, err := composables.UseUser(ctx)
	if err != nil {
		return feedback.Feedback{}, err
	}
	return s.repo.Create(ctx, feedback.Feedback{
		Category:  dto.Category,
		SessionID: dto.SessionID,
		UserEmail: user.Email,
		Rating:    dto.Rating,
		Comment:   dto.Comment,
	})
}

func (s *FeedbackService) ForSession(ctx context.Context, sessionID string) ([]feedback.Feedback, error) {
	return s.repo.GetBySessionID(ctx, sessionID)
}

// MyFeedback lists everything the authenticated user has submitted.
func (s *FeedbackService) MyFeedback(ctx context.Context) ([]feedback.Feedback, error) {
	user, err := composables.UseUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByUserEmail(ctx, user.Email)
}

func (s *FeedbackService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// ExportCSV renders every stored rating as a CSV document.
func (s *FeedbackService) ExportCSV(ctx context.Context) ([]byte, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	records := make([][]string, 0, len(all))
	for _, f := range all {
		records = append(records, []string{
			f.SessionID,
			f.UserEmail,
			strconv.Itoa(f.Rating),
			f.Comment,
			f.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	enc := tabular.Encoder{Header: exportHeader}
	return enc.Encode(records)
}
