package services

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/confhall/confhall/modules/schedule/domain/session"
	"github.com/confhall/confhall/pkg/composables"
	"github.com/confhall/confhall/pkg/eventbus"
	"github.com/confhall/confhall/pkg/tabular"
)

// SessionsImported is published after a successful schedule upload.
type SessionsImported struct {
	Count   int
	Dropped int
}

type SessionService struct {
	repo      session.Repository
	publisher eventbus.EventBus
	validate  *validator.Validate
}

func NewSessionService(repo session.Repository, publisher eventbus.EventBus) *SessionService {
	return &SessionService{
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(),
	}
}

func (s *SessionService) GetAll(ctx context.Context) ([]session.Session, error) {
	return s.repo.GetAll(ctx)
}

func (s *SessionService) GetBySessionID(ctx context.Context, sessionID string) (session.Session, error) {
	return s.repo.GetBySessionID(ctx, sessionID)
}

func (s *SessionService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *SessionService) Create(ctx context.Context, dto *session.CreateDTO) (session.Session, error) {
	if err := s.validate.Struct(dto); err != nil {
		return session.Session{}, err
	}
	return s.repo.Create(ctx, dto.Entity())
}

// ImportRows normalizes decoded upload rows and replaces the entire
// schedule with the result. Rows lacking a sessionId or title are dropped,
// not treated as errors; the dropped count is returned for observability.
func (s *SessionService) ImportRows(ctx context.Context, rows []tabular.Row) (int, int, error) {
	entities, dropped := normalizeSessionRows(rows)

	inserted, err := s.repo.ReplaceAll(ctx, entities)
	if err != nil {
		return 0, dropped, err
	}

	if dropped > 0 {
		composables.UseLogger(ctx).
			WithField("dropped", dropped).
			Warn("session upload dropped rows missing sessionId/title")
	}
	s.publisher.Publish(SessionsImported{Count: inserted, Dropped: dropped})
	return inserted, dropped, nil
}

func normalizeSessionRows(rows []tabular.Row) ([]session.Session, int) {
	entities := make([]session.Session, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		if row["sessionId"] == "" || row["title"] == "" {
			dropped++
			continue
		}
		speaker := row["speakers"]
		if speaker == "" {
			speaker = row["speaker"]
		}
		entities = append(entities, session.Session{
			SessionID: row["sessionId"],
			Title:     row["title"],
			Speaker:   orDefault(speaker, session.DefaultSpeaker),
			Time:      orDefault(row["time"], session.DefaultTime),
			Room:      orDefault(row["room"], session.DefaultRoom),
			Track:     orDefault(row["track"], session.DefaultTrack),
		})
	}
	return entities, dropped
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
