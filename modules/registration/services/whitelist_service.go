package services

import (
	"context"
	"strings"

	"github.com/confhall/confhall/modules/registration/domain/attendee"
	"github.com/confhall/confhall/pkg/eventbus"
	"github.com/confhall/confhall/pkg/tabular"
)

// WhitelistImported is published after a successful whitelist upload.
type WhitelistImported struct {
	Count int
}

type WhitelistService struct {
	repo      attendee.Repository
	publisher eventbus.EventBus
}

func NewWhitelistService(repo attendee.Repository, publisher eventbus.EventBus) *WhitelistService {
	return &WhitelistService{repo: repo, publisher: publisher}
}

func (s *WhitelistService) GetAll(ctx context.Context) ([]attendee.WhitelistEntry, error) {
	return s.repo.GetAll(ctx)
}

func (s *WhitelistService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// ImportRows replaces the whole whitelist with the uploaded rows. Unlike the
// schedule profile every row is kept, even without an email; emails are
// lowercased so lookups are case-insensitive.
func (s *WhitelistService) ImportRows(ctx context.Context, rows []tabular.Row) (int, error) {
	entries := normalizeWhitelistRows(rows)

	inserted, err := s.repo.ReplaceAll(ctx, entries)
	if err != nil {
		return 0, err
	}

	s.publisher.Publish(WhitelistImported{Count: inserted})
	return inserted, nil
}

func normalizeWhitelistRows(rows []tabular.Row) []attendee.WhitelistEntry {
	entries := make([]attendee.WhitelistEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, attendee.WhitelistEntry{
			Email: strings.ToLower(strings.TrimSpace(row["email"])),
			Name:  row["name"],
			Phone: row["phone"],
		})
	}
	return entries
}
