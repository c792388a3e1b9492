package services

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/confhall/confhall/modules/registration/domain/attendee"
	"github.com/confhall/confhall/pkg/eventbus"
	"github.com/confhall/confhall/pkg/tabular"
)

type whitelistRepoFake struct {
	entries []attendee.WhitelistEntry
}

func (f *whitelistRepoFake) GetAll(ctx context.Context) ([]attendee.WhitelistEntry, error) {
	return f.entries, nil
}

func (f *whitelistRepoFake) ReplaceAll(ctx context.Context, entries []attendee.WhitelistEntry) (int, error) {
	f.entries = entries
	return len(entries), nil
}

func (f *whitelistRepoFake) Count(ctx context.Context) (int64, error) {
	return int64(len(f.entries)), nil
}

func newWhitelistService(repo attendee.Repository) *WhitelistService {
	return NewWhitelistService(repo, eventbus.NewEventPublisher(logrus.New()))
}

func TestWhitelistImport_LowercasesEmails(t *testing.T) {
	repo := &whitelistRepoFake{}
	svc := newWhitelistService(repo)

	count, err := svc.ImportRows(context.Background(), []tabular.Row{
		{"email": "  Alice@Example.COM ", "name": "Alice", "phone": "555-0100"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, "alice@example.com", repo.entries[0].Email)
	require.Equal(t, "Alice", repo.entries[0].Name)
	require.Equal(t, "555-0100", repo.entries[0].Phone)
}

func TestWhitelistImport_KeepsRowsWithoutEmail(t *testing.T) {
	repo := &whitelistRepoFake{}
	svc := newWhitelistService(repo)

	count, err := svc.ImportRows(context.Background(), []tabular.Row{
		{"email": "bob@example.com", "name": "Bob"},
		{"name": "Walk-in", "phone": "555-0101"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Equal(t, "", repo.entries[1].Email)
	require.Equal(t, "Walk-in", repo.entries[1].Name)
}

func TestWhitelistImport_EmptyBatchClearsWhitelist(t *testing.T) {
	repo := &whitelistRepoFake{entries: []attendee.WhitelistEntry{{Email: "old@example.com"}}}
	svc := newWhitelistService(repo)

	count, err := svc.ImportRows(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	total, err := svc.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(0), total)
}
