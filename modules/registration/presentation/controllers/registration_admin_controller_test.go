package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/confhall/confhall/modules/registration/domain/attendee"
	"github.com/confhall/confhall/modules/registration/services"
	"github.com/confhall/confhall/pkg/application"
	"github.com/confhall/confhall/pkg/eventbus"
)

type whitelistRepoStub struct {
	entries []attendee.WhitelistEntry
}

func (f *whitelistRepoStub) GetAll(ctx context.Context) ([]attendee.WhitelistEntry, error) {
	return f.entries, nil
}

func (f *whitelistRepoStub) ReplaceAll(ctx context.Context, entries []attendee.WhitelistEntry) (int, error) {
	f.entries = entries
	return len(entries), nil
}

func (f *whitelistRepoStub) Count(ctx context.Context) (int64, error) {
	return int64(len(f.entries)), nil
}

func newTestApp(repo attendee.Repository) application.Application {
	logger := logrus.New()
	app := application.New(&application.ApplicationOptions{
		Logger:   logger,
		EventBus: eventbus.NewEventPublisher(logger),
	})
	app.RegisterServices(services.NewWhitelistService(repo, app.EventPublisher()))
	return app
}

func multipartCSV(t *testing.T, contents string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="whitelist.csv"`}
	header["Content-Type"] = []string{"text/csv"}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadWhitelist_ReplacesAndLowercases(t *testing.T) {
	repo := &whitelistRepoStub{entries: []attendee.WhitelistEntry{{Email: "old@example.com"}}}
	c := NewRegistrationAdminController(newTestApp(repo)).(*RegistrationAdminController)

	body, contentType := multipartCSV(t,
		"email,name,phone\n"+
			"Alice@Example.COM,Alice,555-0100\n"+
			",Walk-in,\n")
	req := httptest.NewRequest(http.MethodPost, "/admin/uploadWhitelist", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	c.Upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "2 attendees uploaded successfully", resp["message"])
	require.Len(t, repo.entries, 2)
	require.Equal(t, "alice@example.com", repo.entries[0].Email)
	require.Equal(t, "", repo.entries[1].Email)
}
