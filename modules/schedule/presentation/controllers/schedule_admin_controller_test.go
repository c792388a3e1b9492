package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/confhall/confhall/modules/schedule/domain/session"
	"github.com/confhall/confhall/modules/schedule/services"
	"github.com/confhall/confhall/pkg/application"
	"github.com/confhall/confhall/pkg/eventbus"
)

type sessionRepoStub struct {
	sessions []session.Session
}

func (f *sessionRepoStub) GetAll(ctx context.Context) ([]session.Session, error) {
	return f.sessions, nil
}

func (f *sessionRepoStub) GetBySessionID(ctx context.Context, sessionID string) (session.Session, error) {
	for _, s := range f.sessions {
		if s.SessionID == sessionID {
			return s, nil
		}
	}
	return session.Session{}, session.ErrNotFound
}

func (f *sessionRepoStub) Create(ctx context.Context, entity session.Session) (session.Session, error) {
	for _, s := range f.sessions {
		if s.SessionID == entity.SessionID {
			return session.Session{}, session.ErrSessionIDTaken
		}
	}
	f.sessions = append(f.sessions, entity)
	return entity, nil
}

func (f *sessionRepoStub) ReplaceAll(ctx context.Context, entities []session.Session) (int, error) {
	f.sessions = entities
	return len(entities), nil
}

func (f *sessionRepoStub) Count(ctx context.Context) (int64, error) {
	return int64(len(f.sessions)), nil
}

func newTestApp(repo session.Repository) application.Application {
	logger := logrus.New()
	app := application.New(&application.ApplicationOptions{
		Logger:   logger,
		EventBus: eventbus.NewEventPublisher(logger),
	})
	app.RegisterServices(services.NewSessionService(repo, app.EventPublisher()))
	return app
}

func multipartCSV(t *testing.T, field, contents string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="` + field + `"; filename="upload.csv"`}
	header["Content-Type"] = []string{"text/csv"}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadSessions_ReplacesSchedule(t *testing.T) {
	repo := &sessionRepoStub{sessions: []session.Session{{SessionID: "OLD1", Title: "Old"}}}
	c := NewScheduleAdminController(newTestApp(repo)).(*ScheduleAdminController)

	body, contentType := multipartCSV(t, "file",
		"sessionId,title,speakers,time,room,track\n"+
			"ACD101,AWS Basics,John Doe,10:00 AM,Hall A,Beginner\n"+
			",Missing ID,,,\n")
	req := httptest.NewRequest(http.MethodPost, "/admin/uploadSessions", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	c.Upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "1 sessions uploaded successfully", resp["message"])
	require.Len(t, repo.sessions, 1)
	require.Equal(t, "ACD101", repo.sessions[0].SessionID)
}

func TestUploadSessions_MalformedFileKeepsOldSchedule(t *testing.T) {
	repo := &sessionRepoStub{sessions: []session.Session{{SessionID: "OLD1", Title: "Old"}}}
	c := NewScheduleAdminController(newTestApp(repo)).(*ScheduleAdminController)

	body, contentType := multipartCSV(t, "file", "sessionId,title\n\"broken\n")
	req := httptest.NewRequest(http.MethodPost, "/admin/uploadSessions", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	c.Upload(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Upload failed")
	require.Len(t, repo.sessions, 1)
}

func TestCreateSession_DuplicateID(t *testing.T) {
	repo := &sessionRepoStub{sessions: []session.Session{{SessionID: "ACD101", Title: "Taken"}}}
	c := NewScheduleAdminController(newTestApp(repo)).(*ScheduleAdminController)

	req := httptest.NewRequest(http.MethodPost, "/admin/createSession",
		strings.NewReader(`{"sessionId":"ACD101","title":"AWS Basics"}`))
	rec := httptest.NewRecorder()

	c.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Session ID already exists")
}

func TestGetSession_NotFound(t *testing.T) {
	c := NewSessionController(newTestApp(&sessionRepoStub{})).(*SessionController)

	req := httptest.NewRequest(http.MethodGet, "/sessions/NOPE", nil)
	req = mux.SetURLVars(req, map[string]string{"sessionId": "NOPE"})
	rec := httptest.NewRecorder()

	c.Get(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Session not found")
}
