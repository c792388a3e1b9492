package session

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrNotFound       = errors.New("session not found")
	ErrSessionIDTaken = errors.New("session id already exists")
)

const (
	DefaultSpeaker = "TBA"
	DefaultTime    = "TBA"
	DefaultRoom    = "TBA"
	DefaultTrack   = "General"
)

// Session is one talk on the conference schedule. Time is free text as
// supplied by the organizers, not a parsed timestamp.
type Session struct {
	ID        int       `json:"-"`
	SessionID string    `json:"sessionId"`
	Title     string    `json:"title"`
	Speaker   string    `json:"speaker"`
	Time      string    `json:"time"`
	Room      string    `json:"room"`
	Track     string    `json:"track"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateDTO struct {
	SessionID string `json:"sessionId" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Speaker   string `json:"speaker"`
	Time      string `json:"time"`
	Room      string `json:"room"`
	Track     string `json:"track"`
}

func (d *CreateDTO) Entity() Session {
	s := Session{
		SessionID: d.SessionID,
		Title:     d.Title,
		Speaker:   d.Speaker,
		Time:      d.Time,
		Room:      d.Room,
		Track:     d.Track,
	}
	if s.Speaker == "" {
		s.Speaker = DefaultSpeaker
	}
	if s.Time == "" {
		s.Time = DefaultTime
	}
	if s.Room == "" {
		s.Room = DefaultRoom
	}
	if s.Track == "" {
		s.Track = DefaultTrack
	}
	return s
}

type Repository interface {
	GetAll(ctx context.Context) ([]Session, error)
	GetBySessionID(ctx context.Context, sessionID string) (Session, error)
	Create(ctx context.Context, entity Session) (Session, error)
	// ReplaceAll atomically swaps the whole schedule for the given batch and
	// reports how many rows were installed. Readers observe either the old
	// or the new schedule, never a mix.
	ReplaceAll(ctx context.Context, entities []Session) (int, error)
	Count(ctx context.Context) (int64, error)
}
