package attendee

import (
	"context"
	"time"
)

// WhitelistEntry is a single registered attendee record. Email may be empty
// when the uploaded row carried none; such rows are still kept.
type WhitelistEntry struct {
	ID        int       `json:"-"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

type Repository interface {
	GetAll(ctx context.Context) ([]WhitelistEntry, error)
	ReplaceAll(ctx context.Context, entries []WhitelistEntry) (int, error)
	Count(ctx context.Context) (int64, error)
}
