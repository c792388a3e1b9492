package composables

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/confhall/confhall/pkg/constants"
)

var ErrNoUser = errors.New("no authenticated user in context")

// User is the authenticated principal attached by the auth middleware.
type User struct {
	Email string
	Role  string
}

func (u User) IsAdmin() bool {
	return u.Role == "admin"
}

func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, constants.UserKey, u)
}

func UseUser(ctx context.Context) (User, error) {
	u, ok := ctx.Value(constants.UserKey).(User)
	if !ok {
		return User{}, ErrNoUser
	}
	return u, nil
}

func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

// UseLogger falls back to the standard logger so callers never get nil.
func UseLogger(ctx context.Context) *logrus.Entry {
	if entry, ok := ctx.Value(constants.LoggerKey).(*logrus.Entry); ok {
		return entry
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
