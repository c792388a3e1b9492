package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/confhall/confhall/modules/schedule/domain/session"
	"github.com/confhall/confhall/pkg/composables"
)

// Advisory lock key serializing concurrent schedule replacements.
const sessionsLockKey = int64(740001)

const uniqueViolation = "23505"

type SessionRepository struct{}

func NewSessionRepository() session.Repository {
	return &SessionRepository{}
}

func (r *SessionRepository) GetAll(ctx context.Context) ([]session.Session, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `
		SELECT id, session_id, title, speaker, time, room, track, created_at
		FROM sessions
		ORDER BY time ASC
	`)
	if err != nil {
		return nil, errors.Wrap(err, "query sessions")
	}
	defer rows.Close()

	return scanSessions(rows)
}

func (r *SessionRepository) GetBySessionID(ctx context.Context, sessionID string) (session.Session, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return session.Session{}, err
	}

	var s session.Session
	err = pool.QueryRow(ctx, `
		SELECT id, session_id, title, speaker, time, room, track, created_at
		FROM sessions
		WHERE session_id = $1
	`, sessionID).Scan(&s.ID, &s.SessionID, &s.Title, &s.Speaker, &s.Time, &s.Room, &s.Track, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.Session{}, session.ErrNotFound
		}
		return session.Session{}, errors.Wrap(err, "query session")
	}
	return s, nil
}

func (r *SessionRepository) Create(ctx context.Context, entity session.Session) (session.Session, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return session.Session{}, err
	}

	err = pool.QueryRow(ctx, `
		INSERT INTO sessions (session_id, title, speaker, time, room, track)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, entity.SessionID, entity.Title, entity.Speaker, entity.Time, entity.Room, entity.Track).
		Scan(&entity.ID, &entity.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return session.Session{}, session.ErrSessionIDTaken
		}
		return session.Session{}, errors.Wrap(err, "insert session")
	}
	return entity, nil
}

func (r *SessionRepository) ReplaceAll(ctx context.Context, entities []session.Session) (int, error) {
	// The swap must not be interrupted by a client disconnect once started.
	ctx = context.WithoutCancel(ctx)

	inserted := 0
	err := composables.InTx(ctx, func(txCtx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(txCtx, `SELECT pg_advisory_xact_lock($1)`, sessionsLockKey); err != nil {
			return errors.Wrap(err, "acquire sessions lock")
		}
		if _, err := tx.Exec(txCtx, `DELETE FROM sessions`); err != nil {
			return errors.Wrap(err, "clear sessions")
		}
		for _, entity := range entities {
			tag, err := tx.Exec(txCtx, `
				INSERT INTO sessions (session_id, title, speaker, time, room, track)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (session_id) DO NOTHING
			`, entity.SessionID, entity.Title, entity.Speaker, entity.Time, entity.Room, entity.Track)
			if err != nil {
				return errors.Wrap(err, "insert session")
			}
			inserted += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *SessionRepository) Count(ctx context.Context) (int64, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "count sessions")
	}
	return count, nil
}

func scanSessions(rows pgx.Rows) ([]session.Session, error) {
	out := make([]session.Session, 0)
	for rows.Next() {
		var s session.Session
		if err := rows.Scan(&s.ID, &s.SessionID, &s.Title, &s.Speaker, &s.Time, &s.Room, &s.Track, &s.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan session")
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate sessions")
	}
	return out, nil
}
