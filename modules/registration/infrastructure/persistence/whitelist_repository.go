package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/confhall/confhall/modules/registration/domain/attendee"
	"github.com/confhall/confhall/pkg/composables"
)

// Advisory lock key serializing concurrent whitelist replacements.
const whitelistLockKey = int64(740002)

type WhitelistRepository struct{}

func NewWhitelistRepository() attendee.Repository {
	return &WhitelistRepository{}
}

func (r *WhitelistRepository) GetAll(ctx context.Context) ([]attendee.WhitelistEntry, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `
		SELECT id, COALESCE(email, ''), name, phone, created_at
		FROM whitelist
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, errors.Wrap(err, "query whitelist")
	}
	defer rows.Close()

	out := make([]attendee.WhitelistEntry, 0)
	for rows.Next() {
		var e attendee.WhitelistEntry
		if err := rows.Scan(&e.ID, &e.Email, &e.Name, &e.Phone, &e.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan whitelist entry")
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate whitelist")
	}
	return out, nil
}

func (r *WhitelistRepository) ReplaceAll(ctx context.Context, entries []attendee.WhitelistEntry) (int, error) {
	// The swap must not be interrupted by a client disconnect once started.
	ctx = context.WithoutCancel(ctx)

	inserted := 0
	err := composables.InTx(ctx, func(txCtx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(txCtx, `SELECT pg_advisory_xact_lock($1)`, whitelistLockKey); err != nil {
			return errors.Wrap(err, "acquire whitelist lock")
		}
		if _, err := tx.Exec(txCtx, `DELETE FROM whitelist`); err != nil {
			return errors.Wrap(err, "clear whitelist")
		}
		for _, entry := range entries {
			// NULLIF keeps rows without an email out of the unique index.
			tag, err := tx.Exec(txCtx, `
				INSERT INTO whitelist (email, name, phone)
				VALUES (NULLIF($1, ''), $2, $3)
				ON CONFLICT (email) WHERE email IS NOT NULL DO NOTHING
			`, entry.Email, entry.Name, entry.Phone)
			if err != nil {
				return errors.Wrap(err, "insert whitelist entry")
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

func (r *WhitelistRepository) Count(ctx context.Context) (int64, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM whitelist`).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "count whitelist")
	}
	return count, nil
}
