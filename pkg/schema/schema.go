package schema

import (
	"context"
	"embed"
	"io/fs"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Apply executes every embedded *.sql schema file registered by the loaded
// modules. Schema files are written to be idempotent (CREATE TABLE IF NOT
// EXISTS), so Apply is safe to run on every startup.
func Apply(ctx context.Context, pool *pgxpool.Pool, schemas []*embed.FS, log *logrus.Logger) error {
	for _, schemaFS := range schemas {
		err := fs.WalkDir(schemaFS, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(path) != ".sql" {
				return nil
			}
			contents, err := schemaFS.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "read schema %s", path)
			}
			if _, err := pool.Exec(ctx, string(contents)); err != nil {
				return errors.Wrapf(err, "apply schema %s", path)
			}
			log.WithField("schema", path).Debug("schema applied")
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
