package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/confhall/confhall/pkg/composables"
	"github.com/confhall/confhall/pkg/configuration"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "conf-data",
		Short:         "Conference data import/export tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newExportCmd())
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// connect builds a command context carrying the database pool and the
// configured logger, the same shape request middleware produces.
func connect(ctx context.Context) (context.Context, func(), error) {
	conf := configuration.Use()

	dialCtx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()
	pool, err := pgxpool.New(dialCtx, conf.Database.Opts)
	if err != nil {
		return nil, nil, err
	}

	ctx = composables.WithPool(ctx, pool)
	ctx = composables.WithLogger(ctx, conf.Logger().WithField("component", "conf-data"))
	return ctx, pool.Close, nil
}
