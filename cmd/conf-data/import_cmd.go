package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	jobspersistence "github.com/confhall/confhall/modules/jobs/infrastructure/persistence"
	jobssvc "github.com/confhall/confhall/modules/jobs/services"
	registrationpersistence "github.com/confhall/confhall/modules/registration/infrastructure/persistence"
	registrationsvc "github.com/confhall/confhall/modules/registration/services"
	schedulepersistence "github.com/confhall/confhall/modules/schedule/infrastructure/persistence"
	schedulesvc "github.com/confhall/confhall/modules/schedule/services"
	"github.com/confhall/confhall/pkg/configuration"
	"github.com/confhall/confhall/pkg/eventbus"
	"github.com/confhall/confhall/pkg/tabular"
)

func newImportCmd() *cobra.Command {
	var file string
	var kind string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import sessions, whitelist or jobs from a CSV/Excel file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), kind, file)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Input file (required)")
	cmd.Flags().StringVar(&kind, "kind", "", "Data kind: sessions, whitelist or jobs (required)")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func runImport(ctx context.Context, kind, file string) error {
	rows, err := readRows(file)
	if err != nil {
		return err
	}

	ctx, closePool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer closePool()

	bus := eventbus.NewEventPublisher(configuration.Use().Logger())

	switch kind {
	case "sessions":
		svc := schedulesvc.NewSessionService(schedulepersistence.NewSessionRepository(), bus)
		inserted, dropped, err := svc.ImportRows(ctx, rows)
		if err != nil {
			return err
		}
		fmt.Printf("%d sessions imported, %d rows dropped\n", inserted, dropped)
	case "whitelist":
		svc := registrationsvc.NewWhitelistService(registrationpersistence.NewWhitelistRepository(), bus)
		inserted, err := svc.ImportRows(ctx, rows)
		if err != nil {
			return err
		}
		fmt.Printf("%d attendees imported\n", inserted)
	case "jobs":
		svc := jobssvc.NewJobService(jobspersistence.NewJobRepository(), bus)
		inserted, dropped, err := svc.ImportRows(ctx, rows)
		if err != nil {
			return err
		}
		fmt.Printf("%d jobs imported, %d rows dropped\n", inserted, dropped)
	default:
		return fmt.Errorf("unknown kind %q: expected sessions, whitelist or jobs", kind)
	}
	return nil
}

func readRows(file string) ([]tabular.Row, error) {
	mtype, err := mimetype.DetectFile(file)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	src, err := tabular.FromUpload(mtype.String(), f)
	if err != nil {
		return nil, err
	}
	return tabular.ReadAll(src)
}
