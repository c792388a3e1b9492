package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	feedbackpersistence "github.com/confhall/confhall/modules/feedback/infrastructure/persistence"
	feedbacksvc "github.com/confhall/confhall/modules/feedback/services"
	jobspersistence "github.com/confhall/confhall/modules/jobs/infrastructure/persistence"
	jobssvc "github.com/confhall/confhall/modules/jobs/services"
	"github.com/confhall/confhall/pkg/tabular"
)

func newExportCmd() *cobra.Command {
	var kind string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export feedback, resumes or applications as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), kind, output)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Data kind: feedback, resumes or applications (required)")
	cmd.Flags().StringVar(&output, "output", "", "Output file (default: <kind>-<timestamp>.csv)")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func runExport(ctx context.Context, kind, output string) error {
	ctx, closePool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer closePool()

	var body []byte
	switch kind {
	case "feedback":
		body, err = feedbacksvc.NewFeedbackService(feedbackpersistence.NewFeedbackRepository()).ExportCSV(ctx)
	case "resumes":
		body, err = jobssvc.NewResumeService(jobspersistence.NewResumeRepository()).ExportCSV(ctx)
	case "applications":
		body, err = jobssvc.NewApplicationService(jobspersistence.NewApplicationRepository()).ExportCSV(ctx)
	default:
		return fmt.Errorf("unknown kind %q: expected feedback, resumes or applications", kind)
	}
	if err != nil {
		return err
	}

	if output == "" {
		output = tabular.ExportFilename(kind, time.Now())
	}
	if err := os.WriteFile(output, body, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", output)
	return nil
}
