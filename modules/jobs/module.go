package jobs

import (
	"embed"

	"github.com/confhall/confhall/modules/jobs/infrastructure/persistence"
	"github.com/confhall/confhall/modules/jobs/presentation/controllers"
	"github.com/confhall/confhall/modules/jobs/services"
	"github.com/confhall/confhall/pkg/application"
)

//go:embed infrastructure/persistence/schema/jobs-schema.sql
var migrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterSchema(&migrationFiles)

	app.RegisterServices(
		services.NewJobService(
			persistence.NewJobRepository(),
			app.EventPublisher(),
		),
		services.NewResumeService(persistence.NewResumeRepository()),
		services.NewApplicationService(persistence.NewApplicationRepository()),
	)

	app.RegisterControllers(
		controllers.NewJobController(app),
		controllers.NewJobsAdminController(app),
	)

	return nil
}

func (m *Module) Name() string {
	return "jobs"
}
