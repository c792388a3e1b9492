package schedule

import (
	"embed"

	"github.com/confhall/confhall/modules/schedule/infrastructure/persistence"
	"github.com/confhall/confhall/modules/schedule/presentation/controllers"
	"github.com/confhall/confhall/modules/schedule/services"
	"github.com/confhall/confhall/pkg/application"
)

//go:embed infrastructure/persistence/schema/schedule-schema.sql
var migrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterSchema(&migrationFiles)

	app.RegisterServices(
		services.NewSessionService(
			persistence.NewSessionRepository(),
			app.EventPublisher(),
		),
	)

	app.RegisterControllers(
		controllers.NewSessionController(app),
		controllers.NewScheduleAdminController(app),
	)

	return nil
}

func (m *Module) Name() string {
	return "schedule"
}
