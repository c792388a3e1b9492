package registration

import (
	"embed"

	"github.com/confhall/confhall/modules/registration/infrastructure/persistence"
	"github.com/confhall/confhall/modules/registration/presentation/controllers"
	"github.com/confhall/confhall/modules/registration/services"
	"github.com/confhall/confhall/pkg/application"
)

//go:embed infrastructure/persistence/schema/registration-schema.sql
var migrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterSchema(&migrationFiles)

	app.RegisterServices(
		services.NewWhitelistService(
			persistence.NewWhitelistRepository(),
			app.EventPublisher(),
		),
	)

	app.RegisterControllers(
		controllers.NewRegistrationAdminController(app),
	)

	return nil
}

func (m *Module) Name() string {
	return "registration"
}
