package feedback

import (
	"embed"

	"github.com/confhall/confhall/modules/feedback/infrastructure/persistence"
	"github.com/confhall/confhall/modules/feedback/presentation/controllers"
	"github.com/confhall/confhall/modules/feedback/services"
	"github.com/confhall/confhall/pkg/application"
)

//go:embed infrastructure/persistence/schema/feedback-schema.sql
var migrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterSchema(&migrationFiles)

	app.RegisterServices(
		services.NewFeedbackService(persistence.NewFeedbackRepository()),
	)

	app.RegisterControllers(
		controllers.NewFeedbackController(app),
		controllers.NewFeedbackAdminController(app),
	)

	return nil
}

func (m *Module) Name() string {
	return "feedback"
}
