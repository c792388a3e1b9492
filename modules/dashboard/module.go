package dashboard

import (
	"github.com/confhall/confhall/modules/dashboard/presentation/controllers"
	"github.com/confhall/confhall/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

// Register wires the aggregate views. Dashboard owns no tables; it reads
// through the services the other modules registered, so it must load last.
func (m *Module) Register(app application.Application) error {
	app.RegisterControllers(
		controllers.NewDashboardController(app),
		controllers.NewHealthController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "dashboard"
}
