package modules

import (
	"github.com/confhall/confhall/modules/dashboard"
	"github.com/confhall/confhall/modules/feedback"
	"github.com/confhall/confhall/modules/jobs"
	"github.com/confhall/confhall/modules/registration"
	"github.com/confhall/confhall/modules/schedule"
	"github.com/confhall/confhall/pkg/application"
)

// BuiltInModules is the load order. Dashboard resolves services from the
// modules before it, so it stays last.
var BuiltInModules = []application.Module{
	schedule.NewModule(),
	registration.NewModule(),
	feedback.NewModule(),
	jobs.NewModule(),
	dashboard.NewModule(),
}

func Load(app application.Application, mods ...application.Module) error {
	for _, module := range mods {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
