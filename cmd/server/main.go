package main

import (
	"context"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/confhall/confhall/internal/server"
	"github.com/confhall/confhall/modules"
	jobssvc "github.com/confhall/confhall/modules/jobs/services"
	registrationsvc "github.com/confhall/confhall/modules/registration/services"
	schedulesvc "github.com/confhall/confhall/modules/schedule/services"
	"github.com/confhall/confhall/pkg/application"
	"github.com/confhall/confhall/pkg/configuration"
	"github.com/confhall/confhall/pkg/eventbus"
	"github.com/confhall/confhall/pkg/metrics"
	"github.com/confhall/confhall/pkg/schema"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		panic(err)
	}

	app := application.New(&application.ApplicationOptions{
		Pool:     pool,
		Logger:   logger,
		EventBus: eventbus.NewEventPublisher(logger),
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}
	if err := schema.Apply(ctx, pool, app.Schemas(), logger); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}

	subscribeImportLogging(app.EventPublisher(), logger)

	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	serverInstance, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
		Pool:          pool,
	})
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	log.Printf("Listening on: %s\n", conf.SocketAddress)
	if err := serverInstance.Start(conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func subscribeImportLogging(bus eventbus.EventBus, logger *logrus.Logger) {
	bus.Subscribe(func(e schedulesvc.SessionsImported) {
		logger.WithField("count", e.Count).WithField("dropped", e.Dropped).Info("schedule replaced")
	})
	bus.Subscribe(func(e registrationsvc.WhitelistImported) {
		logger.WithField("count", e.Count).Info("whitelist replaced")
	})
	bus.Subscribe(func(e jobssvc.JobsImported) {
		logger.WithField("count", e.Count).WithField("dropped", e.Dropped).Info("jobs appended")
	})
}
