package application

import (
	"embed"
	"fmt"
	"reflect"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/confhall/confhall/pkg/eventbus"
)

// Controller registers a set of routes under its own prefix.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module wires a feature area (services, controllers, schema) into the app.
type Module interface {
	Name() string
	Register(app Application) error
}

type Application interface {
	Pool() *pgxpool.Pool
	Logger() *logrus.Logger
	EventPublisher() eventbus.EventBus

	RegisterControllers(controllers ...Controller)
	Controllers() []Controller

	RegisterServices(services ...any)
	Service(reference any) any

	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	Middleware() []mux.MiddlewareFunc

	RegisterSchema(fs *embed.FS)
	Schemas() []*embed.FS
}

type ApplicationOptions struct {
	Pool     *pgxpool.Pool
	Logger   *logrus.Logger
	EventBus eventbus.EventBus
}

func New(opts *ApplicationOptions) Application {
	return &application{
		pool:     opts.Pool,
		logger:   opts.Logger,
		eventBus: opts.EventBus,
		services: map[reflect.Type]any{},
	}
}

type application struct {
	pool        *pgxpool.Pool
	logger      *logrus.Logger
	eventBus    eventbus.EventBus
	controllers []Controller
	services    map[reflect.Type]any
	middleware  []mux.MiddlewareFunc
	schemas     []*embed.FS
}

func (app *application) Pool() *pgxpool.Pool {
	return app.pool
}

func (app *application) Logger() *logrus.Logger {
	return app.logger
}

func (app *application) EventPublisher() eventbus.EventBus {
	return app.eventBus
}

func (app *application) RegisterControllers(controllers ...Controller) {
	app.controllers = append(app.controllers, controllers...)
}

func (app *application) Controllers() []Controller {
	return app.controllers
}

func (app *application) RegisterServices(services ...any) {
	for _, svc := range services {
		t := reflect.TypeOf(svc)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		app.services[t] = svc
	}
}

// Service looks up a registered service by the type of the given reference
// value, e.g. app.Service(services.SessionService{}).
func (app *application) Service(reference any) any {
	t := reflect.TypeOf(reference)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	svc, ok := app.services[t]
	if !ok {
		panic(fmt.Sprintf("service %s is not registered", t.Name()))
	}
	return svc
}

func (app *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	app.middleware = append(app.middleware, middleware...)
}

func (app *application) Middleware() []mux.MiddlewareFunc {
	return app.middleware
}

func (app *application) RegisterSchema(fs *embed.FS) {
	app.schemas = append(app.schemas, fs)
}

func (app *application) Schemas() []*embed.FS {
	return app.schemas
}
