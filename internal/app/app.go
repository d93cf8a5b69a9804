package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/flick/internal/config"
	"github.com/rpggio/flick/internal/domain/project"
	"github.com/rpggio/flick/internal/domain/task"
	"github.com/rpggio/flick/internal/events"
	"github.com/rpggio/flick/internal/mcp"
	"github.com/rpggio/flick/internal/memstore"
	"github.com/rpggio/flick/internal/seed"
	"github.com/rpggio/flick/internal/transport"
)

// App holds the stores and services of one running instance.
// Stores are created here and injected everywhere else; there is no package-level state.
type App struct {
	Config config.Config
	Logger *slog.Logger

	// Broker carries the changes of both stores, for app-wide listeners.
	Broker   *events.Broker
	Projects *memstore.ProjectStore
	Tasks    *memstore.TaskStore

	ProjectService *project.Service
	TaskService    *task.Service

	MCP *sdkmcp.Server

	detach []func()
}

// New builds the application and loads seed data when enabled.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*App, error) {
	ac := appConfig{now: time.Now}
	for _, opt := range opts {
		opt(&ac)
	}
	logger := ac.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	broker := events.NewBroker()
	projects := memstore.NewProjectStore()
	tasks := memstore.NewTaskStore()
	detach := []func(){
		projects.Subscribe(events.Relay(broker)),
		tasks.Subscribe(events.Relay(broker)),
		broker.Subscribe(events.LogListener(logger)),
	}

	taskSvc := task.NewService(tasks, logger)
	projectSvc := project.NewService(projects, taskSvc, logger)

	a := &App{
		Config:         cfg,
		Logger:         logger,
		Broker:         broker,
		Projects:       projects,
		Tasks:          tasks,
		ProjectService: projectSvc,
		TaskService:    taskSvc,
		detach:         detach,
	}

	a.MCP = mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Projects: projectSvc,
			Tasks:    taskSvc,
		},
		Version: ac.version,
		Logger:  logger,
	})

	if cfg.Seed.Enabled {
		data, err := seed.Default()
		if err != nil {
			a.Close()
			return nil, err
		}
		if err := seed.Apply(ctx, data, projectSvc, taskSvc, ac.now()); err != nil {
			a.Close()
			return nil, fmt.Errorf("load seed data: %w", err)
		}
		logger.InfoContext(ctx, "seed data loaded", "projects", len(projects.List()), "tasks", len(tasks.List()))
	}

	return a, nil
}

// Handler returns the REST API with the MCP streamable HTTP endpoint mounted at /mcp.
func (a *App) Handler() http.Handler {
	return transport.NewServer(transport.Config{
		Projects:    a.ProjectService,
		Tasks:       a.TaskService,
		Feed:        a.Broker,
		EventBuffer: a.Config.Events.Buffer,
		MCP:         mcp.NewHTTPHandler(a.MCP),
		Logger:      a.Logger,
	})
}

// Close detaches the change feed and its logger. It is safe to call more than once.
func (a *App) Close() error {
	for _, fn := range a.detach {
		fn()
	}
	return nil
}
