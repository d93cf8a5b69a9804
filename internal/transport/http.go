package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpggio/flick/internal/domain/project"
	"github.com/rpggio/flick/internal/domain/task"
	"github.com/rpggio/flick/internal/events"
)

// ProjectService is the project API used by the REST handlers.
type ProjectService interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Get(ctx context.Context, id string) (*project.Project, error)
	List(ctx context.Context) ([]project.Project, error)
	Update(ctx context.Context, proj project.Project) (*project.Project, error)
	Delete(ctx context.Context, id string) error
	Progress(ctx context.Context, id string) (project.Progress, error)
}

// TaskService is the task API used by the REST handlers.
type TaskService interface {
	Create(ctx context.Context, req task.CreateRequest) (*task.Task, error)
	Get(ctx context.Context, id string) (*task.Task, error)
	ListForProject(ctx context.Context, projectID string) ([]task.Task, error)
	Update(ctx context.Context, t task.Task) (*task.Task, error)
	Toggle(ctx context.Context, id string) (*task.Task, error)
	Delete(ctx context.Context, id string) error
}

// ChangeFeed streams store change notifications.
type ChangeFeed interface {
	Stream(ctx context.Context, buffer int) (<-chan events.Event, func() int)
}

// Config wires the HTTP server.
type Config struct {
	Projects ProjectService
	Tasks    TaskService
	// Feed enables GET /api/events when set.
	Feed        ChangeFeed
	EventBuffer int
	// MCP is mounted at /mcp when set.
	MCP    http.Handler
	Logger *slog.Logger
}

// Server holds the REST handlers.
type Server struct {
	projects    ProjectService
	tasks       TaskService
	feed        ChangeFeed
	eventBuffer int
	logger      *slog.Logger
}

// NewServer creates an HTTP server router with middleware.
func NewServer(cfg Config) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	srv := &Server{
		projects:    cfg.Projects,
		tasks:       cfg.Tasks,
		feed:        cfg.Feed,
		eventBuffer: cfg.EventBuffer,
		logger:      logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", srv.listProjects)
			r.Post("/", srv.createProject)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", srv.getProject)
				r.Put("/", srv.updateProject)
				r.Delete("/", srv.deleteProject)
				r.Get("/progress", srv.projectProgress)
				r.Get("/tasks", srv.listTasks)
				r.Post("/tasks", srv.createTask)
			})
		})
		r.Route("/tasks/{id}", func(r chi.Router) {
			r.Put("/", srv.updateTask)
			r.Delete("/", srv.deleteTask)
			r.Post("/toggle", srv.toggleTask)
		})
		if srv.feed != nil {
			r.Get("/events", srv.streamEvents)
		}
	})

	if cfg.MCP != nil {
		r.Handle("/mcp", cfg.MCP)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if status, _ := classify(err); status == http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed",
			"request_id", middleware.GetReqID(r.Context()),
			"error", err)
	}
	WriteError(w, err)
}
