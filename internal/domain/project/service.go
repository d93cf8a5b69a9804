package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	tasks  TaskCounter
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new project service.
func NewService(repo Repository, tasks TaskCounter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, tasks: tasks, logger: logger, now: time.Now}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	ID        string
	Name      string
	StartDate time.Time
	Director  string
	Creator   string
	Producer  string
	Color     Color
}

// Create adds a new project at the end of the collection.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = s.now()
	}

	color := req.Color
	if color == "" {
		color = DefaultColor
	}

	proj := Project{
		ID:        id,
		Name:      req.Name,
		StartDate: startDate,
		Director:  req.Director,
		Creator:   req.Creator,
		Producer:  req.Producer,
		Color:     color,
	}
	s.repo.Add(proj)
	s.logger.DebugContext(ctx, "project created", "project_id", id, "name", proj.Name)

	return &proj, nil
}

// Get fetches a project by ID.
func (s *Service) Get(_ context.Context, id string) (*Project, error) {
	proj, ok := s.repo.Get(id)
	if !ok {
		return nil, ErrProjectNotFound
	}
	return &proj, nil
}

// List returns every project in insertion order.
func (s *Service) List(_ context.Context) ([]Project, error) {
	return s.repo.List(), nil
}

// Update replaces the stored project with the same ID.
// An unknown ID leaves the collection untouched and returns ErrProjectNotFound.
func (s *Service) Update(ctx context.Context, proj Project) (*Project, error) {
	if strings.TrimSpace(proj.ID) == "" || strings.TrimSpace(proj.Name) == "" {
		return nil, ErrInvalidInput
	}
	if !s.repo.Update(proj) {
		s.logger.DebugContext(ctx, "project update ignored", "project_id", proj.ID)
		return nil, ErrProjectNotFound
	}
	return &proj, nil
}

// Delete removes a project. Deleting an unknown ID succeeds. Tasks of the project are kept.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.repo.Delete(id)
	s.logger.DebugContext(ctx, "project deleted", "project_id", id)
	return nil
}

// Progress derives the completion state of a project from its tasks.
func (s *Service) Progress(ctx context.Context, id string) (Progress, error) {
	if _, ok := s.repo.Get(id); !ok {
		return Progress{}, ErrProjectNotFound
	}
	if s.tasks == nil {
		return NewProgress(id, 0, 0), nil
	}
	completed, total, err := s.tasks.CountForProject(ctx, id)
	if err != nil {
		return Progress{}, fmt.Errorf("counting project tasks: %w", err)
	}
	return NewProgress(id, completed, total), nil
}
