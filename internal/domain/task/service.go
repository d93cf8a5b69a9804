package task

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service handles task operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new task service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// CreateRequest defines task creation inputs.
type CreateRequest struct {
	ID        string
	ProjectID string
	Title     string
	Date      time.Time
	Assignee  string
	Status    Status
}

// Create appends a new task. The project reference is not checked.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Task, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.ProjectID) == "" {
		return nil, ErrInvalidInput
	}

	status := req.Status
	if status == "" {
		status = StatusPending
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	date := req.Date
	if date.IsZero() {
		date = s.now()
	}

	t := Task{
		ID:        id,
		Title:     req.Title,
		Date:      date,
		Assignee:  req.Assignee,
		Status:    status,
		ProjectID: req.ProjectID,
	}
	s.repo.Add(t)
	s.logger.DebugContext(ctx, "task created", "task_id", id, "project_id", t.ProjectID)

	return &t, nil
}

// Get fetches a task by ID.
func (s *Service) Get(_ context.Context, id string) (*Task, error) {
	t, ok := s.repo.Get(id)
	if !ok {
		return nil, ErrTaskNotFound
	}
	return &t, nil
}

// ListForProject returns the project's tasks in insertion order.
func (s *Service) ListForProject(_ context.Context, projectID string) ([]Task, error) {
	return s.repo.ListForProject(projectID), nil
}

// Update replaces the stored task with the same ID.
// An unknown ID leaves the collection untouched and returns ErrTaskNotFound.
func (s *Service) Update(ctx context.Context, t Task) (*Task, error) {
	if strings.TrimSpace(t.ID) == "" {
		return nil, ErrInvalidInput
	}
	if !t.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if strings.TrimSpace(t.Title) == "" {
		return nil, ErrInvalidInput
	}
	if !s.repo.Update(t) {
		s.logger.DebugContext(ctx, "task update ignored", "task_id", t.ID)
		return nil, ErrTaskNotFound
	}
	return &t, nil
}

// Toggle flips a task between pending and completed.
func (s *Service) Toggle(ctx context.Context, id string) (*Task, error) {
	t, ok := s.repo.Toggle(id)
	if !ok {
		return nil, ErrTaskNotFound
	}
	s.logger.DebugContext(ctx, "task toggled", "task_id", id, "status", t.Status)
	return &t, nil
}

// Delete removes a task. Deleting an unknown ID succeeds.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.repo.Delete(id)
	s.logger.DebugContext(ctx, "task deleted", "task_id", id)
	return nil
}

// CountForProject reports how many of the project's tasks are completed.
func (s *Service) CountForProject(_ context.Context, projectID string) (completed, total int, err error) {
	tasks := s.repo.ListForProject(projectID)
	for _, t := range tasks {
		if t.Status == StatusCompleted {
			completed++
		}
	}
	return completed, len(tasks), nil
}
