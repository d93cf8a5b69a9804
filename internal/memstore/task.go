package memstore

import (
	"slices"
	"sync"

	"github.com/rpggio/flick/internal/domain/task"
	"github.com/rpggio/flick/internal/events"
)

var _ task.Repository = (*TaskStore)(nil)

// TaskStore is the single source of truth for tasks across all projects.
// It keeps no link to the project store: removing a project leaves its tasks in place.
type TaskStore struct {
	writeMu sync.Mutex

	mu    sync.RWMutex
	tasks []task.Task

	broker *events.Broker
}

// NewTaskStore creates an empty store with its own set of listeners.
func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: []task.Task{}, broker: events.NewBroker()}
}

// Subscribe registers a listener for this store's changes and returns its cancel function.
func (s *TaskStore) Subscribe(l events.Listener) func() {
	return s.broker.Subscribe(l)
}

// List returns a snapshot of all tasks in insertion order.
func (s *TaskStore) List() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks)
}

// ListForProject is a stable filter of the backing collection by project ID.
func (s *TaskStore) ListForProject(projectID string) []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]task.Task, 0)
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// Get returns the first task with the given ID.
func (s *TaskStore) Get(id string) (task.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return task.Task{}, false
	}
	return s.tasks[i], true
}

// Add appends t.
func (s *TaskStore) Add(t task.Task) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()

	s.publish(events.TaskAdded, t.ID, t.ProjectID)
}

// Update replaces the first task with t.ID in place.
// It reports false, without notifying, when no such task exists.
func (s *TaskStore) Update(t task.Task) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	i := s.indexOf(t.ID)
	if i >= 0 {
		s.tasks[i] = t
	}
	s.mu.Unlock()

	if i < 0 {
		return false
	}
	s.publish(events.TaskUpdated, t.ID, t.ProjectID)
	return true
}

// Toggle flips the status of the first task with id between pending and completed.
// The read and the write happen under one writer lock, so concurrent toggles never lose a flip.
func (s *TaskStore) Toggle(id string) (task.Task, bool) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	i := s.indexOf(id)
	var t task.Task
	if i >= 0 {
		s.tasks[i].Status = s.tasks[i].Status.Toggle()
		t = s.tasks[i]
	}
	s.mu.Unlock()

	if i < 0 {
		return task.Task{}, false
	}
	s.publish(events.TaskUpdated, t.ID, t.ProjectID)
	return t, true
}

// Delete removes every task with the given ID. It notifies even when nothing matched.
func (s *TaskStore) Delete(id string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var projectID string
	s.mu.Lock()
	if i := s.indexOf(id); i >= 0 {
		projectID = s.tasks[i].ProjectID
	}
	s.tasks = slices.DeleteFunc(s.tasks, func(t task.Task) bool { return t.ID == id })
	s.mu.Unlock()

	s.publish(events.TaskDeleted, id, projectID)
}

func (s *TaskStore) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool { return t.ID == id })
}

func (s *TaskStore) publish(kind events.Kind, id, projectID string) {
	s.broker.Publish(events.Event{Kind: kind, EntityID: id, ProjectID: projectID})
}
