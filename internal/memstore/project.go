package memstore

import (
	"slices"
	"sync"

	"github.com/rpggio/flick/internal/domain/project"
	"github.com/rpggio/flick/internal/events"
)

var _ project.Repository = (*ProjectStore)(nil)

// ProjectStore is the single source of truth for projects.
type ProjectStore struct {
	// writeMu spans a mutation and its notification so listeners observe
	// changes in the order they were applied.
	writeMu sync.Mutex

	mu       sync.RWMutex
	projects []project.Project

	broker *events.Broker
}

// NewProjectStore creates an empty store with its own set of listeners.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{projects: []project.Project{}, broker: events.NewBroker()}
}

// Subscribe registers a listener for this store's changes and returns its cancel function.
func (s *ProjectStore) Subscribe(l events.Listener) func() {
	return s.broker.Subscribe(l)
}

// List returns a snapshot of all projects in insertion order.
func (s *ProjectStore) List() []project.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.projects)
}

// Get returns the first project with the given ID.
func (s *ProjectStore) Get(id string) (project.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return project.Project{}, false
	}
	return s.projects[i], true
}

// Add appends proj. The caller is trusted to supply a fresh ID.
func (s *ProjectStore) Add(proj project.Project) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.projects = append(s.projects, proj)
	s.mu.Unlock()

	s.publish(events.ProjectAdded, proj.ID)
}

// Update replaces the first project with proj.ID in place.
// It reports false, without notifying, when no such project exists.
func (s *ProjectStore) Update(proj project.Project) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	i := s.indexOf(proj.ID)
	if i >= 0 {
		s.projects[i] = proj
	}
	s.mu.Unlock()

	if i < 0 {
		return false
	}
	s.publish(events.ProjectUpdated, proj.ID)
	return true
}

// Delete removes every project with the given ID. It notifies even when nothing matched.
func (s *ProjectStore) Delete(id string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.projects = slices.DeleteFunc(s.projects, func(p project.Project) bool { return p.ID == id })
	s.mu.Unlock()

	s.publish(events.ProjectDeleted, id)
}

func (s *ProjectStore) indexOf(id string) int {
	return slices.IndexFunc(s.projects, func(p project.Project) bool { return p.ID == id })
}

func (s *ProjectStore) publish(kind events.Kind, id string) {
	s.broker.Publish(events.Event{Kind: kind, EntityID: id, ProjectID: id})
}
