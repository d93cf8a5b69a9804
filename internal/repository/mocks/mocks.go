package mocks

import (
	"context"

	"github.com/rpggio/flick/internal/domain/project"
	"github.com/rpggio/flick/internal/domain/task"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) List() []project.Project {
	args := m.Called()
	if list, ok := args.Get(0).([]project.Project); ok {
		return list
	}
	return nil
}

func (m *ProjectRepository) Get(id string) (project.Project, bool) {
	args := m.Called(id)
	proj, _ := args.Get(0).(project.Project)
	return proj, args.Bool(1)
}

func (m *ProjectRepository) Add(proj project.Project) {
	m.Called(proj)
}

func (m *ProjectRepository) Update(proj project.Project) bool {
	args := m.Called(proj)
	return args.Bool(0)
}

func (m *ProjectRepository) Delete(id string) {
	m.Called(id)
}

// TaskRepository is a mock for task.Repository.
type TaskRepository struct {
	mock.Mock
}

func (m *TaskRepository) List() []task.Task {
	args := m.Called()
	if list, ok := args.Get(0).([]task.Task); ok {
		return list
	}
	return nil
}

func (m *TaskRepository) ListForProject(projectID string) []task.Task {
	args := m.Called(projectID)
	if list, ok := args.Get(0).([]task.Task); ok {
		return list
	}
	return nil
}

func (m *TaskRepository) Get(id string) (task.Task, bool) {
	args := m.Called(id)
	t, _ := args.Get(0).(task.Task)
	return t, args.Bool(1)
}

func (m *TaskRepository) Add(t task.Task) {
	m.Called(t)
}

func (m *TaskRepository) Update(t task.Task) bool {
	args := m.Called(t)
	return args.Bool(0)
}

func (m *TaskRepository) Toggle(id string) (task.Task, bool) {
	args := m.Called(id)
	t, _ := args.Get(0).(task.Task)
	return t, args.Bool(1)
}

func (m *TaskRepository) Delete(id string) {
	m.Called(id)
}

// TaskCounter is a mock for project.TaskCounter.
type TaskCounter struct {
	mock.Mock
}

func (m *TaskCounter) CountForProject(ctx context.Context, projectID string) (int, int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Int(1), args.Error(2)
}
