package project_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rpggio/flick/internal/domain/project"
	"github.com/rpggio/flick/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateDefaults(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Add", mock.MatchedBy(func(p project.Project) bool {
		return p.Name == "流浪地球" && p.Color == project.DefaultColor && p.ID != ""
	})).Return()

	svc := project.NewService(repo, nil, nil)
	proj, err := svc.Create(ctx, project.CreateRequest{
		Name:     "流浪地球",
		Director: "郭帆",
	})
	require.NoError(t, err)
	require.NotEmpty(t, proj.ID)
	require.Equal(t, "郭帆", proj.Director)
	require.Equal(t, project.ColorBlue, proj.Color)
	require.False(t, proj.StartDate.IsZero())
	require.Zero(t, proj.CompletedTasks)
	require.Zero(t, proj.TotalTasks)
	repo.AssertExpectations(t)
}

func TestProjectService_CreateKeepsCallerFields(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)

	repo := &mocks.ProjectRepository{}
	repo.On("Add", mock.Anything).Return()

	svc := project.NewService(repo, nil, nil)
	proj, err := svc.Create(ctx, project.CreateRequest{
		ID:        "p1",
		Name:      "Alpha",
		StartDate: start,
		Color:     project.Color("teal"),
	})
	require.NoError(t, err)
	require.Equal(t, "p1", proj.ID)
	require.Equal(t, start, proj.StartDate)
	require.Equal(t, project.Color("teal"), proj.Color)
}

func TestProjectService_CreateValidation(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	svc := project.NewService(repo, nil, nil)
	_, err := svc.Create(ctx, project.CreateRequest{Name: "   "})
	require.ErrorIs(t, err, project.ErrInvalidInput)
	repo.AssertNotCalled(t, "Add", mock.Anything)
}

func TestProjectService_Get(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", "p1").Return(project.Project{ID: "p1", Name: "Alpha"}, true)
	repo.On("Get", "missing").Return(project.Project{}, false)

	svc := project.NewService(repo, nil, nil)
	proj, err := svc.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Alpha", proj.Name)

	_, err = svc.Get(ctx, "missing")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_UpdateUnknownIsNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Update", project.Project{ID: "missing", Name: "Ghost"}).Return(false)

	svc := project.NewService(repo, nil, nil)
	_, err := svc.Update(ctx, project.Project{ID: "missing", Name: "Ghost"})
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_UpdateValidation(t *testing.T) {
	repo := &mocks.ProjectRepository{}
	svc := project.NewService(repo, nil, nil)

	_, err := svc.Update(context.Background(), project.Project{Name: "Alpha"})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = svc.Update(context.Background(), project.Project{ID: "p1", Name: " "})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestProjectService_DeleteAlwaysSucceeds(t *testing.T) {
	repo := &mocks.ProjectRepository{}
	repo.On("Delete", "missing").Return()

	svc := project.NewService(repo, nil, nil)
	require.NoError(t, svc.Delete(context.Background(), "missing"))
	repo.AssertExpectations(t)
}

func TestProjectService_Progress(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", "p1").Return(project.Project{ID: "p1", CompletedTasks: 9, TotalTasks: 9}, true)
	counter := &mocks.TaskCounter{}
	counter.On("CountForProject", ctx, "p1").Return(1, 3, nil)

	svc := project.NewService(repo, counter, nil)
	progress, err := svc.Progress(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, project.Progress{ProjectID: "p1", Completed: 1, Total: 3, Percent: 33}, progress)
}

func TestProjectService_ProgressErrors(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", "missing").Return(project.Project{}, false)
	repo.On("Get", "p1").Return(project.Project{ID: "p1"}, true)
	counter := &mocks.TaskCounter{}
	counter.On("CountForProject", ctx, "p1").Return(0, 0, errors.New("boom"))

	svc := project.NewService(repo, counter, nil)
	_, err := svc.Progress(ctx, "missing")
	require.ErrorIs(t, err, project.ErrProjectNotFound)

	_, err = svc.Progress(ctx, "p1")
	require.ErrorContains(t, err, "counting project tasks")
}

func TestNewProgress(t *testing.T) {
	tests := []struct {
		completed, total, percent int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 66},
		{3, 3, 100},
	}
	for _, tt := range tests {
		p := project.NewProgress("p", tt.completed, tt.total)
		require.Equal(t, tt.percent, p.Percent, "%d/%d", tt.completed, tt.total)
	}
}
