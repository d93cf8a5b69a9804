package mcp

import (
	"time"

	"github.com/rpggio/flick/internal/domain/project"
	"github.com/rpggio/flick/internal/domain/task"
)

type ListProjectsParams struct{}

type GetProjectParams struct {
	ID string `json:"id" jsonschema:"project id"`
}

type CreateProjectParams struct {
	Name      string `json:"name" jsonschema:"project display name"`
	StartDate string `json:"start_date,omitempty" jsonschema:"start date as YYYY-MM-DD, defaults to today"`
	Director  string `json:"director,omitempty"`
	Creator   string `json:"creator,omitempty"`
	Producer  string `json:"producer,omitempty"`
	Color     string `json:"color,omitempty" jsonschema:"display color tag, defaults to blue"`
}

type UpdateProjectParams struct {
	ID             string `json:"id" jsonschema:"id of the project to replace"`
	Name           string `json:"name"`
	StartDate      string `json:"start_date,omitempty" jsonschema:"YYYY-MM-DD, omit to keep the current date"`
	Director       string `json:"director,omitempty"`
	Creator        string `json:"creator,omitempty"`
	Producer       string `json:"producer,omitempty"`
	Color          string `json:"color,omitempty" jsonschema:"omit to keep the current color"`
	CompletedTasks int    `json:"completed_tasks,omitempty" jsonschema:"deprecated stored counter, use get_project_progress"`
	TotalTasks     int    `json:"total_tasks,omitempty" jsonschema:"deprecated stored counter, use get_project_progress"`
}

type DeleteProjectParams struct {
	ID string `json:"id"`
}

type ProjectProgressParams struct {
	ID string `json:"id" jsonschema:"project id"`
}

type ListTasksParams struct {
	ProjectID string `json:"project_id"`
}

type CreateTaskParams struct {
	ProjectID string `json:"project_id" jsonschema:"owning project id, not checked for existence"`
	Title     string `json:"title"`
	Date      string `json:"date,omitempty" jsonschema:"due date as YYYY-MM-DD, defaults to today"`
	Assignee  string `json:"assignee,omitempty"`
	Status    string `json:"status,omitempty" jsonschema:"pending or completed, defaults to pending"`
}

type UpdateTaskParams struct {
	ID        string `json:"id" jsonschema:"id of the task to replace"`
	Title     string `json:"title"`
	Date      string `json:"date,omitempty" jsonschema:"YYYY-MM-DD, omit to keep the current date"`
	Assignee  string `json:"assignee,omitempty"`
	Status    string `json:"status,omitempty" jsonschema:"pending or completed, omit to keep the current status"`
	ProjectID string `json:"project_id,omitempty" jsonschema:"omit to keep the current project"`
}

type ToggleTaskParams struct {
	ID string `json:"id"`
}

type DeleteTaskParams struct {
	ID string `json:"id"`
}

type ProjectView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	StartDate      string `json:"start_date"`
	Director       string `json:"director"`
	Creator        string `json:"creator"`
	Producer       string `json:"producer"`
	Color          string `json:"color"`
	CompletedTasks int    `json:"completed_tasks"`
	TotalTasks     int    `json:"total_tasks"`
}

type TaskView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Assignee  string `json:"assignee"`
	Status    string `json:"status"`
	ProjectID string `json:"project_id"`
}

type ListProjectsResult struct {
	Projects []ProjectView `json:"projects"`
}

type ListTasksResult struct {
	ProjectID string     `json:"project_id"`
	Tasks     []TaskView `json:"tasks"`
}

type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func projectView(p project.Project) ProjectView {
	return ProjectView{
		ID:             p.ID,
		Name:           p.Name,
		StartDate:      p.StartDate.Format(time.DateOnly),
		Director:       p.Director,
		Creator:        p.Creator,
		Producer:       p.Producer,
		Color:          string(p.Color),
		CompletedTasks: p.CompletedTasks,
		TotalTasks:     p.TotalTasks,
	}
}

func taskView(t task.Task) TaskView {
	return TaskView{
		ID:        t.ID,
		Title:     t.Title,
		Date:      t.Date.Format(time.DateOnly),
		Assignee:  t.Assignee,
		Status:    string(t.Status),
		ProjectID: t.ProjectID,
	}
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, invalidArgument("%s must be YYYY-MM-DD, got %q", field, value)
	}
	return t, nil
}

func requireID(field, value string) error {
	if value == "" {
		return invalidArgument("%s is required", field)
	}
	return nil
}
