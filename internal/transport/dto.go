package transport

import (
	"fmt"
	"time"

	"github.com/rpggio/flick/internal/domain/project"
	"github.com/rpggio/flick/internal/domain/task"
)

// ProjectBody is the request body for creating or replacing a project.
// Dates are YYYY-MM-DD or RFC 3339.
type ProjectBody struct {
	Name           string `json:"name"`
	StartDate      string `json:"start_date,omitempty"`
	Director       string `json:"director,omitempty"`
	Creator        string `json:"creator,omitempty"`
	Producer       string `json:"producer,omitempty"`
	Color          string `json:"color,omitempty"`
	CompletedTasks int    `json:"completed_tasks,omitempty"`
	TotalTasks     int    `json:"total_tasks,omitempty"`
}

// TaskBody is the request body for creating or replacing a task.
type TaskBody struct {
	Title     string `json:"title"`
	Date      string `json:"date,omitempty"`
	Assignee  string `json:"assignee,omitempty"`
	Status    string `json:"status,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

func (b ProjectBody) createRequest() (project.CreateRequest, error) {
	start, err := parseDate(b.StartDate)
	if err != nil {
		return project.CreateRequest{}, err
	}
	return project.CreateRequest{
		Name:      b.Name,
		StartDate: start,
		Director:  b.Director,
		Creator:   b.Creator,
		Producer:  b.Producer,
		Color:     project.Color(b.Color),
	}, nil
}

// record builds the full replacement for id. A missing date or color keeps the current value.
func (b ProjectBody) record(id string, current project.Project) (project.Project, error) {
	start, err := parseDate(b.StartDate)
	if err != nil {
		return project.Project{}, err
	}
	if start.IsZero() {
		start = current.StartDate
	}
	color := project.Color(b.Color)
	if color == "" {
		color = current.Color
	}
	return project.Project{
		ID:             id,
		Name:           b.Name,
		StartDate:      start,
		Director:       b.Director,
		Creator:        b.Creator,
		Producer:       b.Producer,
		Color:          color,
		CompletedTasks: b.CompletedTasks,
		TotalTasks:     b.TotalTasks,
	}, nil
}

func (b TaskBody) createRequest(projectID string) (task.CreateRequest, error) {
	date, err := parseDate(b.Date)
	if err != nil {
		return task.CreateRequest{}, err
	}
	return task.CreateRequest{
		ProjectID: projectID,
		Title:     b.Title,
		Date:      date,
		Assignee:  b.Assignee,
		Status:    task.Status(b.Status),
	}, nil
}

// record builds the full replacement for id. Omitted date, status or project keep their current values.
func (b TaskBody) record(id string, current task.Task) (task.Task, error) {
	date, err := parseDate(b.Date)
	if err != nil {
		return task.Task{}, err
	}
	if date.IsZero() {
		date = current.Date
	}
	status := task.Status(b.Status)
	if status == "" {
		status = current.Status
	}
	projectID := b.ProjectID
	if projectID == "" {
		projectID = current.ProjectID
	}
	return task.Task{
		ID:        id,
		Title:     b.Title,
		Date:      date,
		Assignee:  b.Assignee,
		Status:    status,
		ProjectID: projectID,
	}, nil
}
