// Package seed loads the bundled example projects and tasks.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/rpggio/flick/internal/domain/project"
	"github.com/rpggio/flick/internal/domain/task"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultData []byte

// Data is the parsed seed document.
type Data struct {
	Projects []ProjectSeed `yaml:"projects"`
}

type ProjectSeed struct {
	Name     string     `yaml:"name"`
	Director string     `yaml:"director"`
	Creator  string     `yaml:"creator"`
	Producer string     `yaml:"producer"`
	Color    string     `yaml:"color"`
	Tasks    []TaskSeed `yaml:"tasks"`
}

type TaskSeed struct {
	Title     string `yaml:"title"`
	Assignee  string `yaml:"assignee"`
	Status    string `yaml:"status"`
	DueInDays int    `yaml:"due_in_days"`
}

// ProjectCreator creates projects.
type ProjectCreator interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
}

// TaskCreator creates tasks.
type TaskCreator interface {
	Create(ctx context.Context, req task.CreateRequest) (*task.Task, error)
}

// Default returns the bundled seed document.
func Default() (Data, error) {
	return Parse(defaultData)
}

// Parse decodes a seed document.
func Parse(raw []byte) (Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("parse seed data: %w", err)
	}
	return data, nil
}

// Apply creates every project in order, each followed by its tasks.
// Dates are computed from now.
func Apply(ctx context.Context, data Data, projects ProjectCreator, tasks TaskCreator, now time.Time) error {
	for _, ps := range data.Projects {
		proj, err := projects.Create(ctx, project.CreateRequest{
			Name:      ps.Name,
			StartDate: now,
			Director:  ps.Director,
			Creator:   ps.Creator,
			Producer:  ps.Producer,
			Color:     project.Color(ps.Color),
		})
		if err != nil {
			return fmt.Errorf("seed project %q: %w", ps.Name, err)
		}

		for _, ts := range ps.Tasks {
			_, err := tasks.Create(ctx, task.CreateRequest{
				ProjectID: proj.ID,
				Title:     ts.Title,
				Date:      now.AddDate(0, 0, ts.DueInDays),
				Assignee:  ts.Assignee,
				Status:    task.Status(ts.Status),
			})
			if err != nil {
				return fmt.Errorf("seed task %q: %w", ts.Title, err)
			}
		}
	}
	return nil
}
