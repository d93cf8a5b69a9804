package project

import "context"

// Repository is the canonical ordered collection of projects.
// Implementations never fail: unknown ids are no-ops.
type Repository interface {
	List() []Project
	Get(id string) (Project, bool)
	Add(proj Project)
	Update(proj Project) bool
	Delete(id string)
}

// TaskCounter reports task completion counts for a project.
type TaskCounter interface {
	CountForProject(ctx context.Context, projectID string) (completed, total int, err error)
}
